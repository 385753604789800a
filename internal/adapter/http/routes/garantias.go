package routes

import (
	"garantias_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWarranties = "/garantias"
	PathInvoices   = "/facturas"
	PathDashboard  = "/dashboard"
)

func addWarrantyRoutes(rg *gin.RouterGroup, h *handlers.WarrantyHandler) {
	garantias := rg.Group(PathWarranties)
	{
		garantias.POST("", h.CreateWarranty)
		garantias.GET("", h.ListWarranties)
		garantias.GET("/:id", h.GetWarranty)
		garantias.GET("/numero/:numero", h.GetWarrantyByNumber)
		garantias.PUT("/:id", h.UpdateWarranty)
		garantias.PATCH("/:id/estado", h.PatchWarrantyStatus)
		garantias.POST("/:id/reparaciones", h.AddRepair)
		garantias.DELETE("/:id", h.DeleteWarranty)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler) {
	facturas := rg.Group(PathInvoices)
	{
		facturas.POST("", h.CreateInvoice)
		facturas.GET("", h.ListInvoices)
		facturas.GET("/:id", h.GetInvoice)
		facturas.GET("/numero/:numero", h.GetInvoiceByNumber)
		facturas.PUT("/:id", h.UpdateInvoice)
		facturas.POST("/:id/pago", h.PayInvoice)
		facturas.DELETE("/:id", h.DeleteInvoice)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("", h.GetDashboard)
		dashboard.GET("/ingresos", h.GetRevenue)
	}
}
