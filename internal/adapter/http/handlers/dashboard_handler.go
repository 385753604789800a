package handlers

import (
	"net/http"
	"strconv"
	"time"

	response "garantias_service/internal/adapter/http/dto/response"
	"garantias_service/internal/usecase"
	"garantias_service/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregated statistics views.

type DashboardHandler struct {
	warranties usecase.IWarrantyUseCase
	invoices   usecase.IInvoiceUseCase
}

func NewDashboardHandler(warranties usecase.IWarrantyUseCase, invoices usecase.IInvoiceUseCase) *DashboardHandler {
	return &DashboardHandler{warranties: warranties, invoices: invoices}
}

// GetDashboard returns counts and totals for both collections.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ws, err := h.warranties.Stats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	is, err := h.invoices.Stats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStats(ws, is))
}

// GetRevenue returns the 12-month paid revenue series for a year, defaulting
// to the current one.
func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	year := time.Now().Year()
	if q := c.Query("anio"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		year = n
	}

	revenue, err := h.invoices.RevenueByMonth(c.Request.Context(), year)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"anio": year, "meses": response.FromRevenue(year, revenue)})
}
