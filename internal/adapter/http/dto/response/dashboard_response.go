package response

import (
	"sort"

	"garantias_service/internal/domain/entities"
	"garantias_service/internal/usecase"
)

type StatusCountResponse struct {
	Estado   string     `json:"estado"`
	Meta     StatusMeta `json:"meta"`
	Cantidad int64      `json:"cantidad"`
}

type StatusTotalResponse struct {
	Estado  string     `json:"estado"`
	Meta    StatusMeta `json:"meta"`
	Importe float64    `json:"importe"`
}

type BrandCountResponse struct {
	Marca    string `json:"marca"`
	Cantidad int64  `json:"cantidad"`
}

type MonthRevenueResponse struct {
	Mes     int     `json:"mes"`
	Importe float64 `json:"importe"`
}

// DashboardResponse aggregates both collections into the single payload the
// dashboard view consumes.
type DashboardResponse struct {
	TotalGarantias     int64                 `json:"totalGarantias"`
	GarantiasPorEstado []StatusCountResponse `json:"garantiasPorEstado"`
	GarantiasPorMarca  []BrandCountResponse  `json:"garantiasPorMarca"`
	TotalFacturas      int64                 `json:"totalFacturas"`
	FacturasPorEstado  []StatusCountResponse `json:"facturasPorEstado"`
	ImportePorEstado   []StatusTotalResponse `json:"importePorEstado"`
	TotalFacturado     float64               `json:"totalFacturado"`
}

func FromStats(ws usecase.WarrantyStats, is usecase.InvoiceStats) DashboardResponse {
	resp := DashboardResponse{
		TotalGarantias: ws.Total,
		TotalFacturas:  is.Total,
		TotalFacturado: is.PaidTotal,
	}

	for _, status := range entities.WarrantyStatuses() {
		resp.GarantiasPorEstado = append(resp.GarantiasPorEstado, StatusCountResponse{
			Estado:   string(status),
			Meta:     WarrantyStatusMeta(status),
			Cantidad: ws.ByStatus[status],
		})
	}
	for _, status := range entities.InvoiceStatuses() {
		resp.FacturasPorEstado = append(resp.FacturasPorEstado, StatusCountResponse{
			Estado:   string(status),
			Meta:     InvoiceStatusMeta(status),
			Cantidad: is.ByStatus[status],
		})
		resp.ImportePorEstado = append(resp.ImportePorEstado, StatusTotalResponse{
			Estado:  string(status),
			Meta:    InvoiceStatusMeta(status),
			Importe: is.TotalsByStatus[status],
		})
	}

	brands := make([]string, 0, len(ws.ByBrand))
	for brand := range ws.ByBrand {
		brands = append(brands, brand)
	}
	sort.Strings(brands)
	for _, brand := range brands {
		resp.GarantiasPorMarca = append(resp.GarantiasPorMarca, BrandCountResponse{
			Marca:    brand,
			Cantidad: ws.ByBrand[brand],
		})
	}
	return resp
}

// FromRevenue renders the 12-month revenue series in month order.
func FromRevenue(year int, revenue map[int]float64) []MonthRevenueResponse {
	out := make([]MonthRevenueResponse, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, MonthRevenueResponse{Mes: m, Importe: revenue[m]})
	}
	return out
}
