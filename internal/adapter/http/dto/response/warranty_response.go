package response

import (
	"time"

	"garantias_service/internal/domain/entities"
)

const dayLayout = "2006-01-02"

type CustomerResponse struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

type AirConditionerResponse struct {
	Marca            string `json:"marca,omitempty"`
	Modelo           string `json:"modelo,omitempty"`
	NumeroSerie      string `json:"numeroSerie,omitempty"`
	TipoRefrigerante string `json:"tipoRefrigerante,omitempty"`
	PotenciaBTU      int    `json:"potenciaBTU,omitempty"`
	FechaInstalacion string `json:"fechaInstalacion,omitempty"`
}

type CoverageResponse struct {
	FechaInicio   string     `json:"fechaInicio,omitempty"`
	FechaFin      string     `json:"fechaFin,omitempty"`
	DuracionMeses int        `json:"duracionMeses"`
	Tipo          string     `json:"tipo,omitempty"`
	Estado        string     `json:"estado,omitempty"`
	EstadoMeta    StatusMeta `json:"estadoMeta"`
	Cobertura     []string   `json:"cobertura,omitempty"`
}

type RepairResponse struct {
	Fecha       string  `json:"fecha,omitempty"`
	Descripcion string  `json:"descripcion"`
	Tecnico     string  `json:"tecnico,omitempty"`
	Costo       float64 `json:"costo"`
}

type WarrantyResponse struct {
	ID                    string                 `json:"id"`
	NumeroGarantia        string                 `json:"numeroGarantia"`
	Cliente               CustomerResponse       `json:"cliente"`
	AireAcondicionado     AirConditionerResponse `json:"aireAcondicionado"`
	Garantia              CoverageResponse       `json:"garantia"`
	HistorialReparaciones []RepairResponse       `json:"historialReparaciones,omitempty"`
	FacturaID             string                 `json:"facturaId,omitempty"`
	Notas                 string                 `json:"notas,omitempty"`
	CreadoPor             string                 `json:"creadoPor,omitempty"`
	DiasRestantes         int                    `json:"diasRestantes"`
	FechaCreacion         time.Time              `json:"fechaCreacion"`
	FechaActualizacion    time.Time              `json:"fechaActualizacion"`
}

func FromWarranty(w entities.Warranty) WarrantyResponse {
	resp := WarrantyResponse{
		ID:             w.ID,
		NumeroGarantia: w.Number,
		Cliente: CustomerResponse{
			Nombre:    w.Customer.Name,
			Telefono:  w.Customer.Phone,
			Email:     w.Customer.Email,
			Direccion: w.Customer.Address,
		},
		AireAcondicionado: AirConditionerResponse{
			Marca:            w.Unit.Brand,
			Modelo:           w.Unit.Model,
			NumeroSerie:      w.Unit.SerialNumber,
			TipoRefrigerante: w.Unit.RefrigerantType,
			PotenciaBTU:      w.Unit.CapacityBTU,
			FechaInstalacion: formatDay(w.Unit.InstalledAt),
		},
		Garantia: CoverageResponse{
			FechaInicio:   formatDay(w.Coverage.StartDate),
			FechaFin:      formatDay(w.Coverage.EndDate),
			DuracionMeses: w.Coverage.DurationMonths,
			Tipo:          string(w.Coverage.Type),
			Estado:        string(w.Coverage.Status),
			EstadoMeta:    WarrantyStatusMeta(w.Coverage.Status),
			Cobertura:     w.Coverage.Items,
		},
		FacturaID:          w.InvoiceID,
		Notas:              w.Notes,
		CreadoPor:          w.CreatedBy,
		DiasRestantes:      w.RemainingDays(),
		FechaCreacion:      w.CreatedAt,
		FechaActualizacion: w.UpdatedAt,
	}
	for _, r := range w.Repairs {
		resp.HistorialReparaciones = append(resp.HistorialReparaciones, RepairResponse{
			Fecha:       formatDay(r.Date),
			Descripcion: r.Description,
			Tecnico:     r.Technician,
			Costo:       r.Cost,
		})
	}
	return resp
}

func FromWarranties(ws []entities.Warranty) []WarrantyResponse {
	out := make([]WarrantyResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWarranty(w))
	}
	return out
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dayLayout)
}
