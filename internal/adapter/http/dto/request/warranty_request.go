package request

import (
	"time"

	"garantias_service/internal/domain/entities"
)

const dayLayout = "2006-01-02"

type CustomerRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
}

type AirConditionerRequest struct {
	Marca            string `json:"marca"`
	Modelo           string `json:"modelo"`
	NumeroSerie      string `json:"numeroSerie"`
	TipoRefrigerante string `json:"tipoRefrigerante"`
	PotenciaBTU      int    `json:"potenciaBTU"`
	FechaInstalacion string `json:"fechaInstalacion"`
}

type CoverageRequest struct {
	FechaInicio   string   `json:"fechaInicio"`
	DuracionMeses int      `json:"duracionMeses" binding:"required"`
	Tipo          string   `json:"tipo"`
	Cobertura     []string `json:"cobertura"`
}

// WarrantyRequest is the payload for creating or replacing a warranty. The
// coverage end date is never accepted from the client; it is derived from
// fechaInicio plus duracionMeses.
type WarrantyRequest struct {
	Cliente           CustomerRequest       `json:"cliente" binding:"required"`
	AireAcondicionado AirConditionerRequest `json:"aireAcondicionado"`
	Garantia          CoverageRequest       `json:"garantia" binding:"required"`
	FacturaID         string                `json:"facturaId"`
	Notas             string                `json:"notas"`
	CreadoPor         string                `json:"creadoPor"`
}

func (r WarrantyRequest) ToEntity() entities.Warranty {
	return entities.Warranty{
		Customer: entities.Customer{
			Name:    r.Cliente.Nombre,
			Phone:   r.Cliente.Telefono,
			Email:   r.Cliente.Email,
			Address: r.Cliente.Direccion,
		},
		Unit: entities.AirConditioner{
			Brand:           r.AireAcondicionado.Marca,
			Model:           r.AireAcondicionado.Modelo,
			SerialNumber:    r.AireAcondicionado.NumeroSerie,
			RefrigerantType: r.AireAcondicionado.TipoRefrigerante,
			CapacityBTU:     r.AireAcondicionado.PotenciaBTU,
			InstalledAt:     parseDay(r.AireAcondicionado.FechaInstalacion),
		},
		Coverage: entities.Coverage{
			StartDate:      parseDay(r.Garantia.FechaInicio),
			DurationMonths: r.Garantia.DuracionMeses,
			Type:           entities.WarrantyType(r.Garantia.Tipo),
			Items:          r.Garantia.Cobertura,
		},
		InvoiceID: r.FacturaID,
		Notes:     r.Notas,
		CreatedBy: r.CreadoPor,
	}
}

type WarrantyStatusRequest struct {
	Estado string `json:"estado" binding:"required"`
}

type RepairRequest struct {
	Fecha       string  `json:"fecha"`
	Descripcion string  `json:"descripcion" binding:"required"`
	Tecnico     string  `json:"tecnico"`
	Costo       float64 `json:"costo"`
}

func (r RepairRequest) ToEntity() entities.Repair {
	return entities.Repair{
		Date:        parseDay(r.Fecha),
		Description: r.Descripcion,
		Technician:  r.Tecnico,
		Cost:        r.Costo,
	}
}

// parseDay accepts "YYYY-MM-DD"; anything else yields the zero time and the
// use case applies its own defaulting.
func parseDay(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(dayLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}
