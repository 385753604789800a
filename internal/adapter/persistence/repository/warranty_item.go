package repository

import (
	"garantias_service/internal/domain/entities"

	"github.com/rs/zerolog/log"
)

// warrantyItem mirrors the persisted layout of the garantias collection.
// Attribute names are the collection's own; the mapper below owns every
// rule for crossing between this shape and the domain entity.

type warrantyItem struct {
	ID                    string                `dynamodbav:"_id,omitempty"`
	NumeroGarantia        string                `dynamodbav:"numeroGarantia"`
	Cliente               *warrantyClienteItem  `dynamodbav:"cliente,omitempty"`
	AireAcondicionado     *aireItem             `dynamodbav:"aireAcondicionado,omitempty"`
	Garantia              *detalleGarantiaItem  `dynamodbav:"garantia,omitempty"`
	HistorialReparaciones []reparacionItem      `dynamodbav:"historialReparaciones,omitempty"`
	FacturaID             string                `dynamodbav:"facturaId,omitempty"`
	Notas                 string                `dynamodbav:"notas,omitempty"`
	CreadoPor             string                `dynamodbav:"creadoPor,omitempty"`
	FechaCreacion         string                `dynamodbav:"fechaCreacion,omitempty"`
	FechaActualizacion    string                `dynamodbav:"fechaActualizacion,omitempty"`
}

type warrantyClienteItem struct {
	Nombre    string `dynamodbav:"nombre"`
	Telefono  string `dynamodbav:"telefono,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Direccion string `dynamodbav:"direccion,omitempty"`
}

type aireItem struct {
	Marca            string `dynamodbav:"marca,omitempty"`
	Modelo           string `dynamodbav:"modelo,omitempty"`
	NumeroSerie      string `dynamodbav:"numeroSerie,omitempty"`
	TipoRefrigerante string `dynamodbav:"tipoRefrigerante,omitempty"`
	PotenciaBTU      *int   `dynamodbav:"potenciaBTU,omitempty"`
	FechaInstalacion string `dynamodbav:"fechaInstalacion,omitempty"`
}

type detalleGarantiaItem struct {
	FechaInicio   string   `dynamodbav:"fechaInicio,omitempty"`
	FechaFin      string   `dynamodbav:"fechaFin,omitempty"`
	DuracionMeses int      `dynamodbav:"duracionMeses"`
	Tipo          string   `dynamodbav:"tipo,omitempty"`
	Estado        string   `dynamodbav:"estado,omitempty"`
	Cobertura     []string `dynamodbav:"cobertura,omitempty"`
}

type reparacionItem struct {
	Fecha       string  `dynamodbav:"fecha,omitempty"`
	Descripcion string  `dynamodbav:"descripcion"`
	Tecnico     string  `dynamodbav:"tecnico,omitempty"`
	Costo       float64 `dynamodbav:"costo"`
}

// toWarrantyItem encodes a domain entity for persistence. The identity
// attribute is omitted while unassigned (fresh inserts let the repository
// pick it).
func toWarrantyItem(w entities.Warranty) warrantyItem {
	it := warrantyItem{
		ID:                 w.ID,
		NumeroGarantia:     w.Number,
		FacturaID:          w.InvoiceID,
		Notas:              w.Notes,
		CreadoPor:          w.CreatedBy,
		FechaCreacion:      encodeInstant(w.CreatedAt),
		FechaActualizacion: encodeInstant(w.UpdatedAt),
	}

	it.Cliente = &warrantyClienteItem{
		Nombre:    w.Customer.Name,
		Telefono:  w.Customer.Phone,
		Email:     w.Customer.Email,
		Direccion: w.Customer.Address,
	}

	aire := &aireItem{
		Marca:            w.Unit.Brand,
		Modelo:           w.Unit.Model,
		NumeroSerie:      w.Unit.SerialNumber,
		TipoRefrigerante: w.Unit.RefrigerantType,
		FechaInstalacion: encodeDate(w.Unit.InstalledAt),
	}
	if w.Unit.CapacityBTU != 0 {
		btu := w.Unit.CapacityBTU
		aire.PotenciaBTU = &btu
	}
	it.AireAcondicionado = aire

	it.Garantia = &detalleGarantiaItem{
		FechaInicio:   encodeDate(w.Coverage.StartDate),
		FechaFin:      encodeDate(w.Coverage.EndDate),
		DuracionMeses: w.Coverage.DurationMonths,
		Tipo:          string(w.Coverage.Type),
		Estado:        string(w.Coverage.Status),
		Cobertura:     w.Coverage.Items,
	}

	for _, r := range w.Repairs {
		it.HistorialReparaciones = append(it.HistorialReparaciones, reparacionItem{
			Fecha:       encodeDate(r.Date),
			Descripcion: r.Description,
			Tecnico:     r.Technician,
			Costo:       r.Cost,
		})
	}

	return it
}

// fromWarrantyItem reconstitutes a domain entity from a persisted document.
// The identity attribute is mandatory; unknown enum symbols are logged and
// left unset rather than failing the document; the stored end date is taken
// verbatim (the store is authoritative for existing records).
func fromWarrantyItem(it warrantyItem) (entities.Warranty, error) {
	if it.ID == "" {
		return entities.Warranty{}, errMissingDocumentID
	}

	w := entities.Warranty{
		ID:        it.ID,
		Number:    it.NumeroGarantia,
		InvoiceID: it.FacturaID,
		Notes:     it.Notas,
		CreatedBy: it.CreadoPor,
		CreatedAt: decodeInstant(it.FechaCreacion),
		UpdatedAt: decodeInstant(it.FechaActualizacion),
	}

	if c := it.Cliente; c != nil {
		w.Customer = entities.Customer{Name: c.Nombre, Phone: c.Telefono, Email: c.Email, Address: c.Direccion}
	}

	if a := it.AireAcondicionado; a != nil {
		w.Unit = entities.AirConditioner{
			Brand:           a.Marca,
			Model:           a.Modelo,
			SerialNumber:    a.NumeroSerie,
			RefrigerantType: a.TipoRefrigerante,
			InstalledAt:     decodeDate(a.FechaInstalacion),
		}
		if a.PotenciaBTU != nil {
			w.Unit.CapacityBTU = *a.PotenciaBTU
		}
	}

	if g := it.Garantia; g != nil {
		w.Coverage = entities.Coverage{
			StartDate:      decodeDate(g.FechaInicio),
			EndDate:        decodeDate(g.FechaFin),
			DurationMonths: g.DuracionMeses,
			Type:           decodeWarrantyType(it.ID, g.Tipo),
			Status:         decodeWarrantyStatus(it.ID, g.Estado),
			Items:          g.Cobertura,
		}
	}

	for _, r := range it.HistorialReparaciones {
		w.Repairs = append(w.Repairs, entities.Repair{
			Date:        decodeDate(r.Fecha),
			Description: r.Descripcion,
			Technician:  r.Tecnico,
			Cost:        r.Costo,
		})
	}

	return w, nil
}

func decodeWarrantyType(id, s string) entities.WarrantyType {
	if s == "" {
		return ""
	}
	t := entities.WarrantyType(s)
	if !t.Valid() {
		log.Warn().Str("_id", id).Str("tipo", s).Msg("unknown warranty type symbol, leaving unset")
		return ""
	}
	return t
}

func decodeWarrantyStatus(id, s string) entities.WarrantyStatus {
	if s == "" {
		return ""
	}
	st := entities.WarrantyStatus(s)
	if !st.Valid() {
		log.Warn().Str("_id", id).Str("estado", s).Msg("unknown warranty status symbol, leaving unset")
		return ""
	}
	return st
}
