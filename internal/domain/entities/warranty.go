package entities

import "time"

// WarrantyType classifies the coverage sold with an installation.

type WarrantyType string

const (
	WarrantyTypeFull     WarrantyType = "COMPLETA"
	WarrantyTypeLimited  WarrantyType = "LIMITADA"
	WarrantyTypeExtended WarrantyType = "EXTENDIDA"
)

// WarrantyStatus is the lifecycle state of a warranty.
//
// Status never changes implicitly: detecting an expired or near-expiry
// warranty is a read-side computation, and moving to VENCIDA/RECLAMADA/
// ANULADA is always an explicit update issued by the caller.

type WarrantyStatus string

const (
	WarrantyStatusActive  WarrantyStatus = "ACTIVA"
	WarrantyStatusExpired WarrantyStatus = "VENCIDA"
	WarrantyStatusClaimed WarrantyStatus = "RECLAMADA"
	WarrantyStatusVoided  WarrantyStatus = "ANULADA"
)

// WarrantyTypes and WarrantyStatuses enumerate the closed symbol sets in a
// stable order; aggregations and decoders range over these.
func WarrantyTypes() []WarrantyType {
	return []WarrantyType{WarrantyTypeFull, WarrantyTypeLimited, WarrantyTypeExtended}
}

func WarrantyStatuses() []WarrantyStatus {
	return []WarrantyStatus{WarrantyStatusActive, WarrantyStatusExpired, WarrantyStatusClaimed, WarrantyStatusVoided}
}

func (s WarrantyStatus) Valid() bool {
	for _, v := range WarrantyStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

func (t WarrantyType) Valid() bool {
	for _, v := range WarrantyTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Customer is the warranty holder. Plain value object; the persistence layer
// only requires it to be present.
type Customer struct {
	Name    string `json:"nombre"`
	Phone   string `json:"telefono"`
	Email   string `json:"email"`
	Address string `json:"direccion"`
}

// AirConditioner describes the covered equipment.
type AirConditioner struct {
	Brand           string    `json:"marca"`
	Model           string    `json:"modelo"`
	SerialNumber    string    `json:"numeroSerie"`
	RefrigerantType string    `json:"tipoRefrigerante"`
	CapacityBTU     int       `json:"potenciaBTU"`
	InstalledAt     time.Time `json:"fechaInstalacion"`
}

// Coverage is the warranty window itself. EndDate is derived from
// StartDate + DurationMonths on every constructing or mutating path; a value
// reconstituted from storage is taken verbatim (the store is the source of
// truth for existing records).
type Coverage struct {
	StartDate      time.Time      `json:"fechaInicio"`
	EndDate        time.Time      `json:"fechaFin"`
	DurationMonths int            `json:"duracionMeses"`
	Type           WarrantyType   `json:"tipo"`
	Status         WarrantyStatus `json:"estado"`
	Items          []string       `json:"cobertura"`
}

// NewCoverage derives the end date and starts the warranty as ACTIVA.
func NewCoverage(start time.Time, durationMonths int, typ WarrantyType, items []string) Coverage {
	return Coverage{
		StartDate:      start,
		EndDate:        AddMonths(start, durationMonths),
		DurationMonths: durationMonths,
		Type:           typ,
		Status:         WarrantyStatusActive,
		Items:          items,
	}
}

// Recalculate re-derives EndDate from StartDate + DurationMonths. Called on
// any path where the caller may have edited the coverage.
func (c *Coverage) Recalculate() {
	c.EndDate = AddMonths(c.StartDate, c.DurationMonths)
}

// Repair is one entry in the append-only repair history.
type Repair struct {
	Date        time.Time `json:"fecha"`
	Description string    `json:"descripcion"`
	Technician  string    `json:"tecnico"`
	Cost        float64   `json:"costo"`
}

// Warranty is the coverage record for one installed air-conditioning unit.
//
// Identity:
//   - ID: opaque store id, assigned by the repository on insert.
//   - Number: human-readable "GAR-<year>-NNNN", immutable once assigned.
//
// InvoiceID is a soft reference to the invoice that originated the warranty;
// the store enforces no integrity on it and lookups are explicit.
type Warranty struct {
	ID        string         `json:"id"`
	Number    string         `json:"numeroGarantia"`
	Customer  Customer       `json:"cliente"`
	Unit      AirConditioner `json:"aireAcondicionado"`
	Coverage  Coverage       `json:"garantia"`
	Repairs   []Repair       `json:"historialReparaciones"`
	InvoiceID string         `json:"facturaId,omitempty"`
	Notes     string         `json:"notas"`
	CreatedBy string         `json:"creadoPor"`
	CreatedAt time.Time      `json:"fechaCreacion"`
	UpdatedAt time.Time      `json:"fechaActualizacion"`
}

// AddRepair appends to the repair history and touches UpdatedAt.
func (w *Warranty) AddRepair(r Repair) {
	w.Repairs = append(w.Repairs, r)
	w.UpdatedAt = time.Now().UTC()
}

// RemainingDays returns the whole days from today until the coverage end
// date. Negative once expired, 0 when no end date is set.
func (w *Warranty) RemainingDays() int {
	if w.Coverage.EndDate.IsZero() {
		return 0
	}
	return daysBetween(today(), w.Coverage.EndDate)
}

// IsNearExpiry reports whether today falls strictly inside the window
// (end-lookaheadDays, end). An end date of today or earlier is not "near
// expiry"; that case belongs to the expired check.
func (w *Warranty) IsNearExpiry(lookaheadDays int) bool {
	if w.Coverage.EndDate.IsZero() {
		return false
	}
	end := dateOnly(w.Coverage.EndDate)
	alert := end.AddDate(0, 0, -lookaheadDays)
	now := today()
	return now.After(alert) && now.Before(end)
}
