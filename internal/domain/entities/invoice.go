package entities

import "time"

// InvoiceStatus is the billing state of an invoice.

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDIENTE"
	InvoiceStatusPaid    InvoiceStatus = "PAGADA"
	InvoiceStatusVoided  InvoiceStatus = "ANULADA"
)

func InvoiceStatuses() []InvoiceStatus {
	return []InvoiceStatus{InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusVoided}
}

func (s InvoiceStatus) Valid() bool {
	for _, v := range InvoiceStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// PaymentMethod records how a paid invoice was settled.

type PaymentMethod string

const (
	PaymentMethodCash           PaymentMethod = "EFECTIVO"
	PaymentMethodCard           PaymentMethod = "TARJETA"
	PaymentMethodTransfer       PaymentMethod = "TRANSFERENCIA"
	PaymentMethodMobileTransfer PaymentMethod = "BIZUM"
	PaymentMethodFinanced       PaymentMethod = "FINANCIADO"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodMobileTransfer, PaymentMethodFinanced}
}

func (m PaymentMethod) Valid() bool {
	for _, v := range PaymentMethods() {
		if m == v {
			return true
		}
	}
	return false
}

// InvoiceCustomer is the billed party.
type InvoiceCustomer struct {
	Name    string `json:"nombre"`
	TaxID   string `json:"nif"`
	Address string `json:"direccion"`
}

// InvoiceItem is one billable line. Total is derived; Recalculate must run
// after any edit to Quantity, UnitPrice or TaxRate.
//
// Monetary values are plain float64 with no currency rounding, matching the
// amounts the store already holds.
type InvoiceItem struct {
	Description string  `json:"descripcion"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precioUnitario"`
	TaxRate     int     `json:"iva"`
	Total       float64 `json:"total"`
}

// TaxableBase is quantity * unit price, before tax.
func (it InvoiceItem) TaxableBase() float64 {
	return float64(it.Quantity) * it.UnitPrice
}

// TaxAmount is the tax portion of the line.
func (it InvoiceItem) TaxAmount() float64 {
	return it.TaxableBase() * (float64(it.TaxRate) / 100.0)
}

// Recalculate writes the derived line total back onto the item.
func (it *InvoiceItem) Recalculate() {
	it.Total = it.TaxableBase() + it.TaxAmount()
}

// Invoice is a billing record with line items, tax and payment state.
//
// Identity mirrors Warranty: opaque store ID plus the immutable
// "FAC-<year>-NNNN" Number. WarrantyID is a soft reference.
//
// Subtotal, TaxTotal and Total are always derived from Items; they are never
// set independently once the item list changes.
type Invoice struct {
	ID            string          `json:"id"`
	Number        string          `json:"numeroFactura"`
	WarrantyID    string          `json:"garantiaId,omitempty"`
	Customer      InvoiceCustomer `json:"cliente"`
	IssueDate     time.Time       `json:"fechaEmision"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      float64         `json:"subtotal"`
	TaxTotal      float64         `json:"totalIVA"`
	Total         float64         `json:"total"`
	Status        InvoiceStatus   `json:"estado"`
	PaymentMethod PaymentMethod   `json:"metodoPago,omitempty"`
	Notes         string          `json:"notas"`
	CreatedAt     time.Time       `json:"fechaCreacion"`
	UpdatedAt     time.Time       `json:"fechaActualizacion"`
}

// RecalculateTotals recomputes every line total and the invoice-level
// subtotal, tax total and total. Idempotent; an empty item list yields 0.0
// for all three.
func (f *Invoice) RecalculateTotals() {
	f.Subtotal = 0.0
	f.TaxTotal = 0.0
	for i := range f.Items {
		f.Items[i].Recalculate()
		f.Subtotal += f.Items[i].TaxableBase()
		f.TaxTotal += f.Items[i].TaxAmount()
	}
	f.Total = f.Subtotal + f.TaxTotal
	f.UpdatedAt = time.Now().UTC()
}

// AddItem appends a line and recomputes totals.
func (f *Invoice) AddItem(it InvoiceItem) {
	f.Items = append(f.Items, it)
	f.RecalculateTotals()
}

// RemoveItem drops the line at index i and recomputes totals. Out-of-range
// indexes are ignored.
func (f *Invoice) RemoveItem(i int) {
	if i < 0 || i >= len(f.Items) {
		return
	}
	f.Items = append(f.Items[:i], f.Items[i+1:]...)
	f.RecalculateTotals()
}
