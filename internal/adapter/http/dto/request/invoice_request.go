package request

import "garantias_service/internal/domain/entities"

type InvoiceCustomerRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	NIF       string `json:"nif"`
	Direccion string `json:"direccion"`
}

// InvoiceItemRequest carries one invoice line. IVA is a pointer so an absent
// rate can default to the standard 21 instead of a literal zero.
type InvoiceItemRequest struct {
	Descripcion    string  `json:"descripcion" binding:"required"`
	Cantidad       int     `json:"cantidad" binding:"required"`
	PrecioUnitario float64 `json:"precioUnitario"`
	IVA            *int    `json:"iva"`
}

// InvoiceRequest is the payload for creating or replacing an invoice.
// Subtotals and totals are never accepted from the client; they are
// recomputed from the item list.
type InvoiceRequest struct {
	GarantiaID   string                 `json:"garantiaId"`
	Cliente      InvoiceCustomerRequest `json:"cliente" binding:"required"`
	FechaEmision string                 `json:"fechaEmision"`
	Items        []InvoiceItemRequest   `json:"items"`
	Estado       string                 `json:"estado"`
	MetodoPago   string                 `json:"metodoPago"`
	Notas        string                 `json:"notas"`
}

func (r InvoiceRequest) ToEntity() entities.Invoice {
	f := entities.Invoice{
		WarrantyID: r.GarantiaID,
		Customer: entities.InvoiceCustomer{
			Name:    r.Cliente.Nombre,
			TaxID:   r.Cliente.NIF,
			Address: r.Cliente.Direccion,
		},
		IssueDate:     parseDay(r.FechaEmision),
		Status:        entities.InvoiceStatus(r.Estado),
		PaymentMethod: entities.PaymentMethod(r.MetodoPago),
		Notes:         r.Notas,
	}
	for _, it := range r.Items {
		rate := 21
		if it.IVA != nil {
			rate = *it.IVA
		}
		f.Items = append(f.Items, entities.InvoiceItem{
			Description: it.Descripcion,
			Quantity:    it.Cantidad,
			UnitPrice:   it.PrecioUnitario,
			TaxRate:     rate,
		})
	}
	return f
}

// InvoicePaymentRequest wraps the payment method plus an optional raw
// provider payload forwarded to the gateway.
type InvoicePaymentRequest struct {
	MetodoPago string         `json:"metodoPago" binding:"required"`
	MPPayload  map[string]any `json:"mp_payload"`
}
