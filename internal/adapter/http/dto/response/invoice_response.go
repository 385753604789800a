package response

import (
	"encoding/json"
	"time"

	"garantias_service/internal/domain/entities"
)

type InvoiceCustomerResponse struct {
	Nombre    string `json:"nombre"`
	NIF       string `json:"nif,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

type InvoiceItemResponse struct {
	Descripcion    string  `json:"descripcion"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	IVA            int     `json:"iva"`
	Total          float64 `json:"total"`
}

type InvoiceResponse struct {
	ID                 string                  `json:"id"`
	NumeroFactura      string                  `json:"numeroFactura"`
	GarantiaID         string                  `json:"garantiaId,omitempty"`
	Cliente            InvoiceCustomerResponse `json:"cliente"`
	FechaEmision       string                  `json:"fechaEmision,omitempty"`
	Items              []InvoiceItemResponse   `json:"items"`
	Subtotal           float64                 `json:"subtotal"`
	TotalIVA           float64                 `json:"totalIVA"`
	Total              float64                 `json:"total"`
	Estado             string                  `json:"estado,omitempty"`
	EstadoMeta         StatusMeta              `json:"estadoMeta"`
	MetodoPago         string                  `json:"metodoPago,omitempty"`
	MetodoPagoEtiqueta string                  `json:"metodoPagoEtiqueta,omitempty"`
	Notas              string                  `json:"notas,omitempty"`
	FechaCreacion      time.Time               `json:"fechaCreacion"`
	FechaActualizacion time.Time               `json:"fechaActualizacion"`
}

func FromInvoice(f entities.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            f.ID,
		NumeroFactura: f.Number,
		GarantiaID:    f.WarrantyID,
		Cliente: InvoiceCustomerResponse{
			Nombre:    f.Customer.Name,
			NIF:       f.Customer.TaxID,
			Direccion: f.Customer.Address,
		},
		FechaEmision:       formatDay(f.IssueDate),
		Items:              []InvoiceItemResponse{},
		Subtotal:           f.Subtotal,
		TotalIVA:           f.TaxTotal,
		Total:              f.Total,
		Estado:             string(f.Status),
		EstadoMeta:         InvoiceStatusMeta(f.Status),
		MetodoPago:         string(f.PaymentMethod),
		Notas:              f.Notes,
		FechaCreacion:      f.CreatedAt,
		FechaActualizacion: f.UpdatedAt,
	}
	if f.PaymentMethod != "" {
		resp.MetodoPagoEtiqueta = PaymentMethodLabel(f.PaymentMethod)
	}
	for _, it := range f.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			Descripcion:    it.Description,
			Cantidad:       it.Quantity,
			PrecioUnitario: it.UnitPrice,
			IVA:            it.TaxRate,
			Total:          it.Total,
		})
	}
	return resp
}

func FromInvoices(fs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, FromInvoice(f))
	}
	return out
}

// InvoicePaymentResponse reports the outcome of a charge, keeping the raw
// provider response for traceability.
type InvoicePaymentResponse struct {
	Factura           InvoiceResponse `json:"factura"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderStatus    string          `json:"provider_status,omitempty"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
	FechaPago         time.Time       `json:"fechaPago"`
}
