package repository

import (
	"garantias_service/internal/domain/entities"

	"github.com/rs/zerolog/log"
)

const defaultTaxRate = 21

// invoiceItem mirrors the persisted layout of the facturas collection.
// EstadoLegacy covers documents written before the status attribute was
// renamed to estado; it is read-only and never written back.

type invoiceItem struct {
	ID                 string              `dynamodbav:"_id,omitempty"`
	NumeroFactura      string              `dynamodbav:"numeroFactura"`
	GarantiaID         string              `dynamodbav:"garantiaId,omitempty"`
	Cliente            *invoiceClienteItem `dynamodbav:"cliente,omitempty"`
	FechaEmision       string              `dynamodbav:"fechaEmision,omitempty"`
	Items              []invoiceLineItem   `dynamodbav:"items,omitempty"`
	Subtotal           *float64            `dynamodbav:"subtotal,omitempty"`
	TotalIVA           *float64            `dynamodbav:"totalIVA,omitempty"`
	Total              *float64            `dynamodbav:"total,omitempty"`
	Estado             string              `dynamodbav:"estado,omitempty"`
	EstadoLegacy       string              `dynamodbav:"estadoFactura,omitempty"`
	MetodoPago         string              `dynamodbav:"metodoPago,omitempty"`
	Notas              string              `dynamodbav:"notas,omitempty"`
	FechaCreacion      string              `dynamodbav:"fechaCreacion,omitempty"`
	FechaActualizacion string              `dynamodbav:"fechaActualizacion,omitempty"`
}

type invoiceClienteItem struct {
	Nombre    string `dynamodbav:"nombre"`
	NIF       string `dynamodbav:"nif,omitempty"`
	Direccion string `dynamodbav:"direccion,omitempty"`
}

type invoiceLineItem struct {
	Descripcion    string   `dynamodbav:"descripcion"`
	Cantidad       *int     `dynamodbav:"cantidad,omitempty"`
	PrecioUnitario *float64 `dynamodbav:"precioUnitario,omitempty"`
	IVA            *int     `dynamodbav:"iva,omitempty"`
	Total          *float64 `dynamodbav:"total,omitempty"`
}

func toInvoiceItem(f entities.Invoice) invoiceItem {
	subtotal := f.Subtotal
	taxTotal := f.TaxTotal
	total := f.Total

	it := invoiceItem{
		ID:                 f.ID,
		NumeroFactura:      f.Number,
		GarantiaID:         f.WarrantyID,
		FechaEmision:       encodeDate(f.IssueDate),
		Subtotal:           &subtotal,
		TotalIVA:           &taxTotal,
		Total:              &total,
		Estado:             string(f.Status),
		MetodoPago:         string(f.PaymentMethod),
		Notas:              f.Notes,
		FechaCreacion:      encodeInstant(f.CreatedAt),
		FechaActualizacion: encodeInstant(f.UpdatedAt),
	}

	it.Cliente = &invoiceClienteItem{
		Nombre:    f.Customer.Name,
		NIF:       f.Customer.TaxID,
		Direccion: f.Customer.Address,
	}

	for _, line := range f.Items {
		qty := line.Quantity
		price := line.UnitPrice
		tax := line.TaxRate
		lineTotal := line.Total
		it.Items = append(it.Items, invoiceLineItem{
			Descripcion:    line.Description,
			Cantidad:       &qty,
			PrecioUnitario: &price,
			IVA:            &tax,
			Total:          &lineTotal,
		})
	}

	return it
}

// fromInvoiceItem reconstitutes an invoice from a persisted document.
// Missing line quantities decode to zero and missing tax rates to the
// standard 21 percent; the legacy estadoFactura attribute wins over estado
// when both survive on the same document.
func fromInvoiceItem(it invoiceItem) (entities.Invoice, error) {
	if it.ID == "" {
		return entities.Invoice{}, errMissingDocumentID
	}

	f := entities.Invoice{
		ID:            it.ID,
		Number:        it.NumeroFactura,
		WarrantyID:    it.GarantiaID,
		IssueDate:     decodeDate(it.FechaEmision),
		Status:        decodeInvoiceStatus(it.ID, it.EstadoLegacy, it.Estado),
		PaymentMethod: decodePaymentMethod(it.ID, it.MetodoPago),
		Notes:         it.Notas,
		CreatedAt:     decodeInstant(it.FechaCreacion),
		UpdatedAt:     decodeInstant(it.FechaActualizacion),
	}

	if c := it.Cliente; c != nil {
		f.Customer = entities.InvoiceCustomer{Name: c.Nombre, TaxID: c.NIF, Address: c.Direccion}
	}

	for _, line := range it.Items {
		li := entities.InvoiceItem{Description: line.Descripcion, TaxRate: defaultTaxRate}
		if line.Cantidad != nil {
			li.Quantity = *line.Cantidad
		}
		if line.PrecioUnitario != nil {
			li.UnitPrice = *line.PrecioUnitario
		}
		if line.IVA != nil {
			li.TaxRate = *line.IVA
		}
		if line.Total != nil {
			li.Total = *line.Total
		} else {
			li.Recalculate()
		}
		f.Items = append(f.Items, li)
	}

	if it.Subtotal != nil {
		f.Subtotal = *it.Subtotal
	}
	if it.TotalIVA != nil {
		f.TaxTotal = *it.TotalIVA
	}
	if it.Total != nil {
		f.Total = *it.Total
	}

	return f, nil
}

func decodeInvoiceStatus(id, legacy, modern string) entities.InvoiceStatus {
	s := legacy
	if s == "" {
		s = modern
	}
	if s == "" {
		return ""
	}
	st := entities.InvoiceStatus(s)
	if !st.Valid() {
		log.Warn().Str("_id", id).Str("estado", s).Msg("unknown invoice status symbol, leaving unset")
		return ""
	}
	return st
}

func decodePaymentMethod(id, s string) entities.PaymentMethod {
	if s == "" {
		return ""
	}
	m := entities.PaymentMethod(s)
	if !m.Valid() {
		log.Warn().Str("_id", id).Str("metodoPago", s).Msg("unknown payment method symbol, leaving unset")
		return ""
	}
	return m
}
