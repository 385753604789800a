package response

import "garantias_service/internal/domain/entities"

// Display metadata for status symbols: human label plus the hex color the
// dashboard renders badges with.

type StatusMeta struct {
	Label string `json:"etiqueta"`
	Color string `json:"color"`
}

var warrantyStatusMeta = map[entities.WarrantyStatus]StatusMeta{
	entities.WarrantyStatusActive:  {Label: "Activa", Color: "#4CAF50"},
	entities.WarrantyStatusExpired: {Label: "Vencida", Color: "#9E9E9E"},
	entities.WarrantyStatusClaimed: {Label: "Reclamada", Color: "#FF9800"},
	entities.WarrantyStatusVoided:  {Label: "Anulada", Color: "#F44336"},
}

var invoiceStatusMeta = map[entities.InvoiceStatus]StatusMeta{
	entities.InvoiceStatusPending: {Label: "Pendiente", Color: "#FF9800"},
	entities.InvoiceStatusPaid:    {Label: "Pagada", Color: "#4CAF50"},
	entities.InvoiceStatusVoided:  {Label: "Anulada", Color: "#F44336"},
}

var paymentMethodLabels = map[entities.PaymentMethod]string{
	entities.PaymentMethodCash:           "Efectivo",
	entities.PaymentMethodCard:           "Tarjeta",
	entities.PaymentMethodTransfer:       "Transferencia",
	entities.PaymentMethodMobileTransfer: "Bizum",
	entities.PaymentMethodFinanced:       "Financiado",
}

func WarrantyStatusMeta(s entities.WarrantyStatus) StatusMeta {
	if m, ok := warrantyStatusMeta[s]; ok {
		return m
	}
	return StatusMeta{Label: string(s)}
}

func InvoiceStatusMeta(s entities.InvoiceStatus) StatusMeta {
	if m, ok := invoiceStatusMeta[s]; ok {
		return m
	}
	return StatusMeta{Label: string(s)}
}

func PaymentMethodLabel(m entities.PaymentMethod) string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}
