package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"garantias_service/internal/domain/entities"
	"garantias_service/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidPaymentMethod       = errors.New("invalid payment method")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrInvoiceNotPending          = errors.New("invoice not pending")
	ErrPaymentRejected            = errors.New("payment rejected by provider")
	ErrPaymentGatewayNotAvailable = errors.New("payment gateway not configured")
)

// PaymentResult is what a successful charge returns to the caller. The
// provider response is kept verbatim for traceability; nothing besides the
// invoice itself is persisted.
type PaymentResult struct {
	Invoice           entities.Invoice
	ProviderPaymentID string
	ProviderStatus    string
	ProviderResponse  json.RawMessage
	PaidAt            time.Time
}

// IInvoicePaymentUseCase charges a pending invoice through the payment
// gateway and, on approval, marks it PAGADA with the chosen method.

type IInvoicePaymentUseCase interface {
	RegisterPayment(ctx context.Context, invoiceID string, method entities.PaymentMethod, payload json.RawMessage) (PaymentResult, error)
}

type InvoicePaymentUseCase struct {
	invoices interfaces.IInvoiceRepository
	gateway  interfaces.IPaymentGateway
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{invoices: invoices, gateway: gateway}
}

// RegisterPayment validates the invoice is still PENDIENTE, forwards the
// charge to the provider with the amount forced from the persisted total,
// and updates the invoice on approval.
//
// The gateway call and the invoice update are two independent steps; if the
// update fails after a successful charge the caller must reconcile.
func (u *InvoicePaymentUseCase) RegisterPayment(ctx context.Context, invoiceID string, method entities.PaymentMethod, payload json.RawMessage) (PaymentResult, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return PaymentResult{}, ErrInvalidInvoiceID
	}
	if !method.Valid() {
		return PaymentResult{}, ErrInvalidPaymentMethod
	}

	mockMode := isPaymentGatewayMockEnabled()
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		if !mockMode {
			return PaymentResult{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return PaymentResult{}, ErrPaymentGatewayNotAvailable
	}

	f, err := u.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return PaymentResult{}, err
	}
	if f.ID == "" {
		return PaymentResult{}, ErrInvoiceNotFound
	}
	if f.Status != entities.InvoiceStatusPending {
		return PaymentResult{}, ErrInvoiceNotPending
	}

	// The provider charges what the store says the invoice is worth, not
	// what the request body claims.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = f.Number
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Factura %s", f.Number)
		}
		reqMap["transaction_amount"] = f.Total
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		providerPaymentID, providerStatus, providerResp = mockProviderPayment(payload, f)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Error().Err(err).Str("factura_id", invoiceID).Msg("payment gateway failed")
			return PaymentResult{}, err
		}
	}
	if providerStatus != "approved" {
		log.Warn().Str("factura_id", invoiceID).Str("provider_status", providerStatus).Msg("payment not approved")
		return PaymentResult{}, ErrPaymentRejected
	}

	f.Status = entities.InvoiceStatusPaid
	f.PaymentMethod = method
	f.UpdatedAt = time.Now().UTC()

	ok, err := u.invoices.Update(ctx, f)
	if err != nil {
		return PaymentResult{}, err
	}
	if !ok {
		return PaymentResult{}, ErrInvoiceNotFound
	}

	log.Info().
		Str("factura_id", f.ID).
		Str("numero", f.Number).
		Str("provider_payment_id", providerPaymentID).
		Float64("importe", f.Total).
		Msg("invoice paid")

	return PaymentResult{
		Invoice:           f,
		ProviderPaymentID: providerPaymentID,
		ProviderStatus:    providerStatus,
		ProviderResponse:  providerResp,
		PaidAt:            f.UpdatedAt,
	}, nil
}

func mockProviderPayment(payload json.RawMessage, f entities.Invoice) (string, string, json.RawMessage) {
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)

	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = f.Total
	}

	b, err := json.Marshal(resp)
	if err != nil {
		b = json.RawMessage(`{"status":"approved"}`)
	}
	return id, "approved", b
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
