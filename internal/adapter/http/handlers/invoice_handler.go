package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	request "garantias_service/internal/adapter/http/dto/request"
	response "garantias_service/internal/adapter/http/dto/response"
	"garantias_service/internal/domain/entities"
	"garantias_service/internal/usecase"
	"garantias_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

const queryDayLayout = "2006-01-02"

// InvoiceHandler handles HTTP requests for invoices, including charging
// pending ones through the payment gateway.

type InvoiceHandler struct {
	usecase  usecase.IInvoiceUseCase
	payments usecase.IInvoicePaymentUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, payments usecase.IInvoicePaymentUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, payments: payments}
}

// CreateInvoice registers an invoice and assigns its FAC number.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	f, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(f))
}

// ListInvoices lists every invoice, optionally filtered with the estado, q,
// garantiaId or desde/hasta query parameters.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		fs  []entities.Invoice
		err error
	)
	switch {
	case c.Query("desde") != "" || c.Query("hasta") != "":
		from, fromErr := time.ParseInLocation(queryDayLayout, c.Query("desde"), time.Local)
		to, toErr := time.ParseInLocation(queryDayLayout, c.Query("hasta"), time.Local)
		if fromErr != nil || toErr != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		fs, err = h.usecase.ListByIssueDateRange(ctx, from, to)
	case c.Query("garantiaId") != "":
		var f entities.Invoice
		f, err = h.usecase.GetByWarrantyID(ctx, c.Query("garantiaId"))
		if err == nil {
			fs = []entities.Invoice{f}
		}
	case c.Query("estado") != "":
		fs, err = h.usecase.ListByStatus(ctx, entities.InvoiceStatus(c.Query("estado")))
	case c.Query("q") != "":
		fs, err = h.usecase.Search(ctx, c.Query("q"))
	default:
		fs, err = h.usecase.List(ctx)
	}
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(fs))
}

// GetInvoice resolves an invoice by store id.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	f, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(f))
}

// GetInvoiceByNumber resolves an invoice by its FAC number.
func (h *InvoiceHandler) GetInvoiceByNumber(c *gin.Context) {
	f, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("numero"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(f))
}

// UpdateInvoice replaces an invoice's mutable fields and recomputes totals.
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	current, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f := payload.ToEntity()
	f.ID = current.ID
	f.Number = current.Number
	f.CreatedAt = current.CreatedAt
	if f.Status == "" {
		f.Status = current.Status
	}
	if f.IssueDate.IsZero() {
		f.IssueDate = current.IssueDate
	}

	updated, err := h.usecase.Update(c.Request.Context(), f)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(updated))
}

// PayInvoice charges a pending invoice through the payment gateway and marks
// it paid on approval.
func (h *InvoiceHandler) PayInvoice(c *gin.Context) {
	var payload request.InvoicePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	var raw json.RawMessage
	if payload.MPPayload != nil {
		b, err := json.Marshal(payload.MPPayload)
		if err != nil {
			c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
			return
		}
		raw = b
	}

	res, err := h.payments.RegisterPayment(c.Request.Context(), c.Param("id"), entities.PaymentMethod(payload.MetodoPago), raw)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.InvoicePaymentResponse{
		Factura:           response.FromInvoice(res.Invoice),
		ProviderPaymentID: res.ProviderPaymentID,
		ProviderStatus:    res.ProviderStatus,
		ProviderResponse:  res.ProviderResponse,
		FechaPago:         res.PaidAt,
	})
}

// DeleteInvoice removes an invoice permanently.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID),
		errors.Is(err, usecase.ErrInvalidInvoice),
		errors.Is(err, usecase.ErrInvalidInvoiceStatus),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidRevenueYear),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPending):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PENDING", "Invoice is not pending payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment rejected by provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayNotAvailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
