package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garantias_service/internal/adapter/http/handlers/mocks"
	"garantias_service/internal/domain/entities"
	"garantias_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleHandlerInvoice() entities.Invoice {
	now := time.Now().UTC()
	f := entities.Invoice{
		ID:         "inv-1",
		Number:     "FAC-2024-0012",
		WarrantyID: "war-1",
		Customer:   entities.InvoiceCustomer{Name: "Lucia Perez", TaxID: "12345678Z"},
		IssueDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
		Items: []entities.InvoiceItem{
			{Description: "Split 3.5kW instalado", Quantity: 1, UnitPrice: 900, TaxRate: 21},
		},
		Status:    entities.InvoiceStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.RecalculateTotals()
	return f
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.POST("/v1/facturas", h.CreateInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/facturas", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase rejects payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.POST("/v1/facturas", h.CreateInvoice)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, usecase.ErrInvalidInvoice)

		body := `{"cliente":{"nombre":"Lucia Perez"},"items":[{"descripcion":"split","cantidad":1,"precioUnitario":-900}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/facturas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.POST("/v1/facturas", h.CreateInvoice)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sampleHandlerInvoice(), nil)

		body := `{"cliente":{"nombre":"Lucia Perez"},"items":[{"descripcion":"Split 3.5kW instalado","cantidad":1,"precioUnitario":900}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/facturas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["numeroFactura"] != "FAC-2024-0012" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.GET("/v1/facturas", h.ListInvoices)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Invoice{sampleHandlerInvoice()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/facturas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("issue date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.GET("/v1/facturas", h.ListInvoices)

		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
		to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local)
		uc.EXPECT().ListByIssueDateRange(gomock.Any(), from, to).Return([]entities.Invoice{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/facturas?desde=2024-01-01&hasta=2024-12-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.GET("/v1/facturas", h.ListInvoices)

		req := httptest.NewRequest(http.MethodGet, "/v1/facturas?desde=ayer&hasta=2024-12-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by warranty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.GET("/v1/facturas", h.ListInvoices)

		uc.EXPECT().GetByWarrantyID(gomock.Any(), "war-1").Return(sampleHandlerInvoice(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/facturas?garantiaId=war-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 1 {
			t.Fatalf("expected one invoice, got %s", w.Body.String())
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.GET("/v1/facturas", h.ListInvoices)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.InvoiceStatusPaid).Return([]entities.Invoice{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/facturas?estado=PAGADA", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("preserves identity and defaults status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.PUT("/v1/facturas/:id", h.UpdateInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "inv-1").Return(sampleHandlerInvoice(), nil)
		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, f entities.Invoice) (entities.Invoice, error) {
			if f.ID != "inv-1" || f.Number != "FAC-2024-0012" {
				t.Errorf("identity not preserved: %q/%q", f.ID, f.Number)
			}
			if f.Status != entities.InvoiceStatusPending {
				t.Errorf("status = %s, want PENDIENTE carried over", f.Status)
			}
			return f, nil
		})

		body := `{"cliente":{"nombre":"Lucia Perez"},"items":[{"descripcion":"split","cantidad":1,"precioUnitario":950}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/facturas/inv-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.PUT("/v1/facturas/:id", h.UpdateInvoice)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		body := `{"cliente":{"nombre":"Lucia Perez"},"items":[]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/facturas/missing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_PayInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing method rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(gomock.NewController(t)), payments)

		r := gin.New()
		r.POST("/v1/facturas/:id/pago", h.PayInvoice)

		req := httptest.NewRequest(http.MethodPost, "/v1/facturas/inv-1/pago", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not pending maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(gomock.NewController(t)), payments)

		r := gin.New()
		r.POST("/v1/facturas/:id/pago", h.PayInvoice)

		payments.EXPECT().RegisterPayment(gomock.Any(), "inv-1", entities.PaymentMethodCard, gomock.Any()).Return(usecase.PaymentResult{}, usecase.ErrInvoiceNotPending)

		req := httptest.NewRequest(http.MethodPost, "/v1/facturas/inv-1/pago", bytes.NewBufferString(`{"metodoPago":"TARJETA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("rejected payment maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(gomock.NewController(t)), payments)

		r := gin.New()
		r.POST("/v1/facturas/:id/pago", h.PayInvoice)

		payments.EXPECT().RegisterPayment(gomock.Any(), "inv-1", entities.PaymentMethodCard, gomock.Any()).Return(usecase.PaymentResult{}, usecase.ErrPaymentRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/facturas/inv-1/pago", bytes.NewBufferString(`{"metodoPago":"TARJETA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success forwards payload and returns provider data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(gomock.NewController(t)), payments)

		r := gin.New()
		r.POST("/v1/facturas/:id/pago", h.PayInvoice)

		paid := sampleHandlerInvoice()
		paid.Status = entities.InvoiceStatusPaid
		paid.PaymentMethod = entities.PaymentMethodCard

		payments.EXPECT().RegisterPayment(gomock.Any(), "inv-1", entities.PaymentMethodCard, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ entities.PaymentMethod, payload json.RawMessage) (usecase.PaymentResult, error) {
				var sent map[string]any
				if err := json.Unmarshal(payload, &sent); err != nil {
					t.Errorf("payload not valid json: %v", err)
				}
				if sent["token"] != "tok-1" {
					t.Errorf("payload = %s", payload)
				}
				return usecase.PaymentResult{
					Invoice:           paid,
					ProviderPaymentID: "mp-999",
					ProviderStatus:    "approved",
					PaidAt:            time.Now().UTC(),
				}, nil
			})

		body := `{"metodoPago":"TARJETA","mp_payload":{"token":"tok-1"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/facturas/inv-1/pago", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["provider_payment_id"] != "mp-999" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_DeleteInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, mocks.NewMockIInvoicePaymentUseCase(gomock.NewController(t)))

		r := gin.New()
		r.DELETE("/v1/facturas/:id", h.DeleteInvoice)

		uc.EXPECT().Delete(gomock.Any(), "inv-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/facturas/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapInvoiceError(t *testing.T) {
	if got := mapInvoiceError(usecase.ErrInvalidInvoiceID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(usecase.ErrInvalidDateRange); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(usecase.ErrInvalidPaymentMethod); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapInvoiceError(usecase.ErrInvoiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapInvoiceError(usecase.ErrInvoiceNotPending); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapInvoiceError(usecase.ErrPaymentRejected); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapInvoiceError(usecase.ErrPaymentGatewayNotAvailable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapInvoiceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
