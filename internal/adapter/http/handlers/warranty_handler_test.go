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

func sampleHandlerWarranty() entities.Warranty {
	now := time.Now().UTC()
	return entities.Warranty{
		ID:       "war-1",
		Number:   "GAR-2024-0007",
		Customer: entities.Customer{Name: "Lucia Perez", Phone: "600111222"},
		Unit:     entities.AirConditioner{Brand: "Daikin", Model: "TXF35C", SerialNumber: "SN-100"},
		Coverage: entities.Coverage{
			StartDate:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
			EndDate:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local),
			DurationMonths: 24,
			Type:           entities.WarrantyTypeFull,
			Status:         entities.WarrantyStatusActive,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestWarrantyHandler_CreateWarranty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.POST("/v1/garantias", h.CreateWarranty)

		req := httptest.NewRequest(http.MethodPost, "/v1/garantias", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.POST("/v1/garantias", h.CreateWarranty)

		req := httptest.NewRequest(http.MethodPost, "/v1/garantias", bytes.NewBufferString(`{"notas":"sin cliente"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.POST("/v1/garantias", h.CreateWarranty)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Warranty{}, usecase.ErrInvalidCoverageMonths)

		body := `{"cliente":{"nombre":"Lucia Perez"},"garantia":{"duracionMeses":24}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/garantias", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.POST("/v1/garantias", h.CreateWarranty)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sampleHandlerWarranty(), nil)

		body := `{"cliente":{"nombre":"Lucia Perez"},"garantia":{"duracionMeses":24,"tipo":"COMPLETA"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/garantias", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["numeroGarantia"] != "GAR-2024-0007" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWarrantyHandler_ListWarranties(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.GET("/v1/garantias", h.ListWarranties)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Warranty{sampleHandlerWarranty()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/garantias", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 1 {
			t.Fatalf("expected one warranty, got %s", w.Body.String())
		}
	})

	t.Run("filter by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.GET("/v1/garantias", h.ListWarranties)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.WarrantyStatusActive).Return([]entities.Warranty{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/garantias?estado=ACTIVA", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("free text search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.GET("/v1/garantias", h.ListWarranties)

		uc.EXPECT().Search(gomock.Any(), "daikin").Return([]entities.Warranty{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/garantias?q=daikin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("expiring lookahead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.GET("/v1/garantias", h.ListWarranties)

		uc.EXPECT().ListExpiring(gomock.Any(), 30).Return([]entities.Warranty{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/garantias?proximasAVencer=30", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non numeric lookahead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.GET("/v1/garantias", h.ListWarranties)

		req := httptest.NewRequest(http.MethodGet, "/v1/garantias?proximasAVencer=pronto", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWarrantyHandler_GetWarranty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.GET("/v1/garantias/:id", h.GetWarranty)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Warranty{}, usecase.ErrWarrantyNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/garantias/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("by number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.GET("/v1/garantias/numero/:numero", h.GetWarrantyByNumber)

		uc.EXPECT().GetByNumber(gomock.Any(), "GAR-2024-0007").Return(sampleHandlerWarranty(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/garantias/numero/GAR-2024-0007", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWarrantyHandler_UpdateWarranty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("preserves number and history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.PUT("/v1/garantias/:id", h.UpdateWarranty)

		current := sampleHandlerWarranty()
		current.Repairs = []entities.Repair{{Description: "cambio de filtro", Cost: 40}}

		uc.EXPECT().GetByID(gomock.Any(), "war-1").Return(current, nil)
		uc.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, w entities.Warranty) (entities.Warranty, error) {
			if w.ID != "war-1" || w.Number != "GAR-2024-0007" {
				t.Errorf("identity not preserved: %q/%q", w.ID, w.Number)
			}
			if len(w.Repairs) != 1 {
				t.Errorf("repair history not preserved: %d entries", len(w.Repairs))
			}
			if w.Customer.Name != "Lucia Perez Gomez" {
				t.Errorf("customer name = %q", w.Customer.Name)
			}
			return w, nil
		})

		body := `{"cliente":{"nombre":"Lucia Perez Gomez"},"garantia":{"duracionMeses":24}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/garantias/war-1", bytes.NewBufferString(body))
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
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.PUT("/v1/garantias/:id", h.UpdateWarranty)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Warranty{}, usecase.ErrWarrantyNotFound)

		body := `{"cliente":{"nombre":"Lucia Perez"},"garantia":{"duracionMeses":24}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/garantias/missing", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWarrantyHandler_PatchWarrantyStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns refreshed warranty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.PATCH("/v1/garantias/:id/estado", h.PatchWarrantyStatus)

		claimed := sampleHandlerWarranty()
		claimed.Coverage.Status = entities.WarrantyStatusClaimed

		uc.EXPECT().UpdateStatus(gomock.Any(), "war-1", entities.WarrantyStatusClaimed).Return(nil)
		uc.EXPECT().GetByID(gomock.Any(), "war-1").Return(claimed, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/garantias/war-1/estado", bytes.NewBufferString(`{"estado":"RECLAMADA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		garantia, _ := resp["garantia"].(map[string]any)
		if garantia["estado"] != "RECLAMADA" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid status symbol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.PATCH("/v1/garantias/:id/estado", h.PatchWarrantyStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "war-1", entities.WarrantyStatus("ROTA")).Return(usecase.ErrInvalidWarrantyStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/garantias/war-1/estado", bytes.NewBufferString(`{"estado":"ROTA"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWarrantyHandler_AddRepair(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.POST("/v1/garantias/:id/reparaciones", h.AddRepair)

		repaired := sampleHandlerWarranty()
		repaired.Repairs = []entities.Repair{{Description: "recarga de gas", Technician: "Mario", Cost: 120}}

		uc.EXPECT().AddRepair(gomock.Any(), "war-1", gomock.Any()).Return(repaired, nil)

		body := `{"descripcion":"recarga de gas","tecnico":"Mario","costo":120}`
		req := httptest.NewRequest(http.MethodPost, "/v1/garantias/war-1/reparaciones", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		repairs, _ := resp["historialReparaciones"].([]any)
		if len(repairs) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid repair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.POST("/v1/garantias/:id/reparaciones", h.AddRepair)

		uc.EXPECT().AddRepair(gomock.Any(), "war-1", gomock.Any()).Return(entities.Warranty{}, usecase.ErrInvalidRepair)

		req := httptest.NewRequest(http.MethodPost, "/v1/garantias/war-1/reparaciones", bytes.NewBufferString(`{"descripcion":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWarrantyHandler_DeleteWarranty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.DELETE("/v1/garantias/:id", h.DeleteWarranty)

		uc.EXPECT().Delete(gomock.Any(), "war-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/garantias/war-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWarrantyUseCase(ctrl)
		h := NewWarrantyHandler(uc)

		r := gin.New()
		r.DELETE("/v1/garantias/:id", h.DeleteWarranty)

		uc.EXPECT().Delete(gomock.Any(), "missing").Return(usecase.ErrWarrantyNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/garantias/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapWarrantyError(t *testing.T) {
	if got := mapWarrantyError(usecase.ErrInvalidWarrantyID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWarrantyError(usecase.ErrInvalidWarranty); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWarrantyError(usecase.ErrInvalidCoverageMonths); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWarrantyError(usecase.ErrInvalidExpiryLookahead); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWarrantyError(usecase.ErrWarrantyNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWarrantyError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
