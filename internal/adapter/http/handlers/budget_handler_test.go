package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"avflow/internal/adapter/http/handlers/mocks"
	"avflow/internal/domain/entities"
	"avflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func budgetRouter(h *BudgetHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/budgets", h.ListBudgets)
	r.GET("/v1/budgets/:id", h.GetBudget)
	r.POST("/v1/budgets", h.CreateBudget)
	r.PATCH("/v1/budgets/:id/status", h.SetBudgetStatus)
	return r
}

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		body := `{"client_id":"cl-1","pickup_date":"01/06/2024","return_date":"2024-06-03"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("reversed dates map to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrInvalidDateRange)

		body := `{"client_id":"cl-1","pickup_date":"2024-06-05","return_date":"2024-06-01","items":[{"equipment_id":"eq-1","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["code"] != "INVALID_REQUEST" {
			t.Fatalf("unexpected error code: %v", res)
		}
	})

	t.Run("insufficient stock maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Budget{}, usecase.ErrInsufficientStock)

		body := `{"client_id":"cl-1","pickup_date":"2024-06-01","return_date":"2024-06-03","items":[{"equipment_id":"eq-1","quantity":4}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateBudgetInput{})).DoAndReturn(
			func(_ any, in usecase.CreateBudgetInput) (entities.Budget, error) {
				if in.ClientID != "cl-1" || in.Status != entities.BudgetStatusSent {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.PickupDate.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected pickup: %v", in.PickupDate)
				}
				if !in.EventDate.Equal(in.PickupDate) {
					t.Fatalf("blank event date must default to pickup")
				}
				if len(in.Items) != 1 || in.Items[0].Quantity != 2 {
					t.Fatalf("unexpected items: %+v", in.Items)
				}
				return entities.Budget{
					ID: "b-1", ClientID: in.ClientID, Status: in.Status,
					PickupDate: in.PickupDate, EventDate: in.EventDate, ReturnDate: in.ReturnDate,
					Items: []entities.BudgetItem{{EquipmentID: "eq-1", Quantity: 2, PricePerDay: 100}},
					Total: 550,
				}, nil
			},
		)

		body := `{"client_id":"cl-1","status":"sent","pickup_date":"2024-06-01","return_date":"2024-06-03","items":[{"equipment_id":"eq-1","quantity":2,"price_per_day":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if res["id"] != "b-1" || res["status"] != "sent" || res["total"] != 550.0 {
			t.Fatalf("unexpected response: %v", res)
		}
	})
}

func TestBudgetHandler_SetBudgetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		uc.EXPECT().SetStatus(gomock.Any(), "ghost", entities.BudgetStatusApproved).Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/ghost/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		uc.EXPECT().SetStatus(gomock.Any(), "b-1", entities.BudgetStatusApproved).Return(
			entities.Budget{ID: "b-1", Status: entities.BudgetStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/b-1/status", bytes.NewBufferString(`{"status":"Approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestBudgetHandler_GetBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Budget{}, usecase.ErrBudgetNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBudgetUseCase(ctrl)
		r := budgetRouter(NewBudgetHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
