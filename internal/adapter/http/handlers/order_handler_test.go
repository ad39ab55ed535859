package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"souk_marketplace/internal/adapter/http/handlers/mocks"
	"souk_marketplace/internal/adapter/http/middleware"
	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	clientPrincipal   = entities.Principal{ID: "client-1", Role: entities.RoleClient, DisplayName: "Amira Ben Salah"}
	supplierPrincipal = entities.Principal{ID: "sup-a", Role: entities.RoleSupplier, DisplayName: "Karim Trading"}
)

func newOrderRouter(h *OrderHandler, p entities.Principal) *gin.Engine {
	r := gin.New()
	r.Use(middleware.SetPrincipal(p))
	r.POST("/v1/orders", h.PlaceOrder)
	r.GET("/v1/orders/mine", h.ListMine)
	r.GET("/v1/orders/received", h.ListReceived)
	r.PUT("/v1/orders/:id/accept", h.Accept)
	r.PUT("/v1/orders/:id/refuse", h.Refuse)
	return r
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		placement := mocks.NewMockIOrderPlacementUseCase(ctrl)
		h := NewOrderHandler(placement, nil, nil)
		r := newOrderRouter(h, clientPrincipal)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("supplier forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		placement := mocks.NewMockIOrderPlacementUseCase(ctrl)
		h := NewOrderHandler(placement, nil, nil)
		r := newOrderRouter(h, supplierPrincipal)

		placement.EXPECT().PlaceOrder(gomock.Any(), supplierPrincipal, gomock.Any()).Return(nil, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"items":[{"productId":"p1","quantite":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("insufficient stock maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		placement := mocks.NewMockIOrderPlacementUseCase(ctrl)
		h := NewOrderHandler(placement, nil, nil)
		r := newOrderRouter(h, clientPrincipal)

		placement.EXPECT().PlaceOrder(gomock.Any(), clientPrincipal, gomock.Any()).Return(nil, &usecase.InsufficientStockError{
			ProductID: "p2", ProductName: "Olive oil", Available: 2, Requested: 5,
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"items":[{"productId":"p2","quantite":5}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "INSUFFICIENT_STOCK" {
			t.Fatalf("expected INSUFFICIENT_STOCK, got %q", body["code"])
		}
	})

	t.Run("partial placement reports created orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		placement := mocks.NewMockIOrderPlacementUseCase(ctrl)
		h := NewOrderHandler(placement, nil, nil)
		r := newOrderRouter(h, clientPrincipal)

		partial := &usecase.PartialPlacementError{
			Created: []entities.Order{{ID: "ord-1", SupplierID: "sup-a", Status: entities.OrderStatusNew}},
			Err:     errors.New("db"),
		}
		placement.EXPECT().PlaceOrder(gomock.Any(), clientPrincipal, gomock.Any()).Return(partial.Created, partial)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"items":[{"productId":"p1","quantite":1},{"productId":"p2","quantite":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}

		var body struct {
			Code   string `json:"code"`
			Orders []struct {
				ID string `json:"id"`
			} `json:"orders"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Code != "ORDERS_PARTIALLY_CREATED" || len(body.Orders) != 1 || body.Orders[0].ID != "ord-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		placement := mocks.NewMockIOrderPlacementUseCase(ctrl)
		h := NewOrderHandler(placement, nil, nil)
		r := newOrderRouter(h, clientPrincipal)

		now := time.Now().UTC()
		created := []entities.Order{
			{ID: "ord-1", ClientID: "client-1", SupplierID: "sup-a", TotalAmount: 3000, Status: entities.OrderStatusNew, CreatedAt: now},
			{ID: "ord-2", ClientID: "client-1", SupplierID: "sup-b", TotalAmount: 300, Status: entities.OrderStatusNew, CreatedAt: now},
		}
		placement.EXPECT().PlaceOrder(gomock.Any(), clientPrincipal, []usecase.CartLine{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 1},
		}).Return(created, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"items":[{"productId":"p1","quantite":3},{"productId":"p2","quantite":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body struct {
			Orders []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"orders"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Orders) != 2 || body.Orders[0].ID != "ord-1" || body.Orders[1].ID != "ord-2" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestOrderHandler_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(nil, lifecycle, nil)
		r := newOrderRouter(h, supplierPrincipal)

		lifecycle.EXPECT().Accept(gomock.Any(), supplierPrincipal, "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/ord-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Order struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"order"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.Order.ID != "ord-1" || body.Order.Status != "accepted" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("refuse already processed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(nil, lifecycle, nil)
		r := newOrderRouter(h, supplierPrincipal)

		lifecycle.EXPECT().Refuse(gomock.Any(), supplierPrincipal, "ord-1").Return(entities.Order{}, usecase.ErrOrderAlreadyProcessed)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/ord-1/refuse", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIOrderLifecycleUseCase(ctrl)
		h := NewOrderHandler(nil, lifecycle, nil)
		r := newOrderRouter(h, supplierPrincipal)

		lifecycle.EXPECT().Accept(gomock.Any(), supplierPrincipal, "nope").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/orders/nope/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Queries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderHandler(nil, nil, query)
		r := newOrderRouter(h, clientPrincipal)

		query.EXPECT().ListMine(gomock.Any(), clientPrincipal).Return([]entities.Order{{ID: "ord-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/mine", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("received forbidden for client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIOrderQueryUseCase(ctrl)
		h := NewOrderHandler(nil, nil, query)
		r := newOrderRouter(h, clientPrincipal)

		query.EXPECT().ListReceived(gomock.Any(), clientPrincipal).Return(nil, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/received", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}
