package handlers

import (
	"context"
	"errors"
	"net/http"

	request "souk_marketplace/internal/adapter/http/dto/request"
	response "souk_marketplace/internal/adapter/http/dto/response"
	"souk_marketplace/internal/adapter/http/middleware"
	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase"
	"souk_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_PAYLOAD", "Invalid order payload", http.StatusBadRequest)
	errMissingPrincipal    = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

// OrderHandler handles the order placement, lifecycle and query endpoints.

type OrderHandler struct {
	placement usecase.IOrderPlacementUseCase
	lifecycle usecase.IOrderLifecycleUseCase
	query     usecase.IOrderQueryUseCase
}

func NewOrderHandler(
	placement usecase.IOrderPlacementUseCase,
	lifecycle usecase.IOrderLifecycleUseCase,
	query usecase.IOrderQueryUseCase,
) *OrderHandler {
	return &OrderHandler{placement: placement, lifecycle: lifecycle, query: query}
}

// PlaceOrder handles POST /orders: it validates the cart, splits it into
// one order per supplier and returns every created order.
//
// A partial placement (some supplier groups committed before a later write
// failed) is reported with the created orders in the error body so the
// caller can tell "nothing was created" from "these were".
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.PlaceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	orders, err := h.placement.PlaceOrder(c.Request.Context(), principal, payload.ToCartLines())
	if err != nil {
		var partial *usecase.PartialPlacementError
		if errors.As(err, &partial) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "ORDERS_PARTIALLY_CREATED",
				"message": "Some orders were created before the placement failed",
				"orders":  response.FromOrders(partial.Created).Orders,
			})
			return
		}
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrders(orders))
}

// ListMine handles GET /orders/mine.
func (h *OrderHandler) ListMine(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	orders, err := h.query.ListMine(c.Request.Context(), principal)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ListReceived handles GET /orders/received.
func (h *OrderHandler) ListReceived(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	orders, err := h.query.ListReceived(c.Request.Context(), principal)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// Accept handles PUT /orders/:id/accept.
func (h *OrderHandler) Accept(c *gin.Context) {
	h.respond(c, h.lifecycle.Accept)
}

// Refuse handles PUT /orders/:id/refuse.
func (h *OrderHandler) Refuse(c *gin.Context) {
	h.respond(c, h.lifecycle.Refuse)
}

func (h *OrderHandler) respond(
	c *gin.Context,
	decide func(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error),
) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	order, err := decide(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": response.FromOrderStatus(order)})
}

func mapOrderError(err error) *pkg.AppError {
	var notFound *usecase.ProductNotFoundError
	var stock *usecase.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product "+notFound.ProductID+" not found", http.StatusBadRequest)
	case errors.As(err, &stock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", stock.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCart), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyProcessed):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PROCESSED", "This order has already been processed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
