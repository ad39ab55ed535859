package handlers

import (
	"errors"
	"net/http"

	request "souk_marketplace/internal/adapter/http/dto/request"
	response "souk_marketplace/internal/adapter/http/dto/response"
	"souk_marketplace/internal/adapter/http/middleware"
	"souk_marketplace/internal/usecase"
	"souk_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)

// ProductHandler handles supplier catalog management endpoints.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// Create handles POST /products.
func (h *ProductHandler) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.Create(c.Request.Context(), principal, payload.Name, payload.UnitPrice, payload.Quantity)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product))
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	var payload request.UpdateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.Update(c.Request.Context(), principal, c.Param("id"), payload.Name, payload.UnitPrice, payload.Quantity)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetByID handles GET /products/:id.
func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

// List handles GET /products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
