package handlers

import (
	"net/http"

	response "souk_marketplace/internal/adapter/http/dto/response"
	"souk_marketplace/internal/adapter/http/middleware"
	"souk_marketplace/internal/usecase"
	"souk_marketplace/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the principal's notification feed.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// List handles GET /notifications: up to 50 most recent, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return
	}

	notifications, err := h.usecase.ListForUser(c.Request.Context(), principal)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}
