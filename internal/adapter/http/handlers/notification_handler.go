package handlers

import (
	"errors"
	"net/http"

	request "beautytag/internal/adapter/http/dto/request"
	response "beautytag/internal/adapter/http/dto/response"
	"beautytag/internal/usecase"
	"beautytag/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNotificationPayload = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_INPUT", "Invalid notification payload", http.StatusBadRequest)
)

// NotificationHandler handles the console inbox, including the approval flow
// that turns an intake submission into an account with an unpaid plan.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var payload request.NotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotificationPayload.HTTPStatus, errInvalidNotificationPayload.ToHTTPError())
		return
	}

	n, err := h.usecase.Create(c.Request.Context(), payload.Title, payload.Metadata)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromNotification(n))
}

func (h *NotificationHandler) GetNotification(c *gin.Context) {
	n, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(items))
}

func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	n, err := h.usecase.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

// ApproveNotification provisions the submitted user, an unpaid plan and its
// service lines in one operation, then marks the notification read.
func (h *NotificationHandler) ApproveNotification(c *gin.Context) {
	user, plan, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromApproval(user, plan))
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID), errors.Is(err, usecase.ErrInvalidNotificationVal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationNotApprovable):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_APPROVABLE", "Notification has no intake submission to approve", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmissionUserExists):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Email already registered", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
