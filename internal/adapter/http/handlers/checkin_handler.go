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
	errInvalidCheckinPayload = pkg.NewDomainErrorSimple("INVALID_CHECKIN_INPUT", "Invalid checkin payload", http.StatusBadRequest)
)

// CheckinHandler handles scheduled-visit requests: console CRUD plus the
// public hash lookup used at the partner location.

type CheckinHandler struct {
	usecase usecase.ICheckinUseCase
}

func NewCheckinHandler(uc usecase.ICheckinUseCase) *CheckinHandler {
	return &CheckinHandler{usecase: uc}
}

func (h *CheckinHandler) CreateCheckin(c *gin.Context) {
	var payload request.CheckinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckinPayload.HTTPStatus, errInvalidCheckinPayload.ToHTTPError())
		return
	}

	checkin, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCheckinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCheckin(checkin))
}

func (h *CheckinHandler) UpdateCheckin(c *gin.Context) {
	var payload request.CheckinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckinPayload.HTTPStatus, errInvalidCheckinPayload.ToHTTPError())
		return
	}

	checkin, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapCheckinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckin(checkin))
}

func (h *CheckinHandler) GetCheckin(c *gin.Context) {
	checkin, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckin(checkin))
}

func (h *CheckinHandler) GetCheckinByHash(c *gin.Context) {
	checkin, err := h.usecase.GetByHash(c.Request.Context(), c.Param("hash"))
	if err != nil {
		appErr := mapCheckinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckin(checkin))
}

func (h *CheckinHandler) ListCheckins(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCheckinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckins(items))
}

func (h *CheckinHandler) DeleteCheckin(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCheckinError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCheckinError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckinID), errors.Is(err, usecase.ErrInvalidCheckinVal), errors.Is(err, usecase.ErrInvalidCheckinState):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCheckinNotFound):
		return pkg.NewDomainErrorSimple("CHECKIN_NOT_FOUND", "Checkin not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
