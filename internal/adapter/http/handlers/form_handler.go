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
	errInvalidFormPayload   = pkg.NewDomainErrorSimple("INVALID_FORM_INPUT", "Invalid form payload", http.StatusBadRequest)
	errInvalidOptionPayload = pkg.NewDomainErrorSimple("INVALID_OPTION_INPUT", "Invalid form option payload", http.StatusBadRequest)
)

// FormHandler handles console requests for intake forms and their option
// slots, plus the public populated read used by the wizard landing page.

type FormHandler struct {
	usecase usecase.IFormUseCase
}

func NewFormHandler(uc usecase.IFormUseCase) *FormHandler {
	return &FormHandler{usecase: uc}
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var payload request.FormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormPayload.HTTPStatus, errInvalidFormPayload.ToHTTPError())
		return
	}

	form, err := h.usecase.Create(c.Request.Context(), payload.ResolveName(), payload.ResolveDescription())
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromForm(form))
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	var payload request.FormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFormPayload.HTTPStatus, errInvalidFormPayload.ToHTTPError())
		return
	}

	form, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ResolveName(), payload.ResolveDescription())
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromForm(form))
}

func (h *FormHandler) GetForm(c *gin.Context) {
	form, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromForm(form))
}

// GetPublicForm returns the populated catalog view consumed by the wizard.
func (h *FormHandler) GetPublicForm(c *gin.Context) {
	form, err := h.usecase.GetPublicByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromForm(form))
}

func (h *FormHandler) ListForms(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromForms(items))
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FormHandler) AddOption(c *gin.Context) {
	var payload request.FormOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOptionPayload.HTTPStatus, errInvalidOptionPayload.ToHTTPError())
		return
	}

	opt, err := h.usecase.AddOption(c.Request.Context(), c.Param("id"), payload.ResolvePrimaryServiceID(), payload.ResolveSecondaryServiceIDs())
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFormOption(opt))
}

func (h *FormHandler) UpdateOption(c *gin.Context) {
	var payload request.FormOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOptionPayload.HTTPStatus, errInvalidOptionPayload.ToHTTPError())
		return
	}

	opt, err := h.usecase.UpdateOption(c.Request.Context(), c.Param("option_id"), payload.ResolvePrimaryServiceID(), payload.ResolveSecondaryServiceIDs())
	if err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFormOption(opt))
}

func (h *FormHandler) RemoveOption(c *gin.Context) {
	if err := h.usecase.RemoveOption(c.Request.Context(), c.Param("option_id")); err != nil {
		appErr := mapFormError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFormError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFormID), errors.Is(err, usecase.ErrInvalidFormVal), errors.Is(err, usecase.ErrInvalidOptionVal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFormNotFound):
		return pkg.NewDomainErrorSimple("FORM_NOT_FOUND", "Form not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFormOptionNotFound):
		return pkg.NewDomainErrorSimple("FORM_OPTION_NOT_FOUND", "Form option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
