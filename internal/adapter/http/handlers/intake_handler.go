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
	errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)
)

// IntakeHandler exposes the public five-step wizard. Every step operation
// returns the updated session snapshot so the client always renders from
// server state.

type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

func (h *IntakeHandler) StartSession(c *gin.Context) {
	var payload request.IntakeStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Start(c.Request.Context(), payload.ResolveFormID())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromIntakeSession(s))
}

func (h *IntakeHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) Advance(c *gin.Context) {
	var payload request.IntakeStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Advance(c.Request.Context(), c.Param("id"), payload.FromStep)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) Back(c *gin.Context) {
	var payload request.IntakeStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Back(c.Request.Context(), c.Param("id"), payload.FromStep)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) AcceptTerms(c *gin.Context) {
	var payload request.IntakeConsentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.AcceptTerms(c.Request.Context(), c.Param("id"), *payload.Accepted)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) SubmitPersonalInfo(c *gin.Context) {
	var payload request.IntakePersonalInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SubmitPersonalInfo(c.Request.Context(), c.Param("id"), payload.FromStep, payload.ToPersonalInfo())
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) SelectService(c *gin.Context) {
	var payload request.IntakeSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SelectService(c.Request.Context(), c.Param("id"), payload.OptionID, payload.ServiceID)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) SetFrequency(c *gin.Context) {
	var payload request.IntakeFrequencyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.SetFrequency(c.Request.Context(), c.Param("id"), payload.OptionID, *payload.Frequency)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) RemoveSelection(c *gin.Context) {
	s, err := h.usecase.RemoveSelection(c.Request.Context(), c.Param("id"), c.Param("option_id"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func (h *IntakeHandler) Submit(c *gin.Context) {
	var payload request.IntakeStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), payload.FromStep)
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromIntakeSession(s))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrIntakeSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Intake session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIntakeFormNotFound):
		return pkg.NewDomainErrorSimple("FORM_NOT_FOUND", "Form not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFormDisabled):
		return pkg.NewDomainErrorSimple("FORM_DISABLED", "Form has no services to offer", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStaleStep):
		return pkg.NewDomainErrorSimple("STALE_STEP", "Request is out of date with the session", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Step transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrTermsNotAccepted):
		return pkg.NewDomainErrorSimple("TERMS_NOT_ACCEPTED", "Terms must be accepted to continue", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPersonalInfo),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidCPF),
		errors.Is(err, usecase.ErrInvalidFrequency),
		errors.Is(err, usecase.ErrUnknownOption),
		errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Email already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrIncompleteSelection), errors.Is(err, usecase.ErrNoServicesSelected):
		return pkg.NewDomainErrorSimple("INCOMPLETE_SELECTION", "Every selected service needs a frequency", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_FLIGHT", "Submission already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "Session already submitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
