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
	errInvalidPlanPayload = pkg.NewDomainErrorSimple("INVALID_PLAN_INPUT", "Invalid plan payload", http.StatusBadRequest)
)

// PlanHandler handles console requests for plans, including the Mercado Pago
// charge that marks a plan paid.

type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.Create(c.Request.Context(), payload.UserID)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPlan(plan))
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	detail, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlanDetail(detail))
}

func (h *PlanHandler) GetPlanByUser(c *gin.Context) {
	detail, err := h.usecase.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlanDetail(detail))
}

func (h *PlanHandler) AddPlanService(c *gin.Context) {
	var payload request.PlanServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	line, err := h.usecase.AddService(c.Request.Context(), c.Param("id"), payload.ServiceID, *payload.Frequency)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPlanService(line))
}

func (h *PlanHandler) UpdatePlanService(c *gin.Context) {
	var payload request.PlanServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	line, err := h.usecase.UpdateService(c.Request.Context(), c.Param("id"), c.Param("line_id"), payload.ServiceID, *payload.Frequency)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlanService(line))
}

func (h *PlanHandler) RemovePlanService(c *gin.Context) {
	if err := h.usecase.RemoveService(c.Request.Context(), c.Param("id"), c.Param("line_id")); err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// PayPlan charges the plan total through the payment gateway and flips
// is_pago on approval. The amount always comes from the stored plan, never
// from the client payload.
func (h *PlanHandler) PayPlan(c *gin.Context) {
	var payload request.PlanPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlanPayload.HTTPStatus, errInvalidPlanPayload.ToHTTPError())
		return
	}

	plan, err := h.usecase.Pay(c.Request.Context(), c.Param("id"), payload.Payment)
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(plan))
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanID), errors.Is(err, usecase.ErrInvalidPlanUserID), errors.Is(err, usecase.ErrInvalidPayload), errors.Is(err, usecase.ErrInvalidFrequency):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanServiceNotFound):
		return pkg.NewDomainErrorSimple("PLAN_SERVICE_NOT_FOUND", "Plan service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanAlreadyPaid):
		return pkg.NewDomainErrorSimple("PLAN_ALREADY_PAID", "Plan is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPlanEmpty):
		return pkg.NewDomainErrorSimple("PLAN_EMPTY", "Plan has no services to charge", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
