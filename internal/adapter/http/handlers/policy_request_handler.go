package handlers

import (
	"errors"
	"io"
	"net/http"

	request "policy_request_service/internal/adapter/http/dto/request"
	response "policy_request_service/internal/adapter/http/dto/response"
	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/usecase"
	"policy_request_service/internal/usecase/interfaces"
	"policy_request_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPolicyRequestPayload = pkg.NewDomainErrorSimple("INVALID_POLICY_REQUEST_PAYLOAD", "Invalid policy request payload", http.StatusBadRequest)
	errInvalidCancelPayload        = pkg.NewDomainErrorSimple("INVALID_CANCEL_PAYLOAD", "Invalid cancel payload", http.StatusBadRequest)
)

// PolicyRequestHandler exposes intake, queries and customer cancellation.
type PolicyRequestHandler struct {
	usecase   usecase.IPolicyRequestUseCase
	lifecycle usecase.IPolicyRequestLifecycleUseCase
}

func NewPolicyRequestHandler(uc usecase.IPolicyRequestUseCase, lifecycle usecase.IPolicyRequestLifecycleUseCase) *PolicyRequestHandler {
	return &PolicyRequestHandler{usecase: uc, lifecycle: lifecycle}
}

// CreatePolicyRequest godoc
// @Summary      Create a policy request
// @Description  Stores the request as RECEIVED and starts fraud analysis in the background
// @Tags         policy-requests
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePolicyRequestRequest  true  "Policy request"
// @Success      201      {object}  response.PolicyRequestCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /policy-requests [post]
func (h *PolicyRequestHandler) CreatePolicyRequest(c *gin.Context) {
	var payload request.CreatePolicyRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyRequestPayload.HTTPStatus, errInvalidPolicyRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPolicyRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPolicyRequestCreated(created))
}

// GetPolicyRequest godoc
// @Summary      Get a policy request
// @Tags         policy-requests
// @Produce      json
// @Param        id   path      string  true  "Policy request id"
// @Success      200  {object}  response.PolicyRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /policy-requests/{id} [get]
func (h *PolicyRequestHandler) GetPolicyRequest(c *gin.Context) {
	p, err := h.usecase.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPolicyRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyRequest(p))
}

// GetPolicyRequestsByCustomer godoc
// @Summary      List the policy requests of a customer
// @Tags         policy-requests
// @Produce      json
// @Param        customer_id  path      string  true  "Customer id"
// @Success      200          {array}   response.PolicyRequestResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /policy-requests/customer/{customer_id} [get]
func (h *PolicyRequestHandler) GetPolicyRequestsByCustomer(c *gin.Context) {
	list, err := h.usecase.FindByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapPolicyRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyRequests(list))
}

// CancelPolicyRequest godoc
// @Summary      Cancel a policy request
// @Tags         policy-requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                               true   "Policy request id"
// @Param        request  body      request.CancelPolicyRequestRequest  false  "Cancellation reason"
// @Success      200      {object}  response.PolicyRequestResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /policy-requests/{id}/cancel [post]
func (h *PolicyRequestHandler) CancelPolicyRequest(c *gin.Context) {
	var payload request.CancelPolicyRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidCancelPayload.HTTPStatus, errInvalidCancelPayload.ToHTTPError())
		return
	}

	p, err := h.lifecycle.Cancel(c.Request.Context(), c.Param("id"), payload.ResolveReason())
	if err != nil {
		appErr := mapPolicyRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyRequest(p))
}

func mapPolicyRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyRequestInput):
		return pkg.NewDomainError("INVALID_POLICY_REQUEST_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPolicyRequestID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyRequestNotFound):
		return pkg.NewDomainErrorSimple("POLICY_REQUEST_NOT_FOUND", "Policy request not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCannotCancel):
		return pkg.NewDomainErrorSimple("CANNOT_CANCEL", "Policy request can no longer be cancelled", http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Policy request was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
