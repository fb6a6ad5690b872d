package routes

import (
	"policy_request_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPolicyRequests = "/policy-requests"
)

func addPolicyRequestRoutes(rg *gin.RouterGroup, h *handlers.PolicyRequestHandler) {
	policyRequests := rg.Group(PathPolicyRequests)
	{
		policyRequests.POST("", h.CreatePolicyRequest)
		policyRequests.GET("/:id", h.GetPolicyRequest)
		policyRequests.GET("/customer/:customer_id", h.GetPolicyRequestsByCustomer)
		policyRequests.POST("/:id/cancel", h.CancelPolicyRequest)
	}
}
