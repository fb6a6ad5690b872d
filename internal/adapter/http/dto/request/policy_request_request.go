package request

import (
	"strings"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreatePolicyRequestRequest is the intake payload. Amounts accept JSON
// numbers or numeric strings.
type CreatePolicyRequestRequest struct {
	CustomerID                string                     `json:"customer_id" binding:"required"`
	ProductID                 string                     `json:"product_id" binding:"required"`
	Category                  string                     `json:"category" binding:"required"`
	SalesChannel              string                     `json:"sales_channel" binding:"required"`
	PaymentMethod             string                     `json:"payment_method" binding:"required"`
	TotalMonthlyPremiumAmount decimal.Decimal            `json:"total_monthly_premium_amount"`
	InsuredAmount             decimal.Decimal            `json:"insured_amount"`
	Coverages                 map[string]decimal.Decimal `json:"coverages" binding:"required"`
	Assistances               []string                   `json:"assistances"`
}

func (r CreatePolicyRequestRequest) ToInput() usecase.CreatePolicyRequestInput {
	return usecase.CreatePolicyRequestInput{
		CustomerID:                r.CustomerID,
		ProductID:                 r.ProductID,
		Category:                  entities.InsuranceCategory(r.Category),
		SalesChannel:              entities.SalesChannel(r.SalesChannel),
		PaymentMethod:             entities.PaymentMethod(r.PaymentMethod),
		TotalMonthlyPremiumAmount: r.TotalMonthlyPremiumAmount,
		InsuredAmount:             r.InsuredAmount,
		Coverages:                 r.Coverages,
		Assistances:               r.Assistances,
	}
}

// CancelPolicyRequestRequest is the optional body of the cancel endpoint.
type CancelPolicyRequestRequest struct {
	Reason string `json:"reason"`
}

func (r CancelPolicyRequestRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
