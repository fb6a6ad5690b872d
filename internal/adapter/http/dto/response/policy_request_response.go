package response

import (
	"encoding/json"
	"time"

	"policy_request_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PolicyRequestCreatedResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
}

type StatusHistoryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// PolicyRequestResponse renders amounts as JSON numbers with two decimals.
type PolicyRequestResponse struct {
	ID                        string                  `json:"id"`
	CustomerID                string                  `json:"customer_id"`
	ProductID                 string                  `json:"product_id"`
	Category                  string                  `json:"category"`
	SalesChannel              string                  `json:"sales_channel"`
	PaymentMethod             string                  `json:"payment_method"`
	Status                    string                  `json:"status"`
	CreatedAt                 time.Time               `json:"created_at"`
	FinishedAt                *time.Time              `json:"finished_at,omitempty"`
	TotalMonthlyPremiumAmount json.Number             `json:"total_monthly_premium_amount"`
	InsuredAmount             json.Number             `json:"insured_amount"`
	Coverages                 map[string]json.Number  `json:"coverages"`
	Assistances               []string                `json:"assistances"`
	History                   []StatusHistoryResponse `json:"history"`
}

func FromPolicyRequestCreated(p *entities.PolicyRequest) PolicyRequestCreatedResponse {
	return PolicyRequestCreatedResponse{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		Status:    string(p.Status),
	}
}

func FromPolicyRequest(p *entities.PolicyRequest) PolicyRequestResponse {
	coverages := make(map[string]json.Number, len(p.Coverages))
	for name, amount := range p.Coverages {
		coverages[name] = amountNumber(amount)
	}

	assistances := p.Assistances
	if assistances == nil {
		assistances = []string{}
	}

	history := make([]StatusHistoryResponse, 0, len(p.History))
	for _, h := range p.History {
		history = append(history, StatusHistoryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp,
			Reason:    h.Reason,
		})
	}

	return PolicyRequestResponse{
		ID:                        p.ID,
		CustomerID:                p.CustomerID,
		ProductID:                 p.ProductID,
		Category:                  string(p.Category),
		SalesChannel:              string(p.SalesChannel),
		PaymentMethod:             string(p.PaymentMethod),
		Status:                    string(p.Status),
		CreatedAt:                 p.CreatedAt,
		FinishedAt:                p.FinishedAt,
		TotalMonthlyPremiumAmount: amountNumber(p.TotalMonthlyPremiumAmount),
		InsuredAmount:             amountNumber(p.InsuredAmount),
		Coverages:                 coverages,
		Assistances:               assistances,
		History:                   history,
	}
}

func FromPolicyRequests(list []*entities.PolicyRequest) []PolicyRequestResponse {
	out := make([]PolicyRequestResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPolicyRequest(p))
	}
	return out
}

func amountNumber(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
