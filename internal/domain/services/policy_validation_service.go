package services

import (
	"fmt"

	"policy_request_service/internal/domain/entities"

	"go.uber.org/zap"
)

// PolicyValidationService applies the risk limit table to a policy request.
//
// A request over its limit is a normal business outcome (the request gets
// rejected), so validation returns a bool and a reason, never an error.
type PolicyValidationService struct {
	logger *zap.Logger
}

func NewPolicyValidationService(logger *zap.Logger) *PolicyValidationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PolicyValidationService{logger: logger.Named("validation")}
}

// Validate reports whether the insured amount fits the limit (inclusive).
func (s *PolicyValidationService) Validate(p *entities.PolicyRequest, classification entities.CustomerRiskClassification) bool {
	limit := InsuredAmountLimit(classification, p.Category)
	valid := p.InsuredAmount.LessThanOrEqual(limit)

	s.logger.Info("[policy][validation] insured amount checked",
		zap.String("policy_request_id", p.ID),
		zap.String("classification", string(classification)),
		zap.String("category", string(p.Category)),
		zap.String("insured_amount", p.InsuredAmount.StringFixed(2)),
		zap.String("limit", limit.StringFixed(2)),
		zap.Bool("valid", valid),
	)
	return valid
}

// RejectionReason returns "" for a valid request, otherwise a message naming
// the amount, classification, category and limit.
func (s *PolicyValidationService) RejectionReason(p *entities.PolicyRequest, classification entities.CustomerRiskClassification) string {
	limit := InsuredAmountLimit(classification, p.Category)
	if p.InsuredAmount.LessThanOrEqual(limit) {
		return ""
	}
	return fmt.Sprintf("insured amount %s exceeds the %s limit for %s customers in category %s",
		p.InsuredAmount.StringFixed(2),
		limit.StringFixed(2),
		classification,
		p.Category,
	)
}
