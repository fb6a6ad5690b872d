package services

import (
	"strings"
	"testing"

	"policy_request_service/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	allClassifications = []entities.CustomerRiskClassification{
		entities.RiskClassificationRegular,
		entities.RiskClassificationHighRisk,
		entities.RiskClassificationPreferential,
		entities.RiskClassificationNoInformation,
	}
	allCategories = []entities.InsuranceCategory{
		entities.InsuranceCategoryLife,
		entities.InsuranceCategoryAuto,
		entities.InsuranceCategoryHome,
		entities.InsuranceCategoryBusiness,
	}
)

func TestInsuredAmountLimit_PositiveAndOrdered(t *testing.T) {
	for _, category := range allCategories {
		for _, c := range allClassifications {
			assert.True(t, InsuredAmountLimit(c, category).IsPositive(), "%s/%s", c, category)
		}

		preferential := InsuredAmountLimit(entities.RiskClassificationPreferential, category)
		regular := InsuredAmountLimit(entities.RiskClassificationRegular, category)
		highRisk := InsuredAmountLimit(entities.RiskClassificationHighRisk, category)
		noInfo := InsuredAmountLimit(entities.RiskClassificationNoInformation, category)

		assert.True(t, preferential.GreaterThanOrEqual(regular), category)
		assert.True(t, regular.GreaterThanOrEqual(highRisk), category)
		assert.True(t, regular.GreaterThanOrEqual(noInfo), category)
	}
}

func TestInsuredAmountLimit_KnownValues(t *testing.T) {
	cases := []struct {
		classification entities.CustomerRiskClassification
		category       entities.InsuranceCategory
		want           string
	}{
		{entities.RiskClassificationRegular, entities.InsuranceCategoryAuto, "350000.00"},
		{entities.RiskClassificationRegular, entities.InsuranceCategoryBusiness, "255000.00"},
		{entities.RiskClassificationHighRisk, entities.InsuranceCategoryHome, "150000.00"},
		{entities.RiskClassificationPreferential, entities.InsuranceCategoryLife, "800000.00"},
		{entities.RiskClassificationNoInformation, entities.InsuranceCategoryAuto, "75000.00"},
		{entities.CustomerRiskClassification("UNKNOWN"), entities.InsuranceCategoryAuto, "75000.00"},
		{entities.RiskClassificationRegular, entities.InsuranceCategory("PET"), "255000.00"},
	}
	for _, tc := range cases {
		got := InsuredAmountLimit(tc.classification, tc.category)
		assert.Equal(t, tc.want, got.StringFixed(2), "%s/%s", tc.classification, tc.category)
	}
}

func TestPolicyValidationService_Boundary(t *testing.T) {
	svc := NewPolicyValidationService(nil)

	for _, category := range allCategories {
		for _, c := range allClassifications {
			limit := InsuredAmountLimit(c, category)

			atLimit := &entities.PolicyRequest{Category: category, InsuredAmount: limit}
			assert.True(t, svc.Validate(atLimit, c), "at limit %s/%s", c, category)
			assert.Empty(t, svc.RejectionReason(atLimit, c))

			over := &entities.PolicyRequest{Category: category, InsuredAmount: limit.Add(decimal.RequireFromString("0.01"))}
			assert.False(t, svc.Validate(over, c), "over limit %s/%s", c, category)
			assert.NotEmpty(t, svc.RejectionReason(over, c))
		}
	}
}

func TestPolicyValidationService_RejectionReason(t *testing.T) {
	svc := NewPolicyValidationService(nil)
	p := &entities.PolicyRequest{
		ID:            "pr-1",
		Category:      entities.InsuranceCategoryAuto,
		InsuredAmount: decimal.RequireFromString("400000"),
	}

	reason := svc.RejectionReason(p, entities.RiskClassificationRegular)
	require.NotEmpty(t, reason)
	assert.True(t, strings.Contains(reason, "400000.00"), reason)
	assert.True(t, strings.Contains(reason, "350000.00"), reason)
	assert.Contains(t, reason, "REGULAR")
	assert.Contains(t, reason, "AUTO")
}
