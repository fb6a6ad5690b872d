package services

import (
	"policy_request_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Maximum insured amounts per risk classification. Categories without an explicit
// entry fall into the classification's fallback bucket.
var (
	regularLimits = limitRow{
		byCategory: map[entities.InsuranceCategory]decimal.Decimal{
			entities.InsuranceCategoryLife: decimal.RequireFromString("500000.00"),
			entities.InsuranceCategoryHome: decimal.RequireFromString("500000.00"),
			entities.InsuranceCategoryAuto: decimal.RequireFromString("350000.00"),
		},
		fallback: decimal.RequireFromString("255000.00"),
	}
	highRiskLimits = limitRow{
		byCategory: map[entities.InsuranceCategory]decimal.Decimal{
			entities.InsuranceCategoryAuto: decimal.RequireFromString("250000.00"),
			entities.InsuranceCategoryHome: decimal.RequireFromString("150000.00"),
		},
		fallback: decimal.RequireFromString("125000.00"),
	}
	preferentialLimits = limitRow{
		byCategory: map[entities.InsuranceCategory]decimal.Decimal{
			entities.InsuranceCategoryLife: decimal.RequireFromString("800000.00"),
			entities.InsuranceCategoryAuto: decimal.RequireFromString("450000.00"),
			entities.InsuranceCategoryHome: decimal.RequireFromString("600000.00"),
		},
		fallback: decimal.RequireFromString("375000.00"),
	}
	noInformationLimits = limitRow{
		byCategory: map[entities.InsuranceCategory]decimal.Decimal{
			entities.InsuranceCategoryLife: decimal.RequireFromString("200000.00"),
			entities.InsuranceCategoryHome: decimal.RequireFromString("200000.00"),
			entities.InsuranceCategoryAuto: decimal.RequireFromString("75000.00"),
		},
		fallback: decimal.RequireFromString("55000.00"),
	}
)

type limitRow struct {
	byCategory map[entities.InsuranceCategory]decimal.Decimal
	fallback   decimal.Decimal
}

func (r limitRow) limit(category entities.InsuranceCategory) decimal.Decimal {
	if v, ok := r.byCategory[category]; ok {
		return v
	}
	return r.fallback
}

// InsuredAmountLimit returns the maximum insurable amount for the pair.
// An unknown classification is treated as NO_INFORMATION, the most restrictive row.
func InsuredAmountLimit(classification entities.CustomerRiskClassification, category entities.InsuranceCategory) decimal.Decimal {
	switch classification {
	case entities.RiskClassificationRegular:
		return regularLimits.limit(category)
	case entities.RiskClassificationHighRisk:
		return highRiskLimits.limit(category)
	case entities.RiskClassificationPreferential:
		return preferentialLimits.limit(category)
	default:
		return noInformationLimits.limit(category)
	}
}
