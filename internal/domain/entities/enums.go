package entities

// InsuranceCategory is the insurance line requested by the customer.
type InsuranceCategory string

const (
	InsuranceCategoryLife     InsuranceCategory = "LIFE"
	InsuranceCategoryAuto     InsuranceCategory = "AUTO"
	InsuranceCategoryHome     InsuranceCategory = "HOME"
	InsuranceCategoryBusiness InsuranceCategory = "BUSINESS"
)

func (c InsuranceCategory) IsValid() bool {
	switch c {
	case InsuranceCategoryLife, InsuranceCategoryAuto, InsuranceCategoryHome, InsuranceCategoryBusiness:
		return true
	}
	return false
}

// SalesChannel is where the request was captured.
type SalesChannel string

const (
	SalesChannelMobile   SalesChannel = "MOBILE"
	SalesChannelWhatsApp SalesChannel = "WHATSAPP"
	SalesChannelWebsite  SalesChannel = "WEBSITE"
	SalesChannelInPerson SalesChannel = "IN_PERSON"
	SalesChannelPhone    SalesChannel = "PHONE"
)

func (c SalesChannel) IsValid() bool {
	switch c {
	case SalesChannelMobile, SalesChannelWhatsApp, SalesChannelWebsite, SalesChannelInPerson, SalesChannelPhone:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitAccount PaymentMethod = "DEBIT_ACCOUNT"
	PaymentMethodBoleto       PaymentMethod = "BOLETO"
	PaymentMethodPix          PaymentMethod = "PIX"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodDebitAccount, PaymentMethodBoleto, PaymentMethodPix:
		return true
	}
	return false
}

// CustomerRiskClassification is the fraud-risk profile returned by the fraud analysis API.
type CustomerRiskClassification string

const (
	RiskClassificationRegular       CustomerRiskClassification = "REGULAR"
	RiskClassificationHighRisk      CustomerRiskClassification = "HIGH_RISK"
	RiskClassificationPreferential  CustomerRiskClassification = "PREFERENTIAL"
	RiskClassificationNoInformation CustomerRiskClassification = "NO_INFORMATION"
)

func (c CustomerRiskClassification) IsValid() bool {
	switch c {
	case RiskClassificationRegular, RiskClassificationHighRisk, RiskClassificationPreferential, RiskClassificationNoInformation:
		return true
	}
	return false
}
