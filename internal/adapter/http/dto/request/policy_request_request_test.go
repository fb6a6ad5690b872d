package request

import (
	"encoding/json"
	"testing"

	"policy_request_service/internal/domain/entities"
)

func TestCreatePolicyRequestRequest_ToInput(t *testing.T) {
	body := `{
		"customer_id": "adc56d77-348c-4bf0-908f-22d402ee715c",
		"product_id": "1b2da7cc-b367-4196-8a78-9cfeec21f587",
		"category": "AUTO",
		"sales_channel": "MOBILE",
		"payment_method": "CREDIT_CARD",
		"total_monthly_premium_amount": 75.25,
		"insured_amount": "275000.50",
		"coverages": {"Roubo": 100000.25},
		"assistances": ["Guincho até 250km"]
	}`

	var req CreatePolicyRequestRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := req.ToInput()
	if in.Category != entities.InsuranceCategoryAuto || in.SalesChannel != entities.SalesChannelMobile || in.PaymentMethod != entities.PaymentMethodCreditCard {
		t.Fatalf("unexpected enums: %+v", in)
	}
	if in.TotalMonthlyPremiumAmount.String() != "75.25" || in.InsuredAmount.String() != "275000.5" {
		t.Fatalf("unexpected amounts: %s %s", in.TotalMonthlyPremiumAmount, in.InsuredAmount)
	}
	if in.Coverages["Roubo"].String() != "100000.25" || len(in.Assistances) != 1 {
		t.Fatalf("unexpected coverages or assistances: %+v", in)
	}
}

func TestCancelPolicyRequestRequest_ResolveReason(t *testing.T) {
	if got := (CancelPolicyRequestRequest{Reason: "  changed my mind "}).ResolveReason(); got != "changed my mind" {
		t.Fatalf("unexpected reason %q", got)
	}
	if got := (CancelPolicyRequestRequest{}).ResolveReason(); got != "" {
		t.Fatalf("expected empty reason, got %q", got)
	}
}
