package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"policy_request_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromPolicyRequest(t *testing.T) {
	now := time.Now().UTC()
	p := &entities.PolicyRequest{
		ID:                        "pr-1",
		CustomerID:                "cust-1",
		ProductID:                 "prod-1",
		Category:                  entities.InsuranceCategoryAuto,
		SalesChannel:              entities.SalesChannelMobile,
		PaymentMethod:             entities.PaymentMethodPix,
		Status:                    entities.PolicyRequestStatusRejected,
		CreatedAt:                 now,
		FinishedAt:                &now,
		TotalMonthlyPremiumAmount: decimal.RequireFromString("75.25"),
		InsuredAmount:             decimal.RequireFromString("275000.5"),
		Coverages:                 map[string]decimal.Decimal{"Roubo": decimal.RequireFromString("100000")},
		History: []entities.StatusHistory{
			{ID: "h-1", PolicyRequestID: "pr-1", Status: entities.PolicyRequestStatusRejected, Timestamp: now, Reason: "too risky"},
		},
	}

	res := FromPolicyRequest(p)
	if res.ID != "pr-1" || res.Status != "REJECTED" || res.Category != "AUTO" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.InsuredAmount != "275000.50" || res.Coverages["Roubo"] != "100000.00" {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if len(res.History) != 1 || res.History[0].Reason != "too risky" {
		t.Fatalf("unexpected history: %+v", res.History)
	}
	if res.Assistances == nil {
		t.Fatalf("expected empty assistances slice")
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), `"insured_amount":275000.50`) {
		t.Fatalf("expected numeric amount, got %s", raw)
	}
}

func TestFromPolicyRequestCreated(t *testing.T) {
	now := time.Now().UTC()
	res := FromPolicyRequestCreated(&entities.PolicyRequest{ID: "pr-1", CreatedAt: now, Status: entities.PolicyRequestStatusReceived})
	if res.ID != "pr-1" || res.Status != "RECEIVED" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromPolicyRequests_Empty(t *testing.T) {
	if res := FromPolicyRequests(nil); res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", res)
	}
}
