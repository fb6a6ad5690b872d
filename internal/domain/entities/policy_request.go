package entities

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxHistoryReasonLength bounds StatusHistory.Reason (in characters).
const MaxHistoryReasonLength = 500

// Now is the clock used when stamping history entries and finish dates.
var Now = func() time.Time { return time.Now().UTC() }

// StatusHistory is one immutable audit entry of the request lifecycle.
//
// An empty Reason means no reason was given.
type StatusHistory struct {
	ID              string              `json:"id"`
	PolicyRequestID string              `json:"policy_request_id"`
	Status          PolicyRequestStatus `json:"status"`
	Timestamp       time.Time           `json:"timestamp"`
	Reason          string              `json:"reason,omitempty"`
}

// PolicyRequest is the aggregate root of the lifecycle.
//
// Status changes only through UpdateStatus, which enforces the state machine and
// appends exactly one StatusHistory entry per change. FinishedAt is set once, on
// the first transition into a terminal status.
//
// Storage model (DynamoDB):
//   - PK: id, SK: "REQUEST" for the root item
//   - PK: id, SK: "HISTORY#<timestamp>#<history id>" for each history entry
//   - GSI1 (customer_id-index): customer_id (root items only)
//
// Version is the optimistic concurrency token; 0 means the request was never persisted.
type PolicyRequest struct {
	ID                        string                     `json:"id"`
	CustomerID                string                     `json:"customer_id"`
	ProductID                 string                     `json:"product_id"`
	Category                  InsuranceCategory          `json:"category"`
	SalesChannel              SalesChannel               `json:"sales_channel"`
	PaymentMethod             PaymentMethod              `json:"payment_method"`
	Status                    PolicyRequestStatus        `json:"status"`
	CreatedAt                 time.Time                  `json:"created_at"`
	FinishedAt                *time.Time                 `json:"finished_at,omitempty"`
	TotalMonthlyPremiumAmount decimal.Decimal            `json:"total_monthly_premium_amount"`
	InsuredAmount             decimal.Decimal            `json:"insured_amount"`
	Coverages                 map[string]decimal.Decimal `json:"coverages"`
	Assistances               []string                   `json:"assistances"`
	History                   []StatusHistory            `json:"history"`
	Version                   int64                      `json:"version"`
}

// UpdateStatus moves the request to newStatus and records it in the history.
// A transition denied by the state machine returns ErrInvalidTransition and
// leaves the request untouched.
func (p *PolicyRequest) UpdateStatus(newStatus PolicyRequestStatus, reason string) error {
	if !CanTransitionTo(p.Status, newStatus) {
		return fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, p.Status, newStatus)
	}

	ts := Now()
	if n := len(p.History); n > 0 && ts.Before(p.History[n-1].Timestamp) {
		ts = p.History[n-1].Timestamp
	}

	p.Status = newStatus
	if IsTerminal(newStatus) && p.FinishedAt == nil {
		finished := ts
		p.FinishedAt = &finished
	}
	p.History = append(p.History, StatusHistory{
		ID:              uuid.NewString(),
		PolicyRequestID: p.ID,
		Status:          newStatus,
		Timestamp:       ts,
		Reason:          truncateReason(reason),
	})
	return nil
}

// CanBeCancelled reports whether the cancel guard lets the request through.
func (p *PolicyRequest) CanBeCancelled() bool {
	return !IsTerminal(p.Status)
}

// IsApproved reports whether the request reached APPROVED.
func (p *PolicyRequest) IsApproved() bool {
	return p.Status == PolicyRequestStatusApproved
}

// LatestReason returns the reason of the most recently appended history entry.
func (p *PolicyRequest) LatestReason() string {
	if len(p.History) == 0 {
		return ""
	}
	return p.History[len(p.History)-1].Reason
}

func truncateReason(reason string) string {
	if utf8.RuneCountInString(reason) <= MaxHistoryReasonLength {
		return reason
	}
	runes := []rune(reason)
	return string(runes[:MaxHistoryReasonLength])
}
