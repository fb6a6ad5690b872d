package repository

import (
	"sort"
	"time"

	"policy_request_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// sortableTimeLayout keeps a fixed number of fractional digits so timestamps
// embedded in sort keys order lexically.
const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t
}

func decimalToString(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func decimalFromString(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func sortHistory(history []entities.StatusHistory) {
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.Before(history[j].Timestamp)
	})
}

// clonePolicyRequest returns a deep copy so callers never share maps or slices
// with stored state.
func clonePolicyRequest(p *entities.PolicyRequest) *entities.PolicyRequest {
	if p == nil {
		return nil
	}
	out := *p
	if p.FinishedAt != nil {
		finished := *p.FinishedAt
		out.FinishedAt = &finished
	}
	if p.Coverages != nil {
		out.Coverages = make(map[string]decimal.Decimal, len(p.Coverages))
		for k, v := range p.Coverages {
			out.Coverages[k] = v
		}
	}
	if p.Assistances != nil {
		out.Assistances = append([]string(nil), p.Assistances...)
	}
	if p.History != nil {
		out.History = append([]entities.StatusHistory(nil), p.History...)
	}
	return &out
}
