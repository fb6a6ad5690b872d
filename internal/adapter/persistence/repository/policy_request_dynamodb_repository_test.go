package repository

import (
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"policy_request_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyRequestItemMapping(t *testing.T) {
	p := newPolicyRequest("pr-1", "cust-1")
	p.Version = 3
	require.NoError(t, p.UpdateStatus(entities.PolicyRequestStatusRejected, "limit exceeded"))

	it := toPolicyRequestItem(p)
	assert.Equal(t, "pr-1", it.PK)
	assert.Equal(t, requestSortKey, it.SK)
	assert.Equal(t, "275000.50", it.InsuredAmount)
	assert.Equal(t, "100000.25", it.Coverages["Roubo"])
	assert.NotEmpty(t, it.FinishedAt)

	back := fromPolicyRequestItem(it)
	assert.Equal(t, p.ID, back.ID)
	assert.Equal(t, p.Status, back.Status)
	assert.Equal(t, int64(3), back.Version)
	assert.True(t, back.InsuredAmount.Equal(p.InsuredAmount))
	assert.True(t, back.CreatedAt.Equal(p.CreatedAt))
	require.NotNil(t, back.FinishedAt)
	assert.True(t, back.FinishedAt.Equal(*p.FinishedAt))
	assert.Equal(t, []string{"Guincho até 250km"}, back.Assistances)

	h := fromStatusHistoryItem(toStatusHistoryItem(p.ID, 0, p.History[0]))
	assert.Equal(t, p.History[0].ID, h.ID)
	assert.Equal(t, "limit exceeded", h.Reason)
	assert.True(t, h.Timestamp.Equal(p.History[0].Timestamp))
}

func TestHistorySortKeyOrdersLexically(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	stamps := []time.Time{
		base.Add(1500 * time.Millisecond),
		base,
		base.Add(time.Second),
		base.Add(10 * time.Microsecond),
	}

	keys := make([]string, 0, len(stamps))
	for i, ts := range stamps {
		keys = append(keys, historySortKey(i, entities.StatusHistory{ID: fmt.Sprintf("h-%d", i), Timestamp: ts}))
	}
	sort.Strings(keys)

	assert.Contains(t, keys[0], "h-1")
	assert.Contains(t, keys[1], "h-3")
	assert.Contains(t, keys[2], "h-2")
	assert.Contains(t, keys[3], "h-0")
}

func TestHistorySortKeyKeepsAppendOrderOnEqualTimestamps(t *testing.T) {
	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	// ids sort opposite to append order
	first := historySortKey(0, entities.StatusHistory{ID: "ffff", Timestamp: ts})
	second := historySortKey(1, entities.StatusHistory{ID: "0000", Timestamp: ts})

	assert.Less(t, first, second)
}

func TestIsConditionFailure(t *testing.T) {
	canceled := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{
			{Code: aws.String("ConditionalCheckFailed")},
			{Code: aws.String("None")},
		},
	}
	assert.True(t, isConditionFailure(canceled))
	assert.True(t, isConditionFailure(fmt.Errorf("wrapped: %w", &types.ConditionalCheckFailedException{})))
	assert.False(t, isConditionFailure(&types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: aws.String("ThrottlingError")}},
	}))
	assert.False(t, isConditionFailure(errors.New("network down")))
}

func TestDecimalFromStringInvalid(t *testing.T) {
	assert.True(t, decimalFromString("not-a-number").Equal(decimal.Zero))
}
