package fraud

import (
	"context"
	"testing"

	"policy_request_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClassifier_Distribution(t *testing.T) {
	m := NewMockClassifier(42, nil)
	counts := map[entities.CustomerRiskClassification]int{}

	const draws = 10000
	for i := 0; i < draws; i++ {
		got, err := m.Classify(context.Background(), "pr-1", "cust-1")
		require.NoError(t, err)
		counts[got.Classification]++

		if got.Classification == entities.RiskClassificationHighRisk {
			require.Len(t, got.Occurrences, 1)
			assert.Equal(t, "FRAUD", got.Occurrences[0].Type)
		} else {
			assert.Empty(t, got.Occurrences)
		}
	}

	assert.InDelta(t, 0.5, float64(counts[entities.RiskClassificationRegular])/draws, 0.03)
	assert.InDelta(t, 0.2, float64(counts[entities.RiskClassificationHighRisk])/draws, 0.03)
	assert.InDelta(t, 0.2, float64(counts[entities.RiskClassificationPreferential])/draws, 0.03)
	assert.InDelta(t, 0.1, float64(counts[entities.RiskClassificationNoInformation])/draws, 0.03)
}

func TestMockClassifier_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockClassifier(1, nil).Classify(ctx, "pr-1", "cust-1")
	assert.Error(t, err)
}
