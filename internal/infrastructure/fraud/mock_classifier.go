package fraud

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Weights out of 100 for the mock classifier.
var mockWeights = []struct {
	classification entities.CustomerRiskClassification
	weight         int
}{
	{entities.RiskClassificationRegular, 50},
	{entities.RiskClassificationHighRisk, 20},
	{entities.RiskClassificationPreferential, 20},
	{entities.RiskClassificationNoInformation, 10},
}

const (
	mockFraudProductID   = 78900069
	mockFraudType        = "FRAUD"
	mockFraudDescription = "Attempted Fraudulent transaction"
)

// MockClassifier simulates the fraud API (FRAUD_ANALYSIS_MOCK=true), drawing a
// weighted random classification per call.
type MockClassifier struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	logger *zap.Logger
}

var _ interfaces.IFraudClassifier = (*MockClassifier)(nil)

func NewMockClassifier(seed int64, logger *zap.Logger) *MockClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockClassifier{
		rnd:    rand.New(rand.NewSource(seed)),
		logger: logger.Named("fraud_mock"),
	}
}

func (m *MockClassifier) Classify(ctx context.Context, orderID, customerID string) (entities.FraudAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return entities.FraudAnalysis{}, err
	}

	classification := m.draw()
	now := time.Now().UTC()
	analysis := entities.FraudAnalysis{
		OrderID:        orderID,
		CustomerID:     customerID,
		AnalyzedAt:     now,
		Classification: classification,
		Occurrences:    []entities.FraudOccurrence{},
	}
	if classification == entities.RiskClassificationHighRisk {
		reported := now.AddDate(0, 0, -30)
		analysis.Occurrences = append(analysis.Occurrences, entities.FraudOccurrence{
			ID:          uuid.NewString(),
			ProductID:   mockFraudProductID,
			Type:        mockFraudType,
			Description: mockFraudDescription,
			CreatedAt:   reported,
			UpdatedAt:   reported,
		})
	}

	metrics.FraudClassificationsTotal.WithLabelValues(string(classification)).Inc()
	m.logger.Info("[policy][fraud] mock analysis",
		zap.String("order_id", orderID),
		zap.String("classification", string(classification)),
	)
	return analysis, nil
}

func (m *MockClassifier) draw() entities.CustomerRiskClassification {
	m.mu.Lock()
	n := m.rnd.Intn(100)
	m.mu.Unlock()

	for _, w := range mockWeights {
		if n < w.weight {
			return w.classification
		}
		n -= w.weight
	}
	return entities.RiskClassificationNoInformation
}
