package interfaces

import (
	"context"

	"policy_request_service/internal/domain/entities"
)

// IFraudClassifier abstracts the external fraud analysis API.
type IFraudClassifier interface {
	Classify(ctx context.Context, orderID, customerID string) (entities.FraudAnalysis, error)
}
