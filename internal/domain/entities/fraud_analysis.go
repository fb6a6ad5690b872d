package entities

import "time"

// FraudAnalysis is the result of the external fraud classification for one order.
type FraudAnalysis struct {
	OrderID        string                     `json:"orderId"`
	CustomerID     string                     `json:"customerId"`
	AnalyzedAt     time.Time                  `json:"analyzedAt"`
	Classification CustomerRiskClassification `json:"classification"`
	Occurrences    []FraudOccurrence          `json:"occurrences"`
}

// FraudOccurrence is a past incident the fraud API knows about the customer.
type FraudOccurrence struct {
	ID          string    `json:"id"`
	ProductID   int64     `json:"productId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
