package fraud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ErrFraudAnalysisUnavailable is returned when the fraud API cannot produce a
// usable classification (transport failure, non-2xx, unknown classification).
var ErrFraudAnalysisUnavailable = errors.New("fraud analysis unavailable")

const maxErrorBodyBytes = 512

// HTTPClassifier calls the fraud analysis API:
//
//	GET {baseURL}/analyze?orderId=<id>&customerId=<customer id>
type HTTPClassifier struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

var _ interfaces.IFraudClassifier = (*HTTPClassifier)(nil)

func NewHTTPClassifier(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("fraud"),
	}
}

type analysisResponse struct {
	OrderID        string               `json:"orderId"`
	CustomerID     string               `json:"customerId"`
	AnalyzedAt     wireTime             `json:"analyzedAt"`
	Classification string               `json:"classification"`
	Occurrences    []occurrenceResponse `json:"occurrences"`
}

type occurrenceResponse struct {
	ID          string   `json:"id"`
	ProductID   int64    `json:"productId"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	CreatedAt   wireTime `json:"createdAt"`
	UpdatedAt   wireTime `json:"updatedAt"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, orderID, customerID string) (entities.FraudAnalysis, error) {
	q := url.Values{}
	q.Set("orderId", orderID)
	q.Set("customerId", customerID)
	endpoint := c.baseURL + "/analyze?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.FraudAnalysis{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("[policy][fraud] request failed", zap.String("order_id", orderID), zap.Error(err))
		return entities.FraudAnalysis{}, fmt.Errorf("%w: %v", ErrFraudAnalysisUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Error("[policy][fraud] unexpected status",
			zap.String("order_id", orderID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return entities.FraudAnalysis{}, fmt.Errorf("%w: status %d", ErrFraudAnalysisUnavailable, resp.StatusCode)
	}

	var payload analysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entities.FraudAnalysis{}, fmt.Errorf("%w: decode response: %v", ErrFraudAnalysisUnavailable, err)
	}

	classification := entities.CustomerRiskClassification(strings.ToUpper(strings.TrimSpace(payload.Classification)))
	if !classification.IsValid() {
		return entities.FraudAnalysis{}, fmt.Errorf("%w: unknown classification %q", ErrFraudAnalysisUnavailable, payload.Classification)
	}

	analysis := payload.toEntity(classification)
	metrics.FraudClassificationsTotal.WithLabelValues(string(classification)).Inc()
	c.logger.Info("[policy][fraud] analysis received",
		zap.String("order_id", orderID),
		zap.String("customer_id", customerID),
		zap.String("classification", string(classification)),
		zap.Int("occurrences", len(analysis.Occurrences)),
	)
	return analysis, nil
}

func (r analysisResponse) toEntity(classification entities.CustomerRiskClassification) entities.FraudAnalysis {
	occurrences := make([]entities.FraudOccurrence, 0, len(r.Occurrences))
	for _, o := range r.Occurrences {
		occurrences = append(occurrences, entities.FraudOccurrence{
			ID:          o.ID,
			ProductID:   o.ProductID,
			Type:        o.Type,
			Description: o.Description,
			CreatedAt:   o.CreatedAt.Time(),
			UpdatedAt:   o.UpdatedAt.Time(),
		})
	}
	return entities.FraudAnalysis{
		OrderID:        r.OrderID,
		CustomerID:     r.CustomerID,
		AnalyzedAt:     r.AnalyzedAt.Time(),
		Classification: classification,
		Occurrences:    occurrences,
	}
}

// wireTime accepts RFC 3339 timestamps and zone-less local date-times, which the
// fraud API emits; zone-less values are read as UTC.
type wireTime time.Time

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t *wireTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*t = wireTime{}
		return nil
	}
	for _, layout := range wireTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = wireTime(parsed.UTC())
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

func (t wireTime) Time() time.Time {
	return time.Time(t)
}
