package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Inbound event types.
const (
	PaymentConfirmed     = "PAYMENT_CONFIRMED"
	PaymentRejected      = "PAYMENT_REJECTED"
	UnderwritingApproved = "UNDERWRITING_APPROVED"
	UnderwritingRejected = "UNDERWRITING_REJECTED"
)

// Inbound event outcomes, used as the result label of the inbound metric.
const (
	resultProcessed = "processed"
	resultIgnored   = "ignored"
	resultMalformed = "malformed"
	resultFailed    = "failed"
)

var errMissingPolicyRequestID = errors.New("policyRequestId is required")

// lifecycleEvent is the payload shared by the payment and underwriting topics.
type lifecycleEvent struct {
	PolicyRequestID string `json:"policyRequestId"`
	EventType       string `json:"eventType"`
	Status          string `json:"status,omitempty"`
	Reason          string `json:"reason,omitempty"`
	PaymentID       string `json:"paymentId,omitempty"`
	UnderwriterID   string `json:"underwriterId,omitempty"`
}

func decodeLifecycleEvent(record *kgo.Record) (lifecycleEvent, error) {
	var ev lifecycleEvent
	if err := json.Unmarshal(record.Value, &ev); err != nil {
		return ev, fmt.Errorf("decode %s record: %w", record.Topic, err)
	}
	ev.PolicyRequestID = strings.TrimSpace(ev.PolicyRequestID)
	ev.EventType = strings.ToUpper(strings.TrimSpace(ev.EventType))
	ev.Reason = strings.TrimSpace(ev.Reason)
	if ev.PolicyRequestID == "" {
		return ev, errMissingPolicyRequestID
	}
	return ev, nil
}

func rejectionReason(prefix, reason string) string {
	if reason == "" {
		return prefix
	}
	return prefix + ": " + reason
}
