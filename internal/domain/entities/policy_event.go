package entities

import "time"

// PolicyEventType names the lifecycle events published to downstream consumers.
type PolicyEventType string

const (
	PolicyEventCreated   PolicyEventType = "POLICY_REQUEST_CREATED"
	PolicyEventValidated PolicyEventType = "POLICY_REQUEST_VALIDATED"
	PolicyEventPending   PolicyEventType = "POLICY_REQUEST_PENDING"
	PolicyEventApproved  PolicyEventType = "POLICY_REQUEST_APPROVED"
	PolicyEventRejected  PolicyEventType = "POLICY_REQUEST_REJECTED"
	PolicyEventCancelled PolicyEventType = "POLICY_REQUEST_CANCELLED"
)

// PolicyEvent is the payload published on the policy-requests topic.
//
// PreviousStatus and Reason are only filled for rejected and cancelled events.
type PolicyEvent struct {
	PolicyRequestID string              `json:"policyRequestId"`
	CustomerID      string              `json:"customerId"`
	ProductID       string              `json:"productId"`
	Status          PolicyRequestStatus `json:"status"`
	PreviousStatus  PolicyRequestStatus `json:"previousStatus,omitempty"`
	Reason          string              `json:"reason,omitempty"`
	Timestamp       time.Time           `json:"timestamp"`
	EventType       PolicyEventType     `json:"eventType"`
}

// NewPolicyEvent snapshots p after a transition. previous is the status the
// request held before the transition.
func NewPolicyEvent(eventType PolicyEventType, p *PolicyRequest, previous PolicyRequestStatus) PolicyEvent {
	ev := PolicyEvent{
		PolicyRequestID: p.ID,
		CustomerID:      p.CustomerID,
		ProductID:       p.ProductID,
		Status:          p.Status,
		Timestamp:       Now(),
		EventType:       eventType,
	}
	if eventType == PolicyEventRejected || eventType == PolicyEventCancelled {
		ev.PreviousStatus = previous
		ev.Reason = p.LatestReason()
	}
	return ev
}
