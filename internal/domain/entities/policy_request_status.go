package entities

// PolicyRequestStatus is the lifecycle state of a policy request.
//
// Lifecycle:
//
//	RECEIVED -> VALIDATED -> PENDING -> APPROVED
//	any non-terminal state -> REJECTED | CANCELLED
//
// APPROVED, REJECTED and CANCELLED are terminal: they have no outgoing transitions.
type PolicyRequestStatus string

const (
	PolicyRequestStatusReceived  PolicyRequestStatus = "RECEIVED"
	PolicyRequestStatusValidated PolicyRequestStatus = "VALIDATED"
	PolicyRequestStatusPending   PolicyRequestStatus = "PENDING"
	PolicyRequestStatusApproved  PolicyRequestStatus = "APPROVED"
	PolicyRequestStatusRejected  PolicyRequestStatus = "REJECTED"
	PolicyRequestStatusCancelled PolicyRequestStatus = "CANCELLED"
)

// AllPolicyRequestStatuses lists every status in lifecycle order.
func AllPolicyRequestStatuses() []PolicyRequestStatus {
	return []PolicyRequestStatus{
		PolicyRequestStatusReceived,
		PolicyRequestStatusValidated,
		PolicyRequestStatusPending,
		PolicyRequestStatusApproved,
		PolicyRequestStatusRejected,
		PolicyRequestStatusCancelled,
	}
}

// CanTransitionTo reports whether the state machine allows from -> to.
// Unknown statuses never transition.
func CanTransitionTo(from, to PolicyRequestStatus) bool {
	switch from {
	case PolicyRequestStatusReceived:
		return to == PolicyRequestStatusValidated || to == PolicyRequestStatusRejected || to == PolicyRequestStatusCancelled
	case PolicyRequestStatusValidated:
		return to == PolicyRequestStatusPending || to == PolicyRequestStatusRejected || to == PolicyRequestStatusCancelled
	case PolicyRequestStatusPending:
		return to == PolicyRequestStatusApproved || to == PolicyRequestStatusRejected || to == PolicyRequestStatusCancelled
	default:
		return false
	}
}

// IsTerminal reports whether status is a final state.
func IsTerminal(status PolicyRequestStatus) bool {
	switch status {
	case PolicyRequestStatusApproved, PolicyRequestStatusRejected, PolicyRequestStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo is the method form of CanTransitionTo.
func (s PolicyRequestStatus) CanTransitionTo(target PolicyRequestStatus) bool {
	return CanTransitionTo(s, target)
}

// IsTerminal is the method form of IsTerminal.
func (s PolicyRequestStatus) IsTerminal() bool {
	return IsTerminal(s)
}

// IsValid reports whether s is one of the six known statuses.
func (s PolicyRequestStatus) IsValid() bool {
	for _, v := range AllPolicyRequestStatuses() {
		if s == v {
			return true
		}
	}
	return false
}
