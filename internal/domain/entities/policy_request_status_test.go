package entities

import "testing"

func TestCanTransitionTo_Table(t *testing.T) {
	allowed := map[PolicyRequestStatus]map[PolicyRequestStatus]bool{
		PolicyRequestStatusReceived: {
			PolicyRequestStatusValidated: true,
			PolicyRequestStatusRejected:  true,
			PolicyRequestStatusCancelled: true,
		},
		PolicyRequestStatusValidated: {
			PolicyRequestStatusPending:   true,
			PolicyRequestStatusRejected:  true,
			PolicyRequestStatusCancelled: true,
		},
		PolicyRequestStatusPending: {
			PolicyRequestStatusApproved:  true,
			PolicyRequestStatusRejected:  true,
			PolicyRequestStatusCancelled: true,
		},
	}

	count := 0
	for _, from := range AllPolicyRequestStatuses() {
		for _, to := range AllPolicyRequestStatuses() {
			count++
			want := allowed[from][to]
			if got := CanTransitionTo(from, to); got != want {
				t.Fatalf("CanTransitionTo(%s, %s) = %v, want %v", from, to, got, want)
			}
			if got := from.CanTransitionTo(to); got != want {
				t.Fatalf("%s.CanTransitionTo(%s) = %v, want %v", from, to, got, want)
			}
		}
	}
	if count != 36 {
		t.Fatalf("expected 36 pairs, got %d", count)
	}
}

func TestIsTerminal(t *testing.T) {
	cases := map[PolicyRequestStatus]bool{
		PolicyRequestStatusReceived:  false,
		PolicyRequestStatusValidated: false,
		PolicyRequestStatusPending:   false,
		PolicyRequestStatusApproved:  true,
		PolicyRequestStatusRejected:  true,
		PolicyRequestStatusCancelled: true,
	}
	for status, want := range cases {
		if got := IsTerminal(status); got != want {
			t.Fatalf("IsTerminal(%s) = %v, want %v", status, got, want)
		}
		if !want {
			continue
		}
		for _, to := range AllPolicyRequestStatuses() {
			if CanTransitionTo(status, to) {
				t.Fatalf("terminal %s must not transition to %s", status, to)
			}
		}
	}
}

func TestUnknownStatusIsDenied(t *testing.T) {
	unknown := PolicyRequestStatus("ARCHIVED")
	if unknown.IsValid() {
		t.Fatalf("expected unknown status to be invalid")
	}
	for _, s := range AllPolicyRequestStatuses() {
		if CanTransitionTo(unknown, s) || CanTransitionTo(s, unknown) {
			t.Fatalf("expected no transition between %s and unknown", s)
		}
	}
}
