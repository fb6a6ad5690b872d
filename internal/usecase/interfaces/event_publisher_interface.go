package interfaces

import (
	"context"

	"policy_request_service/internal/domain/entities"
)

// IEventPublisher publishes lifecycle events to downstream consumers.
//
// Publishing is fire-and-forget: implementations log delivery failures and never
// fail the calling use case.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.PolicyEvent)
}
