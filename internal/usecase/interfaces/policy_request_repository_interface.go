package interfaces

import (
	"context"
	"errors"

	"policy_request_service/internal/domain/entities"
)

// ErrConcurrentModification is returned by Save when the stored version no longer
// matches the version the caller loaded.
var ErrConcurrentModification = errors.New("policy request was modified concurrently")

// IPolicyRequestRepository abstracts persistence for PolicyRequest aggregates.
//
// Contract:
//   - Save upserts the aggregate. It succeeds only when the stored version equals
//     p.Version (or nothing is stored when p.Version is 0) and bumps p.Version.
//   - History entries held by p are written idempotently; entries loaded without
//     history are never deleted by Save.
//   - Find* return (nil, nil) when nothing matches.
//   - The plain Find* variants skip the history; *WithHistory variants load it
//     ordered by timestamp ascending.
type IPolicyRequestRepository interface {
	Save(ctx context.Context, p *entities.PolicyRequest) (*entities.PolicyRequest, error)
	FindByID(ctx context.Context, id string) (*entities.PolicyRequest, error)
	FindByIDWithHistory(ctx context.Context, id string) (*entities.PolicyRequest, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]*entities.PolicyRequest, error)
	FindByCustomerIDWithHistory(ctx context.Context, customerID string) ([]*entities.PolicyRequest, error)
}
