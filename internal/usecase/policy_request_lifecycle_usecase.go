package usecase

import (
	"context"
	"strings"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// History reasons recorded by the lifecycle transitions.
const (
	ReasonValidatedByFraudAnalysis = "validated by fraud analysis"
	ReasonAwaitingAuthorization    = "awaiting payment and underwriting authorization"
	ReasonApproved                 = "payment confirmed and underwriting authorized"
	ReasonCancellationRequested    = "cancellation requested"
	ReasonProcessingErrorPrefix    = "processing error: "
)

// IPolicyRequestLifecycleUseCase moves a stored request through the state machine.
type IPolicyRequestLifecycleUseCase interface {
	SetPending(ctx context.Context, id string) (*entities.PolicyRequest, error)
	Approve(ctx context.Context, id string) (*entities.PolicyRequest, error)
	Reject(ctx context.Context, id, reason string) (*entities.PolicyRequest, error)
	Cancel(ctx context.Context, id, reason string) (*entities.PolicyRequest, error)
}

type PolicyRequestLifecycleUseCase struct {
	repo      interfaces.IPolicyRequestRepository
	publisher interfaces.IEventPublisher
	logger    *zap.Logger
}

var _ IPolicyRequestLifecycleUseCase = (*PolicyRequestLifecycleUseCase)(nil)

func NewPolicyRequestLifecycleUseCase(
	repo interfaces.IPolicyRequestRepository,
	publisher interfaces.IEventPublisher,
	logger *zap.Logger,
) *PolicyRequestLifecycleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PolicyRequestLifecycleUseCase{
		repo:      repo,
		publisher: publisher,
		logger:    logger.Named("lifecycle"),
	}
}

func (u *PolicyRequestLifecycleUseCase) SetPending(ctx context.Context, id string) (*entities.PolicyRequest, error) {
	return u.transition(ctx, id, entities.PolicyRequestStatusPending, ReasonAwaitingAuthorization, entities.PolicyEventPending, nil)
}

func (u *PolicyRequestLifecycleUseCase) Approve(ctx context.Context, id string) (*entities.PolicyRequest, error) {
	return u.transition(ctx, id, entities.PolicyRequestStatusApproved, ReasonApproved, entities.PolicyEventApproved, nil)
}

func (u *PolicyRequestLifecycleUseCase) Reject(ctx context.Context, id, reason string) (*entities.PolicyRequest, error) {
	return u.transition(ctx, id, entities.PolicyRequestStatusRejected, reason, entities.PolicyEventRejected, nil)
}

// Cancel fails with entities.ErrCannotCancel once the request is terminal.
func (u *PolicyRequestLifecycleUseCase) Cancel(ctx context.Context, id, reason string) (*entities.PolicyRequest, error) {
	if strings.TrimSpace(reason) == "" {
		reason = ReasonCancellationRequested
	}
	return u.transition(ctx, id, entities.PolicyRequestStatusCancelled, reason, entities.PolicyEventCancelled,
		func(p *entities.PolicyRequest) error {
			if !p.CanBeCancelled() {
				return entities.ErrCannotCancel
			}
			return nil
		})
}

// transition is load -> guard -> UpdateStatus -> save -> publish. A lost
// version race surfaces as interfaces.ErrConcurrentModification.
func (u *PolicyRequestLifecycleUseCase) transition(
	ctx context.Context,
	id string,
	target entities.PolicyRequestStatus,
	reason string,
	eventType entities.PolicyEventType,
	guard func(p *entities.PolicyRequest) error,
) (*entities.PolicyRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidPolicyRequestID
	}

	p, err := u.repo.FindByIDWithHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPolicyRequestNotFound
	}

	if guard != nil {
		if err := guard(p); err != nil {
			u.logger.Warn("[policy][lifecycle] transition refused",
				zap.String("policy_request_id", id),
				zap.String("status", string(p.Status)),
				zap.String("target", string(target)),
				zap.Error(err),
			)
			return nil, err
		}
	}

	previous := p.Status
	if err := p.UpdateStatus(target, reason); err != nil {
		u.logger.Warn("[policy][lifecycle] invalid transition",
			zap.String("policy_request_id", id),
			zap.String("status", string(previous)),
			zap.String("target", string(target)),
		)
		return nil, err
	}

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	metrics.StatusTransitionsTotal.WithLabelValues(string(target)).Inc()

	u.publisher.Publish(ctx, entities.NewPolicyEvent(eventType, saved, previous))
	u.logger.Info("[policy][lifecycle] status updated",
		zap.String("policy_request_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(target)),
		zap.String("reason", saved.LatestReason()),
	)
	return saved, nil
}
