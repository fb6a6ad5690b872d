package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/domain/services"
	"policy_request_service/internal/infrastructure/metrics"
	"policy_request_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultProcessingLockTTL = 30 * time.Second

// IProcessPolicyRequestUseCase runs fraud analysis and validation for a
// RECEIVED request.
type IProcessPolicyRequestUseCase interface {
	Process(ctx context.Context, id string) error
}

type ProcessPolicyRequestUseCase struct {
	repo       interfaces.IPolicyRequestRepository
	classifier interfaces.IFraudClassifier
	validation *services.PolicyValidationService
	publisher  interfaces.IEventPublisher
	lifecycle  IPolicyRequestLifecycleUseCase
	lock       interfaces.IProcessingLock
	lockTTL    time.Duration
	logger     *zap.Logger
}

var _ IProcessPolicyRequestUseCase = (*ProcessPolicyRequestUseCase)(nil)

// ProcessOption configures optional collaborators of the orchestrator.
type ProcessOption func(*ProcessPolicyRequestUseCase)

// WithProcessingLock deduplicates concurrent runs for the same request.
func WithProcessingLock(lock interfaces.IProcessingLock, ttl time.Duration) ProcessOption {
	return func(u *ProcessPolicyRequestUseCase) {
		u.lock = lock
		if ttl > 0 {
			u.lockTTL = ttl
		}
	}
}

func NewProcessPolicyRequestUseCase(
	repo interfaces.IPolicyRequestRepository,
	classifier interfaces.IFraudClassifier,
	validation *services.PolicyValidationService,
	publisher interfaces.IEventPublisher,
	lifecycle IPolicyRequestLifecycleUseCase,
	logger *zap.Logger,
	opts ...ProcessOption,
) *ProcessPolicyRequestUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &ProcessPolicyRequestUseCase{
		repo:       repo,
		classifier: classifier,
		validation: validation,
		publisher:  publisher,
		lifecycle:  lifecycle,
		lockTTL:    defaultProcessingLockTTL,
		logger:     logger.Named("process"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Process is safe to call more than once: anything not in RECEIVED is left
// untouched. Failures during classification or validation reject the request
// with a "processing error: " reason; only a failure of that rejection is
// returned.
func (u *ProcessPolicyRequestUseCase) Process(ctx context.Context, id string) error {
	started := time.Now()
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPolicyRequestID
	}

	if u.lock != nil {
		release, acquired, err := u.lock.Acquire(ctx, id, u.lockTTL)
		switch {
		case err != nil:
			u.logger.Warn("[policy][process] lock unavailable, continuing without it",
				zap.String("policy_request_id", id),
				zap.Error(err),
			)
		case !acquired:
			u.logger.Info("[policy][process] already being processed", zap.String("policy_request_id", id))
			metrics.ObserveProcessing(metrics.OutcomeSkipped, started)
			return nil
		default:
			defer release()
		}
	}

	p, err := u.repo.FindByIDWithHistory(ctx, id)
	if err != nil {
		metrics.ObserveProcessing(metrics.OutcomeFailed, started)
		return err
	}
	if p == nil {
		metrics.ObserveProcessing(metrics.OutcomeFailed, started)
		return ErrPolicyRequestNotFound
	}
	if p.Status != entities.PolicyRequestStatusReceived {
		u.logger.Info("[policy][process] skipping, not in RECEIVED",
			zap.String("policy_request_id", id),
			zap.String("status", string(p.Status)),
		)
		metrics.ObserveProcessing(metrics.OutcomeSkipped, started)
		return nil
	}

	outcome, runErr := u.run(ctx, p)
	if runErr == nil {
		metrics.ObserveProcessing(outcome, started)
		return nil
	}

	u.logger.Error("[policy][process] processing failed, rejecting",
		zap.String("policy_request_id", id),
		zap.Error(runErr),
	)
	if _, err := u.lifecycle.Reject(ctx, id, ReasonProcessingErrorPrefix+runErr.Error()); err != nil {
		u.logger.Error("[policy][process] rejection after failure also failed",
			zap.String("policy_request_id", id),
			zap.Error(err),
		)
		metrics.ObserveProcessing(metrics.OutcomeFailed, started)
		return fmt.Errorf("reject after processing error: %w", err)
	}
	metrics.ObserveProcessing(metrics.OutcomeErrorRejected, started)
	return nil
}

// run covers classification, validation and the resulting transitions. A panic
// is turned into an error so the request still reaches a terminal status.
func (u *ProcessPolicyRequestUseCase) run(ctx context.Context, p *entities.PolicyRequest) (outcome string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	analysis, err := u.classifier.Classify(ctx, p.ID, p.CustomerID)
	if err != nil {
		return "", err
	}

	if !u.validation.Validate(p, analysis.Classification) {
		reason := u.validation.RejectionReason(p, analysis.Classification)
		if _, err := u.lifecycle.Reject(ctx, p.ID, reason); err != nil {
			return "", err
		}
		return metrics.OutcomeRejected, nil
	}

	previous := p.Status
	if err := p.UpdateStatus(entities.PolicyRequestStatusValidated, ReasonValidatedByFraudAnalysis); err != nil {
		return "", err
	}
	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return "", err
	}
	metrics.StatusTransitionsTotal.WithLabelValues(string(entities.PolicyRequestStatusValidated)).Inc()
	u.publisher.Publish(ctx, entities.NewPolicyEvent(entities.PolicyEventValidated, saved, previous))

	if _, err := u.lifecycle.SetPending(ctx, p.ID); err != nil {
		return "", err
	}
	return metrics.OutcomeValidated, nil
}
