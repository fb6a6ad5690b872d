package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"policy_request_service/internal/adapter/persistence/repository"
	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/usecase/interfaces"
	mock_interfaces "policy_request_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storedRequest(status entities.PolicyRequestStatus) *entities.PolicyRequest {
	return &entities.PolicyRequest{
		ID:                        "pr-1",
		CustomerID:                testCustomerID,
		ProductID:                 "prod-1",
		Category:                  entities.InsuranceCategoryAuto,
		SalesChannel:              entities.SalesChannelMobile,
		PaymentMethod:             entities.PaymentMethodPix,
		Status:                    status,
		CreatedAt:                 time.Now().UTC().Add(-time.Minute),
		TotalMonthlyPremiumAmount: decimal.RequireFromString("75.25"),
		InsuredAmount:             decimal.RequireFromString("275000.50"),
		Coverages:                 map[string]decimal.Decimal{"Roubo": decimal.RequireFromString("100000.25")},
		History:                   []entities.StatusHistory{},
		Version:                   2,
	}
}

func TestPolicyRequestLifecycleUseCase_Transitions(t *testing.T) {
	cases := []struct {
		name      string
		from      entities.PolicyRequestStatus
		call      func(uc *PolicyRequestLifecycleUseCase, ctx context.Context, id string) (*entities.PolicyRequest, error)
		to        entities.PolicyRequestStatus
		eventType entities.PolicyEventType
		reason    string
	}{
		{
			name:      "set pending",
			from:      entities.PolicyRequestStatusValidated,
			call:      (*PolicyRequestLifecycleUseCase).SetPending,
			to:        entities.PolicyRequestStatusPending,
			eventType: entities.PolicyEventPending,
			reason:    ReasonAwaitingAuthorization,
		},
		{
			name:      "approve",
			from:      entities.PolicyRequestStatusPending,
			call:      (*PolicyRequestLifecycleUseCase).Approve,
			to:        entities.PolicyRequestStatusApproved,
			eventType: entities.PolicyEventApproved,
			reason:    ReasonApproved,
		},
		{
			name: "reject",
			from: entities.PolicyRequestStatusPending,
			call: func(uc *PolicyRequestLifecycleUseCase, ctx context.Context, id string) (*entities.PolicyRequest, error) {
				return uc.Reject(ctx, id, "payment rejected: insufficient funds")
			},
			to:        entities.PolicyRequestStatusRejected,
			eventType: entities.PolicyEventRejected,
			reason:    "payment rejected: insufficient funds",
		},
		{
			name: "cancel with default reason",
			from: entities.PolicyRequestStatusReceived,
			call: func(uc *PolicyRequestLifecycleUseCase, ctx context.Context, id string) (*entities.PolicyRequest, error) {
				return uc.Cancel(ctx, id, "  ")
			},
			to:        entities.PolicyRequestStatusCancelled,
			eventType: entities.PolicyEventCancelled,
			reason:    ReasonCancellationRequested,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPolicyRequestRepository(ctrl)
			publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
			uc := NewPolicyRequestLifecycleUseCase(repo, publisher, nil)

			gomock.InOrder(
				repo.EXPECT().FindByIDWithHistory(gomock.Any(), "pr-1").Return(storedRequest(tc.from), nil),
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *entities.PolicyRequest) (*entities.PolicyRequest, error) {
						if p.Status != tc.to || len(p.History) != 1 || p.History[0].Reason != tc.reason {
							t.Fatalf("unexpected aggregate on save: %+v", p)
						}
						if p.Version != 2 {
							t.Fatalf("expected loaded version to be saved, got %d", p.Version)
						}
						p.Version++
						return p, nil
					},
				),
				publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(
					func(_ context.Context, ev entities.PolicyEvent) {
						if ev.EventType != tc.eventType || ev.Status != tc.to || ev.PolicyRequestID != "pr-1" {
							t.Fatalf("unexpected event: %+v", ev)
						}
						withPrevious := tc.eventType == entities.PolicyEventRejected || tc.eventType == entities.PolicyEventCancelled
						if withPrevious && (ev.PreviousStatus != tc.from || ev.Reason != tc.reason) {
							t.Fatalf("expected previous status %s and reason %q, got %+v", tc.from, tc.reason, ev)
						}
						if !withPrevious && ev.PreviousStatus != "" {
							t.Fatalf("unexpected previous status: %+v", ev)
						}
					},
				),
			)

			res, err := tc.call(uc, context.Background(), " pr-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.to {
				t.Fatalf("expected %s, got %s", tc.to, res.Status)
			}
			if entities.IsTerminal(tc.to) && res.FinishedAt == nil {
				t.Fatalf("expected finished_at for terminal status")
			}
		})

		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewPolicyRequestLifecycleUseCase(nil, nil, nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidPolicyRequestID) {
				t.Fatalf("expected ErrInvalidPolicyRequestID, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPolicyRequestRepository(ctrl)
			uc := NewPolicyRequestLifecycleUseCase(repo, mock_interfaces.NewMockIEventPublisher(ctrl), nil)
			repo.EXPECT().FindByIDWithHistory(gomock.Any(), "pr-1").Return(nil, nil)

			_, err := tc.call(uc, context.Background(), "pr-1")
			if !errors.Is(err, ErrPolicyRequestNotFound) {
				t.Fatalf("expected ErrPolicyRequestNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" version conflict is not published", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPolicyRequestRepository(ctrl)
			uc := NewPolicyRequestLifecycleUseCase(repo, mock_interfaces.NewMockIEventPublisher(ctrl), nil)
			repo.EXPECT().FindByIDWithHistory(gomock.Any(), "pr-1").Return(storedRequest(tc.from), nil)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, interfaces.ErrConcurrentModification)

			_, err := tc.call(uc, context.Background(), "pr-1")
			if !errors.Is(err, interfaces.ErrConcurrentModification) {
				t.Fatalf("expected ErrConcurrentModification, got %v", err)
			}
		})
	}
}

func TestPolicyRequestLifecycleUseCase_InvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPolicyRequestRepository(ctrl)
	uc := NewPolicyRequestLifecycleUseCase(repo, mock_interfaces.NewMockIEventPublisher(ctrl), nil)

	stored := storedRequest(entities.PolicyRequestStatusReceived)
	repo.EXPECT().FindByIDWithHistory(gomock.Any(), "pr-1").Return(stored, nil)

	_, err := uc.Approve(context.Background(), "pr-1")
	if !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if stored.Status != entities.PolicyRequestStatusReceived || len(stored.History) != 0 {
		t.Fatalf("aggregate changed: %+v", stored)
	}
}

func TestPolicyRequestLifecycleUseCase_CancelTerminal(t *testing.T) {
	for _, status := range []entities.PolicyRequestStatus{
		entities.PolicyRequestStatusApproved,
		entities.PolicyRequestStatusRejected,
		entities.PolicyRequestStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPolicyRequestRepository(ctrl)
			uc := NewPolicyRequestLifecycleUseCase(repo, mock_interfaces.NewMockIEventPublisher(ctrl), nil)
			repo.EXPECT().FindByIDWithHistory(gomock.Any(), "pr-1").Return(storedRequest(status), nil)

			_, err := uc.Cancel(context.Background(), "pr-1", "client gave up")
			if !errors.Is(err, entities.ErrCannotCancel) {
				t.Fatalf("expected ErrCannotCancel, got %v", err)
			}
			if !errors.Is(err, entities.ErrInvalidTransition) {
				t.Fatalf("expected ErrCannotCancel to match ErrInvalidTransition")
			}
		})
	}
}

func TestPolicyRequestLifecycleUseCase_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPolicyRequestRepository(ctrl)
	uc := NewPolicyRequestLifecycleUseCase(repo, mock_interfaces.NewMockIEventPublisher(ctrl), nil)
	repo.EXPECT().FindByIDWithHistory(gomock.Any(), "pr-1").Return(nil, errors.New("db"))

	_, err := uc.Reject(context.Background(), "pr-1", "x")
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

// validatedInMemory stores a request and moves it to VALIDATED at validatedAt.
func validatedInMemory(t *testing.T, repo *repository.PolicyRequestMemoryRepository, validatedAt time.Time) {
	t.Helper()
	ctx := context.Background()

	p := storedRequest(entities.PolicyRequestStatusReceived)
	p.Version = 0
	_, err := repo.Save(ctx, p)
	require.NoError(t, err)

	original := entities.Now
	entities.Now = func() time.Time { return validatedAt }
	defer func() { entities.Now = original }()

	p, err = repo.FindByIDWithHistory(ctx, "pr-1")
	require.NoError(t, err)
	require.NoError(t, p.UpdateStatus(entities.PolicyRequestStatusValidated, ReasonValidatedByFraudAnalysis))
	_, err = repo.Save(ctx, p)
	require.NoError(t, err)
}

func TestPolicyRequestLifecycleUseCase_ClockBehindKeepsHistoryOrder(t *testing.T) {
	repo := repository.NewPolicyRequestMemoryRepository()
	uc := NewPolicyRequestLifecycleUseCase(repo, &recordingPublisher{}, nil)

	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	validatedInMemory(t, repo, t0)

	original := entities.Now
	entities.Now = func() time.Time { return t0.Add(-time.Second) }
	defer func() { entities.Now = original }()

	_, err := uc.SetPending(context.Background(), "pr-1")
	require.NoError(t, err)

	stored, err := repo.FindByIDWithHistory(context.Background(), "pr-1")
	require.NoError(t, err)
	require.Len(t, stored.History, 2)
	assert.Equal(t, entities.PolicyRequestStatusValidated, stored.History[0].Status)
	assert.Equal(t, entities.PolicyRequestStatusPending, stored.History[1].Status)
	assert.False(t, stored.History[1].Timestamp.Before(stored.History[0].Timestamp))
}

func TestPolicyRequestLifecycleUseCase_ReturnsFullHistory(t *testing.T) {
	repo := repository.NewPolicyRequestMemoryRepository()
	uc := NewPolicyRequestLifecycleUseCase(repo, &recordingPublisher{}, nil)
	ctx := context.Background()

	validatedInMemory(t, repo, time.Now().UTC())
	_, err := uc.SetPending(ctx, "pr-1")
	require.NoError(t, err)

	cancelled, err := uc.Cancel(ctx, "pr-1", "changed my mind")
	require.NoError(t, err)

	stored, err := repo.FindByIDWithHistory(ctx, "pr-1")
	require.NoError(t, err)
	require.Len(t, cancelled.History, 3)
	for i, h := range stored.History {
		assert.Equal(t, h.ID, cancelled.History[i].ID)
		assert.Equal(t, h.Status, cancelled.History[i].Status)
	}
	assert.Equal(t, entities.PolicyRequestStatusCancelled, cancelled.History[2].Status)
}
