package messaging

import (
	"context"
	"errors"
	"testing"

	"policy_request_service/internal/adapter/messaging/mocks"
	"policy_request_service/internal/domain/entities"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/mock/gomock"
)

func record(topic, value string) *kgo.Record {
	return &kgo.Record{Topic: topic, Key: []byte("pr-1"), Value: []byte(value)}
}

func TestPaymentEventsHandler_Handle(t *testing.T) {
	t.Run("rejected payment rejects the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl)
		h := NewPaymentEventsHandler(lifecycle, nil)

		lifecycle.EXPECT().Reject(gomock.Any(), "pr-1", "payment rejected: insufficient funds").Return(&entities.PolicyRequest{}, nil)

		err := h.Handle(context.Background(), record("payments.events",
			`{"policyRequestId":"pr-1","eventType":"PAYMENT_REJECTED","reason":" insufficient funds ","paymentId":"pay-1"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected payment without reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl)
		h := NewPaymentEventsHandler(lifecycle, nil)

		lifecycle.EXPECT().Reject(gomock.Any(), "pr-1", "payment rejected").Return(&entities.PolicyRequest{}, nil)

		if err := h.Handle(context.Background(), record("payments.events", `{"policyRequestId":"pr-1","eventType":"payment_rejected"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("confirmed payment is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentEventsHandler(mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl), nil)

		if err := h.Handle(context.Background(), record("payments.events", `{"policyRequestId":"pr-1","eventType":"PAYMENT_CONFIRMED"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("malformed and unknown records are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentEventsHandler(mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl), nil)

		for _, value := range []string{
			`not json`,
			`{"eventType":"PAYMENT_REJECTED"}`,
			`{"policyRequestId":"pr-1","eventType":"PAYMENT_EXPIRED"}`,
		} {
			if err := h.Handle(context.Background(), record("payments.events", value)); err != nil {
				t.Fatalf("expected %q to be skipped, got %v", value, err)
			}
		}
	})

	t.Run("use case error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl)
		h := NewPaymentEventsHandler(lifecycle, nil)

		lifecycle.EXPECT().Reject(gomock.Any(), "pr-1", gomock.Any()).Return(nil, entities.ErrInvalidTransition)

		err := h.Handle(context.Background(), record("payments.events", `{"policyRequestId":"pr-1","eventType":"PAYMENT_REJECTED","reason":"x"}`))
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestUnderwritingEventsHandler_Handle(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl)
		h := NewUnderwritingEventsHandler(lifecycle, nil)

		lifecycle.EXPECT().Approve(gomock.Any(), "pr-1").Return(&entities.PolicyRequest{}, nil)

		err := h.Handle(context.Background(), record("underwriting.events",
			`{"policyRequestId":"pr-1","eventType":"UNDERWRITING_APPROVED","underwriterId":"uw-7"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl)
		h := NewUnderwritingEventsHandler(lifecycle, nil)

		lifecycle.EXPECT().Reject(gomock.Any(), "pr-1", "underwriting rejected: risk too high").Return(&entities.PolicyRequest{}, nil)

		err := h.Handle(context.Background(), record("underwriting.events",
			`{"policyRequestId":"pr-1","eventType":"UNDERWRITING_REJECTED","reason":"risk too high"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approve error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lifecycle := mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl)
		h := NewUnderwritingEventsHandler(lifecycle, nil)

		lifecycle.EXPECT().Approve(gomock.Any(), "pr-1").Return(nil, entities.ErrInvalidTransition)

		err := h.Handle(context.Background(), record("underwriting.events", `{"policyRequestId":"pr-1","eventType":"UNDERWRITING_APPROVED"}`))
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown type is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewUnderwritingEventsHandler(mocks.NewMockIPolicyRequestLifecycleUseCase(ctrl), nil)

		if err := h.Handle(context.Background(), record("underwriting.events", `{"policyRequestId":"pr-1","eventType":"UNDERWRITING_PENDING"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
