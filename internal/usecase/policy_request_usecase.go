package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrPolicyRequestNotFound     = errors.New("policy request not found")
	ErrInvalidPolicyRequestID    = errors.New("invalid policy request id")
	ErrInvalidCustomerID         = errors.New("invalid customer id")
	ErrInvalidPolicyRequestInput = errors.New("invalid policy request input")
)

// CreatePolicyRequestInput is the intake command for a new policy request.
type CreatePolicyRequestInput struct {
	CustomerID                string                     `validate:"required,uuid"`
	ProductID                 string                     `validate:"required"`
	Category                  entities.InsuranceCategory `validate:"enum"`
	SalesChannel              entities.SalesChannel      `validate:"enum"`
	PaymentMethod             entities.PaymentMethod     `validate:"enum"`
	TotalMonthlyPremiumAmount decimal.Decimal            `validate:"gt=0"`
	InsuredAmount             decimal.Decimal            `validate:"gt=0"`
	Coverages                 map[string]decimal.Decimal `validate:"required,min=1"`
	Assistances               []string
}

// IPolicyRequestUseCase exposes intake and query operations.
type IPolicyRequestUseCase interface {
	Create(ctx context.Context, in CreatePolicyRequestInput) (*entities.PolicyRequest, error)
	FindByID(ctx context.Context, id string) (*entities.PolicyRequest, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]*entities.PolicyRequest, error)
}

type PolicyRequestUseCase struct {
	repo       interfaces.IPolicyRequestRepository
	publisher  interfaces.IEventPublisher
	dispatcher interfaces.IProcessDispatcher
	validate   *validator.Validate
	logger     *zap.Logger
}

var _ IPolicyRequestUseCase = (*PolicyRequestUseCase)(nil)

func NewPolicyRequestUseCase(
	repo interfaces.IPolicyRequestRepository,
	publisher interfaces.IEventPublisher,
	dispatcher interfaces.IProcessDispatcher,
	logger *zap.Logger,
) *PolicyRequestUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PolicyRequestUseCase{
		repo:       repo,
		publisher:  publisher,
		dispatcher: dispatcher,
		validate:   newInputValidator(),
		logger:     logger.Named("usecase"),
	}
}

// Create persists a RECEIVED request, announces it and schedules processing.
// It returns as soon as the request is stored; processing runs in the background.
func (u *PolicyRequestUseCase) Create(ctx context.Context, in CreatePolicyRequestInput) (*entities.PolicyRequest, error) {
	in, err := normalizeCreateInput(in)
	if err != nil {
		return nil, err
	}
	if err := u.validateInput(in); err != nil {
		return nil, err
	}

	coverages := make(map[string]decimal.Decimal, len(in.Coverages))
	for name, amount := range in.Coverages {
		coverages[name] = amount.Round(2)
	}
	assistances := append([]string{}, in.Assistances...)

	p := &entities.PolicyRequest{
		ID:                        uuid.NewString(),
		CustomerID:                in.CustomerID,
		ProductID:                 in.ProductID,
		Category:                  in.Category,
		SalesChannel:              in.SalesChannel,
		PaymentMethod:             in.PaymentMethod,
		Status:                    entities.PolicyRequestStatusReceived,
		CreatedAt:                 entities.Now(),
		TotalMonthlyPremiumAmount: in.TotalMonthlyPremiumAmount.Round(2),
		InsuredAmount:             in.InsuredAmount.Round(2),
		Coverages:                 coverages,
		Assistances:               assistances,
		History:                   []entities.StatusHistory{},
	}

	saved, err := u.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}

	u.publisher.Publish(ctx, entities.NewPolicyEvent(entities.PolicyEventCreated, saved, ""))
	u.logger.Info("[policy][usecase] policy request created",
		zap.String("policy_request_id", saved.ID),
		zap.String("customer_id", saved.CustomerID),
		zap.String("category", string(saved.Category)),
	)

	u.dispatcher.Dispatch(saved.ID)
	return saved, nil
}

func (u *PolicyRequestUseCase) FindByID(ctx context.Context, id string) (*entities.PolicyRequest, error) {
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
	return p, nil
}

// FindByCustomerID returns every request of the customer; an unknown customer
// yields an empty list.
func (u *PolicyRequestUseCase) FindByCustomerID(ctx context.Context, customerID string) ([]*entities.PolicyRequest, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	list, err := u.repo.FindByCustomerIDWithHistory(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entities.PolicyRequest{}
	}
	return list, nil
}

func (u *PolicyRequestUseCase) validateInput(in CreatePolicyRequestInput) error {
	if err := u.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPolicyRequestInput, describeValidationError(err))
	}
	if !in.TotalMonthlyPremiumAmount.Round(2).IsPositive() || !in.InsuredAmount.Round(2).IsPositive() {
		return fmt.Errorf("%w: amounts must be positive", ErrInvalidPolicyRequestInput)
	}
	for name, amount := range in.Coverages {
		if name == "" {
			return fmt.Errorf("%w: coverage name is required", ErrInvalidPolicyRequestInput)
		}
		if !amount.Round(2).IsPositive() {
			return fmt.Errorf("%w: coverage %q must be positive", ErrInvalidPolicyRequestInput, name)
		}
	}
	return nil
}

func normalizeCreateInput(in CreatePolicyRequestInput) (CreatePolicyRequestInput, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.ProductID = strings.TrimSpace(in.ProductID)
	in.Category = entities.InsuranceCategory(strings.ToUpper(strings.TrimSpace(string(in.Category))))
	in.SalesChannel = entities.SalesChannel(strings.ToUpper(strings.TrimSpace(string(in.SalesChannel))))
	in.PaymentMethod = entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(string(in.PaymentMethod))))

	if len(in.Coverages) > 0 {
		coverages := make(map[string]decimal.Decimal, len(in.Coverages))
		for name, amount := range in.Coverages {
			trimmed := strings.TrimSpace(name)
			if _, dup := coverages[trimmed]; dup {
				return in, fmt.Errorf("%w: duplicate coverage %q", ErrInvalidPolicyRequestInput, trimmed)
			}
			coverages[trimmed] = amount
		}
		in.Coverages = coverages
	}
	return in, nil
}
