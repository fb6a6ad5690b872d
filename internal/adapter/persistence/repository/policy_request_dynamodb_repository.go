package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"policy_request_service/internal/domain/entities"
	"policy_request_service/internal/infrastructure/database"
	"policy_request_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	requestSortKey       = "REQUEST"
	historySortKeyPrefix = "HISTORY#"
)

type policyRequestItem struct {
	PK                        string            `dynamodbav:"pk"`
	SK                        string            `dynamodbav:"sk"`
	ID                        string            `dynamodbav:"id"`
	CustomerID                string            `dynamodbav:"customer_id"`
	ProductID                 string            `dynamodbav:"product_id"`
	Category                  string            `dynamodbav:"category"`
	SalesChannel              string            `dynamodbav:"sales_channel"`
	PaymentMethod             string            `dynamodbav:"payment_method"`
	Status                    string            `dynamodbav:"status"`
	CreatedAt                 string            `dynamodbav:"created_at"`
	FinishedAt                string            `dynamodbav:"finished_at,omitempty"`
	TotalMonthlyPremiumAmount string            `dynamodbav:"total_monthly_premium_amount"`
	InsuredAmount             string            `dynamodbav:"insured_amount"`
	Coverages                 map[string]string `dynamodbav:"coverages"`
	Assistances               []string          `dynamodbav:"assistances"`
	Version                   int64             `dynamodbav:"version"`
}

// History items carry no customer_id so the customer index stays limited to
// root items.
type statusHistoryItem struct {
	PK              string `dynamodbav:"pk"`
	SK              string `dynamodbav:"sk"`
	ID              string `dynamodbav:"history_id"`
	PolicyRequestID string `dynamodbav:"policy_request_id"`
	Status          string `dynamodbav:"status"`
	Timestamp       string `dynamodbav:"timestamp"`
	Reason          string `dynamodbav:"reason,omitempty"`
}

// PolicyRequestDynamoRepository persists PolicyRequest aggregates in DynamoDB.
//
// Table requirements (single table):
//   - PK: pk (string, policy request id), SK: sk (string)
//   - sk = "REQUEST" for the aggregate root
//   - sk = "HISTORY#<timestamp>#<position>#<history id>" for each status history entry
//   - GSI: customer_id-index (PK: customer_id, SK: created_at)
type PolicyRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IPolicyRequestRepository = (*PolicyRequestDynamoRepository)(nil)

func NewPolicyRequestDynamoRepository(ddb *dynamodb.Client, tableName string, logger *zap.Logger) *PolicyRequestDynamoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PolicyRequestDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		logger:    logger.Named("dynamodb"),
	}
}

// Save writes the root item and the held history entries in one transaction.
// The root put is conditioned on the loaded version.
func (r *PolicyRequestDynamoRepository) Save(ctx context.Context, p *entities.PolicyRequest) (*entities.PolicyRequest, error) {
	next := p.Version + 1

	root := toPolicyRequestItem(p)
	root.Version = next
	rootAV, err := attributevalue.MarshalMap(root)
	if err != nil {
		return nil, err
	}

	put := &types.Put{
		TableName: aws.String(r.tableName),
		Item:      rootAV,
	}
	if p.Version == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#pk)")
		put.ExpressionAttributeNames = map[string]string{"#pk": "pk"}
	} else {
		put.ConditionExpression = aws.String("#version = :expected")
		put.ExpressionAttributeNames = map[string]string{"#version": "version"}
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(p.Version, 10)},
		}
	}

	items := []types.TransactWriteItem{{Put: put}}
	for i, h := range p.History {
		av, err := attributevalue.MarshalMap(toStatusHistoryItem(p.ID, i, h))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{Put: &types.Put{
			TableName: aws.String(r.tableName),
			Item:      av,
		}})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionFailure(err) {
			r.logger.Warn("[policy][repository] version conflict",
				zap.String("policy_request_id", p.ID),
				zap.Int64("expected_version", p.Version),
			)
			return nil, fmt.Errorf("%w: id=%s version=%d", interfaces.ErrConcurrentModification, p.ID, p.Version)
		}
		return nil, err
	}

	p.Version = next
	return p, nil
}

func (r *PolicyRequestDynamoRepository) FindByID(ctx context.Context, id string) (*entities.PolicyRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: id},
			"sk": &types.AttributeValueMemberS{Value: requestSortKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it policyRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return fromPolicyRequestItem(it), nil
}

// FindByIDWithHistory reads the whole item collection of the request.
func (r *PolicyRequestDynamoRepository) FindByIDWithHistory(ctx context.Context, id string) (*entities.PolicyRequest, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "pk",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})

	var (
		p       *entities.PolicyRequest
		history []entities.StatusHistory
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			sk, _ := raw["sk"].(*types.AttributeValueMemberS)
			switch {
			case sk == nil:
				continue
			case sk.Value == requestSortKey:
				var it policyRequestItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				p = fromPolicyRequestItem(it)
			case strings.HasPrefix(sk.Value, historySortKeyPrefix):
				var it statusHistoryItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				history = append(history, fromStatusHistoryItem(it))
			}
		}
	}
	if p == nil {
		return nil, nil
	}

	sortHistory(history)
	p.History = history
	return p, nil
}

func (r *PolicyRequestDynamoRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*entities.PolicyRequest, error) {
	paginator := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.PolicyRequestsCustomerIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})

	out := []*entities.PolicyRequest{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []policyRequestItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromPolicyRequestItem(it))
		}
	}
	return out, nil
}

// FindByCustomerIDWithHistory lists through the customer index and then reads
// each request's history with a consistent query.
func (r *PolicyRequestDynamoRepository) FindByCustomerIDWithHistory(ctx context.Context, customerID string) ([]*entities.PolicyRequest, error) {
	listed, err := r.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.PolicyRequest, 0, len(listed))
	for _, summary := range listed {
		full, err := r.FindByIDWithHistory(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		if full == nil {
			continue
		}
		out = append(out, full)
	}
	return out, nil
}

func isConditionFailure(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}

// historySortKey orders entries by timestamp, then by append position, so
// entries sharing a timestamp read back in the order they were appended.
func historySortKey(position int, h entities.StatusHistory) string {
	return fmt.Sprintf("%s%s#%03d#%s", historySortKeyPrefix, h.Timestamp.UTC().Format(sortableTimeLayout), position, h.ID)
}

func toPolicyRequestItem(p *entities.PolicyRequest) policyRequestItem {
	coverages := make(map[string]string, len(p.Coverages))
	for name, amount := range p.Coverages {
		coverages[name] = decimalToString(amount)
	}
	assistances := p.Assistances
	if assistances == nil {
		assistances = []string{}
	}

	it := policyRequestItem{
		PK:                        p.ID,
		SK:                        requestSortKey,
		ID:                        p.ID,
		CustomerID:                p.CustomerID,
		ProductID:                 p.ProductID,
		Category:                  string(p.Category),
		SalesChannel:              string(p.SalesChannel),
		PaymentMethod:             string(p.PaymentMethod),
		Status:                    string(p.Status),
		CreatedAt:                 formatTime(p.CreatedAt),
		TotalMonthlyPremiumAmount: decimalToString(p.TotalMonthlyPremiumAmount),
		InsuredAmount:             decimalToString(p.InsuredAmount),
		Coverages:                 coverages,
		Assistances:               assistances,
		Version:                   p.Version,
	}
	if p.FinishedAt != nil {
		it.FinishedAt = formatTime(*p.FinishedAt)
	}
	return it
}

func fromPolicyRequestItem(it policyRequestItem) *entities.PolicyRequest {
	coverages := make(map[string]decimal.Decimal, len(it.Coverages))
	for name, amount := range it.Coverages {
		coverages[name] = decimalFromString(amount)
	}
	assistances := it.Assistances
	if assistances == nil {
		assistances = []string{}
	}

	p := &entities.PolicyRequest{
		ID:                        it.ID,
		CustomerID:                it.CustomerID,
		ProductID:                 it.ProductID,
		Category:                  entities.InsuranceCategory(it.Category),
		SalesChannel:              entities.SalesChannel(it.SalesChannel),
		PaymentMethod:             entities.PaymentMethod(it.PaymentMethod),
		Status:                    entities.PolicyRequestStatus(it.Status),
		CreatedAt:                 parseTime(it.CreatedAt),
		TotalMonthlyPremiumAmount: decimalFromString(it.TotalMonthlyPremiumAmount),
		InsuredAmount:             decimalFromString(it.InsuredAmount),
		Coverages:                 coverages,
		Assistances:               assistances,
		History:                   []entities.StatusHistory{},
		Version:                   it.Version,
	}
	if it.FinishedAt != "" {
		finished := parseTime(it.FinishedAt)
		p.FinishedAt = &finished
	}
	return p
}

func toStatusHistoryItem(policyRequestID string, position int, h entities.StatusHistory) statusHistoryItem {
	return statusHistoryItem{
		PK:              policyRequestID,
		SK:              historySortKey(position, h),
		ID:              h.ID,
		PolicyRequestID: policyRequestID,
		Status:          string(h.Status),
		Timestamp:       formatTime(h.Timestamp),
		Reason:          h.Reason,
	}
}

func fromStatusHistoryItem(it statusHistoryItem) entities.StatusHistory {
	return entities.StatusHistory{
		ID:              it.ID,
		PolicyRequestID: it.PolicyRequestID,
		Status:          entities.PolicyRequestStatus(it.Status),
		Timestamp:       parseTime(it.Timestamp),
		Reason:          it.Reason,
	}
}
