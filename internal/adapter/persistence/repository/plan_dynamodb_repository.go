package repository

import (
	"context"
	"strconv"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPlansTableName = "planos"
	plansUserIDIndex      = "user_id-index"
)

type planItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	IsPaid    bool   `dynamodbav:"is_pago"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PlanDynamoRepository persists Plan entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type PlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb *dynamodb.Client) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *PlanDynamoRepository) Create(ctx context.Context, p entities.Plan) (entities.Plan, error) {
	it := toPlanItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Plan{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Plan{}, err
	}
	return p, nil
}

func (r *PlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.Plan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Item) == 0 {
		return entities.Plan{}, nil
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

// GetByUserID resolves a user's plan through the user_id GSI. A user has at
// most one plan; with several items the most recent wins.
func (r *PlanDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.Plan, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(plansUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return entities.Plan{}, err
	}
	if len(out.Items) == 0 {
		return entities.Plan{}, nil
	}

	latest := entities.Plan{}
	for _, raw := range out.Items {
		var it planItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Plan{}, err
		}
		p := fromPlanItem(it)
		if p.CreatedAt.After(latest.CreatedAt) || latest.ID == "" {
			latest = p
		}
	}
	return latest, nil
}

func (r *PlanDynamoRepository) SetPaid(ctx context.Context, id string, paid bool) (entities.Plan, error) {
	out, err := updateItem(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_pago = :is_pago, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":is_pago":    &types.AttributeValueMemberBOOL{Value: paid},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_pago":    "is_pago",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || out == nil {
		return entities.Plan{}, err
	}

	var it planItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Plan{}, err
	}
	return fromPlanItem(it), nil
}

func (r *PlanDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPlanItem(p entities.Plan) planItem {
	return planItem{
		ID:        p.ID,
		UserID:    p.UserID,
		IsPaid:    p.IsPaid,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPlanItem(it planItem) entities.Plan {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Plan{
		ID:        it.ID,
		UserID:    it.UserID,
		IsPaid:    it.IsPaid,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

type planServiceItem struct {
	ID             string `dynamodbav:"id"`
	PlanID         string `dynamodbav:"plan_id"`
	ServiceID      string `dynamodbav:"servico"`
	Frequency      string `dynamodbav:"frequencia_value"`
	FrequencyLabel string `dynamodbav:"frequencia"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// PlanServiceDynamoRepository persists PlanService entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: plan_id-index (PK: plan_id)

const (
	defaultPlanServicesTableName = "plano_servicos"
	planServicesPlanIDIndex      = "plan_id-index"
)

type PlanServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanServiceRepository = (*PlanServiceDynamoRepository)(nil)

func NewPlanServiceDynamoRepository(ddb *dynamodb.Client) *PlanServiceDynamoRepository {
	return &PlanServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLAN_SERVICES_TABLE", defaultPlanServicesTableName),
	}
}

func (r *PlanServiceDynamoRepository) Create(ctx context.Context, ps entities.PlanService) (entities.PlanService, error) {
	it := toPlanServiceItem(ps)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PlanService{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PlanService{}, err
	}
	return ps, nil
}

func (r *PlanServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.PlanService, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PlanService{}, err
	}
	if len(out.Item) == 0 {
		return entities.PlanService{}, nil
	}

	var it planServiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PlanService{}, err
	}
	return fromPlanServiceItem(it), nil
}

func (r *PlanServiceDynamoRepository) ListByPlanID(ctx context.Context, planID string) ([]entities.PlanService, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(planServicesPlanIDIndex),
		KeyConditionExpression: aws.String("plan_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: planID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PlanService, 0, len(out.Items))
	for _, raw := range out.Items {
		var it planServiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPlanServiceItem(it))
	}
	return items, nil
}

// Update rewrites the service reference and frequency of an existing line.
// Returns the zero value when the line no longer exists.
func (r *PlanServiceDynamoRepository) Update(ctx context.Context, ps entities.PlanService) (entities.PlanService, error) {
	out, err := updateItem(ctx, r.ddb, r.tableName, ps.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #servico = :servico, #frequencia_value = :frequencia_value, #frequencia = :frequencia, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":servico":          &types.AttributeValueMemberS{Value: ps.ServiceID},
			":frequencia_value": &types.AttributeValueMemberS{Value: strconv.Itoa(ps.Frequency)},
			":frequencia":       &types.AttributeValueMemberS{Value: ps.FrequencyLabel},
			":updated_at":       &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#servico":          "servico",
			"#frequencia_value": "frequencia_value",
			"#frequencia":       "frequencia",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || out == nil {
		return entities.PlanService{}, err
	}

	var it planServiceItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.PlanService{}, err
	}
	return fromPlanServiceItem(it), nil
}

func (r *PlanServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toPlanServiceItem(ps entities.PlanService) planServiceItem {
	return planServiceItem{
		ID:             ps.ID,
		PlanID:         ps.PlanID,
		ServiceID:      ps.ServiceID,
		Frequency:      strconv.Itoa(ps.Frequency),
		FrequencyLabel: ps.FrequencyLabel,
		CreatedAt:      ps.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      ps.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPlanServiceItem(it planServiceItem) entities.PlanService {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	frequency, _ := strconv.Atoi(it.Frequency)
	return entities.PlanService{
		ID:             it.ID,
		PlanID:         it.PlanID,
		ServiceID:      it.ServiceID,
		Frequency:      frequency,
		FrequencyLabel: it.FrequencyLabel,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
