package repository

import (
	"context"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCheckinsTableName = "checkins"
	checkinsHashIndex        = "hash-index"
)

type checkinItem struct {
	ID           string `dynamodbav:"id"`
	Hash         string `dynamodbav:"hash"`
	State        string `dynamodbav:"estado"`
	Phone        string `dynamodbav:"telefone,omitempty"`
	ServiceID    string `dynamodbav:"servico,omitempty"`
	ReservedDate string `dynamodbav:"data_reservada,omitempty"`
	StartedAt    string `dynamodbav:"data_inicio,omitempty"`
	FinishedAt   string `dynamodbav:"data_fim,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// CheckinDynamoRepository persists Checkin entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: hash-index (PK: hash)
//
// Hash is the customer-facing code, so the public confirmation endpoint
// resolves through the GSI rather than exposing item ids.

type CheckinDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckinRepository = (*CheckinDynamoRepository)(nil)

func NewCheckinDynamoRepository(ddb *dynamodb.Client) *CheckinDynamoRepository {
	return &CheckinDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHECKINS_TABLE", defaultCheckinsTableName),
	}
}

func (r *CheckinDynamoRepository) Create(ctx context.Context, c entities.Checkin) (entities.Checkin, error) {
	it := toCheckinItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Checkin{}, err
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
		return entities.Checkin{}, err
	}
	return c, nil
}

func (r *CheckinDynamoRepository) GetByID(ctx context.Context, id string) (entities.Checkin, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Checkin{}, err
	}
	if len(out.Item) == 0 {
		return entities.Checkin{}, nil
	}

	var it checkinItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Checkin{}, err
	}
	return fromCheckinItem(it), nil
}

func (r *CheckinDynamoRepository) GetByHash(ctx context.Context, hash string) (entities.Checkin, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkinsHashIndex),
		KeyConditionExpression: aws.String("#hash = :hash"),
		ExpressionAttributeNames: map[string]string{
			"#hash": "hash",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hash": &types.AttributeValueMemberS{Value: hash},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Checkin{}, err
	}
	if len(out.Items) == 0 {
		return entities.Checkin{}, nil
	}

	var it checkinItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Checkin{}, err
	}
	return fromCheckinItem(it), nil
}

func (r *CheckinDynamoRepository) List(ctx context.Context) ([]entities.Checkin, error) {
	var items []entities.Checkin

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it checkinItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromCheckinItem(it))
		}
	}
	if items == nil {
		items = []entities.Checkin{}
	}
	return items, nil
}

func (r *CheckinDynamoRepository) Update(ctx context.Context, c entities.Checkin) (entities.Checkin, error) {
	out, err := updateItem(ctx, r.ddb, r.tableName, c.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estado = :estado, #telefone = :telefone, #servico = :servico, " +
			"#data_reservada = :data_reservada, #data_inicio = :data_inicio, #data_fim = :data_fim, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":estado":         &types.AttributeValueMemberS{Value: string(c.State)},
			":telefone":       &types.AttributeValueMemberS{Value: c.Phone},
			":servico":        &types.AttributeValueMemberS{Value: c.ServiceID},
			":data_reservada": &types.AttributeValueMemberS{Value: c.ReservedDate},
			":data_inicio":    &types.AttributeValueMemberS{Value: timePtrToString(c.StartedAt)},
			":data_fim":       &types.AttributeValueMemberS{Value: timePtrToString(c.FinishedAt)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#estado":         "estado",
			"#telefone":       "telefone",
			"#servico":        "servico",
			"#data_reservada": "data_reservada",
			"#data_inicio":    "data_inicio",
			"#data_fim":       "data_fim",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || out == nil {
		return entities.Checkin{}, err
	}

	var it checkinItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Checkin{}, err
	}
	return fromCheckinItem(it), nil
}

func (r *CheckinDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCheckinItem(c entities.Checkin) checkinItem {
	return checkinItem{
		ID:           c.ID,
		Hash:         c.Hash,
		State:        string(c.State),
		Phone:        c.Phone,
		ServiceID:    c.ServiceID,
		ReservedDate: c.ReservedDate,
		StartedAt:    timePtrToString(c.StartedAt),
		FinishedAt:   timePtrToString(c.FinishedAt),
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCheckinItem(it checkinItem) entities.Checkin {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Checkin{
		ID:           it.ID,
		Hash:         it.Hash,
		State:        entities.CheckinState(it.State),
		Phone:        it.Phone,
		ServiceID:    it.ServiceID,
		ReservedDate: it.ReservedDate,
		StartedAt:    stringToTimePtr(it.StartedAt),
		FinishedAt:   stringToTimePtr(it.FinishedAt),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func timePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
