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
	defaultFormOptionsTableName = "formulario_opcaos"
	formOptionsFormIDIndex      = "form_id-index"
)

type formOptionItem struct {
	ID                  string   `dynamodbav:"id"`
	FormID              string   `dynamodbav:"form_id"`
	Position            int      `dynamodbav:"position"`
	PrimaryServiceID    string   `dynamodbav:"servico"`
	SecondaryServiceIDs []string `dynamodbav:"servicos_secundarios,omitempty"`
	CreatedAt           string   `dynamodbav:"created_at"`
	UpdatedAt           string   `dynamodbav:"updated_at"`
}

// FormOptionDynamoRepository persists FormOption entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: form_id-index (PK: form_id)

type FormOptionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFormOptionRepository = (*FormOptionDynamoRepository)(nil)

func NewFormOptionDynamoRepository(ddb *dynamodb.Client) *FormOptionDynamoRepository {
	return &FormOptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORM_OPTIONS_TABLE", defaultFormOptionsTableName),
	}
}

func (r *FormOptionDynamoRepository) Create(ctx context.Context, o entities.FormOption) (entities.FormOption, error) {
	it := toFormOptionItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.FormOption{}, err
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
		return entities.FormOption{}, err
	}
	return o, nil
}

func (r *FormOptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.FormOption, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FormOption{}, err
	}
	if len(out.Item) == 0 {
		return entities.FormOption{}, nil
	}

	var it formOptionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FormOption{}, err
	}
	return fromFormOptionItem(it), nil
}

func (r *FormOptionDynamoRepository) ListByFormID(ctx context.Context, formID string) ([]entities.FormOption, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(formOptionsFormIDIndex),
		KeyConditionExpression: aws.String("form_id = :fid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":fid": &types.AttributeValueMemberS{Value: formID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.FormOption, 0, len(out.Items))
	for _, raw := range out.Items {
		var it formOptionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFormOptionItem(it))
	}
	return items, nil
}

func (r *FormOptionDynamoRepository) Update(ctx context.Context, o entities.FormOption) (entities.FormOption, error) {
	secondary := make([]types.AttributeValue, 0, len(o.SecondaryServiceIDs))
	for _, sid := range o.SecondaryServiceIDs {
		secondary = append(secondary, &types.AttributeValueMemberS{Value: sid})
	}

	out, err := updateItem(ctx, r.ddb, r.tableName, o.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #position = :position, #servico = :servico, #servicos_secundarios = :servicos_secundarios, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":position":             &types.AttributeValueMemberN{Value: strconv.Itoa(o.Position)},
			":servico":              &types.AttributeValueMemberS{Value: o.PrimaryServiceID},
			":servicos_secundarios": &types.AttributeValueMemberL{Value: secondary},
			":updated_at":           &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#position":             "position",
			"#servico":              "servico",
			"#servicos_secundarios": "servicos_secundarios",
			"#updated_at":           "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || out == nil {
		return entities.FormOption{}, err
	}

	var it formOptionItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.FormOption{}, err
	}
	return fromFormOptionItem(it), nil
}

func (r *FormOptionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toFormOptionItem(o entities.FormOption) formOptionItem {
	return formOptionItem{
		ID:                  o.ID,
		FormID:              o.FormID,
		Position:            o.Position,
		PrimaryServiceID:    o.PrimaryServiceID,
		SecondaryServiceIDs: o.SecondaryServiceIDs,
		CreatedAt:           o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFormOptionItem(it formOptionItem) entities.FormOption {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.FormOption{
		ID:                  it.ID,
		FormID:              it.FormID,
		Position:            it.Position,
		PrimaryServiceID:    it.PrimaryServiceID,
		SecondaryServiceIDs: it.SecondaryServiceIDs,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
