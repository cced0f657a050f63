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

const defaultNotificationsTableName = "notifications"

type notificationItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	IsRead      bool   `dynamodbav:"is_read"`
	MetadataRaw string `dynamodbav:"metadata_raw,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Metadata is stored as the raw JSON string the wizard produced, so an intake
// submission survives byte-for-byte until it is approved.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	it := toNotificationItem(n)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) List(ctx context.Context) ([]entities.Notification, error) {
	var items []entities.Notification

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromNotificationItem(it))
		}
	}
	if items == nil {
		items = []entities.Notification{}
	}
	return items, nil
}

func (r *NotificationDynamoRepository) SetRead(ctx context.Context, id string, read bool) (entities.Notification, error) {
	out, err := updateItem(ctx, r.ddb, r.tableName, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #is_read = :is_read, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":is_read":    &types.AttributeValueMemberBOOL{Value: read},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#is_read":    "is_read",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || out == nil {
		return entities.Notification{}, err
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:          n.ID,
		Title:       n.Title,
		IsRead:      n.IsRead,
		MetadataRaw: string(n.MetadataRaw),
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   n.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Notification{
		ID:          it.ID,
		Title:       it.Title,
		IsRead:      it.IsRead,
		MetadataRaw: []byte(it.MetadataRaw),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
