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

const defaultServicesTableName = "servicos"

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"descricao,omitempty"`
	Gender      string `dynamodbav:"genero"`
	PartnerID   string `dynamodbav:"partner_id"`

	Price               string `dynamodbav:"preco"`
	CollaboratorPercent string `dynamodbav:"percent_colab"`
	TransferPercent     string `dynamodbav:"percent_repasse"`
	CollaboratorPrice   string `dynamodbav:"preco_colab"`
	PartnerPrice        string `dynamodbav:"preco_parceiro"`
	Profit              string `dynamodbav:"lucro"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists Service entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Monetary fields are stored as strings to avoid float drift in the table;
// they round-trip through strconv.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	it := toServiceItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

// GetByIDs resolves a batch of services in one round trip. Missing ids are
// simply absent from the result; callers decide whether that is an error.
func (r *ServiceDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Service, error) {
	if len(ids) == 0 {
		return []entities.Service{}, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		})
	}

	out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
		RequestItems: map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		},
	})
	if err != nil {
		return nil, err
	}

	raws := out.Responses[r.tableName]
	items := make([]entities.Service, 0, len(raws))
	for _, raw := range raws {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServiceItem(it))
	}
	return items, nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	var items []entities.Service

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it serviceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromServiceItem(it))
		}
	}
	if items == nil {
		items = []entities.Service{}
	}
	return items, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	return r.update(ctx, s.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #descricao = :descricao, #genero = :genero, #partner_id = :partner_id, " +
			"#preco = :preco, #percent_colab = :percent_colab, #percent_repasse = :percent_repasse, " +
			"#preco_colab = :preco_colab, #preco_parceiro = :preco_parceiro, #lucro = :lucro, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":name":            &types.AttributeValueMemberS{Value: s.Name},
			":descricao":       &types.AttributeValueMemberS{Value: s.Description},
			":genero":          &types.AttributeValueMemberS{Value: string(s.Gender)},
			":partner_id":      &types.AttributeValueMemberS{Value: s.PartnerID},
			":preco":           &types.AttributeValueMemberS{Value: floatToString(s.Price)},
			":percent_colab":   &types.AttributeValueMemberS{Value: floatToString(s.CollaboratorPercent)},
			":percent_repasse": &types.AttributeValueMemberS{Value: floatToString(s.TransferPercent)},
			":preco_colab":     &types.AttributeValueMemberS{Value: floatToString(s.CollaboratorPrice)},
			":preco_parceiro":  &types.AttributeValueMemberS{Value: floatToString(s.PartnerPrice)},
			":lucro":           &types.AttributeValueMemberS{Value: floatToString(s.Profit)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#name":            "name",
			"#descricao":       "descricao",
			"#genero":          "genero",
			"#partner_id":      "partner_id",
			"#preco":           "preco",
			"#percent_colab":   "percent_colab",
			"#percent_repasse": "percent_repasse",
			"#preco_colab":     "preco_colab",
			"#preco_parceiro":  "preco_parceiro",
			"#lucro":           "lucro",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ServiceDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Service, error) {
	out, err := updateItem(ctx, r.ddb, r.tableName, id, build)
	if err != nil || out == nil {
		return entities.Service{}, err
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:                  s.ID,
		Name:                s.Name,
		Description:         s.Description,
		Gender:              string(s.Gender),
		PartnerID:           s.PartnerID,
		Price:               floatToString(s.Price),
		CollaboratorPercent: floatToString(s.CollaboratorPercent),
		TransferPercent:     floatToString(s.TransferPercent),
		CollaboratorPrice:   floatToString(s.CollaboratorPrice),
		PartnerPrice:        floatToString(s.PartnerPrice),
		Profit:              floatToString(s.Profit),
		CreatedAt:           s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	collabPercent, _ := strconv.ParseFloat(it.CollaboratorPercent, 64)
	transferPercent, _ := strconv.ParseFloat(it.TransferPercent, 64)
	collabPrice, _ := strconv.ParseFloat(it.CollaboratorPrice, 64)
	partnerPrice, _ := strconv.ParseFloat(it.PartnerPrice, 64)
	profit, _ := strconv.ParseFloat(it.Profit, 64)
	return entities.Service{
		ID:                  it.ID,
		Name:                it.Name,
		Description:         it.Description,
		Gender:              entities.ServiceGender(it.Gender),
		PartnerID:           it.PartnerID,
		Price:               price,
		CollaboratorPercent: collabPercent,
		TransferPercent:     transferPercent,
		CollaboratorPrice:   collabPrice,
		PartnerPrice:        partnerPrice,
		Profit:              profit,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}
