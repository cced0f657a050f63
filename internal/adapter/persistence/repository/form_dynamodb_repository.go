package repository

import (
	"context"
	"sort"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFormsTableName = "formularios"

type formItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"nome"`
	Description string `dynamodbav:"descricao,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// FormDynamoRepository persists Form entities in DynamoDB. Options live in
// their own table (see FormOptionDynamoRepository); the populated read joins
// them in, resolving services through the injected service repository.
//
// Table requirements:
//   - PK: id (string)

type FormDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	options   interfaces.IFormOptionRepository
	services  interfaces.IServiceRepository
}

var _ interfaces.IFormRepository = (*FormDynamoRepository)(nil)

func NewFormDynamoRepository(ddb *dynamodb.Client, options interfaces.IFormOptionRepository, services interfaces.IServiceRepository) *FormDynamoRepository {
	return &FormDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FORMS_TABLE", defaultFormsTableName),
		options:   options,
		services:  services,
	}
}

func (r *FormDynamoRepository) Create(ctx context.Context, f entities.Form) (entities.Form, error) {
	it := toFormItem(f)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Form{}, err
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
		return entities.Form{}, err
	}
	return f, nil
}

func (r *FormDynamoRepository) GetByID(ctx context.Context, id string) (entities.Form, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Form{}, err
	}
	if len(out.Item) == 0 {
		return entities.Form{}, nil
	}

	var it formItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Form{}, err
	}
	return fromFormItem(it), nil
}

// GetByIDPopulated loads the form with its options in position order and every
// referenced service resolved, one batch read for the whole catalog. This is
// the read behind the public wizard's session start.
func (r *FormDynamoRepository) GetByIDPopulated(ctx context.Context, id string) (entities.Form, error) {
	form, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Form{}, err
	}
	if form.ID == "" {
		return entities.Form{}, nil
	}

	opts, err := r.options.ListByFormID(ctx, form.ID)
	if err != nil {
		return entities.Form{}, err
	}
	sort.Slice(opts, func(i, j int) bool { return opts[i].Position < opts[j].Position })

	seen := map[string]struct{}{}
	var ids []string
	collect := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, o := range opts {
		collect(o.PrimaryServiceID)
		for _, sid := range o.SecondaryServiceIDs {
			collect(sid)
		}
	}

	svcs, err := r.services.GetByIDs(ctx, ids)
	if err != nil {
		return entities.Form{}, err
	}
	byID := make(map[string]entities.Service, len(svcs))
	for _, s := range svcs {
		byID[s.ID] = s
	}

	for i := range opts {
		if s, ok := byID[opts[i].PrimaryServiceID]; ok {
			primary := s
			opts[i].PrimaryService = &primary
		}
		secondaries := make([]entities.Service, 0, len(opts[i].SecondaryServiceIDs))
		for _, sid := range opts[i].SecondaryServiceIDs {
			if s, ok := byID[sid]; ok {
				secondaries = append(secondaries, s)
			}
		}
		opts[i].SecondaryServices = secondaries
	}

	form.Options = opts
	return form, nil
}

func (r *FormDynamoRepository) List(ctx context.Context) ([]entities.Form, error) {
	var items []entities.Form

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it formItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromFormItem(it))
		}
	}
	if items == nil {
		items = []entities.Form{}
	}
	return items, nil
}

func (r *FormDynamoRepository) Update(ctx context.Context, f entities.Form) (entities.Form, error) {
	out, err := updateItem(ctx, r.ddb, r.tableName, f.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #nome = :nome, #descricao = :descricao, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":nome":       &types.AttributeValueMemberS{Value: f.Name},
			":descricao":  &types.AttributeValueMemberS{Value: f.Description},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#nome":       "nome",
			"#descricao":  "descricao",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || out == nil {
		return entities.Form{}, err
	}

	var it formItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Form{}, err
	}
	return fromFormItem(it), nil
}

func (r *FormDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toFormItem(f entities.Form) formItem {
	return formItem{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   f.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   f.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFormItem(it formItem) entities.Form {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Form{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
