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
	defaultUsersTableName = "users"
	usersEmailIndex       = "email-index"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Username     string `dynamodbav:"username"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	CPF          string `dynamodbav:"cpf_cnpj,omitempty"`
	Phone        string `dynamodbav:"telefone,omitempty"`
	Blocked      bool   `dynamodbav:"blocked"`

	Gender    string `dynamodbav:"genero,omitempty"`
	BirthDate string `dynamodbav:"data_nascimento,omitempty"`
	CEP       string `dynamodbav:"cep,omitempty"`
	Company   string `dynamodbav:"empresa,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//
// Email is the login identity and the intake uniqueness key, so both lookups
// go through the GSI.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	it := toUserItem(u)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// List scans all users; with a non-empty role it filters server side.
func (r *UserDynamoRepository) List(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if role != "" {
		in.FilterExpression = aws.String("#role = :role")
		in.ExpressionAttributeNames = map[string]string{"#role": "role"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":role": &types.AttributeValueMemberS{Value: string(role)},
		}
	}

	var items []entities.User
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromUserItem(it))
		}
	}
	if items == nil {
		items = []entities.User{}
	}
	return items, nil
}

func (r *UserDynamoRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	out, err := updateItem(ctx, r.ddb, r.tableName, u.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #username = :username, #name = :name, #email = :email, #role = :role, " +
			"#cpf_cnpj = :cpf_cnpj, #telefone = :telefone, #blocked = :blocked, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":username":   &types.AttributeValueMemberS{Value: u.Username},
			":name":       &types.AttributeValueMemberS{Value: u.Name},
			":email":      &types.AttributeValueMemberS{Value: u.Email},
			":role":       &types.AttributeValueMemberS{Value: string(u.Role)},
			":cpf_cnpj":   &types.AttributeValueMemberS{Value: u.CPF},
			":telefone":   &types.AttributeValueMemberS{Value: u.Phone},
			":blocked":    &types.AttributeValueMemberBOOL{Value: u.Blocked},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#username":   "username",
			"#name":       "name",
			"#email":      "email",
			"#role":       "role",
			"#cpf_cnpj":   "cpf_cnpj",
			"#telefone":   "telefone",
			"#blocked":    "blocked",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil || out == nil {
		return entities.User{}, err
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CPF:          u.CPF,
		Phone:        u.Phone,
		Blocked:      u.Blocked,
		Gender:       u.Metadata.Gender,
		BirthDate:    u.Metadata.BirthDate,
		CEP:          u.Metadata.CEP,
		Company:      u.Metadata.Company,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.User{
		ID:           it.ID,
		Username:     it.Username,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Role:         entities.UserRole(it.Role),
		CPF:          it.CPF,
		Phone:        it.Phone,
		Blocked:      it.Blocked,
		Metadata: entities.UserMetadata{
			Gender:    it.Gender,
			BirthDate: it.BirthDate,
			CEP:       it.CEP,
			Company:   it.Company,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
