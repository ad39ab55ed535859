package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "products"

type productItem struct {
	ID         string `dynamodbav:"id"`
	SupplierID string `dynamodbav:"supplier_id"`
	Name       string `dynamodbav:"name"`
	UnitPrice  int64  `dynamodbav:"unit_price"`
	Quantity   int64  `dynamodbav:"quantity"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Stock correctness depends on ReserveStock/ReleaseStock being conditional
// single-item updates; no caller ever writes quantity with a read-modify-write.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #unit_price = :unit_price, #quantity = :quantity, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#name":       "name",
			"#unit_price": "unit_price",
			"#quantity":   "quantity",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":       &types.AttributeValueMemberS{Value: p.Name},
			":unit_price": &types.AttributeValueMemberN{Value: strconv.FormatInt(p.UnitPrice, 10)},
			":quantity":   &types.AttributeValueMemberN{Value: strconv.FormatInt(p.Quantity, 10)},
			":updated_at": &types.AttributeValueMemberS{Value: p.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ReserveStock decrements the live quantity only when at least `quantity`
// units remain, as one conditional update. A failed condition means
// insufficient stock and is reported as (false, nil), never as an error.
func (r *ProductDynamoRepository) ReserveStock(ctx context.Context, id string, quantity int64) (bool, error) {
	q := strconv.FormatInt(quantity, 10)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #quantity >= :q"),
		UpdateExpression:    aws.String("SET #quantity = #quantity - :q"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#quantity": "quantity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberN{Value: q},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReleaseStock returns previously reserved units. If the product was deleted
// in the meantime the condition fails and the release is a no-op.
func (r *ProductDynamoRepository) ReleaseStock(ctx context.Context, id string, quantity int64) error {
	q := strconv.FormatInt(quantity, 10)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #quantity = #quantity + :q"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#quantity": "quantity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q": &types.AttributeValueMemberN{Value: q},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:         p.ID,
		SupplierID: p.SupplierID,
		Name:       p.Name,
		UnitPrice:  p.UnitPrice,
		Quantity:   p.Quantity,
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Product{
		ID:         it.ID,
		SupplierID: it.SupplierID,
		Name:       it.Name,
		UnitPrice:  it.UnitPrice,
		Quantity:   it.Quantity,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
