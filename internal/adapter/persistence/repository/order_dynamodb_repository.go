package repository

import (
	"context"
	"errors"
	"time"

	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersClientIDIndex    = "client_id-index"
	ordersSupplierIDIndex  = "supplier_id-index"
)

type orderLineItem struct {
	ProductID   string `dynamodbav:"product_id"`
	ProductName string `dynamodbav:"product_name"`
	SupplierID  string `dynamodbav:"supplier_id"`
	Quantity    int64  `dynamodbav:"quantity"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
}

type orderItem struct {
	ID          string          `dynamodbav:"id"`
	ClientID    string          `dynamodbav:"client_id"`
	ClientName  string          `dynamodbav:"client_name"`
	SupplierID  string          `dynamodbav:"supplier_id"`
	Items       []orderLineItem `dynamodbav:"items"`
	TotalAmount int64           `dynamodbav:"total_amount"`
	Status      string          `dynamodbav:"status"`
	AcceptedAt  string          `dynamodbav:"accepted_at,omitempty"`
	CreatedAt   string          `dynamodbav:"created_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id, SK: created_at)
//   - GSI: supplier_id-index (PK: supplier_id, SK: created_at)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateStatusIfNew flips the order status as one conditional update keyed
// on status still being "new". Two concurrent accept/refuse calls can both
// observe "new" on read; only one can pass this condition. The losing call
// gets a zero-value Order, which the use case reports as a conflict.
func (r *OrderDynamoRepository) UpdateStatusIfNew(ctx context.Context, id string, status entities.OrderStatus, acceptedAt bool) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :status"
	values := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
		":new":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusNew)},
	}
	if acceptedAt {
		updateExpr += ", #accepted_at = :accepted_at"
		values[":accepted_at"] = &types.AttributeValueMemberS{Value: now}
	}

	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	if acceptedAt {
		names["#accepted_at"] = "accepted_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :new"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersClientIDIndex, "client_id", clientID)
}

func (r *OrderDynamoRepository) ListBySupplierID(ctx context.Context, supplierID string) ([]entities.Order, error) {
	return r.queryIndex(ctx, ordersSupplierIDIndex, "supplier_id", supplierID)
}

func (r *OrderDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#key = :value"),
		ExpressionAttributeNames: map[string]string{
			"#key": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: value},
		},
		// created_at is the index range key; newest first.
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	items := make([]orderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, orderLineItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			SupplierID:  li.SupplierID,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		})
	}

	it := orderItem{
		ID:          o.ID,
		ClientID:    o.ClientID,
		ClientName:  o.ClientName,
		SupplierID:  o.SupplierID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.AcceptedAt != nil {
		it.AcceptedAt = o.AcceptedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	items := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.OrderItem{
			ProductID:   li.ProductID,
			ProductName: li.ProductName,
			SupplierID:  li.SupplierID,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		})
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	o := entities.Order{
		ID:          it.ID,
		ClientID:    it.ClientID,
		ClientName:  it.ClientName,
		SupplierID:  it.SupplierID,
		Items:       items,
		TotalAmount: it.TotalAmount,
		Status:      entities.OrderStatus(it.Status),
		CreatedAt:   createdAt,
	}
	if it.AcceptedAt != "" {
		if acceptedAt, err := time.Parse(time.RFC3339Nano, it.AcceptedAt); err == nil {
			o.AcceptedAt = &acceptedAt
		}
	}
	return o
}
