package repository

import (
	"context"
	"time"

	"souk_marketplace/internal/domain/entities"
	"souk_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsRecipientIndex   = "recipient_id-index"
)

type notificationItem struct {
	ID          string `dynamodbav:"id"`
	RecipientID string `dynamodbav:"recipient_id"`
	OrderID     string `dynamodbav:"order_id"`
	Kind        string `dynamodbav:"kind"`
	Message     string `dynamodbav:"message"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// NotificationDynamoRepository persists Notification records in DynamoDB.
// Records are append-only; there is no update path.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: recipient_id-index (PK: recipient_id, SK: created_at)

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

func (r *NotificationDynamoRepository) Append(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
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

func (r *NotificationDynamoRepository) ListByRecipientID(ctx context.Context, recipientID string, limit int32) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("recipient_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: recipientID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}

	notifications := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		notifications = append(notifications, fromNotificationItem(it))
	}
	return notifications, nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		OrderID:     n.OrderID,
		Kind:        string(n.Kind),
		Message:     n.Message,
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Notification{
		ID:          it.ID,
		RecipientID: it.RecipientID,
		OrderID:     it.OrderID,
		Kind:        entities.NotificationKind(it.Kind),
		Message:     it.Message,
		CreatedAt:   createdAt,
	}
}
