package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"time"

	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultEventsTableName = "mp_events"
	eventsResourceIDIndex  = "resource_id-index"
)

// DynamoAPI is the part of *dynamodb.Client the journal needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type eventItem struct {
	ID                string `dynamodbav:"id"`
	ResourceID        string `dynamodbav:"resource_id"`
	EventType         string `dynamodbav:"event_type"`
	Status            string `dynamodbav:"status"`
	ExternalReference string `dynamodbav:"external_reference,omitempty"`
	NotificationID    string `dynamodbav:"notification_id,omitempty"`
	LiveMode          bool   `dynamodbav:"live_mode"`
	ReceivedAt        string `dynamodbav:"received_at"`
	Data              string `dynamodbav:"data"`
	Webhook           string `dynamodbav:"webhook"`
	Raw               string `dynamodbav:"raw,omitempty"`
}

// EventDynamoRepository journals normalized webhook events in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: resource_id-index (PK: resource_id, SK: received_at)
type EventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IEventRepository = (*EventDynamoRepository)(nil)

// NewEventDynamoRepository falls back to EVENTS_TABLE, then "mp_events", when
// tableName is empty.
func NewEventDynamoRepository(ddb DynamoAPI, tableName string) *EventDynamoRepository {
	if tableName == "" {
		tableName = os.Getenv("EVENTS_TABLE")
	}
	if tableName == "" {
		tableName = defaultEventsTableName
	}
	return &EventDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *EventDynamoRepository) Save(ctx context.Context, e entities.Event) error {
	it, err := toEventItem(e, r.now())
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *EventDynamoRepository) ListByResourceID(ctx context.Context, resourceID string) ([]entities.Event, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(eventsResourceIDIndex),
		KeyConditionExpression: aws.String("resource_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: resourceID},
		},
	}

	var items []eventItem
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it eventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].ReceivedAt < items[j].ReceivedAt })

	events := make([]entities.Event, 0, len(items))
	for _, it := range items {
		e, err := fromEventItem(it)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func toEventItem(e entities.Event, receivedAt time.Time) (eventItem, error) {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return eventItem{}, err
	}
	webhook, err := json.Marshal(e.Webhook)
	if err != nil {
		return eventItem{}, err
	}
	return eventItem{
		ID:                uuid.NewString(),
		ResourceID:        e.ID,
		EventType:         string(e.Type),
		Status:            e.Data.Status,
		ExternalReference: e.Data.ExternalReference,
		NotificationID:    e.Webhook.ID.String(),
		LiveMode:          e.Webhook.LiveMode,
		ReceivedAt:        receivedAt.UTC().Format(time.RFC3339Nano),
		Data:              string(data),
		Webhook:           string(webhook),
		Raw:               string(e.Raw),
	}, nil
}

func fromEventItem(it eventItem) (entities.Event, error) {
	e := entities.Event{
		Type: entities.EventType(it.EventType),
		ID:   it.ResourceID,
	}
	if it.Data != "" {
		if err := json.Unmarshal([]byte(it.Data), &e.Data); err != nil {
			return entities.Event{}, err
		}
	}
	if it.Webhook != "" {
		if err := json.Unmarshal([]byte(it.Webhook), &e.Webhook); err != nil {
			return entities.Event{}, err
		}
	}
	if it.Raw != "" {
		e.Raw = json.RawMessage(it.Raw)
	}
	return e, nil
}
