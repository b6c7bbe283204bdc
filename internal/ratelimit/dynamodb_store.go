package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultDynamoTable = "rate_limits"

// DynamoAPI is the part of the DynamoDB client the store uses.
type DynamoAPI interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type rateLimitItem struct {
	Key       string `dynamodbav:"key"`
	Count     int    `dynamodbav:"count"`
	ResetAtMs int64  `dynamodbav:"reset_at_ms"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// DynamoStore keeps counters in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//   - TTL attribute: expires_at (epoch seconds)
type DynamoStore struct {
	ddb       DynamoAPI
	tableName string
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = DefaultDynamoTable
	}
	return &DynamoStore{ddb: ddb, tableName: tableName}
}

// Increment adds to an open window, or opens a new one when the key is missing or expired.
// Both writes are conditional, so concurrent callers never lose a count.
func (s *DynamoStore) Increment(ctx context.Context, key string, win time.Duration, now time.Time) (Counter, error) {
	for attempt := 0; attempt < 3; attempt++ {
		c, ok, err := s.incrementOpen(ctx, key, now)
		if err != nil || ok {
			return c, err
		}
		c, ok, err = s.openWindow(ctx, key, win, now)
		if err != nil || ok {
			return c, err
		}
	}
	return Counter{}, fmt.Errorf("dynamodb increment %s: contention", key)
}

func (s *DynamoStore) incrementOpen(ctx context.Context, key string, now time.Time) (Counter, bool, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression:    aws.String("ADD #count :one"),
		ConditionExpression: aws.String("attribute_exists(#key) AND #reset >= :now"),
		ExpressionAttributeNames: map[string]string{
			"#key":   "key",
			"#count": "count",
			"#reset": "reset_at_ms",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UnixMilli(), 10)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return Counter{}, false, nil
		}
		return Counter{}, false, fmt.Errorf("dynamodb increment %s: %w", key, err)
	}

	var it rateLimitItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return Counter{}, false, err
	}
	return Counter{Count: it.Count, ResetAt: time.UnixMilli(it.ResetAtMs)}, true, nil
}

func (s *DynamoStore) openWindow(ctx context.Context, key string, win time.Duration, now time.Time) (Counter, bool, error) {
	resetAt := now.Add(win)
	it := rateLimitItem{
		Key:       key,
		Count:     1,
		ResetAtMs: resetAt.UnixMilli(),
		ExpiresAt: resetAt.Add(time.Minute).Unix(),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return Counter{}, false, err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key) OR #reset < :now"),
		ExpressionAttributeNames: map[string]string{
			"#key":   "key",
			"#reset": "reset_at_ms",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UnixMilli(), 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return Counter{}, false, nil
		}
		return Counter{}, false, fmt.Errorf("dynamodb open window %s: %w", key, err)
	}
	return Counter{Count: 1, ResetAt: resetAt}, true, nil
}
