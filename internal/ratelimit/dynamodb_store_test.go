package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo evaluates the two conditional writes the store issues against an in-memory table.
type fakeDynamo struct {
	mu      sync.Mutex
	items   map[string]map[string]types.AttributeValue
	updates int
	puts    int
	err     error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func numberAttr(av types.AttributeValue) int64 {
	n, _ := strconv.ParseInt(av.(*types.AttributeValueMemberN).Value, 10, 64)
	return n
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	if f.err != nil {
		return nil, f.err
	}

	key := in.Key["key"].(*types.AttributeValueMemberS).Value
	now := numberAttr(in.ExpressionAttributeValues[":now"])
	item, ok := f.items[key]
	if !ok || numberAttr(item["reset_at_ms"]) < now {
		return nil, &types.ConditionalCheckFailedException{}
	}
	count := numberAttr(item["count"]) + 1
	item["count"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(count, 10)}
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return &dynamodb.UpdateItemOutput{Attributes: out}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++

	key := in.Item["key"].(*types.AttributeValueMemberS).Value
	now := numberAttr(in.ExpressionAttributeValues[":now"])
	if item, ok := f.items[key]; ok && numberAttr(item["reset_at_ms"]) >= now {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.items[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamoStore_Increment(t *testing.T) {
	ctx := context.Background()
	now := time.UnixMilli(1_700_000_000_000)

	t.Run("opens then extends a window", func(t *testing.T) {
		ddb := newFakeDynamo()
		s := NewDynamoStore(ddb, "")

		c, err := s.Increment(ctx, "auth:ip", time.Minute, now)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Count)
		assert.Equal(t, now.Add(time.Minute), c.ResetAt)

		c, err = s.Increment(ctx, "auth:ip", time.Minute, now.Add(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 2, c.Count)
		assert.Equal(t, now.Add(time.Minute), c.ResetAt)
	})

	t.Run("expired window restarts", func(t *testing.T) {
		ddb := newFakeDynamo()
		s := NewDynamoStore(ddb, "limits")

		_, _ = s.Increment(ctx, "k", time.Second, now)
		_, _ = s.Increment(ctx, "k", time.Second, now)

		later := now.Add(3 * time.Second)
		c, err := s.Increment(ctx, "k", time.Second, later)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Count)
		assert.Equal(t, later.Add(time.Second), c.ResetAt)
	})

	t.Run("stores ttl attribute", func(t *testing.T) {
		ddb := newFakeDynamo()
		s := NewDynamoStore(ddb, "")

		_, err := s.Increment(ctx, "k", time.Minute, now)
		require.NoError(t, err)
		exp := numberAttr(ddb.items["k"]["expires_at"])
		assert.Equal(t, now.Add(2*time.Minute).Unix(), exp)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.err = errors.New("throttled")
		s := NewDynamoStore(ddb, "")

		_, err := s.Increment(ctx, "k", time.Minute, now)
		assert.Error(t, err)
		assert.Equal(t, 0, ddb.puts)
	})

	t.Run("concurrent callers never lose counts", func(t *testing.T) {
		ddb := newFakeDynamo()
		l := NewLimiter(NewDynamoStore(ddb, ""), map[Class]Rule{ClassPayment: {Limit: 10, Window: time.Minute}},
			WithClock(func() time.Time { return now }))

		var mu sync.Mutex
		admitted := 0
		var wg sync.WaitGroup
		for i := 0; i < 40; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if l.Check(ctx, "ip", ClassPayment).Allowed {
					mu.Lock()
					admitted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, admitted)
		assert.Equal(t, int64(40), numberAttr(ddb.items["payment:ip"]["count"]))
	})
}
