package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Increment(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)

	t.Run("returns count and reset from script", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := NewRedisStore(rdb, "")

		mock.ExpectEval(incrementScript, []string{"ratelimit:payment:1.2.3.4"}, int64(60000)).
			SetVal([]interface{}{int64(3), int64(45000)})

		c, err := s.Increment(ctx, "payment:1.2.3.4", time.Minute, now)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Count)
		assert.Equal(t, now.Add(45*time.Second), c.ResetAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates redis errors", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := NewRedisStore(rdb, "rl:")

		mock.ExpectEval(incrementScript, []string{"rl:k"}, int64(1000)).SetErr(errors.New("connection refused"))

		_, err := s.Increment(ctx, "k", time.Second, now)
		assert.Error(t, err)
	})

	t.Run("limiter admits when redis fails", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		l := NewLimiter(NewRedisStore(rdb, ""), nil, WithClock(func() time.Time { return now }))

		mock.ExpectEval(incrementScript, []string{"ratelimit:auth:x"}, int64(60000)).SetErr(errors.New("timeout"))

		assert.True(t, l.Check(ctx, "x", ClassAuth).Allowed)
	})
}
