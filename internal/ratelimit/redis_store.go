package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrementScript bumps the counter and starts the window on the first hit.
// It returns {count, remaining window in ms}.
const incrementScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`

// RedisStore shares counters across instances through Redis.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb redis.Cmdable, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Increment(ctx context.Context, key string, win time.Duration, now time.Time) (Counter, error) {
	vals, err := s.rdb.Eval(ctx, incrementScript, []string{s.prefix + key}, win.Milliseconds()).Int64Slice()
	if err != nil {
		return Counter{}, fmt.Errorf("redis increment %s: %w", key, err)
	}
	if len(vals) != 2 {
		return Counter{}, fmt.Errorf("redis increment %s: unexpected reply %v", key, vals)
	}
	return Counter{
		Count:   int(vals[0]),
		ResetAt: now.Add(time.Duration(vals[1]) * time.Millisecond),
	}, nil
}
