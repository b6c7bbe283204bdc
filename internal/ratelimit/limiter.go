// Package ratelimit implements fixed-window request counting per client and route.
package ratelimit

import (
	"context"
	"log/slog"
	"math"
	"time"
)

// Class groups endpoints that share a limit.
type Class string

const (
	ClassDefault Class = "default"
	ClassAuth    Class = "auth"
	ClassPayment Class = "payment"
	ClassWebhook Class = "webhook"
)

// Rule is the allowance for one class.
type Rule struct {
	Limit  int
	Window time.Duration
}

// DefaultRules are the allowances per 60 second window.
func DefaultRules() map[Class]Rule {
	return map[Class]Rule{
		ClassDefault: {Limit: 100, Window: time.Minute},
		ClassAuth:    {Limit: 5, Window: time.Minute},
		ClassPayment: {Limit: 10, Window: time.Minute},
		ClassWebhook: {Limit: 1000, Window: time.Minute},
	}
}

// Counter is a key's state after an increment.
type Counter struct {
	Count   int
	ResetAt time.Time
}

// Store increments the counter for key inside its current window.
// A window starts with the first hit after the previous one expired.
// Implementations must make the read-increment-write atomic per key.
type Store interface {
	Increment(ctx context.Context, key string, window time.Duration, now time.Time) (Counter, error)
}

// Decision is what the gate needs to answer a request.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds the wait up to whole seconds.
func (d Decision) RetryAfterSeconds() int {
	if d.RetryAfter <= 0 {
		return 0
	}
	return int(math.Ceil(d.RetryAfter.Seconds()))
}

// Limiter decides admissions against a Store.
type Limiter struct {
	store Store
	rules map[Class]Rule
	now   func() time.Time
}

type Option func(*Limiter)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// NewLimiter uses rules for the known classes; unknown classes fall back to ClassDefault.
func NewLimiter(store Store, rules map[Class]Rule, opts ...Option) *Limiter {
	merged := DefaultRules()
	for c, r := range rules {
		if r.Limit > 0 && r.Window > 0 {
			merged[c] = r
		}
	}
	l := &Limiter{store: store, rules: merged, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Rule returns the allowance applied to class.
func (l *Limiter) Rule(class Class) Rule {
	if r, ok := l.rules[class]; ok {
		return r
	}
	return l.rules[ClassDefault]
}

// Check counts one request for key. It never fails: a store error admits the request.
func (l *Limiter) Check(ctx context.Context, key string, class Class) Decision {
	rule := l.Rule(class)
	now := l.now()

	c, err := l.store.Increment(ctx, string(class)+":"+key, rule.Window, now)
	if err != nil {
		slog.WarnContext(ctx, "[ratelimit][limiter] store failed, admitting request", "class", class, "err", err)
		return Decision{Allowed: true, Limit: rule.Limit, Remaining: rule.Limit - 1, ResetAt: now.Add(rule.Window)}
	}

	d := Decision{
		Allowed:   c.Count <= rule.Limit,
		Limit:     rule.Limit,
		Remaining: rule.Limit - c.Count,
		ResetAt:   c.ResetAt,
	}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	if !d.Allowed {
		d.RetryAfter = c.ResetAt.Sub(now)
	}
	return d
}
