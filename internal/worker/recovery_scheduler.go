// Package worker runs background jobs next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"master_booking/internal/usecase"
)

type recoverySender interface {
	SendRecoveryEmails(ctx context.Context) (usecase.RecoveryResult, error)
}

// RecoveryScheduler sends the abandoned-checkout reminders on a fixed interval.
type RecoveryScheduler struct {
	checkouts recoverySender
	interval  time.Duration
	timeout   time.Duration
}

func NewRecoveryScheduler(checkouts recoverySender, interval time.Duration) *RecoveryScheduler {
	return &RecoveryScheduler{checkouts: checkouts, interval: interval, timeout: 2 * time.Minute}
}

// Start blocks until ctx is cancelled.
func (s *RecoveryScheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "[recovery][worker] scheduler started", "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			slog.Info("[recovery][worker] scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *RecoveryScheduler) tick(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.checkouts.SendRecoveryEmails(runCtx)
	if err != nil {
		slog.ErrorContext(ctx, "[recovery][worker] run failed", "error", err)
		return
	}
	if res.Sent1h+res.Sent24h+res.Failed > 0 {
		slog.InfoContext(ctx, "[recovery][worker] run finished", "sent_1h", res.Sent1h, "sent_24h", res.Sent24h, "failed", res.Failed)
	}
}
