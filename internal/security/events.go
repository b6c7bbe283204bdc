package security

import (
	"context"
	"log/slog"
)

// Severity grades a security event.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) level() slog.Level {
	switch s {
	case SeverityLow:
		return slog.LevelInfo
	case SeverityMedium:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// LogEvent records a security-relevant event. Never pass secret values in attrs.
func LogEvent(ctx context.Context, severity Severity, event string, attrs ...slog.Attr) {
	attrs = append([]slog.Attr{
		slog.String("event", event),
		slog.String("severity", string(severity)),
	}, attrs...)
	slog.Default().LogAttrs(ctx, severity.level(), "[security] "+event, attrs...)
}
