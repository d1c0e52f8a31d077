package telemetry

import (
	"context"

	"opsboard/backend/internal/telemetry/domain"
)

// EventEmitter mirrors audit events to a telemetry backend (OTel logs in production).
// Emit is best-effort; callers log and drop the error.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.Event) error
}
