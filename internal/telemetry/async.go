package telemetry

import (
	"context"
	"log/slog"
	"time"

	"opsboard/backend/internal/telemetry/domain"
)

// emitTimeout is the max time allowed for a single async emit. Used by EmitAsync and by ShutdownDrainDuration.
const emitTimeout = 5 * time.Second

// ShutdownDrainDuration is how long cmd/server waits after the HTTP server stops before
// shutting down the OTel providers. It must not be shorter than emitTimeout.
const ShutdownDrainDuration = emitTimeout

// EmitAsync emits event on its own goroutine, bounded by emitTimeout and detached from
// ctx cancellation, so the request that triggered it never waits. A nil emitter or event
// is a no-op.
func EmitAsync(ctx context.Context, emitter EventEmitter, event *domain.Event) {
	if emitter == nil || event == nil {
		return
	}
	base := context.WithoutCancel(ctx)
	go func() {
		emitCtx, cancel := context.WithTimeout(base, emitTimeout)
		defer cancel()
		if err := emitter.Emit(emitCtx, event); err != nil {
			slog.WarnContext(emitCtx, "telemetry: async emit failed", slog.String("event", event.Name), slog.Any("error", err))
		}
	}()
}
