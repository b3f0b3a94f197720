package api

import (
	"context"
	"log/slog"

	"github.com/phrazzld/recruit-api/internal/events"
	"github.com/phrazzld/recruit-api/internal/platform/logger"
)

// changeNotifier publishes change events after successful mutations.
// Delivery failures are logged and never fail the request, since the
// mutation has already been applied.
type changeNotifier struct {
	emitter events.EventEmitter
	logger  *slog.Logger
}

func (n changeNotifier) notify(ctx context.Context, eventType string, payload interface{}) {
	if n.emitter == nil {
		return
	}
	log := logger.FromContextOrDefault(ctx, n.logger)

	event, err := events.NewChangeEvent(eventType, payload)
	if err != nil {
		log.Error("failed to build change event", "event_type", eventType, "error", err)
		return
	}
	if err := n.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("change event delivery failed",
			"event_id", event.ID,
			"event_type", eventType,
			"error", err)
	}
}
