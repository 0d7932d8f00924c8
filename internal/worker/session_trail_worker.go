package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/revaissue/webclient/internal/events"
	"github.com/revaissue/webclient/internal/repository"
)

// StartSessionTrailWorker subscribes the session-event repository to
// the dispatcher so login, logout and route decisions land in the
// local trail. Persistence failures are logged and dropped; the trail
// never blocks or fails an auth decision.
func StartSessionTrailWorker(dispatcher events.Dispatcher, repo repository.SessionEventRepository, logger *zap.Logger) {
	if dispatcher == nil || repo == nil {
		return
	}

	record := func(ctx context.Context, event events.Event) error {
		err := repo.Create(ctx, &repository.SessionEvent{
			ID:         event.ID,
			EventType:  string(event.Type),
			Subject:    event.Subject,
			Path:       event.Path,
			Detail:     event.Detail,
			OccurredAt: event.Timestamp,
		})
		if err != nil {
			logger.Warn("failed to persist session event", zap.Error(err), zap.String("type", string(event.Type)))
		}
		return nil
	}

	for _, eventType := range []events.EventType{
		events.EventSessionLogin,
		events.EventSessionLogout,
		events.EventRouteAdmitted,
		events.EventRouteRejected,
	} {
		dispatcher.Subscribe(eventType, record)
	}
}
