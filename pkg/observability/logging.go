package observability

import (
	"log/slog"

	"github.com/stateboard/stateboard/pkg/domain"
)

// NewTransitionLogger returns an observer that logs every send: previous and
// current state, event type, whether the event changed anything, and the task
// collection size.
func NewTransitionLogger(logger *slog.Logger) domain.Observer {
	return func(prev domain.StateValue, snap domain.Snapshot, ev domain.Event) {
		if !snap.Changed {
			logger.Debug("event ignored",
				"event", ev.Type,
				"state", snap.State.String(),
			)
			return
		}
		logger.Info("state transition",
			"event", ev.Type,
			"from", prev.String(),
			"to", snap.State.String(),
			"tasks", len(snap.Context.Tasks),
			"has_error", snap.Context.Error != "",
		)
	}
}
