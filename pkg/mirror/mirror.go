// Package mirror implements the replicated-instance policy: a second
// interpreter built from the same definition as the authoritative one, kept in
// step by replaying the same externally observed event stream.
//
// Synchronization is best effort. There is no reconciliation or divergence
// detection: an event delivered to one instance but not the other leaves them
// silently apart until the next full-collection load (LOAD_TASKS/LOAD_USERS)
// or an explicit Resync. This is suitable only for a single authoritative
// process; it is not a replication protocol.
package mirror

import (
	"log/slog"

	"github.com/stateboard/stateboard/internal/runtime"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/machine"
)

// Mirror is a non-authoritative interpreter instance. Its snapshot drives
// local reactivity only; it is never the source of truth.
type Mirror struct {
	interp *runtime.Interpreter
}

// New builds a mirror from the shared definition and starts it, so it is
// ready to replay from the first event.
func New(def *machine.Definition, logger *slog.Logger) (*Mirror, error) {
	interp, err := runtime.New(def, runtime.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	interp.Start()
	return &Mirror{interp: interp}, nil
}

// Replay applies one event from the authoritative stream, in order.
func (m *Mirror) Replay(ev domain.Event) domain.Snapshot {
	return m.interp.Send(ev)
}

// Resync replaces the mirror's state with an authoritative snapshot
// wholesale. Using it after every round trip removes divergence risk entirely,
// at the cost of shipping the full snapshot.
func (m *Mirror) Resync(snap domain.Snapshot) {
	m.interp.Restore(snap)
}

// Snapshot returns the mirror's current view.
func (m *Mirror) Snapshot() domain.Snapshot {
	return m.interp.Snapshot()
}
