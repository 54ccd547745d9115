package runtime

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/machine"
)

// Interpreter drives one machine instance: it holds the current
// (state, context) pair, accepts events, computes and applies transitions,
// and notifies observers. A send runs to completion before returning; the
// mutex serializes concurrent sends from a multi-threaded host.
type Interpreter struct {
	mu        sync.Mutex
	def       *machine.Definition
	id        string
	state     domain.StateValue
	context   domain.Context
	started   bool
	observers []domain.Observer
	logger    *slog.Logger
}

// New builds an interpreter for the given definition. The definition is
// validated once here; a definition that validates never fails a transition
// later.
func New(def *machine.Definition, opts ...Option) (*Interpreter, error) {
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine definition: %w", err)
	}

	in := &Interpreter{
		def:     def,
		id:      uuid.NewString(),
		context: domain.NewContext(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.logger = in.logger.With("machine", def.ID, "instance", in.id)
	return in, nil
}

// ID returns the instance identifier used for log correlation.
func (in *Interpreter) ID() string { return in.id }

// Start moves the interpreter to the definition's initial state and fires the
// init notification. A second call is a no-op returning the current snapshot.
func (in *Interpreter) Start() domain.Snapshot {
	in.mu.Lock()
	if in.started {
		snap := in.snapshotLocked(false)
		in.mu.Unlock()
		return snap
	}

	in.started = true
	prev := in.state
	in.state = in.def.EntryState(in.def.Initial)
	snap := in.snapshotLocked(true)
	in.mu.Unlock()

	in.logger.Info("machine started", "state", snap.State.String())
	in.notify(prev, snap, domain.Event{Type: domain.EventInit})
	return snap
}

// Send delivers one event. If the current state does not handle the event
// type, the (state, context) pair is returned unchanged; this is deliberate —
// unrecognized or out-of-state events never halt the caller. Otherwise the
// transition's actions run in declaration order and the state moves to the
// target, if one is declared.
func (in *Interpreter) Send(ev domain.Event) domain.Snapshot {
	in.mu.Lock()
	if !in.started {
		snap := in.snapshotLocked(false)
		in.mu.Unlock()
		in.logger.Warn("event before start ignored", "event", ev.Type)
		return snap
	}

	prev := in.state
	spec, ok := in.def.Target(in.state.Name, ev.Type)
	if !ok {
		snap := in.snapshotLocked(false)
		in.mu.Unlock()
		in.logger.Debug("unhandled event ignored", "state", prev.String(), "event", ev.Type)
		in.notify(prev, snap, ev)
		return snap
	}

	for _, action := range spec.Actions {
		in.context = action(in.context, ev)
	}
	if spec.Target != "" {
		in.state = in.def.EntryState(spec.Target)
	}
	snap := in.snapshotLocked(true)
	in.mu.Unlock()

	in.logger.Debug("transition",
		"event", ev.Type,
		"from", prev.String(),
		"to", snap.State.String(),
	)
	in.notify(prev, snap, ev)
	return snap
}

// Snapshot returns the current read-only (state, context) view.
func (in *Interpreter) Snapshot() domain.Snapshot {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.snapshotLocked(false)
}

// Restore replaces the (state, context) pair wholesale. It exists for mirror
// resynchronization; the authoritative instance never calls it.
func (in *Interpreter) Restore(snap domain.Snapshot) {
	in.mu.Lock()
	in.started = true
	in.state = snap.State
	in.context = snap.Context.Clone()
	in.mu.Unlock()
}

// Subscribe registers an observer invoked synchronously after every completed
// send with the new snapshot and the triggering event. Not safe to call
// concurrently with Send; register observers during setup.
func (in *Interpreter) Subscribe(obs domain.Observer) {
	in.observers = append(in.observers, obs)
}

func (in *Interpreter) snapshotLocked(changed bool) domain.Snapshot {
	return domain.Snapshot{
		State:   in.state,
		Context: in.context.Clone(),
		Changed: changed,
	}
}

func (in *Interpreter) notify(prev domain.StateValue, snap domain.Snapshot, ev domain.Event) {
	for _, obs := range in.observers {
		obs(prev, snap, ev)
	}
}
