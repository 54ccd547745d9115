package stateboard

import (
	"fmt"
	"log/slog"

	"github.com/stateboard/stateboard/internal/logging"
	"github.com/stateboard/stateboard/internal/runtime"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/machine"
	"github.com/stateboard/stateboard/pkg/mirror"
)

// MirrorMode selects how the non-authoritative instance is kept in step.
type MirrorMode int

const (
	// MirrorOff runs only the authoritative instance.
	MirrorOff MirrorMode = iota
	// MirrorReplay forwards every dispatched event to the mirror.
	MirrorReplay
	// MirrorResync replaces the mirror's state with the authoritative
	// snapshot after every dispatch, removing divergence risk.
	MirrorResync
)

// Service is the high-level entry point. It owns the single authoritative
// interpreter for the process; its snapshots are what API responses carry.
type Service struct {
	authoritative *runtime.Interpreter
	mirror        *mirror.Mirror
	mirrorMode    MirrorMode
	logger        *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets a structured logger for the service and its interpreters.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMirror enables the mirrored instance in the given mode.
func WithMirror(mode MirrorMode) Option {
	return func(s *Service) {
		s.mirrorMode = mode
	}
}

// New constructs a Service around the application machine. The interpreter is
// explicitly owned by the caller; there is no package-level instance.
func New(opts ...Option) (*Service, error) {
	s := &Service{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	def := machine.App()

	auth, err := runtime.New(def, runtime.WithLogger(s.logger.With("role", "authoritative")))
	if err != nil {
		return nil, fmt.Errorf("building authoritative interpreter: %w", err)
	}
	s.authoritative = auth

	if s.mirrorMode != MirrorOff {
		m, err := mirror.New(def, s.logger.With("role", "mirror"))
		if err != nil {
			return nil, fmt.Errorf("building mirror interpreter: %w", err)
		}
		s.mirror = m
	}
	return s, nil
}

// Start enters the machine's initial state. Safe to call once; a second call
// is a no-op.
func (s *Service) Start() domain.Snapshot {
	return s.authoritative.Start()
}

// Dispatch sends one event to the authoritative instance and keeps the mirror
// in step per the configured mode. The returned snapshot is authoritative.
func (s *Service) Dispatch(ev domain.Event) domain.Snapshot {
	snap := s.authoritative.Send(ev)
	switch s.mirrorMode {
	case MirrorReplay:
		s.mirror.Replay(ev)
	case MirrorResync:
		s.mirror.Resync(snap)
	}
	return snap
}

// Snapshot returns the authoritative (state, context) view.
func (s *Service) Snapshot() domain.Snapshot {
	return s.authoritative.Snapshot()
}

// MirrorSnapshot returns the mirror's view, or false when no mirror runs.
func (s *Service) MirrorSnapshot() (domain.Snapshot, bool) {
	if s.mirror == nil {
		return domain.Snapshot{}, false
	}
	return s.mirror.Snapshot(), true
}

// Subscribe registers an observer on the authoritative instance. Register
// during setup, before events flow.
func (s *Service) Subscribe(obs domain.Observer) {
	s.authoritative.Subscribe(obs)
}
