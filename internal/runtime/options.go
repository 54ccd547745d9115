package runtime

import (
	"log/slog"

	"github.com/stateboard/stateboard/pkg/domain"
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithInitialContext sets the context the interpreter is created with.
func WithInitialContext(ctx domain.Context) Option {
	return func(in *Interpreter) {
		in.context = ctx.Clone()
	}
}

// WithLogger sets a structured logger for the interpreter.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// WithObserver registers an observer at construction time.
func WithObserver(obs domain.Observer) Option {
	return func(in *Interpreter) {
		in.observers = append(in.observers, obs)
	}
}

// WithID overrides the generated instance identifier.
func WithID(id string) Option {
	return func(in *Interpreter) {
		if id != "" {
			in.id = id
		}
	}
}
