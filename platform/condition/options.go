package condition

import (
	"fmt"
	"log/slog"

	"github.com/nskvortsov/junit5/engines/registry"
)

// Option is a functional option for configuring a ScriptCondition.
type Option func(*ScriptCondition) error

// WithLogHandler sets the slog handler used by the gate and propagated to
// engine evaluators.
func WithLogHandler(handler slog.Handler) Option {
	return func(sc *ScriptCondition) error {
		if handler == nil {
			return fmt.Errorf("log handler is nil")
		}
		sc.logHandler = handler
		return nil
	}
}

// WithRegistry replaces the engine registry the gate resolves evaluators
// from. The default is registry.Default.
func WithRegistry(reg *registry.Registry) Option {
	return func(sc *ScriptCondition) error {
		if reg == nil {
			return fmt.Errorf("registry is nil")
		}
		sc.registry = reg
		return nil
	}
}
