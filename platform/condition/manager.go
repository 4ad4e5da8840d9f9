package condition

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nskvortsov/junit5/engines/registry"
	"github.com/nskvortsov/junit5/internal/helpers"
	"github.com/nskvortsov/junit5/platform"
	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
)

// engineSlot is the cached outcome of instantiating one engine. A failed
// instantiation is cached as terminally as a successful one, so every later
// evaluation against that engine fails fast with the same diagnostic.
type engineSlot struct {
	evaluator platform.Evaluator
	err       error
}

// manager routes script evaluations to the engine each script names,
// instantiating engine evaluators lazily and caching them per name. It is the
// working evaluator stored in the root store; access to the slot map is
// serialized, and the engine evaluators themselves are safe for concurrent
// calls.
type manager struct {
	registry   *registry.Registry
	logHandler slog.Handler
	logger     *slog.Logger

	mu      sync.Mutex
	engines map[string]*engineSlot
}

func newManager(handler slog.Handler, reg *registry.Registry) *manager {
	handler, logger := helpers.SetupLogger(handler, "condition", "manager")

	return &manager{
		registry:   reg,
		logHandler: handler,
		logger:     logger,
		engines:    make(map[string]*engineSlot),
	}
}

func (m *manager) String() string {
	return "condition.manager"
}

// Evaluate resolves the engine named by the script and delegates to it.
func (m *manager) Evaluate(ctx context.Context, s *script.Script, bindings data.Bindings) (any, error) {
	evaluator, err := m.engineFor(ctx, s.EngineName())
	if err != nil {
		return nil, err
	}
	return evaluator.Evaluate(ctx, s, bindings)
}

func (m *manager) engineFor(ctx context.Context, name string) (platform.Evaluator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slot, ok := m.engines[name]; ok {
		return slot.evaluator, slot.err
	}

	factory, ok := m.registry.Lookup(name)
	if !ok {
		err := fmt.Errorf("%w: %q", platform.ErrUnsupportedEngine, name)
		m.engines[name] = &engineSlot{err: err}
		m.logger.ErrorContext(ctx, "engine lookup failed", "engine", name, "registered", m.registry.Names())
		return nil, err
	}

	evaluator, err := factory(m.logHandler)
	if err != nil {
		err = fmt.Errorf("creating evaluator for engine %q failed: %w", name, err)
		m.engines[name] = &engineSlot{err: err}
		m.logger.ErrorContext(ctx, "engine instantiation failed", "engine", name, "error", err)
		return nil, err
	}

	m.logger.DebugContext(ctx, "engine evaluator created", "engine", name, "evaluator", evaluator.String())
	m.engines[name] = &engineSlot{evaluator: evaluator}
	return evaluator, nil
}
