// Package risor provides the Risor script engine, the default backend for
// condition expressions.
package risor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	risorLib "github.com/risor-io/risor"
	risorObject "github.com/risor-io/risor/object"

	"github.com/nskvortsov/junit5/engines/registry"
	"github.com/nskvortsov/junit5/internal/helpers"
	"github.com/nskvortsov/junit5/platform"
	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
)

// Name is the engine name scripts use to select this backend.
const Name = "risor"

var ErrContentNil = errors.New("risor script content is nil")

func init() {
	registry.Register(Name, func(handler slog.Handler) (platform.Evaluator, error) {
		return New(handler), nil
	})
}

// Evaluator evaluates condition scripts on the Risor engine. Each call
// compiles and runs the source independently, so instances are safe for
// concurrent use.
type Evaluator struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object.
func New(handler slog.Handler) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, Name, "Evaluator")

	return &Evaluator{
		logHandler: handler,
		logger:     logger,
	}
}

func (e *Evaluator) String() string {
	return "risor.Evaluator"
}

// Evaluate compiles the script source with the binding names declared as
// globals, runs it with the binding values injected, and returns the result
// as a plain Go value.
func (e *Evaluator) Evaluate(ctx context.Context, s *script.Script, bindings data.Bindings) (any, error) {
	logger := e.logger.WithGroup("Evaluate")

	source := s.Source()
	code, err := compile(&source, bindingNames(bindings))
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	result, err := risorLib.EvalCode(ctx, code, convertBindings(bindings)...)
	execTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("risor execution error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "script", s.Label(), "execTime", execTime)

	if errObj, ok := result.(*risorObject.Error); ok {
		return nil, fmt.Errorf("error returned from script: %s", errObj.Inspect())
	}
	return result.Interface(), nil
}
