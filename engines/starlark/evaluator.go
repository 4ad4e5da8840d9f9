// Package starlark provides the Starlark script engine for condition
// expressions.
package starlark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.starlark.net/resolve"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/nskvortsov/junit5/engines/registry"
	"github.com/nskvortsov/junit5/internal/helpers"
	"github.com/nskvortsov/junit5/platform"
	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
)

// Name is the engine name scripts use to select this backend.
const Name = "starlark"

func init() {
	registry.Register(Name, func(handler slog.Handler) (platform.Evaluator, error) {
		return New(handler), nil
	})
}

// Evaluator evaluates condition scripts as Starlark expressions. Each call
// parses and runs the source on a fresh thread, so instances are safe for
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
	return "starlark.Evaluator"
}

// Evaluate runs the script source as a single Starlark expression with the
// bindings predeclared, and returns the result as a plain Go value.
func (e *Evaluator) Evaluate(ctx context.Context, s *script.Script, bindings data.Bindings) (any, error) {
	logger := e.logger.WithGroup("Evaluate")

	env, err := convertBindings(bindings)
	if err != nil {
		return nil, err
	}

	thread := &starlarkLib.Thread{
		Name: "condition",
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}

	// Cancellation support; the quit channel keeps the watcher from outliving
	// the evaluation.
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-quit:
		}
	}()

	startTime := time.Now()
	value, err := starlarkLib.EvalOptions(&syntax.FileOptions{}, thread, "", s.Source(), env)
	execTime := time.Since(startTime)

	if err != nil {
		var syntaxErr syntax.Error
		var resolveErrs resolve.ErrorList
		if errors.As(err, &syntaxErr) || errors.As(err, &resolveErrs) {
			return nil, fmt.Errorf("%w: %s", platform.ErrSyntax, err)
		}
		return nil, fmt.Errorf("starlark execution error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "script", s.Label(), "execTime", execTime)

	return convertStarlarkValue(value)
}
