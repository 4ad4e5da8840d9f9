// Package expr provides the expr-lang script engine for condition
// expressions.
package expr

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	exprLib "github.com/expr-lang/expr"

	"github.com/nskvortsov/junit5/engines/registry"
	"github.com/nskvortsov/junit5/internal/helpers"
	"github.com/nskvortsov/junit5/platform"
	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
)

// Name is the engine name scripts use to select this backend.
const Name = "expr"

func init() {
	registry.Register(Name, func(handler slog.Handler) (platform.Evaluator, error) {
		return New(handler), nil
	})
}

// Evaluator evaluates condition scripts with the expr-lang expression
// language. Each call compiles and runs the source independently, so
// instances are safe for concurrent use.
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
	return "expr.Evaluator"
}

// Evaluate compiles and runs the script source with the bindings as the
// expression environment.
func (e *Evaluator) Evaluate(ctx context.Context, s *script.Script, bindings data.Bindings) (any, error) {
	logger := e.logger.WithGroup("Evaluate")

	env := convertBindings(bindings)

	// AllowUndefinedVariables makes missing variables evaluate to nil instead
	// of failing compilation, matching the other engines' null semantics.
	program, err := exprLib.Compile(s.Source(), exprLib.Env(env), exprLib.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", platform.ErrSyntax, err)
	}

	startTime := time.Now()
	result, err := exprLib.Run(program, env)
	execTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("expr execution error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "script", s.Label(), "execTime", execTime)

	return result, nil
}

// convertBindings converts the binding context into the expr environment. The
// configuration-parameter lookup becomes a map holding a `get` function, so
// scripts call `junitConfigurationParameter.get("key")`; an absent parameter
// yields nil.
func convertBindings(bindings data.Bindings) map[string]any {
	env := make(map[string]any, len(bindings))
	for name, value := range bindings {
		if lookup, ok := value.(data.ParamLookup); ok {
			env[name] = map[string]any{
				"get": func(key string) any {
					v, found := lookup(key)
					if !found {
						return nil
					}
					return v
				},
			}
			continue
		}
		env[name] = value
	}
	return env
}
