// Package cel provides the CEL (Common Expression Language) script engine for
// condition expressions.
package cel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	celLib "github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/nskvortsov/junit5/engines/registry"
	"github.com/nskvortsov/junit5/internal/helpers"
	"github.com/nskvortsov/junit5/platform"
	"github.com/nskvortsov/junit5/platform/constants"
	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
)

// Name is the engine name scripts use to select this backend.
const Name = "cel"

func init() {
	registry.Register(Name, func(handler slog.Handler) (platform.Evaluator, error) {
		return New(handler)
	})
}

// Evaluator evaluates condition scripts with CEL. The environment is built
// once at construction; compilation and evaluation per call are independent,
// so instances are safe for concurrent use.
type Evaluator struct {
	env        *celLib.Env
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a new Evaluator object. The CEL environment declares the four
// fixed bindings plus the `get` member overload backing the
// configuration-parameter accessor.
func New(handler slog.Handler) (*Evaluator, error) {
	handler, logger := helpers.SetupLogger(handler, Name, "Evaluator")

	env, err := celLib.NewEnv(
		celLib.Variable(constants.Tags, celLib.ListType(celLib.StringType)),
		celLib.Variable(constants.UniqueID, celLib.StringType),
		celLib.Variable(constants.DisplayName, celLib.StringType),
		celLib.Variable(constants.ConfigurationParameter, celLib.DynType),
		celLib.Function("get",
			celLib.MemberOverload("configuration_parameters_get",
				[]*celLib.Type{celLib.DynType, celLib.StringType}, celLib.DynType,
				celLib.BinaryBinding(getParameter))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	return &Evaluator{
		env:        env,
		logHandler: handler,
		logger:     logger,
	}, nil
}

func (e *Evaluator) String() string {
	return "cel.Evaluator"
}

// Evaluate compiles and runs the script source against the bindings.
func (e *Evaluator) Evaluate(ctx context.Context, s *script.Script, bindings data.Bindings) (any, error) {
	logger := e.logger.WithGroup("Evaluate")

	ast, issues := e.env.Compile(s.Source())
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %s", platform.ErrSyntax, issues.Err())
	}

	program, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program: %w", err)
	}

	startTime := time.Now()
	out, _, err := program.Eval(convertBindings(bindings))
	execTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("cel execution error: %w", err)
	}
	logger.DebugContext(ctx, "exec complete", "script", s.Label(), "execTime", execTime)

	return convertCELValue(out)
}

// convertBindings converts the binding context into the CEL activation.
func convertBindings(bindings data.Bindings) map[string]any {
	activation := make(map[string]any, len(bindings))
	for name, value := range bindings {
		if lookup, ok := value.(data.ParamLookup); ok {
			activation[name] = paramsValue{lookup: lookup}
			continue
		}
		activation[name] = value
	}
	return activation
}

// convertCELValue converts a CEL result back to a plain Go value.
func convertCELValue(v ref.Val) (any, error) {
	switch val := v.(type) {
	case types.Bool:
		return bool(val), nil
	case types.String:
		return string(val), nil
	case types.Null:
		return nil, nil
	case types.Int:
		return int64(val), nil
	case types.Double:
		return float64(val), nil
	default:
		return v.Value(), nil
	}
}
