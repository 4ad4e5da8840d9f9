package condition

import (
	"context"
	"fmt"

	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
)

// ThrowingEvaluator is the terminal evaluator cached when the scripting
// capability cannot be resolved for an execution root. Every call fails with
// the same diagnostic, so the environment problem is reported once and
// consistently instead of being re-probed per test.
type ThrowingEvaluator struct {
	err error
}

// NewThrowingEvaluator creates a ThrowingEvaluator wrapping the resolution
// failure. The message names the component, states that script evaluation is
// disabled, and tells the operator how to link an engine into the binary;
// tests assert on those substrings, so the wording is a contract.
func NewThrowingEvaluator(cause error) *ThrowingEvaluator {
	message := "ScriptCondition is in an illegal state, script evaluation is disabled. " +
		"If the originating cause is `no script engines registered`, the host binary was " +
		"built without an expression backend; enable one by blank-importing an engine " +
		"package, for example `import _ \"github.com/nskvortsov/junit5/engines/risor\"`"

	return &ThrowingEvaluator{err: fmt.Errorf("%s: %w", message, cause)}
}

// Evaluate unconditionally fails with the resolution diagnostic.
func (t *ThrowingEvaluator) Evaluate(ctx context.Context, s *script.Script, bindings data.Bindings) (any, error) {
	return nil, t.err
}

func (t *ThrowingEvaluator) String() string {
	return "condition.ThrowingEvaluator"
}
