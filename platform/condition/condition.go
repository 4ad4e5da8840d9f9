// Package condition implements script-driven conditional gating of tests and
// containers: given an element annotated with an enable-if or disable-if
// expression, it decides before execution whether the element should run and
// produces a human-readable reason.
package condition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nskvortsov/junit5/engines/registry"
	"github.com/nskvortsov/junit5/internal/helpers"
	"github.com/nskvortsov/junit5/platform"
	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
	"github.com/nskvortsov/junit5/platform/store"
)

// evaluatorKey is the fixed key the resolved evaluator is cached under in the
// root store.
const evaluatorKey = "junit5.condition.Evaluator"

var (
	enabledNoElement    = Enabled("AnnotatedElement not present")
	enabledNoAnnotation = Enabled("Annotation not present")
)

// ScriptCondition is the gate that evaluates enable-if and disable-if scripts
// for a code element. It is safe for concurrent use; the host test runner may
// invoke it from multiple workers.
type ScriptCondition struct {
	finder     AnnotationFinder
	registry   *registry.Registry
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a ScriptCondition using the given annotation-lookup capability.
func New(finder AnnotationFinder, opts ...Option) (*ScriptCondition, error) {
	if finder == nil {
		return nil, fmt.Errorf("annotation finder is nil")
	}

	sc := &ScriptCondition{
		finder:   finder,
		registry: registry.Default,
	}
	for _, opt := range opts {
		if err := opt(sc); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	sc.logHandler, sc.logger = helpers.SetupLogger(sc.logHandler, "condition", "ScriptCondition")
	return sc, nil
}

func (sc *ScriptCondition) String() string {
	return "condition.ScriptCondition"
}

// Evaluate decides whether the element described by ec should run.
//
// Scripts are evaluated in a fixed order, disable-if before enable-if. The
// first disabling verdict short-circuits the remaining scripts; if no script
// disables the element, the last (enabled) verdict is returned. Errors from
// evaluator resolution or script evaluation propagate to the caller, which is
// expected to report them as the element's own execution failure rather than
// silently enabling or disabling it.
func (sc *ScriptCondition) Evaluate(ctx context.Context, ec ExtensionContext) (Result, error) {
	element, ok := ec.Element()
	if !ok {
		return enabledNoElement, nil
	}

	var scripts []*script.Script
	if a, found := sc.finder.FindAnnotation(element, script.KindDisabledIf); found {
		scripts = append(scripts, script.FromAnnotation(a))
	}
	if a, found := sc.finder.FindAnnotation(element, script.KindEnabledIf); found {
		scripts = append(scripts, script.FromAnnotation(a))
	}
	if len(scripts) == 0 {
		return enabledNoAnnotation, nil
	}

	evaluator := sc.evaluatorFor(ec.Root())

	var verdict Result
	for _, s := range scripts {
		sc.logger.DebugContext(ctx, "evaluating condition script", "script", s.Label(), "engine", s.EngineName())

		bindings := data.NewBindings(ec.Tags(), ec.UniqueID(), ec.DisplayName(), ec.ConfigurationParameter)
		raw, err := evaluator.Evaluate(ctx, s, bindings)
		if err != nil {
			return Result{}, err
		}

		verdict, err = translateResult(s, raw)
		if err != nil {
			return Result{}, err
		}
		if verdict.IsDisabled() {
			return verdict, nil
		}
	}
	return verdict, nil
}

// evaluatorFor returns the evaluator cached in the root store, resolving it
// on first access. Resolution is at-most-once per root: the store guarantees
// a single winner under concurrent first access.
func (sc *ScriptCondition) evaluatorFor(root *store.Root) platform.Evaluator {
	if root == nil {
		return sc.newEvaluator()
	}
	value := root.GetOrCompute(evaluatorKey, func() any {
		return sc.newEvaluator()
	})
	return value.(platform.Evaluator)
}

// newEvaluator probes the scripting capability and produces either a working
// manager or a ThrowingEvaluator carrying the probe failure. Whichever is
// produced gets cached, so the outcome is diagnosed once per root.
func (sc *ScriptCondition) newEvaluator() platform.Evaluator {
	if sc.registry.Len() == 0 {
		sc.logger.Error("script evaluation is unavailable", "error", registry.ErrNoEngines)
		return NewThrowingEvaluator(registry.ErrNoEngines)
	}

	sc.logger.Debug("creating script evaluation manager", "engines", sc.registry.Names())
	return newManager(sc.logHandler, sc.registry)
}
