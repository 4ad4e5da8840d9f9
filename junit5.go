// Package junit5 provides script-driven conditional gating of tests and
// containers: elements annotated with an enable-if or disable-if expression
// are evaluated against pluggable script engines before execution, producing
// an enabled/disabled verdict with a human-readable reason.
//
// Engines are linked in by blank-importing their packages:
//
//	import (
//		_ "github.com/nskvortsov/junit5/engines/risor"
//		_ "github.com/nskvortsov/junit5/engines/starlark"
//	)
//
// A binary that imports no engine package has no scripting capability, and
// every condition evaluation fails with a diagnostic saying so.
package junit5

import (
	"github.com/nskvortsov/junit5/platform/condition"
	"github.com/nskvortsov/junit5/platform/script"
)

// NewScriptCondition creates the condition gate using the given
// annotation-lookup capability.
func NewScriptCondition(finder condition.AnnotationFinder, opts ...condition.Option) (*condition.ScriptCondition, error) {
	return condition.New(finder, opts...)
}

// EnabledIf creates an enable-if annotation: the element runs only when the
// expression evaluates to true. Multiple lines are joined with "\n".
func EnabledIf(lines ...string) script.Annotation {
	return script.Annotation{Kind: script.KindEnabledIf, Value: lines}
}

// DisabledIf creates a disable-if annotation: the element is skipped when the
// expression evaluates to true. Multiple lines are joined with "\n".
func DisabledIf(lines ...string) script.Annotation {
	return script.Annotation{Kind: script.KindDisabledIf, Value: lines}
}
