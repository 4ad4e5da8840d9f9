package platform

import (
	"context"
	"fmt"

	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
)

// Evaluator is the capability that executes one Script against a binding
// context and returns the raw result: a bool, a string, or nil. A nil result
// is not an error at this layer; the condition translator rejects it with a
// diagnostic naming the script source.
//
// Evaluators are stateless with respect to scripts: each call is independent
// and implementations must be safe for concurrent use, since the host test
// runner may evaluate conditions for different elements in parallel.
type Evaluator interface {
	// Evaluate runs the script's source with the given bindings in scope.
	Evaluate(ctx context.Context, s *script.Script, bindings data.Bindings) (any, error)

	fmt.Stringer
}
