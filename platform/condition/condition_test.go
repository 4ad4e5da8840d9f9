package condition

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nskvortsov/junit5/engines/mocks"
	"github.com/nskvortsov/junit5/engines/registry"
	"github.com/nskvortsov/junit5/platform"
	"github.com/nskvortsov/junit5/platform/script"
	"github.com/nskvortsov/junit5/platform/store"
)

func testHandler() slog.Handler {
	return slog.NewTextHandler(io.Discard, nil)
}

// annotatedElement is a stand-in for a host code element carrying condition
// annotations.
type annotatedElement struct {
	name        string
	annotations []script.Annotation
}

func elementFinder() AnnotationFinder {
	return FinderFunc(func(element any, kind script.Kind) (script.Annotation, bool) {
		e, ok := element.(*annotatedElement)
		if !ok {
			return script.Annotation{}, false
		}
		for _, a := range e.annotations {
			if a.Kind == kind {
				return a, true
			}
		}
		return script.Annotation{}, false
	})
}

// newGateWithMock wires a gate to a registry whose only engine resolves to the
// given mock evaluator.
func newGateWithMock(t *testing.T, evaluator *mocks.Evaluator) *ScriptCondition {
	t.Helper()

	reg := registry.New()
	reg.Register(script.DefaultEngineName, func(handler slog.Handler) (platform.Evaluator, error) {
		return evaluator, nil
	})

	gate, err := New(elementFinder(), WithRegistry(reg), WithLogHandler(testHandler()))
	require.NoError(t, err)
	return gate
}

func contextFor(element *annotatedElement) *HostContext {
	return &HostContext{
		Elem:   element,
		TagSet: []string{"unit"},
		ID:     "[engine:junit5]/[test:mock]",
		Name:   "Mock for DisplayName",
		Params: map[string]string{"key": "value"},
		Store:  store.NewRoot(),
	}
}

func TestNewRequiresFinder(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finder")
}

func TestEvaluateNoElement(t *testing.T) {
	t.Parallel()

	gate, err := New(elementFinder(), WithLogHandler(testHandler()))
	require.NoError(t, err)

	verdict, err := gate.Evaluate(context.Background(), &HostContext{Store: store.NewRoot()})
	require.NoError(t, err)
	assert.False(t, verdict.IsDisabled())
	reason, ok := verdict.Reason()
	require.True(t, ok)
	assert.Equal(t, "AnnotatedElement not present", reason)
}

func TestEvaluateNoAnnotation(t *testing.T) {
	t.Parallel()

	gate, err := New(elementFinder(), WithLogHandler(testHandler()))
	require.NoError(t, err)

	element := &annotatedElement{name: "plain"}
	verdict, err := gate.Evaluate(context.Background(), contextFor(element))
	require.NoError(t, err)
	assert.False(t, verdict.IsDisabled())
	reason, ok := verdict.Reason()
	require.True(t, ok)
	assert.Equal(t, "Annotation not present", reason)
}

func TestEvaluateDisableScriptWinsFirst(t *testing.T) {
	t.Parallel()

	evaluator := new(mocks.Evaluator)
	evaluator.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			s := args.Get(1).(*script.Script)
			assert.Equal(t, script.KindDisabledIf, s.Kind())
		}).
		Return(true, nil).
		Once()
	gate := newGateWithMock(t, evaluator)

	element := &annotatedElement{
		name: "both",
		annotations: []script.Annotation{
			{Kind: script.KindEnabledIf, Value: []string{"true"}},
			{Kind: script.KindDisabledIf, Value: []string{"true"}},
		},
	}

	verdict, err := gate.Evaluate(context.Background(), contextFor(element))
	require.NoError(t, err)
	assert.True(t, verdict.IsDisabled())
	reason, ok := verdict.Reason()
	require.True(t, ok)
	assert.Equal(t, "Script `true` evaluated to: true", reason)

	// The disabling verdict short-circuits: the enable-if script never ran.
	evaluator.AssertNumberOfCalls(t, "Evaluate", 1)
}

func TestEvaluateLastEnabledVerdictReturned(t *testing.T) {
	t.Parallel()

	evaluator := new(mocks.Evaluator)
	evaluator.On("Evaluate", mock.Anything, mock.MatchedBy(func(s *script.Script) bool {
		return s.Kind() == script.KindDisabledIf
	}), mock.Anything).Return(false, nil)
	evaluator.On("Evaluate", mock.Anything, mock.MatchedBy(func(s *script.Script) bool {
		return s.Kind() == script.KindEnabledIf
	}), mock.Anything).Return(true, nil)
	gate := newGateWithMock(t, evaluator)

	element := &annotatedElement{
		name: "both",
		annotations: []script.Annotation{
			{Kind: script.KindDisabledIf, Value: []string{"false"}},
			{Kind: script.KindEnabledIf, Value: []string{"true"}},
		},
	}

	verdict, err := gate.Evaluate(context.Background(), contextFor(element))
	require.NoError(t, err)
	assert.False(t, verdict.IsDisabled())
	reason, ok := verdict.Reason()
	require.True(t, ok)
	assert.Equal(t, "Script `true` evaluated to: true", reason)
	evaluator.AssertNumberOfCalls(t, "Evaluate", 2)
}

func TestEvaluateErrorPropagates(t *testing.T) {
	t.Parallel()

	evaluator := new(mocks.Evaluator)
	evaluator.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("boom"))
	gate := newGateWithMock(t, evaluator)

	element := &annotatedElement{
		name:        "failing",
		annotations: []script.Annotation{{Kind: script.KindEnabledIf, Value: []string{"true"}}},
	}

	_, err := gate.Evaluate(context.Background(), contextFor(element))
	require.EqualError(t, err, "boom")
}

func TestEvaluateNullResultFails(t *testing.T) {
	t.Parallel()

	evaluator := new(mocks.Evaluator)
	evaluator.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	gate := newGateWithMock(t, evaluator)

	element := &annotatedElement{
		name:        "null",
		annotations: []script.Annotation{{Kind: script.KindEnabledIf, Value: []string{"nil"}}},
	}

	_, err := gate.Evaluate(context.Background(), contextFor(element))
	require.ErrorIs(t, err, ErrNullResult)
	assert.Contains(t, err.Error(), "Script returned `null`")
}

func TestEvaluatorCachedPerRoot(t *testing.T) {
	t.Parallel()

	gate, err := New(elementFinder(), WithRegistry(registry.New()), WithLogHandler(testHandler()))
	require.NoError(t, err)

	element := &annotatedElement{
		name:        "no-engines",
		annotations: []script.Annotation{{Kind: script.KindEnabledIf, Value: []string{"true"}}},
	}
	ec := contextFor(element)

	_, err1 := gate.Evaluate(context.Background(), ec)
	require.Error(t, err1)
	_, err2 := gate.Evaluate(context.Background(), ec)
	require.Error(t, err2)

	// Resolution happened once: both calls hit the same cached evaluator and
	// carry the identical diagnostic.
	assert.Equal(t, err1.Error(), err2.Error())
	cached, ok := ec.Root().Get(evaluatorKey)
	require.True(t, ok)
	assert.IsType(t, &ThrowingEvaluator{}, cached)
}

func TestEvaluateNilRootResolvesUncached(t *testing.T) {
	t.Parallel()

	evaluator := new(mocks.Evaluator)
	evaluator.On("Evaluate", mock.Anything, mock.Anything, mock.Anything).
		Return(true, nil)
	gate := newGateWithMock(t, evaluator)

	element := &annotatedElement{
		name:        "rootless",
		annotations: []script.Annotation{{Kind: script.KindEnabledIf, Value: []string{"true"}}},
	}
	ec := contextFor(element)
	ec.Store = nil

	verdict, err := gate.Evaluate(context.Background(), ec)
	require.NoError(t, err)
	assert.False(t, verdict.IsDisabled())
}
