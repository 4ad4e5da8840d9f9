// Package mocks provides testify mocks for the platform interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nskvortsov/junit5/platform/data"
	"github.com/nskvortsov/junit5/platform/script"
)

// Evaluator is a mock implementation of platform.Evaluator for testing purposes.
type Evaluator struct {
	mock.Mock
}

// Evaluate is a mock implementation of the Evaluate method.
func (m *Evaluator) Evaluate(ctx context.Context, s *script.Script, bindings data.Bindings) (any, error) {
	args := m.Called(ctx, s, bindings)
	return args.Get(0), args.Error(1)
}

func (m *Evaluator) String() string {
	return "mocks.Evaluator"
}
