package platform

import "errors"

var (
	// ErrSyntax wraps engine compile/parse failures. Engines append the
	// backend's own diagnostic text so authors can locate the fault.
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupportedEngine reports a script naming an engine that is not
	// registered in the current process.
	ErrUnsupportedEngine = errors.New("unsupported script engine")
)
