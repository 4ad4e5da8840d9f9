package condition

import "errors"

// The sentinel texts below are part of the reporting contract: hosts and
// their users match on these substrings, so the wording must not change.
var (
	// ErrUnsupportedAnnotation reports a Script built for an annotation kind
	// the translator does not recognize. Wrapped as
	// "Unsupported annotation type: <kind>".
	ErrUnsupportedAnnotation = errors.New("Unsupported annotation type")

	// ErrNullResult reports a script that evaluated to the engine's null
	// value instead of a boolean.
	ErrNullResult = errors.New("Script returned `null`")

	// ErrUnsupportedResult reports a script result that is neither a boolean
	// nor a boolean-literal string.
	ErrUnsupportedResult = errors.New("unsupported script result")
)
