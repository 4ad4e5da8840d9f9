package condition

import "fmt"

// Result is the verdict of evaluating the execution condition of one code
// element: whether the element is disabled, plus a human-readable reason.
// The zero value is "enabled without reason"; use the Enabled and Disabled
// factories everywhere else.
type Result struct {
	disabled bool
	reason   string
}

// Enabled creates an enabled verdict with the given reason.
func Enabled(reason string) Result {
	return Result{disabled: false, reason: reason}
}

// Disabled creates a disabled verdict with the given reason.
func Disabled(reason string) Result {
	return Result{disabled: true, reason: reason}
}

// IsDisabled reports whether the element must not be executed.
func (r Result) IsDisabled() bool {
	return r.disabled
}

// Reason returns the human-readable reason and whether one is present.
func (r Result) Reason() (string, bool) {
	return r.reason, r.reason != ""
}

func (r Result) String() string {
	return fmt.Sprintf("ConditionResult [disabled = %t, reason = '%s']", r.disabled, r.reason)
}
