package condition

import (
	"fmt"
	"strings"

	"github.com/nskvortsov/junit5/platform/script"
)

// translateResult converts the raw result of one script evaluation into a
// verdict. The annotation kind fixes the polarity: for an enable-if script a
// true result enables the element, for a disable-if script it disables it.
// The reason is always rendered from the script's reason template, whatever
// the polarity.
func translateResult(s *script.Script, raw any) (Result, error) {
	kind := s.Kind()
	if kind != script.KindEnabledIf && kind != script.KindDisabledIf {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedAnnotation, kind)
	}
	if raw == nil {
		return Result{}, fmt.Errorf("%w, script: %s", ErrNullResult, s)
	}

	truthy, err := booleanOf(raw, s)
	if err != nil {
		return Result{}, err
	}

	reason := s.ReasonFor(raw)
	if truthy == (kind == script.KindDisabledIf) {
		return Disabled(reason), nil
	}
	return Enabled(reason), nil
}

// booleanOf interprets the raw result as a boolean. Strings are parsed as
// boolean literals, case-insensitively; anything else is a script authoring
// error.
func booleanOf(raw any, s *script.Script) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		if strings.EqualFold(v, "true") {
			return true, nil
		}
		if strings.EqualFold(v, "false") {
			return false, nil
		}
		return false, fmt.Errorf("%w: %q is not a boolean literal, script: %s", ErrUnsupportedResult, v, s)
	default:
		return false, fmt.Errorf("%w: got %T, script: %s", ErrUnsupportedResult, raw, s)
	}
}
