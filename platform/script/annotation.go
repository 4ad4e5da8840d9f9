package script

import (
	"fmt"
	"strings"
)

// Annotation is the declaration surface for one conditional expression, as
// attached to a test or container by the host engine. Value holds the source
// lines; Engine and Reason are optional overrides for the default engine name
// and reason template.
type Annotation struct {
	Kind   Kind
	Value  []string
	Engine string
	Reason string
}

// Source joins the annotation's source lines with "\n".
func (a Annotation) Source() string {
	return strings.Join(a.Value, "\n")
}

func (a Annotation) String() string {
	return fmt.Sprintf("@%s(%q)", a.Kind, a.Source())
}

// FromAnnotation builds a Script from an annotation, applying the default
// engine name and reason template where the annotation leaves them empty.
func FromAnnotation(a Annotation) *Script {
	engine := a.Engine
	if engine == "" {
		engine = DefaultEngineName
	}
	reason := a.Reason
	if reason == "" {
		reason = DefaultReasonTemplate
	}
	return New(a.Kind, a.String(), engine, a.Source(), reason)
}
