package script

import (
	"fmt"
	"strings"
)

const (
	// DefaultEngineName is the engine used when an annotation does not name one.
	DefaultEngineName = "risor"

	// DefaultReasonTemplate is the reason message template used when an
	// annotation does not supply one. The placeholders `{source}` and
	// `{result}` are replaced with the script source text and the raw
	// evaluation result.
	DefaultReasonTemplate = "Script `{source}` evaluated to: {result}"
)

// Kind identifies the annotation type a Script was built from.
type Kind string

const (
	// KindEnabledIf marks a script from an enable-if annotation:
	// a true result enables the element, a false result disables it.
	KindEnabledIf Kind = "EnabledIf"

	// KindDisabledIf marks a script from a disable-if annotation:
	// a true result disables the element, a false result enables it.
	KindDisabledIf Kind = "DisabledIf"
)

// Script is an immutable descriptor of one conditional expression: the
// annotation kind it was declared by, a human-readable label for diagnostics,
// the name of the engine that should evaluate it, the source text, and the
// reason message template. All fields are set at construction and never
// mutated.
type Script struct {
	kind           Kind
	label          string
	engineName     string
	source         string
	reasonTemplate string
}

// New creates a Script. The engine name and reason template are stored as
// given; defaulting of empty values is the caller's responsibility.
func New(kind Kind, label string, engineName string, source string, reasonTemplate string) *Script {
	return &Script{
		kind:           kind,
		label:          label,
		engineName:     engineName,
		source:         source,
		reasonTemplate: reasonTemplate,
	}
}

// Kind returns the declaring annotation kind.
func (s *Script) Kind() Kind {
	return s.kind
}

// Label returns the free-text diagnostic label.
func (s *Script) Label() string {
	return s.label
}

// EngineName returns the name of the evaluation engine.
func (s *Script) EngineName() string {
	return s.engineName
}

// Source returns the expression text. Multi-line sources are joined with "\n".
func (s *Script) Source() string {
	return s.source
}

// ReasonTemplate returns the reason message template.
func (s *Script) ReasonTemplate() string {
	return s.reasonTemplate
}

// ReasonFor renders the reason template, substituting `{source}` with the
// literal source text and `{result}` with the raw result's string form.
// Substitution happens regardless of the result's polarity or type.
func (s *Script) ReasonFor(result any) string {
	reason := strings.ReplaceAll(s.reasonTemplate, "{source}", s.source)
	return strings.ReplaceAll(reason, "{result}", fmt.Sprintf("%v", result))
}

func (s *Script) String() string {
	return fmt.Sprintf("Script{kind: %s, engine: %q, source: %q}", s.kind, s.engineName, s.source)
}
