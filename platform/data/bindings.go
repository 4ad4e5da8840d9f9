package data

import (
	"github.com/nskvortsov/junit5/platform/constants"
)

// ParamLookup resolves a configuration parameter by key. The second return
// value reports whether the parameter is present; engines surface an absent
// parameter to scripts as their null value.
type ParamLookup func(key string) (string, bool)

// LookupFromMap adapts a plain map to a ParamLookup.
func LookupFromMap(params map[string]string) ParamLookup {
	return func(key string) (string, bool) {
		value, ok := params[key]
		return value, ok
	}
}

// Bindings is the name-to-value mapping exposed to a condition script during
// evaluation. Keys are the fixed names from the constants package; consumers
// must not assume any other bindings exist.
type Bindings map[string]any

// NewBindings builds the binding context for one evaluation. The tag slice
// may be empty but is never stored as nil, so engines can bind it uniformly.
func NewBindings(tags []string, uniqueID string, displayName string, lookup ParamLookup) Bindings {
	if tags == nil {
		tags = []string{}
	}
	return Bindings{
		constants.Tags:                   tags,
		constants.UniqueID:               uniqueID,
		constants.DisplayName:            displayName,
		constants.ConfigurationParameter: lookup,
	}
}

// Tags returns the bound tag set, or nil if the binding is missing or mistyped.
func (b Bindings) Tags() []string {
	tags, _ := b[constants.Tags].([]string)
	return tags
}

// Lookup returns the bound configuration-parameter accessor, or a lookup that
// reports every parameter absent if the binding is missing or mistyped.
func (b Bindings) Lookup() ParamLookup {
	if lookup, ok := b[constants.ConfigurationParameter].(ParamLookup); ok && lookup != nil {
		return lookup
	}
	return func(string) (string, bool) { return "", false }
}
