package starlark

import (
	"fmt"

	starlarkLib "go.starlark.net/starlark"

	"github.com/nskvortsov/junit5/platform/data"
)

// paramValue exposes a configuration-parameter lookup to Starlark as an
// object with a single `get(key)` method. An absent parameter yields None, so
// scripts can compare against it without a presence check.
type paramValue struct {
	lookup data.ParamLookup
}

var _ starlarkLib.HasAttrs = paramValue{}

func (p paramValue) String() string {
	return "<configuration parameters>"
}

func (p paramValue) Type() string {
	return "configuration_parameters"
}

func (p paramValue) Freeze() {}

func (p paramValue) Truth() starlarkLib.Bool {
	return starlarkLib.True
}

func (p paramValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", p.Type())
}

func (p paramValue) AttrNames() []string {
	return []string{"get"}
}

func (p paramValue) Attr(name string) (starlarkLib.Value, error) {
	if name != "get" {
		return nil, nil
	}
	get := func(thread *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
		var key string
		if err := starlarkLib.UnpackPositionalArgs("get", args, kwargs, 1, &key); err != nil {
			return nil, err
		}
		value, ok := p.lookup(key)
		if !ok {
			return starlarkLib.None, nil
		}
		return starlarkLib.String(value), nil
	}
	return starlarkLib.NewBuiltin("get", get), nil
}
