package starlark

import (
	"fmt"

	starlarkLib "go.starlark.net/starlark"

	"github.com/nskvortsov/junit5/platform/data"
)

// convertBindings converts the binding context into the Starlark predeclared
// environment.
func convertBindings(bindings data.Bindings) (starlarkLib.StringDict, error) {
	env := make(starlarkLib.StringDict, len(bindings))
	for name, value := range bindings {
		if lookup, ok := value.(data.ParamLookup); ok {
			env[name] = paramValue{lookup: lookup}
			continue
		}
		converted, err := convertToStarlarkValue(value)
		if err != nil {
			return nil, fmt.Errorf("failed to convert binding %q: %w", name, err)
		}
		env[name] = converted
	}
	return env, nil
}

func convertToStarlarkValue(v any) (starlarkLib.Value, error) {
	switch val := v.(type) {
	case nil:
		return starlarkLib.None, nil
	case bool:
		return starlarkLib.Bool(val), nil
	case int:
		return starlarkLib.MakeInt(val), nil
	case int64:
		return starlarkLib.MakeInt64(val), nil
	case float64:
		return starlarkLib.Float(val), nil
	case string:
		return starlarkLib.String(val), nil
	case []string:
		elems := make([]starlarkLib.Value, 0, len(val))
		for _, s := range val {
			elems = append(elems, starlarkLib.String(s))
		}
		return starlarkLib.NewList(elems), nil
	default:
		return nil, fmt.Errorf("unsupported binding type %T", v)
	}
}

// convertStarlarkValue converts a Starlark value back to a Go any value.
func convertStarlarkValue(v starlarkLib.Value) (any, error) {
	switch v := v.(type) {
	case nil, starlarkLib.NoneType:
		return nil, nil
	case starlarkLib.Bool:
		return bool(v), nil
	case starlarkLib.Int:
		i, _ := v.Int64()
		return i, nil
	case starlarkLib.Float:
		return float64(v), nil
	case starlarkLib.String:
		return string(v), nil
	case *starlarkLib.List:
		list := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem, err := convertStarlarkValue(v.Index(i))
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element: %w", err)
			}
			list = append(list, elem)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("unsupported Starlark type %s", v.Type())
	}
}
