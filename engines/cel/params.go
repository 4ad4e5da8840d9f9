package cel

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/nskvortsov/junit5/platform/data"
)

var paramsType = types.NewObjectType("junit5.ConfigurationParameters")

// paramsValue exposes a configuration-parameter lookup to CEL as an opaque
// value targeted by the `get` member overload. An absent parameter yields
// null, so scripts can compare against it without a presence check.
type paramsValue struct {
	lookup data.ParamLookup
}

var _ ref.Val = paramsValue{}

func (p paramsValue) ConvertToNative(typeDesc reflect.Type) (any, error) {
	return nil, fmt.Errorf("unsupported native conversion from %s to %v", paramsType.TypeName(), typeDesc)
}

func (p paramsValue) ConvertToType(typeValue ref.Type) ref.Val {
	if typeValue == types.TypeType {
		return paramsType
	}
	return types.NewErr("type conversion error from '%s' to '%s'", paramsType.TypeName(), typeValue.TypeName())
}

func (p paramsValue) Equal(other ref.Val) ref.Val {
	return types.Bool(false)
}

func (p paramsValue) Type() ref.Type {
	return paramsType
}

func (p paramsValue) Value() any {
	return p.lookup
}

// getParameter backs the `get` member overload. The receiver must be the
// configuration-parameter binding; the key must be a string.
func getParameter(lhs, rhs ref.Val) ref.Val {
	params, ok := lhs.(paramsValue)
	if !ok {
		return types.NewErr("no such overload: %s.get", lhs.Type().TypeName())
	}
	key, ok := rhs.Value().(string)
	if !ok {
		return types.NewErr("get: key must be a string, got %s", rhs.Type().TypeName())
	}
	value, found := params.lookup(key)
	if !found {
		return types.NullValue
	}
	return types.String(value)
}
