package risor

import (
	"context"

	risorLib "github.com/risor-io/risor"
	risorObject "github.com/risor-io/risor/object"

	"github.com/nskvortsov/junit5/platform/data"
)

// bindingNames collects the binding names so they can be declared as globals
// at compile time.
func bindingNames(bindings data.Bindings) []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	return names
}

// convertBindings converts the binding context into Risor VM options, one
// global per binding.
func convertBindings(bindings data.Bindings) []risorLib.Option {
	opts := make([]risorLib.Option, 0, len(bindings))
	for name, value := range bindings {
		if lookup, ok := value.(data.ParamLookup); ok {
			opts = append(opts, risorLib.WithGlobal(name, paramObject(lookup)))
			continue
		}
		opts = append(opts, risorLib.WithGlobal(name, value))
	}
	return opts
}

// paramObject wraps a configuration-parameter lookup in a map with a single
// `get` builtin, so scripts access parameters as
// `junitConfigurationParameter.get("key")`. An absent parameter yields nil.
func paramObject(lookup data.ParamLookup) *risorObject.Map {
	get := risorObject.NewBuiltin("get",
		func(ctx context.Context, args ...risorObject.Object) risorObject.Object {
			if len(args) != 1 {
				return risorObject.NewArgsError("get", 1, len(args))
			}
			key, errObj := risorObject.AsString(args[0])
			if errObj != nil {
				return errObj
			}
			value, ok := lookup(key)
			if !ok {
				return risorObject.Nil
			}
			return risorObject.NewString(value)
		})

	return risorObject.NewMap(map[string]risorObject.Object{"get": get})
}
