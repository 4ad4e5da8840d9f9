package risor

import (
	"context"
	"errors"
	"fmt"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	risorErrors "github.com/risor-io/risor/errz"
	risorParser "github.com/risor-io/risor/parser"

	"github.com/nskvortsov/junit5/platform"
)

// compile parses and compiles the script content into bytecode. The binding
// names are declared as additional globals, since their values are only
// injected at eval time.
func compile(scriptContent *string, globals []string) (*risorCompiler.Code, error) {
	if scriptContent == nil {
		return nil, ErrContentNil
	}

	ast, err := risorParser.Parse(context.Background(), *scriptContent)
	if err != nil {
		// Create a better-looking error output when there's a syntax error
		errMsg := err.Error()
		var friendlyErr risorErrors.FriendlyError
		if errors.As(err, &friendlyErr) {
			errMsg = friendlyErr.FriendlyErrorMessage()
		}
		return nil, fmt.Errorf("%w: %s", platform.ErrSyntax, errMsg)
	}

	// Retrieve default global names, and append the binding names
	cfg := risorLib.NewConfig()
	globalNames := append(cfg.GlobalNames(), globals...)

	code, err := risorCompiler.Compile(ast, risorCompiler.WithGlobalNames(globalNames))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", platform.ErrSyntax, err)
	}
	return code, nil
}
