package condition

import (
	"github.com/nskvortsov/junit5/platform/script"
	"github.com/nskvortsov/junit5/platform/store"
)

// ExtensionContext describes the element whose execution condition is being
// evaluated, as seen by the host discovery/execution engine. The gate only
// reads from it; ownership stays with the host.
type ExtensionContext interface {
	// Element returns the annotated code element, or false when the context
	// carries none (for example a synthetic container).
	Element() (any, bool)

	// Tags returns the tag set of the current test or container.
	Tags() []string

	// UniqueID returns the unique identifier of the current test or container.
	UniqueID() string

	// DisplayName returns the display name of the current test or container.
	DisplayName() string

	// ConfigurationParameter looks up a configuration parameter of the
	// current test plan.
	ConfigurationParameter(key string) (string, bool)

	// Root returns the store of the top-level execution context, the cache
	// boundary for evaluator resolution.
	Root() *store.Root
}

// AnnotationFinder resolves zero or one effective annotation of a given kind
// on an element, honoring whatever composition rules the host discovery
// system defines.
type AnnotationFinder interface {
	FindAnnotation(element any, kind script.Kind) (script.Annotation, bool)
}

// FinderFunc adapts a function to the AnnotationFinder interface.
type FinderFunc func(element any, kind script.Kind) (script.Annotation, bool)

func (f FinderFunc) FindAnnotation(element any, kind script.Kind) (script.Annotation, bool) {
	return f(element, kind)
}

// HostContext is a ready-made ExtensionContext backed by plain values.
type HostContext struct {
	Elem   any
	TagSet []string
	ID     string
	Name   string
	Params map[string]string
	Store  *store.Root
}

func (c *HostContext) Element() (any, bool) {
	return c.Elem, c.Elem != nil
}

func (c *HostContext) Tags() []string {
	return c.TagSet
}

func (c *HostContext) UniqueID() string {
	return c.ID
}

func (c *HostContext) DisplayName() string {
	return c.Name
}

func (c *HostContext) ConfigurationParameter(key string) (string, bool) {
	value, ok := c.Params[key]
	return value, ok
}

func (c *HostContext) Root() *store.Root {
	return c.Store
}
