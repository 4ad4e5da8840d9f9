// Description: This file contains the fixed binding names exposed to condition scripts.
package constants

// Binding names visible to script authors. These are a wire contract: scripts
// reference them by name, so they must never change.
const (
	// Tags is bound to the set of tags of the current test or container.
	Tags = "tags"

	// UniqueID is bound to the unique identifier of the current test or container.
	UniqueID = "uniqueId"

	// DisplayName is bound to the display name of the current test or container.
	DisplayName = "displayName"

	// ConfigurationParameter is bound to an accessor object exposing a
	// `get(key)` lookup over the host engine's configuration parameters.
	// An absent parameter yields the engine's null value, not an error.
	ConfigurationParameter = "junitConfigurationParameter"
)
