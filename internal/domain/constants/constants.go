// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push simulator.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// FallbackTableCount is used when the legacy table-count document cannot be
// read. A failed read degrades to this value, never to an error screen.
const FallbackTableCount = 10
