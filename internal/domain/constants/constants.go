// Package constants holds shared domain-level constant values.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
