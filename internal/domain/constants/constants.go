// Package constants defines shared domain-level constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"

	// PubSubProviderLocal routes drop events through a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes drop events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
