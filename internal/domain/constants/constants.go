// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers
const (
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Identity providers
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
	AuthProviderGoogle   = "google"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "userID"
	ContextKeyIdentity = "identity"
)
