package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the ingestor.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the AlphaSense credential set used by the password grant
	// and the ingestion base URL.
	Auth Auth `envPrefix:"AUTH_"`

	// Ingestion holds settings of the upload request itself: the clientId
	// header value and the outbound request timeout.
	Ingestion Ingestion `envPrefix:"INGESTION_"`

	// Storage holds the local upload-journal database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Job describes the submission performed by this run: document path,
	// attachment paths, and the metadata source.
	Job Job `envPrefix:"JOB_"`

	// App holds application-level settings such as verbosity and version.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the credential fields required by the authentication endpoint
// plus the ingestion base URL. Every field is required; validation rejects
// configurations with any of them empty.
type Auth struct {
	// APIKey is sent as the x-api-key header on auth requests.
	// Env: AUTH_API_KEY
	APIKey string `env:"API_KEY"`

	// Username is the AlphaSense login email.
	// Env: AUTH_USERNAME
	Username string `env:"USERNAME"`

	// Password is the AlphaSense login password.
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`

	// ClientID is the OAuth client identifier.
	// Env: AUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the OAuth client secret.
	// Env: AUTH_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// URL is the full URL of the authentication endpoint.
	// Env: AUTH_URL
	URL string `env:"URL"`

	// IngestionBaseURL is the base URL of the ingestion API.
	// Env: AUTH_INGESTION_BASE_URL
	IngestionBaseURL string `env:"INGESTION_BASE_URL"`
}

// Ingestion holds upload-request settings that are not credentials.
type Ingestion struct {
	// ClientID is the value of the clientId header on upload requests.
	// Defaults to "enterprise-sync" when empty.
	// Env: INGESTION_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// RequestTimeout bounds a single outbound request (e.g. "30s", "1m").
	// Zero means the transport default applies.
	// Env: INGESTION_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local journal backend.
type Storage struct {
	// DB holds the journal database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the journal database.
type DB struct {
	// DSN is the SQLite connection string for the upload journal
	// (e.g. "ingest-journal.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Job describes the single submission performed by a run. Document and
// attachments usually arrive via command-line arguments; the env bindings
// exist for scripted invocations.
type Job struct {
	// Document is the path of the primary document file. Required.
	// Env: JOB_DOCUMENT
	Document string `env:"DOCUMENT"`

	// Attachments are paths of attachment files, in upload order.
	// Env: JOB_ATTACHMENTS (comma-separated)
	Attachments []string `env:"ATTACHMENTS" envSeparator:","`

	// Metadata is the metadata source: a path ending in ".json", an inline
	// JSON string, or empty to use the built-in default object.
	// Env: JOB_METADATA
	Metadata string `env:"METADATA"`
}

// App holds application-level configuration values.
type App struct {
	// Verbose lowers the log level to debug when true.
	// Env: APP_VERBOSE
	Verbose bool `env:"VERBOSE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
