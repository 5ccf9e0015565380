package config

import (
	"fmt"
	"time"

	"github.com/enterprise-sync/asingest/models"
)

// DefaultUploadClientID is the clientId header value used on upload requests
// when the configuration does not override it.
const DefaultUploadClientID = "enterprise-sync"

// DefaultJournalDSN is the SQLite file used for the local upload journal
// when the configuration does not override it.
const DefaultJournalDSN = "ingest-journal.db"

// IngestionSettings holds upload-request settings used by the transport
// layer.
type IngestionSettings struct {
	// ClientID is the clientId header value on upload requests.
	ClientID string
	// RequestTimeout bounds a single outbound request; zero leaves the
	// transport default in place.
	RequestTimeout time.Duration
}

// JobSettings describes the submission performed by this run.
type JobSettings struct {
	// Document is the path of the primary document file.
	Document string
	// Attachments are attachment file paths in upload order.
	Attachments []string
	// Metadata is the metadata source (file path, inline JSON, or empty).
	Metadata string
}

// StorageSettings groups local journal settings.
type StorageSettings struct {
	// JournalDSN is the SQLite connection string of the upload journal.
	JournalDSN string
}

// AppSettings holds application-level settings.
type AppSettings struct {
	// Verbose lowers the log level to debug.
	Verbose bool
	// Version is the application version string.
	Version string
}

// IngestorConfig is the validated, run-ready configuration view assembled
// from [StructuredConfig].
type IngestorConfig struct {
	// Credentials is the complete AlphaSense credential set.
	Credentials models.Credentials
	// Ingestion contains upload transport settings.
	Ingestion IngestionSettings
	// Job describes the document submission of this run.
	Job JobSettings
	// Storage contains journal settings.
	Storage StorageSettings
	// App contains application-level settings.
	App AppSettings
}

// GetIngestorConfig builds and validates the ingestor configuration from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps it to the
// [IngestorConfig] view, applies defaults for the upload clientId header and
// the journal DSN, and validates the result.
func GetIngestorConfig() (*IngestorConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	ingestorCfg := newIngestorConfig(cfg)

	return ingestorCfg, ingestorCfg.validate()
}

func newIngestorConfig(cfg *StructuredConfig) *IngestorConfig {
	ingestorCfg := &IngestorConfig{
		Credentials: models.Credentials{
			APIKey:           cfg.Auth.APIKey,
			Username:         cfg.Auth.Username,
			Password:         cfg.Auth.Password,
			ClientID:         cfg.Auth.ClientID,
			ClientSecret:     cfg.Auth.ClientSecret,
			AuthURL:          cfg.Auth.URL,
			IngestionBaseURL: cfg.Auth.IngestionBaseURL,
		},
		Ingestion: IngestionSettings{
			ClientID:       cfg.Ingestion.ClientID,
			RequestTimeout: cfg.Ingestion.RequestTimeout,
		},
		Job: JobSettings{
			Document:    cfg.Job.Document,
			Attachments: cfg.Job.Attachments,
			Metadata:    cfg.Job.Metadata,
		},
		Storage: StorageSettings{
			JournalDSN: cfg.Storage.DB.DSN,
		},
		App: AppSettings{
			Verbose: cfg.App.Verbose,
			Version: cfg.App.Version,
		},
	}

	if ingestorCfg.Ingestion.ClientID == "" {
		ingestorCfg.Ingestion.ClientID = DefaultUploadClientID
	}
	if ingestorCfg.Storage.JournalDSN == "" {
		ingestorCfg.Storage.JournalDSN = DefaultJournalDSN
	}

	return ingestorCfg
}
