package service

import (
	"github.com/enterprise-sync/asingest/internal/adapter"
	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/store"
)

// IngestorServices bundles every service the orchestrator needs.
type IngestorServices struct {
	Auth     AuthService
	Metadata MetadataService
	Upload   UploadService
	Journal  JournalService
}

// NewIngestorServices wires all services on top of the transport adapter and
// the journal repository.
func NewIngestorServices(ingestionAdapter adapter.IngestionAdapter, journalRepo store.JournalRepository, logger *logger.Logger) *IngestorServices {
	return &IngestorServices{
		Auth:     NewAuthService(ingestionAdapter, logger),
		Metadata: NewMetadataService(logger),
		Upload:   NewUploadService(ingestionAdapter, logger),
		Journal:  NewJournalService(journalRepo, logger),
	}
}
