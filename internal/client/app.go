package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/enterprise-sync/asingest/internal/config"
	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/service"
	"github.com/enterprise-sync/asingest/internal/utils"
	"github.com/enterprise-sync/asingest/models"
)

// State is one step of the run lifecycle.
type State string

// Run states in execution order. StateFailed is reachable from any state.
const (
	StateStart            State = "start"
	StateConfigured       State = "configured"
	StateAuthenticated    State = "authenticated"
	StateMetadataResolved State = "metadata_resolved"
	StateUploaded         State = "uploaded"
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// Failure kinds recorded in the journal and logged on failed runs. Each kind
// corresponds to one sentinel of the service failure taxonomy.
const (
	FailureKindConfiguration   = "configuration"
	FailureKindAuthentication  = "authentication"
	FailureKindInvalidMetadata = "invalid_metadata"
	FailureKindUpload          = "upload"
)

// App drives one document submission from configuration to terminal state.
type App struct {
	services *service.IngestorServices
	cfg      *config.IngestorConfig
	uuid     *utils.UUIDGenerator
	logger   *logger.Logger

	// out receives the upload response body on success. Defaults to stdout;
	// log output goes to stderr so the two never interleave.
	out io.Writer

	state State
}

var _ Ingestor = (*App)(nil)

// NewApp assembles the orchestrator on top of already-validated configuration
// and wired services.
func NewApp(services *service.IngestorServices, cfg *config.IngestorConfig, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client: no services provided")
	}
	if cfg == nil {
		return nil, errors.New("client: no config provided")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		services: services,
		cfg:      cfg,
		uuid:     utils.NewUUIDGenerator(),
		logger:   log,
		out:      os.Stdout,
		state:    StateStart,
	}, nil
}

// Run executes one submission: authenticate, resolve metadata, upload, report.
//
// Every run gets a fresh run ID that is attached to the context, to all log
// entries, and to the journal receipt. Taxonomy failures are logged, recorded
// in the journal, and returned wrapped in their sentinel; errors outside the
// taxonomy are returned as-is and leave no receipt.
func (a *App) Run(ctx context.Context) error {
	runID := a.uuid.Generate()
	ctx = context.WithValue(ctx, utils.RunIDCtxKey, runID)
	log := a.logger.WithRunID(runID)

	// конфигурация уже проверена при загрузке
	a.transition(log, StateConfigured)
	log.Info().
		Str("document", a.cfg.Job.Document).
		Int("attachments", len(a.cfg.Job.Attachments)).
		Msg("starting document ingestion")

	token, err := a.services.Auth.Authenticate(ctx)
	if err != nil {
		return a.fail(ctx, log, err)
	}
	a.transition(log, StateAuthenticated)

	metadata, err := a.services.Metadata.Resolve(a.cfg.Job.Metadata)
	if err != nil {
		return a.fail(ctx, log, err)
	}
	a.transition(log, StateMetadataResolved)

	job := models.UploadJob{
		DocumentPath: a.cfg.Job.Document,
		Attachments:  a.cfg.Job.Attachments,
		Metadata:     metadata,
	}

	resp, err := a.services.Upload.Upload(ctx, token.AccessToken, job)
	if err != nil {
		return a.fail(ctx, log, err)
	}
	a.transition(log, StateUploaded)

	a.record(ctx, log, models.UploadReceipt{
		Document:    a.cfg.Job.Document,
		Attachments: len(a.cfg.Job.Attachments),
		Status:      models.ReceiptStatusDone,
		HTTPStatus:  resp.StatusCode,
	})

	a.transition(log, StateDone)
	log.Info().Int("status", resp.StatusCode).Msg("document ingestion finished")

	if len(resp.Body) > 0 {
		fmt.Fprintln(a.out, string(resp.Body))
	}

	return nil
}

// fail moves the run to StateFailed and decides whether the error is a
// reportable taxonomy failure or an escalation.
func (a *App) fail(ctx context.Context, log *logger.Logger, err error) error {
	a.transition(log, StateFailed)

	kind, known := FailureKind(err)
	if !known {
		return err
	}

	log.Error().Err(err).Str("failure_kind", kind).Msg("document ingestion failed")

	a.record(ctx, log, models.UploadReceipt{
		Document:    a.cfg.Job.Document,
		Attachments: len(a.cfg.Job.Attachments),
		Status:      models.ReceiptStatusFailed,
		FailureKind: kind,
	})

	return err
}

// record writes a journal receipt. Journal problems never change the outcome
// of the run, they only produce a warning.
func (a *App) record(ctx context.Context, log *logger.Logger, receipt models.UploadReceipt) {
	if err := a.services.Journal.Record(ctx, receipt); err != nil {
		log.Warn().Err(err).Msg("journal warning")
	}
}

func (a *App) transition(log *logger.Logger, next State) {
	a.state = next
	log.Debug().Str("state", string(next)).Msg("state transition")
}

// FailureKind maps err to its failure-kind label. ok is false for errors
// outside the closed taxonomy, which the orchestrator does not report.
func FailureKind(err error) (kind string, ok bool) {
	switch {
	case errors.Is(err, service.ErrConfiguration):
		return FailureKindConfiguration, true
	case errors.Is(err, service.ErrAuthentication):
		return FailureKindAuthentication, true
	case errors.Is(err, service.ErrInvalidMetadata):
		return FailureKindInvalidMetadata, true
	case errors.Is(err, service.ErrUpload):
		return FailureKindUpload, true
	}

	return "", false
}
