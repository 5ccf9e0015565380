package service

import (
	"context"

	"github.com/enterprise-sync/asingest/internal/adapter"
	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/models"
)

type uploadService struct {
	adapter adapter.IngestionAdapter
	logger  *logger.Logger
}

// NewUploadService constructs the [UploadService] backed by the given
// transport adapter.
func NewUploadService(ingestionAdapter adapter.IngestionAdapter, logger *logger.Logger) UploadService {
	return &uploadService{adapter: ingestionAdapter, logger: logger}
}

// Upload implements [UploadService]. The adapter performs the file preflight
// and the multipart submission; this layer folds every failure — missing
// file or HTTP error — into [ErrUpload].
func (s *uploadService) Upload(ctx context.Context, accessToken string, job models.UploadJob) (models.UploadResponse, error) {
	resp, err := s.adapter.UploadDocument(ctx, accessToken, job)
	if err != nil {
		return models.UploadResponse{}, mapUploadError(err)
	}

	s.logger.Info().
		Str("document", job.DocumentPath).
		Int("attachments", len(job.Attachments)).
		Int("status", resp.StatusCode).
		Msg("document accepted by ingestion endpoint")

	return resp, nil
}
