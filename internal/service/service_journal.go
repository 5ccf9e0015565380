package service

import (
	"context"
	"fmt"
	"time"

	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/store"
	"github.com/enterprise-sync/asingest/internal/utils"
	"github.com/enterprise-sync/asingest/models"
)

type journalService struct {
	repo   store.JournalRepository
	logger *logger.Logger
}

// NewJournalService constructs the [JournalService] backed by the given
// repository.
func NewJournalService(repo store.JournalRepository, logger *logger.Logger) JournalService {
	return &journalService{repo: repo, logger: logger}
}

// Record implements [JournalService]. Before persisting it fills in the run
// ID from the context, the creation time, and the document checksum — the
// checksum is best-effort: an unreadable document simply leaves the column
// empty.
func (s *journalService) Record(ctx context.Context, receipt models.UploadReceipt) error {
	if s.repo == nil {
		return errJournalUnavailable
	}

	if receipt.RunID == "" {
		if runID, ok := utils.GetRunIDFromContext(ctx); ok {
			receipt.RunID = runID
		}
	}
	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now().UTC()
	}
	if receipt.DocumentSHA256 == "" && receipt.Document != "" {
		if sum, err := utils.FileSHA256(receipt.Document); err == nil {
			receipt.DocumentSHA256 = sum
		}
	}

	id, err := s.repo.Save(ctx, receipt)
	if err != nil {
		return fmt.Errorf("record upload receipt: %w", err)
	}

	s.logger.Debug().
		Int64("receipt_id", id).
		Str("status", receipt.Status).
		Msg("upload receipt recorded")

	return nil
}

// Recent implements [JournalService].
func (s *journalService) Recent(ctx context.Context, limit int) ([]models.UploadReceipt, error) {
	if s.repo == nil {
		return nil, errJournalUnavailable
	}

	receipts, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list upload receipts: %w", err)
	}

	return receipts, nil
}
