// Package store implements the local upload journal: a small SQLite database
// holding one receipt row per run. The journal is an audit aid only — it
// stores no credentials and no tokens, and nothing in the upload flow depends
// on its contents.
package store

import (
	"context"

	"github.com/enterprise-sync/asingest/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_repository_mock.go -package=mock

// JournalRepository persists and lists upload receipts.
type JournalRepository interface {
	// Save inserts one receipt and returns its row ID.
	Save(ctx context.Context, receipt models.UploadReceipt) (int64, error)

	// Recent returns up to limit receipts, newest first. A non-positive
	// limit returns all receipts.
	Recent(ctx context.Context, limit int) ([]models.UploadReceipt, error)
}
