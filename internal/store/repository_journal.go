package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/models"
)

// sq builds queries with "?" placeholders, which is what the sqlite3 driver
// expects.
var sq = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var receiptColumns = []string{
	"run_id", "document", "document_sha256", "attachments",
	"status", "failure_kind", "http_status", "created_at",
}

type journalRepository struct {
	db     *JournalDB
	logger *logger.Logger
}

// NewJournalRepository constructs the SQLite-backed [JournalRepository].
func NewJournalRepository(db *JournalDB, logger *logger.Logger) JournalRepository {
	return &journalRepository{db: db, logger: logger}
}

// Save implements [JournalRepository].
func (r *journalRepository) Save(ctx context.Context, receipt models.UploadReceipt) (int64, error) {
	query, args, err := sq.
		Insert("upload_receipts").
		Columns(receiptColumns...).
		Values(
			receipt.RunID,
			receipt.Document,
			receipt.DocumentSHA256,
			receipt.Attachments,
			receipt.Status,
			receipt.FailureKind,
			receipt.HTTPStatus,
			receipt.CreatedAt,
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert receipt query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert receipt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("receipt last insert id: %w", err)
	}

	return id, nil
}

// Recent implements [JournalRepository].
func (r *journalRepository) Recent(ctx context.Context, limit int) ([]models.UploadReceipt, error) {
	builder := sq.
		Select(append([]string{"id"}, receiptColumns...)...).
		From("upload_receipts").
		OrderBy("id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select receipts query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select receipts: %w", err)
	}
	defer rows.Close()

	var receipts []models.UploadReceipt
	for rows.Next() {
		var receipt models.UploadReceipt
		if err = rows.Scan(
			&receipt.ID,
			&receipt.RunID,
			&receipt.Document,
			&receipt.DocumentSHA256,
			&receipt.Attachments,
			&receipt.Status,
			&receipt.FailureKind,
			&receipt.HTTPStatus,
			&receipt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan receipt row: %w", err)
		}
		receipts = append(receipts, receipt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate receipt rows: %w", err)
	}

	return receipts, nil
}
