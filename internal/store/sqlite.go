package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/migrations"
)

// JournalDB wraps the SQLite connection of the upload journal.
type JournalDB struct {
	*sql.DB

	logger *logger.Logger
}

// NewJournalDB opens (creating if necessary) the journal database at dsn and
// brings its schema up to date via the embedded goose migrations.
func NewJournalDB(dsn string, logger *logger.Logger) (*JournalDB, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping journal database: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal database: %w", err)
	}

	logger.Debug().Str("dsn", dsn).Msg("journal database ready")

	return &JournalDB{DB: db, logger: logger}, nil
}
