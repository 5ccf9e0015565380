package store

import "errors"

// ErrEmptyDSN indicates that no journal DSN was configured.
var ErrEmptyDSN = errors.New("journal dsn is empty")
