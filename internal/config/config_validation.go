package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [IngestorConfig] satisfies all
// invariants before the run starts: the credential set must be complete and
// a document path must be present. Validation happens before any network
// call, so an incomplete configuration never reaches the auth endpoint.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping one of the sentinel values in errors.go otherwise.
func (cfg *IngestorConfig) validate() error {
	if missing := cfg.Credentials.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: [%s]", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	if cfg.Job.Document == "" {
		return ErrNoDocumentProvided
	}

	return nil
}
