package config

import "errors"

// Validation errors returned by [IngestorConfig.validate] when required
// configuration is incomplete or invalid.
var (
	// ErrMissingCredentials indicates that one or more required credential
	// fields are empty; the wrapped message names them.
	ErrMissingCredentials = errors.New("missing required auth fields")

	// ErrNoDocumentProvided indicates that no document path was given on
	// the command line (or via JOB_DOCUMENT).
	ErrNoDocumentProvided = errors.New("no document provided")
)

var errEmptyAttachmentPath = errors.New("attachment path must not be empty")
