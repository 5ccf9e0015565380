package service

import "errors"

// The closed failure taxonomy. The orchestrator treats exactly these four
// kinds as expected, reportable outcomes; anything else escalates.
var (
	// ErrConfiguration covers missing config files, missing required
	// fields, and missing metadata files.
	ErrConfiguration = errors.New("configuration error")

	// ErrAuthentication covers any transport failure or non-2xx status
	// during authenticate/refresh.
	ErrAuthentication = errors.New("authentication failed")

	// ErrInvalidMetadata covers malformed JSON from an inline string or a
	// metadata file.
	ErrInvalidMetadata = errors.New("invalid json metadata")

	// ErrUpload covers a missing document/attachment file and any
	// transport failure or non-2xx status during upload.
	ErrUpload = errors.New("upload failed")
)

// ErrMalformedTokenResponse reports a 2xx auth response without an
// access_token field. Deliberately outside the taxonomy above: the
// orchestrator does not swallow it.
var ErrMalformedTokenResponse = errors.New("auth response missing access_token")

// errJournalUnavailable is returned when the run proceeds without a working
// journal database. The orchestrator downgrades it to a warning.
var errJournalUnavailable = errors.New("upload journal is not available")
