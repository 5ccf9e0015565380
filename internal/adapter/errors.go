package adapter

import "errors"

// Transport sentinel errors. mapHTTPError wraps the response body into one of
// these based on the HTTP status so callers can branch with errors.Is while
// keeping the status detail for logging.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrFileNotFound is returned by UploadDocument when the document or an
	// attachment path does not reference a readable file. Raised before any
	// network I/O.
	ErrFileNotFound = errors.New("file not found")
)
