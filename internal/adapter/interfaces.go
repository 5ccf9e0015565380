// Package adapter provides the transport layer for communicating with the
// AlphaSense API.
//
// The primary abstraction is [IngestionAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPIngestionAdapter]) built on resty that speaks the two AlphaSense
// contracts: the form-encoded OAuth grant against the auth endpoint and the
// multipart document submission against the ingestion endpoint.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/enterprise-sync/asingest/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ingestion_adapter_mock.go -package=mock

// IngestionAdapter defines transport-agnostic communication with the
// AlphaSense API. Implementations are responsible for serialisation, header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type IngestionAdapter interface {
	// Authenticate performs the OAuth password grant against the auth
	// endpoint using the credential set the adapter was constructed with.
	// Exactly one request is issued. Returns the decoded token response on
	// any 2xx status, or an error wrapping a transport sentinel otherwise.
	Authenticate(ctx context.Context) (models.TokenResponse, error)

	// Refresh exchanges refreshToken for a new token via the refresh-token
	// grant against the same endpoint. Same header contract and failure
	// modes as Authenticate. Nothing in the base flow calls this; it is a
	// reusable capability for callers that manage longer sessions.
	Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error)

	// UploadDocument submits one primary document, the job's attachments,
	// and its metadata as a multipart request to the ingestion endpoint,
	// authorized with accessToken.
	//
	// Every file is opened (and therefore checked for existence) before any
	// network I/O: a missing path aborts the call with an error wrapping
	// [ErrFileNotFound] that names the path, and zero requests are issued.
	// All opened file handles are closed on every exit path.
	UploadDocument(ctx context.Context, accessToken string, job models.UploadJob) (models.UploadResponse, error)
}
