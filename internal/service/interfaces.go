// Package service implements the business layer of the ingestor.
//
// Services wrap the transport adapter and the journal repository, translate
// transport errors into the closed failure taxonomy defined in errors.go,
// and keep the orchestrator free of wire and storage details.
package service

import (
	"context"

	"github.com/enterprise-sync/asingest/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService obtains access tokens from the authentication endpoint.
type AuthService interface {
	// Authenticate performs the password grant and returns the token
	// response. Any transport or non-2xx failure is returned wrapped in
	// [ErrAuthentication]. A 2xx response without an access token returns
	// [ErrMalformedTokenResponse], which is deliberately OUTSIDE the
	// failure taxonomy and escalates past the orchestrator.
	Authenticate(ctx context.Context) (models.TokenResponse, error)

	// Refresh exchanges a refresh token for a new token response. Same
	// failure contract as Authenticate. Not called by the base flow; kept
	// as a reusable capability.
	Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error)
}

// MetadataService resolves the document metadata from its configured source.
type MetadataService interface {
	// Resolve turns the metadata source into a metadata payload:
	//   - empty source     → the fixed default object;
	//   - "*.json" path    → file contents parsed as JSON;
	//   - anything else    → the source itself parsed as inline JSON.
	// A missing file maps to [ErrConfiguration]; malformed JSON maps to
	// [ErrInvalidMetadata].
	Resolve(source string) (models.DocumentMetadata, error)
}

// UploadService submits a document to the ingestion endpoint.
type UploadService interface {
	// Upload submits the job with the given access token. Missing files
	// and non-2xx responses are both returned wrapped in [ErrUpload].
	Upload(ctx context.Context, accessToken string, job models.UploadJob) (models.UploadResponse, error)
}

// JournalService records terminal run outcomes in the local upload journal.
type JournalService interface {
	// Record persists one receipt. It fills the run ID from the context and
	// the document checksum when the caller left them empty. Journal
	// failures are returned to the caller to log; they must never fail the
	// run itself.
	Record(ctx context.Context, receipt models.UploadReceipt) error

	// Recent returns up to limit receipts, newest first.
	Recent(ctx context.Context, limit int) ([]models.UploadReceipt, error)
}
