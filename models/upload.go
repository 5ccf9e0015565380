package models

import "encoding/json"

// UploadJob describes a single document submission: the primary document,
// zero or more attachments (order preserved), and the metadata payload.
// Paths must reference existing readable files at submission time.
type UploadJob struct {
	// DocumentPath is the path of the primary document file.
	DocumentPath string

	// Attachments are paths of attachment files, uploaded in order.
	Attachments []string

	// Metadata is the descriptive payload serialized into the `metadata`
	// part of the multipart request.
	Metadata DocumentMetadata
}

// UploadResponse is the opaque success payload of the ingestion endpoint.
// The application only confirms a 2xx status; the body is retained raw for
// diagnostics and journaling, never interpreted.
type UploadResponse struct {
	// StatusCode is the HTTP status returned by the ingestion endpoint.
	StatusCode int

	// Body is the raw response body as returned by the server.
	Body json.RawMessage
}
