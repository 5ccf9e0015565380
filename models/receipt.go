package models

import "time"

// Receipt statuses recorded in the local upload journal.
const (
	ReceiptStatusDone   = "done"
	ReceiptStatusFailed = "failed"
)

// UploadReceipt is one row of the local upload journal: the terminal outcome
// of a single run. Receipts carry no credentials and no tokens — only enough
// to answer "what was uploaded, when, and how did it end".
type UploadReceipt struct {
	// ID is the journal row identifier, assigned by the database.
	ID int64

	// RunID is the UUID attached to all log entries of the run.
	RunID string

	// Document is the primary document path as given on the command line.
	Document string

	// DocumentSHA256 is the hex SHA-256 checksum of the document contents.
	// Empty when the document could not be read.
	DocumentSHA256 string

	// Attachments is the number of attachment files in the job.
	Attachments int

	// Status is ReceiptStatusDone or ReceiptStatusFailed.
	Status string

	// FailureKind names the failure taxonomy entry for failed runs
	// (e.g. "authentication", "upload"). Empty on success.
	FailureKind string

	// HTTPStatus is the last HTTP status observed, when one exists.
	HTTPStatus int

	// CreatedAt is when the receipt was written.
	CreatedAt time.Time
}
