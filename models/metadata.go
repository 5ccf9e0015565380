package models

// DocumentMetadata is the open key-value payload sent alongside a document in
// the `metadata` part of the upload request. No schema is enforced here: keys
// map to any JSON-compatible value (strings, numbers, booleans, nested
// objects and arrays) and the whole structure is passed through opaquely to
// the ingestion endpoint.
type DocumentMetadata map[string]any

// DefaultDocumentMetadata returns the fixed metadata object substituted when
// the caller supplies no metadata source. Each call returns a fresh value so
// callers can never alias or mutate a shared default.
func DefaultDocumentMetadata() DocumentMetadata {
	return DocumentMetadata{
		"title": "Sample Document",
		"docAuthors": []any{
			map[string]any{
				"authorName": "Test Author",
				"operation":  "ADD",
			},
		},
	}
}
