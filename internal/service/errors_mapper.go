package service

import (
	"fmt"
)

// mapAuthError translates a transport error from authenticate/refresh into
// the business taxonomy. Every transport failure during the token exchange —
// network error or any non-2xx status — is an authentication failure; the
// underlying detail is preserved in the message for logging.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrAuthentication, err)
}

// mapUploadError translates a transport error from the document submission
// into the business taxonomy. Missing files and HTTP failures both map to
// [ErrUpload]; the wrapped detail keeps the offending path or the HTTP
// status and body.
func mapUploadError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrUpload, err)
}
