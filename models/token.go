package models

// TokenResponse is the JSON body returned by the authentication endpoint for
// both the password grant and the refresh-token grant.
//
// AccessToken is the only field this application requires; the remaining
// fields are carried for logging and for callers that wire up the refresh
// capability. Nothing in the response is persisted — a token lives for the
// duration of a single run.
type TokenResponse struct {
	// AccessToken is the bearer token presented to the ingestion endpoint.
	AccessToken string `json:"access_token"`

	// RefreshToken can be exchanged for a new access token via the
	// refresh-token grant. Optional.
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresIn is the token lifetime in seconds as reported by the
	// auth endpoint. Optional, informational only.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// TokenType is the token type reported by the auth endpoint
	// (typically "Bearer"). Optional, informational only.
	TokenType string `json:"token_type,omitempty"`
}
