package models

// Credentials is the full credential set required to talk to the AlphaSense
// API: the password-grant inputs for the auth endpoint plus the base URL of
// the ingestion endpoint. All fields are required and the value is treated as
// immutable once loaded from configuration.
type Credentials struct {
	// APIKey is sent as the x-api-key header on every auth request.
	APIKey string

	// Username is the AlphaSense login email used by the password grant.
	Username string

	// Password is the AlphaSense login password used by the password grant.
	Password string

	// ClientID identifies the OAuth client on auth requests.
	ClientID string

	// ClientSecret is the OAuth client secret paired with ClientID.
	ClientSecret string

	// AuthURL is the full URL of the authentication endpoint.
	AuthURL string

	// IngestionBaseURL is the base URL of the ingestion API; the upload
	// path is appended to it.
	IngestionBaseURL string
}

// MissingFields returns the configuration names of all required fields that
// are empty, in declaration order. An empty result means the credential set
// is complete.
func (c Credentials) MissingFields() []string {
	var missing []string

	fields := []struct {
		name  string
		value string
	}{
		{"api_key", c.APIKey},
		{"username", c.Username},
		{"password", c.Password},
		{"client_id", c.ClientID},
		{"client_secret", c.ClientSecret},
		{"auth_url", c.AuthURL},
		{"ingestion_base_url", c.IngestionBaseURL},
	}

	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}

	return missing
}
