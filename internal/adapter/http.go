package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/enterprise-sync/asingest/internal/config"
	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/utils"
	"github.com/enterprise-sync/asingest/models"
)

// uploadPath is appended to the ingestion base URL to form the upload endpoint.
const uploadPath = "/upload-document"

const (
	grantTypePassword = "password"
	grantTypeRefresh  = "refresh_token"
)

type httpIngestionAdapter struct {
	client *utils.HTTPClient

	creds          models.Credentials
	uploadURL      string
	uploadClientID string

	logger *logger.Logger
}

// NewHTTPIngestionAdapter constructs the HTTP implementation of
// [IngestionAdapter]. It validates both endpoint URLs from the credential
// set, derives the upload endpoint from the ingestion base URL, and
// configures the underlying HTTP client with the request timeout from
// ingestionCfg (zero keeps the transport default, i.e. no timeout).
//
// Returns an error if either URL is empty or cannot be parsed as an absolute
// URL.
func NewHTTPIngestionAdapter(creds models.Credentials, ingestionCfg config.IngestionSettings, logger *logger.Logger) (IngestionAdapter, error) {
	authURL, err := normalizeEndpointURL(creds.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth url: %w", err)
	}
	creds.AuthURL = authURL

	baseURL, err := normalizeEndpointURL(creds.IngestionBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ingestion base url: %w", err)
	}
	creds.IngestionBaseURL = baseURL

	client := utils.NewHTTPClient()
	if ingestionCfg.RequestTimeout > 0 {
		client.SetTimeout(ingestionCfg.RequestTimeout)
	}

	uploadClientID := ingestionCfg.ClientID
	if uploadClientID == "" {
		uploadClientID = config.DefaultUploadClientID
	}

	return &httpIngestionAdapter{
		client:         client,
		creds:          creds,
		uploadURL:      baseURL + uploadPath,
		uploadClientID: uploadClientID,
		logger:         logger,
	}, nil
}

func normalizeEndpointURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticate implements [IngestionAdapter]. It POSTs the password grant as
// a form-encoded body with the x-api-key header to the auth endpoint and
// decodes the JSON token response.
func (h *httpIngestionAdapter) Authenticate(ctx context.Context) (models.TokenResponse, error) {
	return h.requestToken(ctx, map[string]string{
		"grant_type":    grantTypePassword,
		"username":      h.creds.Username,
		"password":      h.creds.Password,
		"client_id":     h.creds.ClientID,
		"client_secret": h.creds.ClientSecret,
	})
}

// Refresh implements [IngestionAdapter]. Same endpoint and header contract as
// Authenticate, with the refresh-token grant in the body.
func (h *httpIngestionAdapter) Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	return h.requestToken(ctx, map[string]string{
		"grant_type":    grantTypeRefresh,
		"client_id":     h.creds.ClientID,
		"client_secret": h.creds.ClientSecret,
		"refresh_token": refreshToken,
	})
}

func (h *httpIngestionAdapter) requestToken(ctx context.Context, form map[string]string) (models.TokenResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", h.creds.APIKey).
		SetFormData(form).
		Post(h.creds.AuthURL)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode auth response: %w", err)
	}

	h.logger.Debug().
		Str("grant_type", form["grant_type"]).
		Str("token_type", token.TokenType).
		Int64("expires_in", token.ExpiresIn).
		Msg("token response received")

	return token, nil
}

// UploadDocument implements [IngestionAdapter]. It opens the primary document
// and every attachment first — a missing path aborts the call before any
// network I/O — then POSTs a multipart body with the `file`, `attachments`,
// and `metadata` parts to the upload endpoint.
func (h *httpIngestionAdapter) UploadDocument(ctx context.Context, accessToken string, job models.UploadJob) (models.UploadResponse, error) {
	document, err := openUploadFile(job.DocumentPath)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("document: %w", err)
	}
	defer document.Close()

	attachmentFiles := make([]*os.File, 0, len(job.Attachments))
	defer func() {
		for _, f := range attachmentFiles {
			f.Close()
		}
	}()

	attachmentFields := make([]*resty.MultipartField, 0, len(job.Attachments))
	for _, path := range job.Attachments {
		f, err := openUploadFile(path)
		if err != nil {
			return models.UploadResponse{}, fmt.Errorf("attachment: %w", err)
		}
		attachmentFiles = append(attachmentFiles, f)
		attachmentFields = append(attachmentFields, &resty.MultipartField{
			Param:       "attachments",
			FileName:    filepath.Base(path),
			ContentType: attachmentMIMEType(path),
			Reader:      f,
		})
	}

	metadataJSON, err := json.Marshal(job.Metadata)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("encode metadata: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "bearer "+accessToken).
		SetHeader("clientId", h.uploadClientID).
		SetFileReader("file", filepath.Base(job.DocumentPath), document).
		SetFormData(map[string]string{"metadata": string(metadataJSON)})

	if len(attachmentFields) > 0 {
		req.SetMultipartFields(attachmentFields...)
	}

	resp, err := req.Post(h.uploadURL)
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Int("attachments", len(attachmentFields)).
		Msg("document uploaded")

	return models.UploadResponse{
		StatusCode: resp.StatusCode(),
		Body:       append(json.RawMessage(nil), resp.Body()...),
	}, nil
}

// openUploadFile opens path for reading, translating a missing file into
// [ErrFileNotFound] with the offending path in the message.
func openUploadFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return f, nil
}

// attachmentMIMEType derives the MIME type of an attachment from its file
// extension. Only PDF is recognised; everything else is sent as a generic
// byte stream.
func attachmentMIMEType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "application/pdf"
	}
	return "application/octet-stream"
}
