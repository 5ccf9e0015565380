package service

import (
	"context"

	"github.com/enterprise-sync/asingest/internal/adapter"
	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/utils"
	"github.com/enterprise-sync/asingest/models"
)

type authService struct {
	adapter adapter.IngestionAdapter
	logger  *logger.Logger
}

// NewAuthService constructs the [AuthService] backed by the given transport
// adapter.
func NewAuthService(ingestionAdapter adapter.IngestionAdapter, logger *logger.Logger) AuthService {
	return &authService{adapter: ingestionAdapter, logger: logger}
}

// Authenticate implements [AuthService]. It runs the password grant through
// the adapter, enforces the presence of the access token, and surfaces the
// token expiry in debug logs when the token happens to be a JWT.
func (s *authService) Authenticate(ctx context.Context) (models.TokenResponse, error) {
	token, err := s.adapter.Authenticate(ctx)
	if err != nil {
		return models.TokenResponse{}, mapAuthError(err)
	}

	if err = s.checkTokenResponse(token); err != nil {
		return models.TokenResponse{}, err
	}

	return token, nil
}

// Refresh implements [AuthService]. Same contract as Authenticate with the
// refresh-token grant.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	token, err := s.adapter.Refresh(ctx, refreshToken)
	if err != nil {
		return models.TokenResponse{}, mapAuthError(err)
	}

	if err = s.checkTokenResponse(token); err != nil {
		return models.TokenResponse{}, err
	}

	return token, nil
}

func (s *authService) checkTokenResponse(token models.TokenResponse) error {
	if token.AccessToken == "" {
		return ErrMalformedTokenResponse
	}

	// Токен для нас непрозрачный: expiry достаём только для отладки
	if expiresAt, err := utils.TokenExpiresAt(token.AccessToken); err == nil {
		s.logger.Debug().Time("token_expires_at", expiresAt).Msg("access token obtained")
	} else {
		s.logger.Debug().Msg("access token obtained (opaque, expiry unknown)")
	}

	return nil
}
