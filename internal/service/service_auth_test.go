package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/enterprise-sync/asingest/internal/adapter"
	"github.com/enterprise-sync/asingest/internal/logger"
	"github.com/enterprise-sync/asingest/internal/mock"
	"github.com/enterprise-sync/asingest/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockIngestionAdapter) {
	t.Helper()

	mockAdapter := mock.NewMockIngestionAdapter(ctrl)
	svc := NewAuthService(mockAdapter, logger.Nop())

	return svc, mockAdapter
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Authenticate(ctx).Return(models.TokenResponse{
		AccessToken:  "tok-abc",
		RefreshToken: "ref-xyz",
		ExpiresIn:    3600,
		TokenType:    "Bearer",
	}, nil)

	token, err := svc.Authenticate(ctx)

	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token.AccessToken)
	assert.Equal(t, "ref-xyz", token.RefreshToken)
}

func TestAuthService_Authenticate_TransportFailure(t *testing.T) {
	tests := []struct {
		name       string
		adapterErr error
	}{
		{name: "401 from auth endpoint", adapterErr: adapter.ErrUnauthorized},
		{name: "500 from auth endpoint", adapterErr: adapter.ErrInternalServerError},
		{name: "network failure", adapterErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			mockAdapter.EXPECT().Authenticate(ctx).Return(models.TokenResponse{}, tt.adapterErr)

			_, err := svc.Authenticate(ctx)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAuthentication)
			assert.Contains(t, err.Error(), tt.adapterErr.Error(), "transport detail must be preserved")
		})
	}
}

func TestAuthService_Authenticate_MissingAccessToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// 2xx с телом без access_token — ошибка вне таксономии
	mockAdapter.EXPECT().Authenticate(ctx).Return(models.TokenResponse{TokenType: "Bearer"}, nil)

	_, err := svc.Authenticate(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedTokenResponse)
	assert.NotErrorIs(t, err, ErrAuthentication)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestAuthService_Refresh_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Refresh(ctx, "ref-xyz").Return(models.TokenResponse{AccessToken: "tok-new"}, nil)

	token, err := svc.Refresh(ctx, "ref-xyz")

	require.NoError(t, err)
	assert.Equal(t, "tok-new", token.AccessToken)
}

func TestAuthService_Refresh_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Refresh(ctx, "ref-xyz").Return(models.TokenResponse{}, adapter.ErrUnauthorized)

	_, err := svc.Refresh(ctx, "ref-xyz")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
}
