package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
)

func TestAuthAndRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Rota pública não exige token",
			path:       "/healthcheck",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem cabeçalho Authorization",
			path:       "/v1/sync",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token expirado",
			path:   "/v1/sync",
			header: "Bearer velho",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").Return(nil, authenticating.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "Perfil de leitura não acessa rota de administrador",
			path:   "/v1/sync",
			header: "Bearer leitor",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("leitor").Return(&domain.Claims{UserID: 2, UserRoleID: domain.RoleViewer}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "Administrador acessa",
			path:   "/v1/sync",
			header: "Bearer admin",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("admin").Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			var handler http.Handler = final
			if tt.path != "/healthcheck" {
				handler = AdminOnly()(final)
			}
			handler = AuthMiddleware(auth)(handler)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
