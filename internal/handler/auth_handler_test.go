package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
	"intranet-api/internal/service"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw-12345678"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email == "company@example.com" {
				return &domain.User{
					ID:           userID,
					Email:        email,
					PasswordHash: string(hash),
					Role:         domain.RoleCompany,
				}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	authService := service.NewAuthService(users, &stubSessionStore{}, "test-secret", time.Hour, zap.NewNop())
	h := NewAuthHandler(authService, newTestMetrics(), zap.NewNop())

	r := gin.New()
	r.POST("/api/auth/login", h.Login)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       `{"email":"company@example.com","password":"pw-12345678"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       `{"email":"company@example.com","password":"nope-nope"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown email",
			body:       `{"email":"nobody@example.com","password":"pw-12345678"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing password",
			body:       `{"email":"company@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed email",
			body:       `{"email":"not-an-email","password":"pw-12345678"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp domain.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, userID, resp.User.UserID)
				assert.Equal(t, domain.RoleCompany, resp.User.Role)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(&stubUserRepo{}, &stubSessionStore{}, "test-secret", time.Hour, zap.NewNop())
	h := NewAuthHandler(authService, newTestMetrics(), zap.NewNop())

	t.Run("with token on the context", func(t *testing.T) {
		r := gin.New()
		r.POST("/api/auth/logout", func(c *gin.Context) {
			c.Set("token", "some-token")
		}, h.Logout)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("without token on the context", func(t *testing.T) {
		r := gin.New()
		r.POST("/api/auth/logout", h.Logout)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
