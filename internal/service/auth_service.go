package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
	"intranet-api/internal/repository"
	"intranet-api/internal/response"
)

// AuthService handles login, logout and token validation. Tokens are signed
// JWTs recorded in the session store, so revocation works.
type AuthService struct {
	users     repository.UserRepository
	sessions  SessionStore
	secretKey []byte
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, sessions SessionStore, secretKey string, tokenTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login checks credentials and the optional role, then issues a token.
// Every failure mode maps to the same UNAUTHORIZED so the response does not
// leak which part was wrong.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorizedError("Invalid credentials")
		}
		return nil, err
	}

	if req.Role != nil && user.Role != *req.Role {
		return nil, response.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, token, user.ID, s.tokenTTL); err != nil {
		return nil, err
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return &domain.LoginResponse{Token: token, User: user.ToAuthResponse()}, nil
}

// Logout revokes the session behind the token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// ValidateToken parses the JWT and checks the session is still live
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (uuid.UUID, domain.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", response.NewUnauthorizedError("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", response.NewUnauthorizedError("Invalid token")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", response.NewUnauthorizedError("Invalid token")
	}
	roleStr, _ := claims["role"].(string)

	live, err := s.sessions.Exists(ctx, tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if !live {
		return uuid.Nil, "", response.NewUnauthorizedError("Session expired")
	}

	return userID, domain.Role(roleStr), nil
}

func (s *AuthService) signToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}
