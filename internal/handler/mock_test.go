package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"intranet-api/internal/domain"
	"intranet-api/internal/metrics"
	"intranet-api/internal/repository"
)

// newTestMetrics builds metrics on a private registry so parallel tests
// never collide on the default one
func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

// stubUserRepo is a func-field stub for repository.UserRepository
type stubUserRepo struct {
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.FindByEmailFunc != nil {
		return s.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (s *stubUserRepo) List(ctx context.Context) ([]domain.User, error)     { return nil, nil }
func (s *stubUserRepo) Count(ctx context.Context) (int64, error)            { return 0, nil }

// stubCompanyRepo is a func-field stub for repository.CompanyRepository
type stubCompanyRepo struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
}

func (s *stubCompanyRepo) Create(ctx context.Context, company *domain.Company) error { return nil }

func (s *stubCompanyRepo) CreateWithUser(ctx context.Context, company *domain.Company, user *domain.User) error {
	return nil
}

func (s *stubCompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubCompanyRepo) List(ctx context.Context, activeOnly bool) ([]domain.Company, error) {
	return nil, nil
}

func (s *stubCompanyRepo) Update(ctx context.Context, company *domain.Company) error { return nil }
func (s *stubCompanyRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error     { return nil }
func (s *stubCompanyRepo) Count(ctx context.Context) (int64, error)                  { return 0, nil }

// stubPostRepo is a func-field stub for repository.PostRepository
type stubPostRepo struct {
	CreateFunc       func(ctx context.Context, post *domain.Post) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListWithMetaFunc func(ctx context.Context, limit int) ([]domain.PostResponse, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *domain.Post) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if s.FindByIDFunc != nil {
		return s.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubPostRepo) ListWithMeta(ctx context.Context, limit int) ([]domain.PostResponse, error) {
	if s.ListWithMetaFunc != nil {
		return s.ListWithMetaFunc(ctx, limit)
	}
	return nil, nil
}

func (s *stubPostRepo) ListAll(ctx context.Context) ([]domain.Post, error)        { return nil, nil }
func (s *stubPostRepo) DeleteWithComments(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubPostRepo) Count(ctx context.Context) (int64, error)                  { return 0, nil }

// stubCommentRepo is a func-field stub for repository.CommentRepository
type stubCommentRepo struct {
	CreateFunc func(ctx context.Context, comment *domain.Comment, author repository.CommentAuthor) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *domain.Comment, author repository.CommentAuthor) error {
	if s.CreateFunc != nil {
		return s.CreateFunc(ctx, comment, author)
	}
	return nil
}

func (s *stubCommentRepo) ListByPostID(ctx context.Context, postID uuid.UUID) ([]domain.CommentResponse, error) {
	return nil, nil
}

// stubSessionStore is a func-field stub for service.SessionStore
type stubSessionStore struct {
	ExistsFunc func(ctx context.Context, token string) (bool, error)
}

func (s *stubSessionStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return nil
}

func (s *stubSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	if s.ExistsFunc != nil {
		return s.ExistsFunc(ctx, token)
	}
	return true, nil
}

func (s *stubSessionStore) Revoke(ctx context.Context, token string) error { return nil }
