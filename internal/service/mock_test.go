package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"intranet-api/internal/domain"
	"intranet-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	UpdateFunc      func(ctx context.Context, user *domain.User) error
	ListFunc        func(ctx context.Context) ([]domain.User, error)
	CountFunc       func(ctx context.Context) (int64, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	CreateFunc         func(ctx context.Context, company *domain.Company) error
	CreateWithUserFunc func(ctx context.Context, company *domain.Company, user *domain.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ListFunc           func(ctx context.Context, activeOnly bool) ([]domain.Company, error)
	UpdateFunc         func(ctx context.Context, company *domain.Company) error
	DeleteCascadeFunc  func(ctx context.Context, id uuid.UUID) error
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, company)
	}
	return nil
}

func (m *MockCompanyRepository) CreateWithUser(ctx context.Context, company *domain.Company, user *domain.User) error {
	if m.CreateWithUserFunc != nil {
		return m.CreateWithUserFunc(ctx, company, user)
	}
	return nil
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCompanyRepository) List(ctx context.Context, activeOnly bool) ([]domain.Company, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, company)
	}
	return nil
}

func (m *MockCompanyRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

func (m *MockCompanyRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	CreateFunc             func(ctx context.Context, post *domain.Post) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListWithMetaFunc       func(ctx context.Context, limit int) ([]domain.PostResponse, error)
	ListAllFunc            func(ctx context.Context) ([]domain.Post, error)
	DeleteWithCommentsFunc func(ctx context.Context, id uuid.UUID) error
	CountFunc              func(ctx context.Context) (int64, error)
}

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPostRepository) ListWithMeta(ctx context.Context, limit int) ([]domain.PostResponse, error) {
	if m.ListWithMetaFunc != nil {
		return m.ListWithMetaFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockPostRepository) ListAll(ctx context.Context) ([]domain.Post, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPostRepository) DeleteWithComments(ctx context.Context, id uuid.UUID) error {
	if m.DeleteWithCommentsFunc != nil {
		return m.DeleteWithCommentsFunc(ctx, id)
	}
	return nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc       func(ctx context.Context, comment *domain.Comment, author repository.CommentAuthor) error
	ListByPostIDFunc func(ctx context.Context, postID uuid.UUID) ([]domain.CommentResponse, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment, author repository.CommentAuthor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment, author)
	}
	return nil
}

func (m *MockCommentRepository) ListByPostID(ctx context.Context, postID uuid.UUID) ([]domain.CommentResponse, error) {
	if m.ListByPostIDFunc != nil {
		return m.ListByPostIDFunc(ctx, postID)
	}
	return nil, nil
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	CreateFunc         func(ctx context.Context, message *domain.Message) error
	ListForCompanyFunc func(ctx context.Context, companyID uuid.UUID) ([]domain.Message, error)
	ListAllFunc        func(ctx context.Context) ([]domain.Message, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *MockMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, message)
	}
	return nil
}

func (m *MockMessageRepository) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Message, error) {
	if m.ListForCompanyFunc != nil {
		return m.ListForCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

func (m *MockMessageRepository) ListAll(ctx context.Context) ([]domain.Message, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockMessageRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	GetFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertFunc func(ctx context.Context, settings *domain.UserSettings) error
}

func (m *MockSettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, settings *domain.UserSettings) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, settings)
	}
	return nil
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	SaveFunc   func(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	ExistsFunc func(ctx context.Context, token string) (bool, error)
	RevokeFunc func(ctx context.Context, token string) error
}

func (m *MockSessionStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, token, userID, ttl)
	}
	return nil
}

func (m *MockSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, token)
	}
	return true, nil
}

func (m *MockSessionStore) Revoke(ctx context.Context, token string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, token)
	}
	return nil
}
