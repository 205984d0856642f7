package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
	"intranet-api/internal/repository"
	"intranet-api/internal/response"
)

// AdminService manages company records and the admin panel listings
type AdminService struct {
	companies repository.CompanyRepository
	users     repository.UserRepository
	posts     repository.PostRepository
	messages  repository.MessageRepository
	logger    *zap.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	companies repository.CompanyRepository,
	users repository.UserRepository,
	posts repository.PostRepository,
	messages repository.MessageRepository,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		companies: companies,
		users:     users,
		posts:     posts,
		messages:  messages,
		logger:    logger,
	}
}

// CreateCompany creates a company record, optionally pairing a company
// account in the same transaction
func (s *AdminService) CreateCompany(ctx context.Context, req *domain.CreateCompanyRequest) (*domain.CompanyResponse, error) {
	company := &domain.Company{
		Name:        req.Name,
		Email:       req.Email,
		Industry:    req.Industry,
		Location:    req.Location,
		Website:     req.Website,
		Phone:       req.Phone,
		Description: req.Description,
		Status:      domain.CompanyStatusActive,
	}

	if req.User == nil {
		if err := s.companies.Create(ctx, company); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.users.FindByEmail(ctx, req.User.Email); err == nil {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A user with this email already exists", "")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.User.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user := &domain.User{
			Email:        req.User.Email,
			PasswordHash: string(hash),
			Role:         domain.RoleCompany,
			Name:         req.User.Name,
		}
		if err := s.companies.CreateWithUser(ctx, company, user); err != nil {
			// The pre-check above can race a concurrent create; the unique
			// index on users.email is the real guard.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, response.NewAppError(response.ErrCodeAlreadyExists, "A user with this email already exists", "")
			}
			return nil, err
		}
	}

	s.logger.Info("Company created",
		zap.String("company_id", company.ID.String()),
		zap.String("name", company.Name))

	resp := company.ToResponse()
	return &resp, nil
}

// GetCompany returns one company record
func (s *AdminService) GetCompany(ctx context.Context, id uuid.UUID) (*domain.CompanyResponse, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Company not found")
		}
		return nil, err
	}
	resp := company.ToResponse()
	return &resp, nil
}

// ListCompanies returns every company record, active or not
func (s *AdminService) ListCompanies(ctx context.Context) ([]domain.CompanyResponse, error) {
	companies, err := s.companies.List(ctx, false)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.CompanyResponse, 0, len(companies))
	for i := range companies {
		responses = append(responses, companies[i].ToResponse())
	}
	return responses, nil
}

// UpdateCompany applies the non-nil fields of the request
func (s *AdminService) UpdateCompany(ctx context.Context, id uuid.UUID, req *domain.UpdateCompanyRequest) (*domain.CompanyResponse, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Company not found")
		}
		return nil, err
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Email != nil {
		company.Email = *req.Email
	}
	if req.Industry != nil {
		company.Industry = req.Industry
	}
	if req.Location != nil {
		company.Location = req.Location
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.Phone != nil {
		company.Phone = req.Phone
	}
	if req.Status != nil {
		company.Status = *req.Status
	}
	if req.Description != nil {
		company.Description = req.Description
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	resp := company.ToResponse()
	return &resp, nil
}

// DeleteCompany removes the company and all its dependent rows
func (s *AdminService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if err := s.companies.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Company not found")
		}
		return err
	}
	s.logger.Info("Company deleted", zap.String("company_id", id.String()))
	return nil
}

// Summary returns the entity counts for the admin dashboard
func (s *AdminService) Summary(ctx context.Context) (*domain.AdminSummary, error) {
	summary := &domain.AdminSummary{}
	var err error
	if summary.Companies, err = s.companies.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Posts, err = s.posts.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Messages, err = s.messages.Count(ctx); err != nil {
		return nil, err
	}
	return summary, nil
}

// ListUsers returns every account for the admin panel
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, nil
}

// ListPosts returns every post for the admin panel
func (s *AdminService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.ListAll(ctx)
}

// ListMessages returns every message for the admin panel
func (s *AdminService) ListMessages(ctx context.Context) ([]domain.MessageResponse, error) {
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, messages[i].ToResponse())
	}
	return responses, nil
}
