package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
	"intranet-api/internal/schema"
)

// CompanyRepository defines company persistence operations
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	CreateWithUser(ctx context.Context, company *domain.Company, user *domain.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type companyRepository struct {
	db      *gorm.DB
	catalog *schema.Catalog
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *gorm.DB, catalog *schema.Catalog) CompanyRepository {
	return &companyRepository{db: db, catalog: catalog}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// CreateWithUser creates a company and its paired account atomically
func (r *companyRepository) CreateWithUser(ctx context.Context, company *domain.Company, user *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		user.CompanyID = &company.ID
		return tx.Create(user).Error
	})
}

func (r *companyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// List reads companies through the column catalog so optional columns an
// external schema does not carry come back as null instead of erroring.
func (r *companyRepository) List(ctx context.Context, activeOnly bool) ([]domain.Company, error) {
	cols := []string{"id", "name", "email", "status", "created_at", "updated_at"}
	for _, col := range schema.CompanyOptionalColumns {
		if r.catalog.HasColumn("companies", col) {
			cols = append(cols, col)
		} else {
			cols = append(cols, "NULL AS "+col)
		}
	}

	query := fmt.Sprintf("SELECT %s FROM companies", strings.Join(cols, ", "))
	if activeOnly {
		query += " WHERE status = 'active'"
	}
	query += " ORDER BY name ASC"

	var companies []domain.Company
	err := r.db.WithContext(ctx).Raw(query).Scan(&companies).Error
	return companies, err
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

// DeleteCascade removes the company and every dependent row in dependency
// order: messages, comments, posts, settings, users, then the company itself.
func (r *companyRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sender_company_id = ? OR receiver_company_id = ?", id, id).
			Delete(&domain.Message{}).Error; err != nil {
			return err
		}

		// Comments on the company's posts
		if err := tx.Exec(
			"DELETE FROM comments WHERE post_id IN (SELECT id FROM posts WHERE company_id = ?)", id,
		).Error; err != nil {
			return err
		}
		// Comments authored by the company, wherever that column lives
		if col, ok := r.catalog.Resolve("comments", "company_id", "companyId"); ok {
			if err := tx.Exec(
				fmt.Sprintf("DELETE FROM comments WHERE %q = ?", col), id,
			).Error; err != nil {
				return err
			}
		}
		// Comments authored by the company's users, when the schema links
		// comments to users. Must run while the users still exist.
		if col, ok := r.catalog.Resolve("comments", "user_id", "userId"); ok {
			if err := tx.Exec(
				fmt.Sprintf("DELETE FROM comments WHERE %q IN (SELECT id FROM users WHERE company_id = ?)", col), id,
			).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("company_id = ?", id).Delete(&domain.Post{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM user_settings WHERE user_id IN (SELECT id FROM users WHERE company_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&domain.User{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&domain.Company{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Company{}).Count(&count).Error
	return count, err
}
