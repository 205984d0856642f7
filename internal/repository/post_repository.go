package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
)

// PostRepository defines forum post persistence operations
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListWithMeta(ctx context.Context, limit int) ([]domain.PostResponse, error)
	ListAll(ctx context.Context) ([]domain.Post, error)
	DeleteWithComments(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListWithMeta returns posts joined with their author company and comment
// counts, newest first, capped at limit
func (r *postRepository) ListWithMeta(ctx context.Context, limit int) ([]domain.PostResponse, error) {
	var posts []domain.PostResponse
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id AS post_id, p.title, p.content, p.category, p.company_id,
		       c.name AS company_name,
		       (SELECT COUNT(*) FROM comments cm WHERE cm.post_id = p.id) AS comment_count,
		       p.created_at
		FROM posts p
		JOIN companies c ON c.id = p.company_id
		ORDER BY p.created_at DESC
		LIMIT ?`, limit).Scan(&posts).Error
	return posts, err
}

func (r *postRepository) ListAll(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// DeleteWithComments removes the post's comments first, then the post
func (r *postRepository) DeleteWithComments(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Post{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Post{}).Count(&count).Error
	return count, err
}
