package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
	"intranet-api/internal/schema"
)

// CommentAuthor is the resolved author reference for a comment insert: the
// column the live schema carries and the value going into it.
type CommentAuthor struct {
	Column string
	Value  interface{}
}

// CommentRepository defines forum comment persistence operations
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment, author CommentAuthor) error
	ListByPostID(ctx context.Context, postID uuid.UUID) ([]domain.CommentResponse, error)
}

type commentRepository struct {
	db      *gorm.DB
	catalog *schema.Catalog
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB, catalog *schema.Catalog) CommentRepository {
	return &commentRepository{db: db, catalog: catalog}
}

// Create inserts the comment writing the author into the single resolved
// column. The column name comes from the startup catalog, never from input.
func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment, author CommentAuthor) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(
		"INSERT INTO comments (id, post_id, content, %q, created_at) VALUES (?, ?, ?, ?, ?)",
		author.Column,
	)
	return r.db.WithContext(ctx).
		Exec(query, comment.ID, comment.PostID, comment.Content, author.Value, comment.CreatedAt).Error
}

// ListByPostID reads comments with whatever author columns the schema has,
// joining out the author display name.
func (r *commentRepository) ListByPostID(ctx context.Context, postID uuid.UUID) ([]domain.CommentResponse, error) {
	selects := []string{"cm.id AS comment_id", "cm.post_id", "cm.content", "cm.created_at"}
	joins := []string{}
	nameExprs := []string{}

	if col, ok := r.catalog.Resolve("comments", "company_id", "companyId"); ok {
		selects = append(selects, fmt.Sprintf("cm.%q AS company_id", col))
		joins = append(joins, fmt.Sprintf("LEFT JOIN companies co ON co.id = cm.%q", col))
		nameExprs = append(nameExprs, "co.name")
	}
	if col, ok := r.catalog.Resolve("comments", "user_id", "userId"); ok {
		selects = append(selects, fmt.Sprintf("cm.%q AS user_id", col))
		joins = append(joins, fmt.Sprintf("LEFT JOIN users u ON u.id = cm.%q", col))
		nameExprs = append(nameExprs, "u.name")
	}
	if r.catalog.HasColumn("comments", "author") {
		nameExprs = append(nameExprs, "cm.author")
	}

	authorName := "''"
	if len(nameExprs) > 0 {
		authorName = fmt.Sprintf("COALESCE(%s, '')", strings.Join(nameExprs, ", "))
	}
	selects = append(selects, authorName+" AS author_name")

	query := fmt.Sprintf(
		"SELECT %s FROM comments cm %s WHERE cm.post_id = ? ORDER BY cm.created_at ASC",
		strings.Join(selects, ", "), strings.Join(joins, " "),
	)

	var comments []domain.CommentResponse
	err := r.db.WithContext(ctx).Raw(query, postID).Scan(&comments).Error
	return comments, err
}
