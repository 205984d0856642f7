package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a forum post authored by a company
type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"postId"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  string    `gorm:"default:'general'" json:"category"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

// Comment represents a forum comment. The author reference depends on the
// live schema: company-linked, user-linked, or a generic author name column.
// The model carries both foreign keys; the repository only writes the one
// the column catalog resolved.
type Comment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"commentId"`
	PostID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"postId"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index" json:"companyId,omitempty"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}

// CreatePostRequest represents a forum post creation request. The effective
// company is the explicit CompanyID, or the caller's company when absent.
type CreatePostRequest struct {
	Title     string     `json:"title" binding:"required,max=200"`
	Content   string     `json:"content" binding:"required"`
	Category  string     `json:"category,omitempty"`
	CompanyID *uuid.UUID `json:"companyId,omitempty"`
}

// CreateCommentRequest represents a comment submission
type CreateCommentRequest struct {
	Content   string     `json:"content" binding:"required"`
	CompanyID *uuid.UUID `json:"companyId,omitempty"`
}

// PostResponse represents a forum post with its listing metadata
type PostResponse struct {
	PostID       uuid.UUID `json:"postId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	CompanyID    uuid.UUID `json:"companyId"`
	CompanyName  string    `json:"companyName"`
	CommentCount int64     `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CommentResponse represents a comment with its resolved author
type CommentResponse struct {
	CommentID  uuid.UUID  `json:"commentId"`
	PostID     uuid.UUID  `json:"postId"`
	Content    string     `json:"content"`
	CompanyID  *uuid.UUID `json:"companyId,omitempty"`
	UserID     *uuid.UUID `json:"userId,omitempty"`
	AuthorName string     `json:"authorName"`
	CreatedAt  time.Time  `json:"createdAt"`
}
