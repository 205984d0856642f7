package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
	"intranet-api/internal/repository"
	"intranet-api/internal/response"
	"intranet-api/internal/schema"
)

// postListLimit caps the forum listing
const postListLimit = 100

// ForumService handles forum posts and comments
type ForumService struct {
	posts     repository.PostRepository
	comments  repository.CommentRepository
	users     repository.UserRepository
	companies repository.CompanyRepository
	catalog   *schema.Catalog
	logger    *zap.Logger
}

// NewForumService creates a new ForumService
func NewForumService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	users repository.UserRepository,
	companies repository.CompanyRepository,
	catalog *schema.Catalog,
	logger *zap.Logger,
) *ForumService {
	return &ForumService{
		posts:     posts,
		comments:  comments,
		users:     users,
		companies: companies,
		catalog:   catalog,
		logger:    logger,
	}
}

// ListPosts returns the newest posts with author and comment metadata
func (s *ForumService) ListPosts(ctx context.Context) ([]domain.PostResponse, error) {
	posts, err := s.posts.ListWithMeta(ctx, postListLimit)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.PostResponse{}
	}
	return posts, nil
}

// CreatePost creates a forum post for the effective company: the explicit
// companyId when given, otherwise the caller's company.
func (s *ForumService) CreatePost(ctx context.Context, userID uuid.UUID, req *domain.CreatePostRequest) (*domain.Post, error) {
	companyID, err := s.resolveCompany(ctx, userID, req.CompanyID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		CompanyID: companyID,
	}
	if post.Category == "" {
		post.Category = "general"
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	s.logger.Info("Post created",
		zap.String("post_id", post.ID.String()),
		zap.String("company_id", companyID.String()))
	return post, nil
}

// DeletePost removes the post and its comments
func (s *ForumService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.posts.DeleteWithComments(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Post not found")
		}
		return err
	}
	return nil
}

// ListComments returns the comments of an existing post
func (s *ForumService) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.CommentResponse, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found")
		}
		return nil, err
	}

	comments, err := s.comments.ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.CommentResponse{}
	}
	return comments, nil
}

// CreateComment inserts a comment with its author written to the single
// column the live schema resolved at startup. A comment never lands with a
// null author; when nothing resolves the request fails.
func (s *ForumService) CreateComment(ctx context.Context, userID uuid.UUID, postID uuid.UUID, req *domain.CreateCommentRequest) (*domain.CommentResponse, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Post not found")
		}
		return nil, err
	}

	comment := &domain.Comment{PostID: postID, Content: req.Content}
	author, resp, err := s.resolveCommentAuthor(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.comments.Create(ctx, comment, author); err != nil {
		return nil, err
	}

	resp.CommentID = comment.ID
	resp.PostID = postID
	resp.Content = comment.Content
	resp.CreatedAt = comment.CreatedAt
	return resp, nil
}

// resolveCompany picks the explicit company or falls back to the caller's
func (s *ForumService) resolveCompany(ctx context.Context, userID uuid.UUID, explicit *uuid.UUID) (uuid.UUID, error) {
	if explicit != nil {
		company, err := s.companies.FindByID(ctx, *explicit)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, response.NewValidationError("Company does not exist")
			}
			return uuid.Nil, err
		}
		return company.ID, nil
	}

	if userID != uuid.Nil {
		user, err := s.users.FindByID(ctx, userID)
		if err == nil && user.CompanyID != nil {
			return *user.CompanyID, nil
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, err
		}
	}

	return uuid.Nil, response.NewValidationError("No company resolves for this post")
}

// resolveCommentAuthor picks the author column and value for the schema the
// service started against
func (s *ForumService) resolveCommentAuthor(ctx context.Context, userID uuid.UUID, req *domain.CreateCommentRequest) (repository.CommentAuthor, *domain.CommentResponse, error) {
	column, kind := s.catalog.CommentAuthor()
	resp := &domain.CommentResponse{}

	switch kind {
	case schema.AuthorCompany:
		companyID, name, err := s.commentCompany(ctx, userID, req.CompanyID)
		if err == nil {
			resp.CompanyID = &companyID
			resp.AuthorName = name
			return repository.CommentAuthor{Column: column, Value: companyID}, resp, nil
		}
		// A user without a company can still comment when the schema also
		// carries a user column.
		if userColumn, ok := s.catalog.CommentUserColumn(); ok && userID != uuid.Nil {
			user, uerr := s.users.FindByID(ctx, userID)
			if uerr != nil {
				return repository.CommentAuthor{}, nil, err
			}
			resp.UserID = &user.ID
			resp.AuthorName = user.Name
			return repository.CommentAuthor{Column: userColumn, Value: user.ID}, resp, nil
		}
		return repository.CommentAuthor{}, nil, err

	case schema.AuthorUser:
		if userID == uuid.Nil {
			return repository.CommentAuthor{}, nil, response.NewValidationError("No author resolves for this comment")
		}
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.CommentAuthor{}, nil, response.NewValidationError("No author resolves for this comment")
			}
			return repository.CommentAuthor{}, nil, err
		}
		resp.UserID = &user.ID
		resp.AuthorName = user.Name
		return repository.CommentAuthor{Column: column, Value: user.ID}, resp, nil

	case schema.AuthorName:
		_, name, err := s.commentCompany(ctx, userID, req.CompanyID)
		if err != nil {
			return repository.CommentAuthor{}, nil, err
		}
		resp.AuthorName = name
		return repository.CommentAuthor{Column: column, Value: name}, resp, nil

	default:
		return repository.CommentAuthor{}, nil, response.NewValidationError("No author resolves for this comment")
	}
}

// commentCompany resolves the authoring company and its display name
func (s *ForumService) commentCompany(ctx context.Context, userID uuid.UUID, explicit *uuid.UUID) (uuid.UUID, string, error) {
	companyID, err := s.resolveCompanyForComment(ctx, userID, explicit)
	if err != nil {
		return uuid.Nil, "", err
	}
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, "", response.NewValidationError("Company does not exist")
		}
		return uuid.Nil, "", err
	}
	return company.ID, company.Name, nil
}

func (s *ForumService) resolveCompanyForComment(ctx context.Context, userID uuid.UUID, explicit *uuid.UUID) (uuid.UUID, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if userID != uuid.Nil {
		user, err := s.users.FindByID(ctx, userID)
		if err == nil && user.CompanyID != nil {
			return *user.CompanyID, nil
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, err
		}
	}
	return uuid.Nil, response.NewValidationError("No author resolves for this comment")
}
