package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"intranet-api/internal/domain"
	"intranet-api/internal/metrics"
	"intranet-api/internal/middleware"
	"intranet-api/internal/response"
	"intranet-api/internal/service"
)

// ForumHandler handles forum HTTP requests
type ForumHandler struct {
	forumService *service.ForumService
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewForumHandler creates a new ForumHandler
func NewForumHandler(forumService *service.ForumService, m *metrics.Metrics, logger *zap.Logger) *ForumHandler {
	return &ForumHandler{forumService: forumService, metrics: m, logger: logger}
}

// ListPosts godoc
// @Summary List forum posts with comment counts
// @Tags Forum
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PostResponse
// @Router /forum/posts [get]
func (h *ForumHandler) ListPosts(c *gin.Context) {
	posts, err := h.forumService.ListPosts(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary Create a forum post
// @Tags Forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreatePostRequest true "Create post request"
// @Success 201 {object} domain.Post
// @Failure 400 {object} response.ErrorResponse
// @Router /forum/posts [post]
func (h *ForumHandler) CreatePost(c *gin.Context) {
	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	post, err := h.forumService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.metrics.PostsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, post)
}

// DeletePost godoc
// @Summary Delete a forum post and its comments
// @Tags Forum
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forum/posts/{postId} [delete]
func (h *ForumHandler) DeletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	if err := h.forumService.DeletePost(c.Request.Context(), postID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Post deleted"})
}

// ListComments godoc
// @Summary List comments of a post
// @Tags Forum
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Success 200 {array} domain.CommentResponse
// @Router /forum/posts/{postId}/comments [get]
func (h *ForumHandler) ListComments(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	comments, err := h.forumService.ListComments(c.Request.Context(), postID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags Forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post ID"
// @Param request body domain.CreateCommentRequest true "Create comment request"
// @Success 201 {object} domain.CommentResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /forum/posts/{postId}/comments [post]
func (h *ForumHandler) CreateComment(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid post ID")
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	userID, _ := middleware.GetUserID(c)
	comment, err := h.forumService.CreateComment(c.Request.Context(), userID, postID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
