package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"intranet-api/internal/domain"
	"intranet-api/internal/response"
	"intranet-api/internal/service"
)

// AdminHandler handles the admin panel HTTP requests
type AdminHandler struct {
	adminService *service.AdminService
	logger       *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService *service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{adminService: adminService, logger: logger}
}

// ListCompanies returns every company record
func (h *AdminHandler) ListCompanies(c *gin.Context) {
	companies, err := h.adminService.ListCompanies(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany returns one company record
func (h *AdminHandler) GetCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid company ID")
		return
	}

	company, err := h.adminService.GetCompany(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// CreateCompany creates a company, optionally with a paired account
func (h *AdminHandler) CreateCompany(c *gin.Context) {
	var req domain.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	company, err := h.adminService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// UpdateCompany applies a partial update to a company record
func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid company ID")
		return
	}

	var req domain.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	company, err := h.adminService.UpdateCompany(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// DeleteCompany removes a company and all its dependent rows
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	id, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid company ID")
		return
	}

	if err := h.adminService.DeleteCompany(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Message: "Company deleted"})
}

// Summary returns the dashboard entity counts
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.adminService.Summary(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ListUsers returns every account
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListPosts returns every forum post
func (h *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := h.adminService.ListPosts(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListMessages returns every message
func (h *AdminHandler) ListMessages(c *gin.Context) {
	messages, err := h.adminService.ListMessages(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
