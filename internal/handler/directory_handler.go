package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intranet-api/internal/service"
)

// DirectoryHandler serves the company directory
type DirectoryHandler struct {
	directoryService *service.DirectoryService
	logger           *zap.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directoryService *service.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService, logger: logger}
}

// List godoc
// @Summary List active companies
// @Tags Directory
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.CompanyResponse
// @Router /companies [get]
func (h *DirectoryHandler) List(c *gin.Context) {
	companies, err := h.directoryService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}
