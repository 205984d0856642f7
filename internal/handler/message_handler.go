package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"intranet-api/internal/domain"
	"intranet-api/internal/metrics"
	"intranet-api/internal/response"
	"intranet-api/internal/service"
)

// MessageHandler handles messaging HTTP requests
type MessageHandler struct {
	messageService *service.MessageService
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *service.MessageService, m *metrics.Metrics, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{messageService: messageService, metrics: m, logger: logger}
}

// List godoc
// @Summary List all messages a company sent or received
// @Tags Messages
// @Produce json
// @Security BearerAuth
// @Param companyId query string true "Company ID"
// @Success 200 {array} domain.MessageResponse
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	companyID, err := uuid.Parse(c.Query("companyId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid company ID")
		return
	}

	messages, err := h.messageService.ListForCompany(c.Request.Context(), companyID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Send godoc
// @Summary Send a message between two companies
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.SendMessageRequest true "Send message request"
// @Success 201 {object} domain.MessageResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.metrics.MessagesSentTotal.Inc()
	c.JSON(http.StatusCreated, message)
}
