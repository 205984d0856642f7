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
)

// MessageService handles company-to-company direct messages
type MessageService struct {
	messages  repository.MessageRepository
	companies repository.CompanyRepository
	logger    *zap.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messages repository.MessageRepository, companies repository.CompanyRepository, logger *zap.Logger) *MessageService {
	return &MessageService{messages: messages, companies: companies, logger: logger}
}

// Send inserts a message after checking both endpoints exist, so a message
// never references a missing company
func (s *MessageService) Send(ctx context.Context, req *domain.SendMessageRequest) (*domain.MessageResponse, error) {
	for _, companyID := range []uuid.UUID{req.SenderCompanyID, req.ReceiverCompanyID} {
		if _, err := s.companies.FindByID(ctx, companyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Company not found")
			}
			return nil, err
		}
	}

	message := &domain.Message{
		SenderCompanyID:   req.SenderCompanyID,
		ReceiverCompanyID: req.ReceiverCompanyID,
		Content:           req.Content,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("Message sent",
		zap.String("sender", req.SenderCompanyID.String()),
		zap.String("receiver", req.ReceiverCompanyID.String()))

	resp := message.ToResponse()
	return &resp, nil
}

// ListForCompany returns every message the company sent or received,
// ascending by time
func (s *MessageService) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]domain.MessageResponse, error) {
	messages, err := s.messages.ListForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	responses := make([]domain.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, messages[i].ToResponse())
	}
	return responses, nil
}
