package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a single directed text between two companies
type Message struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"messageId"`
	SenderCompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_message_sender" json:"senderCompanyId"`
	ReceiverCompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_message_receiver" json:"receiverCompanyId"`
	Content           string    `gorm:"type:text;not null" json:"content"`
	CreatedAt         time.Time `gorm:"not null;index" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest represents a message send request
type SendMessageRequest struct {
	SenderCompanyID   uuid.UUID `json:"senderCompanyId" binding:"required"`
	ReceiverCompanyID uuid.UUID `json:"receiverCompanyId" binding:"required"`
	Content           string    `json:"content" binding:"required"`
}

// MessageResponse represents the message response
type MessageResponse struct {
	MessageID         uuid.UUID `json:"messageId"`
	SenderCompanyID   uuid.UUID `json:"senderCompanyId"`
	ReceiverCompanyID uuid.UUID `json:"receiverCompanyId"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() MessageResponse {
	return MessageResponse{
		MessageID:         m.ID,
		SenderCompanyID:   m.SenderCompanyID,
		ReceiverCompanyID: m.ReceiverCompanyID,
		Content:           m.Content,
		CreatedAt:         m.CreatedAt,
	}
}
