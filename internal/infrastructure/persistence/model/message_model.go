package model

import (
	"time"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

type MessageModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id"`
	MessageID      string    `gorm:"uniqueIndex:idx_message_id;size:36;not null;column:message_id"`
	ConversationID string    `gorm:"index:idx_message_conversation;size:36;not null;column:conversation_id"`
	SenderID       string    `gorm:"index:idx_message_sender;size:36;not null;column:sender_id"`
	SenderRole     string    `gorm:"size:20;not null;column:sender_role"`
	RecipientID    string    `gorm:"index:idx_message_recipient;size:36;not null;column:recipient_id"`
	RecipientRole  string    `gorm:"size:20;not null;column:recipient_role"`
	Content        string    `gorm:"type:text;not null;column:content"`
	Read           bool      `gorm:"not null;default:false;column:read"`
	CreatedAt      time.Time `gorm:"autoCreateTime;not null;column:created_at"`
}

func (MessageModel) TableName() string { return "messages" }

func (m *MessageModel) ToDomain() *domain.Message {
	return &domain.Message{
		ID:             m.MessageID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderRole:     domain.Role(m.SenderRole),
		RecipientID:    m.RecipientID,
		RecipientRole:  domain.Role(m.RecipientRole),
		Content:        m.Content,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

func ToMessageModel(d *domain.Message) *MessageModel {
	return &MessageModel{
		MessageID:      d.ID,
		ConversationID: d.ConversationID,
		SenderID:       d.SenderID,
		SenderRole:     d.SenderRole.String(),
		RecipientID:    d.RecipientID,
		RecipientRole:  d.RecipientRole.String(),
		Content:        d.Content,
		Read:           d.Read,
		CreatedAt:      d.CreatedAt,
	}
}
