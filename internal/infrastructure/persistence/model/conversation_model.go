package model

import (
	"time"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// ConversationModel carries a composite unique index on the school/supplier
// pair. The index is what makes first-contact insertion race-free.
type ConversationModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id"`
	ConversationID string    `gorm:"uniqueIndex:idx_conversation_id;size:36;not null;column:conversation_id"`
	SchoolID       string    `gorm:"uniqueIndex:idx_conversation_pair;size:36;not null;column:school_id"`
	SupplierID     string    `gorm:"uniqueIndex:idx_conversation_pair;size:36;not null;column:supplier_id"`
	LastMessageAt  time.Time `gorm:"not null;column:last_message_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime;not null;column:created_at"`
	UpdatedAt      time.Time `gorm:"not null;column:updated_at"`
}

func (ConversationModel) TableName() string { return "conversations" }

func (m *ConversationModel) ToDomain() *domain.Conversation {
	return &domain.Conversation{
		ID:            m.ConversationID,
		SchoolID:      m.SchoolID,
		SupplierID:    m.SupplierID,
		LastMessageAt: m.LastMessageAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToConversationModel(d *domain.Conversation) *ConversationModel {
	return &ConversationModel{
		ConversationID: d.ID,
		SchoolID:       d.SchoolID,
		SupplierID:     d.SupplierID,
		LastMessageAt:  d.LastMessageAt,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
