package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/persistence/model"
)

type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

func (r *ConversationRepository) FindByID(ctx context.Context, id string) (*domain.Conversation, error) {
	var m model.ConversationModel
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *ConversationRepository) FindByPair(ctx context.Context, schoolID, supplierID string) (*domain.Conversation, error) {
	var m model.ConversationModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND supplier_id = ?", schoolID, supplierID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find conversation by pair: %w", err)
	}
	return m.ToDomain(), nil
}

// InsertIfAbsent relies on the unique (school_id, supplier_id) index:
// ON CONFLICT DO NOTHING turns a lost race into a no-op instead of a
// duplicate row.
func (r *ConversationRepository) InsertIfAbsent(ctx context.Context, c *domain.Conversation) error {
	m := model.ToConversationModel(c)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "school_id"}, {Name: "supplier_id"}},
			DoNothing: true,
		}).
		Create(m).Error; err != nil {
		return fmt.Errorf("failed to insert conversation: %w", err)
	}
	return nil
}

func (r *ConversationRepository) ListBySchool(ctx context.Context, schoolID string) ([]*domain.Conversation, error) {
	return r.list(ctx, "school_id = ?", schoolID)
}

func (r *ConversationRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.Conversation, error) {
	return r.list(ctx, "supplier_id = ?", supplierID)
}

func (r *ConversationRepository) list(ctx context.Context, query string, arg string) ([]*domain.Conversation, error) {
	var models []*model.ConversationModel
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("last_message_at desc").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	conversations := make([]*domain.Conversation, len(models))
	for i, m := range models {
		conversations[i] = m.ToDomain()
	}
	return conversations, nil
}

func (r *ConversationRepository) TouchLastMessage(ctx context.Context, id string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("conversation_id = ?", id).
		Updates(map[string]any{
			"last_message_at": at,
			"updated_at":      at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to touch conversation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
