package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/persistence/model"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Upsert targets the natural (scope, scope_id, key) index so concurrent
// writers converge on a single row.
func (r *SettingRepository) Upsert(ctx context.Context, s *domain.PlatformSetting) error {
	m := model.ToSettingModel(s)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "scope"}, {Name: "scope_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(m).Error; err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func (r *SettingRepository) Find(ctx context.Context, scope, scopeID, key string) (*domain.PlatformSetting, error) {
	var m model.SettingModel
	if err := r.db.WithContext(ctx).
		Where("scope = ? AND scope_id = ? AND key = ?", scope, scopeID, key).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find setting: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *SettingRepository) ListByScope(ctx context.Context, scope, scopeID string) ([]*domain.PlatformSetting, error) {
	var models []*model.SettingModel
	query := r.db.WithContext(ctx).Where("scope = ?", scope)
	if scopeID != "" {
		query = query.Where("scope_id = ?", scopeID)
	}
	if err := query.Order("key asc").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	settings := make([]*domain.PlatformSetting, len(models))
	for i, m := range models {
		settings[i] = m.ToDomain()
	}
	return settings, nil
}
