package model

import (
	"time"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// SettingModel is unique per (scope, scope_id, key) so Upsert can target the
// natural key directly.
type SettingModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id"`
	SettingID string    `gorm:"uniqueIndex:idx_setting_id;size:36;not null;column:setting_id"`
	Scope     string    `gorm:"uniqueIndex:idx_setting_key;size:30;not null;column:scope"`
	ScopeID   string    `gorm:"uniqueIndex:idx_setting_key;size:36;column:scope_id"`
	Key       string    `gorm:"uniqueIndex:idx_setting_key;size:50;not null;column:key"`
	Value     string    `gorm:"size:255;not null;column:value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;column:updated_at"`
}

func (SettingModel) TableName() string { return "platform_settings" }

func (m *SettingModel) ToDomain() *domain.PlatformSetting {
	return &domain.PlatformSetting{
		ID:        m.SettingID,
		Scope:     m.Scope,
		ScopeID:   m.ScopeID,
		Key:       m.Key,
		Value:     m.Value,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToSettingModel(d *domain.PlatformSetting) *SettingModel {
	return &SettingModel{
		SettingID: d.ID,
		Scope:     d.Scope,
		ScopeID:   d.ScopeID,
		Key:       d.Key,
		Value:     d.Value,
		UpdatedAt: d.UpdatedAt,
	}
}
