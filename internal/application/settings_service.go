package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// SettingsService reads and writes platform configuration rows. These rows
// are the single source of truth for admin toggles; nothing is kept
// client-side.
type SettingsService struct {
	settings domain.SettingRepository
	log      zerolog.Logger
}

func NewSettingsService(settings domain.SettingRepository, log zerolog.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		log:      log.With().Str("component", "settings-service").Logger(),
	}
}

func (s *SettingsService) List(ctx context.Context, scope, scopeID string) ([]*domain.PlatformSetting, error) {
	if scope == "" {
		scope = domain.SettingScopeGlobal
	}
	return s.settings.ListByScope(ctx, scope, scopeID)
}

func (s *SettingsService) Put(ctx context.Context, scope, scopeID, key, value string) (*domain.PlatformSetting, error) {
	if scope == "" || key == "" {
		return nil, fmt.Errorf("%w: scope and key are required", domain.ErrValidation)
	}
	setting := &domain.PlatformSetting{
		ID:        uuid.NewString(),
		Scope:     scope,
		ScopeID:   scopeID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.settings.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	s.log.Info().Str("scope", scope).Str("key", key).Msg("setting updated")
	return setting, nil
}
