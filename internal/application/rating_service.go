package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// RatingService lets schools rate suppliers. Whether rating is open is
// controlled by platform settings rows, not by anything client-local:
// a per-supplier switch and a section-wide switch, both defaulting to on.
type RatingService struct {
	ratings  domain.RatingRepository
	settings domain.SettingRepository
	log      zerolog.Logger
}

func NewRatingService(ratings domain.RatingRepository, settings domain.SettingRepository, log zerolog.Logger) *RatingService {
	return &RatingService{
		ratings:  ratings,
		settings: settings,
		log:      log.With().Str("component", "rating-service").Logger(),
	}
}

// Submit records or updates the school's rating of the supplier. One
// rating per (school, supplier) pair; re-rating overwrites in place.
func (s *RatingService) Submit(ctx context.Context, schoolID, supplierID string, stars int, comment string) (*domain.SupplierRating, error) {
	if schoolID == "" || supplierID == "" {
		return nil, fmt.Errorf("%w: school and supplier ids are required", domain.ErrValidation)
	}
	if stars < 1 || stars > 5 {
		return nil, fmt.Errorf("%w: stars must be between 1 and 5", domain.ErrValidation)
	}

	enabled, err := s.ratingEnabled(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, domain.ErrRatingDisabled
	}

	now := time.Now().UTC()
	existing, err := s.ratings.FindByPair(ctx, schoolID, supplierID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Stars = stars
		existing.Comment = comment
		existing.UpdatedAt = now
		if err := s.ratings.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	rating := &domain.SupplierRating{
		ID:         uuid.NewString(),
		SupplierID: supplierID,
		SchoolID:   schoolID,
		Stars:      stars,
		Comment:    comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.ratings.Save(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierRating, error) {
	return s.ratings.ListBySupplier(ctx, supplierID)
}

// Delete removes a rating. Only the school that wrote it may delete it.
func (s *RatingService) Delete(ctx context.Context, ratingID, schoolID string) error {
	rating, err := s.ratings.FindByID(ctx, ratingID)
	if err != nil {
		return err
	}
	if rating == nil {
		return domain.ErrNotFound
	}
	if rating.SchoolID != schoolID {
		return domain.ErrPermissionDenied
	}
	return s.ratings.Delete(ctx, ratingID)
}

// ratingEnabled checks the section-wide switch and the per-supplier
// switch. A missing setting row means enabled.
func (s *RatingService) ratingEnabled(ctx context.Context, supplierID string) (bool, error) {
	sectionOn, err := s.settingBool(ctx, domain.SettingScopeRatingSection, "", domain.SettingKeyRatingEnabled)
	if err != nil {
		return false, err
	}
	if !sectionOn {
		return false, nil
	}
	return s.settingBool(ctx, domain.SettingScopeSupplier, supplierID, domain.SettingKeyRatingEnabled)
}

func (s *RatingService) settingBool(ctx context.Context, scope, scopeID, key string) (bool, error) {
	setting, err := s.settings.Find(ctx, scope, scopeID, key)
	if err != nil {
		return false, err
	}
	if setting == nil {
		return true, nil
	}
	enabled, err := strconv.ParseBool(setting.Value)
	if err != nil {
		s.log.Warn().Str("scope", scope).Str("key", key).Str("value", setting.Value).Msg("unparsable setting value, treating as enabled")
		return true, nil
	}
	return enabled, nil
}
