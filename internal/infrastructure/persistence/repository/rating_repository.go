package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/persistence/model"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Save(ctx context.Context, rating *domain.SupplierRating) error {
	m := model.ToRatingModel(rating)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create rating: %w", err)
	}
	return nil
}

func (r *RatingRepository) Update(ctx context.Context, rating *domain.SupplierRating) error {
	result := r.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("rating_id = ?", rating.ID).
		Updates(map[string]any{
			"stars":      rating.Stars,
			"comment":    rating.Comment,
			"updated_at": rating.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update rating: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *RatingRepository) FindByID(ctx context.Context, id string) (*domain.SupplierRating, error) {
	var m model.RatingModel
	if err := r.db.WithContext(ctx).
		Where("rating_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rating: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *RatingRepository) FindByPair(ctx context.Context, schoolID, supplierID string) (*domain.SupplierRating, error) {
	var m model.RatingModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ? AND supplier_id = ?", schoolID, supplierID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find rating by pair: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *RatingRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierRating, error) {
	var models []*model.RatingModel
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at desc").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	ratings := make([]*domain.SupplierRating, len(models))
	for i, m := range models {
		ratings[i] = m.ToDomain()
	}
	return ratings, nil
}

func (r *RatingRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("rating_id = ?", id).
		Delete(&model.RatingModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete rating: %w", err)
	}
	return nil
}
