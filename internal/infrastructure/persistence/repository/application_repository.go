package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/persistence/model"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Save(ctx context.Context, a *domain.SupplierApplication) error {
	m := model.ToApplicationModel(a)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*domain.SupplierApplication, error) {
	var m model.ApplicationModel
	if err := r.db.WithContext(ctx).
		Where("application_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *ApplicationRepository) ListBySchool(ctx context.Context, schoolID string) ([]*domain.SupplierApplication, error) {
	return r.list(ctx, "school_id = ?", schoolID)
}

func (r *ApplicationRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.SupplierApplication, error) {
	return r.list(ctx, "supplier_id = ?", supplierID)
}

func (r *ApplicationRepository) list(ctx context.Context, query string, arg string) ([]*domain.SupplierApplication, error) {
	var models []*model.ApplicationModel
	if err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at desc").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	applications := make([]*domain.SupplierApplication, len(models))
	for i, m := range models {
		applications[i] = m.ToDomain()
	}
	return applications, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("application_id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
