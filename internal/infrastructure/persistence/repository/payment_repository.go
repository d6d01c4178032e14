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

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Save(ctx context.Context, p *domain.RegistrationPayment) error {
	m := model.ToPaymentModel(p)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.RegistrationPayment, error) {
	var m model.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("payment_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *PaymentRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.RegistrationPayment, error) {
	var models []*model.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at desc").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	payments := make([]*domain.RegistrationPayment, len(models))
	for i, m := range models {
		payments[i] = m.ToDomain()
	}
	return payments, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus, providerRef string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_id = ?", id).
		Updates(map[string]any{
			"status":       string(status),
			"provider_ref": providerRef,
			"updated_at":   at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update payment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
