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

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *domain.LegalComplaint) error {
	m := model.ToComplaintModel(c)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (*domain.LegalComplaint, error) {
	var m model.ComplaintModel
	if err := r.db.WithContext(ctx).
		Where("complaint_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}
	return m.ToDomain(), nil
}

func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*domain.LegalComplaint, error) {
	var models []*model.ComplaintModel
	if err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return toDomainComplaints(models), nil
}

func (r *ComplaintRepository) ListByParty(ctx context.Context, partyID string) ([]*domain.LegalComplaint, error) {
	var models []*model.ComplaintModel
	if err := r.db.WithContext(ctx).
		Where("complainant_id = ? OR respondent_id = ?", partyID, partyID).
		Order("created_at desc").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return toDomainComplaints(models), nil
}

func toDomainComplaints(models []*model.ComplaintModel) []*domain.LegalComplaint {
	complaints := make([]*domain.LegalComplaint, len(models))
	for i, m := range models {
		complaints[i] = m.ToDomain()
	}
	return complaints
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("complaint_id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
