package model

import (
	"time"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

type RatingModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id"`
	RatingID   string    `gorm:"uniqueIndex:idx_rating_id;size:36;not null;column:rating_id"`
	SupplierID string    `gorm:"uniqueIndex:idx_rating_pair;size:36;not null;column:supplier_id"`
	SchoolID   string    `gorm:"uniqueIndex:idx_rating_pair;size:36;not null;column:school_id"`
	Stars      int       `gorm:"not null;column:stars"`
	Comment    string    `gorm:"type:text;column:comment"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null;column:created_at"`
	UpdatedAt  time.Time `gorm:"not null;column:updated_at"`
}

func (RatingModel) TableName() string { return "supplier_ratings" }

func (m *RatingModel) ToDomain() *domain.SupplierRating {
	return &domain.SupplierRating{
		ID:         m.RatingID,
		SupplierID: m.SupplierID,
		SchoolID:   m.SchoolID,
		Stars:      m.Stars,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToRatingModel(d *domain.SupplierRating) *RatingModel {
	return &RatingModel{
		RatingID:   d.ID,
		SupplierID: d.SupplierID,
		SchoolID:   d.SchoolID,
		Stars:      d.Stars,
		Comment:    d.Comment,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
