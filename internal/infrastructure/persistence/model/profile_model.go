package model

import (
	"time"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

type ProfileModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement;column:id"`
	ProfileID    string    `gorm:"uniqueIndex:idx_profile_id;size:36;not null;column:profile_id"`
	Name         string    `gorm:"size:100;not null;column:name"`
	Email        string    `gorm:"uniqueIndex:idx_profile_email;size:100;not null;column:email"`
	PasswordHash string    `gorm:"size:255;not null;column:password_hash"`
	Role         string    `gorm:"size:20;not null;column:role"`
	Organization string    `gorm:"size:200;column:organization"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null;column:created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;not null;column:updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }

func (m *ProfileModel) ToDomain() *domain.Profile {
	return &domain.Profile{
		ID:           m.ProfileID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		Organization: m.Organization,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToProfileModel(d *domain.Profile) *ProfileModel {
	return &ProfileModel{
		ProfileID:    d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role.String(),
		Organization: d.Organization,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
