package model

import (
	"time"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

type ApplicationModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id"`
	ApplicationID string    `gorm:"uniqueIndex:idx_application_id;size:36;not null;column:application_id"`
	SupplierID    string    `gorm:"index:idx_application_supplier;size:36;not null;column:supplier_id"`
	SchoolID      string    `gorm:"index:idx_application_school;size:36;not null;column:school_id"`
	ServiceType   string    `gorm:"size:100;not null;column:service_type"`
	Proposal      string    `gorm:"type:text;column:proposal"`
	Status        string    `gorm:"size:20;not null;default:pending;column:status"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null;column:created_at"`
	UpdatedAt     time.Time `gorm:"not null;column:updated_at"`
}

func (ApplicationModel) TableName() string { return "supplier_applications" }

func (m *ApplicationModel) ToDomain() *domain.SupplierApplication {
	return &domain.SupplierApplication{
		ID:          m.ApplicationID,
		SupplierID:  m.SupplierID,
		SchoolID:    m.SchoolID,
		ServiceType: m.ServiceType,
		Proposal:    m.Proposal,
		Status:      domain.ApplicationStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToApplicationModel(d *domain.SupplierApplication) *ApplicationModel {
	return &ApplicationModel{
		ApplicationID: d.ID,
		SupplierID:    d.SupplierID,
		SchoolID:      d.SchoolID,
		ServiceType:   d.ServiceType,
		Proposal:      d.Proposal,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
