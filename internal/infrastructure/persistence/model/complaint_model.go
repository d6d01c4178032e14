package model

import (
	"time"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

type ComplaintModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id"`
	ComplaintID   string    `gorm:"uniqueIndex:idx_complaint_id;size:36;not null;column:complaint_id"`
	ComplainantID string    `gorm:"index:idx_complaint_complainant;size:36;not null;column:complainant_id"`
	RespondentID  string    `gorm:"index:idx_complaint_respondent;size:36;not null;column:respondent_id"`
	Subject       string    `gorm:"size:200;not null;column:subject"`
	Details       string    `gorm:"type:text;column:details"`
	Status        string    `gorm:"size:20;not null;default:open;column:status"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null;column:created_at"`
	UpdatedAt     time.Time `gorm:"not null;column:updated_at"`
}

func (ComplaintModel) TableName() string { return "legal_complaints" }

func (m *ComplaintModel) ToDomain() *domain.LegalComplaint {
	return &domain.LegalComplaint{
		ID:            m.ComplaintID,
		ComplainantID: m.ComplainantID,
		RespondentID:  m.RespondentID,
		Subject:       m.Subject,
		Details:       m.Details,
		Status:        domain.ComplaintStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToComplaintModel(d *domain.LegalComplaint) *ComplaintModel {
	return &ComplaintModel{
		ComplaintID:   d.ID,
		ComplainantID: d.ComplainantID,
		RespondentID:  d.RespondentID,
		Subject:       d.Subject,
		Details:       d.Details,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
