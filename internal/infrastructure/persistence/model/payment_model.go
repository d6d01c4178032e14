package model

import (
	"time"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

type PaymentModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id"`
	PaymentID   string    `gorm:"uniqueIndex:idx_payment_id;size:36;not null;column:payment_id"`
	SupplierID  string    `gorm:"index:idx_payment_supplier;size:36;not null;column:supplier_id"`
	Amount      int64     `gorm:"not null;column:amount"`
	Currency    string    `gorm:"size:10;not null;column:currency"`
	ProviderRef string    `gorm:"size:100;column:provider_ref"`
	Status      string    `gorm:"size:20;not null;default:initiated;column:status"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null;column:created_at"`
	UpdatedAt   time.Time `gorm:"not null;column:updated_at"`
}

func (PaymentModel) TableName() string { return "registration_payments" }

func (m *PaymentModel) ToDomain() *domain.RegistrationPayment {
	return &domain.RegistrationPayment{
		ID:          m.PaymentID,
		SupplierID:  m.SupplierID,
		Amount:      m.Amount,
		Currency:    m.Currency,
		ProviderRef: m.ProviderRef,
		Status:      domain.PaymentStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPaymentModel(d *domain.RegistrationPayment) *PaymentModel {
	return &PaymentModel{
		PaymentID:   d.ID,
		SupplierID:  d.SupplierID,
		Amount:      d.Amount,
		Currency:    d.Currency,
		ProviderRef: d.ProviderRef,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
