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

const (
	defaultRegistrationFee = 5000
	paymentCurrency        = "INR"
)

// PaymentService tracks supplier registration fees. The fee amount comes
// from the global registration_fee setting; the actual charge happens at
// the provider, which reports back through Callback.
type PaymentService struct {
	payments domain.PaymentRepository
	settings domain.SettingRepository
	log      zerolog.Logger
}

func NewPaymentService(payments domain.PaymentRepository, settings domain.SettingRepository, log zerolog.Logger) *PaymentService {
	return &PaymentService{
		payments: payments,
		settings: settings,
		log:      log.With().Str("component", "payment-service").Logger(),
	}
}

func (s *PaymentService) Initiate(ctx context.Context, supplierID string) (*domain.RegistrationPayment, error) {
	if supplierID == "" {
		return nil, fmt.Errorf("%w: supplier id is required", domain.ErrValidation)
	}

	amount := int64(defaultRegistrationFee)
	if setting, err := s.settings.Find(ctx, domain.SettingScopeGlobal, "", domain.SettingKeyRegistrationFee); err != nil {
		return nil, err
	} else if setting != nil {
		if parsed, err := strconv.ParseInt(setting.Value, 10, 64); err == nil {
			amount = parsed
		} else {
			s.log.Warn().Str("value", setting.Value).Msg("unparsable registration fee setting, using default")
		}
	}

	now := time.Now().UTC()
	payment := &domain.RegistrationPayment{
		ID:         uuid.NewString(),
		SupplierID: supplierID,
		Amount:     amount,
		Currency:   paymentCurrency,
		Status:     domain.PaymentInitiated,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, err
	}
	s.log.Info().Str("payment_id", payment.ID).Int64("amount", amount).Msg("payment initiated")
	return payment, nil
}

// Callback applies the provider's verdict. Only initiated payments move,
// and only to paid or failed.
func (s *PaymentService) Callback(ctx context.Context, paymentID string, succeeded bool, providerRef string) error {
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}

	next := domain.PaymentPaid
	if !succeeded {
		next = domain.PaymentFailed
	}
	if !payment.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}
	return s.payments.UpdateStatus(ctx, paymentID, next, providerRef, time.Now().UTC())
}

func (s *PaymentService) ListBySupplier(ctx context.Context, supplierID string) ([]*domain.RegistrationPayment, error) {
	return s.payments.ListBySupplier(ctx, supplierID)
}
