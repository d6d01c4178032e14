package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// ApplicationService handles supplier applications to schools.
type ApplicationService struct {
	applications domain.ApplicationRepository
	log          zerolog.Logger
}

func NewApplicationService(applications domain.ApplicationRepository, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		log:          log.With().Str("component", "application-service").Logger(),
	}
}

func (s *ApplicationService) Submit(ctx context.Context, supplierID, schoolID, serviceType, proposal string) (*domain.SupplierApplication, error) {
	if supplierID == "" || schoolID == "" || serviceType == "" {
		return nil, fmt.Errorf("%w: supplier, school and service type are required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	app := &domain.SupplierApplication{
		ID:          uuid.NewString(),
		SupplierID:  supplierID,
		SchoolID:    schoolID,
		ServiceType: serviceType,
		Proposal:    proposal,
		Status:      domain.ApplicationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.applications.Save(ctx, app); err != nil {
		return nil, err
	}
	s.log.Info().Str("application_id", app.ID).Str("supplier_id", supplierID).Msg("application submitted")
	return app, nil
}

// ListForUser returns the applications visible to the user: those they
// filed (supplier) or those filed with them (school).
func (s *ApplicationService) ListForUser(ctx context.Context, userID string, role domain.Role) ([]*domain.SupplierApplication, error) {
	switch role {
	case domain.RoleSchool:
		return s.applications.ListBySchool(ctx, userID)
	case domain.RoleSupplier:
		return s.applications.ListBySupplier(ctx, userID)
	}
	return []*domain.SupplierApplication{}, nil
}

// UpdateStatus moves a pending application to approved or rejected. Only
// the receiving school, or an admin, may decide.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, next domain.ApplicationStatus, actorID string, actorRole domain.Role) error {
	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrNotFound
	}
	if actorRole != domain.RoleAdmin && app.SchoolID != actorID {
		return domain.ErrPermissionDenied
	}
	if !app.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}
	return s.applications.UpdateStatus(ctx, id, next, time.Now().UTC())
}
