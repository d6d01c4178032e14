package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

// ComplaintService files and tracks legal complaints between parties.
type ComplaintService struct {
	complaints domain.ComplaintRepository
	log        zerolog.Logger
}

func NewComplaintService(complaints domain.ComplaintRepository, log zerolog.Logger) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		log:        log.With().Str("component", "complaint-service").Logger(),
	}
}

func (s *ComplaintService) File(ctx context.Context, complainantID, respondentID, subject, details string) (*domain.LegalComplaint, error) {
	if complainantID == "" || respondentID == "" || subject == "" {
		return nil, fmt.Errorf("%w: complainant, respondent and subject are required", domain.ErrValidation)
	}
	if complainantID == respondentID {
		return nil, fmt.Errorf("%w: cannot file a complaint against yourself", domain.ErrValidation)
	}

	now := time.Now().UTC()
	complaint := &domain.LegalComplaint{
		ID:            uuid.NewString(),
		ComplainantID: complainantID,
		RespondentID:  respondentID,
		Subject:       subject,
		Details:       details,
		Status:        domain.ComplaintOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.complaints.Save(ctx, complaint); err != nil {
		return nil, err
	}
	s.log.Info().Str("complaint_id", complaint.ID).Msg("complaint filed")
	return complaint, nil
}

// ListForUser returns all complaints to admins, and only the user's own
// (either side) to everyone else.
func (s *ComplaintService) ListForUser(ctx context.Context, userID string, role domain.Role) ([]*domain.LegalComplaint, error) {
	if role == domain.RoleAdmin {
		return s.complaints.ListAll(ctx)
	}
	return s.complaints.ListByParty(ctx, userID)
}

// UpdateStatus advances a complaint along open -> in_review -> resolved.
// Admin only; the handler enforces the role, the service the transition.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id string, next domain.ComplaintStatus) error {
	complaint, err := s.complaints.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if complaint == nil {
		return domain.ErrNotFound
	}
	if !complaint.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}
	return s.complaints.UpdateStatus(ctx, id, next, time.Now().UTC())
}
