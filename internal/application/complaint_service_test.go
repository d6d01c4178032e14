package application

import (
	"context"
	"errors"
	"testing"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

func newTestComplaintService() (*ComplaintService, *memComplaintRepo) {
	complaints := newMemComplaintRepo()
	svc := NewComplaintService(complaints, testLog)
	return svc, complaints
}

func TestFileComplaint(t *testing.T) {
	svc, repo := newTestComplaintService()

	complaint, err := svc.File(context.Background(), "school-1", "supplier-1", "late delivery", "three weeks overdue")
	if err != nil {
		t.Fatal(err)
	}
	if complaint.Status != domain.ComplaintOpen {
		t.Errorf("status = %s, want open", complaint.Status)
	}
	if len(repo.complaints) != 1 {
		t.Errorf("expected 1 stored complaint, got %d", len(repo.complaints))
	}
}

func TestFileComplaintAgainstSelf(t *testing.T) {
	svc, _ := newTestComplaintService()

	_, err := svc.File(context.Background(), "user-1", "user-1", "subject", "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("self-complaint must be rejected, got %v", err)
	}
}

func TestListComplaintsForUser(t *testing.T) {
	svc, _ := newTestComplaintService()
	ctx := context.Background()

	if _, err := svc.File(ctx, "school-1", "supplier-1", "a", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.File(ctx, "supplier-2", "school-1", "b", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.File(ctx, "school-2", "supplier-2", "c", ""); err != nil {
		t.Fatal(err)
	}

	// school-1 appears on both sides of different complaints.
	mine, err := svc.ListForUser(ctx, "school-1", domain.RoleSchool)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 {
		t.Errorf("school-1 sees %d complaints, want 2", len(mine))
	}

	all, err := svc.ListForUser(ctx, "admin-1", domain.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("admin sees %d complaints, want 3", len(all))
	}
}

func TestComplaintStatusFlow(t *testing.T) {
	svc, repo := newTestComplaintService()
	ctx := context.Background()

	complaint, err := svc.File(ctx, "school-1", "supplier-1", "dispute", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateStatus(ctx, complaint.ID, domain.ComplaintInReview); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateStatus(ctx, complaint.ID, domain.ComplaintResolved); err != nil {
		t.Fatal(err)
	}
	if repo.complaints[complaint.ID].Status != domain.ComplaintResolved {
		t.Errorf("status = %s", repo.complaints[complaint.ID].Status)
	}

	// Resolved is terminal.
	if err := svc.UpdateStatus(ctx, complaint.ID, domain.ComplaintInReview); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected invalid transition, got %v", err)
	}
}

func TestComplaintDirectResolve(t *testing.T) {
	svc, _ := newTestComplaintService()
	ctx := context.Background()

	complaint, err := svc.File(ctx, "school-1", "supplier-1", "dispute", "")
	if err != nil {
		t.Fatal(err)
	}
	// open -> resolved without review is allowed.
	if err := svc.UpdateStatus(ctx, complaint.ID, domain.ComplaintResolved); err != nil {
		t.Errorf("direct resolve failed: %v", err)
	}
}

func TestComplaintStatusUnknownID(t *testing.T) {
	svc, _ := newTestComplaintService()

	if err := svc.UpdateStatus(context.Background(), "missing", domain.ComplaintResolved); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
