package application

import (
	"context"
	"errors"
	"testing"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

func newTestApplicationService() (*ApplicationService, *memApplicationRepo) {
	applications := newMemApplicationRepo()
	svc := NewApplicationService(applications, testLog)
	return svc, applications
}

func TestSubmitApplication(t *testing.T) {
	svc, repo := newTestApplicationService()

	app, err := svc.Submit(context.Background(), "supplier-1", "school-1", "catering", "weekly lunches")
	if err != nil {
		t.Fatal(err)
	}
	if app.Status != domain.ApplicationPending {
		t.Errorf("status = %s, want pending", app.Status)
	}
	if len(repo.applications) != 1 {
		t.Errorf("expected 1 stored application, got %d", len(repo.applications))
	}
}

func TestSubmitApplicationValidation(t *testing.T) {
	svc, _ := newTestApplicationService()

	if _, err := svc.Submit(context.Background(), "supplier-1", "school-1", "", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestListApplicationsForUser(t *testing.T) {
	svc, _ := newTestApplicationService()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "supplier-1", "school-1", "catering", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Submit(ctx, "supplier-2", "school-1", "transport", ""); err != nil {
		t.Fatal(err)
	}

	forSchool, err := svc.ListForUser(ctx, "school-1", domain.RoleSchool)
	if err != nil {
		t.Fatal(err)
	}
	if len(forSchool) != 2 {
		t.Errorf("school sees %d applications, want 2", len(forSchool))
	}

	forSupplier, err := svc.ListForUser(ctx, "supplier-1", domain.RoleSupplier)
	if err != nil {
		t.Fatal(err)
	}
	if len(forSupplier) != 1 {
		t.Errorf("supplier sees %d applications, want 1", len(forSupplier))
	}

	forAdmin, err := svc.ListForUser(ctx, "admin-1", domain.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if len(forAdmin) != 0 {
		t.Errorf("admin list should be empty here, got %d", len(forAdmin))
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	svc, repo := newTestApplicationService()
	ctx := context.Background()

	app, err := svc.Submit(ctx, "supplier-1", "school-1", "catering", "")
	if err != nil {
		t.Fatal(err)
	}

	// Another school cannot decide.
	if err := svc.UpdateStatus(ctx, app.ID, domain.ApplicationApproved, "school-2", domain.RoleSchool); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Errorf("expected permission denied, got %v", err)
	}

	// The receiving school approves.
	if err := svc.UpdateStatus(ctx, app.ID, domain.ApplicationApproved, "school-1", domain.RoleSchool); err != nil {
		t.Fatal(err)
	}
	if repo.applications[app.ID].Status != domain.ApplicationApproved {
		t.Errorf("status = %s", repo.applications[app.ID].Status)
	}

	// Approved is terminal.
	if err := svc.UpdateStatus(ctx, app.ID, domain.ApplicationRejected, "school-1", domain.RoleSchool); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected invalid transition, got %v", err)
	}
}

func TestUpdateApplicationStatusAdminOverride(t *testing.T) {
	svc, repo := newTestApplicationService()
	ctx := context.Background()

	app, err := svc.Submit(ctx, "supplier-1", "school-1", "catering", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateStatus(ctx, app.ID, domain.ApplicationRejected, "admin-1", domain.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	if repo.applications[app.ID].Status != domain.ApplicationRejected {
		t.Errorf("status = %s", repo.applications[app.ID].Status)
	}
}

func TestUpdateApplicationStatusUnknownID(t *testing.T) {
	svc, _ := newTestApplicationService()

	err := svc.UpdateStatus(context.Background(), "missing", domain.ApplicationApproved, "school-1", domain.RoleSchool)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
