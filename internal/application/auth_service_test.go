package application

import (
	"context"
	"errors"
	"testing"

	"github.com/Vi-fly/vendor-elite-backend/internal/application/dto"
	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

func newTestAuthService() (*AuthService, *memProfileRepo) {
	profiles := newMemProfileRepo()
	svc := NewAuthService(profiles, fakeTokenService{}, fakePasswordService{}, testLog)
	return svc, profiles
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterReq{
		Name:     "Meera",
		Email:    "meera@school.example",
		Password: "secret",
		Role:     "school",
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Role != "school" || resp.UserID == "" {
		t.Errorf("register resp = %+v", resp)
	}

	login, err := svc.Login(ctx, &dto.LoginReq{Email: "meera@school.example", Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	if login.AccessToken == "" || login.RefreshToken == "" {
		t.Error("login must issue both tokens")
	}
	if login.UserID != resp.UserID {
		t.Errorf("login user %s, registered %s", login.UserID, resp.UserID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	req := &dto.RegisterReq{Name: "A", Email: "dup@example.com", Password: "secret", Role: "supplier", Organization: "A Co"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, domain.ErrUserAlreadyExists) {
		t.Errorf("expected duplicate error, got %v", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterReq{
		Name: "X", Email: "x@example.com", Password: "secret", Role: "admin",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("admin self-registration must be rejected, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, profiles := newTestAuthService()
	seedProfile(profiles, "user-1", "User", domain.RoleSchool, "")

	_, err := svc.Login(context.Background(), &dto.LoginReq{Email: "user-1@example.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidPassword) {
		t.Errorf("expected invalid password, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginReq{Email: "nobody@example.com", Password: "secret"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected user not found, got %v", err)
	}
}

func TestRefresh(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Refresh(ctx, "refresh:user-1")
	if err != nil {
		t.Fatal(err)
	}
	if resp.AccessToken != "access:user-1" {
		t.Errorf("access token = %q", resp.AccessToken)
	}

	if _, err := svc.Refresh(ctx, "garbage"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected invalid token, got %v", err)
	}
}

func TestCurrentUser(t *testing.T) {
	svc, profiles := newTestAuthService()
	seedProfile(profiles, "user-1", "User", domain.RoleSupplier, "User Co")

	profile, err := svc.CurrentUser(context.Background(), "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Organization != "User Co" {
		t.Errorf("profile = %+v", profile)
	}

	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected user not found, got %v", err)
	}
}
