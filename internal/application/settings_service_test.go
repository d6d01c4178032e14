package application

import (
	"context"
	"errors"
	"testing"

	"github.com/Vi-fly/vendor-elite-backend/internal/domain"
)

func TestPutAndListSettings(t *testing.T) {
	repo := newMemSettingRepo()
	svc := NewSettingsService(repo, testLog)
	ctx := context.Background()

	if _, err := svc.Put(ctx, domain.SettingScopeGlobal, "", domain.SettingKeyRegistrationFee, "7500"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Put(ctx, domain.SettingScopeSupplier, "supplier-1", domain.SettingKeyRatingEnabled, "false"); err != nil {
		t.Fatal(err)
	}

	// List defaults to the global scope.
	global, err := svc.List(ctx, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(global) != 1 || global[0].Value != "7500" {
		t.Errorf("global settings = %v", global)
	}

	supplier, err := svc.List(ctx, domain.SettingScopeSupplier, "supplier-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(supplier) != 1 || supplier[0].Value != "false" {
		t.Errorf("supplier settings = %v", supplier)
	}
}

func TestPutSettingOverwrites(t *testing.T) {
	repo := newMemSettingRepo()
	svc := NewSettingsService(repo, testLog)
	ctx := context.Background()

	if _, err := svc.Put(ctx, domain.SettingScopeGlobal, "", domain.SettingKeyRegistrationFee, "5000"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Put(ctx, domain.SettingScopeGlobal, "", domain.SettingKeyRegistrationFee, "9000"); err != nil {
		t.Fatal(err)
	}

	settings, err := svc.List(ctx, domain.SettingScopeGlobal, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) != 1 {
		t.Fatalf("expected 1 row after overwrite, got %d", len(settings))
	}
	if settings[0].Value != "9000" {
		t.Errorf("value = %s, want 9000", settings[0].Value)
	}
}

func TestPutSettingValidation(t *testing.T) {
	svc := NewSettingsService(newMemSettingRepo(), testLog)

	if _, err := svc.Put(context.Background(), "", "", "key", "v"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := svc.Put(context.Background(), domain.SettingScopeGlobal, "", "", "v"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
