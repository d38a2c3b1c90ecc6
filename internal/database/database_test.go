package database

import (
	"fmt"
	"sync/atomic"
	"testing"

	"fintrack/internal/config"
	"fintrack/internal/models"
)

var dbCounter atomic.Int64

func newTestManager(t *testing.T) (*Manager, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		DBPath:      fmt.Sprintf("file:schemadb%d?mode=memory&cache=shared", dbCounter.Add(1)),
		ProfileName: "User",
		Currency:    "USD",
	}
	manager, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return manager, cfg
}

func TestInit(t *testing.T) {
	t.Run("creates_schema_and_seeds_profile", func(t *testing.T) {
		manager, cfg := newTestManager(t)

		if err := manager.Init(cfg); err != nil {
			t.Fatalf("Init failed: %v", err)
		}

		var profile models.Profile
		if err := manager.DB().First(&profile, models.ProfileID).Error; err != nil {
			t.Fatalf("expected seeded profile row: %v", err)
		}
		if profile.Name != "User" || profile.Currency != "USD" {
			t.Errorf("unexpected seeded profile: %+v", profile)
		}
	})

	t.Run("idempotent_across_launches", func(t *testing.T) {
		manager, cfg := newTestManager(t)

		if err := manager.Init(cfg); err != nil {
			t.Fatalf("first Init failed: %v", err)
		}

		account := &models.Account{
			Name:        "Holder",
			AccountName: "Savings",
			CardType:    models.CardTypeBank,
			IsActive:    true,
		}
		if err := manager.DB().Create(account).Error; err != nil {
			t.Fatalf("failed to create account: %v", err)
		}

		// Second launch: no error, no data loss, still one profile row
		if err := manager.Init(cfg); err != nil {
			t.Fatalf("second Init failed: %v", err)
		}

		var accounts int64
		manager.DB().Model(&models.Account{}).Count(&accounts)
		if accounts != 1 {
			t.Errorf("expected account to survive re-init, got %d rows", accounts)
		}

		var profiles int64
		manager.DB().Model(&models.Profile{}).Count(&profiles)
		if profiles != 1 {
			t.Errorf("expected exactly one profile row, got %d", profiles)
		}
	})

	t.Run("does_not_overwrite_updated_profile", func(t *testing.T) {
		manager, cfg := newTestManager(t)

		if err := manager.Init(cfg); err != nil {
			t.Fatalf("Init failed: %v", err)
		}

		if err := manager.DB().Model(&models.Profile{}).
			Where("id = ?", models.ProfileID).
			Updates(map[string]interface{}{"name": "Alex", "currency": "EUR"}).Error; err != nil {
			t.Fatalf("failed to update profile: %v", err)
		}

		if err := manager.Init(cfg); err != nil {
			t.Fatalf("re-Init failed: %v", err)
		}

		var profile models.Profile
		manager.DB().First(&profile, models.ProfileID)
		if profile.Name != "Alex" || profile.Currency != "EUR" {
			t.Errorf("re-init clobbered the profile: %+v", profile)
		}
	})
}
