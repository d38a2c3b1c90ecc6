package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fintrack/internal/config"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// Manager owns the embedded database handle for the lifetime of the process.
// It is passed explicitly to services rather than held as a singleton.
type Manager struct {
	db *gorm.DB
}

// NewManager opens the sqlite database at the configured path.
func NewManager(cfg *config.Config) (*Manager, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DBPath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	// The embedded database serializes writes; a single connection keeps the
	// single-logical-writer model explicit.
	sqlDB.SetMaxOpenConns(1)

	return &Manager{db: db}, nil
}

// Init idempotently creates the four tables and seeds the default profile
// row. Safe to call on every launch. Any error is fatal to startup: the
// application cannot run without the schema.
func (m *Manager) Init(cfg *config.Config) error {
	logger.Get().Info("Initializing database schema...")

	if err := m.db.AutoMigrate(
		&models.Profile{},
		&models.Account{},
		&models.Category{},
		&models.Transaction{},
	); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	if err := m.seedProfile(cfg); err != nil {
		return fmt.Errorf("profile seed failed: %w", err)
	}

	logger.Get().Info("Database schema ready")
	return nil
}

// seedProfile inserts the singleton profile row if none exists.
func (m *Manager) seedProfile(cfg *config.Config) error {
	var count int64
	if err := m.db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile := &models.Profile{
		ID:       models.ProfileID,
		Name:     cfg.ProfileName,
		Currency: cfg.Currency,
	}
	return m.db.Create(profile).Error
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
