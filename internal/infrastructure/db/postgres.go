package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Vi-fly/vendor-elite-backend/internal/infrastructure/persistence/model"
	"github.com/Vi-fly/vendor-elite-backend/shared/config"
)

type Postgres struct {
	*gorm.DB
}

func NewPostgresConn(databaseURL string) (*Postgres, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	db, err := gorm.Open(postgres.Open(databaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{db}, nil
}

// CreateTables migrates every collection the service owns.
func (db *Postgres) CreateTables() error {
	if err := db.AutoMigrate(
		&model.ProfileModel{},
		&model.ConversationModel{},
		&model.MessageModel{},
		&model.ApplicationModel{},
		&model.RatingModel{},
		&model.PaymentModel{},
		&model.ComplaintModel{},
		&model.SettingModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (db *Postgres) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying database connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

func GetURL(cfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		cfg.Address, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode)
}
