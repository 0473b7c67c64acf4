package config

import (
	"fmt"
	"time"

	"studentoffice/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BootDB opens the Postgres connection, migrates the schema and seeds the
// initial admin. A connection failure here is fatal to startup; the caller
// exits instead of limping on.
func BootDB(cfg *Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if cfg.AppEnv == "development" {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Single interactive session; a handful of connections is plenty.
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&domain.Account{},
		&domain.AdminAccount{},
		&domain.GradeEntry{},
		&domain.Receipt{},
	); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database schemas: %w", err)
	}

	if err := seedAdmin(db, cfg); err != nil {
		return nil, err
	}

	log.Info().Str("db", cfg.DBName).Msg("✅ connected to database")
	return db, nil
}

// seedAdmin creates the initial admin identity when the admins table is
// empty and the env provides a secret.
func seedAdmin(db *gorm.DB, cfg *Config) error {
	var count int64
	if err := db.Model(&domain.AdminAccount{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.AdminID == "" || cfg.AdminSecret == "" {
		log.Warn().Msg("⚠️ skipping admin seeding, missing ADMIN_ID or ADMIN_SECRET in env")
		return nil
	}
	if err := db.Create(&domain.AdminAccount{ID: cfg.AdminID, Secret: cfg.AdminSecret}).Error; err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	log.Info().Str("id", cfg.AdminID).Msg("✅ seeded admin account")
	return nil
}

// CloseDB releases the shared connection at shutdown.
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close database connection")
	}
}
