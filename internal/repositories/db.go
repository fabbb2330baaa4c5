// Package repositories provides the data access layer. All persistence goes
// through the repository interfaces defined here; implementations use gorm
// against PostgreSQL.
package repositories

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"standsreg/internal/config"
	"standsreg/internal/models"
)

// InitDB opens the database, applies pool limits from cfg and migrates the
// schema. The returned handle is shared by all repositories.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	if d, err := time.ParseDuration(cfg.DB.ConnMaxLifetime); err == nil {
		sqlDB.SetConnMaxLifetime(d)
	}
	if d, err := time.ParseDuration(cfg.DB.ConnMaxIdleTime); err == nil {
		sqlDB.SetConnMaxIdleTime(d)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.Application{},
		&models.NextOfKin{},
		&models.Spouse{},
		&models.Beneficiary{},
		&models.Document{},
		&models.Payment{},
		&models.AuditLog{},
		&models.Setting{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
