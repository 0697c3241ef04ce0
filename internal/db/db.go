package db

import (
	"fmt"
	"os"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the sqlite3 driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rajkumararumugam9944-byte/Inbhatex/internal/models"
)

// ConnectAndMigrate opens the local database file and brings the schema up to
// date. If MIGRATIONS=1 (or true) SQL migrations in ./migrations run via
// golang-migrate; otherwise AutoMigrate keeps the dev loop simple.
func ConnectAndMigrate(path, homeState string) (*gorm.DB, error) {
	if path == "" {
		path = "billing.db"
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if err := runSQLMigrations(path); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if err := Migrate(conn); err != nil {
			return nil, err
		}
	}

	if err := SeedDefaults(conn, homeState); err != nil {
		return nil, err
	}
	return conn, nil
}

// Migrate applies the GORM schema for every model.
func Migrate(conn *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.Settings{}, &models.Customer{}, &models.Product{},
		&models.Invoice{}, &models.InvoiceItem{}, &models.Payment{},
	}
	for _, m := range modelsToMigrate {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

// SeedDefaults inserts the settings row on first run. Existing settings are
// never overwritten.
func SeedDefaults(conn *gorm.DB, homeState string) error {
	var count int64
	if err := conn.Model(&models.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if homeState == "" {
		homeState = "Tamil Nadu"
	}
	defaults := models.Settings{
		CompanyName:         "Your Company Name",
		CompanyAddress:      "Your Company Address",
		InvoiceNumberFormat: "INV-YYYY-###",
		HomeState:           homeState,
		Theme:               "light",
		DefaultTemplate:     "template-1",
	}
	return conn.Create(&defaults).Error
}

// runSQLMigrations executes migrations in ./migrations using the golang-migrate file source.
func runSQLMigrations(path string) error {
	m, err := migrate.New("file://migrations", "sqlite3://"+path)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
