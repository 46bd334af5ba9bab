// Package db provides the gorm storage bootstrap shared by all features.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "mood_backend/internal/feature/auth/domain/entity"
	entryadapters "mood_backend/internal/feature/entries/adapters"
)

// DefaultSQLitePath is the journal database file used when DB_PATH is not set.
const DefaultSQLitePath = "mood_journal.db"

// OpenDB opens the durable store configured through the environment.
//
// DB_DRIVER=postgres selects PostgreSQL (DSN from DB_HOST/DB_PORT/DB_USER/
// DB_PASSWORD/DB_NAME); anything else opens the single-file SQLite database
// at DB_PATH. Postgres connections are retried for up to 60 seconds so the
// server survives a database that is still starting.
func OpenDB() *gorm.DB {
	if os.Getenv("DB_DRIVER") == "postgres" {
		return openPostgres()
	}
	return openSQLite()
}

func openSQLite() *gorm.DB {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = DefaultSQLitePath
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("sqlite open failed: %v", err)
	}
	return db
}

func openPostgres() *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	return db
}

// targetSchemaVersion is the schema version this binary expects.
// Bump it together with a new entry in migrations.
const targetSchemaVersion = 2

// SchemaMigration records one applied schema version.
type SchemaMigration struct {
	Version   int `gorm:"primaryKey"`
	AppliedAt time.Time
}

func (SchemaMigration) TableName() string {
	return "schema_migrations"
}

// migrations lists every schema step in order. Steps are additive only and
// each one is idempotent, so replaying a step against an up-to-date database
// is harmless.
var migrations = []struct {
	version int
	apply   func(*gorm.DB) error
}{
	{1, migrateBaseTables},
	{2, addEntrySleepColumn},
}

// Migrate brings the schema up to targetSchemaVersion. Versions already
// recorded in schema_migrations are skipped, so running it on every startup
// is a no-op once the store is current: no data loss, no duplicate columns,
// no error.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to prepare schema_migrations: %w", err)
	}

	var current int
	if err := db.Model(&SchemaMigration{}).
		Select("COALESCE(MAX(version), 0)").Scan(&current).Error; err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := m.apply(db); err != nil {
			return fmt.Errorf("schema migration %d failed: %w", m.version, err)
		}
		record := SchemaMigration{Version: m.version, AppliedAt: time.Now()}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record schema migration %d: %w", m.version, err)
		}
	}

	if current > targetSchemaVersion {
		// Database written by a newer binary. Additive-only evolution means
		// reading is still safe, so log and continue.
		log.Printf("schema version %d is newer than expected %d", current, targetSchemaVersion)
	}

	return nil
}

// migrateBaseTables creates the accounts and entries tables.
func migrateBaseTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.Account{},
		&entryadapters.EntryModel{},
	)
}

// addEntrySleepColumn adds the sleep column introduced after the first
// release. Databases created at version >= 2 already have it via the model,
// so the column check keeps the step idempotent.
func addEntrySleepColumn(db *gorm.DB) error {
	m := db.Migrator()
	if m.HasColumn(&entryadapters.EntryModel{}, "sleep") {
		return nil
	}
	return m.AddColumn(&entryadapters.EntryModel{}, "sleep")
}
