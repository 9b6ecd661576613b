// Package database opens and migrates the CloudReel metadata store: gorm
// over PostgreSQL, write-primary with an optional read replica.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"

	"cloudreel-server/internal/config"
)

// Connect opens the metadata store from the service configuration. The write
// DSN is the primary connection; when a distinct read DSN is configured the
// replica is registered through dbresolver so reads route there. The target
// database is created when missing, so a fresh environment boots without
// manual setup.
func Connect(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	writeDSN := cfg.GetDatabaseWriteDSN()
	if writeDSN == "" {
		return nil, fmt.Errorf("database write DSN is empty")
	}

	if err := createDatabaseIfMissing(writeDSN); err != nil {
		return nil, fmt.Errorf("ensure database: %w", err)
	}

	logLevel := gormlogger.Warn
	if cfg.Environment == "development" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(writeDSN), &gorm.Config{
		PrepareStmt: true,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if readDSN := cfg.GetDatabaseReadDSN(); readDSN != writeDSN {
		err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(readDSN)},
		}))
		if err != nil {
			return nil, fmt.Errorf("register read replica: %w", err)
		}
		log.Info().Msg("read replica registered")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("retrieve sql db: %w", err)
	}

	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBConnLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.DBConnLifetime)
	}

	return db, nil
}

// databaseName extracts the target database from a URL-form DSN. Key/value
// DSNs return empty and are left to the operator.
func databaseName(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

// createDatabaseIfMissing connects to the admin database over lib/pq and
// creates the DSN's target database when it does not exist yet.
func createDatabaseIfMissing(dsn string) error {
	name := databaseName(dsn)
	if name == "" || name == "postgres" {
		return nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return nil
	}
	adminURL := *u
	adminURL.Path = "/postgres"

	sqlDB, err := sql.Open("postgres", adminURL.String())
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var exists bool
	err = sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + quoteIdentifier(name))
	return err
}

// quoteIdentifier double-quotes a PostgreSQL identifier.
func quoteIdentifier(ident string) string {
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}
