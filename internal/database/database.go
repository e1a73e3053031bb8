package database

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"auction-house/internal/config"
	"auction-house/utils"
)

// DB wraps the sqlx connection pool
type DB struct {
	*sqlx.DB
}

// Connect opens the Postgres pool, tunes it, and applies migrations
func Connect(cfg *config.Config) (*DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.SSLMode,
	)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	wrapped := &DB{db}

	if err := wrapped.RunMigrations(cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	utils.Info("connected to PostgreSQL", map[string]any{
		"host":   cfg.DB.Host,
		"dbname": cfg.DB.Name,
	})

	return wrapped, nil
}

// RunMigrations executes the schema file against the open pool
func (db *DB) RunMigrations(path string) error {
	migrationSQL, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration file %s: %w", path, err)
	}

	if _, err := db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("execute migration %s: %w", path, err)
	}

	return nil
}

// HealthCheck pings the database
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection not initialised")
	}
	return db.Ping()
}

// Close shuts the pool down
func (db *DB) Close() error {
	return db.DB.Close()
}
