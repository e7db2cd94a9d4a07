package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"resto-be/internal/config"
	"resto-be/internal/db"
	"resto-be/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// migrator is the subset of *migrate.Migrate the modes use.
type migrator interface {
	Up() error
	Steps(n int) error
	Version() (uint, bool, error)
}

func main() {
	mode := flag.String("mode", "up", "migration mode: up, down or version")
	flag.Parse()

	cfg := config.LoadConfig()

	m, err := newMigrator(db.URL(cfg))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _, _ = m.Close() }()

	msg, err := run(m, *mode)
	if err != nil {
		log.Fatal(err)
	}
	log.Println(msg)
}

func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func run(m migrator, mode string) (string, error) {
	switch mode {
	case "up":
		err := m.Up()
		if errors.Is(err, migrate.ErrNoChange) {
			return "no pending migrations", nil
		}
		if err != nil {
			return "", fmt.Errorf("migration up failed: %w", err)
		}
		return "migrations applied successfully", nil

	case "down":
		err := m.Steps(-1)
		if errors.Is(err, migrate.ErrNoChange) {
			return "no migrations to roll back", nil
		}
		if err != nil {
			return "", fmt.Errorf("migration down failed: %w", err)
		}
		return "rollback successful", nil

	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return "no migrations applied yet", nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to get version: %w", err)
		}
		return fmt.Sprintf("current version %d (dirty=%t)", version, dirty), nil

	default:
		return "", fmt.Errorf("unknown mode: %s (use 'up', 'down' or 'version')", mode)
	}
}
