package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	DatabaseURL   string `long:"database-url" env:"MIGRATIONS_DATABASE_URL" required:"true" description:"target DSN, postgres://... or clickhouse://..."`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" required:"true" description:"path to migration files, e.g. migrations/postgres"`
	Down          bool   `long:"down" env:"MIGRATIONS_DOWN" description:"roll every migration back instead of applying"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg, logger); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}

func runMigrations(ctx context.Context, cfg config, logger *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceURL, err := sourceURL(cfg.MigrationsDir)
	if err != nil {
		return err
	}

	m, err := migrate.New(sourceURL, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("migration database close error", zap.Error(dbErr))
		}
	}()

	// Interrupts stop migrate between steps.
	go func() {
		<-ctx.Done()
		select {
		case m.GracefulStop <- true:
		default:
		}
	}()

	apply, direction := m.Up, "up"
	if cfg.Down {
		apply, direction = m.Down, "down"
	}
	if err := apply(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migrations to apply", zap.String("direction", direction))
			return nil
		}
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	logger.Info("migrations applied successfully", zap.String("direction", direction))
	return nil
}

func sourceURL(migrationsDir string) (string, error) {
	dir, err := filepath.Abs(migrationsDir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return fmt.Sprintf("file://%s", filepath.ToSlash(dir)), nil
}
