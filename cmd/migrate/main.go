package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"petminder/internal/config"
	dl "petminder/internal/core/domain/logging"
	"petminder/internal/implementations/logging"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Usage: migrate [-steps N] up|down
func main() {
	steps := flag.Int("steps", 0, "number of migrations to apply, all when zero")
	flag.Parse()
	direction := flag.Arg(0)
	if direction != "up" && direction != "down" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadMigrations()
	if err != nil {
		panic(err)
	}
	logger := logging.NewZapLogger(cfg.IsTestMode)
	defer logger.Sync()
	ctx := context.Background()

	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.PostgresqlURL)
	if err != nil {
		logger.Error(ctx, "Could not initialize migrations.", dl.Entry("err", err))
		os.Exit(1)
	}
	defer m.Close()

	err = run(m, direction, *steps)
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info(ctx, "No migrations to apply.")
		return
	}
	if err != nil {
		logger.Error(ctx, "Migrations failed.", dl.Entry("err", err), dl.Entry("direction", direction))
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		logger.Error(ctx, "Could not read schema version.", dl.Entry("err", err))
		os.Exit(1)
	}
	logger.Info(
		ctx,
		"Migrations applied.",
		dl.Entry("direction", direction),
		dl.Entry("version", version),
		dl.Entry("dirty", dirty),
	)
}

func run(m *migrate.Migrate, direction string, steps int) error {
	if steps > 0 {
		if direction == "down" {
			steps = -steps
		}
		return m.Steps(steps)
	}
	if direction == "down" {
		return m.Down()
	}
	return m.Up()
}
