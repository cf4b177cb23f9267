package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"elhamas/internal/adapters/observability"
	"elhamas/internal/app"
	"elhamas/internal/seed"
	"elhamas/internal/shared"
	mysqlrepo "elhamas/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	if cfg.MySQLDSN == "" {
		log.Fatal().Msg("MYSQL_DSN is required for seeding")
	}
	f, err := seed.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file")
	}

	db, err := mysqlrepo.Open(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql open failed")
	}
	if err := mysqlrepo.Ping(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mysql ping failed")
	}
	log.Info().Msg("db ping ok")
	if err := mysqlrepo.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	repo := mysqlrepo.New(db)

	email, password, name := cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName
	if email == "" && f.Admin != nil {
		email, password = f.Admin.Email, f.Admin.Password
		if f.Admin.Name != "" {
			name = f.Admin.Name
		}
	}
	auth := app.NewAuthService(repo, nil, cfg.SessionSecret, cfg.SessionTTL)
	if created, err := auth.EnsureAdmin(ctx, email, password, name); err != nil {
		log.Fatal().Err(err).Msg("bootstrap admin failed")
	} else if created {
		log.Info().Str("email", email).Msg("bootstrap admin created")
	}

	start := time.Now()
	report, err := seed.New(app.NewAdmin(repo), cfg.SeedWorkers).Run(ctx, f)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	ev := log.Info().Dur("took", time.Since(start)).Strs("skipped", report.Skipped)
	for section, n := range report.Created {
		ev = ev.Int(section, n)
	}
	ev.Msg("seeding completed")
}
