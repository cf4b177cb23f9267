package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "elhamas/internal/adapters/http_server"
	"elhamas/internal/adapters/objectstore"
	"elhamas/internal/adapters/observability"
	redisad "elhamas/internal/adapters/redis"
	"elhamas/internal/app"
	"elhamas/internal/domain"
	"elhamas/internal/i18n"
	"elhamas/internal/shared"
	mysqlrepo "elhamas/internal/storage/mysql"
)

func main() {
	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// db (optional)
	var repo domain.Repository
	if cfg.MySQLDSN != "" {
		db, err := mysqlrepo.Open(cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("mysql open failed")
		}
		if err := mysqlrepo.Ping(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("mysql ping failed")
		}
		log.Info().Msg("database connection ok")
		if cfg.AutoMigrate {
			if err := mysqlrepo.Migrate(ctx, db); err != nil {
				log.Fatal().Err(err).Msg("migrate failed")
			}
		}
		repo = mysqlrepo.New(db)
	}

	// sessions (optional)
	var sessions domain.SessionStore
	if cfg.RedisAddr != "" {
		rs := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rs.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis ping failed")
		}
		defer rs.Close()
		sessions = rs
		log.Info().Msg("redis session store ok")
	} else {
		log.Warn().Msg("REDIS_ADDR is empty; admin sessions cannot be revoked before expiry")
	}

	// uploads
	var storage domain.ObjectStorage
	var disk *objectstore.Disk
	if cfg.MinIOEndpoint != "" {
		client, err := objectstore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			log.Fatal().Err(err).Msg("minio client")
		}
		if storage, err = objectstore.NewMinIO(ctx, client, cfg.MinIOBucket, cfg.MinIOPublicURL); err != nil {
			log.Fatal().Err(err).Msg("minio bucket")
		}
	} else {
		if disk, err = objectstore.NewDisk(cfg.UploadDir); err != nil {
			log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("upload dir")
		}
		storage = disk
	}

	auth := app.NewAuthService(repo, sessions, cfg.SessionSecret, cfg.SessionTTL)
	if repo != nil {
		created, err := auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
		if err != nil {
			log.Error().Err(err).Msg("bootstrap admin failed")
		} else if created {
			log.Info().Str("email", cfg.AdminEmail).Msg("bootstrap admin created")
		}
	}

	dict := i18n.Default()
	for loc, keys := range dict.Missing() {
		log.Warn().Str("locale", string(loc)).Strs("keys", keys).Msg("untranslated dictionary keys")
	}

	// http
	proxies, err := server.ParseProxies(cfg.TrustedProxies)
	if err != nil {
		log.Fatal().Err(err).Msg("TRUSTED_PROXIES")
	}
	srv := server.New(cfg.Locale(), proxies...)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	if disk != nil {
		srv.Mount(objectstore.URLPrefix+"*", http.StripPrefix(objectstore.URLPrefix, http.FileServer(http.Dir(disk.Root()))))
	}
	limit := server.RateLimit(cfg.InquiryRPS, cfg.InquiryBurst)
	srv.MountHandlers(&server.Handlers{
		Q:            app.NewQueryService(repo),
		Inquiries:    app.NewInquiryService(repo),
		Dict:         dict,
		CookieSecure: cfg.CookieSecure,
		InquiryLimit: limit,
	})
	srv.MountAdmin(&server.AdminHandlers{
		Admin:        app.NewAdmin(repo),
		Auth:         auth,
		Uploads:      app.NewUploadService(storage, cfg.UploadMaxBytes),
		CookieSecure: cfg.CookieSecure,
		LoginLimit:   server.RateLimit(cfg.InquiryRPS, cfg.InquiryBurst),
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Str("locale", string(cfg.Locale())).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
