package shared

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"elhamas/internal/domain"
)

const devSessionSecret = "dev-only-change-me"

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"prod"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"METRICS_ADDR"`

	// An empty DSN runs the site without a datastore.
	MySQLDSN    string `env:"MYSQL_DSN"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	// An empty address keeps sessions as stateless tokens.
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	CookieSecure  bool          `env:"COOKIE_SECURE" envDefault:"false"`
	DefaultLocale string        `env:"DEFAULT_LOCALE" envDefault:"en"`

	MinIOEndpoint  string `env:"MINIO_ENDPOINT"`
	MinIOAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinIOSecretKey string `env:"MINIO_SECRET_KEY"`
	MinIOUseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinIOBucket    string `env:"MINIO_BUCKET" envDefault:"elhamas"`
	MinIOPublicURL string `env:"MINIO_PUBLIC_URL"`
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadMaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`

	// IPs or CIDRs whose X-Forwarded-For and X-Real-IP headers are trusted.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	InquiryRPS   float64 `env:"INQUIRY_RPS" envDefault:"0.2"`
	InquiryBurst int     `env:"INQUIRY_BURST" envDefault:"5"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Administrator"`

	SeedFile    string `env:"SEED_FILE" envDefault:"seed.yaml"`
	SeedWorkers int    `env:"SEED_WORKERS" envDefault:"4"`
}

// Locale returns the configured default locale, English when invalid.
func (c Config) Locale() domain.Locale {
	if loc, ok := domain.ParseLocale(c.DefaultLocale); ok {
		return loc
	}
	return domain.LocaleEN
}

func (c Config) IsDev() bool { return c.AppEnv == "dev" || c.AppEnv == "development" }

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg(".env not loaded")
	}
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.SessionSecret == "" {
		if !c.IsDev() && c.AppEnv != "test" {
			return errors.New("SESSION_SECRET is required outside dev")
		}
		log.Warn().Msg("SESSION_SECRET is empty; using development secret")
		c.SessionSecret = devSessionSecret
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.UploadMaxBytes <= 0 {
		return errors.New("UPLOAD_MAX_BYTES must be positive")
	}
	if _, ok := domain.ParseLocale(c.DefaultLocale); !ok {
		log.Warn().Str("locale", c.DefaultLocale).Msg("DEFAULT_LOCALE unsupported; using en")
	}
	if c.SeedWorkers < 1 {
		c.SeedWorkers = 1
	}
	if c.MySQLDSN == "" {
		log.Warn().Msg("MYSQL_DSN is empty; public reads fall back and writes are unavailable")
	}
	return nil
}
