package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	drv "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open connects to MySQL. The DSN is normalized so DATETIME columns scan
// into time.Time in UTC and JSON text keeps its 4-byte characters.
func Open(dsn string) (*gorm.DB, error) {
	cfg, err := drv.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse MYSQL_DSN: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["charset"]; !ok {
		cfg.Params["charset"] = "utf8mb4"
	}

	sqlDB, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return Wrap(sqlDB)
}

// Wrap builds a GORM handle over an existing connection pool.
func Wrap(sqlDB *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 NewGormLogger(log.Logger, 200*time.Millisecond),
		NowFunc:                func() time.Time { return time.Now().UTC() },
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return db, nil
}

// Migrate creates missing tables. Existing tables are left untouched.
func Migrate(ctx context.Context, db *gorm.DB) error {
	for i, stmt := range schema {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	log.Info().Int("statements", len(schema)).Msg("schema applied")
	return nil
}

// Ping checks connectivity for health probes.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
