package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// CatalogDB is the raw pgx pool, used for the hot snapshot scan and
	// health pings.
	CatalogDB *pgxpool.Pool

	// CatalogGorm is the GORM handle over the same database, used for
	// everything else (category queries, seeding, migrations).
	CatalogGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func catalogURL() string {
	if url := os.Getenv("CATALOG_DB_URL"); url != "" {
		return url
	}
	// fallback to local
	url := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/anvogue_catalog?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
	)
	log.Warn("CATALOG_DB_URL not set, using local default")
	return url
}

func initPgx() {
	var err error
	CatalogDB, err = pgxpool.New(context.Background(), catalogURL())
	if err != nil {
		log.Fatalf("unable to connect to catalog database: %v", err)
	}

	if err = CatalogDB.Ping(context.Background()); err != nil {
		log.Fatalf("catalog database ping failed: %v", err)
	}

	log.Info("catalog database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	CatalogGorm, err = gorm.Open(postgres.Open(catalogURL()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("failed to connect to catalog database with GORM: %v", err)
	}
	if sqlDB, err := CatalogGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Info("catalog database connected (GORM)")
}

func CloseDB() {
	if CatalogDB != nil {
		CatalogDB.Close()
		log.Info("catalog database connection closed (pgx)")
	}
	if CatalogGorm != nil {
		sqlDB, _ := CatalogGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Info("catalog database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout for catalog queries.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
