package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"globalhearts_backend/internals/configs"
	appealModel "globalhearts_backend/internals/features/content/appeals/model"
	newsModel "globalhearts_backend/internals/features/content/news/model"
	programModel "globalhearts_backend/internals/features/content/programs/model"
)

// ConnectDB opens postgres (production) or sqlite (local/dev) per cfg.Driver.
func ConnectDB(cfg configs.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		log.Printf("🔌 Connecting to SQLite (%s)...", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	case "postgres", "":
		log.Println("🔌 Connecting to PostgreSQL...")
		dialector = postgres.New(postgres.Config{
			DSN:                  PostgresDSN(cfg),
			PreferSimpleProtocol: true, // PgBouncer transaction pooling
		})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: configs.NewGormLogger(cfg)})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	log.Println("✅ DB connected.")
	return db, nil
}

// PostgresDSN prefers cfg.URL; otherwise builds a URL with a statement timeout.
func PostgresDSN(cfg configs.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   "/" + cfg.Name,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	q.Set("application_name", "globalhearts")
	q.Set("options", "-c statement_timeout=3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func TunePool(db *gorm.DB, driver string) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	if driver == "sqlite" {
		// single writer
		sqlDB.SetMaxOpenConns(1)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Models lists every table the service owns. Donations are never persisted.
func Models() []any {
	return []any{
		&appealModel.AppealModel{},
		&programModel.ProgramModel{},
		&newsModel.NewsModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Println("[INFO] 🗂️ schema migrated")
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
