package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // ORG_TIMEZONE must resolve on slim images

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// TYPED CONFIG
// =======================

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	CorsOrigins    []string
	LogTimeZone    string
}

type DatabaseConfig struct {
	Driver        string // postgres | sqlite
	URL           string // DATABASE_URL wins over the parts below
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	SSLMode       string
	SQLitePath    string
	AutoMigrate   bool
	Seed          bool
	SeedDir       string
	SlowThreshold time.Duration
	LogQueries    bool
}

type DonationConfig struct {
	ProcessingDelay time.Duration
	RequirePolicy   bool
	SessionTTL      time.Duration
	ReaperSchedule  string
	ReviewThreshold decimal.Decimal
	ReviewWindow    time.Duration
	TxPrefix        string
	WaitTimeout     time.Duration
}

type ReceiptConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

type OrgConfig struct {
	Name     string
	Location string
	Email    string
	Phone    string
	Website  string
	TimeZone *time.Location

	BankName          string
	BankAccountName   string
	BankAccountNumber string
	BankSwiftCode     string
}

type EngagementConfig struct {
	NewsletterDelay time.Duration
	ContactDelay    time.Duration
}

type AppConfig struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Donation   DonationConfig
	Receipt    ReceiptConfig
	Org        OrgConfig
	Engagement EngagementConfig
	GalleryDir string
}

// Load reads the environment. Malformed values fall back to their defaults with a [WARN] line.
func Load() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:           GetEnv("PORT", "3000"),
			RequestTimeout: envDuration("REQUEST_TIMEOUT", 10*time.Second),
			CorsOrigins:    envList("CORS_ALLOW_ORIGINS", "*"),
			LogTimeZone:    GetEnv("LOG_TIMEZONE", "Africa/Kampala"),
		},
		Database: DatabaseConfig{
			Driver:        strings.ToLower(GetEnv("DB_DRIVER", "postgres")),
			URL:           GetEnv("DATABASE_URL"),
			Host:          GetEnv("DB_HOST", "localhost"),
			Port:          GetEnv("DB_PORT", "5432"),
			User:          GetEnv("DB_USER"),
			Password:      GetEnv("DB_PASSWORD"),
			Name:          GetEnv("DB_NAME", "globalhearts"),
			SSLMode:       GetEnv("DB_SSLMODE", "require"),
			SQLitePath:    GetEnv("SQLITE_PATH", "globalhearts.db"),
			AutoMigrate:   envBool("DB_AUTO_MIGRATE", true),
			Seed:          envBool("DB_SEED", true),
			SeedDir:       GetEnv("SEED_DIR", "internals/seeds/content"),
			SlowThreshold: envDuration("DB_SLOW_THRESHOLD", 200*time.Millisecond),
			LogQueries:    envBool("DB_LOG_QUERIES", false),
		},
		Donation: DonationConfig{
			ProcessingDelay: envDuration("DONATION_PROCESSING_DELAY", 2*time.Second),
			RequirePolicy:   envBool("DONATION_REQUIRE_POLICY", true),
			SessionTTL:      envDuration("DONATION_SESSION_TTL", 30*time.Minute),
			ReaperSchedule:  GetEnv("DONATION_SESSION_REAPER_CRON", "@every 1m"),
			ReviewThreshold: envDecimal("DONATION_REVIEW_THRESHOLD", decimal.NewFromInt(1000)),
			ReviewWindow:    envDuration("DONATION_REVIEW_WINDOW", time.Minute),
			TxPrefix:        GetEnv("DONATION_TX_PREFIX", "GHC"),
			WaitTimeout:     envDuration("DONATION_WAIT_TIMEOUT", 5*time.Second),
		},
		Receipt: ReceiptConfig{
			TokenSecret: GetEnv("RECEIPT_TOKEN_SECRET"),
			TokenTTL:    envDuration("RECEIPT_TOKEN_TTL", 15*time.Minute),
		},
		Org: OrgConfig{
			Name:              GetEnv("ORG_NAME", "Global Hearts Community"),
			Location:          GetEnv("ORG_LOCATION", "Sironko, Uganda"),
			Email:             GetEnv("ORG_EMAIL", "info@globalheartsug.org"),
			Phone:             GetEnv("ORG_PHONE", "+256 700 000 000"),
			Website:           GetEnv("ORG_WEBSITE", "https://globalheartsug.org"),
			TimeZone:          envLocation("ORG_TIMEZONE", "Africa/Kampala"),
			BankName:          GetEnv("BANK_NAME"),
			BankAccountName:   GetEnv("BANK_ACCOUNT_NAME"),
			BankAccountNumber: GetEnv("BANK_ACCOUNT_NUMBER"),
			BankSwiftCode:     GetEnv("BANK_SWIFT_CODE"),
		},
		Engagement: EngagementConfig{
			NewsletterDelay: envDuration("NEWSLETTER_DELAY", time.Second),
			ContactDelay:    envDuration("CONTACT_DELAY", 500*time.Millisecond),
		},
		GalleryDir: GetEnv("GALLERY_DIR", "public/gallery"),
	}
}

/* ===================== parsers ===================== */

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("[WARN] %s=%q is not a valid duration, using %s", key, raw, def)
		return def
	}
	return d
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a valid bool, using %v", key, raw, def)
		return def
	}
	return b
}

func envDecimal(key string, def decimal.Decimal) decimal.Decimal {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return def
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		log.Printf("[WARN] %s=%q is not a positive amount, using %s", key, raw, def)
		return def
	}
	return d
}

func envList(key, def string) []string {
	var out []string
	for _, p := range strings.Split(GetEnv(key, def), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envLocation(key, def string) *time.Location {
	name := GetEnv(key, def)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a known time zone, using UTC", key, name)
		return time.UTC
	}
	return loc
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel

	// LogQueries prints every statement, not just slow or failed ones.
	LogQueries bool
}

func NewGormLogger(cfg DatabaseConfig) gormLogger.Interface {
	slow := cfg.SlowThreshold
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return &GormLogger{
		SlowThreshold: slow,
		LogLevel:      gormLogger.Info,
		LogQueries:    cfg.LogQueries,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && err != gormLogger.ErrRecordNotFound:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogQueries:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
