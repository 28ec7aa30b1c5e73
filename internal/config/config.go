package config

import (
	"flag"
	"fmt"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultDatabaseDSN   = "file:inkpot.db?_pragma=foreign_keys(1)"
	defaultAuthSecret    = "dev-secret-key"
	defaultBaseURL       = "localhost:8081"
	defaultSummaryLength = 100
	defaultSessionTTL    = 24 * time.Hour
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`

	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`
	ServerURL   string `env:"-"`

	// Отображение статей автора
	DisplayTZ     string        `env:"DISPLAY_TZ"`
	SummaryLength int           `env:"SUMMARY_LENGTH"`
	SessionTTL    time.Duration `env:"SESSION_TTL"`

	// LocationErr: почему DisplayTZ не загрузилась (тогда даты показываются в UTC)
	LocationErr error `env:"-"`
	location    *time.Location
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или sqlite file:)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the HTTP server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "mark session cookies as Secure and use https in ServerURL")
	flag.StringVar(&cfg.DisplayTZ, "tz", cfg.DisplayTZ, "IANA time zone used to display article dates")
	flag.IntVar(&cfg.SummaryLength, "summary-length", cfg.SummaryLength, "max runes kept in an article summary")
	flag.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "lifetime of the login cookie")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DatabaseDSN == "" {
		c.DatabaseDSN = defaultDatabaseDSN
	}
	if c.AuthSecret == "" {
		c.AuthSecret = defaultAuthSecret
	}
	// BaseURL: только "address:port" (без схемы и пути), иначе дефолт
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(c.BaseURL) {
		c.BaseURL = defaultBaseURL
	}
	if c.EnableHTTPS {
		c.ServerURL = "https://" + c.BaseURL
	} else {
		c.ServerURL = "http://" + c.BaseURL
	}
	if c.DisplayTZ == "" {
		c.DisplayTZ = "UTC"
	}
	c.location, c.LocationErr = loadLocation(c.DisplayTZ)
	if c.SummaryLength <= 0 {
		c.SummaryLength = defaultSummaryLength
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = defaultSessionTTL
	}
}

// Location returns the display time zone, UTC when DisplayTZ is unknown.
// NewConfig resolves it once; a Config built by hand resolves it on each call.
func (c *Config) Location() *time.Location {
	if c.location != nil {
		return c.location
	}
	loc, _ := loadLocation(c.DisplayTZ)
	return loc
}

func loadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return loc, nil
}
