package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds every process-wide setting. It is loaded and validated once
// at startup and passed explicitly to each component constructor; nothing
// reads ambient global state after that.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Webhook  WebhookConfig  `toml:"webhook"`
	Calendar CalendarConfig `toml:"calendar"`
	Pricing  PricingConfig  `toml:"pricing"`
	Agenda   AgendaConfig   `toml:"agenda"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig HTTP server settings (timeouts in seconds)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// WebhookConfig inbound webhook authentication
type WebhookConfig struct {
	// Token is the shared secret compared against the X-Webhook-Token
	// header on every bot request.
	Token string `toml:"token"`
}

// CalendarConfig Calendar Gateway settings
type CalendarConfig struct {
	CalendarID      string `toml:"calendar_id"`
	CredentialsFile string `toml:"credentials_file"`
	Timezone        string `toml:"timezone"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	ListPageSize    int    `toml:"list_page_size"`
	ListRetries     int    `toml:"list_retries"`
}

// PricingConfig appointment pricing settings
type PricingConfig struct {
	BasePrice    float64 `toml:"base_price"`
	EveningPrice float64 `toml:"evening_price"`
	EveningHour  int     `toml:"evening_hour"`
}

// AgendaConfig daily booking window and appointment locations
type AgendaConfig struct {
	// FirstHour and LastHour bound the bookable start hours, inclusive:
	// 8 and 22 yield the hourly slots 08:00 through 22:00.
	FirstHour        int    `toml:"first_hour"`
	LastHour         int    `toml:"last_hour"`
	LocationInPerson string `toml:"location_in_person"`
	LocationOnline   string `toml:"location_online"`
}

// DatabaseConfig optional Postgres reservation index settings
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the Postgres connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every setting the service cannot run without is
// present. Missing startup configuration is the only fatal condition in
// the whole service.
func (c *Config) Validate() error {
	if c.Webhook.Token == "" {
		return errors.New("config: webhook.token is required")
	}
	if c.Calendar.CalendarID == "" {
		return errors.New("config: calendar.calendar_id is required")
	}
	if c.Calendar.CredentialsFile == "" {
		return errors.New("config: calendar.credentials_file is required")
	}
	if c.Calendar.Timezone == "" {
		return errors.New("config: calendar.timezone is required")
	}
	if c.Pricing.EveningHour < 0 || c.Pricing.EveningHour > 23 {
		return fmt.Errorf("config: pricing.evening_hour must be within 0..23, got %d", c.Pricing.EveningHour)
	}
	if c.Agenda.FirstHour < 0 || c.Agenda.LastHour > 23 || c.Agenda.FirstHour > c.Agenda.LastHour {
		return fmt.Errorf("config: invalid agenda hours %d..%d", c.Agenda.FirstHour, c.Agenda.LastHour)
	}
	if c.Database.Enabled {
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("config: database.host and database.dbname are required when the index is enabled")
		}
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "agenda-service",
			Path:        "/metrics",
		},
		Calendar: CalendarConfig{
			Timezone:       "America/Sao_Paulo",
			TimeoutSeconds: 10,
			ListPageSize:   50,
			ListRetries:    2,
		},
		Pricing: PricingConfig{
			BasePrice:    150.00,
			EveningPrice: 200.00,
			EveningHour:  18,
		},
		Agenda: AgendaConfig{
			FirstHour:        8,
			LastHour:         22,
			LocationInPerson: "Clínica SaúdeSim - Av. Paulista, 1000 - São Paulo/SP",
			LocationOnline:   "Atendimento online (link enviado antes da consulta)",
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}
