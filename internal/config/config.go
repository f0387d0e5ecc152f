package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Rxdxy/grooming-booking/internal/domain"
)

// Config конфигурация сервиса, загружаемая из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN собирает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig расписание работы выездной бригады
// Единственная таймзона бизнеса, рабочие часы и длительность слота
type ScheduleConfig struct {
	Timezone            string `toml:"timezone"`
	BusinessOpenHour    int    `toml:"business_open_hour"`
	BusinessCloseHour   int    `toml:"business_close_hour"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
}

// ToDomain конвертирует конфигурацию расписания в доменную модель,
// загружая таймзону бизнеса
func (s ScheduleConfig) ToDomain() (domain.Schedule, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: failed to load timezone %q: %w", s.Timezone, err)
	}

	return domain.Schedule{
		SlotDurationMinutes: s.SlotDurationMinutes,
		OpenHour:            s.BusinessOpenHour,
		CloseHour:           s.BusinessCloseHour,
		Location:            loc,
	}, nil
}

// Load загружает конфигурацию из TOML-файла и применяет дефолты
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "grooming-booking"
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = domain.DefaultTimezone
	}
	if c.Schedule.BusinessOpenHour == 0 {
		c.Schedule.BusinessOpenHour = domain.DefaultOpenHour
	}
	if c.Schedule.BusinessCloseHour == 0 {
		c.Schedule.BusinessCloseHour = domain.DefaultCloseHour
	}
	if c.Schedule.SlotDurationMinutes == 0 {
		c.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
}

func (c *Config) validate() error {
	if c.Schedule.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		c.Schedule.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("config: slot_duration_minutes must be between %d and %d",
			domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if c.Schedule.BusinessOpenHour < 0 || c.Schedule.BusinessOpenHour > 23 {
		return fmt.Errorf("config: business_open_hour must be between 0 and 23")
	}
	if c.Schedule.BusinessCloseHour < 0 || c.Schedule.BusinessCloseHour > 24 {
		return fmt.Errorf("config: business_close_hour must be between 0 and 24")
	}
	return nil
}
