package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/danielnamimi665/barber-shop-web/internal/domain"
	"github.com/danielnamimi665/barber-shop-web/pkg/types"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Redis           RedisConfig           `toml:"redis"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Schedule        ScheduleConfig        `toml:"schedule"`
	Cleanup         CleanupConfig         `toml:"cleanup"`
	IdentityService IdentityServiceConfig `toml:"identity_service"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN собирает строку подключения
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis для фан-аута событий изменения записей.
// При Enabled=false уведомления отключены — клиенты живут на одном поллинге.
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Channel  string `toml:"channel"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig настройки дневной сетки слотов
type ScheduleConfig struct {
	Timezone            string `toml:"timezone"`
	OpenTime            string `toml:"open_time"`
	CloseTime           string `toml:"close_time"`
	SlotDurationMinutes int    `toml:"slot_duration_minutes"`
	BookingWindowDays   int    `toml:"booking_window_days"`
}

// CleanupConfig настройки фоновой чистки просроченных записей
type CleanupConfig struct {
	IntervalSeconds int `toml:"interval_seconds"`
}

// IdentityServiceConfig настройки внешнего auth-провайдера.
// При пустом URL middleware доверяет заголовку X-User-ID.
type IdentityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if _, err := cfg.DomainSchedule(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Database.MigrationsPath == "" {
		cfg.Database.MigrationsPath = "migrations"
	}
	if cfg.Redis.Channel == "" {
		cfg.Redis.Channel = "appointments_sync"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "barber-shop-web"
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = domain.DefaultTimezone
	}
	if cfg.Schedule.OpenTime == "" {
		cfg.Schedule.OpenTime = domain.DefaultOpenTime
	}
	if cfg.Schedule.CloseTime == "" {
		cfg.Schedule.CloseTime = domain.DefaultCloseTime
	}
	if cfg.Schedule.SlotDurationMinutes == 0 {
		cfg.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cfg.Schedule.BookingWindowDays == 0 {
		cfg.Schedule.BookingWindowDays = domain.DefaultBookingWindowDays
	}
	if cfg.Cleanup.IntervalSeconds == 0 {
		cfg.Cleanup.IntervalSeconds = 300
	}
	if cfg.IdentityService.Timeout == 0 {
		cfg.IdentityService.Timeout = 5
	}
}

// DomainSchedule конвертирует TOML-секцию в доменную модель расписания
func (c *Config) DomainSchedule() (domain.ScheduleConfig, error) {
	open, err := types.NewTimeStringFromString(c.Schedule.OpenTime)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("config: invalid schedule.open_time: %w", err)
	}

	closeT, err := types.NewTimeStringFromString(c.Schedule.CloseTime)
	if err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("config: invalid schedule.close_time: %w", err)
	}

	schedule := domain.ScheduleConfig{
		Timezone:            c.Schedule.Timezone,
		OpenTime:            open,
		CloseTime:           closeT,
		SlotDurationMinutes: c.Schedule.SlotDurationMinutes,
		BookingWindowDays:   c.Schedule.BookingWindowDays,
	}

	if err := schedule.Validate(); err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("config: %w", err)
	}

	return schedule, nil
}
