// Package config загружает конфигурацию сервиса из TOML файла и переменных окружения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

// DefaultEnvFile файл с переменными окружения для локальной разработки
const DefaultEnvFile = ".env"

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig   `toml:"server"`
	Database    DatabaseConfig `toml:"database"`
	Logs        LogsConfig     `toml:"logs"`
	Metrics     MetricsConfig  `toml:"metrics"`
	PricingFile PricingConfig  `toml:"-"` // Разбирается отдельно, см. decodePricing
}

// ServerConfig настройки HTTP сервера. Таймауты в секундах.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"oneof=debug info warn warning error"`
	File  string `toml:"file"` // Пустая строка - только stdout
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// PricingConfig параметры цены и инвентаря.
// Структурно не валидируются: некорректные значения заменяются значениями по умолчанию в Pricing().
type PricingConfig struct {
	TotalDomes int     `toml:"total_domes"`
	BaseRate   float64 `toml:"base_rate"`
	Currency   string  `toml:"currency"`
}

// Load загружает конфигурацию из TOML файла, .env и переменных окружения.
// Переменные окружения имеют приоритет над файлом.
func Load(path string) (*Config, error) {
	return load(path, DefaultEnvFile)
}

func load(path, envFile string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.decodePricing(string(data)); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// Уже заданные переменные окружения .env не перезаписывает
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", envFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// decodePricing разбирает секцию [pricing] без строгой типизации.
// Значение неверного типа не ошибка: поле обнуляется и Pricing() подставит значение по умолчанию.
func (c *Config) decodePricing(data string) error {
	var raw struct {
		Pricing map[string]interface{} `toml:"pricing"`
	}
	if _, err := toml.Decode(data, &raw); err != nil {
		return err
	}

	c.PricingFile = PricingConfig{
		TotalDomes: coerceInt(raw.Pricing["total_domes"]),
		BaseRate:   coerceFloat(raw.Pricing["base_rate"]),
	}
	if code, ok := raw.Pricing["currency"].(string); ok {
		c.PricingFile.Currency = code
	}

	return nil
}

// coerceInt приводит значение TOML к целому. Дробные и нечисловые значения дают 0.
func coerceInt(v interface{}) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return int(n)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

// coerceFloat приводит значение TOML к числу. Нечисловые значения дают 0.
func coerceFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

func (c *Config) applyEnv() error {
	intVars := map[string]*int{
		"HTTP_PORT": &c.Server.HTTPPort,
		"DB_PORT":   &c.Database.Port,
	}
	for name, dst := range intVars {
		raw, ok := lookupEnv(name)
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s must be an integer: %w", name, err)
		}
		*dst = v
	}

	stringVars := map[string]*string{
		"DB_HOST":     &c.Database.Host,
		"DB_USER":     &c.Database.User,
		"DB_PASSWORD": &c.Database.Password,
		"DB_NAME":     &c.Database.DBName,
		"DB_SSLMODE":  &c.Database.SSLMode,
		"LOG_LEVEL":   &c.Logs.Level,
		"CURRENCY":    &c.PricingFile.Currency,
	}
	for name, dst := range stringVars {
		if raw, ok := lookupEnv(name); ok {
			*dst = raw
		}
	}

	// Некорректные значения цены не ошибка: обнуляем, Pricing() подставит значение по умолчанию
	if raw, ok := lookupEnv("TOTAL_DOMES"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			v = 0
		}
		c.PricingFile.TotalDomes = v
	}
	if raw, ok := lookupEnv("BASE_RATE_PEN"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			v = 0
		}
		c.PricingFile.BaseRate = v
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = c.Database.MaxOpenConns / 2
	}

	c.Logs.Level = strings.ToLower(strings.TrimSpace(c.Logs.Level))
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Pricing возвращает параметры цены для usecase.
// Значения разрешаются один раз при старте: не положительные, NaN и Inf
// заменяются значениями по умолчанию, неизвестная валюта тоже.
func (c *Config) Pricing() domain.Pricing {
	pricing := domain.DefaultPricing()

	if c.PricingFile.TotalDomes > 0 {
		pricing.TotalDomesFallback = c.PricingFile.TotalDomes
	}

	rate := c.PricingFile.BaseRate
	if rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate) {
		pricing.BaseRate = rate
	}

	if code := strings.TrimSpace(c.PricingFile.Currency); code != "" {
		if unit, err := currency.ParseISO(code); err == nil {
			pricing.Currency = unit.String()
		}
	}

	return pricing
}

func lookupEnv(name string) (string, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	return raw, true
}
