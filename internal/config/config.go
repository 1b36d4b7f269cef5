package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Report   ReportConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Path           string
	MaxConnections int
	MaxIdleConns   int
}

// ReportConfig controls document formatting. Currency symbol and decimal
// precision are configuration, not hardcoded literals, so a deployment can
// localize its reports.
type ReportConfig struct {
	CurrencySymbol     string
	DecimalPrecision   int
	ConfidentialNotice string
	ChartTimeout       time.Duration
	PageBreakThreshold float64
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	// .env is optional; real env vars always win
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration overrides from .env")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Path:           getEnv("DB_PATH", "expense_manager.db"),
			MaxConnections: getIntEnv("DB_MAX_CONNECTIONS", 1),
			MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 1),
		},
		Report: ReportConfig{
			CurrencySymbol:     getEnv("REPORT_CURRENCY_SYMBOL", "$"),
			DecimalPrecision:   getIntEnv("REPORT_DECIMAL_PRECISION", 2),
			ConfidentialNotice: getEnv("REPORT_CONFIDENTIAL_NOTICE", "Confidential - For Personal Use Only"),
			ChartTimeout:       getDurationEnv("REPORT_CHART_TIMEOUT", 10*time.Second),
			PageBreakThreshold: getFloatEnv("REPORT_PAGE_BREAK_THRESHOLD", 240),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
