package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Dataset Config
	DatasetPath string `env:"DATASET_PATH" envDefault:"data/incidents.json"`

	// Session Config
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`

	// Stream Config
	StreamBuffer    int           `env:"STREAM_BUFFER" envDefault:"64"`
	StreamHeartbeat time.Duration `env:"STREAM_HEARTBEAT" envDefault:"15s"`

	// Map Config
	MinSelectZoom    int     `env:"MIN_SELECT_ZOOM" envDefault:"15"`
	DefaultZoom      int     `env:"DEFAULT_ZOOM" envDefault:"10"`
	DefaultCenterLat float64 `env:"DEFAULT_CENTER_LAT" envDefault:"-34.4278"`
	DefaultCenterLng float64 `env:"DEFAULT_CENTER_LNG" envDefault:"150.8931"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		DatasetPath:          getEnv("DATASET_PATH", "data/incidents.json"),
		SessionTTL:           getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SessionSweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		StreamBuffer:         getEnvAsInt("STREAM_BUFFER", 64),
		StreamHeartbeat:      getEnvAsDuration("STREAM_HEARTBEAT", 15*time.Second),
		MinSelectZoom:        getEnvAsInt("MIN_SELECT_ZOOM", 15),
		DefaultZoom:          getEnvAsInt("DEFAULT_ZOOM", 10),
		DefaultCenterLat:     getEnvAsFloat("DEFAULT_CENTER_LAT", -34.4278),
		DefaultCenterLng:     getEnvAsFloat("DEFAULT_CENTER_LNG", 150.8931),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatasetPath == "" {
		return nil, fmt.Errorf("DATASET_PATH environment variable is required")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.SessionSweepInterval <= 0 {
		return nil, fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if cfg.StreamBuffer <= 0 {
		return nil, fmt.Errorf("STREAM_BUFFER must be positive")
	}
	if cfg.MinSelectZoom < 0 || cfg.MinSelectZoom > 22 {
		return nil, fmt.Errorf("MIN_SELECT_ZOOM must be between 0 and 22")
	}
	if cfg.DefaultZoom < 0 || cfg.DefaultZoom > 22 {
		return nil, fmt.Errorf("DEFAULT_ZOOM must be between 0 and 22")
	}
	if cfg.DefaultCenterLat < -90 || cfg.DefaultCenterLat > 90 {
		return nil, fmt.Errorf("DEFAULT_CENTER_LAT must be between -90 and 90")
	}
	if cfg.DefaultCenterLng < -180 || cfg.DefaultCenterLng > 180 {
		return nil, fmt.Errorf("DEFAULT_CENTER_LNG must be between -180 and 180")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
