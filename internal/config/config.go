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
	HTTPPort     string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"web/templates"`

	// Upstream credentials
	FIRMSKey       string `env:"FIRMS_KEY"`
	OpenWeatherKey string `env:"OPENWEATHER_KEY"`
	OpenETKey      string `env:"OPENET_KEY"`

	// Upstream endpoints
	FIRMSBaseURL       string `env:"FIRMS_BASE_URL" envDefault:"https://firms.modaps.eosdis.nasa.gov"`
	OpenWeatherBaseURL string `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`
	OpenETBaseURL      string `env:"OPENET_BASE_URL" envDefault:"https://openet-api.org"`

	FIRMSTimeout   time.Duration `env:"FIRMS_TIMEOUT" envDefault:"20s"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"15s"`
	OpenETTimeout  time.Duration `env:"OPENET_TIMEOUT" envDefault:"30s"`

	// Fetch window
	FIRMSSource   string  `env:"FIRMS_SOURCE" envDefault:"VIIRS_SNPP_NRT"`
	FireRadiusDeg float64 `env:"FIRE_RADIUS_DEG" envDefault:"0.5"`
	DaysBack      int     `env:"DAYS_BACK" envDefault:"7"`
	Timezone      string  `env:"TIMEZONE" envDefault:"America/Los_Angeles"`

	// Query defaults
	DefaultLat       float64 `env:"DEFAULT_LAT" envDefault:"37.6"`
	DefaultLon       float64 `env:"DEFAULT_LON" envDefault:"-120.9"`
	DefaultPerimeter float64 `env:"DEFAULT_PERIMETER" envDefault:"50"`
	DefaultPump      float64 `env:"DEFAULT_PUMP" envDefault:"4250"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`

	// API Keys for authentication, empty disables the check
	APIKeys []string `env:"API_KEYS"`

	// Archive (optional)
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config (optional, alert queue)
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Kafka Config (optional, record stream)
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"presoak-records"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
	AlertMinBand      string        `env:"ALERT_MIN_BAND" envDefault:"HIGH"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		TemplatesDir:       getEnv("TEMPLATES_DIR", "web/templates"),
		FIRMSKey:           os.Getenv("FIRMS_KEY"),
		OpenWeatherKey:     os.Getenv("OPENWEATHER_KEY"),
		OpenETKey:          os.Getenv("OPENET_KEY"),
		FIRMSBaseURL:       getEnv("FIRMS_BASE_URL", "https://firms.modaps.eosdis.nasa.gov"),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		OpenETBaseURL:      getEnv("OPENET_BASE_URL", "https://openet-api.org"),
		FIRMSTimeout:       getEnvAsDuration("FIRMS_TIMEOUT", 20*time.Second),
		WeatherTimeout:     getEnvAsDuration("WEATHER_TIMEOUT", 15*time.Second),
		OpenETTimeout:      getEnvAsDuration("OPENET_TIMEOUT", 30*time.Second),
		FIRMSSource:        getEnv("FIRMS_SOURCE", "VIIRS_SNPP_NRT"),
		FireRadiusDeg:      getEnvAsFloat("FIRE_RADIUS_DEG", 0.5),
		DaysBack:           getEnvAsInt("DAYS_BACK", 7),
		Timezone:           getEnv("TIMEZONE", "America/Los_Angeles"),
		DefaultLat:         getEnvAsFloat("DEFAULT_LAT", 37.6),
		DefaultLon:         getEnvAsFloat("DEFAULT_LON", -120.9),
		DefaultPerimeter:   getEnvAsFloat("DEFAULT_PERIMETER", 50),
		DefaultPump:        getEnvAsFloat("DEFAULT_PUMP", 4250),
		CORSOrigins:        getEnvAsList("CORS_ORIGINS", []string{"*"}),
		APIKeys:            getEnvAsList("API_KEYS", nil),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		KafkaBrokers:       getEnvAsList("KAFKA_BROKERS", nil),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "presoak-records"),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		AlertMinBand:       strings.ToUpper(getEnv("ALERT_MIN_BAND", "HIGH")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные ключи и диапазоны значений
func (c *Config) Validate() error {
	var missing []string
	if c.FIRMSKey == "" {
		missing = append(missing, "FIRMS_KEY")
	}
	if c.OpenWeatherKey == "" {
		missing = append(missing, "OPENWEATHER_KEY")
	}
	if c.OpenETKey == "" {
		missing = append(missing, "OPENET_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("required environment variables are not set: %s", strings.Join(missing, ", "))
	}

	if c.DaysBack < 1 {
		return fmt.Errorf("DAYS_BACK must be positive, got %d", c.DaysBack)
	}
	if c.FireRadiusDeg <= 0 {
		return fmt.Errorf("FIRE_RADIUS_DEG must be positive, got %v", c.FireRadiusDeg)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	switch c.AlertMinBand {
	case "LOW", "MODERATE", "HIGH", "CRITICAL":
	default:
		return fmt.Errorf("invalid ALERT_MIN_BAND %q", c.AlertMinBand)
	}
	return nil
}

// Location возвращает часовой пояс для дат датасета
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
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

// getEnvAsList разбирает список через запятую
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
