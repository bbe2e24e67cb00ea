package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type Config struct {
	AppPort           string
	AppEnv            string
	LogLevel          string
	TranslationFolder string
	ShutdownTimeout   time.Duration

	DbDriver   string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string
	SQLitePath string

	AutoMigrate    bool
	SeedCategories bool

	CorsAllowedOrigins []string
	TrustedProxies     []string

	CacheDriver   string
	CacheTTL      time.Duration
	CacheSize     int
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		AppPort:           v.GetString("APP_PORT"),
		AppEnv:            v.GetString("APP_ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		TranslationFolder: v.GetString("TRANSLATION_FOLDER"),
		ShutdownTimeout:   v.GetDuration("SHUTDOWN_TIMEOUT"),

		DbDriver:   strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DbHost:     v.GetString("MYSQL_HOST"),
		DbPort:     v.GetString("MYSQL_PORT"),
		DbUser:     v.GetString("MYSQL_USER"),
		DbPassword: v.GetString("MYSQL_PASSWORD"),
		DbName:     v.GetString("MYSQL_DATABASE"),
		DbParams:   v.GetString("MYSQL_PARAMS"),
		SQLitePath: v.GetString("SQLITE_PATH"),

		AutoMigrate:    v.GetBool("AUTO_MIGRATE"),
		SeedCategories: v.GetBool("SEED_CATEGORIES"),

		CorsAllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		TrustedProxies:     parseList(v.GetString("TRUSTED_PROXIES")),

		CacheDriver:   strings.ToLower(strings.TrimSpace(v.GetString("CACHE_DRIVER"))),
		CacheTTL:      v.GetDuration("CACHE_TTL"),
		CacheSize:     v.GetInt("CACHE_SIZE"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TRANSLATION_FOLDER", "pkg/translator/translation")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("MYSQL_HOST", "db")
	v.SetDefault("MYSQL_PORT", "3306")
	v.SetDefault("MYSQL_USER", "shoplist")
	v.SetDefault("MYSQL_PASSWORD", "shoplist")
	v.SetDefault("MYSQL_DATABASE", "shoplist")
	v.SetDefault("MYSQL_PARAMS", "parseTime=true&loc=UTC")
	v.SetDefault("SQLITE_PATH", "shoplist.db")

	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("SEED_CATEGORIES", false)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8080")

	v.SetDefault("CACHE_DRIVER", CacheMemory)
	v.SetDefault("CACHE_TTL", "1m")
	v.SetDefault("CACHE_SIZE", 8)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		values = append(values, entry)
	}

	if len(values) == 0 {
		return nil
	}

	return values
}
