package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	Port               string
	LogLevel           string
	ProductsFile       string
	CatalogDatabaseURL string
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	QuizResultTTL      time.Duration
	OriginURL          string
	DefaultCurrency    string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	ttl, err := time.ParseDuration(getEnv("QUIZ_RESULT_TTL", "720h"))
	if err != nil || ttl <= 0 {
		ttl = 720 * time.Hour
	}

	AppConfig = &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("APP_PORT", getEnv("PORT", "5000")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		ProductsFile:       getEnv("PRODUCTS_FILE", "data/all-products.json"),
		CatalogDatabaseURL: os.Getenv("CATALOG_DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		QuizResultTTL:      ttl,
		OriginURL:          os.Getenv("ORIGIN_URL"),
		DefaultCurrency:    getEnv("DEFAULT_CURRENCY", "AED"),
	}
	return AppConfig
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}
