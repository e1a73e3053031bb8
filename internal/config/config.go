package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"auction-house/utils"
)

// DB holds the Postgres connection settings
type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Config holds all runtime settings for the service
type Config struct {
	ServerPort     int
	DB             DB
	MigrationsPath string
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// LoadDB reads the database settings from the environment
func LoadDB() DB {
	return DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "password"),
		Name:     getEnv("DB_NAME", "auction_house"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// LoadConfig loads .env if present, then reads settings from the environment
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Warn(".env file not found, using environment variables", nil)
	}

	return &Config{
		ServerPort:     getEnvAsInt("SERVER_PORT", 8080),
		DB:             LoadDB(),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_create_tables.sql"),
	}
}
