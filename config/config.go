package config

import (
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	FromEmail string
}

type AppConfig struct {
	Port        string
	Database    DatabaseConfig
	SMTP        SMTPConfig
	JWTSecret   string
	GroqAPIKey  string
	Environment string
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "jobportal"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetSMTPConfig() SMTPConfig {
	return SMTPConfig{
		Host:      getEnv("SMTP_HOST", ""),
		Port:      getEnv("SMTP_PORT", "587"),
		Username:  getEnv("SMTP_USERNAME", ""),
		Password:  getEnv("SMTP_PASSWORD", ""),
		FromEmail: getEnv("FROM_EMAIL", "no-reply@jobportal.com"),
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:        getEnv("PORT", "8080"),
		Database:    GetDatabaseConfig(),
		SMTP:        GetSMTPConfig(),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
