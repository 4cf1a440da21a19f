package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	HOST        string
	DatabaseURL string

	// Redis Settings (session carts)
	RedisAddr     string
	RedisPassword string

	// JWT Settings
	JWTSecret     string
	JWTExpiration time.Duration

	// Admin seed account
	AdminEmail    string
	AdminPassword string

	// Storefront Settings
	WhatsAppNumber string
	ChatBackendURL string

	// CORS Settings
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
}

func LoadConfig() *Config {
	// Load configuration from .env when present, otherwise rely on the
	// process environment (containers, CI)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "8080"),
		HOST:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: getDurationEnv("JWT_EXPIRES_IN", 72*time.Hour),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@uvcsolar.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme123"),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "2349031899544"),
		ChatBackendURL: os.Getenv("CHAT_BACKEND_URL"),

		CORSAllowOrigins: []string{"*"},
		CORSAllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		CORSAllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Cart-Token"},
	}

	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s value %q, using %s", key, value, fallback)
		return fallback
	}
	return duration
}
