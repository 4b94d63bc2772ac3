package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting read from the environment.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	JWTSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	GeminiAPIKey string
	GeminiModel  string

	SendGridAPIKey string
	MailFromName   string
	MailFromEmail  string

	AWSRegion     string
	AWSBucketName string

	RateLimit string // limiter format, e.g. "30-M"
	RedisURL  string

	AllowedOrigin string

	LogLevel string
	LogDev   bool
	LogFile  string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	return Config{
		Port:     getEnv("PORT", "8080"),
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		MongoDB:  getEnv("MONGO_DB", "ayush-ai"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFromName:   getEnv("MAIL_FROM_NAME", "Ayush AI"),
		MailFromEmail:  getEnv("MAIL_FROM_EMAIL", "no-reply@ayush-ai.app"),

		AWSRegion:     getEnv("AWS_REGION", "ap-south-1"),
		AWSBucketName: os.Getenv("AWS_BUCKET_NAME"),

		RateLimit: getEnv("RATE_LIMIT", "30-M"),
		RedisURL:  os.Getenv("REDIS_URL"),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogDev:   isTrue(os.Getenv("LOG_DEV")),
		LogFile:  os.Getenv("LOG_FILE"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func isTrue(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
