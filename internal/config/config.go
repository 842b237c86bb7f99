package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	MongoURI    string
	MongoDBName string

	RedisAddr     string
	RedisPassword string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	SessionSecret string
	SessionTTL    time.Duration

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string

	ImageKitPrivateKey string

	ReconcileInterval time.Duration
	ReconcileMinAge   time.Duration
	ReconcileExpiry   time.Duration

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB_NAME", "imagestore"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RazorpayKeyID:         getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret:     getEnv("RAZORPAY_KEY_SECRET", ""),
		RazorpayWebhookSecret: getEnv("RAZORPAY_WEBHOOK_SECRET", ""),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    getDuration("SESSION_TTL", 30*24*time.Hour),

		SMTPHost: getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort: getInt("SMTP_PORT", 25),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		MailFrom: getEnv("MAIL_FROM", "orders@imagestore.local"),

		ImageKitPrivateKey: getEnv("IMAGEKIT_PRIVATE_KEY", ""),

		ReconcileInterval: getDuration("RECONCILE_INTERVAL", 5*time.Minute),
		ReconcileMinAge:   getDuration("RECONCILE_MIN_AGE", 15*time.Minute),
		ReconcileExpiry:   getDuration("RECONCILE_EXPIRY", 24*time.Hour),

		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
