package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	RedisPassword  string
	JWTSecret      []byte
	AllowedOrigins []string
	AdminEmail     string
	AdminPassword  string
	ReadyTimeout   time.Duration
}

// Load reads .env (if present) and the environment. Missing values fall
// back to development defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := Config{
		Port:          env("PORT", "8080"),
		MongoDatabase: env("MONGO_DATABASE", "zerodefect"),
		RedisAddr:     env("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     []byte(env("JWT_SECRET", "SECRET")),
		AdminEmail:    env("ADMIN_EMAIL", "admin@zerodefect.com"),
		AdminPassword: env("ADMIN_PASSWORD", "admin123"),
		ReadyTimeout:  5 * time.Second,
	}

	cfg.MongoURI = os.Getenv("MONGO_PUBLIC_URL")
	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("MONGO_URL")
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}

	origins := env("ALLOWED_ORIGINS", "https://www.zerodefectexport.com")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
