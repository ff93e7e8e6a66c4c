package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr    string
	GinMode    string
	DBUser     string
	DBPass     string
	DBHost     string
	DBPort     string
	DBName     string
	JWTSecret  string
	BcryptCost int
	RedisAddr  string
	RedisPass  string
	RedisDB    int
}

// LoadEnv reads configuration from the environment, with .env as a
// development convenience. Only JWT_SECRET is strictly required.
func LoadEnv() Env {
	_ = godotenv.Load()

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return Env{
		AppAddr:    getEnv("APP_ADDR", ":3001"),
		GinMode:    strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:     getEnv("DB_USER", "root"),
		DBPass:     os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "Travels"),
		JWTSecret:  secret,
		BcryptCost: getEnvInt("BCRYPT_COST", 10),
		RedisAddr:  strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
