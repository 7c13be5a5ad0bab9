package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServiceName string
	Env         string
	LogLevel    string

	HTTPPort int

	MongoURI string
	MongoDB  string

	StripeSecretKey string

	// UploadPathPrefix marks product image references stored as local
	// relative paths; the cart view rewrites them to absolute URLs.
	UploadPathPrefix string

	AdminUsername string
	AdminPassword string
}

func Load() Config {
	return Config{
		ServiceName:      getEnv("SERVICE_NAME", "ecommerce-api"),
		Env:              getEnv("ENV", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		HTTPPort:         getEnvInt("HTTP_PORT", 8080),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDB:          getEnv("MONGO_DB", "ecommerce"),
		StripeSecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
		UploadPathPrefix: getEnv("UPLOAD_PATH_PREFIX", "uploads/"),
		AdminUsername:    getEnv("ADMIN_USERNAME", ""),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
