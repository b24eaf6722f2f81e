package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	Env                     string
	LogLevel                string
	FrontendURL             string
	PostgresConnStr         string
	DBMaxOpenConns          int
	SeedDemoData            bool
	FirebaseCredentialsPath string
	RequireAuth             bool
}

// Load reads configuration from the environment, after loading a .env file
// when one is present. It reports whether the .env file was found.
func Load() (*Config, bool) {
	envLoaded := godotenv.Load() == nil

	return &Config{
		Port:                    getEnv("PORT", "5000"),
		Env:                     getEnv("ENV", "development"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		FrontendURL:             getEnv("FRONTEND_URL", "http://localhost:3000"),
		PostgresConnStr:         getEnv("POSTGRES_CONN_STR", ""),
		DBMaxOpenConns:          getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
		SeedDemoData:            getEnvAsBool("SEED_DEMO_DATA", true),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		RequireAuth:             getEnvAsBool("REQUIRE_AUTH", false),
	}, envLoaded
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
