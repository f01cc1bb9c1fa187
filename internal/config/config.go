package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	HangarWidth     int
	HangarHeight    int
	CellWidth       int
	CellHeight      int
	OTelServiceName string
	OTelEndpoint    string
	LogLevel        string
	LogDir          string
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set win over the file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            envOr("APP_PORT", "8080"),
		HangarWidth:     envOrInt("HANGAR_WIDTH", 640),
		HangarHeight:    envOrInt("HANGAR_HEIGHT", 480),
		CellWidth:       envOrInt("CELL_WIDTH", 10),
		CellHeight:      envOrInt("CELL_HEIGHT", 20),
		OTelServiceName: envOr("OTEL_SERVICE_NAME", "hangar-service"),
		OTelEndpoint:    envOr("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		LogDir:          os.Getenv("LOG_DIR"),
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
