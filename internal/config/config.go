package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Backend selection values for Config.Backend.
const (
	BackendAuto        = "auto"
	BackendReference   = "reference"
	BackendAccelerated = "accelerated"
)

type Config struct {
	// Backend selects the extraction backend: auto, reference or accelerated.
	Backend string
	// WorkerCount is the number of concurrent file workers for the
	// accelerated backend.
	WorkerCount int
	// MaxChunkSize is the maximum extracted text length (in characters)
	// before a text is split into chunks.
	MaxChunkSize int
	// MinTextLength is the minimum captured text length (in characters)
	// worth keeping. Shorter captures are noise.
	MinTextLength int
	// DatabaseURL enables the shared PostgreSQL translation cache when set.
	DatabaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		Backend:       getEnv("BACKEND", BackendAuto),
		WorkerCount:   getEnvInt("WORKER_COUNT", 8),
		MaxChunkSize:  getEnvInt("MAX_CHUNK_SIZE", 50000),
		MinTextLength: getEnvInt("MIN_TEXT_LENGTH", 3),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
