package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Server
	Port        string
	FrontendURL string

	// Range defaults, used when a simulate request omits environment
	// conditions. Units match the API: °F, ft, %, inHg.
	RangeTempF        float64
	RangeElevationFt  float64
	RangeHumidityPct  float64
	RangePressureInHg float64
	RangeSurface      string

	// Simulation
	SimMaxSamples int

	// WebSocket streaming pace for display clients, milliseconds per frame.
	StreamIntervalMs int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Range defaults (standard atmosphere)
		RangeTempF:        getEnvFloat("RANGE_TEMP_F", 59.0),
		RangeElevationFt:  getEnvFloat("RANGE_ELEVATION_FT", 0),
		RangeHumidityPct:  getEnvFloat("RANGE_HUMIDITY_PCT", 50.0),
		RangePressureInHg: getEnvFloat("RANGE_PRESSURE_INHG", 29.92),
		RangeSurface:      getEnv("RANGE_SURFACE", "fairway"),

		// Simulation
		SimMaxSamples: getEnvInt("SIM_MAX_SAMPLES", 400),

		// Streaming
		StreamIntervalMs: getEnvInt("STREAM_INTERVAL_MS", 25),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
