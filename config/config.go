package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr            string
	LogLevel        logrus.Level
	ShutdownTimeout time.Duration
	QRSize          int
}

// Load reads the PIZZA_* environment. Unparsable values keep their defaults
// and are reported through log.
func Load(log logrus.FieldLogger) Config {
	cfg := Config{
		Addr:            getEnv("PIZZA_ADDR", "127.0.0.1:8090"),
		LogLevel:        logrus.InfoLevel,
		ShutdownTimeout: 5 * time.Second,
		QRSize:          256,
	}

	if raw := os.Getenv("PIZZA_LOG_LEVEL"); raw != "" {
		if level, err := logrus.ParseLevel(raw); err == nil {
			cfg.LogLevel = level
		} else {
			log.WithField("PIZZA_LOG_LEVEL", raw).Warn("Invalid log level, using default")
		}
	}

	if raw := os.Getenv("PIZZA_SHUTDOWN_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.ShutdownTimeout = d
		} else {
			log.WithField("PIZZA_SHUTDOWN_TIMEOUT", raw).Warn("Invalid shutdown timeout, using default")
		}
	}

	if raw := os.Getenv("PIZZA_QR_SIZE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.QRSize = n
		} else {
			log.WithField("PIZZA_QR_SIZE", raw).Warn("Invalid QR size, using default")
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
