package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	RemoteBaseURL   string        `env:"REMOTE_BASE_URL" envDefault:"http://localhost:3000/api"`
	RemoteTimeout   time.Duration `env:"REMOTE_TIMEOUT" envDefault:"10s"`
	RefreshSchedule string        `env:"REFRESH_SCHEDULE" envDefault:"@every 30s"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the given dotenv files into the environment, when they
// exist, and parses the environment into a Config.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, file := range dotenvFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return config, nil
}
