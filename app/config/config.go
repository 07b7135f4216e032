package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"scholarflow/app/logger"
)

type Config struct {
	ListenAddr     string       `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel       logger.Level `env:"LOG_LEVEL" envDefault:"1"`
	LogDir         string       `env:"LOG_DIR" envDefault:"./logs"`
	JWTSecret      string       `env:"JWT_SECRET" envDefault:"scholarflow-secret-key"`
	SharedPassword string       `env:"SHARED_PASSWORD" envDefault:"password"`
	State          StateConfig  `envPrefix:"STATE_"`
	Gemini         GeminiConfig `envPrefix:"GEMINI_"`
}

// StateConfig selects the persistence backend: the Postgres key-value row
// when a URI is set, otherwise the JSON file at Path.
type StateConfig struct {
	Path        string `env:"PATH" envDefault:"./data/state.json"`
	PostgresURI string `env:"POSTGRES_URI"`
}

type GeminiConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.5-flash-image"`
}

func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
