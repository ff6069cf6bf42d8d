// internal/config/config.go
package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config reúne tudo que a API lê do ambiente.
type Config struct {
	ServerPort string `env:"SERVER_PORT" env-default:"8080"`

	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     uint   `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD" env-default:""`
	DBName     string `env:"DB_NAME" env-default:"comissoes"`
	DBSSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`

	JWTSecret  string `env:"JWT_SECRET" env-default:""`
	WebhookURL string `env:"WEBHOOK_URL" env-default:""`

	CORSOrigins []string `env:"CORS_ORIGINS" env-default:"http://localhost:3000"`
}

// MustLoad lê a configuração do ambiente e aborta se algo estiver inválido.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}
	return &cfg
}
