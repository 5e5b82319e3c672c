package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	DatabaseURL    string `env:"DATABASE_URL,required,notEmpty"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`

	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`

	// Outbound email
	MailProvider   string `env:"MAIL_PROVIDER" envDefault:"log"` // "sendgrid", "smtp" or "log"
	MailFrom       string `env:"MAIL_FROM" envDefault:"no-reply@taskmanager.local"`
	MailFromName   string `env:"MAIL_FROM_NAME" envDefault:"Task Manager"`
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	SMTPHost       string `env:"SMTP_HOST"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername   string `env:"SMTP_USERNAME"`
	SMTPPassword   string `env:"SMTP_PASSWORD"`

	NotifyWorkers   int `env:"NOTIFY_WORKERS" envDefault:"2"`
	NotifyQueueSize int `env:"NOTIFY_QUEUE_SIZE" envDefault:"100"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and then parses the process environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
