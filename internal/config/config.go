package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const defaultDatabaseURL = "postgres://localhost:5432/eventroca?sslmode=disable"

type Config struct {
	HTTPAddr           string   `env:"HTTP_ADDR" envDefault:":3000"`
	DatabaseURL        string   `env:"DATABASE_URL"`
	DatabaseMaxConns   int32    `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	MigrateOnStart     bool     `env:"MIGRATE_ON_START" envDefault:"false"`
	JWTSecret          string   `env:"JWT_SECRET"`
	DefaultLocale      string   `env:"DEFAULT_LOCALE" envDefault:"es"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	Environment        string   `env:"ENVIRONMENT" envDefault:"development"`

	Logging LoggingConfig `envPrefix:"LOG_"`
	Tracing TracingConfig `envPrefix:"TRACING_"`
}

type LoggingConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

type TracingConfig struct {
	Enabled     bool    `env:"ENABLED" envDefault:"false"`
	Exporter    string  `env:"EXPORTER" envDefault:"stdout"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"eventroca"`
	SampleRate  float64 `env:"SAMPLE_RATE" envDefault:"1"`
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET est requis et ne peut pas être vide")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = defaultDatabaseURL
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	if c.DatabaseMaxConns <= 0 {
		return fmt.Errorf("config: DATABASE_MAX_CONNS doit être positif (%d)", c.DatabaseMaxConns)
	}

	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("config: HTTP_ADDR est requis et ne peut pas être vide")
	}

	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalide (%q): %w", c.DefaultLocale, err)
	}

	return c.validateObservability()
}

func (c *Config) validateObservability() error {
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("config: LOG_FORMAT doit valoir json ou console (%q)", c.Logging.Format)
	}

	if !c.Tracing.Enabled {
		return nil
	}
	switch c.Tracing.Exporter {
	case "stdout", "none":
	default:
		return fmt.Errorf("config: TRACING_EXPORTER doit valoir stdout ou none (%q)", c.Tracing.Exporter)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("config: TRACING_SAMPLE_RATE doit être entre 0 et 1 (%v)", c.Tracing.SampleRate)
	}

	return nil
}
