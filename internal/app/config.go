package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration, loaded from the environment.
// The GitHub OAuth app credentials and the session secret have no sane
// defaults; startup fails without them.
type Config struct {
	GitHubClientID     string `env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `env:"GITHUB_CLIENT_SECRET"`

	// CallbackURL is our /auth/callback as registered on the OAuth app.
	CallbackURL string `env:"GITHUB_CALLBACK_URL" envDefault:"http://localhost:8080/auth/callback"`

	// FrontendURL is where the browser lands after login.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	// JWTSecret signs session tokens. Rotating it logs everyone out.
	JWTSecret string `env:"JWT_SECRET"`

	DatabaseFile string `env:"DATABASE_FILE" envDefault:"gitinsights.db"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Port      int    `env:"PORT" envDefault:"8080"`

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1m"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"168h"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate fails fast on the credentials the OAuth flow cannot run without.
func (c Config) Validate() error {
	if c.GitHubClientID == "" {
		return fmt.Errorf("GITHUB_CLIENT_ID is required")
	}
	if c.GitHubClientSecret == "" {
		return fmt.Errorf("GITHUB_CLIENT_SECRET is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}
