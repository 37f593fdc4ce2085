package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	envDevelopment = "development"
	envProduction  = "production"
)

type config struct {
	Port        int    `env:"PORT" envDefault:"3000"`
	Env         string `env:"APP_ENV"`
	NodeEnv     string `env:"NODE_ENV"`
	DatabaseURL string `env:"DATABASE_URL"`

	SeedEnabled bool   `env:"SEED_ENABLED" envDefault:"true"`
	SeedFile    string `env:"SEED_FILE"`

	FrontendURL string   `env:"FRONTEND_URL" envDefault:"https://mini-event-finder.vercel.app"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// loadConfig reads the configuration from environ, or from the process
// environment when environ is nil.
func loadConfig(environ map[string]string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}

	// APP_ENV takes precedence over NODE_ENV.
	if cfg.Env == "" {
		cfg.Env = cfg.NodeEnv
	}
	if cfg.Env == "" {
		cfg.Env = envDevelopment
	}
	if cfg.Env != envDevelopment && cfg.Env != envProduction {
		return config{}, fmt.Errorf("APP_ENV/NODE_ENV must be %q or %q, got %q", envDevelopment, envProduction, cfg.Env)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return config{}, fmt.Errorf("PORT out of range: %d", cfg.Port)
	}
	return cfg, nil
}

func (c config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AllowedOrigins returns the CORS origins for the current environment unless
// they were set explicitly.
func (c config) AllowedOrigins() []string {
	if len(c.CORSOrigins) > 0 {
		return c.CORSOrigins
	}
	if c.Env == envProduction {
		return []string{c.FrontendURL, "https://*.vercel.app"}
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}
