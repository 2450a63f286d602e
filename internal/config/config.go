package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the full application configuration. Values come from an optional
// YAML file (CONFIG_PATH) and are then overridden by environment variables.
type Config struct {
	Server struct {
		Port             string   `yaml:"port"`
		Env              string   `yaml:"env"`
		CORSAllowOrigins []string `yaml:"cors_allow_origins"`
	} `yaml:"server"`

	Database DBConfig `yaml:"database"`

	Session struct {
		Secret       string `yaml:"secret"`
		TTLHours     int    `yaml:"ttl_hours"`
		CookieName   string `yaml:"cookie_name"`
		CookieSecure bool   `yaml:"cookie_secure"`
	} `yaml:"session"`
}

// SessionTTL is the session lifetime
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Env = "development"
	cfg.Server.CORSAllowOrigins = []string{"http://localhost:5173"}
	cfg.Database.MaxConns = 10
	cfg.Session.TTLHours = 24
	cfg.Session.CookieName = "sid"
	return cfg
}

// Load reads the configuration. SESSION_SECRET and a database location are required.
func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Session.Secret == "" {
		return nil, errors.New("SESSION_SECRET not set in environment")
	}
	if cfg.Database.DSN == "" {
		return nil, errors.New("database not configured (DATABASE_URL or DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}
	if len(cfg.Server.CORSAllowOrigins) == 0 {
		return nil, errors.New("at least one CORS origin is required")
	}
	for _, o := range cfg.Server.CORSAllowOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return nil, fmt.Errorf("invalid CORS origin %q, expected an http(s) URL", o)
		}
	}
	if cfg.Session.TTLHours <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %d hours", cfg.Session.TTLHours)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.Server.CORSAllowOrigins = origins
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	} else if dsn, ok := dsnFromParts(); ok {
		cfg.Database.DSN = dsn
	}

	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.Session.Secret = v
	}
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL_HOURS %q: %w", v, err)
		}
		cfg.Session.TTLHours = hours
	}
	if v := os.Getenv("SESSION_COOKIE_NAME"); v != "" {
		cfg.Session.CookieName = v
	}
	if v := os.Getenv("SESSION_COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SESSION_COOKIE_SECURE %q: %w", v, err)
		}
		cfg.Session.CookieSecure = secure
	}
	return nil
}

// dsnFromParts builds a key/value DSN from DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME
func dsnFromParts() (string, bool) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return "", false
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName), true
}
