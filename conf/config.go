package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	ParticipantsURL string
	AttemptsURL     string
	ListenAddr      string
	AWSRegion       string
	// FetchTimeout bounds each resource request; zero means no limit.
	FetchTimeout time.Duration
	// CacheTTL is how long a loaded snapshot is served; zero keeps it forever.
	CacheTTL       time.Duration
	LogLevel       string
	Env            string
	Title          string
	AllowedOrigins []string
}

// fileConfig mirrors Config as it appears in the toml file.
type fileConfig struct {
	ParticipantsURL string   `toml:"participants_url"`
	AttemptsURL     string   `toml:"attempts_url"`
	ListenAddr      string   `toml:"listen_addr"`
	AWSRegion       string   `toml:"aws_region"`
	FetchTimeout    string   `toml:"fetch_timeout"`
	CacheTTL        string   `toml:"cache_ttl"`
	LogLevel        string   `toml:"log_level"`
	Env             string   `toml:"env"`
	Title           string   `toml:"title"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

func defaults() Config {
	return Config{
		ListenAddr:     ":8080",
		AWSRegion:      "eu-central-1",
		LogLevel:       "info",
		Env:            "dev",
		Title:          "Leaderboard",
		AllowedOrigins: []string{"*"},
	}
}

// Load builds the configuration from defaults, the optional toml file at
// path and the environment, in that order of precedence. Variables from the
// given .env files (or ./.env) are loaded first; a missing .env is fine.
func Load(path string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := defaults()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := applyToml(&cfg, content); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyToml(cfg *Config, content []byte) error {
	var fc fileConfig
	if err := toml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setString(&cfg.ParticipantsURL, fc.ParticipantsURL)
	setString(&cfg.AttemptsURL, fc.AttemptsURL)
	setString(&cfg.ListenAddr, fc.ListenAddr)
	setString(&cfg.AWSRegion, fc.AWSRegion)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.Env, fc.Env)
	setString(&cfg.Title, fc.Title)
	if len(fc.AllowedOrigins) > 0 {
		cfg.AllowedOrigins = fc.AllowedOrigins
	}
	if err := setDuration(&cfg.FetchTimeout, "fetch_timeout", fc.FetchTimeout); err != nil {
		return err
	}
	return setDuration(&cfg.CacheTTL, "cache_ttl", fc.CacheTTL)
}

func applyEnv(cfg *Config) error {
	setString(&cfg.ParticipantsURL, os.Getenv("PARTICIPANTS_URL"))
	setString(&cfg.AttemptsURL, os.Getenv("ATTEMPTS_URL"))
	if port := os.Getenv("PORT"); port != "" {
		cfg.ListenAddr = ":" + port
	}
	setString(&cfg.ListenAddr, os.Getenv("LISTEN_ADDR"))
	setString(&cfg.AWSRegion, os.Getenv("AWS_REGION"))
	setString(&cfg.LogLevel, os.Getenv("LOG_LEVEL"))
	setString(&cfg.Env, os.Getenv("APP_ENV"))
	setString(&cfg.Title, os.Getenv("LEADERBOARD_TITLE"))
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}
	if err := setDuration(&cfg.FetchTimeout, "FETCH_TIMEOUT", os.Getenv("FETCH_TIMEOUT")); err != nil {
		return err
	}
	return setDuration(&cfg.CacheTTL, "CACHE_TTL", os.Getenv("CACHE_TTL"))
}

func (c Config) Validate() error {
	var errs []error
	if c.ParticipantsURL == "" {
		errs = append(errs, errors.New("participants url is not set"))
	}
	if c.AttemptsURL == "" {
		errs = append(errs, errors.New("attempts url is not set"))
	}
	if c.FetchTimeout < 0 {
		errs = append(errs, errors.New("fetch timeout must not be negative"))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, errors.New("cache ttl must not be negative"))
	}
	return errors.Join(errs...)
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name string, v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
