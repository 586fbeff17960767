package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	LogLevel    string   `mapstructure:"LOG_LEVEL"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	GenAIAPIKey         string `mapstructure:"GENAI_API_KEY"`
	GenAIBaseURL        string `mapstructure:"GENAI_BASE_URL"`
	GenAIModel          string `mapstructure:"GENAI_MODEL"`
	GenAITimeoutSeconds int    `mapstructure:"GENAI_TIMEOUT_SECONDS"`
	CacheCapacity       int    `mapstructure:"CACHE_CAPACITY"`
	CacheTTLSeconds     int    `mapstructure:"CACHE_TTL_SECONDS"`

	JWTSecret      string  `mapstructure:"JWT_SECRET"`
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SESSION_TTL_MINUTES", 60)
	v.SetDefault("GENAI_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("GENAI_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct")
	v.SetDefault("GENAI_TIMEOUT_SECONDS", 30)
	v.SetDefault("CACHE_CAPACITY", 100)
	v.SetDefault("CACHE_TTL_SECONDS", 3600)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("SESSION_TTL_MINUTES")
	v.BindEnv("GENAI_API_KEY")
	v.BindEnv("GENAI_BASE_URL")
	v.BindEnv("GENAI_MODEL")
	v.BindEnv("GENAI_TIMEOUT_SECONDS")
	v.BindEnv("CACHE_CAPACITY")
	v.BindEnv("CACHE_TTL_SECONDS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.IsDev() {
		log.Println("WARNING: ============================================================")
		log.Println("WARNING: Server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: Authentication is disabled — all requests are accepted.")
		log.Println("WARNING: Do NOT use this configuration in production.")
		log.Println("WARNING: Set ENV=production and configure JWT_SECRET for production.")
		log.Println("WARNING: ============================================================")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AuthEnabled reports whether bearer-token authentication is enforced.
// Without a JWT_SECRET there is nothing to verify tokens against.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// SessionTTL is how long an idle assessment session is kept before expiry.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// GenAITimeout bounds a single chat completion call.
func (c *Config) GenAITimeout() time.Duration {
	return time.Duration(c.GenAITimeoutSeconds) * time.Second
}

// CacheTTL is how long cached gateway responses stay fresh.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Validate checks that the configuration is safe to run. Production refuses
// to start with authentication disabled; the remaining checks catch values
// that would silently disable a subsystem.
func (c *Config) Validate() error {
	if c.IsProduction() && !c.AuthEnabled() {
		return fmt.Errorf("JWT_SECRET is required in production. " +
			"Refusing to start with authentication disabled")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes, got %d", len(c.JWTSecret))
	}
	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must not be negative, got %d", c.SessionTTLMinutes)
	}
	if c.GenAITimeoutSeconds <= 0 {
		return fmt.Errorf("GENAI_TIMEOUT_SECONDS must be positive, got %d", c.GenAITimeoutSeconds)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}
