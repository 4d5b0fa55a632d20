package spotitab

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven client configuration.
//
// Tokens are obtained outside this library (app bearer token via client
// credentials, user OAuth token via an authorization flow) and handed in
// through the environment or a .env file.
type Config struct {
	AppToken  string        // SPOTITAB_APP_TOKEN (required)
	UserToken string        // SPOTITAB_USER_TOKEN (optional, mutating calls)
	APIURL    string        // SPOTITAB_API_URL (optional override)
	Timeout   time.Duration // SPOTITAB_TIMEOUT (optional, e.g. "15s")
}

// LoadConfig reads configuration from the environment, loading a .env file
// first when one is present. Environment variables take precedence over .env
// values.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		AppToken:  os.Getenv("SPOTITAB_APP_TOKEN"),
		UserToken: os.Getenv("SPOTITAB_USER_TOKEN"),
		APIURL:    os.Getenv("SPOTITAB_API_URL"),
	}

	if cfg.AppToken == "" {
		return nil, fmt.Errorf("SPOTITAB_APP_TOKEN is required")
	}

	if raw := os.Getenv("SPOTITAB_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SPOTITAB_TIMEOUT %q: %w", raw, err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// Auth builds the client token configuration from the loaded tokens
func (c *Config) Auth() *Auth {
	return NewAuth(c.AppToken, c.UserToken)
}

// ClientOptions translates the optional settings into client options
func (c *Config) ClientOptions() []ClientOption {
	var opts []ClientOption
	if c.APIURL != "" {
		opts = append(opts, WithAPIPrefix(c.APIURL))
	}
	if c.Timeout > 0 {
		opts = append(opts, WithRequestTimeout(c.Timeout))
	}
	return opts
}
