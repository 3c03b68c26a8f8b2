// Package config centralises runtime configuration for the Ripio adapter.
package config

import (
	"os"
	"strings"
	"time"
)

// Environment identifies the runtime environment where the adapter operates.
type Environment string

const (
	// EnvDev marks the development environment.
	EnvDev Environment = "dev"
	// EnvStaging marks the staging environment.
	EnvStaging Environment = "staging"
	// EnvProd marks the production environment.
	EnvProd Environment = "prod"
)

// AuthStyle selects how the API key is attached to private requests.
type AuthStyle string

const (
	// AuthStyleAPIKey sends the key in an "x-api-key" header (v3 API).
	AuthStyleAPIKey AuthStyle = "api-key"
	// AuthStyleBearer sends the key as an "Authorization: Bearer" token
	// (legacy API variant).
	AuthStyleBearer AuthStyle = "bearer"
)

const (
	defaultPublicBaseURL  = "https://api.ripiotrade.co/v3/public"
	defaultPrivateBaseURL = "https://api.ripiotrade.co/v3"
	defaultHTTPTimeout    = 10 * time.Second
	// defaultRateInterval is the venue-documented minimum spacing between
	// requests.
	defaultRateInterval = 50 * time.Millisecond
)

// Credentials captures API credentials used for authenticated requests.
// The venue requires only an API key; the secret is accepted but unused.
type Credentials struct {
	APIKey    string
	APISecret string
}

// Configured reports whether the required credentials are present.
func (c Credentials) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// ExchangeSettings aggregates transport and credential configuration for the
// Ripio venue.
type ExchangeSettings struct {
	PublicBaseURL  string
	PrivateBaseURL string
	Credentials    Credentials
	AuthStyle      AuthStyle
	HTTPTimeout    time.Duration
	RateInterval   time.Duration
	// TelemetryEndpoint is the OTLP collector endpoint; empty disables export.
	TelemetryEndpoint string
}

// Settings contains the adapter configuration tree loaded from defaults and
// overrides.
type Settings struct {
	Environment Environment
	Exchange    ExchangeSettings
}

// Default returns the default adapter configuration.
func Default() Settings {
	return Settings{
		Environment: EnvProd,
		Exchange: ExchangeSettings{
			PublicBaseURL:     defaultPublicBaseURL,
			PrivateBaseURL:    defaultPrivateBaseURL,
			Credentials:       Credentials{APIKey: "", APISecret: ""},
			AuthStyle:         AuthStyleAPIKey,
			HTTPTimeout:       defaultHTTPTimeout,
			RateInterval:      defaultRateInterval,
			TelemetryEndpoint: "",
		},
	}
}

// FromEnv loads configuration values from environment variables, overriding
// defaults.
func FromEnv() Settings {
	cfg := Default()
	if env := strings.TrimSpace(os.Getenv("RIPIO_ENV")); env != "" {
		cfg.Environment = Environment(strings.ToLower(env))
	}
	if v := strings.TrimSpace(os.Getenv("RIPIO_PUBLIC_BASE_URL")); v != "" {
		cfg.Exchange.PublicBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("RIPIO_PRIVATE_BASE_URL")); v != "" {
		cfg.Exchange.PrivateBaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("RIPIO_API_KEY")); v != "" {
		cfg.Exchange.Credentials.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("RIPIO_API_SECRET")); v != "" {
		cfg.Exchange.Credentials.APISecret = v
	}
	if v := strings.TrimSpace(os.Getenv("RIPIO_AUTH_STYLE")); v != "" {
		if style, ok := ParseAuthStyle(v); ok {
			cfg.Exchange.AuthStyle = style
		}
	}
	if v := strings.TrimSpace(os.Getenv("RIPIO_HTTP_TIMEOUT")); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			cfg.Exchange.HTTPTimeout = dur
		}
	}
	if v := strings.TrimSpace(os.Getenv("RIPIO_RATE_INTERVAL")); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			cfg.Exchange.RateInterval = dur
		}
	}
	if v := strings.TrimSpace(os.Getenv("RIPIO_OTLP_ENDPOINT")); v != "" {
		cfg.Exchange.TelemetryEndpoint = v
	}
	return cfg
}

// ParseAuthStyle normalizes a textual auth style into its enum value.
func ParseAuthStyle(raw string) (AuthStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "api-key", "api_key", "apikey", "x-api-key":
		return AuthStyleAPIKey, true
	case "bearer", "token":
		return AuthStyleBearer, true
	default:
		return "", false
	}
}

// Option mutates Settings when applied via Apply.
type Option func(*Settings)

// Apply applies the provided Option set to a copy of the base Settings.
func Apply(base Settings, opts ...Option) Settings {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithEnvironment configures the top-level environment.
func WithEnvironment(env Environment) Option {
	return func(s *Settings) {
		if env != "" {
			s.Environment = env
		}
	}
}

// WithBaseURLs overrides the public and private REST base URLs.
func WithBaseURLs(public, private string) Option {
	public = strings.TrimSpace(public)
	private = strings.TrimSpace(private)
	return func(s *Settings) {
		if public != "" {
			s.Exchange.PublicBaseURL = public
		}
		if private != "" {
			s.Exchange.PrivateBaseURL = private
		}
	}
}

// WithCredentials overrides the API credentials.
func WithCredentials(key, secret string) Option {
	key = strings.TrimSpace(key)
	secret = strings.TrimSpace(secret)
	return func(s *Settings) {
		if key != "" {
			s.Exchange.Credentials.APIKey = key
		}
		if secret != "" {
			s.Exchange.Credentials.APISecret = secret
		}
	}
}

// WithAuthStyle overrides the private-request authentication header style.
func WithAuthStyle(style AuthStyle) Option {
	return func(s *Settings) {
		switch style {
		case AuthStyleAPIKey, AuthStyleBearer:
			s.Exchange.AuthStyle = style
		}
	}
}

// WithHTTPTimeout overrides the HTTP timeout for REST calls.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(s *Settings) {
		if timeout > 0 {
			s.Exchange.HTTPTimeout = timeout
		}
	}
}

// WithRateInterval overrides the minimum spacing between outgoing requests.
func WithRateInterval(interval time.Duration) Option {
	return func(s *Settings) {
		if interval > 0 {
			s.Exchange.RateInterval = interval
		}
	}
}
