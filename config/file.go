package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the YAML configuration file layout.
type FileConfig struct {
	Environment string `yaml:"environment"`
	Exchange    struct {
		PublicBaseURL  string `yaml:"public_base_url"`
		PrivateBaseURL string `yaml:"private_base_url"`
		APIKey         string `yaml:"api_key"`
		APISecret      string `yaml:"api_secret"`
		AuthStyle      string `yaml:"auth_style"`
		HTTPTimeout    string `yaml:"http_timeout"`
		RateInterval   string `yaml:"rate_interval"`
		OTLPEndpoint   string `yaml:"otlp_endpoint"`
	} `yaml:"exchange"`
}

// LoadFile reads YAML configuration from path and layers it over base.
// Unset file fields keep the base values.
func LoadFile(path string, base Settings) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return base, fmt.Errorf("parse config file: %w", err)
	}
	return merge(base, fc)
}

// LoadOrDefault loads the configuration file when present, falling back to the
// base settings when the file does not exist. The boolean reports whether a
// file was loaded.
func LoadOrDefault(path string, base Settings) (Settings, bool, error) {
	cfg, err := LoadFile(path, base)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, false, nil
		}
		return base, false, err
	}
	return cfg, true, nil
}

func merge(base Settings, fc FileConfig) (Settings, error) {
	cfg := base
	if env := strings.TrimSpace(fc.Environment); env != "" {
		cfg.Environment = Environment(strings.ToLower(env))
	}
	if v := strings.TrimSpace(fc.Exchange.PublicBaseURL); v != "" {
		cfg.Exchange.PublicBaseURL = v
	}
	if v := strings.TrimSpace(fc.Exchange.PrivateBaseURL); v != "" {
		cfg.Exchange.PrivateBaseURL = v
	}
	if v := strings.TrimSpace(fc.Exchange.APIKey); v != "" {
		cfg.Exchange.Credentials.APIKey = v
	}
	if v := strings.TrimSpace(fc.Exchange.APISecret); v != "" {
		cfg.Exchange.Credentials.APISecret = v
	}
	if v := strings.TrimSpace(fc.Exchange.AuthStyle); v != "" {
		style, ok := ParseAuthStyle(v)
		if !ok {
			return base, fmt.Errorf("unknown auth style %q", v)
		}
		cfg.Exchange.AuthStyle = style
	}
	if v := strings.TrimSpace(fc.Exchange.HTTPTimeout); v != "" {
		dur, err := time.ParseDuration(v)
		if err != nil {
			return base, fmt.Errorf("parse http_timeout: %w", err)
		}
		cfg.Exchange.HTTPTimeout = dur
	}
	if v := strings.TrimSpace(fc.Exchange.RateInterval); v != "" {
		dur, err := time.ParseDuration(v)
		if err != nil {
			return base, fmt.Errorf("parse rate_interval: %w", err)
		}
		cfg.Exchange.RateInterval = dur
	}
	if v := strings.TrimSpace(fc.Exchange.OTLPEndpoint); v != "" {
		cfg.Exchange.TelemetryEndpoint = v
	}
	return cfg, nil
}
