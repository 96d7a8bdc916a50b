package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config keys
const EnvPrefix = "PRICEGRIP"

// Keys understood by ApplyOverrides
const (
	KeyBaseURL       = "base_url"
	KeyTimeout       = "http.timeout"
	KeyRateLimit     = "http.rate_limit"
	KeyUserAgent     = "http.user_agent"
	KeyTrendingLimit = "ui.trending_limit"
)

// NewViper returns a viper instance reading PRICEGRIP_* environment variables,
// e.g. PRICEGRIP_BASE_URL or PRICEGRIP_HTTP_TIMEOUT.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{KeyBaseURL, KeyTimeout, KeyRateLimit, KeyUserAgent, KeyTrendingLimit} {
		_ = v.BindEnv(key)
	}
	return v
}

// ApplyOverrides layers values set in v (flags or environment) on top of cfg
func ApplyOverrides(cfg *Config, v *viper.Viper) error {
	if v.IsSet(KeyBaseURL) {
		if s := v.GetString(KeyBaseURL); s != "" {
			cfg.BaseURL = strings.TrimRight(s, "/")
		}
	}
	if v.IsSet(KeyTimeout) {
		raw := v.GetString(KeyTimeout)
		if raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", KeyTimeout, err)
			}
			cfg.HTTP.Timeout = Duration{d}
		}
	}
	if v.IsSet(KeyRateLimit) {
		cfg.HTTP.RateLimit = v.GetFloat64(KeyRateLimit)
	}
	if v.IsSet(KeyUserAgent) {
		if s := v.GetString(KeyUserAgent); s != "" {
			cfg.HTTP.UserAgent = s
		}
	}
	if v.IsSet(KeyTrendingLimit) {
		cfg.UISettings.TrendingLimit = v.GetInt(KeyTrendingLimit)
	}
	return cfg.Validate()
}
