package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricegrip/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveThenLoadKeepsSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.BaseURL = "http://localhost:8080"
	cfg.HTTP.Timeout = Duration{7 * time.Second}
	cfg.UISettings.TrendingLimit = 5
	require.NoError(t, svc.Save(cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "version = 1")
	assert.Contains(t, string(raw), "timeout = ")
	assert.Contains(t, string(raw), "7s")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`base_url = "https://prices.example.com"
[ui]
error_timeout = "2s"
`), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "https://prices.example.com", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.UISettings.ErrorTimeout.Duration)
	assert.Equal(t, 10, cfg.UISettings.TrendingLimit)
	assert.Equal(t, 20*time.Second, cfg.HTTP.Timeout.Duration)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()

	badURL := filepath.Join(dir, "bad-url.toml")
	require.NoError(t, os.WriteFile(badURL, []byte(`base_url = "ftp://example.com"`), 0644))
	_, err := NewConfigService(badURL).Load()
	require.Error(t, err)

	badDuration := filepath.Join(dir, "bad-duration.toml")
	require.NoError(t, os.WriteFile(badDuration, []byte("[http]\ntimeout = \"soon\"\n"), 0644))
	_, err = NewConfigService(badDuration).Load()
	require.Error(t, err)
}

func TestLoadPublishesConfigLoaded(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.ConfigLoadedEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		got <- e.(eventbus.ConfigLoadedEvent)
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	_, err := NewConfigServiceWithBus(path, bus).Load()
	require.NoError(t, err)

	select {
	case e := <-got:
		assert.Equal(t, path, e.Path)
		assert.Equal(t, DefaultBaseURL, e.BaseURL)
	case <-time.After(time.Second):
		t.Fatal("ConfigLoaded event not delivered")
	}
}

func TestApplyOverrides(t *testing.T) {
	v := NewViper()
	v.Set(KeyBaseURL, "http://127.0.0.1:9000/")
	v.Set(KeyTimeout, "3s")
	v.Set(KeyTrendingLimit, 4)

	cfg := DefaultConfig()
	require.NoError(t, ApplyOverrides(cfg, v))
	assert.Equal(t, "http://127.0.0.1:9000", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeout.Duration)
	assert.Equal(t, 4, cfg.UISettings.TrendingLimit)
	assert.Equal(t, "pricegrip/1.0", cfg.HTTP.UserAgent)
}

func TestApplyOverridesFromEnvironment(t *testing.T) {
	t.Setenv("PRICEGRIP_BASE_URL", "https://env.example.com")
	t.Setenv("PRICEGRIP_HTTP_RATE_LIMIT", "0")

	cfg := DefaultConfig()
	require.NoError(t, ApplyOverrides(cfg, NewViper()))
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, 0.0, cfg.HTTP.RateLimit)
}

func TestApplyOverridesRejectsBadTimeout(t *testing.T) {
	v := NewViper()
	v.Set(KeyTimeout, "later")
	require.Error(t, ApplyOverrides(DefaultConfig(), v))
}
