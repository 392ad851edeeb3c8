package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors t.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no config.toml present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "visor-pedidos", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "2023-10", cfg.Shopify.APIVersion)
	assert.Equal(t, 250, cfg.Shopify.PageLimit)
	assert.Equal(t, 30*time.Second, cfg.Shopify.Timeout)
	assert.Equal(t, "visor.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins, "no wildcard CORS by default")
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VISOR_APP_PORT", "9999")
	t.Setenv("VISOR_SHOPIFY_SHOP_DOMAIN", "tienda.myshopify.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.App.Port)
	assert.Equal(t, "tienda.myshopify.com", cfg.Shopify.ShopDomain)
}

func TestValidateProduction(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.App.Env = "production"
		cfg.Shopify.ShopDomain = "tienda.myshopify.com"
		cfg.Shopify.AccessToken = "shpat_test"
		return cfg
	}

	t.Run("valid production config passes", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("missing access token fails", func(t *testing.T) {
		cfg := base()
		cfg.Shopify.AccessToken = ""
		assert.Error(t, cfg.validate())
	})

	t.Run("missing shop domain fails", func(t *testing.T) {
		cfg := base()
		cfg.Shopify.ShopDomain = ""
		assert.Error(t, cfg.validate())
	})

	t.Run("wildcard CORS origin fails", func(t *testing.T) {
		cfg := base()
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.Error(t, cfg.validate())
	})
}

func TestValidatePageLimit(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Shopify.PageLimit = 500
	assert.Error(t, cfg.validate())
}

func TestShopifyBaseURL(t *testing.T) {
	s := ShopifyConfig{ShopDomain: "tienda.myshopify.com", APIVersion: "2023-10"}
	assert.Equal(t, "https://tienda.myshopify.com/admin/api/2023-10", s.BaseURL())
}
