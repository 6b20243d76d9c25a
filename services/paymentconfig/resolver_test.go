package paymentconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sandboxEnv() map[string]string {
	return map[string]string{
		"TESTING":                  "true",
		"PAYPAL_SANDBOX_CLIENT_ID": "sb-client-id",
		"PAYPAL_SANDBOX_SECRET":    "sb-secret",
		"PAYPAL_SANDBOX_API":       "https://api-m.sandbox.paypal.com",
		"PAYPAL_TEST_EMAIL":        "buyer@example.com",
		"PAYPAL_TEST_PASS":         "s3cret",
		"PAYPAL_TEST_NAME":         "Test Buyer",
	}
}

func productionEnv() map[string]string {
	return map[string]string{
		"TESTING":               "false",
		"PAYPAL_PROD_CLIENT_ID": "live-client-id",
		"PAYPAL_PROD_SECRET":    "live-secret",
		"PAYPAL_PROD_API":       "https://api-m.paypal.com/",
	}
}

func TestResolve(t *testing.T) {
	t.Run("Sandbox mode", func(t *testing.T) {
		cfg, err := Resolve(sandboxEnv())
		assert.NoError(t, err)
		assert.Equal(t, ModeSandbox, cfg.Mode())
		assert.Equal(t, Credentials{
			ClientID: "sb-client-id",
			Secret:   "sb-secret",
			APIBase:  "https://api-m.sandbox.paypal.com",
		}, cfg.Credentials())
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, "*", cfg.CORSAllowedOrigin)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "checkout", cfg.AuditTopic)
	})

	t.Run("Production mode strips trailing slash", func(t *testing.T) {
		cfg, err := Resolve(productionEnv())
		assert.NoError(t, err)
		assert.Equal(t, ModeProduction, cfg.Mode())
		assert.Equal(t, "https://api-m.paypal.com", cfg.Credentials().APIBase)
	})

	t.Run("Testing flag is case insensitive", func(t *testing.T) {
		environ := sandboxEnv()
		environ["TESTING"] = "TRUE"
		cfg, err := Resolve(environ)
		assert.NoError(t, err)
		assert.Equal(t, ModeSandbox, cfg.Mode())
	})

	t.Run("Only literal true selects sandbox", func(t *testing.T) {
		for _, value := range []string{"1", "yes", "", "on"} {
			environ := productionEnv()
			environ["TESTING"] = value
			cfg, err := Resolve(environ)
			assert.NoError(t, err)
			assert.Equal(t, ModeProduction, cfg.Mode(), value)
		}
	})

	t.Run("Missing variables of selected mode", func(t *testing.T) {
		environ := sandboxEnv()
		delete(environ, "PAYPAL_SANDBOX_SECRET")
		delete(environ, "PAYPAL_SANDBOX_API")

		_, err := Resolve(environ)
		var cfgErr *ConfigError
		assert.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, []string{"PAYPAL_SANDBOX_SECRET", "PAYPAL_SANDBOX_API"}, cfgErr.Missing)
		assert.Equal(t, "missing required configuration: PAYPAL_SANDBOX_SECRET, PAYPAL_SANDBOX_API", err.Error())
	})

	t.Run("Other mode is not required", func(t *testing.T) {
		_, err := Resolve(productionEnv())
		assert.NoError(t, err)
	})

	t.Run("Sandbox variables do not satisfy production", func(t *testing.T) {
		environ := sandboxEnv()
		environ["TESTING"] = "false"
		_, err := Resolve(environ)
		var cfgErr *ConfigError
		assert.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, []string{"PAYPAL_PROD_CLIENT_ID", "PAYPAL_PROD_SECRET", "PAYPAL_PROD_API"}, cfgErr.Missing)
	})

	t.Run("Plain http api is rejected", func(t *testing.T) {
		environ := sandboxEnv()
		environ["PAYPAL_SANDBOX_API"] = "http://localhost:8080"
		_, err := Resolve(environ)
		assert.ErrorContains(t, err, "must use https")
	})

	t.Run("Plain http api is allowed on request", func(t *testing.T) {
		environ := sandboxEnv()
		environ["PAYPAL_SANDBOX_API"] = "http://localhost:8080"
		environ["PAYPAL_ALLOW_INSECURE_API"] = "true"
		cfg, err := Resolve(environ)
		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.Credentials().APIBase)
	})

	t.Run("Relative api is rejected", func(t *testing.T) {
		environ := sandboxEnv()
		environ["PAYPAL_SANDBOX_API"] = "api-m.sandbox.paypal.com"
		_, err := Resolve(environ)
		assert.ErrorContains(t, err, "not an absolute url")
	})

	t.Run("Unparsable timeout", func(t *testing.T) {
		environ := sandboxEnv()
		environ["PAYPAL_HTTP_TIMEOUT"] = "soon"
		_, err := Resolve(environ)
		var cfgErr *ConfigError
		assert.True(t, errors.As(err, &cfgErr))
		assert.Len(t, cfgErr.Invalid, 1)
	})

	t.Run("Options", func(t *testing.T) {
		environ := productionEnv()
		environ["PORT"] = "8080"
		environ["STATIC_DIR"] = "/var/www/portfolio"
		environ["PAYPAL_HTTP_TIMEOUT"] = "3s"
		environ["OFFERINGS_FILE"] = "offerings.yaml"
		cfg, err := Resolve(environ)
		assert.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "/var/www/portfolio", cfg.StaticDir)
		assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "offerings.yaml", cfg.OfferingsFile)
	})
}

func TestSecretIsNeverPrinted(t *testing.T) {
	cfg, err := Resolve(productionEnv())
	assert.NoError(t, err)

	assert.NotContains(t, cfg.String(), "live-secret")
	assert.NotContains(t, cfg.Credentials().String(), "live-secret")
	assert.Contains(t, cfg.Credentials().String(), "****t-id")
}

func TestPublic(t *testing.T) {
	t.Run("Sandbox exposes test account", func(t *testing.T) {
		cfg, err := Resolve(sandboxEnv())
		assert.NoError(t, err)
		assert.Equal(t, PublicConfig{
			Testing:        true,
			PaypalClientID: "sb-client-id",
			PaypalAPI:      "https://api-m.sandbox.paypal.com",
			PaypalTestAccount: &TestAccount{
				Email: "buyer@example.com",
				Pass:  "s3cret",
				Name:  "Test Buyer",
			},
		}, cfg.Public())
	})

	t.Run("Sandbox without test account values", func(t *testing.T) {
		environ := sandboxEnv()
		delete(environ, "PAYPAL_TEST_EMAIL")
		delete(environ, "PAYPAL_TEST_PASS")
		delete(environ, "PAYPAL_TEST_NAME")
		cfg, err := Resolve(environ)
		assert.NoError(t, err)
		assert.Nil(t, cfg.Public().PaypalTestAccount)
	})

	t.Run("Production never exposes test account", func(t *testing.T) {
		environ := productionEnv()
		environ["PAYPAL_TEST_EMAIL"] = "leftover@example.com"
		environ["PAYPAL_TEST_PASS"] = "leftover"
		cfg, err := Resolve(environ)
		assert.NoError(t, err)
		assert.Equal(t, PublicConfig{
			Testing:        false,
			PaypalClientID: "live-client-id",
			PaypalAPI:      "https://api-m.paypal.com",
		}, cfg.Public())
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("Missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("File does not override environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		assert.NoError(t, os.WriteFile(path, []byte("PAYPALRELAY_TEST_A=from-file\nPAYPALRELAY_TEST_B=from-file\n"), 0o600))
		t.Setenv("PAYPALRELAY_TEST_A", "from-env")
		t.Setenv("PAYPALRELAY_TEST_B", "")
		os.Unsetenv("PAYPALRELAY_TEST_B")

		assert.NoError(t, LoadDotEnv(path))
		assert.Equal(t, "from-env", os.Getenv("PAYPALRELAY_TEST_A"))
		assert.Equal(t, "from-file", os.Getenv("PAYPALRELAY_TEST_B"))
	})
}
