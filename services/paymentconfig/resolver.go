package paymentconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type credentialVars struct {
	ClientID string `env:"CLIENT_ID"`
	Secret   string `env:"SECRET"`
	API      string `env:"API"`
}

type environment struct {
	Testing          string         `env:"TESTING"`
	Sandbox          credentialVars `envPrefix:"PAYPAL_SANDBOX_"`
	Production       credentialVars `envPrefix:"PAYPAL_PROD_"`
	TestAccount      TestAccount    `envPrefix:"PAYPAL_TEST_"`
	AllowInsecureAPI bool           `env:"PAYPAL_ALLOW_INSECURE_API"`
	HTTPTimeout      time.Duration  `env:"PAYPAL_HTTP_TIMEOUT" envDefault:"10s"`

	Port               string `env:"PORT" envDefault:"3000"`
	StaticDir          string `env:"STATIC_DIR"`
	CORSAllowedOrigin  string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	OfferingsFile      string `env:"OFFERINGS_FILE"`
	GoogleCloudProject string `env:"GOOGLE_CLOUD_PROJECT"`
	AuditTopic         string `env:"AUDIT_TOPIC" envDefault:"checkout"`
}

// LoadDotEnv adds the variables of a .env file to the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

func ResolveFromOS() (Config, error) {
	return Resolve(env.ToMap(os.Environ()))
}

// Resolve selects the credential set for the mode given by TESTING and checks
// eagerly that it is complete, so a misconfiguration shows at boot and not on
// the first payment.
func Resolve(environ map[string]string) (Config, error) {
	vars := environment{}
	err := env.ParseWithOptions(&vars, env.Options{Environment: environ})
	if err != nil {
		return Config{}, &ConfigError{Invalid: []string{err.Error()}}
	}

	mode := ModeProduction
	if strings.ToLower(vars.Testing) == "true" {
		mode = ModeSandbox
	}

	selected, prefix := vars.Production, "PAYPAL_PROD_"
	if mode == ModeSandbox {
		selected, prefix = vars.Sandbox, "PAYPAL_SANDBOX_"
	}

	cfgErr := &ConfigError{}
	for _, v := range []struct {
		name  string
		value string
	}{
		{name: prefix + "CLIENT_ID", value: selected.ClientID},
		{name: prefix + "SECRET", value: selected.Secret},
		{name: prefix + "API", value: selected.API},
	} {
		if v.value == "" {
			cfgErr.Missing = append(cfgErr.Missing, v.name)
		}
	}

	apiBase := strings.TrimRight(selected.API, "/")
	if apiBase != "" {
		err = checkAPIBase(apiBase, vars.AllowInsecureAPI)
		if err != nil {
			cfgErr.Invalid = append(cfgErr.Invalid, fmt.Sprintf("%sAPI: %s", prefix, err))
		}
	}
	if vars.HTTPTimeout <= 0 {
		cfgErr.Invalid = append(cfgErr.Invalid, "PAYPAL_HTTP_TIMEOUT must be positive")
	}

	if len(cfgErr.Missing) > 0 || len(cfgErr.Invalid) > 0 {
		return Config{}, cfgErr
	}

	cfg := Config{
		mode: mode,
		credentials: Credentials{
			ClientID: selected.ClientID,
			Secret:   selected.Secret,
			APIBase:  apiBase,
		},
		Port:               vars.Port,
		StaticDir:          vars.StaticDir,
		CORSAllowedOrigin:  vars.CORSAllowedOrigin,
		HTTPTimeout:        vars.HTTPTimeout,
		OfferingsFile:      vars.OfferingsFile,
		GoogleCloudProject: vars.GoogleCloudProject,
		AuditTopic:         vars.AuditTopic,
	}
	if mode == ModeSandbox && !vars.TestAccount.isEmpty() {
		account := vars.TestAccount
		cfg.testAccount = &account
	}

	return cfg, nil
}

func checkAPIBase(apiBase string, allowInsecure bool) error {
	u, err := url.Parse(apiBase)
	if err != nil {
		return fmt.Errorf("not a url: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("'%s' is not an absolute url", apiBase)
	}
	switch u.Scheme {
	case "https":
		return nil
	case "http":
		if allowInsecure {
			return nil
		}
		return fmt.Errorf("'%s' must use https (set PAYPAL_ALLOW_INSECURE_API=true for local mocks)", apiBase)
	default:
		return fmt.Errorf("'%s' has unsupported scheme '%s'", apiBase, u.Scheme)
	}
}
