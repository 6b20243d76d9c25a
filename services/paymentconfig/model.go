package paymentconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/MarcGrol/paypalrelay/lib/mylog"
)

type Mode int

const (
	ModeProduction Mode = iota
	ModeSandbox
)

func (m Mode) String() string {
	if m == ModeSandbox {
		return "sandbox"
	}
	return "production"
}

// Credentials identify this merchant at PayPal. The secret is only used to
// build the token request and is never encoded or printed.
type Credentials struct {
	ClientID string
	Secret   string `json:"-"`
	APIBase  string
}

func (c Credentials) String() string {
	return fmt.Sprintf("client-id:%s api:%s", mylog.Mask(c.ClientID), c.APIBase)
}

func (c Credentials) GoString() string {
	return c.String()
}

// TestAccount holds dummy sandbox buyer details shown on the checkout page.
type TestAccount struct {
	Email string `json:"email" env:"EMAIL"`
	Pass  string `json:"pass" env:"PASS"`
	Name  string `json:"name" env:"NAME"`
	Card  string `json:"card,omitempty" env:"CARD"`
	Exp   string `json:"exp,omitempty" env:"EXP"`
	CVC   string `json:"cvc,omitempty" env:"CVC"`
}

func (a TestAccount) isEmpty() bool {
	return a == TestAccount{}
}

type Config struct {
	mode        Mode
	credentials Credentials
	testAccount *TestAccount

	Port               string
	StaticDir          string
	CORSAllowedOrigin  string
	HTTPTimeout        time.Duration
	OfferingsFile      string
	GoogleCloudProject string
	AuditTopic         string
}

func (c Config) Mode() Mode {
	return c.mode
}

func (c Config) Credentials() Credentials {
	return c.credentials
}

func (c Config) String() string {
	return fmt.Sprintf("mode:%s %s port:%s static-dir:%q timeout:%s", c.mode, c.credentials, c.Port, c.StaticDir, c.HTTPTimeout)
}

type PublicConfig struct {
	Testing           bool         `json:"testing"`
	PaypalClientID    string       `json:"paypalClientId"`
	PaypalAPI         string       `json:"paypalApi"`
	PaypalTestAccount *TestAccount `json:"paypalTestAccount,omitempty"`
}

// Public is what the browser may know: never the secret, and test account
// details only in sandbox mode.
func (c Config) Public() PublicConfig {
	pc := PublicConfig{
		Testing:        c.mode == ModeSandbox,
		PaypalClientID: c.credentials.ClientID,
		PaypalAPI:      c.credentials.APIBase,
	}
	if c.mode == ModeSandbox && c.testAccount != nil {
		account := *c.testAccount
		pc.PaypalTestAccount = &account
	}
	return pc
}

// ConfigError is fatal: the process must not start with it.
type ConfigError struct {
	Missing []string
	Invalid []string
}

func (e *ConfigError) Error() string {
	parts := []string{}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required configuration: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid configuration: "+strings.Join(e.Invalid, "; "))
	}
	return strings.Join(parts, "; ")
}
