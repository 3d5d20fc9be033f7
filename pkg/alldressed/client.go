package alldressed

import (
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v8"
)

// DefaultAPIBase is the production API.
const DefaultAPIBase = "https://api.all-dressed.io"

// Client gives access to one builder per resource. A Client is immutable and
// safe for concurrent use; the builders it returns are not.
type Client interface {
	// AccountID returns the account every request is scoped to.
	AccountID() string
	// WithAccount returns a client scoped to another account.
	WithAccount(accountID string) Client

	Customers() CustomerBuilder
	Subscriptions() SubscriptionBuilder
	Orders() OrderBuilder
	PaymentMethods() PaymentMethodBuilder
	Transactions() TransactionBuilder
	Invoices() InvoiceBuilder
	Discounts() DiscountBuilder
	GiftCards() GiftCardBuilder
	Menus() MenuBuilder
	Choices() ChoiceBuilder
	Items() ItemBuilder
	Packages() PackageBuilder
	Products() ProductBuilder
	Zones() ZoneBuilder
	DeliverySchedules() DeliveryScheduleBuilder
	DeliveryFrequencies() DeliveryFrequencyBuilder
	Taxes() TaxBuilder
	Tags() TagBuilder
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
type Config struct {
	// AccountID scopes every request to /accounts/{AccountID}. Requests fail
	// with ErrMissingAccount while it is empty.
	AccountID string
	// APIBase is the base URL of the API. Defaults to DefaultAPIBase.
	APIBase string
	// APIKey is sent as a bearer token. Required.
	APIKey string
	// Debug logs every request and response when set.
	Debug bool
	// SkipTLSVerify disables verification of the server certificate.
	SkipTLSVerify bool
	// Timeout bounds each request. Defaults to 30s.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// RetryMax enables retries of 429 and 5xx responses. Zero disables them.
	RetryMax int
	// HTTPClient replaces the underlying HTTP client. Its transport is still
	// wrapped for tracing.
	HTTPClient *http.Client
	// Logger receives debug and error logs.
	Logger Logger
}

type envConfig struct {
	AccountID string        `env:"ALLDRESSED_ACCOUNT_ID"`
	APIBase   string        `env:"ALLDRESSED_API_BASE" envDefault:"https://api.all-dressed.io"`
	APIKey    string        `env:"ALLDRESSED_API_KEY"`
	Debug     bool          `env:"ALLDRESSED_DEBUG_LOG" envDefault:"false"`
	VerifyTLS bool          `env:"ALLDRESSED_REQUEST_VERIFY" envDefault:"true"`
	Timeout   time.Duration `env:"ALLDRESSED_TIMEOUT" envDefault:"30s"`
	UserAgent string        `env:"ALLDRESSED_USER_AGENT"`
	RetryMax  int           `env:"ALLDRESSED_RETRY_MAX" envDefault:"0"`
}

// ConfigFromEnv reads the configuration from ALLDRESSED_* environment
// variables. It fails with ErrMissingAPIKey when no key is set.
func ConfigFromEnv() (*Config, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Config{
		AccountID: cfg.AccountID,
		APIBase:   cfg.APIBase,
		APIKey:    cfg.APIKey,
		Debug:     cfg.Debug,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		RetryMax:  cfg.RetryMax,

		SkipTLSVerify: !cfg.VerifyTLS,
	}, nil
}
