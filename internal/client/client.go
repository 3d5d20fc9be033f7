// Package client implements the alldressed builders on top of the shared
// transport.
package client

import (
	"github.com/all-dressed/alldressed-go/internal/constants"
	internalhttp "github.com/all-dressed/alldressed-go/internal/http"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// Client implements the alldressed.Client interface. Each accessor returns a
// new builder.
type Client struct {
	httpClient *internalhttp.Client
}

// New creates a client from config. Extra transport options are applied
// after the ones derived from config.
func New(config *alldressed.Config, opts ...internalhttp.Option) (*Client, error) {
	if config.APIKey == "" {
		return nil, alldressed.ErrMissingAPIKey
	}

	apiBase := config.APIBase
	if apiBase == "" {
		apiBase = alldressed.DefaultAPIBase
	}

	httpOpts := append(createHTTPClientOptions(config), opts...)

	return &Client{
		httpClient: internalhttp.NewClient(apiBase, config.AccountID, config.APIKey, httpOpts...),
	}, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *alldressed.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.Timeout))
	}

	if config.SkipTLSVerify {
		httpOpts = append(httpOpts, internalhttp.WithSkipTLSVerify(true))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, internalhttp.WithHTTPClient(config.HTTPClient))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(
			config.RetryMax,
			constants.DefaultRetryWaitMin,
			constants.DefaultRetryWaitMax,
		))
	}

	return httpOpts
}

// AccountID returns the account every request is scoped to.
func (c *Client) AccountID() string {
	return c.httpClient.AccountID()
}

// WithAccount returns a client scoped to another account.
func (c *Client) WithAccount(accountID string) alldressed.Client {
	return &Client{httpClient: c.httpClient.WithAccount(accountID)}
}

func (c *Client) Customers() alldressed.CustomerBuilder {
	return NewCustomerBuilder(c.httpClient)
}

func (c *Client) Subscriptions() alldressed.SubscriptionBuilder {
	return NewSubscriptionBuilder(c.httpClient)
}

func (c *Client) Orders() alldressed.OrderBuilder {
	return NewOrderBuilder(c.httpClient)
}

func (c *Client) PaymentMethods() alldressed.PaymentMethodBuilder {
	return NewPaymentMethodBuilder(c.httpClient)
}

func (c *Client) Transactions() alldressed.TransactionBuilder {
	return NewTransactionBuilder(c.httpClient)
}

func (c *Client) Invoices() alldressed.InvoiceBuilder {
	return NewInvoiceBuilder(c.httpClient)
}

func (c *Client) Discounts() alldressed.DiscountBuilder {
	return NewDiscountBuilder(c.httpClient)
}

func (c *Client) GiftCards() alldressed.GiftCardBuilder {
	return NewGiftCardBuilder(c.httpClient)
}

func (c *Client) Menus() alldressed.MenuBuilder {
	return NewMenuBuilder(c.httpClient)
}

func (c *Client) Choices() alldressed.ChoiceBuilder {
	return NewChoiceBuilder(c.httpClient)
}

func (c *Client) Items() alldressed.ItemBuilder {
	return NewItemBuilder(c.httpClient)
}

func (c *Client) Packages() alldressed.PackageBuilder {
	return NewPackageBuilder(c.httpClient)
}

func (c *Client) Products() alldressed.ProductBuilder {
	return NewProductBuilder(c.httpClient)
}

func (c *Client) Zones() alldressed.ZoneBuilder {
	return NewZoneBuilder(c.httpClient)
}

func (c *Client) DeliverySchedules() alldressed.DeliveryScheduleBuilder {
	return NewDeliveryScheduleBuilder(c.httpClient)
}

func (c *Client) DeliveryFrequencies() alldressed.DeliveryFrequencyBuilder {
	return NewDeliveryFrequencyBuilder(c.httpClient)
}

func (c *Client) Taxes() alldressed.TaxBuilder {
	return NewTaxBuilder(c.httpClient)
}

func (c *Client) Tags() alldressed.TagBuilder {
	return NewTagBuilder(c.httpClient)
}

var _ alldressed.Client = (*Client)(nil)
