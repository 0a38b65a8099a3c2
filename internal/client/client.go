package client

import (
	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

// Client implements the platform.Client interface.
type Client struct {
	httpClient *http.Client
	config     platform.Config

	// Resource clients
	organizations       platform.OrganizationsClient
	projects            platform.ProjectsClient
	customers           platform.CustomersClient
	reservations        platform.ReservationsClient
	orders              platform.OrdersClient
	menus               platform.MenusClient
	products            platform.ProductsClient
	deployments         platform.DeploymentsClient
	phoneNumbers        platform.PhoneNumbersClient
	voiceConfigurations platform.VoiceConfigurationsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config platform.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithLogger(config.Logger),
		http.WithDebug(config.Debug),
		http.WithUserAgent(config.UserAgent),
		http.WithRequestInterceptors(config.RequestInterceptors...),
		http.WithResponseInterceptors(config.ResponseInterceptors...),
	}

	if config.Metrics != nil {
		httpOpts = append(httpOpts, http.WithMetrics(config.Metrics))
	}

	return httpOpts
}

// New creates a new Platform API client. The config is copied; later changes
// to it have no effect.
func New(config *platform.Config, opts ...http.Option) (*Client, error) {
	if config == nil {
		return nil, platform.NewConfigurationError("", "config is required", platform.ErrAPIKeyRequired)
	}

	normalized, err := config.Normalize()
	if err != nil {
		return nil, err
	}

	httpOpts := append(createHTTPClientOptions(normalized), opts...)
	httpClient := http.NewClient(normalized.BaseURL, normalized.APIKey, normalized.Timeout, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		config:     normalized,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient)
	c.customers = NewCustomersClient(c.httpClient)
	c.reservations = NewReservationsClient(c.httpClient)
	c.orders = NewOrdersClient(c.httpClient)
	c.menus = NewMenusClient(c.httpClient)
	c.products = NewProductsClient(c.httpClient)
	c.deployments = NewDeploymentsClient(c.httpClient)
	c.phoneNumbers = NewPhoneNumbersClient(c.httpClient)
	c.voiceConfigurations = NewVoiceConfigurationsClient(c.httpClient)
}

// BaseURL returns the normalized base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Resource client accessors

// Organizations implements platform.Client.Organizations.
func (c *Client) Organizations() platform.OrganizationsClient {
	return c.organizations
}

// Projects implements platform.Client.Projects.
func (c *Client) Projects() platform.ProjectsClient {
	return c.projects
}

// Customers implements platform.Client.Customers.
func (c *Client) Customers() platform.CustomersClient {
	return c.customers
}

// Reservations implements platform.Client.Reservations.
func (c *Client) Reservations() platform.ReservationsClient {
	return c.reservations
}

// Orders implements platform.Client.Orders.
func (c *Client) Orders() platform.OrdersClient {
	return c.orders
}

// Menus implements platform.Client.Menus.
func (c *Client) Menus() platform.MenusClient {
	return c.menus
}

// Products implements platform.Client.Products.
func (c *Client) Products() platform.ProductsClient {
	return c.products
}

// Deployments implements platform.Client.Deployments.
func (c *Client) Deployments() platform.DeploymentsClient {
	return c.deployments
}

// PhoneNumbers implements platform.Client.PhoneNumbers.
func (c *Client) PhoneNumbers() platform.PhoneNumbersClient {
	return c.phoneNumbers
}

// VoiceConfigurations implements platform.Client.VoiceConfigurations.
func (c *Client) VoiceConfigurations() platform.VoiceConfigurationsClient {
	return c.voiceConfigurations
}

var _ platform.Client = (*Client)(nil)
