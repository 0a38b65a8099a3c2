package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const phoneNumbersPath = "/phone-numbers"

// PhoneNumbersClient implements platform.PhoneNumbersClient.
type PhoneNumbersClient struct {
	httpClient *http.Client
}

// NewPhoneNumbersClient creates a new phone numbers client.
func NewPhoneNumbersClient(httpClient *http.Client) *PhoneNumbersClient {
	return &PhoneNumbersClient{
		httpClient: httpClient,
	}
}

// List implements platform.PhoneNumbersClient.List.
func (c *PhoneNumbersClient) List(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.PhoneNumber], error) {
	return listResource[platform.PhoneNumber](ctx, c.httpClient, phoneNumbersPath, params)
}

// Get implements platform.PhoneNumbersClient.Get.
func (c *PhoneNumbersClient) Get(ctx context.Context, id string) (*platform.PhoneNumber, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Get[*platform.PhoneNumber](ctx, c.httpClient, resourcePath(phoneNumbersPath, id), nil)
}

// Search implements platform.PhoneNumbersClient.Search.
func (c *PhoneNumbersClient) Search(ctx context.Context, query *platform.PhoneNumberSearch) ([]platform.AvailablePhoneNumber, error) {
	if issues := platform.PhoneNumberSearchSchema.Validate(query); len(issues) > 0 {
		return nil, platform.NewValidationError(issues)
	}

	numbers, err := http.Get[[]platform.AvailablePhoneNumber](ctx, c.httpClient, resourcePath(phoneNumbersPath, "available"), query.ToValues())
	if err != nil {
		return nil, err
	}

	if numbers == nil {
		numbers = []platform.AvailablePhoneNumber{}
	}

	return numbers, nil
}

// Provision implements platform.PhoneNumbersClient.Provision.
func (c *PhoneNumbersClient) Provision(ctx context.Context, request *platform.PhoneNumberProvisionRequest) (*platform.PhoneNumber, error) {
	return http.Post[*platform.PhoneNumberProvisionRequest, *platform.PhoneNumber](
		ctx, c.httpClient, phoneNumbersPath, request, platform.PhoneNumberProvisionSchema)
}

// Release implements platform.PhoneNumbersClient.Release.
func (c *PhoneNumbersClient) Release(ctx context.Context, id string) (bool, error) {
	if err := requireID("id", id); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, resourcePath(phoneNumbersPath, id))
}

// Assign implements platform.PhoneNumbersClient.Assign.
func (c *PhoneNumbersClient) Assign(ctx context.Context, id string, request *platform.PhoneNumberAssignRequest) (*platform.PhoneNumber, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Post[*platform.PhoneNumberAssignRequest, *platform.PhoneNumber](
		ctx, c.httpClient, resourcePath(phoneNumbersPath, id, "assign"), request, platform.PhoneNumberAssignSchema)
}
