package client

import (
	"context"

	"github.com/fivetwenty-io/platform-client/internal/http"
	"github.com/fivetwenty-io/platform-client/pkg/platform"
)

const reservationsPath = "/reservations"

// ReservationsClient implements platform.ReservationsClient.
type ReservationsClient struct {
	httpClient *http.Client
}

// NewReservationsClient creates a new reservations client.
func NewReservationsClient(httpClient *http.Client) *ReservationsClient {
	return &ReservationsClient{
		httpClient: httpClient,
	}
}

// Create implements platform.ReservationsClient.Create.
func (c *ReservationsClient) Create(ctx context.Context, request *platform.ReservationCreateRequest) (*platform.Reservation, error) {
	return http.Post[*platform.ReservationCreateRequest, *platform.Reservation](
		ctx, c.httpClient, reservationsPath, request, platform.ReservationCreateSchema)
}

// Get implements platform.ReservationsClient.Get.
func (c *ReservationsClient) Get(ctx context.Context, id string) (*platform.Reservation, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Get[*platform.Reservation](ctx, c.httpClient, resourcePath(reservationsPath, id), nil)
}

// List implements platform.ReservationsClient.List. Sorting and filters such
// as status or date are taken from params.
func (c *ReservationsClient) List(ctx context.Context, params *platform.ListParams) (*platform.PaginatedResult[platform.Reservation], error) {
	return listResource[platform.Reservation](ctx, c.httpClient, reservationsPath, params)
}

// Update implements platform.ReservationsClient.Update.
func (c *ReservationsClient) Update(ctx context.Context, id string, request *platform.ReservationUpdateRequest) (*platform.Reservation, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Patch[*platform.ReservationUpdateRequest, *platform.Reservation](
		ctx, c.httpClient, resourcePath(reservationsPath, id), request, platform.ReservationUpdateSchema)
}

// Cancel implements platform.ReservationsClient.Cancel.
func (c *ReservationsClient) Cancel(ctx context.Context, id string, reason string) (*platform.Reservation, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Post[*platform.CancelRequest, *platform.Reservation](
		ctx, c.httpClient, resourcePath(reservationsPath, id, "cancel"), &platform.CancelRequest{Reason: reason}, platform.CancelSchema)
}

// Reschedule implements platform.ReservationsClient.Reschedule.
func (c *ReservationsClient) Reschedule(ctx context.Context, id string, request *platform.ReservationRescheduleRequest) (*platform.Reservation, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Post[*platform.ReservationRescheduleRequest, *platform.Reservation](
		ctx, c.httpClient, resourcePath(reservationsPath, id, "reschedule"), request, platform.ReservationRescheduleSchema)
}

// UpdateStatus implements platform.ReservationsClient.UpdateStatus.
func (c *ReservationsClient) UpdateStatus(ctx context.Context, id string, status platform.ReservationStatus) (*platform.Reservation, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	return http.Patch[*platform.StatusUpdateRequest, *platform.Reservation](
		ctx, c.httpClient, resourcePath(reservationsPath, id, "status"),
		&platform.StatusUpdateRequest{Status: string(status)}, platform.ReservationStatusSchema)
}

// CheckAvailability implements platform.ReservationsClient.CheckAvailability.
func (c *ReservationsClient) CheckAvailability(ctx context.Context, query *platform.AvailabilityQuery) (*platform.Availability, error) {
	if issues := platform.AvailabilityQuerySchema.Validate(query); len(issues) > 0 {
		return nil, platform.NewValidationError(issues)
	}

	return http.Get[*platform.Availability](ctx, c.httpClient, resourcePath(reservationsPath, "availability"), query.ToValues())
}

// Delete implements platform.ReservationsClient.Delete.
func (c *ReservationsClient) Delete(ctx context.Context, id string) (bool, error) {
	if err := requireID("id", id); err != nil {
		return false, err
	}

	return deleteResource(ctx, c.httpClient, resourcePath(reservationsPath, id))
}
