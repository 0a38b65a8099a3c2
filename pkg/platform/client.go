package platform

import "context"

// CoreResourceClients provides access to account-level resource clients.
type CoreResourceClients interface {
	Organizations() OrganizationsClient
	Projects() ProjectsClient
}

// CommerceClients provides access to the clients of a project's business
// data.
type CommerceClients interface {
	Customers() CustomersClient
	Reservations() ReservationsClient
	Orders() OrdersClient
	Menus() MenusClient
	Products() ProductsClient
}

// VoiceClients provides access to the clients of voice agents and telephony.
type VoiceClients interface {
	Deployments() DeploymentsClient
	PhoneNumbers() PhoneNumbersClient
	VoiceConfigurations() VoiceConfigurationsClient
}

// Client is the entry point to the Platform API. All accessors share one
// transport and are safe for concurrent use.
type Client interface {
	CoreResourceClients
	CommerceClients
	VoiceClients
}

// OrganizationsClient manages the organization the API key belongs to.
type OrganizationsClient interface {
	Get(ctx context.Context) (*Organization, error)
	Update(ctx context.Context, request *OrganizationUpdateRequest) (*Organization, error)
	GetUsage(ctx context.Context) (*OrganizationUsage, error)
}

// ProjectsClient manages projects.
type ProjectsClient interface {
	Create(ctx context.Context, request *ProjectCreateRequest) (*Project, error)
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResult[Project], error)
	Update(ctx context.Context, request *ProjectUpdateRequest) (*Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CustomersClient manages customers.
type CustomersClient interface {
	Create(ctx context.Context, request *CustomerCreateRequest) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	// GetByPhone returns nil without error when no customer matches.
	GetByPhone(ctx context.Context, phone string) (*Customer, error)
	// GetByEmail returns nil without error when no customer matches.
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResult[Customer], error)
	Update(ctx context.Context, id string, request *CustomerUpdateRequest) (*Customer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ReservationsClient manages reservations.
type ReservationsClient interface {
	Create(ctx context.Context, request *ReservationCreateRequest) (*Reservation, error)
	Get(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResult[Reservation], error)
	Update(ctx context.Context, id string, request *ReservationUpdateRequest) (*Reservation, error)
	Cancel(ctx context.Context, id string, reason string) (*Reservation, error)
	Reschedule(ctx context.Context, id string, request *ReservationRescheduleRequest) (*Reservation, error)
	UpdateStatus(ctx context.Context, id string, status ReservationStatus) (*Reservation, error)
	CheckAvailability(ctx context.Context, query *AvailabilityQuery) (*Availability, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// OrdersClient manages orders.
type OrdersClient interface {
	Create(ctx context.Context, request *OrderCreateRequest) (*Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResult[Order], error)
	Update(ctx context.Context, request *OrderUpdateRequest) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) (*Order, error)
	Cancel(ctx context.Context, id string, reason string) (*Order, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// MenusClient manages menus.
type MenusClient interface {
	Create(ctx context.Context, request *MenuCreateRequest) (*Menu, error)
	Get(ctx context.Context, id string) (*Menu, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResult[Menu], error)
	Update(ctx context.Context, id string, request *MenuUpdateRequest) (*Menu, error)
	Delete(ctx context.Context, id string) (bool, error)
	GenerateQRCode(ctx context.Context, id string, request *QRCodeRequest) (*QRCode, error)
	Publish(ctx context.Context, id string) (*Menu, error)
}

// ProductsClient manages products.
type ProductsClient interface {
	Create(ctx context.Context, request *ProductCreateRequest) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResult[Product], error)
	Update(ctx context.Context, request *ProductUpdateRequest) (*Product, error)
	UpdateAvailability(ctx context.Context, id string, available bool) (*Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DeploymentsClient manages voice agent deployments.
type DeploymentsClient interface {
	Create(ctx context.Context, request *DeploymentCreateRequest) (*Deployment, error)
	Get(ctx context.Context, id string) (*Deployment, error)
	List(ctx context.Context, params *ListParams) (*PaginatedResult[Deployment], error)
	Update(ctx context.Context, id string, request *DeploymentUpdateRequest) (*Deployment, error)
	Delete(ctx context.Context, id string) (bool, error)
	Activate(ctx context.Context, id string) (*Deployment, error)
	Deactivate(ctx context.Context, id string) (*Deployment, error)
	GetLogs(ctx context.Context, id string, params *ListParams) (*PaginatedResult[DeploymentLog], error)
}

// PhoneNumbersClient manages provisioned phone numbers.
type PhoneNumbersClient interface {
	List(ctx context.Context, params *ListParams) (*PaginatedResult[PhoneNumber], error)
	Get(ctx context.Context, id string) (*PhoneNumber, error)
	Search(ctx context.Context, query *PhoneNumberSearch) ([]AvailablePhoneNumber, error)
	Provision(ctx context.Context, request *PhoneNumberProvisionRequest) (*PhoneNumber, error)
	Release(ctx context.Context, id string) (bool, error)
	Assign(ctx context.Context, id string, request *PhoneNumberAssignRequest) (*PhoneNumber, error)
}

// VoiceConfigurationsClient manages the voice settings of a project.
type VoiceConfigurationsClient interface {
	Get(ctx context.Context, projectID string) (*VoiceConfiguration, error)
	Update(ctx context.Context, projectID string, request *VoiceConfigurationRequest) (*VoiceConfiguration, error)
	Reset(ctx context.Context, projectID string) (bool, error)
	ListVoices(ctx context.Context) ([]Voice, error)
}
