package platform

import "time"

// Organization is the account that owns projects.
type Organization struct {
	Resource

	CompanyName string   `json:"companyName"        yaml:"company_name"`
	Email       string   `json:"email,omitempty"    yaml:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"    yaml:"phone,omitempty"`
	Website     string   `json:"website,omitempty"  yaml:"website,omitempty"`
	Timezone    string   `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Currency    string   `json:"currency,omitempty" yaml:"currency,omitempty"`
	Plan        string   `json:"plan,omitempty"     yaml:"plan,omitempty"`
	Address     *Address `json:"address,omitempty"  yaml:"address,omitempty"`
}

// OrganizationUpdateRequest updates the current organization. Nil fields are
// left unchanged.
type OrganizationUpdateRequest struct {
	CompanyName *string  `json:"companyName,omitempty" yaml:"company_name,omitempty" validate:"omitempty,min=1,max=200"`
	Email       *string  `json:"email,omitempty"       yaml:"email,omitempty"        validate:"omitempty,email"`
	Phone       *string  `json:"phone,omitempty"       yaml:"phone,omitempty"        validate:"omitempty,e164"`
	Website     *string  `json:"website,omitempty"     yaml:"website,omitempty"      validate:"omitempty,url"`
	Timezone    *string  `json:"timezone,omitempty"    yaml:"timezone,omitempty"     validate:"omitempty,timezone"`
	Currency    *string  `json:"currency,omitempty"    yaml:"currency,omitempty"     validate:"omitempty,len=3,uppercase"`
	Address     *Address `json:"address,omitempty"     yaml:"address,omitempty"      validate:"omitempty"`
}

// OrganizationUsage reports consumption for the current billing period.
type OrganizationUsage struct {
	PeriodStart  time.Time `json:"periodStart"  yaml:"period_start"`
	PeriodEnd    time.Time `json:"periodEnd"    yaml:"period_end"`
	Projects     int       `json:"projects"     yaml:"projects"`
	Customers    int       `json:"customers"    yaml:"customers"`
	Reservations int       `json:"reservations" yaml:"reservations"`
	Orders       int       `json:"orders"       yaml:"orders"`
	CallMinutes  int       `json:"callMinutes"  yaml:"call_minutes"`
	PhoneNumbers int       `json:"phoneNumbers" yaml:"phone_numbers"`
}

// ProjectType is the kind of business a project serves.
type ProjectType string

// Project types.
const (
	ProjectTypeRestaurant ProjectType = "restaurant"
	ProjectTypeRetail     ProjectType = "retail"
	ProjectTypeSalon      ProjectType = "salon"
	ProjectTypeClinic     ProjectType = "clinic"
	ProjectTypeOther      ProjectType = "other"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

// Project statuses.
const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusPaused   ProjectStatus = "paused"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Project is a single business location or line of business.
type Project struct {
	Resource

	OrganizationID string                 `json:"organizationId"        yaml:"organization_id"`
	Name           string                 `json:"name"                  yaml:"name"`
	Description    string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Type           ProjectType            `json:"type"                  yaml:"type"`
	Status         ProjectStatus          `json:"status"                yaml:"status"`
	Timezone       string                 `json:"timezone,omitempty"    yaml:"timezone,omitempty"`
	Settings       map[string]interface{} `json:"settings,omitempty"    yaml:"settings,omitempty"`
}

// ProjectCreateRequest creates a project.
type ProjectCreateRequest struct {
	Name        string                 `json:"name"                  yaml:"name"                  validate:"required,min=1,max=100"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty" validate:"max=500"`
	Type        ProjectType            `json:"type"                  yaml:"type"                  validate:"required,oneof=restaurant retail salon clinic other"`
	Timezone    string                 `json:"timezone,omitempty"    yaml:"timezone,omitempty"    validate:"omitempty,timezone"`
	Settings    map[string]interface{} `json:"settings,omitempty"    yaml:"settings,omitempty"`
}

// ProjectUpdateRequest updates a project. The ID travels in the body.
type ProjectUpdateRequest struct {
	ID          string                 `json:"id"                    yaml:"id"                    validate:"required"`
	Name        *string                `json:"name,omitempty"        yaml:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string                `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=500"`
	Status      *ProjectStatus         `json:"status,omitempty"      yaml:"status,omitempty"      validate:"omitempty,oneof=active paused archived"`
	Timezone    *string                `json:"timezone,omitempty"    yaml:"timezone,omitempty"    validate:"omitempty,timezone"`
	Settings    map[string]interface{} `json:"settings,omitempty"    yaml:"settings,omitempty"`
}

// Customer is a person known to a project.
type Customer struct {
	Resource

	ProjectID   string     `json:"projectId"             yaml:"project_id"`
	FirstName   string     `json:"firstName"             yaml:"first_name"`
	LastName    string     `json:"lastName,omitempty"    yaml:"last_name,omitempty"`
	Email       string     `json:"email,omitempty"       yaml:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"       yaml:"phone,omitempty"`
	Notes       string     `json:"notes,omitempty"       yaml:"notes,omitempty"`
	Tags        []string   `json:"tags,omitempty"        yaml:"tags,omitempty"`
	VisitCount  int        `json:"visitCount"            yaml:"visit_count"`
	LastVisitAt *time.Time `json:"lastVisitAt,omitempty" yaml:"last_visit_at,omitempty"`
}

// FullName joins the first and last name.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}

	return c.FirstName + " " + c.LastName
}

// CustomerCreateRequest creates a customer. Either Email or Phone is
// required.
type CustomerCreateRequest struct {
	ProjectID string   `json:"projectId"          yaml:"project_id"          validate:"required"`
	FirstName string   `json:"firstName"          yaml:"first_name"          validate:"required,max=100"`
	LastName  string   `json:"lastName,omitempty" yaml:"last_name,omitempty" validate:"max=100"`
	Email     string   `json:"email,omitempty"    yaml:"email,omitempty"     validate:"omitempty,email"`
	Phone     string   `json:"phone,omitempty"    yaml:"phone,omitempty"     validate:"omitempty,e164"`
	Notes     string   `json:"notes,omitempty"    yaml:"notes,omitempty"     validate:"max=1000"`
	Tags      []string `json:"tags,omitempty"     yaml:"tags,omitempty"      validate:"max=20,dive,min=1,max=50"`
}

// CustomerUpdateRequest updates a customer. Nil fields are left unchanged.
type CustomerUpdateRequest struct {
	FirstName *string  `json:"firstName,omitempty" yaml:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string  `json:"lastName,omitempty"  yaml:"last_name,omitempty"  validate:"omitempty,max=100"`
	Email     *string  `json:"email,omitempty"     yaml:"email,omitempty"      validate:"omitempty,email"`
	Phone     *string  `json:"phone,omitempty"     yaml:"phone,omitempty"      validate:"omitempty,e164"`
	Notes     *string  `json:"notes,omitempty"     yaml:"notes,omitempty"      validate:"omitempty,max=1000"`
	Tags      []string `json:"tags,omitempty"      yaml:"tags,omitempty"       validate:"omitempty,max=20,dive,min=1,max=50"`
}
