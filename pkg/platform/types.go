package platform

import "time"

// Resource holds the fields every stored entity carries.
type Resource struct {
	ID        string    `json:"id"                  yaml:"id"`
	CreatedAt time.Time `json:"createdAt,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" yaml:"updated_at,omitempty"`
}

// Address is a postal address.
type Address struct {
	Street     string `json:"street"               yaml:"street"               validate:"required,max=200"`
	City       string `json:"city"                 yaml:"city"                 validate:"required,max=100"`
	State      string `json:"state,omitempty"      yaml:"state,omitempty"      validate:"max=100"`
	PostalCode string `json:"postalCode,omitempty" yaml:"postal_code,omitempty" validate:"max=20"`
	Country    string `json:"country,omitempty"    yaml:"country,omitempty"    validate:"omitempty,len=2,uppercase"`
}

// StatusUpdateRequest changes the status of an entity.
type StatusUpdateRequest struct {
	Status string `json:"status" yaml:"status"`
}

// CancelRequest cancels an entity with an optional reason.
type CancelRequest struct {
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty" validate:"max=500"`
}

// DeleteResult is returned by delete operations.
type DeleteResult struct {
	Deleted bool `json:"deleted" yaml:"deleted"`
}

// String returns a pointer to s. It helps fill optional request fields.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
