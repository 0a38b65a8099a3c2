package platform

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

// Reservation statuses.
const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusSeated    ReservationStatus = "seated"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusNoShow    ReservationStatus = "no_show"
)

// Reservation is a booked table or appointment.
type Reservation struct {
	Resource

	ProjectID          string            `json:"projectId"                    yaml:"project_id"`
	CustomerID         string            `json:"customerId,omitempty"         yaml:"customer_id,omitempty"`
	CustomerName       string            `json:"customerName"                 yaml:"customer_name"`
	CustomerPhone      string            `json:"customerPhone,omitempty"      yaml:"customer_phone,omitempty"`
	PartySize          int               `json:"partySize"                    yaml:"party_size"`
	Date               string            `json:"date"                         yaml:"date"`
	Time               string            `json:"time"                         yaml:"time"`
	DurationMinutes    int               `json:"durationMinutes,omitempty"    yaml:"duration_minutes,omitempty"`
	Status             ReservationStatus `json:"status"                       yaml:"status"`
	Source             string            `json:"source,omitempty"             yaml:"source,omitempty"`
	Notes              string            `json:"notes,omitempty"              yaml:"notes,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty" yaml:"cancellation_reason,omitempty"`
}

// ReservationCreateRequest creates a reservation. Date is YYYY-MM-DD and Time
// is HH:MM in the project's time zone.
type ReservationCreateRequest struct {
	ProjectID       string `json:"projectId"                 yaml:"project_id"                 validate:"required"`
	CustomerID      string `json:"customerId,omitempty"      yaml:"customer_id,omitempty"`
	CustomerName    string `json:"customerName"              yaml:"customer_name"              validate:"required,max=200"`
	CustomerPhone   string `json:"customerPhone"             yaml:"customer_phone"             validate:"required,e164"`
	PartySize       int    `json:"partySize"                 yaml:"party_size"                 validate:"required,min=1,max=100"`
	Date            string `json:"date"                      yaml:"date"`
	Time            string `json:"time"                      yaml:"time"`
	DurationMinutes int    `json:"durationMinutes,omitempty" yaml:"duration_minutes,omitempty" validate:"omitempty,min=15,max=720"`
	Source          string `json:"source,omitempty"          yaml:"source,omitempty"           validate:"omitempty,oneof=phone web walk_in ai_agent"`
	Notes           string `json:"notes,omitempty"           yaml:"notes,omitempty"            validate:"max=1000"`
}

// ReservationUpdateRequest updates a reservation. Nil fields are left
// unchanged.
type ReservationUpdateRequest struct {
	CustomerName    *string `json:"customerName,omitempty"    yaml:"customer_name,omitempty"    validate:"omitempty,min=1,max=200"`
	CustomerPhone   *string `json:"customerPhone,omitempty"   yaml:"customer_phone,omitempty"   validate:"omitempty,e164"`
	PartySize       *int    `json:"partySize,omitempty"       yaml:"party_size,omitempty"       validate:"omitempty,min=1,max=100"`
	DurationMinutes *int    `json:"durationMinutes,omitempty" yaml:"duration_minutes,omitempty" validate:"omitempty,min=15,max=720"`
	Notes           *string `json:"notes,omitempty"           yaml:"notes,omitempty"            validate:"omitempty,max=1000"`
}

// ReservationRescheduleRequest moves a reservation.
type ReservationRescheduleRequest struct {
	Date   string `json:"date"             yaml:"date"`
	Time   string `json:"time"             yaml:"time"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty" validate:"max=500"`
}

// AvailabilityQuery asks for open slots on a date.
type AvailabilityQuery struct {
	ProjectID string `json:"projectId"      yaml:"project_id"`
	Date      string `json:"date"           yaml:"date"`
	PartySize int    `json:"partySize"      yaml:"party_size"`
	Time      string `json:"time,omitempty" yaml:"time,omitempty"`
}

// ToValues converts the query to URL query values.
func (q AvailabilityQuery) ToValues() url.Values {
	values := url.Values{}
	values.Set("projectId", q.ProjectID)
	values.Set("date", q.Date)

	if q.PartySize > 0 {
		values.Set("partySize", strconv.Itoa(q.PartySize))
	}

	if q.Time != "" {
		values.Set("time", q.Time)
	}

	return values
}

// AvailabilitySlot is a bookable time.
type AvailabilitySlot struct {
	Time      string `json:"time"      yaml:"time"`
	Available bool   `json:"available" yaml:"available"`
	Capacity  int    `json:"capacity"  yaml:"capacity"`
}

// Availability lists the slots for one date.
type Availability struct {
	Date  string             `json:"date"  yaml:"date"`
	Slots []AvailabilitySlot `json:"slots" yaml:"slots"`
}

// OrderType is how an order is fulfilled.
type OrderType string

// Order types.
const (
	OrderTypeDineIn   OrderType = "dine_in"
	OrderTypeTakeout  OrderType = "takeout"
	OrderTypeDelivery OrderType = "delivery"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a line of an order.
type OrderItem struct {
	ProductID string          `json:"productId"           yaml:"product_id"`
	Name      string          `json:"name"                yaml:"name"`
	Quantity  int             `json:"quantity"            yaml:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"           yaml:"unit_price"`
	Notes     string          `json:"notes,omitempty"     yaml:"notes,omitempty"`
	Modifiers []string        `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}

// LineTotal is the unit price times the quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is a purchase placed with a project.
type Order struct {
	Resource

	ProjectID       string          `json:"projectId"                 yaml:"project_id"`
	CustomerID      string          `json:"customerId,omitempty"      yaml:"customer_id,omitempty"`
	OrderNumber     string          `json:"orderNumber"               yaml:"order_number"`
	Type            OrderType       `json:"type"                      yaml:"type"`
	Status          OrderStatus     `json:"status"                    yaml:"status"`
	Items           []OrderItem     `json:"items"                     yaml:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"                  yaml:"subtotal"`
	Tax             decimal.Decimal `json:"tax"                       yaml:"tax"`
	Total           decimal.Decimal `json:"total"                     yaml:"total"`
	Currency        string          `json:"currency,omitempty"        yaml:"currency,omitempty"`
	Notes           string          `json:"notes,omitempty"           yaml:"notes,omitempty"`
	DeliveryAddress *Address        `json:"deliveryAddress,omitempty" yaml:"delivery_address,omitempty"`
	ScheduledFor    *time.Time      `json:"scheduledFor,omitempty"    yaml:"scheduled_for,omitempty"`
}

// ItemsSubtotal sums the line totals of the order items.
func (o *Order) ItemsSubtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.Items {
		sum = sum.Add(item.LineTotal())
	}

	return sum
}

// OrderItemRequest is a line of an order being placed.
type OrderItemRequest struct {
	ProductID string   `json:"productId"           yaml:"product_id"          validate:"required"`
	Quantity  int      `json:"quantity"            yaml:"quantity"            validate:"required,min=1,max=999"`
	Notes     string   `json:"notes,omitempty"     yaml:"notes,omitempty"     validate:"max=200"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty" validate:"max=20,dive,min=1,max=100"`
}

// OrderCreateRequest places an order. Delivery orders need an address.
type OrderCreateRequest struct {
	ProjectID       string             `json:"projectId"                 yaml:"project_id"                 validate:"required"`
	CustomerID      string             `json:"customerId,omitempty"      yaml:"customer_id,omitempty"`
	Type            OrderType          `json:"type"                      yaml:"type"                       validate:"required,oneof=dine_in takeout delivery"`
	Items           []OrderItemRequest `json:"items"                     yaml:"items"                      validate:"required,min=1,dive"`
	Notes           string             `json:"notes,omitempty"           yaml:"notes,omitempty"            validate:"max=1000"`
	DeliveryAddress *Address           `json:"deliveryAddress,omitempty" yaml:"delivery_address,omitempty" validate:"required_if=Type delivery"`
	ScheduledFor    *time.Time         `json:"scheduledFor,omitempty"    yaml:"scheduled_for,omitempty"`
}

// OrderUpdateRequest updates an order. The ID travels in the body.
type OrderUpdateRequest struct {
	ID           string             `json:"id"                     yaml:"id"                     validate:"required"`
	Items        []OrderItemRequest `json:"items,omitempty"        yaml:"items,omitempty"        validate:"omitempty,min=1,dive"`
	Notes        *string            `json:"notes,omitempty"        yaml:"notes,omitempty"        validate:"omitempty,max=1000"`
	ScheduledFor *time.Time         `json:"scheduledFor,omitempty" yaml:"scheduled_for,omitempty"`
}

// MenuStatus is the lifecycle state of a menu.
type MenuStatus string

// Menu statuses.
const (
	MenuStatusDraft     MenuStatus = "draft"
	MenuStatusPublished MenuStatus = "published"
	MenuStatusArchived  MenuStatus = "archived"
)

// MenuSection groups products on a menu.
type MenuSection struct {
	ID          string   `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        string   `json:"name"                  yaml:"name"                  validate:"required,max=100"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" validate:"max=500"`
	ProductIDs  []string `json:"productIds"            yaml:"product_ids"           validate:"dive,required"`
	SortOrder   int      `json:"sortOrder"             yaml:"sort_order"            validate:"min=0"`
}

// MenuTheme controls how a published menu looks.
type MenuTheme struct {
	PrimaryColor    string `json:"primaryColor,omitempty"    yaml:"primary_color,omitempty"    validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"background_color,omitempty" validate:"omitempty,hexcolor"`
	FontFamily      string `json:"fontFamily,omitempty"      yaml:"font_family,omitempty"      validate:"max=100"`
}

// Menu is a published list of products.
type Menu struct {
	Resource

	ProjectID   string        `json:"projectId"             yaml:"project_id"`
	Name        string        `json:"name"                  yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Status      MenuStatus    `json:"status"                yaml:"status"`
	Currency    string        `json:"currency,omitempty"    yaml:"currency,omitempty"`
	Sections    []MenuSection `json:"sections"              yaml:"sections"`
	Theme       *MenuTheme    `json:"theme,omitempty"       yaml:"theme,omitempty"`
	PublicURL   string        `json:"publicUrl,omitempty"   yaml:"public_url,omitempty"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty" yaml:"published_at,omitempty"`
}

// MenuCreateRequest creates a menu.
type MenuCreateRequest struct {
	ProjectID   string        `json:"projectId"             yaml:"project_id"            validate:"required"`
	Name        string        `json:"name"                  yaml:"name"                  validate:"required,max=100"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty" validate:"max=500"`
	Currency    string        `json:"currency,omitempty"    yaml:"currency,omitempty"    validate:"omitempty,len=3,uppercase"`
	Sections    []MenuSection `json:"sections,omitempty"    yaml:"sections,omitempty"    validate:"dive"`
	Theme       *MenuTheme    `json:"theme,omitempty"       yaml:"theme,omitempty"       validate:"omitempty"`
}

// MenuUpdateRequest updates a menu. Nil fields are left unchanged.
type MenuUpdateRequest struct {
	Name        *string       `json:"name,omitempty"        yaml:"name,omitempty"        validate:"omitempty,min=1,max=100"`
	Description *string       `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=500"`
	Sections    []MenuSection `json:"sections,omitempty"    yaml:"sections,omitempty"    validate:"omitempty,dive"`
	Theme       *MenuTheme    `json:"theme,omitempty"       yaml:"theme,omitempty"       validate:"omitempty"`
}

// QRCodeRequest configures a generated menu QR code.
type QRCodeRequest struct {
	Size            int    `json:"size,omitempty"            yaml:"size,omitempty"             validate:"omitempty,min=64,max=2048"`
	Format          string `json:"format,omitempty"          yaml:"format,omitempty"           validate:"omitempty,oneof=png svg"`
	ForegroundColor string `json:"foregroundColor,omitempty" yaml:"foreground_color,omitempty" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"background_color,omitempty" validate:"omitempty,hexcolor"`
}

// QRCode is a generated menu QR code. ImageData is base64 encoded.
type QRCode struct {
	MenuURL   string `json:"menuUrl"   yaml:"menu_url"`
	ImageURL  string `json:"imageUrl"  yaml:"image_url"`
	ImageData string `json:"imageData" yaml:"-"`
	Format    string `json:"format"    yaml:"format"`
}

// Product is an item that can appear on menus and orders.
type Product struct {
	Resource

	ProjectID   string          `json:"projectId"             yaml:"project_id"`
	Name        string          `json:"name"                  yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string          `json:"category,omitempty"    yaml:"category,omitempty"`
	Price       decimal.Decimal `json:"price"                 yaml:"price"`
	Currency    string          `json:"currency,omitempty"    yaml:"currency,omitempty"`
	Available   bool            `json:"available"             yaml:"available"`
	SKU         string          `json:"sku,omitempty"         yaml:"sku,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"    yaml:"image_url,omitempty"`
	Allergens   []string        `json:"allergens,omitempty"   yaml:"allergens,omitempty"`
	Tags        []string        `json:"tags,omitempty"        yaml:"tags,omitempty"`
}

// ProductCreateRequest creates a product. Price must not be negative.
type ProductCreateRequest struct {
	ProjectID   string          `json:"projectId"             yaml:"project_id"            validate:"required"`
	Name        string          `json:"name"                  yaml:"name"                  validate:"required,max=200"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty" validate:"max=2000"`
	Category    string          `json:"category,omitempty"    yaml:"category,omitempty"    validate:"max=100"`
	Price       decimal.Decimal `json:"price"                 yaml:"price"`
	Currency    string          `json:"currency,omitempty"    yaml:"currency,omitempty"    validate:"omitempty,len=3,uppercase"`
	Available   *bool           `json:"available,omitempty"   yaml:"available,omitempty"`
	SKU         string          `json:"sku,omitempty"         yaml:"sku,omitempty"         validate:"max=64"`
	ImageURL    string          `json:"imageUrl,omitempty"    yaml:"image_url,omitempty"   validate:"omitempty,url"`
	Allergens   []string        `json:"allergens,omitempty"   yaml:"allergens,omitempty"   validate:"max=20,dive,min=1,max=50"`
	Tags        []string        `json:"tags,omitempty"        yaml:"tags,omitempty"        validate:"max=20,dive,min=1,max=50"`
}

// ProductUpdateRequest updates a product. The ID travels in the body.
type ProductUpdateRequest struct {
	ID          string           `json:"id"                    yaml:"id"                    validate:"required"`
	Name        *string          `json:"name,omitempty"        yaml:"name,omitempty"        validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description,omitempty" yaml:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string          `json:"category,omitempty"    yaml:"category,omitempty"    validate:"omitempty,max=100"`
	Price       *decimal.Decimal `json:"price,omitempty"       yaml:"price,omitempty"`
	Available   *bool            `json:"available,omitempty"   yaml:"available,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"    yaml:"image_url,omitempty"   validate:"omitempty,url"`
	Tags        []string         `json:"tags,omitempty"        yaml:"tags,omitempty"        validate:"omitempty,max=20,dive,min=1,max=50"`
}

// ProductAvailabilityRequest toggles whether a product can be ordered.
type ProductAvailabilityRequest struct {
	Available bool `json:"available" yaml:"available"`
}
