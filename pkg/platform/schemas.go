package platform

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var (
	errNegativeAmount  = errors.New("must not be negative")
	errContactRequired = errors.New("phone or email is required")
	errCloseBeforeOpen = errors.New("must be later than open")
)

// Request schemas. Resource clients run them before sending a payload.
var (
	OrganizationUpdateSchema = NewStructSchema[*OrganizationUpdateRequest]()

	ProjectCreateSchema = NewStructSchema[*ProjectCreateRequest]()
	ProjectUpdateSchema = NewStructSchema[*ProjectUpdateRequest]()

	CustomerCreateSchema = ComposeValidators(
		NewStructSchema[*CustomerCreateRequest](),
		NewRuleSchema(func(r *CustomerCreateRequest) error {
			return validation.ValidateStruct(r,
				validation.Field(&r.Phone, validation.When(r.Email == "", validation.Required.Error(errContactRequired.Error()))),
			)
		}),
	)
	CustomerUpdateSchema = NewStructSchema[*CustomerUpdateRequest]()

	ReservationCreateSchema = ComposeValidators(
		NewStructSchema[*ReservationCreateRequest](),
		NewRuleSchema(func(r *ReservationCreateRequest) error {
			return validation.ValidateStruct(r,
				validation.Field(&r.Date, validation.Required, validation.Date(dateLayout)),
				validation.Field(&r.Time, validation.Required, validation.Match(clockPattern)),
			)
		}),
	)
	ReservationUpdateSchema     = NewStructSchema[*ReservationUpdateRequest]()
	ReservationRescheduleSchema = ComposeValidators(
		NewStructSchema[*ReservationRescheduleRequest](),
		NewRuleSchema(func(r *ReservationRescheduleRequest) error {
			return validation.ValidateStruct(r,
				validation.Field(&r.Date, validation.Required, validation.Date(dateLayout)),
				validation.Field(&r.Time, validation.Required, validation.Match(clockPattern)),
			)
		}),
	)
	ReservationStatusSchema = statusSchema(
		ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusSeated,
		ReservationStatusCompleted, ReservationStatusCancelled, ReservationStatusNoShow,
	)
	AvailabilityQuerySchema = NewRuleSchema(func(q *AvailabilityQuery) error {
		return validation.ValidateStruct(q,
			validation.Field(&q.ProjectID, validation.Required),
			validation.Field(&q.Date, validation.Required, validation.Date(dateLayout)),
			validation.Field(&q.PartySize, validation.Min(0), validation.Max(100)),
			validation.Field(&q.Time, validation.Match(clockPattern)),
		)
	})

	CancelSchema = NewStructSchema[*CancelRequest]()

	OrderCreateSchema = NewStructSchema[*OrderCreateRequest]()
	OrderUpdateSchema = NewStructSchema[*OrderUpdateRequest]()
	OrderStatusSchema = statusSchema(
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled,
	)

	MenuCreateSchema = NewStructSchema[*MenuCreateRequest]()
	MenuUpdateSchema = NewStructSchema[*MenuUpdateRequest]()
	QRCodeSchema     = NewStructSchema[*QRCodeRequest]()

	ProductCreateSchema = ComposeValidators(
		NewStructSchema[*ProductCreateRequest](),
		NewRuleSchema(func(r *ProductCreateRequest) error {
			return validation.ValidateStruct(r, validation.Field(&r.Price, validation.By(nonNegativeAmount)))
		}),
	)
	ProductUpdateSchema = ComposeValidators(
		NewStructSchema[*ProductUpdateRequest](),
		NewRuleSchema(func(r *ProductUpdateRequest) error {
			return validation.ValidateStruct(r, validation.Field(&r.Price, validation.By(nonNegativeAmount)))
		}),
	)

	DeploymentCreateSchema = NewStructSchema[*DeploymentCreateRequest]()
	DeploymentUpdateSchema = NewStructSchema[*DeploymentUpdateRequest]()

	PhoneNumberSearchSchema    = NewStructSchema[*PhoneNumberSearch]()
	PhoneNumberProvisionSchema = NewStructSchema[*PhoneNumberProvisionRequest]()
	PhoneNumberAssignSchema    = NewStructSchema[*PhoneNumberAssignRequest]()

	VoiceConfigurationSchema = ComposeValidators(
		NewStructSchema[*VoiceConfigurationRequest](),
		NewRuleSchema(func(r *VoiceConfigurationRequest) error {
			return validation.ValidateStruct(r,
				validation.Field(&r.BusinessHours, validation.Each(validation.By(validBusinessHours))),
			)
		}),
	)
)

func statusSchema[S ~string](allowed ...S) Validator[*StatusUpdateRequest] {
	values := make([]interface{}, 0, len(allowed))
	for _, status := range allowed {
		values = append(values, string(status))
	}

	return NewRuleSchema(func(r *StatusUpdateRequest) error {
		return validation.ValidateStruct(r,
			validation.Field(&r.Status, validation.Required, validation.In(values...)),
		)
	})
}

func nonNegativeAmount(value interface{}) error {
	switch amount := value.(type) {
	case decimal.Decimal:
		if amount.IsNegative() {
			return errNegativeAmount
		}
	case *decimal.Decimal:
		if amount != nil && amount.IsNegative() {
			return errNegativeAmount
		}
	}

	return nil
}

func validBusinessHours(value interface{}) error {
	hours, ok := value.(BusinessHours)
	if !ok || hours.Closed {
		return nil
	}

	return validation.ValidateStruct(&hours,
		validation.Field(&hours.Open, validation.Required, validation.Match(clockPattern)),
		validation.Field(&hours.Close, validation.Required, validation.Match(clockPattern),
			validation.By(func(value interface{}) error {
				closing, _ := value.(string)
				if clockPattern.MatchString(hours.Open) && closing <= hours.Open {
					return errCloseBeforeOpen
				}

				return nil
			}),
		),
	)
}
