package platform

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DeploymentStatus is the lifecycle state of an agent deployment.
type DeploymentStatus string

// Deployment statuses.
const (
	DeploymentStatusDraft     DeploymentStatus = "draft"
	DeploymentStatusDeploying DeploymentStatus = "deploying"
	DeploymentStatusActive    DeploymentStatus = "active"
	DeploymentStatusInactive  DeploymentStatus = "inactive"
	DeploymentStatusFailed    DeploymentStatus = "failed"
)

// Deployment is an AI agent deployed on a channel.
type Deployment struct {
	Resource

	ProjectID      string           `json:"projectId"                yaml:"project_id"`
	Name           string           `json:"name"                     yaml:"name"`
	Status         DeploymentStatus `json:"status"                   yaml:"status"`
	Channel        string           `json:"channel"                  yaml:"channel"`
	Model          string           `json:"model,omitempty"          yaml:"model,omitempty"`
	PhoneNumberID  string           `json:"phoneNumberId,omitempty"  yaml:"phone_number_id,omitempty"`
	Greeting       string           `json:"greeting,omitempty"       yaml:"greeting,omitempty"`
	Instructions   string           `json:"instructions,omitempty"   yaml:"instructions,omitempty"`
	Language       string           `json:"language,omitempty"       yaml:"language,omitempty"`
	VoiceID        string           `json:"voiceId,omitempty"        yaml:"voice_id,omitempty"`
	Version        int              `json:"version"                  yaml:"version"`
	LastDeployedAt *time.Time       `json:"lastDeployedAt,omitempty" yaml:"last_deployed_at,omitempty"`
}

// DeploymentCreateRequest creates a deployment. Phone deployments need a
// phone number.
type DeploymentCreateRequest struct {
	ProjectID     string `json:"projectId"               yaml:"project_id"                validate:"required"`
	Name          string `json:"name"                    yaml:"name"                      validate:"required,max=100"`
	Channel       string `json:"channel"                 yaml:"channel"                   validate:"required,oneof=phone web sms"`
	Model         string `json:"model,omitempty"         yaml:"model,omitempty"           validate:"max=100"`
	PhoneNumberID string `json:"phoneNumberId,omitempty" yaml:"phone_number_id,omitempty" validate:"required_if=Channel phone"`
	Greeting      string `json:"greeting,omitempty"      yaml:"greeting,omitempty"        validate:"max=500"`
	Instructions  string `json:"instructions,omitempty"  yaml:"instructions,omitempty"    validate:"max=10000"`
	Language      string `json:"language,omitempty"      yaml:"language,omitempty"        validate:"omitempty,bcp47_language_tag"`
	VoiceID       string `json:"voiceId,omitempty"       yaml:"voice_id,omitempty"`
}

// DeploymentUpdateRequest updates a deployment. Nil fields are left
// unchanged.
type DeploymentUpdateRequest struct {
	Name         *string `json:"name,omitempty"         yaml:"name,omitempty"         validate:"omitempty,min=1,max=100"`
	Model        *string `json:"model,omitempty"        yaml:"model,omitempty"        validate:"omitempty,max=100"`
	Greeting     *string `json:"greeting,omitempty"     yaml:"greeting,omitempty"     validate:"omitempty,max=500"`
	Instructions *string `json:"instructions,omitempty" yaml:"instructions,omitempty" validate:"omitempty,max=10000"`
	Language     *string `json:"language,omitempty"     yaml:"language,omitempty"     validate:"omitempty,bcp47_language_tag"`
	VoiceID      *string `json:"voiceId,omitempty"      yaml:"voice_id,omitempty"`
}

// DeploymentLog is one log line of a deployment.
type DeploymentLog struct {
	Timestamp time.Time `json:"timestamp"        yaml:"timestamp"`
	Level     string    `json:"level"            yaml:"level"`
	Message   string    `json:"message"          yaml:"message"`
	CallID    string    `json:"callId,omitempty" yaml:"call_id,omitempty"`
}

// PhoneNumber is a number provisioned for the organization.
type PhoneNumber struct {
	Resource

	Number       string          `json:"number"                 yaml:"number"`
	FriendlyName string          `json:"friendlyName,omitempty" yaml:"friendly_name,omitempty"`
	CountryCode  string          `json:"countryCode"            yaml:"country_code"`
	ProjectID    string          `json:"projectId,omitempty"    yaml:"project_id,omitempty"`
	DeploymentID string          `json:"deploymentId,omitempty" yaml:"deployment_id,omitempty"`
	Status       string          `json:"status"                 yaml:"status"`
	Capabilities []string        `json:"capabilities"           yaml:"capabilities"`
	MonthlyCost  decimal.Decimal `json:"monthlyCost"            yaml:"monthly_cost"`
}

// PhoneNumberSearch filters numbers available for provisioning.
type PhoneNumberSearch struct {
	CountryCode string `json:"countryCode"        yaml:"country_code"        validate:"required,len=2,uppercase"`
	AreaCode    string `json:"areaCode,omitempty" yaml:"area_code,omitempty" validate:"omitempty,numeric,max=5"`
	Contains    string `json:"contains,omitempty" yaml:"contains,omitempty"  validate:"omitempty,max=10"`
	Limit       int    `json:"limit,omitempty"    yaml:"limit,omitempty"     validate:"omitempty,min=1,max=50"`
}

// ToValues converts the search to URL query values.
func (s PhoneNumberSearch) ToValues() url.Values {
	values := url.Values{}
	values.Set("countryCode", s.CountryCode)

	if s.AreaCode != "" {
		values.Set("areaCode", s.AreaCode)
	}

	if s.Contains != "" {
		values.Set("contains", s.Contains)
	}

	if s.Limit > 0 {
		values.Set("limit", strconv.Itoa(s.Limit))
	}

	return values
}

// AvailablePhoneNumber is a number that can be provisioned.
type AvailablePhoneNumber struct {
	Number       string          `json:"number"             yaml:"number"`
	Locality     string          `json:"locality,omitempty" yaml:"locality,omitempty"`
	Region       string          `json:"region,omitempty"   yaml:"region,omitempty"`
	Capabilities []string        `json:"capabilities"       yaml:"capabilities"`
	MonthlyCost  decimal.Decimal `json:"monthlyCost"        yaml:"monthly_cost"`
}

// PhoneNumberProvisionRequest buys a number for a project.
type PhoneNumberProvisionRequest struct {
	Number       string `json:"number"                 yaml:"number"                  validate:"required,e164"`
	ProjectID    string `json:"projectId"              yaml:"project_id"              validate:"required"`
	FriendlyName string `json:"friendlyName,omitempty" yaml:"friendly_name,omitempty" validate:"max=64"`
}

// PhoneNumberAssignRequest routes a number to a deployment.
type PhoneNumberAssignRequest struct {
	DeploymentID string `json:"deploymentId" yaml:"deployment_id" validate:"required"`
}

// BusinessHours is the opening window of one weekday. Open and Close are
// HH:MM.
type BusinessHours struct {
	Day    string `json:"day"    yaml:"day"    validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Open   string `json:"open"   yaml:"open"`
	Close  string `json:"close"  yaml:"close"`
	Closed bool   `json:"closed" yaml:"closed"`
}

// VoiceConfiguration controls how the voice agent of a project speaks.
type VoiceConfiguration struct {
	ProjectID       string          `json:"projectId"                 yaml:"project_id"`
	VoiceID         string          `json:"voiceId"                   yaml:"voice_id"`
	Language        string          `json:"language"                  yaml:"language"`
	Speed           float64         `json:"speed"                     yaml:"speed"`
	Pitch           float64         `json:"pitch"                     yaml:"pitch"`
	Greeting        string          `json:"greeting,omitempty"        yaml:"greeting,omitempty"`
	FallbackMessage string          `json:"fallbackMessage,omitempty" yaml:"fallback_message,omitempty"`
	TransferNumber  string          `json:"transferNumber,omitempty"  yaml:"transfer_number,omitempty"`
	RecordCalls     bool            `json:"recordCalls"               yaml:"record_calls"`
	BusinessHours   []BusinessHours `json:"businessHours,omitempty"   yaml:"business_hours,omitempty"`
	UpdatedAt       time.Time       `json:"updatedAt,omitempty"       yaml:"updated_at,omitempty"`
}

// VoiceConfigurationRequest replaces the voice configuration of a project.
type VoiceConfigurationRequest struct {
	VoiceID         string          `json:"voiceId"                   yaml:"voice_id"                   validate:"required"`
	Language        string          `json:"language"                  yaml:"language"                   validate:"required,bcp47_language_tag"`
	Speed           float64         `json:"speed"                     yaml:"speed"                      validate:"gte=0.5,lte=2"`
	Pitch           float64         `json:"pitch"                     yaml:"pitch"                      validate:"gte=-1,lte=1"`
	Greeting        string          `json:"greeting,omitempty"        yaml:"greeting,omitempty"         validate:"max=500"`
	FallbackMessage string          `json:"fallbackMessage,omitempty" yaml:"fallback_message,omitempty" validate:"max=500"`
	TransferNumber  string          `json:"transferNumber,omitempty"  yaml:"transfer_number,omitempty"  validate:"omitempty,e164"`
	RecordCalls     bool            `json:"recordCalls"               yaml:"record_calls"`
	BusinessHours   []BusinessHours `json:"businessHours,omitempty"   yaml:"business_hours,omitempty"   validate:"max=7,dive"`
}

// Voice is a synthetic voice the agent can use.
type Voice struct {
	ID         string `json:"id"                   yaml:"id"`
	Name       string `json:"name"                 yaml:"name"`
	Language   string `json:"language"             yaml:"language"`
	Gender     string `json:"gender,omitempty"     yaml:"gender,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty" yaml:"preview_url,omitempty"`
}
