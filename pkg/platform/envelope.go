package platform

import "encoding/json"

// Envelope is the wrapper around every Platform API response body.
//
// When Success is true, Data and Metadata are populated. When it is false,
// Error is populated. No response carries both shapes.
type Envelope struct {
	Success  bool              `json:"success"            yaml:"success"`
	Data     json.RawMessage   `json:"data,omitempty"     yaml:"data,omitempty"`
	Metadata *ResponseMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Error    *ErrorBody        `json:"error,omitempty"    yaml:"error,omitempty"`
}

// ResponseMetadata accompanies every successful response.
type ResponseMetadata struct {
	Timestamp int64  `json:"timestamp" yaml:"timestamp"`
	Version   string `json:"version"   yaml:"version"`
}

// ErrorBody is the structured error carried by a failed envelope.
type ErrorBody struct {
	Code      string          `json:"code"                yaml:"code"`
	Message   string          `json:"message"             yaml:"message"`
	Details   json.RawMessage `json:"details,omitempty"   yaml:"details,omitempty"`
	Timestamp int64           `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Structured reports whether the body carries enough to build an APIError.
func (b *ErrorBody) Structured() bool {
	return b != nil && (b.Code != "" || b.Message != "")
}

// IsNullJSON reports whether raw is absent or the JSON literal null.
func IsNullJSON(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}

	return string(raw) == "null"
}
