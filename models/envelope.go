package models

// Envelope statuses. Every response body carries exactly one of them.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Envelope is the uniform wrapper around every response body. It is
// constructed once per request, never mutated, and serialized exactly once
// with the HTTP status code equal to Code.
type Envelope struct {
	// Status is "success" for 2xx responses and "failed" otherwise.
	Status string `json:"status"`

	// Code is the HTTP status code of the response.
	Code int `json:"code"`

	// Message is a human-readable summary of the outcome. It never contains
	// internal error details.
	Message string `json:"message"`

	// Metadata carries the operation result on success. Omitted on failure.
	Metadata any `json:"metadata,omitempty"`
}

// NewEnvelope wraps a successful result. metadata may be nil for operations
// that return no data beyond the message.
func NewEnvelope(code int, message string, metadata any) Envelope {
	return Envelope{
		Status:   StatusSuccess,
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// NewErrorEnvelope wraps a failure with the given status code and message.
func NewErrorEnvelope(code int, message string) Envelope {
	return Envelope{
		Status:  StatusFailed,
		Code:    code,
		Message: message,
	}
}
