package models

// Response is the envelope wrapping every JSON API answer.
//
// On success Data carries the payload and Error is omitted.
// On failure Success is false and Error describes the problem.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the machine-readable error description of a failed request.
type ErrorBody struct {
	// Code is one of the stable error codes (VALIDATION_ERROR, NOT_FOUND, ...).
	Code string `json:"code"`

	// Message is a human-readable explanation safe to show to end users.
	Message string `json:"message"`

	// Details is an optional structured payload; always an object.
	Details map[string]any `json:"details"`
}

// MessageResponse is the payload of operations that only report success.
type MessageResponse struct {
	Message string `json:"message"`
}
