// Package errors provides standardized error handling for the notification relay.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed      ErrorCode = "VALIDATION_FAILED"
	ErrCodeSenderIdentityMissing ErrorCode = "SENDER_IDENTITY_MISSING"
	ErrCodeTemplateSetEmpty      ErrorCode = "TEMPLATE_SET_EMPTY"

	ErrCodeNoAdminRecipients      ErrorCode = "NO_ADMIN_RECIPIENTS"
	ErrCodeAdminDeliveryFailed    ErrorCode = "ADMIN_DELIVERY_FAILED"
	ErrCodeCustomerDeliveryFailed ErrorCode = "CUSTOMER_DELIVERY_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError creates a non-retryable request validation error.
// The caller sent a malformed or incomplete submission.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Missing required fields",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSenderIdentityMissingError creates a non-retryable configuration error.
// Without an outbound sender identity nothing may be dispatched.
func NewSenderIdentityMissingError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSenderIdentityMissing,
		Message:   "Outbound sender identity is not configured",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateSetEmptyError creates a non-retryable registry misconfiguration
// error. An empty variant set is a programmer error and must fail loudly.
func NewTemplateSetEmptyError(tenantKey, messageKind string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateSetEmpty,
		Message:   "Tenant has no templates registered for message kind",
		Details:   fmt.Sprintf("tenant: %s, kind: %s", tenantKey, messageKind),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCustomerDeliveryFailedError creates a retryable delivery error for the
// customer confirmation leg. A caller-level retry is a brand-new request.
func NewCustomerDeliveryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCustomerDeliveryFailed,
		Message:   "Failed to deliver customer confirmation",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAdminDeliveryFailedError creates an auxiliary error for a failed admin
// leg. Admin failures are collected, never escalated on their own.
func NewAdminDeliveryFailedError(recipient string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAdminDeliveryFailed,
		Message:   "Failed to deliver admin notification",
		Details:   fmt.Sprintf("recipient: %s, error: %s", recipient, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the status the API contract requires.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeSenderIdentityMissing, ErrCodeTemplateSetEmpty,
		ErrCodeCustomerDeliveryFailed, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// AsStandardError normalizes any error into a StandardError.
func AsStandardError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInternalError(err)
}
