// internal/relay/validation.go
package relay

import (
	"strings"

	"towncar-relay/internal/common/errors"
	"towncar-relay/internal/common/validation"
)

func reservationSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"firstName", "phone", "date", "time", "service"},
		"properties": map[string]interface{}{
			"firstName":  map[string]interface{}{"type": "string", "minLength": 1},
			"lastName":   map[string]interface{}{"type": "string"},
			"phone":      map[string]interface{}{"type": "string", "minLength": 1},
			"date":       map[string]interface{}{"type": "string", "minLength": 1},
			"time":       map[string]interface{}{"type": "string", "minLength": 1},
			"service":    map[string]interface{}{"type": "string", "minLength": 1},
			"passengers": map[string]interface{}{"type": []interface{}{"string", "integer", "number"}},
			"carSeats":   map[string]interface{}{"type": []interface{}{"integer", "number", "string"}},
			"notes":      map[string]interface{}{"type": "string"},
		},
	}
}

func contactSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"name", "email", "message"},
		"properties": map[string]interface{}{
			"name":    map[string]interface{}{"type": "string", "minLength": 1},
			"email":   map[string]interface{}{"type": "string", "minLength": 3},
			"message": map[string]interface{}{"type": "string", "minLength": 1},
			"phone":   map[string]interface{}{"type": "string"},
			"service": map[string]interface{}{"type": "string"},
		},
	}
}

// ValidateReservation gates a reservation body before any dispatch work.
// Beyond the schema, the customer phone must carry digits (or a + prefix):
// silently dialing a bare "+1" helps nobody.
func ValidateReservation(body map[string]interface{}) *errors.StandardError {
	result, err := validation.Validate(body, reservationSchema())
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !result.Valid {
		return errors.NewValidationFailedError(result.Summary())
	}

	phone := getString(body, "phone")
	if !hasDialableDigits(phone) {
		return errors.NewValidationFailedError("phone: must contain at least one digit")
	}

	return nil
}

// ValidateContact gates a contact-inquiry body.
func ValidateContact(body map[string]interface{}) *errors.StandardError {
	result, err := validation.Validate(body, contactSchema())
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !result.Valid {
		return errors.NewValidationFailedError(result.Summary())
	}

	if email := getString(body, "email"); !strings.Contains(email, "@") {
		return errors.NewValidationFailedError("email: must be a valid address")
	}

	return nil
}

func hasDialableDigits(phone string) bool {
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
