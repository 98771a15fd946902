// internal/relay/models.go
package relay

import (
	"fmt"
	"strconv"
	"strings"
)

// Reservation is a booking submission. Transient: built from one request,
// consumed immediately, never persisted.
type Reservation struct {
	FirstName  string
	LastName   string
	Phone      string
	Date       string
	Time       string
	Service    string
	Passengers string
	CarSeats   int
	Notes      string
}

// ContactInquiry is a contact-form submission.
type ContactInquiry struct {
	Name    string
	Email   string
	Message string
	Phone   string
	Service string
}

// SendResult is what a successful relay run reports back to the caller.
type SendResult struct {
	Message     string
	SID         string
	AdminErrors []string
	Warning     string
}

// ReservationFromPayload binds a validated request body. Form builders are
// loose about numeric types, so carSeats and passengers tolerate both
// numbers and digit strings.
func ReservationFromPayload(body map[string]interface{}) Reservation {
	return Reservation{
		FirstName:  getString(body, "firstName"),
		LastName:   getString(body, "lastName"),
		Phone:      getString(body, "phone"),
		Date:       getString(body, "date"),
		Time:       getString(body, "time"),
		Service:    getString(body, "service"),
		Passengers: getString(body, "passengers"),
		CarSeats:   getCount(body, "carSeats"),
		Notes:      getString(body, "notes"),
	}
}

// InquiryFromPayload binds a validated contact request body.
func InquiryFromPayload(body map[string]interface{}) ContactInquiry {
	return ContactInquiry{
		Name:    getString(body, "name"),
		Email:   getString(body, "email"),
		Message: getString(body, "message"),
		Phone:   getString(body, "phone"),
		Service: getString(body, "service"),
	}
}

func getString(body map[string]interface{}, key string) string {
	v, ok := body[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// getCount coerces a numeric-ish field to a non-negative int, defaulting
// to 0 on anything unparsable.
func getCount(body map[string]interface{}, key string) int {
	v, ok := body[key]
	if !ok || v == nil {
		return 0
	}
	var n int
	switch val := v.(type) {
	case float64:
		n = int(val)
	case int:
		n = val
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}
