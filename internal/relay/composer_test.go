package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"towncar-relay/internal/tenant"
)

func exclusiveForTest(t *testing.T) *tenant.Tenant {
	t.Helper()
	reg := tenant.Builtin()
	tn, ok := reg.Lookup("exclusive")
	require.True(t, ok)
	return tn
}

func TestComposeReservation_CarSeatCostShownWhenRequested(t *testing.T) {
	tn := exclusiveForTest(t)
	res := Reservation{
		FirstName: "Maria",
		LastName:  "Lopez",
		Phone:     "9165551234",
		Date:      "2025-07-04",
		Time:      "10:30",
		Service:   "Airport Transfer",
		CarSeats:  2,
	}
	payload := BuildReservationPayload(res, tn.BrandName, "+19165551234", 15)

	adminBody, customerBody := ComposeReservation(tn.DriverTemplates[0], tn.CustomerTemplates[0], payload)

	assert.Contains(t, adminBody, "Car Seats: 2 ($30)")
	assert.Contains(t, customerBody, "Car Seats: 2 ($30)")
	assert.Contains(t, customerBody, "Maria")
	assert.Contains(t, customerBody, "Airport Transfer")
}

func TestComposeReservation_NoCostLineWithoutCarSeats(t *testing.T) {
	tn := exclusiveForTest(t)
	res := Reservation{
		FirstName: "Maria",
		Phone:     "9165551234",
		Date:      "2025-07-04",
		Time:      "10:30",
		Service:   "Airport Transfer",
		CarSeats:  0,
	}
	payload := BuildReservationPayload(res, tn.BrandName, "+19165551234", 15)

	adminBody, customerBody := ComposeReservation(tn.DriverTemplates[0], tn.CustomerTemplates[0], payload)

	assert.Contains(t, adminBody, "Car Seats: 0")
	assert.NotContains(t, adminBody, "($")
	assert.NotContains(t, customerBody, "Car Seats")
}

func TestComposeReservation_MissingOptionalsRenderAsNA(t *testing.T) {
	tn := exclusiveForTest(t)
	res := Reservation{
		FirstName: "Ben",
		Phone:     "9165551234",
		Date:      "2025-07-04",
		Time:      "10:30",
		Service:   "Hourly",
	}
	payload := BuildReservationPayload(res, tn.BrandName, "+19165551234", 15)

	adminBody, _ := ComposeReservation(tn.DriverTemplates[0], tn.CustomerTemplates[0], payload)

	assert.Contains(t, adminBody, "Passengers: N/A")
	assert.Contains(t, adminBody, "Notes: N/A")
}

func TestComposeReservation_MultilineNotesPassThrough(t *testing.T) {
	tn := exclusiveForTest(t)
	res := Reservation{
		FirstName: "Ben",
		Phone:     "9165551234",
		Date:      "2025-07-04",
		Time:      "10:30",
		Service:   "Hourly",
		Notes:     "gate code 4411\nring twice",
	}
	payload := BuildReservationPayload(res, tn.BrandName, "+19165551234", 15)

	adminBody, _ := ComposeReservation(tn.DriverTemplates[0], tn.CustomerTemplates[0], payload)

	assert.Contains(t, adminBody, "gate code 4411\nring twice")
}

func TestComposeInquiry_DefaultsApplied(t *testing.T) {
	tn := exclusiveForTest(t)
	inq := ContactInquiry{
		Name:    "Dana",
		Email:   "dana@example.com",
		Message: "Do you serve Sacramento?",
	}

	body := ComposeInquiry(tn.ContactTemplates[0], inq, tn.BrandName)

	assert.Contains(t, body, "Name: Dana")
	assert.Contains(t, body, "Phone: N/A")
	assert.Contains(t, body, "Service: General")
	assert.Contains(t, body, "Do you serve Sacramento?")
	assert.Contains(t, body, tn.BrandName)
}

func TestRenderTemplate_StripsUnresolvedPlaceholders(t *testing.T) {
	out := renderTemplate("Hello {{name}}, {{unknown}} welcome", map[string]interface{}{"name": "Ana"})
	assert.Equal(t, "Hello Ana,  welcome", out)
}
