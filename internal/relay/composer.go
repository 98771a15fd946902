// internal/relay/composer.go
package relay

import (
	"fmt"
	"strings"

	"towncar-relay/internal/tenant"
)

const placeholderMissing = "N/A"

// ReservationPayload carries the fully formatted fields a reservation
// template may reference.
type ReservationPayload struct {
	Brand       string
	FirstName   string
	LastName    string
	Phone       string // dialable form
	Date        string
	Time        string
	Passengers  string
	CarSeats    int
	CarSeatCost int // derived: seats * per-seat rate
	Service     string
	Notes       string
}

// BuildReservationPayload derives the template payload from a bound
// reservation. The car-seat cost is computed here so templates only render.
func BuildReservationPayload(res Reservation, brand, formattedPhone string, seatRate int) ReservationPayload {
	return ReservationPayload{
		Brand:       brand,
		FirstName:   res.FirstName,
		LastName:    res.LastName,
		Phone:       formattedPhone,
		Date:        res.Date,
		Time:        res.Time,
		Passengers:  res.Passengers,
		CarSeats:    res.CarSeats,
		CarSeatCost: res.CarSeats * seatRate,
		Service:     res.Service,
		Notes:       res.Notes,
	}
}

// ComposeReservation renders the admin-facing and customer-facing bodies.
// Missing optional fields render as "N/A"; the cost annotation appears only
// when at least one car seat was requested. Free-text notes pass through
// unmodified for the plain-text channel.
func ComposeReservation(driverTpl, customerTpl tenant.MessageTemplate, p ReservationPayload) (adminBody, customerBody string) {
	data := reservationData(p)
	return renderTemplate(driverTpl.Body, data), renderTemplate(customerTpl.Body, data)
}

// ComposeInquiry renders the admin-facing contact inquiry body.
func ComposeInquiry(tpl tenant.MessageTemplate, inq ContactInquiry, brand string) string {
	service := inq.Service
	if service == "" {
		service = "General"
	}
	phone := inq.Phone
	if phone == "" {
		phone = placeholderMissing
	}
	return renderTemplate(tpl.Body, map[string]interface{}{
		"name":    inq.Name,
		"phone":   phone,
		"email":   inq.Email,
		"service": service,
		"message": inq.Message,
		"brand":   brand,
	})
}

func reservationData(p ReservationPayload) map[string]interface{} {
	passengers := p.Passengers
	if passengers == "" {
		passengers = placeholderMissing
	}
	notes := p.Notes
	if notes == "" {
		notes = placeholderMissing
	}

	carSeatCost := ""
	carSeatLine := ""
	if p.CarSeats > 0 {
		carSeatCost = fmt.Sprintf(" ($%d)", p.CarSeatCost)
		carSeatLine = fmt.Sprintf("Car Seats: %d ($%d)\n", p.CarSeats, p.CarSeatCost)
	}

	return map[string]interface{}{
		"brand":       p.Brand,
		"firstName":   p.FirstName,
		"lastName":    p.LastName,
		"phone":       p.Phone,
		"date":        p.Date,
		"time":        p.Time,
		"passengers":  passengers,
		"carSeats":    p.CarSeats,
		"carSeatCost": carSeatCost,
		"carSeatLine": carSeatLine,
		"service":     p.Service,
		"notes":       notes,
	}
}

// renderTemplate substitutes {{placeholder}} tokens and strips any that
// remain unresolved.
func renderTemplate(tmpl string, data map[string]interface{}) string {
	result := tmpl

	for k, v := range data {
		placeholder := "{{" + k + "}}"
		value := ""
		if s, ok := v.(string); ok {
			value = s
		} else if i, ok := v.(int); ok {
			value = fmt.Sprintf("%d", i)
		} else if v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.ReplaceAll(result, placeholder, value)
	}

	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}

	return result
}
