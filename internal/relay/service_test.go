package relay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"towncar-relay/internal/common/config"
	"towncar-relay/internal/common/errors"
	"towncar-relay/internal/common/logger"
	"towncar-relay/internal/tenant"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Delivery.SMS.FromNumber = "+15550000000"
	cfg.Booking.CarSeatRate = 15
	return cfg
}

func testService(t *testing.T, cfg *config.Config, sms, email Sender, env map[string]string) *Service {
	t.Helper()
	lookup := func(k string) string { return env[k] }
	d := NewDispatcher(sms, email, logger.NewTestLogger(t))
	return NewService(cfg, d, lookup, logger.NewTestLogger(t), nil)
}

func resolvedExclusive(t *testing.T) tenant.Resolved {
	t.Helper()
	tn, ok := tenant.Builtin().Lookup("exclusive")
	require.True(t, ok)
	return tenant.Resolved{Tenant: tn, Rule: tenant.RuleDefault}
}

func reservationBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":  "Maria",
		"lastName":   "Lopez",
		"phone":      "9165551234",
		"date":       "2025-07-04",
		"time":       "10:30",
		"service":    "Airport Transfer",
		"carSeats":   float64(2),
		"passengers": "3",
	}
}

func TestHandleReservation_HappyPath(t *testing.T) {
	sms := newStubSender()
	svc := testService(t, testConfig(), sms, nil, map[string]string{
		"ADMIN_PHONES_EXCLUSIVE": "+15551230001,+15551230002",
	})

	result, err := svc.HandleReservation(context.Background(), resolvedExclusive(t), reservationBody())
	require.NoError(t, err)

	assert.Equal(t, "SMS sent to admin and client", result.Message)
	assert.NotEmpty(t, result.SID)
	assert.Empty(t, result.AdminErrors)
	assert.Equal(t, 3, sms.sentCount()) // two admins plus the customer
}

func TestHandleReservation_ValidationFailureSkipsProviders(t *testing.T) {
	sms := newStubSender()
	svc := testService(t, testConfig(), sms, nil, map[string]string{
		"ADMIN_PHONES_EXCLUSIVE": "+15551230001",
	})

	body := reservationBody()
	delete(body, "phone")

	_, err := svc.HandleReservation(context.Background(), resolvedExclusive(t), body)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
	assert.Zero(t, sms.sentCount())
}

func TestHandleReservation_DigitlessPhoneRejected(t *testing.T) {
	sms := newStubSender()
	svc := testService(t, testConfig(), sms, nil, nil)

	body := reservationBody()
	body["phone"] = "++--"

	_, err := svc.HandleReservation(context.Background(), resolvedExclusive(t), body)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
	assert.Zero(t, sms.sentCount())
}

func TestHandleReservation_MissingSenderIdentity(t *testing.T) {
	cfg := testConfig()
	cfg.Delivery.SMS.FromNumber = ""
	sms := newStubSender()
	svc := testService(t, cfg, sms, nil, nil)

	_, err := svc.HandleReservation(context.Background(), resolvedExclusive(t), reservationBody())
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeSenderIdentityMissing, stdErr.Code)
	assert.Zero(t, sms.sentCount())
}

func TestHandleReservation_AdminFailureSurfacesAsDiagnostic(t *testing.T) {
	sms := newStubSender()
	sms.failFor["+15551230002"] = assert.AnError
	svc := testService(t, testConfig(), sms, nil, map[string]string{
		"ADMIN_PHONES_EXCLUSIVE": "+15551230001,+15551230002",
	})

	result, err := svc.HandleReservation(context.Background(), resolvedExclusive(t), reservationBody())
	require.NoError(t, err)
	require.Len(t, result.AdminErrors, 1)
	assert.Contains(t, result.AdminErrors[0], "+15551230002")
}

func TestHandleReservation_CustomerFailureIsAnError(t *testing.T) {
	sms := newStubSender()
	sms.failFor["+19165551234"] = assert.AnError
	svc := testService(t, testConfig(), sms, nil, map[string]string{
		"ADMIN_PHONES_EXCLUSIVE": "+15551230001",
	})

	_, err := svc.HandleReservation(context.Background(), resolvedExclusive(t), reservationBody())
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeCustomerDeliveryFailed, stdErr.Code)
}

func TestHandleReservation_NoAdminsStillConfirmsCustomer(t *testing.T) {
	sms := newStubSender()
	svc := testService(t, testConfig(), sms, nil, nil)

	result, err := svc.HandleReservation(context.Background(), resolvedExclusive(t), reservationBody())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Warning)
	assert.Equal(t, 1, sms.sentCount())
}

func TestHandleContact_HappyPath(t *testing.T) {
	sms := newStubSender()
	svc := testService(t, testConfig(), sms, nil, map[string]string{
		"ADMIN_PHONES_EXCLUSIVE": "+15551230001",
	})

	result, err := svc.HandleContact(context.Background(), resolvedExclusive(t), map[string]interface{}{
		"name":    "Dana",
		"email":   "dana@example.com",
		"message": "Do you serve Sacramento?",
	})
	require.NoError(t, err)

	assert.Equal(t, "Contact message sent", result.Message)
	assert.Equal(t, 1, sms.sentCount())
}

func TestHandleContact_MissingMessageRejected(t *testing.T) {
	sms := newStubSender()
	svc := testService(t, testConfig(), sms, nil, nil)

	_, err := svc.HandleContact(context.Background(), resolvedExclusive(t), map[string]interface{}{
		"name":  "Dana",
		"email": "dana@example.com",
	})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
	assert.Zero(t, sms.sentCount())
}

func TestHandleContact_AllAdminsFailingFailsTheRun(t *testing.T) {
	sms := newStubSender()
	sms.failFor["+15551230001"] = assert.AnError
	svc := testService(t, testConfig(), sms, nil, map[string]string{
		"ADMIN_PHONES_EXCLUSIVE": "+15551230001",
	})

	_, err := svc.HandleContact(context.Background(), resolvedExclusive(t), map[string]interface{}{
		"name":    "Dana",
		"email":   "dana@example.com",
		"message": "Do you serve Sacramento?",
	})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeAdminDeliveryFailed, stdErr.Code)
}
