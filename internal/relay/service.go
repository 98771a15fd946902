// internal/relay/service.go
package relay

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"towncar-relay/internal/common/config"
	"towncar-relay/internal/common/errors"
	"towncar-relay/internal/common/logger"
	"towncar-relay/internal/common/metrics"
	"towncar-relay/internal/common/observability"
	"towncar-relay/internal/tenant"
)

const (
	KindReservation = "reservation"
	KindContact     = "contact"
)

// Service orchestrates one submission: gate, normalize, select variant,
// compose, dispatch, aggregate. Stateless per request; safe for concurrent
// use.
type Service struct {
	cfg        *config.Config
	dispatcher *Dispatcher
	lookupEnv  func(string) string
	logger     logger.Logger
	obs        *observability.Observability
}

func NewService(cfg *config.Config, dispatcher *Dispatcher, lookupEnv func(string) string, log logger.Logger, obs *observability.Observability) *Service {
	return &Service{
		cfg:        cfg,
		dispatcher: dispatcher,
		lookupEnv:  lookupEnv,
		logger:     log,
		obs:        obs,
	}
}

// HandleReservation relays one booking submission for an already-resolved
// tenant. Returns a structured error for validation, configuration, and
// customer-delivery failures; admin-leg failures surface only as
// diagnostics on the result.
func (s *Service) HandleReservation(ctx context.Context, rc tenant.Resolved, body map[string]interface{}) (*SendResult, error) {
	start := time.Now()
	t := rc.Tenant
	log := s.logger.WithFields(map[string]interface{}{
		"submissionId": uuid.NewString(),
		"tenant":       t.Key,
		"kind":         KindReservation,
	})

	if stdErr := ValidateReservation(body); stdErr != nil {
		metrics.SubmissionsRejected.WithLabelValues(KindReservation, string(stdErr.Code)).Inc()
		return nil, stdErr
	}
	if s.cfg.Delivery.SMS.FromNumber == "" {
		metrics.SubmissionsRejected.WithLabelValues(KindReservation, string(errors.ErrCodeSenderIdentityMissing)).Inc()
		return nil, errors.NewSenderIdentityMissingError("delivery.sms.from_number is empty")
	}

	res := ReservationFromPayload(body)
	formattedPhone := FormatDialable(res.Phone)

	key := VariantKey(
		t.Key,
		formattedPhone,
		res.Date,
		res.Time,
		res.Service,
		strconv.Itoa(res.CarSeats),
		res.Passengers,
	)
	driverTpl, err := PickVariant(t.Key, tenant.KindDriver, t.DriverTemplates, key)
	if err != nil {
		return nil, err
	}
	customerTpl, err := PickVariant(t.Key, tenant.KindCustomer, t.CustomerTemplates, key)
	if err != nil {
		return nil, err
	}

	payload := BuildReservationPayload(res, t.BrandName, formattedPhone, s.cfg.Booking.CarSeatRate)
	adminBody, customerBody := ComposeReservation(driverTpl, customerTpl, payload)

	adminRecipients := FirstNonEmptyFromKeys(t.AdminKeys, s.lookupEnv)
	if len(adminRecipients) == 0 {
		log.Warn("no admin phones configured", map[string]interface{}{
			"brand":   t.BrandName,
			"envKeys": t.AdminKeys,
		})
	}

	metrics.SubmissionsTotal.WithLabelValues(t.Key, KindReservation).Inc()
	result := s.dispatcher.DispatchReservation(ctx, formattedPhone, adminRecipients, adminBody, customerBody)
	s.record(ctx, t.Key, KindReservation, result, start)

	if result.State == StateFailedOnCustomerDispatch {
		log.Error("customer confirmation failed", map[string]interface{}{
			"phone": formattedPhone,
			"error": result.CustomerErr.Error(),
		})
		return nil, errors.NewCustomerDeliveryFailedError(result.CustomerErr)
	}

	log.Info("reservation relayed", map[string]interface{}{
		"state":           string(result.State),
		"driverVariant":   driverTpl.Name,
		"customerVariant": customerTpl.Name,
		"adminRecipients": len(adminRecipients),
	})

	return &SendResult{
		Message:     "SMS sent to admin and client",
		SID:         result.CustomerSID,
		AdminErrors: outcomeReasons(result.AdminErrors()),
		Warning:     result.Warning,
	}, nil
}

// HandleContact relays one contact inquiry. Only admins are notified; the
// run fails only when every admin delivery fails.
func (s *Service) HandleContact(ctx context.Context, rc tenant.Resolved, body map[string]interface{}) (*SendResult, error) {
	start := time.Now()
	t := rc.Tenant
	log := s.logger.WithFields(map[string]interface{}{
		"submissionId": uuid.NewString(),
		"tenant":       t.Key,
		"kind":         KindContact,
	})

	if stdErr := ValidateContact(body); stdErr != nil {
		metrics.SubmissionsRejected.WithLabelValues(KindContact, string(stdErr.Code)).Inc()
		return nil, stdErr
	}
	if s.cfg.Delivery.SMS.FromNumber == "" {
		metrics.SubmissionsRejected.WithLabelValues(KindContact, string(errors.ErrCodeSenderIdentityMissing)).Inc()
		return nil, errors.NewSenderIdentityMissingError("delivery.sms.from_number is empty")
	}

	inq := InquiryFromPayload(body)

	contactTpl, err := PickVariant(t.Key, tenant.KindContact, t.ContactTemplates, inq.Email)
	if err != nil {
		return nil, err
	}
	adminBody := ComposeInquiry(contactTpl, inq, t.BrandName)

	adminRecipients := FirstNonEmptyFromKeys(t.AdminKeys, s.lookupEnv)
	if len(adminRecipients) == 0 {
		log.Warn("no admin phones configured", map[string]interface{}{
			"brand":   t.BrandName,
			"envKeys": t.AdminKeys,
		})
	}

	metrics.SubmissionsTotal.WithLabelValues(t.Key, KindContact).Inc()
	result := s.dispatcher.DispatchInquiry(ctx, adminRecipients, adminBody)
	s.record(ctx, t.Key, KindContact, result, start)

	if result.State == StateFailed {
		log.Error("all admin deliveries failed", map[string]interface{}{
			"adminRecipients": len(adminRecipients),
		})
		firstErr := result.AdminErrors()[0]
		return nil, errors.NewAdminDeliveryFailedError(firstErr.Recipient, firstErr.Err)
	}

	log.Info("contact inquiry relayed", map[string]interface{}{
		"state":           string(result.State),
		"adminRecipients": len(adminRecipients),
	})

	return &SendResult{
		Message:     "Contact message sent",
		AdminErrors: outcomeReasons(result.AdminErrors()),
		Warning:     result.Warning,
	}, nil
}

func (s *Service) record(ctx context.Context, tenantKey, kind string, result *DispatchResult, start time.Time) {
	for _, o := range result.AdminOutcomes {
		outcome := "ok"
		if o.Err != nil {
			outcome = "error"
		}
		metrics.DispatchAttempts.WithLabelValues(tenantKey, "admin", outcome).Inc()
	}
	if kind == KindReservation {
		outcome := "ok"
		if result.CustomerErr != nil {
			outcome = "error"
		}
		metrics.DispatchAttempts.WithLabelValues(tenantKey, "customer", outcome).Inc()
	}
	metrics.DispatchDuration.WithLabelValues(tenantKey, kind).Observe(time.Since(start).Seconds())

	if s.obs != nil {
		s.obs.RecordSubmission(ctx, tenantKey, string(result.State))
		s.obs.RecordSubmissionDuration(ctx, time.Since(start), string(result.State))
	}
}

func outcomeReasons(outcomes []Outcome) []string {
	if len(outcomes) == 0 {
		return nil
	}
	reasons := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		reasons = append(reasons, o.Recipient+": "+o.Err.Error())
	}
	return reasons
}
