// internal/relay/dispatch.go
package relay

import (
	"context"
	"strings"
	"sync"

	"towncar-relay/internal/common/logger"
)

// State is the terminal state of one dispatch run.
type State string

const (
	StateSucceeded                  State = "succeeded"
	StateSucceededWithAdminWarnings State = "succeeded_with_admin_warnings"
	StateFailedOnCustomerDispatch   State = "failed_on_customer_dispatch"
	StateFailed                     State = "failed"
)

const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// Outcome records one delivery attempt to one recipient.
type Outcome struct {
	Recipient string
	Channel   string
	SID       string
	Err       error
}

// DispatchResult aggregates the fan-out for one submission. Never
// persisted; returned in the API response and logged.
type DispatchResult struct {
	State         State
	CustomerSID   string
	CustomerErr   error
	AdminOutcomes []Outcome
	Warning       string
}

// AdminErrors returns the failed admin outcomes.
func (r *DispatchResult) AdminErrors() []Outcome {
	var failed []Outcome
	for _, o := range r.AdminOutcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Dispatcher fans composed messages out to recipients. Recipients that look
// like email addresses go through the email sender when one is configured;
// everything else goes through SMS.
type Dispatcher struct {
	sms          Sender
	email        Sender
	emailSubject string
	logger       logger.Logger
}

func NewDispatcher(sms, email Sender, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		sms:          sms,
		email:        email,
		emailSubject: "New submission notification",
		logger:       log,
	}
}

// DispatchReservation delivers the admin body to every admin recipient and
// the confirmation to the customer.
//
// All admin sends are issued concurrently and settle independently: one
// failure never cancels or blocks the others. The customer confirmation is
// the primary success signal; its failure fails the request regardless of
// admin outcomes, while admin failures alone only degrade the result to
// a warning. An empty admin list skips the admin leg with a warning, not
// a failure. No retries, no cancellation: every issued attempt runs to
// completion or failure.
func (d *Dispatcher) DispatchReservation(ctx context.Context, customerPhone string, adminRecipients []string, adminBody, customerBody string) *DispatchResult {
	result := &DispatchResult{}

	var wg sync.WaitGroup
	result.AdminOutcomes = d.fanOut(ctx, &wg, adminRecipients, adminBody)
	if len(adminRecipients) == 0 {
		result.Warning = "no admin recipients configured, admin leg skipped"
	}

	// Customer leg runs alongside the admin fan-out on this goroutine.
	customerSID, customerErr := d.sms.Send(ctx, customerPhone, d.emailSubject, customerBody)
	wg.Wait()

	result.CustomerSID = customerSID
	result.CustomerErr = customerErr

	switch {
	case customerErr != nil:
		result.State = StateFailedOnCustomerDispatch
	case len(result.AdminErrors()) > 0:
		result.State = StateSucceededWithAdminWarnings
	default:
		result.State = StateSucceeded
	}
	return result
}

// DispatchInquiry delivers a contact inquiry to the admin recipients only.
// With no customer leg, the run fails only when every admin delivery fails;
// partial failure degrades to a warning like the reservation path.
func (d *Dispatcher) DispatchInquiry(ctx context.Context, adminRecipients []string, body string) *DispatchResult {
	result := &DispatchResult{}

	var wg sync.WaitGroup
	result.AdminOutcomes = d.fanOut(ctx, &wg, adminRecipients, body)
	wg.Wait()

	if len(adminRecipients) == 0 {
		result.Warning = "no admin recipients configured, admin leg skipped"
		result.State = StateSucceeded
		return result
	}

	failed := len(result.AdminErrors())
	switch {
	case failed == len(adminRecipients):
		result.State = StateFailed
	case failed > 0:
		result.State = StateSucceededWithAdminWarnings
	default:
		result.State = StateSucceeded
	}
	return result
}

// fanOut issues one concurrent send per recipient. Outcomes land in a
// pre-sized slice, one slot per goroutine; the caller joins on wg.
func (d *Dispatcher) fanOut(ctx context.Context, wg *sync.WaitGroup, recipients []string, body string) []Outcome {
	outcomes := make([]Outcome, len(recipients))
	for i, to := range recipients {
		wg.Add(1)
		go func(i int, to string) {
			defer wg.Done()
			sender, channel := d.senderFor(to)
			sid, err := sender.Send(ctx, to, d.emailSubject, body)
			outcomes[i] = Outcome{Recipient: to, Channel: channel, SID: sid, Err: err}
			if err != nil {
				d.logger.Warn("admin delivery failed", map[string]interface{}{
					"recipient": to,
					"channel":   channel,
					"error":     err.Error(),
				})
			}
		}(i, to)
	}
	return outcomes
}

func (d *Dispatcher) senderFor(recipient string) (Sender, string) {
	if d.email != nil && strings.Contains(recipient, "@") {
		return d.email, ChannelEmail
	}
	return d.sms, ChannelSMS
}
