// internal/submission/errors.go
package submission

import (
	"errors"
	"strings"
)

var (
	// ErrPaymentRequired rejects the legacy no-payment path: the form
	// data may be complete, but without a payment reference nothing is
	// dispatched.
	ErrPaymentRequired = errors.New("payment is required before submitting")

	// ErrPaymentNotCompleted means the processor reports the session in
	// a non-succeeded state.
	ErrPaymentNotCompleted = errors.New("payment was not completed")

	// ErrPaymentInvalid means the payment reference could not be
	// resolved with the processor at all.
	ErrPaymentInvalid = errors.New("payment reference is invalid")

	// ErrNotificationFailed means the card was already charged but the
	// emails could not be sent. Callers must tell the user the card
	// will not be charged again.
	ErrNotificationFailed = errors.New("notification delivery failed")
)

// ValidationError names the required fields absent from a request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}
