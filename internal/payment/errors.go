// internal/payment/errors.go
package payment

import "errors"

var (
	// ErrPaymentsDisabled means no processor credentials were configured.
	// The service keeps running; payment endpoints refuse politely.
	ErrPaymentsDisabled = errors.New("payment processing is not configured")

	// ErrInvalidAmount rejects amounts below the processor minimum (50 cents).
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrIntentCreateFailed covers processor rejections during session creation.
	ErrIntentCreateFailed = errors.New("payment session could not be created")

	// ErrProviderDown distinguishes processor outages from rejections.
	ErrProviderDown = errors.New("payment provider is currently unavailable")
)
