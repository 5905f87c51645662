// internal/payment/gateway.go
package payment

import "context"

// Status is the domain view of a payment session's state, decoupled from
// the processor's own status strings.
type Status string

const (
	StatusSucceeded Status = "SUCCEEDED"
	StatusPending   Status = "PENDING"
	StatusFailed    Status = "FAILED"
	StatusUnknown   Status = "UNKNOWN"
)

// Gateway abstracts the payment processor. It accepts a context so
// callers can bound both network calls with a timeout.
type Gateway interface {
	// CreateIntent opens a payment session for the given minor-unit
	// amount in USD and returns the client-facing confirmation secret.
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)

	// IntentStatus retrieves the authoritative status of an existing
	// session. The client's report is never trusted; this is the only
	// basis for treating a payment as completed.
	IntentStatus(ctx context.Context, id string) (Status, error)
}
