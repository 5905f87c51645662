// internal/payment/stripe_gateway.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway implements Gateway against the Stripe API.
type StripeGateway struct {
	client *client.API
}

// NewStripeGateway creates a gateway bound to the given secret key.
// We use a dedicated client.API instead of the package-level globals so
// the key never lives in shared state.
func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)
	return &StripeGateway{client: sc}
}

// CreateIntent opens a PaymentIntent for a card payment the customer
// will confirm in the browser. Amount is in cents; currency is fixed to
// USD. Automatic payment methods match what the hosted card element
// expects on the client side.
func (sg *StripeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if amountCents < 50 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	// Cancels the HTTP call to Stripe if the request times out.
	params.Context = ctx

	pi, err := sg.client.PaymentIntents.New(params)
	if err != nil {
		return "", sg.mapStripeError(err)
	}
	return pi.ClientSecret, nil
}

// IntentStatus fetches the intent and maps Stripe's status to the
// domain Status. Network success != payment success; the caller must
// still check for StatusSucceeded.
func (sg *StripeGateway) IntentStatus(ctx context.Context, id string) (Status, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := sg.client.PaymentIntents.Get(id, params)
	if err != nil {
		return StatusUnknown, sg.mapStripeError(err)
	}
	return mapIntentStatus(pi.Status), nil
}

func mapIntentStatus(s stripe.PaymentIntentStatus) Status {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return StatusSucceeded
	case stripe.PaymentIntentStatusRequiresPaymentMethod, stripe.PaymentIntentStatusCanceled:
		return StatusFailed
	case stripe.PaymentIntentStatusProcessing:
		return StatusPending
	default:
		// "requires_action", "requires_capture", etc. are not terminal.
		return StatusPending
	}
}

// mapStripeError converts stripe-go errors into domain errors so the
// library never leaks into the orchestrator or, worse, into responses.
func (sg *StripeGateway) mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			return ErrProviderDown
		}
		return fmt.Errorf("%w: %s", ErrIntentCreateFailed, stripeErr.Code)
	}
	return fmt.Errorf("%w: %v", ErrIntentCreateFailed, err)
}
