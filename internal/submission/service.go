// internal/submission/service.go
package submission

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tylertidwell91-git/ouachitawater/internal/notify"
	"github.com/tylertidwell91-git/ouachitawater/internal/payment"
)

// gatewayTimeout bounds each call to the payment processor.
// relayTimeout bounds the pair of SMTP sends; relays are slower than the
// processor API because of the handshake.
const (
	gatewayTimeout = 15 * time.Second
	relayTimeout   = 30 * time.Second
)

// BillRequest is one bill-pay form submission. Amount is in major
// currency units (dollars).
type BillRequest struct {
	CustomerName    string
	Street          string
	City            string
	State           string
	Zip             string
	Amount          float64
	ReceiptEmail    string
	PaymentIntentID string
}

// NewCustomerRequest is one signup form submission. Only Name and Email
// are required.
type NewCustomerRequest struct {
	Name    string
	Email   string
	Phone   string
	Street  string
	City    string
	State   string
	Zip     string
	Company string
	Notes   string
}

// Notifier is the slice of the dispatcher the orchestrator needs.
type Notifier interface {
	Send(ctx context.Context, messages ...notify.Message) error
}

// Service orchestrates form submissions: validate, verify payment with
// the processor, then hand the messages to the dispatcher. It holds no
// per-request state.
type Service struct {
	gateway       payment.Gateway // nil when payments are not configured
	notifier      Notifier
	operatorEmail string
	now           func() time.Time
}

func NewService(gateway payment.Gateway, notifier Notifier, operatorEmail string) *Service {
	return &Service{
		gateway:       gateway,
		notifier:      notifier,
		operatorEmail: operatorEmail,
		now:           time.Now,
	}
}

// CreatePaymentSession opens a processor session for the given amount
// and returns the client-facing confirmation secret.
func (s *Service) CreatePaymentSession(ctx context.Context, amount float64) (string, error) {
	if s.gateway == nil {
		return "", payment.ErrPaymentsDisabled
	}

	cents := toCents(amount)
	if cents < 50 {
		return "", payment.ErrInvalidAmount
	}

	ctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()

	secret, err := s.gateway.CreateIntent(ctx, cents)
	if err != nil {
		log.Printf("submission: create payment session for %d cents: %v", cents, err)
		return "", err
	}
	return secret, nil
}

// SubmitBill validates the submission, re-verifies the payment with the
// processor, and dispatches the operator notification plus the customer
// receipt. The client-reported payment outcome is never trusted; only
// the processor's own status counts.
func (s *Service) SubmitBill(ctx context.Context, req BillRequest) error {
	if err := validateBill(req); err != nil {
		return err
	}
	if req.PaymentIntentID == "" {
		return ErrPaymentRequired
	}

	if s.gateway != nil {
		statusCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
		status, err := s.gateway.IntentStatus(statusCtx, req.PaymentIntentID)
		cancel()
		if err != nil {
			log.Printf("submission: retrieve intent %s: %v", req.PaymentIntentID, err)
			return ErrPaymentInvalid
		}
		if status != payment.StatusSucceeded {
			return ErrPaymentNotCompleted
		}
	}

	details := notify.BillDetails{
		CustomerName: req.CustomerName,
		Address:      formatAddress(req.Street, req.City, req.State, req.Zip),
		Amount:       formatAmount(req.Amount),
		ReceiptEmail: req.ReceiptEmail,
		Reference:    uuid.NewString(),
		SubmittedAt:  s.now(),
	}

	sendCtx, cancel := context.WithTimeout(ctx, relayTimeout)
	defer cancel()

	err := s.notifier.Send(sendCtx,
		notify.OperatorBillMessage(s.operatorEmail, details),
		notify.CustomerReceiptMessage(req.ReceiptEmail, details),
	)
	if err != nil {
		// The card is already charged at this point. The caller's
		// response must say so; resubmitting will not charge again
		// because the same intent is re-verified, not re-charged.
		log.Printf("submission: bill %s notification failed: %v", details.Reference, err)
		return ErrNotificationFailed
	}

	log.Printf("submission: bill %s dispatched for %s (%s)", details.Reference, req.CustomerName, details.Amount)
	return nil
}

// SubmitNewCustomer validates name and email and forwards the signup to
// the operator. No payment, no receipt to the submitter.
func (s *Service) SubmitNewCustomer(ctx context.Context, req NewCustomerRequest) error {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	msg := notify.OperatorNewCustomerMessage(s.operatorEmail, notify.NewCustomerDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Zip:     req.Zip,
		Company: req.Company,
		Notes:   req.Notes,
	})

	sendCtx, cancel := context.WithTimeout(ctx, relayTimeout)
	defer cancel()

	if err := s.notifier.Send(sendCtx, msg); err != nil {
		log.Printf("submission: new customer %q notification failed: %v", req.Name, err)
		return ErrNotificationFailed
	}
	return nil
}

func validateBill(req BillRequest) error {
	var missing []string
	if req.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if req.Street == "" {
		missing = append(missing, "street")
	}
	if req.City == "" {
		missing = append(missing, "city")
	}
	if req.State == "" {
		missing = append(missing, "state")
	}
	if req.Zip == "" {
		missing = append(missing, "zip")
	}
	if req.Amount <= 0 {
		missing = append(missing, "amount")
	}
	if req.ReceiptEmail == "" {
		missing = append(missing, "receiptEmail")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// toCents converts a major-unit amount to minor units, rounding to the
// nearest cent the same way the processor expects.
func toCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// formatAmount renders a fixed two-decimal currency string, e.g. $125.50.
func formatAmount(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// formatAddress joins the non-empty address parts with ", ".
func formatAddress(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
