// internal/web/handlers.go
package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tylertidwell91-git/ouachitawater/internal/payment"
	"github.com/tylertidwell91-git/ouachitawater/internal/submission"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{Success: false, Message: message})
}

// handleConfig exposes the publishable key for Stripe.js on the
// frontend. The secret key never leaves the process.
func (s *Server) handleConfig(c *gin.Context) {
	var key *string
	if s.cfg.StripePublishableKey != "" {
		key = &s.cfg.StripePublishableKey
	}
	c.JSON(http.StatusOK, gin.H{"stripePublishableKey": key})
}

type createIntentRequest struct {
	Amount float64 `json:"amount"`
}

func (s *Server) handleCreatePaymentIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid amount. Minimum is $0.50.")
		return
	}

	secret, err := s.svc.CreatePaymentSession(c.Request.Context(), req.Amount)
	switch {
	case errors.Is(err, payment.ErrPaymentsDisabled):
		fail(c, http.StatusServiceUnavailable, "Card payments are not available right now. Please contact us to pay your bill.")
	case errors.Is(err, payment.ErrInvalidAmount):
		fail(c, http.StatusBadRequest, "Invalid amount. Minimum is $0.50.")
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to create payment session.")
	default:
		c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
	}
}

type submitBillRequest struct {
	CustomerName    string  `json:"customerName"`
	Street          string  `json:"street"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Zip             string  `json:"zip"`
	Amount          float64 `json:"amount"`
	ReceiptEmail    string  `json:"receiptEmail"`
	PaymentIntentID string  `json:"paymentIntentId"`
}

func (s *Server) handleSubmitBill(c *gin.Context) {
	var req submitBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing required fields: customerName, street, city, state, zip, amount, receiptEmail.")
		return
	}

	err := s.svc.SubmitBill(c.Request.Context(), submission.BillRequest{
		CustomerName:    req.CustomerName,
		Street:          req.Street,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
		Amount:          req.Amount,
		ReceiptEmail:    req.ReceiptEmail,
		PaymentIntentID: req.PaymentIntentID,
	})

	var validationErr *submission.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fail(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(validationErr.Missing, ", ")+".")
	case errors.Is(err, submission.ErrPaymentRequired):
		fail(c, http.StatusBadRequest, "Payment is required. Please enter your card and complete payment before submitting.")
	case errors.Is(err, submission.ErrPaymentNotCompleted):
		fail(c, http.StatusBadRequest, "Payment was not completed. Please complete card payment and try again.")
	case errors.Is(err, submission.ErrPaymentInvalid):
		fail(c, http.StatusBadRequest, "Invalid payment. Please complete card payment and try again.")
	case errors.Is(err, submission.ErrNotificationFailed):
		// Post-payment failure: the charge went through exactly once.
		fail(c, http.StatusInternalServerError, "Your payment was received, but we could not send the confirmation emails. Your card was charged once and will not be charged again. Please contact us directly.")
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to send submission. Please try again or contact us directly.")
	default:
		c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Submission sent. Check your email for a receipt."})
	}
}

type submitNewCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

func (s *Server) handleSubmitNewCustomer(c *gin.Context) {
	var req submitNewCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing required fields: name, email.")
		return
	}

	err := s.svc.SubmitNewCustomer(c.Request.Context(), submission.NewCustomerRequest{
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

	var validationErr *submission.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fail(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(validationErr.Missing, ", ")+".")
	case errors.Is(err, submission.ErrNotificationFailed):
		fail(c, http.StatusInternalServerError, "Failed to send submission. Please try again or email us directly.")
	case err != nil:
		fail(c, http.StatusInternalServerError, "Failed to send submission. Please try again or email us directly.")
	default:
		c.JSON(http.StatusOK, apiResponse{Success: true, Message: "Thanks! We'll be in touch."})
	}
}
