// internal/notify/message_test.go
package notify

import (
	"strings"
	"testing"
	"time"
)

func billDetails() BillDetails {
	return BillDetails{
		CustomerName: "Jane Doe",
		Address:      "1 Main St, Hot Springs, AR, 71901",
		Amount:       "$125.50",
		ReceiptEmail: "jane@example.com",
		Reference:    "ref-1",
		SubmittedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestOperatorBillMessage_Bodies(t *testing.T) {
	msg := OperatorBillMessage("operator@example.com", billDetails())

	if msg.Subject != "Bill pay submission: Jane Doe – $125.50" {
		t.Errorf("Wrong subject: %q", msg.Subject)
	}
	for _, want := range []string{
		"Customer name: Jane Doe",
		"Address: 1 Main St, Hot Springs, AR, 71901",
		"Payment amount: $125.50",
		"Receipt email: jane@example.com",
		"Submitted at: 2025-06-01T12:00:00Z",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("Text body missing %q:\n%s", want, msg.Text)
		}
	}
	if !strings.Contains(msg.HTML, "<strong>Payment amount:</strong> $125.50") {
		t.Errorf("HTML body missing amount:\n%s", msg.HTML)
	}
}

func TestCustomerReceiptMessage_Bodies(t *testing.T) {
	msg := CustomerReceiptMessage("jane@example.com", billDetails())

	if msg.Subject != "Ouachita Spring Water Co. – Payment receipt for $125.50" {
		t.Errorf("Wrong subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "Thank you for your payment submission.") {
		t.Errorf("Missing intro:\n%s", msg.Text)
	}
	if !strings.Contains(msg.Text, "— Ouachita Spring Water Co.") {
		t.Errorf("Missing sign-off:\n%s", msg.Text)
	}
}

// Markup in user-supplied fields must be escaped in the HTML body and
// appear verbatim in the plain-text body.
func TestMessages_EscapeUserInput(t *testing.T) {
	d := billDetails()
	d.CustomerName = "<script>x</script>"

	for _, msg := range []Message{
		OperatorBillMessage("operator@example.com", d),
		CustomerReceiptMessage("jane@example.com", d),
	} {
		if !strings.Contains(msg.HTML, "&lt;script&gt;x&lt;/script&gt;") {
			t.Errorf("HTML not escaped:\n%s", msg.HTML)
		}
		if strings.Contains(msg.HTML, "<script>") {
			t.Errorf("Raw markup leaked into HTML:\n%s", msg.HTML)
		}
		if !strings.Contains(msg.Text, "<script>x</script>") {
			t.Errorf("Plain text must carry the value verbatim:\n%s", msg.Text)
		}
	}
}

func TestEscapeHTML_EntitySet(t *testing.T) {
	got := escapeHTML(`Tom & "Jerry" <oswater>`)
	want := "Tom &amp; &quot;Jerry&quot; &lt;oswater&gt;"
	if got != want {
		t.Errorf("escapeHTML = %q, want %q", got, want)
	}
}

func TestOperatorNewCustomerMessage_OptionalFields(t *testing.T) {
	msg := OperatorNewCustomerMessage("operator@example.com", NewCustomerDetails{
		Name:  "John & Co",
		Email: "john@example.com",
	})

	if msg.Subject != "New customer signup: John & Co" {
		t.Errorf("Wrong subject: %q", msg.Subject)
	}
	if !strings.Contains(msg.Text, "Phone: -") {
		t.Errorf("Empty optional field should render as dash:\n%s", msg.Text)
	}
	if !strings.Contains(msg.HTML, "John &amp; Co") {
		t.Errorf("HTML not escaped:\n%s", msg.HTML)
	}
}
