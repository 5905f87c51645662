// internal/notify/message.go
package notify

import (
	"fmt"
	"strings"
	"time"
)

// Message is one outbound email with both a plain-text and an HTML body.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// htmlEscaper covers the characters that can break out of markup when a
// form value is interpolated into an HTML body. Plain-text bodies carry
// the values verbatim.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// BillDetails carries the already-formatted fields of a verified bill
// submission. Address and Amount are display strings; the orchestrator
// owns the formatting rules.
type BillDetails struct {
	CustomerName string
	Address      string
	Amount       string
	ReceiptEmail string
	Reference    string
	SubmittedAt  time.Time
}

// OperatorBillMessage is the internal notification with full submission
// details.
func OperatorBillMessage(to string, d BillDetails) Message {
	submitted := d.SubmittedAt.UTC().Format(time.RFC3339)

	text := strings.Join([]string{
		"Bill pay submission from website",
		"",
		"Customer name: " + d.CustomerName,
		"Address: " + d.Address,
		"Payment amount: " + d.Amount,
		"Receipt email: " + d.ReceiptEmail,
		"Reference: " + d.Reference,
		"",
		"Submitted at: " + submitted,
	}, "\n")

	html := strings.Join([]string{
		"<h2>Bill pay submission</h2>",
		"<p><strong>Customer name:</strong> " + escapeHTML(d.CustomerName) + "</p>",
		"<p><strong>Address:</strong> " + escapeHTML(d.Address) + "</p>",
		"<p><strong>Payment amount:</strong> " + escapeHTML(d.Amount) + "</p>",
		"<p><strong>Receipt email:</strong> " + escapeHTML(d.ReceiptEmail) + "</p>",
		"<p><strong>Reference:</strong> " + escapeHTML(d.Reference) + "</p>",
		"<p><em>Submitted at: " + submitted + "</em></p>",
	}, "")

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Bill pay submission: %s – %s", d.CustomerName, d.Amount),
		Text:    text,
		HTML:    html,
	}
}

// CustomerReceiptMessage is the receipt sent to the submitter.
func CustomerReceiptMessage(to string, d BillDetails) Message {
	text := strings.Join([]string{
		"Thank you for your payment submission.",
		"",
		"Ouachita Spring Water Co. has received the following:",
		"",
		"Customer: " + d.CustomerName,
		"Address: " + d.Address,
		"Amount: " + d.Amount,
		"",
		"We will process this and contact you if we need anything else.",
		"",
		"— Ouachita Spring Water Co.",
	}, "\n")

	html := strings.Join([]string{
		"<h2>Payment receipt</h2>",
		"<p>Thank you for your payment submission.</p>",
		"<p><strong>Customer:</strong> " + escapeHTML(d.CustomerName) + "</p>",
		"<p><strong>Address:</strong> " + escapeHTML(d.Address) + "</p>",
		"<p><strong>Amount:</strong> " + escapeHTML(d.Amount) + "</p>",
		"<p>We will process this and contact you if we need anything else.</p>",
		"<p>— Ouachita Spring Water Co.</p>",
	}, "")

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Ouachita Spring Water Co. – Payment receipt for %s", d.Amount),
		Text:    text,
		HTML:    html,
	}
}

// NewCustomerDetails carries a signup submission. Optional fields may be
// empty; they render as "-" so the operator sees every column.
type NewCustomerDetails struct {
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

// OperatorNewCustomerMessage is the single notification for a signup.
func OperatorNewCustomerMessage(to string, d NewCustomerDetails) Message {
	fields := []struct {
		label string
		value string
	}{
		{"Name", d.Name},
		{"Email", d.Email},
		{"Phone", d.Phone},
		{"Street", d.Street},
		{"City", d.City},
		{"State", d.State},
		{"Zip", d.Zip},
		{"Company", d.Company},
		{"Notes", d.Notes},
	}

	textLines := []string{"New customer signup from website", ""}
	htmlParts := []string{"<h2>New customer signup</h2>"}
	for _, f := range fields {
		v := f.value
		if v == "" {
			v = "-"
		}
		textLines = append(textLines, f.label+": "+v)
		htmlParts = append(htmlParts, "<p><strong>"+f.label+":</strong> "+escapeHTML(v)+"</p>")
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf("New customer signup: %s", d.Name),
		Text:    strings.Join(textLines, "\n"),
		HTML:    strings.Join(htmlParts, ""),
	}
}
