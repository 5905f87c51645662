// internal/notify/dispatcher_test.go
package notify

import (
	"context"
	"errors"
	"testing"
)

type MockMailer struct {
	Sent    []string // recipients, in send order
	FailFor string   // recipient that errors
}

func (m *MockMailer) Send(ctx context.Context, msg Message) error {
	m.Sent = append(m.Sent, msg.To)
	if msg.To == m.FailFor {
		return errors.New("relay: connection reset")
	}
	return nil
}

func TestDispatcher_SendsInOrder(t *testing.T) {
	mailer := &MockMailer{}
	d := NewDispatcher(mailer)

	err := d.Send(context.Background(),
		Message{To: "operator@example.com"},
		Message{To: "jane@example.com"},
	)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if len(mailer.Sent) != 2 || mailer.Sent[0] != "operator@example.com" || mailer.Sent[1] != "jane@example.com" {
		t.Errorf("Wrong send order: %v", mailer.Sent)
	}
}

func TestDispatcher_FirstFailureAborts(t *testing.T) {
	mailer := &MockMailer{FailFor: "operator@example.com"}
	d := NewDispatcher(mailer)

	err := d.Send(context.Background(),
		Message{To: "operator@example.com"},
		Message{To: "jane@example.com"},
	)
	if !errors.Is(err, ErrSendFailed) {
		t.Fatalf("Expected ErrSendFailed, got %v", err)
	}
	if len(mailer.Sent) != 1 {
		t.Errorf("Second send must not be attempted after the first fails, sent %v", mailer.Sent)
	}
}

// Customer-send failure after a successful operator send still fails the
// whole operation; there is no partial-success signal.
func TestDispatcher_SecondFailureFailsWhole(t *testing.T) {
	mailer := &MockMailer{FailFor: "jane@example.com"}
	d := NewDispatcher(mailer)

	err := d.Send(context.Background(),
		Message{To: "operator@example.com"},
		Message{To: "jane@example.com"},
	)
	if !errors.Is(err, ErrSendFailed) {
		t.Fatalf("Expected ErrSendFailed, got %v", err)
	}
	if len(mailer.Sent) != 2 {
		t.Errorf("Both sends must have been attempted, sent %v", mailer.Sent)
	}
}
