// internal/notify/dispatcher.go
package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// ErrSendFailed signals that at least one message could not be delivered.
// There is no partial-success reporting; the failed recipient is logged.
var ErrSendFailed = errors.New("notification send failed")

// Dispatcher sends a batch of messages through the relay, in order.
type Dispatcher struct {
	mailer Mailer
}

func NewDispatcher(mailer Mailer) *Dispatcher {
	return &Dispatcher{mailer: mailer}
}

// Send attempts every message in order and fails on the first error.
// No retry, no queueing; a transient relay failure surfaces to the
// caller immediately.
func (d *Dispatcher) Send(ctx context.Context, messages ...Message) error {
	for _, msg := range messages {
		if err := d.mailer.Send(ctx, msg); err != nil {
			log.Printf("notify: delivery to %s failed: %v", msg.To, err)
			return fmt.Errorf("%w: recipient %s", ErrSendFailed, msg.To)
		}
	}
	return nil
}
