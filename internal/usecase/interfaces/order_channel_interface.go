package interfaces

import "context"

// IOrderChannel hands the assembled vendor message to the outbound
// channel. It returns the link the customer uses to deliver the message
// (e.g. a wa.me deep link).

type IOrderChannel interface {
	Deliver(ctx context.Context, message string) (link string, err error)
}
