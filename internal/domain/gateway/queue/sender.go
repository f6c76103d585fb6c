package queue

import "context"

// Sender publishes messages to a named queue
type Sender interface {
	// SendMessage serializes body and returns the broker message id
	SendMessage(ctx context.Context, queueName string, body any, attributes map[string]string) (string, error)
}
