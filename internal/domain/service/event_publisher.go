package service

import (
	"context"
)

// TransactionEvent is emitted after a checkout successfully assembles a
// transaction. Consumers use it for receipts, reporting and cache warming.
type TransactionEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	TransactionID string `json:"transaction_id"`
	BusinessID    string `json:"business_id"`
	TotalPayment  int64  `json:"total_payment"`
	LineCount     int    `json:"line_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTransactionEvent publishes a transaction-created event for async processing
	PublishTransactionEvent(ctx context.Context, event *TransactionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
