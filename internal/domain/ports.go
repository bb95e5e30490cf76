package domain

import (
	"context"
	"errors"
)

// Storage-level signals the orchestrator switches on. The store must return
// these rather than driver-specific errors so callers can react.
var (
	// ErrDuplicateOrder: an insert lost the race on the orderId unique index.
	ErrDuplicateOrder = errors.New("a payment record for this order already exists")
	// ErrStaleRecord: an optimistic update found the record changed since read.
	ErrStaleRecord = errors.New("payment record was modified concurrently")
)

type PaymentStore interface {
	// Save inserts the record when ID is zero, otherwise performs an
	// optimistic version-checked update of the mutable fields.
	Save(ctx context.Context, record *PaymentRecord) error
	// FindByOrderID returns (nil, nil) when no record exists.
	FindByOrderID(ctx context.Context, orderID string) (*PaymentRecord, error)
	FindAll(ctx context.Context) ([]PaymentRecord, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ProviderGateway is a stateless adapter to one hosted-payment provider.
// Both calls are single network attempts; retry policy belongs to callers.
type ProviderGateway interface {
	Name() string
	CreateHostedPayment(ctx context.Context, req HostedPaymentRequest) (*HostedPayment, error)
	ExecuteHostedPayment(ctx context.Context, providerPaymentID, payerID string) (*ExecutionResult, error)
}

// NotificationPublisher emits lifecycle events to the configured subscriber.
// Publish never fails the caller: delivery errors are absorbed and logged.
type NotificationPublisher interface {
	Publish(ctx context.Context, event string, orderID string, status PaymentStatus)
}

type PaymentOrchestrator interface {
	CreatePayment(ctx context.Context, in CreatePaymentInput) (*CreatePaymentResult, error)
	ConfirmPayment(ctx context.Context, method, providerPaymentID, payerID, orderID string) (*PaymentRecord, error)
	CancelPayment(ctx context.Context, orderID string) (*PaymentRecord, error)
	GetPaymentByOrderID(ctx context.Context, orderID string) (*PaymentRecord, error)
}
