package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// Terminal reports whether no further lifecycle transition is permitted.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusCancelled, PaymentStatusFailed:
		return true
	}
	return false
}

// CanTransitionTo reports whether s -> next is a legal lifecycle transition.
// Only PENDING has outgoing transitions.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return s == PaymentStatusPending && next.Terminal()
}

const (
	EventPaymentCompleted = "payment.completed"
	EventPaymentCanceled  = "payment.canceled"
	EventPaymentFailed    = "payment.failed"
)

// PaymentRecord is the local record of a provider-hosted payment.
// OrderID is the caller-supplied business key, unique per record;
// Version backs optimistic concurrency on updates.
type PaymentRecord struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OrderID       string          `json:"orderId" gorm:"uniqueIndex;type:varchar(100);not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Currency      string          `json:"currency" gorm:"type:varchar(10);not null"`
	Status        PaymentStatus   `json:"status" gorm:"type:varchar(20);not null"`
	PaymentMethod string          `json:"paymentMethod" gorm:"type:varchar(50)"`
	TransactionID string          `json:"transactionId,omitempty" gorm:"type:varchar(100)"`
	PayerID       string          `json:"payerId,omitempty" gorm:"type:varchar(100)"`
	Version       int64           `json:"-" gorm:"not null;default:0"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (PaymentRecord) TableName() string {
	return "payments"
}

type CreatePaymentInput struct {
	OrderID     string
	Amount      decimal.Decimal
	Description string
	Method      string
}

type CreatePaymentResult struct {
	ProviderPaymentID string `json:"paymentId"`
	RedirectURL       string `json:"redirectUrl"`
}

type HostedPaymentRequest struct {
	Amount      decimal.Decimal
	Currency    string
	Method      string
	Intent      string
	Description string
	OrderID     string
}

type HostedPayment struct {
	ProviderPaymentID string
	RedirectURL       string
}

// ExecutionStateApproved is the canonical state a gateway reports when the
// provider approved and settled the payment.
const ExecutionStateApproved = "approved"

type ExecutionResult struct {
	State string
	Raw   map[string]interface{}
}

func (r *ExecutionResult) Approved() bool {
	return r.State == ExecutionStateApproved
}
