package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/phrimp/vnvodich-payment-service/internal/currency"
	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	apperrors "github.com/phrimp/vnvodich-payment-service/internal/domain/errors"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/gormdb"
	"github.com/phrimp/vnvodich-payment-service/internal/infrastructure/gormdb/repositories"
	"github.com/phrimp/vnvodich-payment-service/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	createResult *domain.HostedPayment
	createErr    error
	execState    string
	execErr      error
	createCalls  int
	execCalls    int
}

func (g *fakeGateway) Name() string { return "paypal" }

func (g *fakeGateway) CreateHostedPayment(_ context.Context, _ domain.HostedPaymentRequest) (*domain.HostedPayment, error) {
	g.createCalls++
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.createResult, nil
}

func (g *fakeGateway) ExecuteHostedPayment(_ context.Context, providerPaymentID, payerID string) (*domain.ExecutionResult, error) {
	g.execCalls++
	if g.execErr != nil {
		return nil, g.execErr
	}
	return &domain.ExecutionResult{
		State: g.execState,
		Raw:   map[string]interface{}{"id": providerPaymentID, "payerId": payerID},
	}, nil
}

type publishedEvent struct {
	Event   string
	OrderID string
	Status  domain.PaymentStatus
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event string, orderID string, status domain.PaymentStatus) {
	p.events = append(p.events, publishedEvent{Event: event, OrderID: orderID, Status: status})
}

type env struct {
	svc       domain.PaymentOrchestrator
	store     domain.PaymentStore
	gateway   *fakeGateway
	publisher *recordingPublisher
}

func setup(t *testing.T) *env {
	db, err := gormdb.NewTestConnection()
	require.NoError(t, err)

	store := repositories.NewPaymentRepo(db)
	gateway := &fakeGateway{
		createResult: &domain.HostedPayment{
			ProviderPaymentID: "PAY-1",
			RedirectURL:       "https://www.sandbox.paypal.com/checkoutnow?token=PAY-1",
		},
		execState: domain.ExecutionStateApproved,
	}
	publisher := &recordingPublisher{}
	converter := currency.NewFixedRate(decimal.RequireFromString("0.000042"), "VND", "USD")

	svc := NewService(
		store,
		map[string]domain.ProviderGateway{"paypal": gateway},
		publisher,
		converter,
		logger.NewTestLogger(),
	)
	return &env{svc: svc, store: store, gateway: gateway, publisher: publisher}
}

func createInput(orderID string) domain.CreatePaymentInput {
	return domain.CreatePaymentInput{
		OrderID:     orderID,
		Amount:      decimal.RequireFromString("100000"),
		Description: "tutoring package",
		Method:      "paypal",
	}
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok, "expected *AppError, got %T: %v", err, err)
	return appErr.Code
}

func TestCreatePayment_PersistsPendingRecord(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	result, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)
	assert.Equal(t, "PAY-1", result.ProviderPaymentID)
	assert.Contains(t, result.RedirectURL, "checkoutnow")

	record, err := e.store.FindByOrderID(ctx, "O1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, domain.PaymentStatusPending, record.Status)
	assert.True(t, record.Amount.Equal(decimal.RequireFromString("100000")))
	assert.Equal(t, "VND", record.Currency)
	assert.Equal(t, "paypal", record.PaymentMethod)
	assert.Empty(t, record.TransactionID)

	// No notification on creation.
	assert.Empty(t, e.publisher.events)
}

func TestCreatePayment_Validation(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   domain.CreatePaymentInput
		code string
	}{
		{"missing order id", domain.CreatePaymentInput{Amount: decimal.NewFromInt(100), Method: "paypal"}, "INVALID_PAYMENT_REQUEST"},
		{"zero amount", domain.CreatePaymentInput{OrderID: "O1", Method: "paypal"}, "INVALID_PAYMENT_REQUEST"},
		{"negative amount", domain.CreatePaymentInput{OrderID: "O1", Amount: decimal.NewFromInt(-5), Method: "paypal"}, "INVALID_PAYMENT_REQUEST"},
		{"missing method", domain.CreatePaymentInput{OrderID: "O1", Amount: decimal.NewFromInt(100)}, "INVALID_PAYMENT_REQUEST"},
		{"unknown provider", domain.CreatePaymentInput{OrderID: "O1", Amount: decimal.NewFromInt(100), Method: "stripe"}, "UNSUPPORTED_PROVIDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.svc.CreatePayment(ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.code, appCode(t, err))
		})
	}

	// Validation failures never reach the provider.
	assert.Zero(t, e.gateway.createCalls)
}

func TestCreatePayment_ProviderRejection(t *testing.T) {
	e := setup(t)
	e.gateway.createErr = errors.New("invalid amount")

	_, err := e.svc.CreatePayment(context.Background(), createInput("O1"))
	require.Error(t, err)
	assert.Equal(t, "PROVIDER_ERROR", appCode(t, err))

	record, err := e.store.FindByOrderID(context.Background(), "O1")
	require.NoError(t, err)
	assert.Nil(t, record, "no record persisted when the gateway rejects")
}

func TestCreatePayment_DuplicateOrderRejected(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)

	_, err = e.svc.CreatePayment(ctx, createInput("O1"))
	require.Error(t, err)
	assert.Equal(t, "ORDER_ALREADY_INITIATED", appCode(t, err))

	all, err := e.store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "exactly one record survives the duplicate")
}

func TestConfirmPayment_Approved(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)

	record, err := e.svc.ConfirmPayment(ctx, "paypal", "PAY-1", "PAYER-1", "O1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, record.Status)
	assert.Equal(t, "PAY-1", record.TransactionID)
	assert.Equal(t, "PAYER-1", record.PayerID)

	require.Len(t, e.publisher.events, 1)
	assert.Equal(t, publishedEvent{
		Event:   domain.EventPaymentCompleted,
		OrderID: "O1",
		Status:  domain.PaymentStatusCompleted,
	}, e.publisher.events[0])
}

func TestConfirmPayment_Idempotent(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)

	first, err := e.svc.ConfirmPayment(ctx, "paypal", "PAY-1", "PAYER-1", "O1")
	require.NoError(t, err)

	second, err := e.svc.ConfirmPayment(ctx, "paypal", "PAY-1", "PAYER-1", "O1")
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Version, second.Version, "replay must not re-mutate the record")

	assert.Len(t, e.publisher.events, 1, "at most one payment.completed notification")
}

func TestConfirmPayment_NotApproved(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	e.gateway.execState = "created"

	_, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)

	_, err = e.svc.ConfirmPayment(ctx, "paypal", "PAY-1", "PAYER-1", "O1")
	require.Error(t, err)
	assert.Equal(t, "PAYMENT_NOT_APPROVED", appCode(t, err))

	record, err := e.store.FindByOrderID(ctx, "O1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, record.Status, "rejection never mutates the record")
	assert.Empty(t, e.publisher.events)
}

func TestConfirmPayment_GatewayFailureEmitsFailedEvent(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)

	e.gateway.execErr = errors.New("provider outage")
	_, err = e.svc.ConfirmPayment(ctx, "paypal", "PAY-1", "PAYER-1", "O1")
	require.Error(t, err)
	assert.Equal(t, "PROVIDER_ERROR", appCode(t, err))

	record, err := e.store.FindByOrderID(ctx, "O1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, record.Status, "record untouched on gateway failure")

	require.Len(t, e.publisher.events, 1)
	assert.Equal(t, domain.EventPaymentFailed, e.publisher.events[0].Event)
}

func TestConfirmPayment_RecordMissing(t *testing.T) {
	e := setup(t)

	_, err := e.svc.ConfirmPayment(context.Background(), "paypal", "PAY-1", "PAYER-1", "O-missing")
	require.Error(t, err)
	assert.Equal(t, "PAYMENT_NOT_FOUND", appCode(t, err))
	assert.Empty(t, e.publisher.events)
}

func TestConfirmPayment_AfterCancelRejected(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)
	_, err = e.svc.CancelPayment(ctx, "O1")
	require.NoError(t, err)

	_, err = e.svc.ConfirmPayment(ctx, "paypal", "PAY-1", "PAYER-1", "O1")
	require.Error(t, err)
	assert.Equal(t, "PAYMENT_ALREADY_FINALIZED", appCode(t, err))
}

func TestCancelPayment_PendingRecord(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.CreatePayment(ctx, createInput("O2"))
	require.NoError(t, err)

	record, err := e.svc.CancelPayment(ctx, "O2")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCancelled, record.Status)

	require.Len(t, e.publisher.events, 1)
	assert.Equal(t, publishedEvent{
		Event:   domain.EventPaymentCanceled,
		OrderID: "O2",
		Status:  domain.PaymentStatusCancelled,
	}, e.publisher.events[0])
}

func TestCancelPayment_MissingRecord(t *testing.T) {
	e := setup(t)

	_, err := e.svc.CancelPayment(context.Background(), "O2")
	require.Error(t, err)
	assert.Equal(t, "PAYMENT_NOT_FOUND", appCode(t, err))
	assert.Empty(t, e.publisher.events)
}

func TestCancelPayment_CompletedRecordIsNoOp(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)
	_, err = e.svc.ConfirmPayment(ctx, "paypal", "PAY-1", "PAYER-1", "O1")
	require.NoError(t, err)

	record, err := e.svc.CancelPayment(ctx, "O1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, record.Status, "terminal status never changes")

	// Only the completion event, no cancellation event.
	require.Len(t, e.publisher.events, 1)
	assert.Equal(t, domain.EventPaymentCompleted, e.publisher.events[0].Event)
}

func TestGetPaymentByOrderID(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	_, err := e.svc.CreatePayment(ctx, createInput("O1"))
	require.NoError(t, err)

	record, err := e.svc.GetPaymentByOrderID(ctx, "O1")
	require.NoError(t, err)
	assert.Equal(t, "O1", record.OrderID)

	_, err = e.svc.GetPaymentByOrderID(ctx, "O-missing")
	require.Error(t, err)
	assert.Equal(t, "PAYMENT_NOT_FOUND", appCode(t, err))
}
