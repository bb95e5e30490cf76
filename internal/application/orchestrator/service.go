package orchestrator

import (
	"context"
	"errors"

	"github.com/phrimp/vnvodich-payment-service/internal/currency"
	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	apperrors "github.com/phrimp/vnvodich-payment-service/internal/domain/errors"
	"github.com/phrimp/vnvodich-payment-service/internal/metrics"
	"go.uber.org/zap"
)

// service coordinates the store, the provider gateways and the
// notification publisher to drive the payment lifecycle. It holds no
// locks of its own: same-order writers are serialized by the store's
// version check, and notifications run only after the mutation commits.
type service struct {
	store     domain.PaymentStore
	gateways  map[string]domain.ProviderGateway
	publisher domain.NotificationPublisher
	converter currency.Converter
	log       *zap.Logger
}

func NewService(
	store domain.PaymentStore,
	gateways map[string]domain.ProviderGateway,
	publisher domain.NotificationPublisher,
	converter currency.Converter,
	log *zap.Logger,
) domain.PaymentOrchestrator {
	return &service{
		store:     store,
		gateways:  gateways,
		publisher: publisher,
		converter: converter,
		log:       log,
	}
}

func (s *service) CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (*domain.CreatePaymentResult, error) {
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}
	gateway, ok := s.gateways[in.Method]
	if !ok {
		return nil, apperrors.ErrUnsupportedProvider(in.Method)
	}

	settlement := s.converter.ToSettlement(in.Amount)

	hosted, err := gateway.CreateHostedPayment(ctx, domain.HostedPaymentRequest{
		Amount:      settlement,
		Currency:    s.converter.SettlementCurrency(),
		Method:      in.Method,
		Intent:      "CAPTURE",
		Description: in.Description,
		OrderID:     in.OrderID,
	})
	if err != nil {
		s.log.Warn("provider rejected payment creation",
			zap.String("order_id", in.OrderID), zap.Error(err))
		return nil, apperrors.ErrProvider(err.Error())
	}

	record := &domain.PaymentRecord{
		OrderID:       in.OrderID,
		Amount:        in.Amount,
		Currency:      s.converter.LocalCurrency(),
		Status:        domain.PaymentStatusPending,
		PaymentMethod: in.Method,
	}
	if err := s.store.Save(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicateOrder) {
			// The provider-side resource stays unreferenced; surface the
			// duplicate instead of silently reusing or double-creating.
			s.log.Warn("duplicate create lost race, provider resource left unreferenced",
				zap.String("order_id", in.OrderID),
				zap.String("provider_payment_id", hosted.ProviderPaymentID))
			return nil, apperrors.ErrOrderAlreadyInitiated(in.OrderID)
		}
		s.log.Error("failed to persist payment record",
			zap.String("order_id", in.OrderID), zap.Error(err))
		return nil, apperrors.ErrInternal()
	}

	metrics.PaymentsCreated.Inc()
	s.log.Info("payment initiated",
		zap.String("order_id", in.OrderID),
		zap.String("provider_payment_id", hosted.ProviderPaymentID),
		zap.String("method", in.Method))

	return &domain.CreatePaymentResult{
		ProviderPaymentID: hosted.ProviderPaymentID,
		RedirectURL:       hosted.RedirectURL,
	}, nil
}

func (s *service) ConfirmPayment(ctx context.Context, method, providerPaymentID, payerID, orderID string) (*domain.PaymentRecord, error) {
	gateway, ok := s.gateways[method]
	if !ok {
		return nil, apperrors.ErrUnsupportedProvider(method)
	}

	exec, err := gateway.ExecuteHostedPayment(ctx, providerPaymentID, payerID)
	if err != nil {
		// No local state changed; the failure event is emitted for the
		// subscriber's visibility only.
		s.log.Warn("provider execution failed",
			zap.String("order_id", orderID),
			zap.String("provider_payment_id", providerPaymentID),
			zap.Error(err))
		s.publisher.Publish(ctx, domain.EventPaymentFailed, orderID, domain.PaymentStatusFailed)
		return nil, apperrors.ErrProvider(err.Error())
	}

	if !exec.Approved() {
		return nil, apperrors.ErrPaymentNotApproved(exec.State)
	}

	record, err := s.store.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperrors.ErrInternal()
	}
	if record == nil {
		return nil, apperrors.ErrPaymentNotFound(orderID)
	}

	// A replayed provider redirect for the same transaction is a no-op
	// success and must not re-emit the notification.
	if record.Status == domain.PaymentStatusCompleted && record.TransactionID == providerPaymentID {
		return record, nil
	}
	if record.Status.Terminal() {
		return nil, apperrors.ErrPaymentAlreadyFinalized(string(record.Status))
	}

	record.Status = domain.PaymentStatusCompleted
	record.TransactionID = providerPaymentID
	record.PayerID = payerID
	if err := s.store.Save(ctx, record); err != nil {
		if errors.Is(err, domain.ErrStaleRecord) {
			return nil, apperrors.ErrConcurrentUpdate()
		}
		return nil, apperrors.ErrInternal()
	}

	metrics.PaymentsFinalized.WithLabelValues(string(domain.PaymentStatusCompleted)).Inc()
	s.publisher.Publish(ctx, domain.EventPaymentCompleted, orderID, domain.PaymentStatusCompleted)
	s.log.Info("payment completed",
		zap.String("order_id", orderID),
		zap.String("transaction_id", providerPaymentID))

	return record, nil
}

func (s *service) CancelPayment(ctx context.Context, orderID string) (*domain.PaymentRecord, error) {
	record, err := s.store.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperrors.ErrInternal()
	}
	if record == nil {
		return nil, apperrors.ErrPaymentNotFound(orderID)
	}

	// Cancelling an already-finished payment is not actionable for the
	// caller; report success without touching the record.
	if record.Status.Terminal() {
		return record, nil
	}

	record.Status = domain.PaymentStatusCancelled
	if err := s.store.Save(ctx, record); err != nil {
		if errors.Is(err, domain.ErrStaleRecord) {
			return nil, apperrors.ErrConcurrentUpdate()
		}
		return nil, apperrors.ErrInternal()
	}

	metrics.PaymentsFinalized.WithLabelValues(string(domain.PaymentStatusCancelled)).Inc()
	s.publisher.Publish(ctx, domain.EventPaymentCanceled, orderID, domain.PaymentStatusCancelled)
	s.log.Info("payment cancelled", zap.String("order_id", orderID))

	return record, nil
}

func (s *service) GetPaymentByOrderID(ctx context.Context, orderID string) (*domain.PaymentRecord, error) {
	record, err := s.store.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperrors.ErrInternal()
	}
	if record == nil {
		return nil, apperrors.ErrPaymentNotFound(orderID)
	}
	return record, nil
}

func validateCreateInput(in domain.CreatePaymentInput) error {
	var reasons []string

	if in.OrderID == "" {
		reasons = append(reasons, "orderId is required")
	}
	if in.Amount.Sign() <= 0 {
		reasons = append(reasons, "amount must be greater than 0")
	}
	if in.Method == "" {
		reasons = append(reasons, "payment method is required")
	}

	if len(reasons) > 0 {
		return apperrors.ErrInvalidPaymentRequest(reasons[0])
	}
	return nil
}
