package paypal

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	"github.com/plutov/paypal/v4"
	"go.uber.org/zap"
)

type Config struct {
	ClientID     string
	ClientSecret string
	Mode         string // "sandbox" or "live"
	SuccessURL   string
	CancelURL    string
}

// Gateway adapts the PayPal Orders v2 API to the ProviderGateway port.
// It is stateless apart from the authenticated client.
type Gateway struct {
	client     *paypal.Client
	successURL string
	cancelURL  string
	log        *zap.Logger
}

func New(cfg Config, log *zap.Logger) (*Gateway, error) {
	base := paypal.APIBaseSandBox
	if strings.EqualFold(cfg.Mode, "live") {
		base = paypal.APIBaseLive
	}

	client, err := paypal.NewClient(cfg.ClientID, cfg.ClientSecret, base)
	if err != nil {
		return nil, fmt.Errorf("paypal client: %w", err)
	}
	if _, err := client.GetAccessToken(context.Background()); err != nil {
		return nil, fmt.Errorf("paypal access token: %w", err)
	}

	log.Info("paypal gateway initialized", zap.String("mode", cfg.Mode))

	return &Gateway{
		client:     client,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		log:        log,
	}, nil
}

func (g *Gateway) Name() string {
	return "paypal"
}

func (g *Gateway) CreateHostedPayment(ctx context.Context, req domain.HostedPaymentRequest) (*domain.HostedPayment, error) {
	units := []paypal.PurchaseUnitRequest{
		{
			ReferenceID: req.OrderID,
			Amount: &paypal.PurchaseUnitAmount{
				Currency: strings.ToUpper(req.Currency),
				Value:    req.Amount.StringFixed(2),
			},
			Description: req.Description,
		},
	}

	appContext := &paypal.ApplicationContext{
		ReturnURL: callbackURL(g.successURL, req.OrderID),
		CancelURL: callbackURL(g.cancelURL, req.OrderID),
	}

	order, err := g.client.CreateOrder(ctx, strings.ToUpper(req.Intent), units, nil, appContext)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	approve := approvalURL(order)
	if approve == "" {
		return nil, fmt.Errorf("paypal order %s has no approval link", order.ID)
	}

	g.log.Info("paypal order created",
		zap.String("order_id", req.OrderID),
		zap.String("paypal_order_id", order.ID))

	return &domain.HostedPayment{
		ProviderPaymentID: order.ID,
		RedirectURL:       approve,
	}, nil
}

func (g *Gateway) ExecuteHostedPayment(ctx context.Context, providerPaymentID, payerID string) (*domain.ExecutionResult, error) {
	capture, err := g.client.CaptureOrder(ctx, providerPaymentID, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, fmt.Errorf("capture order: %w", err)
	}

	return &domain.ExecutionResult{
		State: stateFromCapture(capture.Status),
		Raw: map[string]interface{}{
			"id":      capture.ID,
			"status":  capture.Status,
			"payerId": payerID,
		},
	}, nil
}

// stateFromCapture maps PayPal capture statuses onto the canonical
// execution states. Only a COMPLETED capture counts as approved.
func stateFromCapture(status string) string {
	if status == "COMPLETED" {
		return domain.ExecutionStateApproved
	}
	return strings.ToLower(status)
}

func approvalURL(order *paypal.Order) string {
	for _, link := range order.Links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	return ""
}

func callbackURL(base, orderID string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "orderId=" + url.QueryEscape(orderID)
}
