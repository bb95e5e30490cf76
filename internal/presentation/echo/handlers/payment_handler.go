package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	apperrors "github.com/phrimp/vnvodich-payment-service/internal/domain/errors"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	orchestrator domain.PaymentOrchestrator
}

func NewPaymentHandler(orchestrator domain.PaymentOrchestrator) *PaymentHandler {
	return &PaymentHandler{orchestrator: orchestrator}
}

// Create initiates a provider-hosted payment and returns the redirect
// target for the end user.
func (h *PaymentHandler) Create(c echo.Context) error {
	orderID := param(c, "orderId")
	description := param(c, "description")
	if description == "" {
		description = "Payment for order " + orderID
	}

	rawAmount := param(c, "amount")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return apperrors.ErrInvalidPaymentRequest("amount must be a decimal number")
	}

	result, err := h.orchestrator.CreatePayment(c.Request().Context(), domain.CreatePaymentInput{
		OrderID:     orderID,
		Amount:      amount,
		Description: description,
		Method:      c.Param("provider"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Success handles the provider's return redirect after the user approved
// the payment.
func (h *PaymentHandler) Success(c echo.Context) error {
	providerPaymentID := param(c, "paymentId")
	payerID := param(c, "PayerID")
	if payerID == "" {
		payerID = param(c, "payerId")
	}
	orderID := param(c, "orderId")

	_, err := h.orchestrator.ConfirmPayment(c.Request().Context(), c.Param("provider"), providerPaymentID, payerID, orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "success",
		"paymentId": providerPaymentID,
		"orderId":   orderID,
	})
}

// Cancel handles the provider's cancel redirect.
func (h *PaymentHandler) Cancel(c echo.Context) error {
	orderID := param(c, "orderId")

	_, err := h.orchestrator.CancelPayment(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "cancelled",
		"message": "Payment was cancelled",
	})
}

func (h *PaymentHandler) GetByOrder(c echo.Context) error {
	record, err := h.orchestrator.GetPaymentByOrderID(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// param reads a request value from the form body or the query string,
// whichever carries it.
func param(c echo.Context, name string) string {
	if v := c.FormValue(name); v != "" {
		return v
	}
	return c.QueryParam(name)
}
