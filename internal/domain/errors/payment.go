package errors

import (
	"fmt"
	"net/http"
)

func ErrInvalidPaymentRequest(detail string) *AppError {
	return New("INVALID_PAYMENT_REQUEST", http.StatusBadRequest, fmt.Sprintf("%s: %s", messages["en"]["INVALID_PAYMENT_REQUEST"], detail))
}

func ErrUnsupportedProvider(method string) *AppError {
	return New("UNSUPPORTED_PROVIDER", http.StatusBadRequest, fmt.Sprintf("%s: %s", messages["en"]["UNSUPPORTED_PROVIDER"], method))
}

func ErrProvider(detail string) *AppError {
	return New("PROVIDER_ERROR", http.StatusBadGateway, fmt.Sprintf("%s: %s", messages["en"]["PROVIDER_ERROR"], detail))
}

func ErrPaymentNotApproved(state string) *AppError {
	return New("PAYMENT_NOT_APPROVED", http.StatusBadRequest, fmt.Sprintf("%s: state %s", messages["en"]["PAYMENT_NOT_APPROVED"], state))
}

func ErrPaymentNotFound(orderID string) *AppError {
	return New("PAYMENT_NOT_FOUND", http.StatusNotFound, fmt.Sprintf("%s: order %s", messages["en"]["PAYMENT_NOT_FOUND"], orderID))
}

func ErrOrderAlreadyInitiated(orderID string) *AppError {
	return New("ORDER_ALREADY_INITIATED", http.StatusConflict, fmt.Sprintf("%s: order %s", messages["en"]["ORDER_ALREADY_INITIATED"], orderID))
}

func ErrConcurrentUpdate() *AppError {
	return New("CONCURRENT_UPDATE", http.StatusConflict, messages["en"]["CONCURRENT_UPDATE"])
}

func ErrPaymentAlreadyFinalized(status string) *AppError {
	return New("PAYMENT_ALREADY_FINALIZED", http.StatusConflict, fmt.Sprintf("%s: %s", messages["en"]["PAYMENT_ALREADY_FINALIZED"], status))
}

func ErrUnauthorized() *AppError {
	return New("UNAUTHORIZED", http.StatusUnauthorized, messages["en"]["UNAUTHORIZED"])
}

func ErrInternal() *AppError {
	return New("INTERNAL_ERROR", http.StatusInternalServerError, messages["en"]["INTERNAL_ERROR"])
}
