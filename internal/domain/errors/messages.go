package errors

import "strings"

var messages = map[string]map[string]string{
	"en": {
		"INVALID_PAYMENT_REQUEST":   "invalid payment request",
		"UNSUPPORTED_PROVIDER":      "payment provider is not supported",
		"PROVIDER_ERROR":            "payment provider rejected the request",
		"PAYMENT_NOT_APPROVED":      "payment was not approved by the provider",
		"PAYMENT_NOT_FOUND":         "payment record not found",
		"ORDER_ALREADY_INITIATED":   "a payment for this order has already been initiated",
		"CONCURRENT_UPDATE":         "payment record was modified by a concurrent request",
		"PAYMENT_ALREADY_FINALIZED": "payment has already reached a final state",
		"UNAUTHORIZED":              "invalid API key",
		"INTERNAL_ERROR":            "an internal error occurred",
	},
	"es": {
		"INVALID_PAYMENT_REQUEST":   "solicitud de pago invalida",
		"UNSUPPORTED_PROVIDER":      "el proveedor de pago no esta soportado",
		"PROVIDER_ERROR":            "el proveedor de pago rechazo la solicitud",
		"PAYMENT_NOT_APPROVED":      "el pago no fue aprobado por el proveedor",
		"PAYMENT_NOT_FOUND":         "registro de pago no encontrado",
		"ORDER_ALREADY_INITIATED":   "ya se inicio un pago para esta orden",
		"CONCURRENT_UPDATE":         "el registro de pago fue modificado por una solicitud concurrente",
		"PAYMENT_ALREADY_FINALIZED": "el pago ya alcanzo un estado final",
		"UNAUTHORIZED":              "clave de API invalida",
		"INTERNAL_ERROR":            "ocurrio un error interno",
	},
}

// translation resolves a non-English catalog entry for code. English (and
// unknown languages) report no translation so the builder message is kept.
func translation(code, lang string) (string, bool) {
	base := strings.SplitN(lang, "-", 2)[0]
	base = strings.TrimSpace(strings.ToLower(base))

	if base == "" || base == "en" {
		return "", false
	}

	langMessages, ok := messages[base]
	if !ok {
		return "", false
	}
	msg, ok := langMessages[code]
	return msg, ok
}
