package errors

import "fmt"

type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	HTTPCode int    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, httpCode int, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Localize swaps the message for a translation when one exists for lang.
// English errors keep their original message so appended detail survives.
func (e *AppError) Localize(lang string) *AppError {
	msg, ok := translation(e.Code, lang)
	if !ok {
		return e
	}
	return &AppError{
		Code:     e.Code,
		Message:  msg,
		HTTPCode: e.HTTPCode,
	}
}
