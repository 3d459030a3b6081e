// Package errors holds the application error taxonomy: every failure a
// handler can surface maps to an AppError with an HTTP status, a stable
// business code and a customer-facing message.
package errors

import (
	"net/http"

	"fogon/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"No encontramos ese producto",
		"",
	)

	ErrProductOutOfStock = NewBaseError(
		http.StatusConflict,
		"PRODUCT_OUT_OF_STOCK",
		"Ese producto está agotado por hoy",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"No encontramos ese pedido",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Tu carrito está vacío",
		"",
	)

	ErrMissingTable = NewBaseError(
		http.StatusBadRequest,
		"MISSING_TABLE",
		"Elige una mesa antes de confirmar",
		"",
	)

	ErrMissingAddress = NewBaseError(
		http.StatusBadRequest,
		"MISSING_ADDRESS",
		"Agrega una dirección de entrega",
		"",
	)

	ErrMissingProof = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PROOF",
		"Sube tu comprobante de transferencia y elige la cuenta destino",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"El pedido ya no admite ese cambio",
		"",
	)

	ErrCancelNotAllowed = NewBaseError(
		http.StatusConflict,
		"CANCEL_NOT_ALLOWED",
		"Este pedido ya no se puede cancelar",
		"",
	)

	// Customizer errors
	ErrFlavorRequired = NewBaseError(
		http.StatusBadRequest,
		"FLAVOR_REQUIRED",
		"Elige un sabor antes de agregar",
		"",
	)

	ErrSplitFlavorsIncomplete = NewBaseError(
		http.StatusBadRequest,
		"SPLIT_FLAVORS_INCOMPLETE",
		"Elige los dos sabores para tu mitad y mitad",
		"",
	)

	ErrBathedSauceRequired = NewBaseError(
		http.StatusBadRequest,
		"BATHED_SAUCE_REQUIRED",
		"Elige la salsa para bañarlas",
		"",
	)

	// Store errors
	ErrStoreClosed = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_CLOSED",
		"El local está cerrado por ahora, vuelve más tarde",
		"",
	)

	// Profile errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"No encontramos tu perfil",
		"",
	)

	// Payment errors
	ErrPaymentPreferenceFailed = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_PREFERENCE_FAILED",
		"No pudimos iniciar el pago, intenta de nuevo",
		"",
	)

	// Media errors
	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"No pudimos subir la imagen",
		"",
	)

	// Report errors
	ErrReportFailed = NewBaseError(
		http.StatusInternalServerError,
		"REPORT_FAILED",
		"No pudimos generar el reporte",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Revisa los datos que enviaste",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Algo salió mal de nuestro lado",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Inicia sesión para continuar",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"No tienes permiso para hacer eso",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"No encontramos ese recurso",
		"",
	)
)

// StoreExecuteError represents a document-store execution error,
// implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "No pudimos guardar los cambios, intenta de nuevo"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}
