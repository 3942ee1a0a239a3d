package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	AccountNotFound     ErrorCode = "account_not_found"
	HolderNotFound      ErrorCode = "holder_not_found"
	InsufficientFunds   ErrorCode = "insufficient_funds"
	InvalidAmount       ErrorCode = "invalid_amount"
	InvalidMovementKind ErrorCode = "invalid_movement_kind"
	InvalidParameters   ErrorCode = "invalid_parameters"
	StoreError          ErrorCode = "store_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func (e *AppError) WithDetails(details string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
	}
}

// HTTPStatus maps an error code to a response status. The service's wire
// contract returns 400 for every failure; the table keeps the kinds
// distinguishable so logs and tests can tell them apart even though the
// status is uniform.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case AccountNotFound, HolderNotFound:
		return http.StatusBadRequest
	case InsufficientFunds:
		return http.StatusBadRequest
	case InvalidAmount, InvalidMovementKind, InvalidParameters:
		return http.StatusBadRequest
	case StoreError:
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// Predefined errors for common cases. Messages are the published Spanish
// wire contract.
var (
	ErrAccountNotFound     = NewAppError(AccountNotFound, "Cuenta no encontrada")
	ErrHolderNotFound      = NewAppError(HolderNotFound, "Titular no encontrado")
	ErrInsufficientFunds   = NewAppError(InsufficientFunds, "Saldo insuficiente")
	ErrInvalidAmount       = NewAppError(InvalidAmount, "El valor del movimiento no puede ser negativo")
	ErrInvalidMovementKind = NewAppError(InvalidMovementKind, "Tipo de movimiento no válido")
	ErrInvalidParameters   = NewAppError(InvalidParameters, "Parámetros no válidos")
)
