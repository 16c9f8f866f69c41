package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the application-wide error carrier. HTTPCode never reaches the
// response body; it only selects the status line.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap keeps the underlying error available for errors.Is/As chains.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

// MarshalJSON hides Err and HTTPCode from clients.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is is a thin wrapper over the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is a thin wrapper over the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- Domain constructors ---

// UnknownSubmissionKind is a client error: the kind is not registered.
func UnknownSubmissionKind(kind string) *AppError {
	return New(CodeUnknownSubmissionKind, "submission",
		fmt.Sprintf("Unknown submission kind: %s", kind), http.StatusBadRequest)
}

// ValidationError creates a validation failure with per-field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).
		WithDetails(details)
}

// AssetWriteError wraps a storage write failure. No row has been written when
// this surfaces.
func AssetWriteError(err error) *AppError {
	return Wrap(err, CodeAssetWriteFailed, "assets", "Failed to store uploaded file", http.StatusInternalServerError)
}

// PersistenceError wraps a relational-store failure. Already-stored assets may
// remain on disk; callers log their paths for reconciliation.
func PersistenceError(err error, table string) *AppError {
	return Wrap(err, CodePersistenceFailed, "submission", "Failed to persist submission", http.StatusInternalServerError).
		WithDetails(map[string]string{"table": table})
}

// NotFound is the read-path miss.
func NotFound(resource string) *AppError {
	return New(CodeNotFound, "listing", fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// GatewayError wraps a payment-provider failure (502-class).
func GatewayError(err error) *AppError {
	return Wrap(err, CodeGatewayError, "payment", "Payment gateway request failed", http.StatusBadGateway)
}

func InvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid username or password", http.StatusUnauthorized)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "validation", message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, "listing", message, http.StatusNotFound)
}
