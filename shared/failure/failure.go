package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independently of its HTTP code.
type Kind string

const (
	KindUnknown                Kind = ""
	KindValidation             Kind = "validation"
	KindDuplicateEntity        Kind = "duplicate_entity"
	KindNotFound               Kind = "not_found"
	KindStateConflict          Kind = "state_conflict"
	KindProtectedBatchConflict Kind = "protected_batch_conflict"
	KindStorageFailure         Kind = "storage_failure"
	KindUnauthorized           Kind = "unauthorized"
	KindForbidden              Kind = "forbidden"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message"`
	// Transient marks failures the caller may retry, such as pool exhaustion.
	Transient bool `json:"-"`

	cause error
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validation is the taxonomy alias of BadRequestFromString.
func Validation(msg string) error {
	return BadRequestFromString(msg)
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindStateConflict,
		Message: message,
	}
}

// Duplicate reports a uniqueness violation on create.
func Duplicate(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindDuplicateEntity,
		Message: message,
	}
}

// StateConflict reports a transition that the current state does not allow.
func StateConflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindStateConflict,
		Message: message,
	}
}

// ProtectedBatchConflict reports a write that would destroy a batch holding bookings.
func ProtectedBatchConflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindProtectedBatchConflict,
		Message: message,
	}
}

// StorageFailure wraps an underlying storage error. Transient failures map to 503.
func StorageFailure(err error, transient bool) error {
	if err == nil {
		return nil
	}

	code := http.StatusInternalServerError
	if transient {
		code = http.StatusServiceUnavailable
	}

	return &Failure{
		Code:      code,
		Kind:      KindStorageFailure,
		Message:   "storage failure: " + err.Error(),
		Transient: transient,
		cause:     err,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the taxonomy kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}

// IsClassified reports whether err already carries a Failure.
func IsClassified(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
