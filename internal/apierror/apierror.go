// Package apierror provides the standardized error and result structures for
// the API. All failures returned to clients go through this package to ensure
// a consistent {success, message} envelope and to prevent leaking internal
// details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
	"strings"
)

// Kind classifies an error for HTTP mapping and retry semantics.
type Kind int

const (
	KindValidation Kind = iota // missing or invalid required field
	KindConstraint             // duplicate VPN/canal pair
	KindNotFound               // unknown group, record, or barcode
	KindStoreBusy              // transient lock contention — retryable
	KindStore                  // other persistence failures
	KindArtifact               // photo or barcode image I/O — non-fatal
)

// Error is the canonical typed error for service-layer failures.
type Error struct {
	Kind    Kind
	Campo   string // offending field, validation errors only
	Message string
}

func (e *Error) Error() string { return e.Message }

func Validation(campo, msg string) *Error {
	return &Error{Kind: KindValidation, Campo: campo, Message: msg}
}

func Constraint(msg string) *Error {
	return &Error{Kind: KindConstraint, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func StoreBusy() *Error {
	return &Error{Kind: KindStoreBusy, Message: "Error: La base de datos está en uso. Intente nuevamente."}
}

func Store(msg string) *Error {
	return &Error{Kind: KindStore, Message: msg}
}

func Artifact(msg string) *Error {
	return &Error{Kind: KindArtifact, Message: msg}
}

// FromStore classifies a persistence error. SQLite surfaces write-lock
// contention as "database is locked" / "database is busy"; those become the
// retryable StoreBusy kind, everything else a generic Store failure.
func FromStore(err error) *Error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "locked") || strings.Contains(msg, "busy") {
		return StoreBusy()
	}
	return Store("Error de base de datos: " + err.Error())
}

// KindOf returns the Kind of err, or KindStore for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// Retryable reports whether the caller may safely retry the operation.
func Retryable(err error) bool { return KindOf(err) == KindStoreBusy }

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConstraint:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindStoreBusy:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Result is the canonical {success, message} envelope for failure responses.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func New(msg string) *Result {
	return &Result{Success: false, Message: msg}
}
