package service

import (
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ErrorCode classifies service failures for the API layer.
type ErrorCode string

const (
	// CodeMalformedInput means bad shape or charset; user-fixable
	CodeMalformedInput ErrorCode = "MalformedInput"

	// CodeNotFound means a named registry, instance, or config entry is absent
	CodeNotFound ErrorCode = "NotFound"

	// CodeAccessDenied means a permission failure on the backing store
	CodeAccessDenied ErrorCode = "AccessDenied"

	// CodeUnreachable means a best-effort network probe failed; never fatal
	CodeUnreachable ErrorCode = "Unreachable"

	// CodeConflict means a write raced with a concurrent change or deletion
	CodeConflict ErrorCode = "Conflict"

	// CodeInternal means the backing store itself failed
	CodeInternal ErrorCode = "Internal"
)

// Error is a structured service error carrying a classification the API
// layer can translate without parsing messages.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError classifies an underlying error with a message.
func WrapError(code ErrorCode, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the classification from an error, defaulting to Internal.
func CodeOf(err error) ErrorCode {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return CodeInternal
}

// classifyStoreError maps a cluster store failure onto the service taxonomy.
func classifyStoreError(err error, format string, args ...any) *Error {
	code := CodeInternal
	switch {
	case apierrors.IsNotFound(err):
		code = CodeNotFound
	case apierrors.IsForbidden(err) || apierrors.IsUnauthorized(err):
		code = CodeAccessDenied
	case apierrors.IsConflict(err):
		code = CodeConflict
	}
	return WrapError(code, err, format, args...)
}
