package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a service error into the HTTP taxonomy. Services
// return kinds, the transport layer maps them to status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindAuthentication
	KindUnauthorized
	KindNotFound
	KindAlreadyExists
	KindPhotoInvalid
	KindStorage
	KindUnknownField
	KindInvalidFilterValue
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Authentication(message string) error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func AlreadyExists(message string) error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

func PhotoInvalid(message string) error {
	return &Error{Kind: KindPhotoInvalid, Message: message}
}

func Storage(err error) error {
	return &Error{Kind: KindStorage, Message: "object storage failure", Err: err}
}

func UnknownField(field string) error {
	return &Error{Kind: KindUnknownField, Message: fmt.Sprintf("unknown filter field %q", field)}
}

func InvalidFilterValue(field string, err error) error {
	return &Error{Kind: KindInvalidFilterValue, Message: fmt.Sprintf("invalid value for field %q", field), Err: err}
}

func Internal(err error) error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// IsKind reports whether err, anywhere in its chain, carries the kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// StatusCode maps an error chain to the HTTP status the caller sees.
func StatusCode(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return 500
	}
	switch appErr.Kind {
	case KindAuthentication, KindUnauthorized:
		return 401
	case KindNotFound:
		return 404
	case KindAlreadyExists:
		return 409
	case KindPhotoInvalid:
		return 422
	case KindUnknownField, KindInvalidFilterValue:
		return 400
	case KindStorage:
		return 502
	default:
		return 500
	}
}
