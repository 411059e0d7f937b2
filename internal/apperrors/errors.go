package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindAuth            Kind = "auth"
	KindServer          Kind = "server"
	KindDeserialization Kind = "deserialization"
)

// AuthMessage is the user-facing text for every authorization failure,
// whether the key was rejected by the API or never provided at all.
const AuthMessage = "Authorization failed, is your API key correct?"

type Error struct {
	Kind Kind
	// Message is intended for user-facing output and logs.
	Message string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func New(kind Kind, message string, cause error) error {
	return &Error{
		Kind:    kind,
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

func Auth(cause error) error {
	return New(KindAuth, AuthMessage, cause)
}

func Server(message string, cause error) error {
	return New(KindServer, message, cause)
}

func Deserialization(message string, cause error) error {
	return New(KindDeserialization, message, cause)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

// PublicMessage returns the message safe to show to a user. Errors outside
// the taxonomy (network failures, file I/O) pass through unchanged.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

func IsAuth(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindAuth
}

func IsServer(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindServer
}

func IsDeserialization(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindDeserialization
}
