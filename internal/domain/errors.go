package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a prophecy failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindTooLong
	KindInvalidLeadCharacter
	KindInvalidCharacter
	KindInvalidSecondPart
	KindInvalidDateFormat
	KindNoAdviceFound
	KindDataIntegrity
)

var kindNames = map[ErrorKind]string{
	KindUnknown:              "unknown",
	KindTooLong:              "too_long",
	KindInvalidLeadCharacter: "invalid_lead_character",
	KindInvalidCharacter:     "invalid_character",
	KindInvalidSecondPart:    "invalid_second_part",
	KindInvalidDateFormat:    "invalid_date_format",
	KindNoAdviceFound:        "no_advice_found",
	KindDataIntegrity:        "data_integrity_error",
}

// String returns the stable snake_case name used in JSON bodies and metric labels.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is a failure tagged with its kind and a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind, so callers can test against the
// sentinels below regardless of the message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrTooLong              = &Error{Kind: KindTooLong, Message: "invalid first part of license plate: too long"}
	ErrInvalidLeadCharacter = &Error{Kind: KindInvalidLeadCharacter, Message: "invalid first character in license plate"}
	ErrInvalidCharacter     = &Error{Kind: KindInvalidCharacter, Message: "invalid Thai character in license plate"}
	ErrInvalidSecondPart    = &Error{Kind: KindInvalidSecondPart, Message: "invalid second part of license plate"}
	ErrInvalidDateFormat    = &Error{Kind: KindInvalidDateFormat, Message: "invalid date format"}
	ErrNoAdviceFound        = &Error{Kind: KindNoAdviceFound, Message: "no advice found for the given day"}
	ErrDataIntegrity        = &Error{Kind: KindDataIntegrity, Message: "reference data is incomplete"}
)

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of a domain error anywhere in err's chain, or
// KindUnknown for anything else.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsValidationError reports whether err was caused by bad caller input rather
// than missing advice or broken reference data.
func IsValidationError(err error) bool {
	switch KindOf(err) {
	case KindTooLong, KindInvalidLeadCharacter, KindInvalidCharacter, KindInvalidSecondPart, KindInvalidDateFormat:
		return true
	default:
		return false
	}
}
