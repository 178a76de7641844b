package types

import "errors"

// Kind classifies a failure so the command layer can translate it to text.
type Kind string

// Failure kinds.
const (
	KindNotFound           Kind = "not_found"
	KindInvalidFormat      Kind = "invalid_format"
	KindWrongArgumentCount Kind = "wrong_argument_count"
)

// Error is a classified failure raised by a directory or command operation.
// Msg is the user-facing detail (validator message, usage line).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Kind)
	}
	return e.Msg
}

// Is matches another *Error with the same kind and message. A target with an
// empty Msg matches any error of its kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Msg == "" || t.Msg == e.Msg
}

// Sentinel errors (use errors.Is).
var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidFormat      = &Error{Kind: KindInvalidFormat}
	ErrWrongArgumentCount = &Error{Kind: KindWrongArgumentCount}

	ErrContactNotFound = &Error{Kind: KindNotFound, Msg: "Contact not found."}
	ErrInvalidPhone    = &Error{Kind: KindInvalidFormat, Msg: "Phone number must be 10 digits"}
	ErrInvalidBirthday = &Error{Kind: KindInvalidFormat, Msg: "Invalid date format. Use DD.MM.YYYY"}
)

// WrongArgs returns a WrongArgumentCount error carrying the command usage.
func WrongArgs(usage string) error {
	return &Error{Kind: KindWrongArgumentCount, Msg: usage}
}

// KindOf returns the Kind of the first *Error in err's chain, or the empty
// Kind if err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is classified with kind.
func IsKind(err error, kind Kind) bool {
	return kind != "" && KindOf(err) == kind
}
