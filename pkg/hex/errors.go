package hex

import (
	"errors"
)

// ErrorKind classifies why a hex conversion failed.
// An ErrorKind is itself an error, which is used for the sentinel values below.
type ErrorKind int

const (
	// KindInvalidCharacter is reported if a character pair is not a valid base-16 byte.
	KindInvalidCharacter ErrorKind = iota
	// KindLength is reported if the hex string has an odd number of characters.
	KindLength
	// KindHexConversion is reported if the input can't be turned into the target type.
	KindHexConversion
)

// String returns the message of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "Only hexadecimal characters (0-9,a-f) are permitted"
	case KindLength:
		return "Hex string lengths must be a multiple of 2"
	case KindHexConversion:
		return "Invalid hex representation for the target type"
	default:
		return "unknown hex error"
	}
}

func (k ErrorKind) Error() string {
	return k.String()
}

var (
	// ErrInvalidCharacter is matched by errors.Is if the hex string contains a non hex character.
	ErrInvalidCharacter error = KindInvalidCharacter
	// ErrLength is matched by errors.Is if the hex string length is not a multiple of 2.
	ErrLength error = KindLength
	// ErrHexConversion is matched by errors.Is if the hex string is no valid representation of the target type.
	ErrHexConversion error = KindHexConversion
)

// HexError is the error returned by all hex conversions.
// The message only depends on the Kind, the underlying cause is kept in Err.
type HexError struct {
	Kind ErrorKind
	Err  error
}

// NewError creates a HexError of the given kind with an optional cause.
func NewError(kind ErrorKind, cause error) *HexError {
	return &HexError{Kind: kind, Err: cause}
}

func (e *HexError) Error() string {
	return e.Kind.String()
}

// Unwrap returns the underlying cause, e.g. the *strconv.NumError of an invalid character.
func (e *HexError) Unwrap() error {
	return e.Err
}

// Cause is used by github.com/pkg/errors to find the underlying cause.
func (e *HexError) Cause() error {
	return e.Err
}

// Is reports whether target is an ErrorKind or a HexError of the same kind.
func (e *HexError) Is(target error) bool {
	switch t := target.(type) {
	case ErrorKind:
		return t == e.Kind
	case *HexError:
		return t.Kind == e.Kind
	default:
		return false
	}
}

// IsKind reports whether err is a HexError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var hexErr *HexError
	if !errors.As(err, &hexErr) {
		return false
	}
	return hexErr.Kind == kind
}
