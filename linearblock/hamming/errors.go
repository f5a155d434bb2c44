package hamming

import "errors"

// ErrorKind separates inputs of the wrong shape from inputs with bad values.
type ErrorKind int

const (
	UnknownKind ErrorKind = iota
	TypeKind              // input is not a list
	ValueKind             // input is a list but its values or length are wrong
)

func (k ErrorKind) String() string {
	switch k {
	case TypeKind:
		return "TypeKind"
	case ValueKind:
		return "ValueKind"
	default:
		return "UnknownKind"
	}
}

// Error is returned by Encode and Decode when the input fails validation.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrNotList        = &Error{Kind: TypeKind, Message: "Input is not a list."}
	ErrNotBinary      = &Error{Kind: ValueKind, Message: "Input is not binary."}
	ErrNotFourBits    = &Error{Kind: ValueKind, Message: "Input does not contain 4-bits."}
	ErrNotSevenDigits = &Error{Kind: ValueKind, Message: "Input list does not contain 7 digits."}
)

// KindOf returns the ErrorKind of err, or UnknownKind if err is not a validation error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnknownKind
}
