package tezos

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidArgument indicates a value outside a documented domain,
	// such as a negative number passed to the unsigned encoder.
	ErrInvalidArgument = errors.New("tezos: invalid argument")

	// ErrInvalidFormat indicates malformed input: bad hex, a fixed-size field
	// of the wrong length, or a text identifier with the wrong prefix bytes.
	ErrInvalidFormat = errors.New("tezos: invalid format")

	// ErrUnrecognizedAddressType indicates an address hint byte outside the prefix table.
	ErrUnrecognizedAddressType = errors.New("tezos: unrecognized address type")

	// ErrUnrecognizedAddressPrefix indicates an address text prefix outside the prefix table.
	ErrUnrecognizedAddressPrefix = errors.New("tezos: unrecognized address prefix")

	// ErrUnrecognizedKeyType indicates a public key hint or prefix outside the prefix table.
	ErrUnrecognizedKeyType = errors.New("tezos: unrecognized key type")

	// ErrUnrecognizedHint indicates a caller-supplied hint string that is not supported.
	ErrUnrecognizedHint = errors.New("tezos: unrecognized hint")

	// ErrUnsupportedDataType indicates a packed data type that cannot be encoded.
	ErrUnsupportedDataType = errors.New("tezos: unsupported data type")

	// ErrChecksumMismatch indicates a base58check string whose checksum does not verify.
	ErrChecksumMismatch = errors.New("tezos: checksum mismatch")

	// ErrArityMismatch indicates an invocation with the wrong number of arguments.
	ErrArityMismatch = errors.New("tezos: argument count mismatch")

	// ErrGrammar indicates a parameter signature that does not follow the type grammar.
	ErrGrammar = errors.New("tezos: grammar error")
)

// LengthError indicates a fixed-size binary field received the wrong number of bytes.
type LengthError struct {
	Field    string
	Expected []int
	Got      int
}

func (e *LengthError) Error() string {
	want := make([]string, len(e.Expected))
	for i, n := range e.Expected {
		want[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("tezos: incorrect length for %s: expected %s bytes, got %d",
		e.Field, strings.Join(want, " or "), e.Got)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidFormat
}

// ArityError indicates an entry point was invoked with the wrong number of arguments.
type ArityError struct {
	EntryPoint string
	Expected   int
	Got        int
}

func (e *ArityError) Error() string {
	if e.EntryPoint != "" {
		return fmt.Sprintf("tezos: entry point %q expects %d arguments, got %d", e.EntryPoint, e.Expected, e.Got)
	}
	return fmt.Sprintf("tezos: entry point expects %d arguments, got %d", e.Expected, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrArityMismatch
}

// GrammarError describes where a parameter signature stopped conforming to the grammar.
type GrammarError struct {
	Offset int    // byte offset into the signature
	Token  string // offending token, empty at end of input
	Msg    string
}

func (e *GrammarError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("tezos: grammar error at offset %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("tezos: grammar error at offset %d near %q: %s", e.Offset, e.Token, e.Msg)
}

func (e *GrammarError) Unwrap() error {
	return ErrGrammar
}

// PackError indicates a Go value that cannot be packed as the requested type.
type PackError struct {
	Type  PackedType
	Value any
}

func (e *PackError) Error() string {
	return fmt.Sprintf("tezos: cannot pack %T as %v", e.Value, e.Type)
}

func (e *PackError) Unwrap() error {
	return ErrUnsupportedDataType
}
