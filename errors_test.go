package tezos

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrInvalidArgument", ErrInvalidArgument, "tezos: invalid argument"},
		{"ErrInvalidFormat", ErrInvalidFormat, "tezos: invalid format"},
		{"ErrUnrecognizedAddressType", ErrUnrecognizedAddressType, "tezos: unrecognized address type"},
		{"ErrUnrecognizedAddressPrefix", ErrUnrecognizedAddressPrefix, "tezos: unrecognized address prefix"},
		{"ErrUnrecognizedKeyType", ErrUnrecognizedKeyType, "tezos: unrecognized key type"},
		{"ErrUnrecognizedHint", ErrUnrecognizedHint, "tezos: unrecognized hint"},
		{"ErrUnsupportedDataType", ErrUnsupportedDataType, "tezos: unsupported data type"},
		{"ErrChecksumMismatch", ErrChecksumMismatch, "tezos: checksum mismatch"},
		{"ErrArityMismatch", ErrArityMismatch, "tezos: argument count mismatch"},
		{"ErrGrammar", ErrGrammar, "tezos: grammar error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("Expected error message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestLengthError(t *testing.T) {
	t.Run("single length", func(t *testing.T) {
		err := &LengthError{Field: "branch", Expected: []int{32}, Got: 31}

		expected := "tezos: incorrect length for branch: expected 32 bytes, got 31"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("alternative lengths", func(t *testing.T) {
		err := &LengthError{Field: "address", Expected: []int{21, 22}, Got: 20}

		expected := "tezos: incorrect length for address: expected 21 or 22 bytes, got 20"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("error chain with errors.Is", func(t *testing.T) {
		if !errors.Is(&LengthError{}, ErrInvalidFormat) {
			t.Error("errors.Is should find ErrInvalidFormat in chain")
		}
	})
}

func TestArityError(t *testing.T) {
	t.Run("named entry point", func(t *testing.T) {
		err := &ArityError{EntryPoint: "Transfer", Expected: 3, Got: 1}

		expected := `tezos: entry point "Transfer" expects 3 arguments, got 1`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("unnamed entry point", func(t *testing.T) {
		err := &ArityError{Expected: 2, Got: 0}

		expected := "tezos: entry point expects 2 arguments, got 0"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("error chain with errors.Is", func(t *testing.T) {
		if !errors.Is(&ArityError{}, ErrArityMismatch) {
			t.Error("errors.Is should find ErrArityMismatch in chain")
		}
	})
}

func TestGrammarError(t *testing.T) {
	t.Run("with token", func(t *testing.T) {
		err := &GrammarError{Offset: 4, Token: "#", Msg: "unexpected character"}

		expected := `tezos: grammar error at offset 4 near "#": unexpected character`
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("at end of input", func(t *testing.T) {
		err := &GrammarError{Offset: 13, Msg: "expected ';'"}

		expected := "tezos: grammar error at offset 13: expected ';'"
		if err.Error() != expected {
			t.Errorf("Expected error message %q, got %q", expected, err.Error())
		}
	})

	t.Run("error chain with errors.Is", func(t *testing.T) {
		if !errors.Is(&GrammarError{}, ErrGrammar) {
			t.Error("errors.Is should find ErrGrammar in chain")
		}
	})
}

func TestPackError(t *testing.T) {
	err := &PackError{Type: PackedNat, Value: "12"}

	expected := "tezos: cannot pack string as nat"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, ErrUnsupportedDataType) {
		t.Error("errors.Is should find ErrUnsupportedDataType in chain")
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	sentinelErrors := []error{
		ErrInvalidArgument,
		ErrInvalidFormat,
		ErrUnrecognizedAddressType,
		ErrUnrecognizedAddressPrefix,
		ErrUnrecognizedKeyType,
		ErrUnrecognizedHint,
		ErrUnsupportedDataType,
		ErrChecksumMismatch,
		ErrArityMismatch,
		ErrGrammar,
	}

	for i, err1 := range sentinelErrors {
		for j, err2 := range sentinelErrors {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors %d and %d should be distinct", i, j)
			}
		}
	}
}
