package tezos

import (
	"encoding/hex"
	"fmt"
)

// WriteBoolean encodes a boolean as a single byte: ff for true, 00 for false.
func WriteBoolean(v bool) string {
	if v {
		return "ff"
	}
	return "00"
}

// ReadBoolean decodes a single-byte boolean. Any non-zero byte is true.
func ReadBoolean(s string) (bool, error) {
	raw, err := decodeHex("boolean", s)
	if err != nil {
		return false, err
	}
	if len(raw) != 1 {
		return false, &LengthError{Field: "boolean", Expected: []int{1}, Got: len(raw)}
	}
	return raw[0] > 0, nil
}

// DataLength formats a byte count as the 4-byte big-endian length prefix
// used by strings and packed values.
func DataLength(n int) string {
	return fmt.Sprintf("%08x", uint32(n))
}

// WriteString encodes s as a length-prefixed run of UTF-8 bytes.
func WriteString(s string) string {
	return DataLength(len(s)) + hex.EncodeToString([]byte(s))
}

// decodeHex parses a non-empty, even-length hex string.
func decodeHex(field, s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty %s", ErrInvalidFormat, field)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid hex: %v", ErrInvalidFormat, field, err)
	}
	return raw, nil
}
