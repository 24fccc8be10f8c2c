package tezos

import (
	"bytes"
	"fmt"

	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
)

// ChecksumSize is the number of double-SHA-256 bytes appended before base58 encoding.
const ChecksumSize = 4

// CheckEncode base58-encodes b followed by its 4-byte checksum.
func CheckEncode(b []byte) string {
	buf := make([]byte, 0, len(b)+ChecksumSize)
	buf = append(buf, b...)
	buf = append(buf, checksum(b)...)
	return base58.Encode(buf)
}

// CheckDecode reverses CheckEncode, verifying and stripping the checksum.
func CheckDecode(s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(raw) < ChecksumSize {
		return nil, &LengthError{Field: "base58check payload", Expected: []int{ChecksumSize}, Got: len(raw)}
	}

	payload, sum := raw[:len(raw)-ChecksumSize], raw[len(raw)-ChecksumSize:]
	if !bytes.Equal(sum, checksum(payload)) {
		return nil, fmt.Errorf("%w: %s", ErrChecksumMismatch, s)
	}
	return payload, nil
}

func checksum(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:ChecksumSize]
}
