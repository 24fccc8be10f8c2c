package tezos

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// Variable-length integer layout.
const (
	// ContinuationBit is set on every byte of a varint except the last.
	ContinuationBit = 0x80

	// SignBit marks a negative value in the first byte of a signed varint.
	SignBit = 0x40

	dataMask      = 0x7f
	firstDataMask = 0x3f
)

var (
	maskData      = big.NewInt(dataMask)
	maskFirstData = big.NewInt(firstDataMask)
)

// EncodeUnsigned encodes a natural number as a hex varint.
// The least significant 7 bits come first and every byte but the last
// carries the continuation bit. Negative values must use EncodeSigned.
func EncodeUnsigned(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", fmt.Errorf("%w: unsigned varint requires a non-negative value, got %v", ErrInvalidArgument, n)
	}

	v := new(big.Int).Set(n)
	chunk := new(big.Int)
	out := make([]byte, 0, v.BitLen()/7+1)
	for {
		b := byte(chunk.And(v, maskData).Uint64())
		v.Rsh(v, 7)
		if v.Sign() != 0 {
			b |= ContinuationBit
		}
		out = append(out, b)
		if v.Sign() == 0 {
			break
		}
	}
	return hex.EncodeToString(out), nil
}

// DecodeUnsigned decodes a hex varint produced by EncodeUnsigned.
func DecodeUnsigned(s string) (*big.Int, error) {
	raw, err := decodeHex("unsigned varint", s)
	if err != nil {
		return nil, err
	}

	n := new(big.Int)
	for i := len(raw) - 1; i >= 0; i-- {
		n.Lsh(n, 7)
		n.Or(n, big.NewInt(int64(raw[i]&dataMask)))
	}
	return n, nil
}

// EncodeSigned encodes an integer as a hex varint. The first byte holds 6 data
// bits plus the sign bit; later bytes hold 7 data bits. When the magnitude's
// bit length is a multiple of 7 the encoding ends in an extra 0x01 byte.
func EncodeSigned(n *big.Int) string {
	if n == nil || n.Sign() == 0 {
		return "00"
	}

	v := new(big.Int).Abs(n)
	chunk := new(big.Int)
	out := make([]byte, 0, v.BitLen()/7+2)

	b := byte(chunk.And(v, maskFirstData).Uint64())
	v.Rsh(v, 6)
	if n.Sign() < 0 {
		b |= SignBit
	}
	for {
		if v.Sign() != 0 {
			b |= ContinuationBit
		}
		out = append(out, b)
		if v.Sign() == 0 {
			break
		}
		b = byte(chunk.And(v, maskData).Uint64())
		v.Rsh(v, 7)
	}
	return hex.EncodeToString(out)
}

// DecodeSigned decodes a hex varint produced by EncodeSigned.
func DecodeSigned(s string) (*big.Int, error) {
	raw, err := decodeHex("signed varint", s)
	if err != nil {
		return nil, err
	}

	n := new(big.Int)
	for i := len(raw) - 1; i > 0; i-- {
		n.Lsh(n, 7)
		n.Or(n, big.NewInt(int64(raw[i]&dataMask)))
	}
	n.Lsh(n, 6)
	n.Or(n, big.NewInt(int64(raw[0]&firstDataMask)))

	if raw[0]&SignBit != 0 {
		n.Neg(n)
	}
	return n, nil
}

// ScanInt reads one varint starting at offset (in hex characters) inside a
// larger hex buffer. It returns the value and the number of hex characters
// consumed so callers can advance their cursor.
func ScanInt(s string, offset int, signed bool) (*big.Int, int, error) {
	if offset < 0 || offset%2 != 0 || offset >= len(s) {
		return nil, 0, fmt.Errorf("%w: offset %d outside buffer of length %d", ErrInvalidArgument, offset, len(s))
	}

	end := offset
	for end+2 <= len(s) {
		b, err := decodeHex("varint byte", s[end:end+2])
		if err != nil {
			return nil, 0, err
		}
		end += 2
		if b[0]&ContinuationBit == 0 {
			break
		}
	}

	var (
		n   *big.Int
		err error
	)
	if signed {
		n, err = DecodeSigned(s[offset:end])
	} else {
		n, err = DecodeUnsigned(s[offset:end])
	}
	if err != nil {
		return nil, 0, err
	}
	return n, end - offset, nil
}
