package tezos

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// PackedMarker opens every packed value.
const PackedMarker = "05"

// PackedType is the Michelson type a value is packed as.
type PackedType uint8

const (
	// PackedInt packs a signed integer.
	PackedInt PackedType = iota

	// PackedNat packs a natural number.
	PackedNat

	// PackedString packs a UTF-8 string.
	PackedString

	// PackedAddress packs a tz1, tz2, tz3 or KT1 address.
	PackedAddress

	// PackedBytes packs raw bytes.
	PackedBytes
)

// Type discriminators following the packed marker. Naturals share the int
// discriminator; only the varint layout differs.
const (
	tagInt    = "00"
	tagString = "01"
	tagBytes  = "0a"
)

var packedTypeNames = map[string]PackedType{
	"int":     PackedInt,
	"nat":     PackedNat,
	"string":  PackedString,
	"address": PackedAddress,
	"bytes":   PackedBytes,
}

// ParsePackedType maps a Michelson type name to a PackedType.
func ParsePackedType(name string) (PackedType, error) {
	t, ok := packedTypeNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDataType, name)
	}
	return t, nil
}

// String returns the Michelson type name.
func (t PackedType) String() string {
	for name, pt := range packedTypeNames {
		if pt == t {
			return name
		}
	}
	return fmt.Sprintf("PackedType(%d)", uint8(t))
}

// PackInt packs a signed integer.
func PackInt(n *big.Int) string {
	return PackedMarker + tagInt + EncodeSigned(n)
}

// PackNat packs a natural number. Negative values are rejected.
func PackNat(n *big.Int) (string, error) {
	v, err := EncodeUnsigned(n)
	if err != nil {
		return "", err
	}
	return PackedMarker + tagInt + v, nil
}

// PackString packs a string as its length-prefixed UTF-8 bytes.
func PackString(s string) string {
	return PackedMarker + tagString + WriteString(s)
}

// PackAddress packs an address as length-prefixed forged bytes.
func PackAddress(address string) (string, error) {
	forged, err := EncodeAddress(address)
	if err != nil {
		return "", err
	}
	return PackedMarker + tagBytes + DataLength(len(forged)/2) + forged, nil
}

// PackBytes packs raw bytes with a length prefix.
func PackBytes(b []byte) string {
	return PackedMarker + tagBytes + DataLength(len(b)) + hex.EncodeToString(b)
}

// PackData packs a Go value as the given type.
// Supported values:
//   - int, int64, uint64, *big.Int (for PackedInt and PackedNat)
//   - string (for PackedString and PackedAddress)
//   - []byte (for PackedBytes)
func PackData(value any, t PackedType) (string, error) {
	switch t {
	case PackedInt, PackedNat:
		n, ok := toBigInt(value)
		if !ok {
			return "", &PackError{Type: t, Value: value}
		}
		if t == PackedInt {
			return PackInt(n), nil
		}
		return PackNat(n)
	case PackedString, PackedAddress:
		s, ok := value.(string)
		if !ok {
			return "", &PackError{Type: t, Value: value}
		}
		if t == PackedString {
			return PackString(s), nil
		}
		return PackAddress(s)
	case PackedBytes:
		b, ok := value.([]byte)
		if !ok {
			return "", &PackError{Type: t, Value: value}
		}
		return PackBytes(b), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedDataType, t)
	}
}

// toBigInt handles common Go integer types.
func toBigInt(value any) (*big.Int, bool) {
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case int32:
		return big.NewInt(int64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return v, true
	default:
		return nil, false
	}
}
