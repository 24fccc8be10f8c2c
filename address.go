package tezos

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Forged address sizes in bytes.
const (
	// ImplicitAddressSize is a 1-byte curve hint plus a 20-byte key hash.
	ImplicitAddressSize = 21

	// AddressSize is the full forged form: a 2-byte hint plus a 20-byte key
	// hash, or a 01 tag, a 20-byte contract hash and a zero padding byte.
	AddressSize = 22
)

// DecodeAddress converts a forged address (21 or 22 bytes of hex) into its
// tz1, tz2, tz3 or KT1 text form.
func DecodeAddress(s string) (string, error) {
	raw, err := decodeHex("address", s)
	if err != nil {
		return "", err
	}

	switch len(raw) {
	case ImplicitAddressSize:
		// The leading 00 of the implicit hint is omitted.
		if k, ok := implicitKind(0x00, raw[0]); ok {
			return k.Encode(raw[1:])
		}
	case AddressSize:
		if k, ok := implicitKind(raw[0], raw[1]); ok {
			return k.Encode(raw[2:])
		}
		if raw[0] == kinds[KindKT1].hint[0] && raw[AddressSize-1] == kinds[KindKT1].trailing[0] {
			return KindKT1.Encode(raw[1 : AddressSize-1])
		}
	default:
		return "", &LengthError{Field: "address", Expected: []int{ImplicitAddressSize, AddressSize}, Got: len(raw)}
	}
	return "", fmt.Errorf("%w: %s", ErrUnrecognizedAddressType, s)
}

// EncodeAddress converts a tz1, tz2, tz3 or KT1 address into its 22-byte forged hex form.
func EncodeAddress(address string) (string, error) {
	if len(address) < 3 {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedAddressPrefix, address)
	}
	k, ok := addressKindsByPrefix[address[:3]]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnrecognizedAddressPrefix, address[:3])
	}

	payload, err := k.Decode(address)
	if err != nil {
		return "", err
	}

	info := kinds[k]
	var b strings.Builder
	b.Grow(AddressSize * 2)
	b.WriteString(hex.EncodeToString(info.hint))
	b.WriteString(hex.EncodeToString(payload))
	b.WriteString(hex.EncodeToString(info.trailing))
	return b.String(), nil
}

// DecodeAddressWithHint encodes a bare 20-byte hash as an address of the
// kind named by hint (tz1, tz2, tz3 or kt1).
func DecodeAddressWithHint(b []byte, hint string) (string, error) {
	k, err := ParseAddressKind(hint)
	if err != nil {
		return "", err
	}
	return k.Encode(b)
}

// implicitKind resolves a two-byte implicit address hint.
func implicitKind(hi, lo byte) (Kind, bool) {
	if hi != 0x00 {
		return 0, false
	}
	for _, k := range []Kind{KindTz1, KindTz2, KindTz3} {
		if kinds[k].hint[1] == lo {
			return k, true
		}
	}
	return 0, false
}
