package tezos

import (
	"bytes"
	"fmt"
)

// Kind identifies one row of the checksum prefix table.
type Kind uint8

const (
	// KindTz1 is an ed25519 implicit account address.
	KindTz1 Kind = iota

	// KindTz2 is a secp256k1 implicit account address.
	KindTz2

	// KindTz3 is a p256 implicit account address.
	KindTz3

	// KindKT1 is an originated contract address.
	KindKT1

	// KindEdpk is an ed25519 public key.
	KindEdpk

	// KindSppk is a secp256k1 public key.
	KindSppk

	// KindP2pk is a p256 public key.
	KindP2pk

	// KindEdsk is an ed25519 secret key.
	KindEdsk

	// KindEdsig is an ed25519 signature.
	KindEdsig

	// KindBlockHash is a block (branch) hash.
	KindBlockHash

	// KindOperationHash is an operation group hash.
	KindOperationHash

	// KindProtocolHash is a protocol hash.
	KindProtocolHash

	// KindExprHash is a script expression hash, used for big_map keys.
	KindExprHash

	kindCount
)

type kindInfo struct {
	name     string // hint name; equals the text prefix except for operation hashes
	prefix   []byte // bytes prepended before checksum encoding
	payload  int    // payload length in bytes
	hint     []byte // binary hint used in forged operations, nil if none
	trailing []byte // binary suffix used in forged operations, nil if none
}

// kinds is indexed by Kind and never modified.
var kinds = [kindCount]kindInfo{
	KindTz1:           {name: "tz1", prefix: []byte{0x06, 0xa1, 0x9f}, payload: 20, hint: []byte{0x00, 0x00}},
	KindTz2:           {name: "tz2", prefix: []byte{0x06, 0xa1, 0xa1}, payload: 20, hint: []byte{0x00, 0x01}},
	KindTz3:           {name: "tz3", prefix: []byte{0x06, 0xa1, 0xa4}, payload: 20, hint: []byte{0x00, 0x02}},
	KindKT1:           {name: "KT1", prefix: []byte{0x02, 0x5a, 0x79}, payload: 20, hint: []byte{0x01}, trailing: []byte{0x00}},
	KindEdpk:          {name: "edpk", prefix: []byte{0x0d, 0x0f, 0x25, 0xd9}, payload: 32, hint: []byte{0x00}},
	KindSppk:          {name: "sppk", prefix: []byte{0x03, 0xfe, 0xe2, 0x56}, payload: 33, hint: []byte{0x01}},
	KindP2pk:          {name: "p2pk", prefix: []byte{0x03, 0xb2, 0x8b, 0x7f}, payload: 33, hint: []byte{0x02}},
	KindEdsk:          {name: "edsk", prefix: []byte{0x2b, 0xf6, 0x4e, 0x07}, payload: 64},
	KindEdsig:         {name: "edsig", prefix: []byte{0x09, 0xf5, 0xcd, 0x86, 0x12}, payload: 64},
	KindBlockHash:     {name: "B", prefix: []byte{0x01, 0x34}, payload: 32},
	KindOperationHash: {name: "op", prefix: []byte{0x05, 0x74}, payload: 32},
	KindProtocolHash:  {name: "P", prefix: []byte{0x02, 0xaa}, payload: 32},
	KindExprHash:      {name: "expr", prefix: []byte{0x0d, 0x2c, 0x40, 0x1b}, payload: 32},
}

// Lookup tables from external strings to kinds. Built once, read-only.
var (
	addressKindsByPrefix = map[string]Kind{"tz1": KindTz1, "tz2": KindTz2, "tz3": KindTz3, "KT1": KindKT1}
	addressKindsByHint   = map[string]Kind{"tz1": KindTz1, "tz2": KindTz2, "tz3": KindTz3, "kt1": KindKT1, "KT1": KindKT1}
	publicKeyKinds       = map[string]Kind{"edpk": KindEdpk, "sppk": KindSppk, "p2pk": KindP2pk}
	bufferKindsByHint    = map[string]Kind{"op": KindOperationHash, "p": KindProtocolHash, "expr": KindExprHash}
)

// String returns the hint name of the kind. It is also the text prefix of
// encoded values, except for operation hashes, which only start with 'o'.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Prefix returns a copy of the bytes prepended before checksum encoding.
func (k Kind) Prefix() []byte {
	if k >= kindCount {
		return nil
	}
	return append([]byte(nil), kinds[k].prefix...)
}

// PayloadLength returns the payload size in bytes, excluding the prefix.
func (k Kind) PayloadLength() int {
	if k >= kindCount {
		return 0
	}
	return kinds[k].payload
}

// IsAddress reports whether the kind is one of the four address kinds.
func (k Kind) IsAddress() bool {
	return k <= KindKT1
}

// Encode checksum-encodes payload under the kind's prefix.
func (k Kind) Encode(payload []byte) (string, error) {
	if k >= kindCount {
		return "", fmt.Errorf("%w: %v", ErrInvalidArgument, k)
	}
	info := kinds[k]
	if len(payload) != info.payload {
		return "", &LengthError{Field: info.name + " payload", Expected: []int{info.payload}, Got: len(payload)}
	}

	buf := make([]byte, 0, len(info.prefix)+len(payload))
	buf = append(buf, info.prefix...)
	buf = append(buf, payload...)
	return CheckEncode(buf), nil
}

// Decode checksum-decodes text and returns the payload after verifying the
// kind's prefix bytes and payload length.
func (k Kind) Decode(text string) ([]byte, error) {
	if k >= kindCount {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, k)
	}
	info := kinds[k]

	raw, err := CheckDecode(text)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(raw, info.prefix) {
		return nil, fmt.Errorf("%w: %q is not a %s value", ErrInvalidFormat, text, info.name)
	}
	payload := raw[len(info.prefix):]
	if len(payload) != info.payload {
		return nil, &LengthError{Field: info.name + " payload", Expected: []int{info.payload}, Got: len(payload)}
	}
	return payload, nil
}

// ParseAddressKind maps an address hint (tz1, tz2, tz3, kt1) to its kind.
func ParseAddressKind(hint string) (Kind, error) {
	k, ok := addressKindsByHint[hint]
	if !ok {
		return 0, fmt.Errorf("%w: address hint %q", ErrUnrecognizedHint, hint)
	}
	return k, nil
}
