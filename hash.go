package tezos

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Digest sizes used by the protocol.
const (
	HashSize    = 32
	KeyHashSize = 20

	// BranchSize is the length of a block hash payload.
	BranchSize = 32
)

// Hash returns the blake2b digest of b with the given output size.
func Hash(b []byte, size int) ([]byte, error) {
	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: blake2b digest size %d", ErrInvalidArgument, size)
	}
	h.Write(b)
	return h.Sum(nil), nil
}

// DecodeBranch converts a 32-byte block hash into its B-prefixed text form.
func DecodeBranch(s string) (string, error) {
	raw, err := decodeHex("branch", s)
	if err != nil {
		return "", err
	}
	if len(raw) != BranchSize {
		return "", &LengthError{Field: "branch", Expected: []int{BranchSize}, Got: len(raw)}
	}
	return KindBlockHash.Encode(raw)
}

// EncodeBranch converts a block hash into its 32-byte hex form.
func EncodeBranch(branch string) (string, error) {
	payload, err := KindBlockHash.Decode(branch)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(payload), nil
}

// DecodeBufferWithHint checksum-encodes b with the prefix for hint: op, p,
// expr, or the empty hint for no prefix.
func DecodeBufferWithHint(b []byte, hint string) (string, error) {
	if hint == "" {
		return CheckEncode(b), nil
	}
	k, ok := bufferKindsByHint[hint]
	if !ok {
		return "", fmt.Errorf("%w: buffer hint %q", ErrUnrecognizedHint, hint)
	}
	return k.Encode(b)
}

// EncodeBufferWithHint checksum-decodes s and returns the bytes, prefix included.
func EncodeBufferWithHint(s string) ([]byte, error) {
	return CheckDecode(s)
}

// ComputeOperationHash returns the op-prefixed hash of signed operation bytes.
func ComputeOperationHash(signed []byte) (string, error) {
	digest, err := Hash(signed, HashSize)
	if err != nil {
		return "", err
	}
	return KindOperationHash.Encode(digest)
}

// ComputeKeyHash returns the address of a public key: its 20-byte blake2b
// digest encoded as the given address kind. KindTz1 is used for ed25519 keys.
func ComputeKeyHash(key []byte, kind Kind) (string, error) {
	if !kind.IsAddress() {
		return "", fmt.Errorf("%w: %v is not an address kind", ErrInvalidArgument, kind)
	}
	digest, err := Hash(key, KeyHashSize)
	if err != nil {
		return "", err
	}
	return kind.Encode(digest)
}

// ComputeBigMapKeyHash returns the expr-prefixed hash of a packed big_map key.
func ComputeBigMapKeyHash(packed []byte) (string, error) {
	digest, err := Hash(packed, HashSize)
	if err != nil {
		return "", err
	}
	return KindExprHash.Encode(digest)
}
