package tezos

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Forged public key sizes in bytes, including the 1-byte curve hint.
const (
	Ed25519PublicKeySize = 33
	CurvePublicKeySize   = 34
)

// DecodePublicKey converts a forged public key into its edpk, sppk or p2pk
// text form. Ed25519 keys are 33 bytes; secp256k1 and p256 keys are 34.
func DecodePublicKey(s string) (string, error) {
	raw, err := decodeHex("public key", s)
	if err != nil {
		return "", err
	}
	if len(raw) != Ed25519PublicKeySize && len(raw) != CurvePublicKeySize {
		return "", &LengthError{Field: "public key", Expected: []int{Ed25519PublicKeySize, CurvePublicKeySize}, Got: len(raw)}
	}

	for _, k := range []Kind{KindEdpk, KindSppk, KindP2pk} {
		info := kinds[k]
		if raw[0] == info.hint[0] && len(raw)-1 == info.payload {
			return k.Encode(raw[1:])
		}
	}
	return "", fmt.Errorf("%w: hint %02x with %d bytes", ErrUnrecognizedKeyType, raw[0], len(raw))
}

// EncodePublicKey converts an edpk, sppk or p2pk key into its forged hex form.
func EncodePublicKey(publicKey string) (string, error) {
	if len(publicKey) < 4 {
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedKeyType, publicKey)
	}
	k, ok := publicKeyKinds[publicKey[:4]]
	if !ok {
		return "", fmt.Errorf("%w: prefix %s", ErrUnrecognizedKeyType, publicKey[:4])
	}

	payload, err := k.Decode(publicKey)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(kinds[k].hint) + hex.EncodeToString(payload), nil
}

// DecodeKeyWithHint encodes raw key bytes as an edsk secret key or an edpk
// public key.
func DecodeKeyWithHint(b []byte, hint string) (string, error) {
	switch hint {
	case "edsk":
		return KindEdsk.Encode(b)
	case "edpk":
		return DecodePublicKey(hex.EncodeToString(kinds[KindEdpk].hint) + hex.EncodeToString(b))
	default:
		return "", fmt.Errorf("%w: key hint %q", ErrUnrecognizedHint, hint)
	}
}

// EncodeKeyWithHint returns the raw key bytes of an edsk or edpk string.
func EncodeKeyWithHint(key, hint string) ([]byte, error) {
	switch hint {
	case "edsk":
		return KindEdsk.Decode(key)
	case "edpk":
		return KindEdpk.Decode(key)
	default:
		return nil, fmt.Errorf("%w: key hint %q", ErrUnrecognizedHint, hint)
	}
}

// DecodeSignatureWithHint encodes a raw 64-byte signature as an edsig string.
func DecodeSignatureWithHint(b []byte, hint string) (string, error) {
	if hint != "edsig" {
		return "", fmt.Errorf("%w: signature hint %q", ErrUnrecognizedHint, hint)
	}
	return KindEdsig.Encode(b)
}

// EncodeSignatureWithHint returns the raw bytes of an edsig string.
func EncodeSignatureWithHint(signature, hint string) ([]byte, error) {
	if hint != "edsig" {
		return nil, fmt.Errorf("%w: signature hint %q", ErrUnrecognizedHint, hint)
	}
	return KindEdsig.Decode(signature)
}

// EncodeSecp256k1PublicKey returns the sppk form of a secp256k1 public key.
func EncodeSecp256k1PublicKey(pub *ecdsa.PublicKey) (string, error) {
	if pub == nil {
		return "", fmt.Errorf("%w: nil public key", ErrInvalidArgument)
	}
	return KindSppk.Encode(crypto.CompressPubkey(pub))
}

// DecodeSecp256k1PublicKey parses an sppk string into a secp256k1 public key.
// The point must lie on the curve.
func DecodeSecp256k1PublicKey(publicKey string) (*ecdsa.PublicKey, error) {
	compressed, err := KindSppk.Decode(publicKey)
	if err != nil {
		return nil, err
	}
	pub, err := crypto.DecompressPubkey(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return pub, nil
}

// Secp256k1KeyHash returns the tz2 address of a secp256k1 public key.
func Secp256k1KeyHash(pub *ecdsa.PublicKey) (string, error) {
	if pub == nil {
		return "", fmt.Errorf("%w: nil public key", ErrInvalidArgument)
	}
	return ComputeKeyHash(crypto.CompressPubkey(pub), KindTz2)
}
