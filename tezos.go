// Package tezos provides a Go implementation of the Tezos wire codecs and a
// compiler for contract parameter signatures.
//
// The package converts between the human-readable and binary forms of the
// values that appear in forged operations and in packed Michelson data. It
// also turns a contract's parameter type into the list of entry points a
// caller can invoke, with a template for building each invocation.
//
// # Basic Usage
//
// Forge an address and pack a value:
//
//	forged, err := tezos.EncodeAddress("tz1QSHaKpTFhgHLbqinyYRjxD5sLcbfbzhxy")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// forged == "000034a00f9b7964943b4ab583a8d1f7241a0cb9742c"
//
//	packed, _ := tezos.PackData(5, tezos.PackedInt) // "050005"
//
// Compile a parameter signature and build an invocation:
//
//	eps, err := tezos.ParseParameter("parameter (or (int %deposit) (string %note));")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	deposit, _ := tezos.FindEntryPoint(eps, "Deposit")
//	value, _ := deposit.InvocationString("10") // "(Left 10)"
//
// # Codecs
//
// Binary values are exchanged as lowercase hex strings without a 0x prefix:
//
//   - Integers: zarith variable-length encodings (EncodeUnsigned, EncodeSigned)
//   - Addresses: tz1, tz2, tz3 and KT1 (EncodeAddress, DecodeAddress)
//   - Keys and signatures: edpk, sppk, p2pk, edsk and edsig
//   - Hashes: block, operation, protocol and script expression hashes
//
// Every text identifier is a base58check string whose leading bytes select
// one Kind from a fixed prefix table.
//
// # Packed Data
//
// PackData produces the serialization hashed for big_map keys and signed by
// Michelson CHECK_SIGNATURE. Supported types are int, nat, string, address
// and bytes.
//
// # Entry Points
//
// ParseParameter reads the Michelson parameter grammar. Every or splits the
// entry point set into a Left and a Right branch; every pair combines the
// entry points of its components. Field annotations (%name) become entry
// point names and type annotations (:name) become parameter names, both with
// the first letter upper-cased. Compiled entry points are immutable and safe
// to share; EntryPointCache keeps them per contract address.
//
// # References
//
// For more information about the encodings, see:
//   - https://tezos.gitlab.io/shell/p2p_api.html (binary schema)
//   - https://tezos.gitlab.io/active/michelson.html (Michelson types)
package tezos
