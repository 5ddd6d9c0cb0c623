// Package binon implements the BinON binary serialization format: a compact,
// self-describing encoding for dynamically typed values drawn from a fixed
// universe of kinds (null, bool, int, float, buffer, str, list, dict).
//
// Components:
//   - Value: a flat tagged union over the eight supported kinds.
//   - CodeByte: one-byte header splitting base type (4 bits) and subtype (4 bits).
//   - VarUInt / VarSInt: the unary-prefix variable-length integer codecs that
//     back every length prefix and every Int payload.
//   - The per-kind codecs (bool, int, float, buffer, str, list, dict), each with
//     a "base" (unspecialized) and, where applicable, a "specialized" tighter
//     wire form.
//   - The specialization optimizer, which walks a Value tree and chooses the
//     tightest legal codec per node when Marshal is called with specialize=true.
//
// Wire format:
//
//	codeByte [ data ]
//
// A top-level stream is exactly one encoded Value; there is no trailing
// delimiter and no framing of multiple values (see Non-goals in SPEC_FULL.md).
//
// Usage:
//
//	b, err := binon.Marshal(binon.Int(42), true)
//	v, err := binon.Unmarshal(b)
package binon
