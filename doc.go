// Package genencoder is a generator-based textual encoding for
// parametrized quantum circuits, together with a connectivity-aware
// random circuit synthesizer.
//
// A circuit is flattened into a sequence of primitive rotations — one
// exponentiated Pauli generator each — and written as an unambiguous,
// whitespace-free string such as
//
//	a@1.0000X(0)|@3.1416Z(0)|b@0.5000X(2)|b@12.0664Z(1)X(2)|
//
// The string is reversible: decoding reproduces the rotation sequence,
// and symbolic angle parameters survive the round trip until a
// name→value binding resolves them.
//
// The module is organized into small topic packages:
//
//	pauli/        — Pauli words, literal/symbolic angles, rotations
//	gates/        — abstract gate model and its generator decomposition
//	encoder/      — the wire format: serialize and parse rotation sequences
//	connectivity/ — qubit topologies (all_to_all, local_line, local_ring)
//	circuitgen/   — random, connectivity-legal circuit generation
//
// Everything is pure Go, synchronous, and free of I/O: encoding,
// decoding and generation either fully succeed or fail with a sentinel
// error, leaving no partial results behind.
package genencoder
