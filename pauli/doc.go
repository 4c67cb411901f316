// Package pauli defines the value types shared by the encoder and the
// circuit generator: Pauli axes, qubit-indexed terms, canonical Pauli
// words, literal/symbolic angles, and primitive rotations.
//
// What:
//
//   - Axis enumerates the three Pauli operators X, Y, Z.
//   - Term pairs an Axis with a non-negative qubit index.
//   - Word is a product of Terms on distinct qubits, kept in canonical
//     ascending-qubit order for deterministic serialization.
//   - Angle is a two-case tagged union: a literal value, or a named
//     symbol scaled by an explicit coefficient.
//   - Rotation is one exponentiated-generator gate (Word + Angle);
//     Circuit is an ordered, earliest-first sequence of Rotations.
//
// Why:
//
//   - Rotations are the atomic unit of the wire format; every composite
//     gate is flattened into them before encoding.
//   - The explicit coefficient on symbolic angles lets several rotations
//     reuse one variable at different weights (e.g. a controlled
//     rotation splitting an angle into two half-weight parts) and still
//     resolve consistently from a single binding.
//
// All types are immutable value objects; none holds hidden state.
//
// Errors:
//
//   - ErrEmptyWord: a Word must contain at least one Term.
//   - ErrNegativeQubit: qubit indices are non-negative.
//   - ErrDuplicateQubit: a Word holds at most one Term per qubit.
package pauli
