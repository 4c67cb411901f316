// Package connectivity resolves qubit-topology specifications into
// concrete partner maps for two-qubit generator placement.
//
// What:
//
//   - Graph maps each qubit index to the qubits it may pair with in a
//     two-qubit generator.
//   - Resolve builds a Graph from a topology keyword over n qubits:
//     "all_to_all" (every distinct pair), "local_line" (qubit i pairs
//     with i±1, the boundary qubits having a single neighbor), and
//     "local_ring" (a line with qubits 0 and n−1 also connected).
//   - FromMap deep-copies a caller-supplied literal map.
//
// Why:
//
//   - Hardware restricts which qubit pairs can interact; the random
//     circuit generator consults the Graph so every emitted two-qubit
//     rotation is legal on the requested topology.
//
// Literal maps are passed through unvalidated: no symmetry closure, no
// duplicate removal, no completeness check. Redundant or missing
// reciprocal entries are the caller's responsibility and deliberately
// shift the generator's sampling exactly as written. The same applies
// to the duplicate partner entries "local_ring" produces over two
// qubits.
//
// Errors:
//
//   - ErrUnknownTopology: keyword outside the recognized set.
//   - ErrTooFewQubits: topology needs more qubits than requested.
package connectivity
