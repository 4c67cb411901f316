// Package circuitgen synthesizes random primitive-rotation circuits
// that are structurally legal under a qubit-connectivity constraint.
//
// What:
//
//   - Config declares the generation parameters: depth (number of
//     rotations), qubit count, a topology keyword or literal partner
//     map, the allowed generator shapes ("Y", "XY", …), fixed-angle
//     overrides per shape, and an RNG seed. Config carries yaml tags;
//     ParseConfig reads the file form.
//   - Generator, built by New, emits a fresh pauli.Circuit of exactly
//     Depth rotations per Generate call. Shapes and qubits are drawn
//     uniformly; two-qubit shapes draw their partner uniformly from the
//     connectivity graph, so every pair emitted is legal.
//
// Why:
//
//   - Randomized circuit families over restricted connectivity are the
//     standard raw material for hardware-shaped experiments; the
//     encoder turns each sample into its wire string.
//
// Defaults (applied by New):
//
//   - Topology: "all_to_all" when no topology and no literal map given.
//   - Generators: X, Y, Z, XX, YY, ZZ, XY, XZ, YZ.
//   - Depth: NQubits when zero.
//   - Seed: 0 selects a fixed default seed; same seed, same circuits.
//
// Shape labels and fix-angle keys are normalized by upper-casing and
// sorting their axes, so "yx" and "XY" name the same shape. Angles
// without a fixed override are sampled uniformly from [0, 2π).
//
// Concurrency: a Generator owns one *rand.Rand, which is not
// goroutine-safe. Do not call Generate on one Generator from several
// goroutines without external synchronization.
//
// Errors:
//
//   - ErrBadDepth, ErrBadQubits, ErrBadShape, ErrUnknownFixAngle,
//     ErrBadConfig: construction-time configuration failures (topology
//     errors propagate from package connectivity).
//   - ErrNoConnectedPair: no qubit has a legal partner for a requested
//     two-qubit shape; the topology cannot host the circuit. Fatal and
//     atomic — Generate returns no partial circuit.
package circuitgen
