// Package gates models abstract quantum gates and flattens them into
// primitive generator rotations.
//
// What:
//
//   - Kind is a closed enumeration of supported gate kinds: the Pauli
//     gates X/Y/Z, Hadamard, the axis rotations Rx/Ry/Rz, and raw
//     exponentiated-Pauli gates (ExpPauli).
//   - Gate couples a Kind with its target, optional control qubits, and
//     an angle parameter (literal or symbolic).
//   - Decompose maps one Gate to its fixed sequence of pauli.Rotations;
//     DecomposeCircuit flattens a whole gate list atomically.
//
// Why:
//
//   - The wire format speaks only primitive rotations. Each gate kind
//     has a fixed, total decomposition rule, so the mapping is a closed
//     switch of pure functions — exhaustively testable, with no dynamic
//     dispatch.
//
// Decomposition rules:
//
//   - Rx/Ry/Rz: the axis generator on the target; each control c
//     contributes a (1−Z_c)/2 projector, expanded into 2^k rotations
//     whose coefficients share the gate's angle (and its symbol name,
//     when symbolic).
//   - X/Y/Z: as above with unit angle and the generator offset (P−1),
//     which adds the projector's Z-only terms; the global-phase term is
//     dropped. CNOT(c,t) is X(t) controlled on c and yields exactly
//     X(t)@0.5, Z(c)X(t)@−0.5, Z(c)@0.5.
//   - H: the fixed compile Ry(−π/4) · Rz(π) · Ry(+π/4) on the target,
//     controls riding on the Z part only; all angles literal.
//   - ExpPauli: the stored word and angle verbatim (controls expand as
//     for rotations).
//
// Errors:
//
//   - ErrUnknownGate: the Kind is outside the supported set.
//   - ErrControlOverlap: a control qubit repeats or hits a target qubit.
//   - Word construction errors from package pauli (empty word, negative
//     qubit) are wrapped and propagated.
//
// DecomposeCircuit is atomic: on any error no partial circuit is
// returned.
package gates
