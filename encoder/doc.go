// Package encoder implements the reversible textual wire format for
// primitive-rotation circuits.
//
// What:
//
//   - Encoder serializes a pauli.Circuit to a string and parses it back,
//     one token per rotation:
//
//     token := [symbol_name] angle_separator numeric_angle pauli_word
//     pauli_word := (axis_letter '(' qubit_index ')')+
//
//     Tokens are joined by the gate separator, including one trailing
//     separator after the last token. Defaults: angle separator "@",
//     gate separator "|".
//   - Numeric angles are folded into [0, 4π) — the period of a
//     generator rotation — and printed with 4 decimal digits. The
//     rounding is a documented precision bound of the format.
//   - A rotation whose symbol is absent from the caller's bindings keeps
//     its name as a token prefix; the numeric field then holds the
//     symbol's scaled coefficient, so the string stays partially
//     evaluated and a later binding can still resolve it. A bound
//     symbol is emitted as a plain literal token.
//   - Encode is the composite entry point: it flattens a gates.Circuit
//     through the generator basis, then serializes.
//
// Why:
//
//   - The format is the module's only persisted artifact; it carries no
//     self-describing metadata, so both sides must agree on separators
//     out of band. Separators are validated at construction against the
//     token alphabet so no input can make the grammar ambiguous.
//
// Decoding never fails on an unresolved symbol — it is returned as a
// symbolic angle. Decoding fails, atomically and with the offending
// token, on structural errors only.
//
// Errors:
//
//   - ErrBadSeparator: separator empty, colliding with the token
//     alphabet, or overlapping the other separator.
//   - ErrBadSymbolName: symbolic angle with a name the grammar cannot
//     carry.
//   - ErrNonCanonicalWord: serialize input word out of canonical order.
//   - ErrNoAngleSeparator, ErrBadAngle, ErrMalformedWord: parse errors,
//     reported with the offending token.
package encoder
