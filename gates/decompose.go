// Package gates — the GeneratorBasis: a static, total mapping from gate
// kinds to primitive-rotation sequences. Every rule is a pure function
// of the gate's qubits and angle; the table is fixed at compile time
// and never mutated.
package gates

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/kottmanj/genencoder/pauli"
)

// axisOfKind maps an axis-bound Kind to its Pauli axis.
// The second result is false for kinds without a single axis (H,
// ExpPauli, unknown).
func axisOfKind(k Kind) (pauli.Axis, bool) {
	switch k {
	case KindX, KindRx:
		return pauli.X, true
	case KindY, KindRy:
		return pauli.Y, true
	case KindZ, KindRz:
		return pauli.Z, true
	default:
		return 0, false
	}
}

// Decompose flattens one gate into its primitive rotations, in gate
// application order. The rule per Kind is fixed and total; see the
// package documentation for the identities used.
// Complexity: O(2^k · n) for k controls and n word terms.
func Decompose(g Gate) (pauli.Circuit, error) {
	switch g.Kind {
	case KindRx, KindRy, KindRz:
		axis, _ := axisOfKind(g.Kind)
		return projectorExpansion(pauli.Word{{Qubit: g.Target, Axis: axis}}, g.Controls, g.Angle, false)

	case KindX, KindY, KindZ:
		axis, _ := axisOfKind(g.Kind)
		// Non-parametrized Pauli gates carry an implicit unit angle; the
		// generator offset (P−1) adds the projector's Z-only terms.
		return projectorExpansion(pauli.Word{{Qubit: g.Target, Axis: axis}}, g.Controls, pauli.Literal(1), true)

	case KindH:
		return decomposeHadamard(g)

	case KindExpPauli:
		if len(g.Word) == 0 {
			return nil, fmt.Errorf("gates: ExpPauli: %w", pauli.ErrEmptyWord)
		}
		return projectorExpansion(g.Word, g.Controls, g.Angle, false)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGate, g.Kind)
	}
}

// decomposeHadamard applies the fixed compile
// Ry(−π/4) · Rz(π) · Ry(+π/4) on the target, with any controls riding
// only on the Z part, then decomposes each part by the rotation rule.
func decomposeHadamard(g Gate) (pauli.Circuit, error) {
	parts := Circuit{
		Ry(pauli.Literal(-math.Pi/4), g.Target),
		Rz(pauli.Literal(math.Pi), g.Target).Controlled(g.Controls...),
		Ry(pauli.Literal(math.Pi/4), g.Target),
	}
	out := make(pauli.Circuit, 0, 2+len(g.Controls))
	for _, p := range parts {
		rs, err := Decompose(p)
		if err != nil {
			return nil, err
		}
		out = append(out, rs...)
	}

	return out, nil
}

// projectorExpansion expands ∏_c (1−Z_c)/2 applied to the generator
// word. Control subsets are enumerated in binary-counter order (bit i
// selects controls[i]); subset S contributes coefficient (−1)^|S| / 2^k
// on word·Z_S. With offset set (the (P−1) generator of unit-parameter
// gates), the mirrored −(−1)^|S|/2^k · Z_S terms follow, the empty-S
// global phase dropped.
func projectorExpansion(word pauli.Word, controls []int, angle pauli.Angle, offset bool) (pauli.Circuit, error) {
	if err := validateControls(word, controls); err != nil {
		return nil, err
	}

	k := len(controls)
	scale := 1.0 / float64(uint(1)<<uint(k))
	out := make(pauli.Circuit, 0, (1<<uint(k))+1)

	for mask := 0; mask < 1<<uint(k); mask++ {
		terms := make([]pauli.Term, 0, len(word)+k)
		terms = append(terms, word...)
		for i := 0; i < k; i++ {
			if mask&(1<<uint(i)) != 0 {
				terms = append(terms, pauli.Term{Qubit: controls[i], Axis: pauli.Z})
			}
		}
		w, err := pauli.NewWord(terms...)
		if err != nil {
			return nil, fmt.Errorf("gates: %w", err)
		}
		out = append(out, pauli.Rotation{Word: w, Angle: angle.Scale(sign(mask) * scale)})
	}

	if offset {
		// Z-only terms of the −1 offset; mask 0 is the global phase.
		for mask := 1; mask < 1<<uint(k); mask++ {
			terms := make([]pauli.Term, 0, k)
			for i := 0; i < k; i++ {
				if mask&(1<<uint(i)) != 0 {
					terms = append(terms, pauli.Term{Qubit: controls[i], Axis: pauli.Z})
				}
			}
			w, err := pauli.NewWord(terms...)
			if err != nil {
				return nil, fmt.Errorf("gates: %w", err)
			}
			out = append(out, pauli.Rotation{Word: w, Angle: angle.Scale(-sign(mask) * scale)})
		}
	}

	return out, nil
}

// sign returns (−1)^popcount(mask).
func sign(mask int) float64 {
	if bits.OnesCount(uint(mask))%2 == 1 {
		return -1
	}

	return 1
}

// validateControls checks that controls are pairwise distinct and
// disjoint from the generator word's qubits. Negative indices are left
// to pauli.NewWord, which rejects them with context.
func validateControls(word pauli.Word, controls []int) error {
	for i, c := range controls {
		for _, t := range word {
			if t.Qubit == c {
				return fmt.Errorf("%w: qubit %d", ErrControlOverlap, c)
			}
		}
		for j := 0; j < i; j++ {
			if controls[j] == c {
				return fmt.Errorf("%w: qubit %d", ErrControlOverlap, c)
			}
		}
	}

	return nil
}

// DecomposeCircuit flattens a whole gate list into one rotation
// sequence, preserving order. The result is buffered internally and
// discarded on the first error, so no partial circuit escapes.
// Complexity: sum of the per-gate costs.
func DecomposeCircuit(c Circuit) (pauli.Circuit, error) {
	out := make(pauli.Circuit, 0, len(c))
	for i, g := range c {
		rs, err := Decompose(g)
		if err != nil {
			return nil, fmt.Errorf("gates: gate %d (%s): %w", i, g.Kind, err)
		}
		out = append(out, rs...)
	}

	return out, nil
}
