// Package pauli defines axes, terms, words, angles, and rotations.
// This file declares the Pauli-word side of the model and its sentinel
// errors; angles live in angle.go.
package pauli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for Pauli-word construction.
var (
	// ErrEmptyWord indicates a Word with no Terms.
	ErrEmptyWord = errors.New("pauli: word must contain at least one term")

	// ErrNegativeQubit indicates a Term with a negative qubit index.
	ErrNegativeQubit = errors.New("pauli: qubit index must be non-negative")

	// ErrDuplicateQubit indicates two Terms of one Word sharing a qubit.
	ErrDuplicateQubit = errors.New("pauli: duplicate qubit in word")
)

// Axis identifies one of the three Pauli operators.
type Axis byte

const (
	// X is the Pauli-X axis.
	X Axis = 'X'
	// Y is the Pauli-Y axis.
	Y Axis = 'Y'
	// Z is the Pauli-Z axis.
	Z Axis = 'Z'
)

// String returns the single-letter name of the axis ("X", "Y" or "Z").
func (a Axis) String() string { return string(byte(a)) }

// AxisOf maps an upper-case axis letter to its Axis.
// The second result reports whether c names a Pauli axis.
// Complexity: O(1).
func AxisOf(c byte) (Axis, bool) {
	switch Axis(c) {
	case X, Y, Z:
		return Axis(c), true
	default:
		return 0, false
	}
}

// Term is a single Pauli factor: one axis acting on one qubit.
type Term struct {
	// Qubit is the non-negative index of the qubit the factor acts on.
	Qubit int
	// Axis is the Pauli operator applied to Qubit.
	Axis Axis
}

// String renders the term as "X(3)".
func (t Term) String() string { return fmt.Sprintf("%s(%d)", t.Axis, t.Qubit) }

// Word is a product of Pauli Terms on distinct qubits, stored in
// canonical ascending-qubit order. Term order is irrelevant to the
// operator's meaning, but the canonical order makes serialization
// deterministic.
type Word []Term

// NewWord builds a canonical Word from the given terms: it validates
// that at least one term is present, that every qubit index is
// non-negative, and that no qubit appears twice, then returns a fresh
// slice sorted by ascending qubit. The input is not mutated.
// Complexity: O(n log n) time, O(n) space.
func NewWord(terms ...Term) (Word, error) {
	if len(terms) == 0 {
		return nil, ErrEmptyWord
	}
	w := make(Word, len(terms))
	copy(w, terms)
	sort.Slice(w, func(i, j int) bool { return w[i].Qubit < w[j].Qubit })
	for i, t := range w {
		if t.Qubit < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeQubit, t.Qubit)
		}
		if i > 0 && w[i-1].Qubit == t.Qubit {
			return nil, fmt.Errorf("%w: qubit %d", ErrDuplicateQubit, t.Qubit)
		}
	}

	return w, nil
}

// String renders the word in canonical form, e.g. "Z(2)X(4)" for a word
// on qubits 2 and 4. An empty word renders as "".
func (w Word) String() string {
	var b strings.Builder
	for _, t := range w {
		b.WriteString(t.String())
	}

	return b.String()
}

// Qubits returns the word's qubit indices in ascending order.
func (w Word) Qubits() []int {
	qs := make([]int, len(w))
	for i, t := range w {
		qs[i] = t.Qubit
	}

	return qs
}

// Equal reports whether two canonical words are identical.
func (w Word) Equal(o Word) bool {
	if len(w) != len(o) {
		return false
	}
	for i := range w {
		if w[i] != o[i] {
			return false
		}
	}

	return true
}

// Rotation is one primitive rotation: the exponential of a Pauli-word
// generator by an Angle. Word must be non-empty for a valid Rotation.
type Rotation struct {
	Word  Word
	Angle Angle
}

// Circuit is an ordered sequence of Rotations. Insertion order is the
// gate application order, earliest first. Circuit is the sole artifact
// exchanged with the encoder and produced by the generator.
type Circuit []Rotation
