// Package encoder — Encoder construction and serialization.
package encoder

import (
	"fmt"
	"math"
	"strings"

	"github.com/kottmanj/genencoder/gates"
	"github.com/kottmanj/genencoder/pauli"
)

// fullPeriod is the period of an exponentiated-generator rotation.
// Every serialized numeric angle is folded into [0, fullPeriod).
const fullPeriod = 4 * math.Pi

// Encoder serializes and parses rotation circuits using a fixed pair of
// separators. A constructed Encoder is immutable; Serialize, Encode and
// Deserialize are reentrant and safe for shared read-only use.
type Encoder struct {
	angleSep string
	gateSep  string
}

// New validates the separators and returns an Encoder. Empty fields
// fall back to the defaults. Returns ErrBadSeparator when a separator
// is empty after defaulting, contains a token-alphabet rune, equals the
// other separator, or is a substring of it.
// Complexity: O(len separators).
func New(opts Options) (*Encoder, error) {
	angleSep := opts.AngleSeparator
	if angleSep == "" {
		angleSep = DefaultAngleSeparator
	}
	gateSep := opts.GateSeparator
	if gateSep == "" {
		gateSep = DefaultGateSeparator
	}

	for _, sep := range []string{angleSep, gateSep} {
		for _, r := range sep {
			if inTokenAlphabet(r) {
				return nil, fmt.Errorf("%w: %q collides with the token alphabet", ErrBadSeparator, sep)
			}
		}
	}
	if strings.Contains(angleSep, gateSep) || strings.Contains(gateSep, angleSep) {
		return nil, fmt.Errorf("%w: %q and %q overlap", ErrBadSeparator, angleSep, gateSep)
	}

	return &Encoder{angleSep: angleSep, gateSep: gateSep}, nil
}

// AngleSeparator returns the configured angle separator.
func (e *Encoder) AngleSeparator() string { return e.angleSep }

// GateSeparator returns the configured gate separator.
func (e *Encoder) GateSeparator() string { return e.gateSep }

// inTokenAlphabet reports whether r may occur inside a token: Pauli
// letters, symbol-name characters (letters, digits, '_'), the decimal
// point, and the word parentheses.
func inTokenAlphabet(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '.' || r == '(' || r == ')':
		return true
	default:
		return false
	}
}

// validSymbolName reports whether name fits the grammar's identifier
// alphabet: a letter or '_' followed by letters, digits or '_'.
func validSymbolName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		letter := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_'
		digit := r >= '0' && r <= '9'
		if !letter && !(digit && i > 0) {
			return false
		}
	}

	return true
}

// fixPeriodicity folds an angle into [0, fullPeriod).
func fixPeriodicity(angle float64) float64 {
	a := math.Mod(angle, fullPeriod)
	if a < 0 {
		a += fullPeriod
	}

	return a
}

// Serialize renders a circuit as one token per rotation, each followed
// by the gate separator (the last one included). Symbols found in
// bindings are resolved to plain literal tokens; the rest keep their
// name as a prefix and their scaled coefficient as the numeric field.
// Numeric angles are folded into [0, 4π) and printed to 4 decimals.
//
// The call is atomic: any invalid rotation aborts with an error and an
// empty result.
// Complexity: O(total terms) time and output space.
func (e *Encoder) Serialize(c pauli.Circuit, bindings map[string]float64) (string, error) {
	var b strings.Builder
	for i, r := range c {
		if err := checkCanonical(r.Word); err != nil {
			return "", fmt.Errorf("encoder: rotation %d: %w", i, err)
		}

		var prefix string
		var numeric float64
		switch a := r.Angle; {
		case a.IsSymbol():
			if !validSymbolName(a.Name) {
				return "", fmt.Errorf("%w: %q", ErrBadSymbolName, a.Name)
			}
			if v, ok := bindings[a.Name]; ok {
				numeric = a.Coefficient * v
			} else {
				prefix = a.Name
				numeric = a.Coefficient
			}
		default:
			numeric = a.Value
		}

		b.WriteString(prefix)
		b.WriteString(e.angleSep)
		fmt.Fprintf(&b, "%.4f", fixPeriodicity(numeric))
		b.WriteString(r.Word.String())
		b.WriteString(e.gateSep)
	}

	return b.String(), nil
}

// Encode flattens a gate circuit through the generator basis and
// serializes the result. It is the encode arm of the original callable:
// circuits encode, strings (see Deserialize) decode.
func (e *Encoder) Encode(c gates.Circuit, bindings map[string]float64) (string, error) {
	rs, err := gates.DecomposeCircuit(c)
	if err != nil {
		return "", err
	}

	return e.Serialize(rs, bindings)
}

// checkCanonical enforces the serialize-side word invariant: non-empty,
// non-negative qubits, strictly ascending order.
func checkCanonical(w pauli.Word) error {
	if len(w) == 0 {
		return pauli.ErrEmptyWord
	}
	if w[0].Qubit < 0 {
		return fmt.Errorf("%w: %d", pauli.ErrNegativeQubit, w[0].Qubit)
	}
	for i := 1; i < len(w); i++ {
		if w[i].Qubit <= w[i-1].Qubit {
			return fmt.Errorf("%w: %s", ErrNonCanonicalWord, w)
		}
	}

	return nil
}
