// Package encoder — wire-format parsing.
package encoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kottmanj/genencoder/pauli"
)

// Deserialize parses a wire string back into a circuit. The input is
// split on the gate separator; empty and whitespace-only tokens
// (including the one after the terminal separator) are skipped.
//
// Each token resolves its angle from the prefix: no prefix means a
// literal; a prefix names a symbol. A named symbol present in bindings
// becomes Literal(numeric·bindings[name]) — the numeric field already
// carries the symbol's scaled coefficient, so no further multiplier is
// applied. An absent symbol is preserved as a symbolic angle, never an
// error.
//
// The call is atomic: the first structural error aborts with the
// offending token and no partial circuit.
// Complexity: O(len(s)).
func (e *Encoder) Deserialize(s string, bindings map[string]float64) (pauli.Circuit, error) {
	tokens := strings.Split(s, e.gateSep)
	out := make(pauli.Circuit, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		r, err := e.parseToken(tok, bindings)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// parseToken parses one "[name]<angleSep><numeric><word>" token.
func (e *Encoder) parseToken(tok string, bindings map[string]float64) (pauli.Rotation, error) {
	idx := strings.Index(tok, e.angleSep)
	if idx < 0 {
		return pauli.Rotation{}, fmt.Errorf("%w: %q", ErrNoAngleSeparator, tok)
	}
	prefix := tok[:idx]
	rest := tok[idx+len(e.angleSep):]

	numeric, wordPart, err := splitAngle(rest)
	if err != nil {
		return pauli.Rotation{}, fmt.Errorf("%w: token %q", err, tok)
	}

	word, err := parseWord(wordPart)
	if err != nil {
		return pauli.Rotation{}, fmt.Errorf("%w: token %q", err, tok)
	}

	angle := pauli.Literal(numeric)
	if prefix != "" {
		if v, ok := bindings[prefix]; ok {
			angle = pauli.Literal(numeric * v)
		} else {
			angle = pauli.ScaledSymbol(prefix, numeric)
		}
	}

	return pauli.Rotation{Word: word, Angle: angle}, nil
}

// splitAngle cuts rest into its leading numeric field and the trailing
// pauli word. The numeric field is a maximal run of digits, '.' and an
// optional leading sign.
func splitAngle(rest string) (float64, string, error) {
	i := 0
	if i < len(rest) && (rest[i] == '-' || rest[i] == '+') {
		i++
	}
	for i < len(rest) && (rest[i] == '.' || (rest[i] >= '0' && rest[i] <= '9')) {
		i++
	}
	v, err := strconv.ParseFloat(rest[:i], 64)
	if err != nil {
		return 0, "", ErrBadAngle
	}

	return v, rest[i:], nil
}

// parseWord parses "(axis '(' digits ')')+" into a canonical Word.
func parseWord(s string) (pauli.Word, error) {
	if s == "" {
		return nil, ErrMalformedWord
	}
	var terms []pauli.Term
	i := 0
	for i < len(s) {
		axis, ok := pauli.AxisOf(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q", ErrMalformedWord, s[i])
		}
		i++
		if i >= len(s) || s[i] != '(' {
			return nil, fmt.Errorf("%w: missing '('", ErrMalformedWord)
		}
		i++
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i || j >= len(s) || s[j] != ')' {
			return nil, fmt.Errorf("%w: bad qubit index", ErrMalformedWord)
		}
		q, err := strconv.Atoi(s[i:j])
		if err != nil {
			return nil, fmt.Errorf("%w: bad qubit index", ErrMalformedWord)
		}
		terms = append(terms, pauli.Term{Qubit: q, Axis: axis})
		i = j + 1
	}

	w, err := pauli.NewWord(terms...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWord, err)
	}

	return w, nil
}
