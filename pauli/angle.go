package pauli

import "fmt"

// Angle is a two-case tagged union: either a literal rotation angle, or
// a named symbol scaled by an explicit coefficient. The zero value is
// Literal(0).
//
// Literal angles store the final, already-scaled value. Symbolic angles
// store a coefficient relative to the named variable (default 1.0), so
// one variable can be reused at several weights and later resolved from
// a single name→value binding.
type Angle struct {
	// Name is the symbol name; empty for literal angles.
	Name string
	// Coefficient multiplies the bound value of Name. Meaningful only
	// while IsSymbol() is true.
	Coefficient float64
	// Value is the literal angle. Meaningful only while IsSymbol() is
	// false.
	Value float64
}

// Literal returns a literal Angle of value v.
func Literal(v float64) Angle { return Angle{Value: v, Coefficient: 1} }

// Symbol returns a symbolic Angle for the named variable at unit
// coefficient.
func Symbol(name string) Angle { return Angle{Name: name, Coefficient: 1} }

// ScaledSymbol returns a symbolic Angle for the named variable at the
// given coefficient.
func ScaledSymbol(name string, coeff float64) Angle {
	return Angle{Name: name, Coefficient: coeff}
}

// IsSymbol reports whether the angle is symbolic (unresolved).
func (a Angle) IsSymbol() bool { return a.Name != "" }

// Scale returns the angle multiplied by f: a literal scales its value,
// a symbol scales its coefficient while keeping the name.
func (a Angle) Scale(f float64) Angle {
	if a.IsSymbol() {
		return Angle{Name: a.Name, Coefficient: a.Coefficient * f}
	}

	return Angle{Value: a.Value * f, Coefficient: a.Coefficient}
}

// Scaled returns the angle's effective numeric value with symbols taken
// at their base unit 1.0: the literal value, or the bare coefficient.
func (a Angle) Scaled() float64 {
	if a.IsSymbol() {
		return a.Coefficient
	}

	return a.Value
}

// Resolve looks the symbol name up in bindings and, when found, returns
// the resolved literal Coefficient·bindings[Name] together with true.
// Literal angles and unbound symbols are returned unchanged with false.
// Complexity: O(1).
func (a Angle) Resolve(bindings map[string]float64) (Angle, bool) {
	if !a.IsSymbol() {
		return a, false
	}
	v, ok := bindings[a.Name]
	if !ok {
		return a, false
	}

	return Literal(a.Coefficient * v), true
}

// String renders the angle for diagnostics: "1.5708" for literals,
// "0.5000*theta" for symbols.
func (a Angle) String() string {
	if a.IsSymbol() {
		return fmt.Sprintf("%.4f*%s", a.Coefficient, a.Name)
	}

	return fmt.Sprintf("%.4f", a.Value)
}
