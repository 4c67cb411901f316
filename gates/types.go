// Package gates defines the closed gate-kind enumeration, the Gate
// value type, and its constructors. Decomposition lives in decompose.go.
package gates

import (
	"errors"
	"fmt"

	"github.com/kottmanj/genencoder/pauli"
)

// Sentinel errors for gate decomposition.
var (
	// ErrUnknownGate indicates a Kind outside the supported set.
	ErrUnknownGate = errors.New("gates: unknown gate kind")

	// ErrControlOverlap indicates a control qubit repeated or colliding
	// with a target qubit of the same gate.
	ErrControlOverlap = errors.New("gates: control qubit overlaps target or another control")
)

// Kind enumerates the supported gate kinds. The set is closed: every
// Kind has exactly one decomposition rule.
type Kind int

const (
	// KindX is the Pauli-X gate (NOT).
	KindX Kind = iota
	// KindY is the Pauli-Y gate.
	KindY
	// KindZ is the Pauli-Z gate.
	KindZ
	// KindH is the Hadamard gate.
	KindH
	// KindRx is a rotation about the X axis.
	KindRx
	// KindRy is a rotation about the Y axis.
	KindRy
	// KindRz is a rotation about the Z axis.
	KindRz
	// KindExpPauli is a raw exponentiated Pauli-word rotation.
	KindExpPauli
)

// String returns the conventional gate name for the kind.
func (k Kind) String() string {
	switch k {
	case KindX:
		return "X"
	case KindY:
		return "Y"
	case KindZ:
		return "Z"
	case KindH:
		return "H"
	case KindRx:
		return "Rx"
	case KindRy:
		return "Ry"
	case KindRz:
		return "Rz"
	case KindExpPauli:
		return "ExpPauli"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Gate is one abstract circuit gate: a kind, its target qubit, optional
// control qubits, and an angle parameter. ExpPauli gates carry their
// generator in Word instead of Target.
type Gate struct {
	// Kind selects the decomposition rule.
	Kind Kind
	// Target is the qubit the gate acts on (ignored for KindExpPauli).
	Target int
	// Controls lists control qubits; empty means uncontrolled.
	Controls []int
	// Angle is the rotation parameter for Rx/Ry/Rz and ExpPauli gates.
	Angle pauli.Angle
	// Word is the generator of a KindExpPauli gate.
	Word pauli.Word
}

// Circuit is an ordered gate list, earliest-first.
type Circuit []Gate

// X returns a Pauli-X (NOT) gate on the target qubit.
func X(target int) Gate { return Gate{Kind: KindX, Target: target} }

// Y returns a Pauli-Y gate on the target qubit.
func Y(target int) Gate { return Gate{Kind: KindY, Target: target} }

// Z returns a Pauli-Z gate on the target qubit.
func Z(target int) Gate { return Gate{Kind: KindZ, Target: target} }

// H returns a Hadamard gate on the target qubit.
func H(target int) Gate { return Gate{Kind: KindH, Target: target} }

// Rx returns a rotation about X by angle on the target qubit.
func Rx(angle pauli.Angle, target int) Gate {
	return Gate{Kind: KindRx, Target: target, Angle: angle}
}

// Ry returns a rotation about Y by angle on the target qubit.
func Ry(angle pauli.Angle, target int) Gate {
	return Gate{Kind: KindRy, Target: target, Angle: angle}
}

// Rz returns a rotation about Z by angle on the target qubit.
func Rz(angle pauli.Angle, target int) Gate {
	return Gate{Kind: KindRz, Target: target, Angle: angle}
}

// CNOT returns a controlled-NOT: X on target, controlled on control.
func CNOT(control, target int) Gate { return X(target).Controlled(control) }

// CZ returns a controlled-Z gate.
func CZ(control, target int) Gate { return Z(target).Controlled(control) }

// CRx returns a controlled rotation about X.
func CRx(angle pauli.Angle, control, target int) Gate {
	return Rx(angle, target).Controlled(control)
}

// CRy returns a controlled rotation about Y.
func CRy(angle pauli.Angle, control, target int) Gate {
	return Ry(angle, target).Controlled(control)
}

// CRz returns a controlled rotation about Z.
func CRz(angle pauli.Angle, control, target int) Gate {
	return Rz(angle, target).Controlled(control)
}

// ExpPauli returns a raw exponentiated-generator gate for the given
// word and angle.
func ExpPauli(word pauli.Word, angle pauli.Angle) Gate {
	return Gate{Kind: KindExpPauli, Word: word, Angle: angle}
}

// Controlled returns a copy of the gate with the given control qubits
// appended. The receiver is not mutated.
func (g Gate) Controlled(controls ...int) Gate {
	cs := make([]int, 0, len(g.Controls)+len(controls))
	cs = append(cs, g.Controls...)
	cs = append(cs, controls...)
	g.Controls = cs

	return g
}
