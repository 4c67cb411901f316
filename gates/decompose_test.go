package gates_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kottmanj/genencoder/gates"
	"github.com/kottmanj/genencoder/pauli"
)

// TestDecompose_Rotation verifies the identity rule for uncontrolled
// axis rotations: one rotation, same angle, coefficient 1.
func TestDecompose_Rotation(t *testing.T) {
	rs, err := gates.Decompose(gates.Rx(pauli.Symbol("a"), 0))
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.Equal(t, "X(0)", rs[0].Word.String())
	require.True(t, rs[0].Angle.IsSymbol())
	require.Equal(t, "a", rs[0].Angle.Name)
	require.Equal(t, 1.0, rs[0].Angle.Coefficient)

	rs, err = gates.Decompose(gates.Rz(pauli.Literal(math.Pi/3), 5))
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.Equal(t, "Z(5)", rs[0].Word.String())
	require.InDelta(t, math.Pi/3, rs[0].Angle.Value, 1e-12)
}

// TestDecompose_Hadamard checks the fixed 3-rotation compile
// Y(−π/4), Z(π), Y(+π/4) for several targets.
func TestDecompose_Hadamard(t *testing.T) {
	for _, target := range []int{0, 3, 11} {
		rs, err := gates.Decompose(gates.H(target))
		require.NoError(t, err)
		require.Len(t, rs, 3)

		wantAxis := []pauli.Axis{pauli.Y, pauli.Z, pauli.Y}
		wantAngle := []float64{-math.Pi / 4, math.Pi, math.Pi / 4}
		for i, r := range rs {
			require.Len(t, r.Word, 1)
			require.Equal(t, wantAxis[i], r.Word[0].Axis)
			require.Equal(t, target, r.Word[0].Qubit)
			require.False(t, r.Angle.IsSymbol(), "Hadamard angles are always literal")
			require.InDelta(t, wantAngle[i], r.Angle.Value, 1e-12)
		}
	}
}

// TestDecompose_CNOT pins the CNOT expansion to the reference order and
// coefficients: X(t)@0.5, Z(c)X(t)@−0.5, Z(c)@0.5.
func TestDecompose_CNOT(t *testing.T) {
	rs, err := gates.Decompose(gates.CNOT(2, 4))
	require.NoError(t, err)
	require.Len(t, rs, 3)

	require.Equal(t, "X(4)", rs[0].Word.String())
	require.InDelta(t, 0.5, rs[0].Angle.Value, 1e-12)

	require.Equal(t, "Z(2)X(4)", rs[1].Word.String())
	require.InDelta(t, -0.5, rs[1].Angle.Value, 1e-12)

	require.Equal(t, "Z(2)", rs[2].Word.String())
	require.InDelta(t, 0.5, rs[2].Angle.Value, 1e-12)
}

// TestDecompose_ControlledRotation verifies that both halves of a
// controlled rotation share the symbol name so one binding updates both.
func TestDecompose_ControlledRotation(t *testing.T) {
	rs, err := gates.Decompose(gates.CRx(pauli.Symbol("b"), 1, 2))
	require.NoError(t, err)
	require.Len(t, rs, 2)

	require.Equal(t, "X(2)", rs[0].Word.String())
	require.Equal(t, "b", rs[0].Angle.Name)
	require.Equal(t, 0.5, rs[0].Angle.Coefficient)

	require.Equal(t, "Z(1)X(2)", rs[1].Word.String())
	require.Equal(t, "b", rs[1].Angle.Name)
	require.Equal(t, -0.5, rs[1].Angle.Coefficient)
}

// TestDecompose_ControlledHadamard: controls ride on the Z part only,
// giving 4 rotations in total.
func TestDecompose_ControlledHadamard(t *testing.T) {
	rs, err := gates.Decompose(gates.H(3).Controlled(0))
	require.NoError(t, err)
	require.Len(t, rs, 4)

	require.Equal(t, "Y(3)", rs[0].Word.String())
	require.Equal(t, "Z(3)", rs[1].Word.String())
	require.InDelta(t, math.Pi/2, rs[1].Angle.Value, 1e-12)
	require.Equal(t, "Z(0)Z(3)", rs[2].Word.String())
	require.InDelta(t, -math.Pi/2, rs[2].Angle.Value, 1e-12)
	require.Equal(t, "Y(3)", rs[3].Word.String())
}

// TestDecompose_MultiControl checks the 2^k projector scaling for a
// doubly-controlled rotation: 4 terms at coefficient magnitude 1/4.
func TestDecompose_MultiControl(t *testing.T) {
	rs, err := gates.Decompose(gates.Ry(pauli.Literal(1.0), 4).Controlled(0, 2))
	require.NoError(t, err)
	require.Len(t, rs, 4)

	wantWord := []string{"Y(4)", "Z(0)Y(4)", "Z(2)Y(4)", "Z(0)Z(2)Y(4)"}
	wantSign := []float64{1, -1, -1, 1}
	for i, r := range rs {
		require.Equal(t, wantWord[i], r.Word.String())
		require.InDelta(t, wantSign[i]*0.25, r.Angle.Value, 1e-12)
	}
}

// TestDecompose_ExpPauli passes raw generator rotations through.
func TestDecompose_ExpPauli(t *testing.T) {
	w, err := pauli.NewWord(
		pauli.Term{Qubit: 0, Axis: pauli.X},
		pauli.Term{Qubit: 1, Axis: pauli.Y},
	)
	require.NoError(t, err)

	rs, err := gates.Decompose(gates.ExpPauli(w, pauli.Literal(math.Pi/2)))
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.Equal(t, "X(0)Y(1)", rs[0].Word.String())
	require.InDelta(t, math.Pi/2, rs[0].Angle.Value, 1e-12)
}

// TestDecompose_Errors covers the decomposition failure modes.
func TestDecompose_Errors(t *testing.T) {
	_, err := gates.Decompose(gates.Gate{Kind: gates.Kind(99)})
	require.ErrorIs(t, err, gates.ErrUnknownGate)

	_, err = gates.Decompose(gates.Rx(pauli.Symbol("a"), 1).Controlled(1))
	require.ErrorIs(t, err, gates.ErrControlOverlap)

	_, err = gates.Decompose(gates.Rx(pauli.Symbol("a"), 0).Controlled(2, 2))
	require.ErrorIs(t, err, gates.ErrControlOverlap)

	_, err = gates.Decompose(gates.ExpPauli(nil, pauli.Literal(1)))
	require.ErrorIs(t, err, pauli.ErrEmptyWord)

	_, err = gates.Decompose(gates.X(-1))
	require.ErrorIs(t, err, pauli.ErrNegativeQubit)
}

// TestDecomposeCircuit_Atomic: an unknown kind mid-circuit yields no
// partial output.
func TestDecomposeCircuit_Atomic(t *testing.T) {
	c := gates.Circuit{
		gates.H(0),
		{Kind: gates.Kind(42)},
		gates.X(1),
	}
	rs, err := gates.DecomposeCircuit(c)
	require.ErrorIs(t, err, gates.ErrUnknownGate)
	require.Nil(t, rs)
}

// TestDecomposeCircuit_Order preserves gate order across the flattening.
func TestDecomposeCircuit_Order(t *testing.T) {
	c := gates.Circuit{gates.H(0), gates.CNOT(2, 4), gates.Rx(pauli.Symbol("a"), 0)}
	rs, err := gates.DecomposeCircuit(c)
	require.NoError(t, err)
	require.Len(t, rs, 7) // 3 + 3 + 1

	require.Equal(t, "Y(0)", rs[0].Word.String())
	require.Equal(t, "X(4)", rs[3].Word.String())
	require.Equal(t, "X(0)", rs[6].Word.String())
}
