package connectivity_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kottmanj/genencoder/connectivity"
)

//----------------------------------------------------------------------------//
// Resolve Tests
//----------------------------------------------------------------------------//

// TestResolve_LocalLine checks the boundary and interior partner lists.
func TestResolve_LocalLine(t *testing.T) {
	g, err := connectivity.Resolve("local_line", 4)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := connectivity.Graph{
		0: {1},
		1: {2, 0},
		2: {3, 1},
		3: {2},
	}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("Resolve(local_line, 4) = %v; want %v", g, want)
	}
}

// TestResolve_LocalRing: like the line, plus the {0, n−1} wrap.
func TestResolve_LocalRing(t *testing.T) {
	g, err := connectivity.Resolve("local_ring", 4)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := connectivity.Graph{
		0: {1, 3},
		1: {2, 0},
		2: {3, 1},
		3: {0, 2},
	}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("Resolve(local_ring, 4) = %v; want %v", g, want)
	}
}

// TestResolve_AllToAll connects every distinct pair.
func TestResolve_AllToAll(t *testing.T) {
	g, err := connectivity.Resolve("all_to_all", 3)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	want := connectivity.Graph{
		0: {1, 2},
		1: {0, 2},
		2: {0, 1},
	}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("Resolve(all_to_all, 3) = %v; want %v", g, want)
	}
}

// TestResolve_CaseInsensitive accepts upper-cased keywords.
func TestResolve_CaseInsensitive(t *testing.T) {
	if _, err := connectivity.Resolve("Local_Line", 3); err != nil {
		t.Errorf("Resolve(Local_Line) error = %v; want nil", err)
	}
}

// TestResolve_RingOfTwo keeps the duplicate partner entries the formula
// produces; no normalization is applied.
func TestResolve_RingOfTwo(t *testing.T) {
	g, err := connectivity.Resolve("local_ring", 2)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !reflect.DeepEqual(g[0], []int{1, 1}) || !reflect.DeepEqual(g[1], []int{0, 0}) {
		t.Errorf("Resolve(local_ring, 2) = %v; want duplicate entries preserved", g)
	}
}

// TestResolve_Errors covers unknown keywords and undersized topologies.
func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		nQubits int
		err     error
	}{
		{"UnknownKeyword", "star", 4, connectivity.ErrUnknownTopology},
		{"LineOfOne", "local_line", 1, connectivity.ErrTooFewQubits},
		{"RingOfOne", "local_ring", 1, connectivity.ErrTooFewQubits},
		{"AllToAllOfZero", "all_to_all", 0, connectivity.ErrTooFewQubits},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := connectivity.Resolve(tc.key, tc.nQubits)
			if !errors.Is(err, tc.err) {
				t.Errorf("Resolve(%q, %d) error = %v; want %v", tc.key, tc.nQubits, err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// FromMap and accessors
//----------------------------------------------------------------------------//

// TestFromMap_PassThrough keeps asymmetric and redundant entries as
// written, but isolates the copy from later caller mutation.
func TestFromMap_PassThrough(t *testing.T) {
	src := map[int][]int{
		0: {1, 1, 2}, // redundant entry kept
		1: {},        // missing reciprocal kept
		5: {0},       // gap in indices kept
	}
	g := connectivity.FromMap(src)
	if !reflect.DeepEqual(g.Partners(0), []int{1, 1, 2}) {
		t.Errorf("Partners(0) = %v; want [1 1 2]", g.Partners(0))
	}

	src[0][0] = 99
	if g.Partners(0)[0] != 1 {
		t.Errorf("FromMap did not deep-copy: %v", g.Partners(0))
	}

	if qs := g.Qubits(); !reflect.DeepEqual(qs, []int{0, 1, 5}) {
		t.Errorf("Qubits() = %v; want [0 1 5]", qs)
	}
	if n := g.NumQubits(); n != 3 {
		t.Errorf("NumQubits() = %d; want 3", n)
	}
}
