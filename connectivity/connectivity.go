// Package connectivity — topology keywords and Graph construction.
package connectivity

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for topology resolution.
var (
	// ErrUnknownTopology indicates an unrecognized topology keyword.
	ErrUnknownTopology = errors.New("connectivity: unknown topology keyword")

	// ErrTooFewQubits indicates a qubit count the topology cannot host.
	ErrTooFewQubits = errors.New("connectivity: too few qubits for topology")
)

// Recognized topology keywords.
const (
	// TopologyAllToAll connects every distinct qubit pair.
	TopologyAllToAll = "all_to_all"

	// TopologyLocalLine connects qubit i to i−1 and i+1 only.
	TopologyLocalLine = "local_line"

	// TopologyLocalRing is a local line with qubits 0 and n−1 connected.
	TopologyLocalRing = "local_ring"
)

// Graph maps a qubit index to the qubits it may pair with in a
// two-qubit generator. Undirected by convention only: symmetry is the
// producer's responsibility and is never enforced here.
type Graph map[int][]int

// Resolve builds the Graph for a topology keyword over nQubits qubits.
// The keyword is matched case-insensitively. all_to_all needs at least
// one qubit, line and ring at least two.
// Complexity: O(n²) for all_to_all, O(n) otherwise.
func Resolve(key string, nQubits int) (Graph, error) {
	switch strings.ToLower(key) {
	case TopologyAllToAll:
		if nQubits < 1 {
			return nil, fmt.Errorf("%w: %s needs at least 1 qubit, got %d", ErrTooFewQubits, TopologyAllToAll, nQubits)
		}
		g := make(Graph, nQubits)
		for k := 0; k < nQubits; k++ {
			partners := make([]int, 0, nQubits-1)
			for l := 0; l < nQubits; l++ {
				if l != k {
					partners = append(partners, l)
				}
			}
			g[k] = partners
		}

		return g, nil

	case TopologyLocalLine:
		if nQubits < 2 {
			return nil, fmt.Errorf("%w: %s needs at least 2 qubits, got %d", ErrTooFewQubits, TopologyLocalLine, nQubits)
		}
		g := make(Graph, nQubits)
		g[0] = []int{1}
		for k := 1; k < nQubits-1; k++ {
			g[k] = []int{k + 1, k - 1}
		}
		g[nQubits-1] = []int{nQubits - 2}

		return g, nil

	case TopologyLocalRing:
		if nQubits < 2 {
			return nil, fmt.Errorf("%w: %s needs at least 2 qubits, got %d", ErrTooFewQubits, TopologyLocalRing, nQubits)
		}
		g := make(Graph, nQubits)
		for k := 0; k < nQubits; k++ {
			// Over 2 qubits both entries coincide; kept as produced.
			g[k] = []int{(k + 1) % nQubits, (k - 1 + nQubits) % nQubits}
		}

		return g, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, key)
	}
}

// FromMap deep-copies a literal partner map into a Graph. The entries
// are taken as-is: no symmetry closure, deduplication or completeness
// check.
// Complexity: O(entries).
func FromMap(m map[int][]int) Graph {
	g := make(Graph, len(m))
	for q, partners := range m {
		ps := make([]int, len(partners))
		copy(ps, partners)
		g[q] = ps
	}

	return g
}

// Qubits returns the graph's qubit indices in ascending order.
func (g Graph) Qubits() []int {
	qs := make([]int, 0, len(g))
	for q := range g {
		qs = append(qs, q)
	}
	sort.Ints(qs)

	return qs
}

// NumQubits returns the number of qubits the graph covers.
func (g Graph) NumQubits() int { return len(g) }

// Partners returns the allowed partner list of q, as stored.
func (g Graph) Partners(q int) []int { return g[q] }
