// Package circuitgen — Generator construction and sampling.
package circuitgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kottmanj/genencoder/connectivity"
	"github.com/kottmanj/genencoder/pauli"
)

// Generator produces random connectivity-legal rotation circuits from a
// fixed, validated configuration. Apart from the RNG stream it is
// stateless between Generate calls.
type Generator struct {
	depth     int
	graph     connectivity.Graph
	qubits    []int
	inGraph   map[int]bool
	shapes    []string
	fixAngles map[string]float64
	rng       *rand.Rand
}

// New validates cfg, applies its deterministic defaults, and builds a
// reusable Generator.
//
// Stages: connectivity resolution (literal map wins over keyword,
// keyword defaults to all_to_all), shape normalization, fix-angle key
// normalization against the shape set, and depth defaulting.
// Complexity: O(n² + shapes) worst case (all_to_all resolution).
func New(cfg Config) (*Generator, error) {
	var (
		graph connectivity.Graph
		err   error
	)
	if cfg.Connectivity != nil {
		graph = connectivity.FromMap(cfg.Connectivity)
	} else {
		key := cfg.Topology
		if key == "" {
			key = connectivity.TopologyAllToAll
		}
		if cfg.NQubits < 1 {
			return nil, fmt.Errorf("%w: n_qubits=%d with topology %q", ErrBadQubits, cfg.NQubits, key)
		}
		if graph, err = connectivity.Resolve(key, cfg.NQubits); err != nil {
			return nil, err
		}
	}
	qubits := graph.Qubits()
	if len(qubits) == 0 {
		return nil, fmt.Errorf("%w: empty connectivity map", ErrBadQubits)
	}
	inGraph := make(map[int]bool, len(qubits))
	for _, q := range qubits {
		inGraph[q] = true
	}

	labels := cfg.Generators
	if labels == nil {
		labels = DefaultGenerators()
	}
	shapes := make([]string, len(labels))
	for i, label := range labels {
		if shapes[i], err = normalizeShape(label); err != nil {
			return nil, err
		}
	}

	fixAngles := make(map[string]float64, len(cfg.FixAngles))
	for label, angle := range cfg.FixAngles {
		shape, err := normalizeShape(label)
		if err != nil {
			return nil, err
		}
		if !containsShape(shapes, shape) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFixAngle, label)
		}
		fixAngles[shape] = angle
	}

	depth := cfg.Depth
	if depth == 0 {
		depth = len(qubits)
	}
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth=%d", ErrBadDepth, cfg.Depth)
	}

	return &Generator{
		depth:     depth,
		graph:     graph,
		qubits:    qubits,
		inGraph:   inGraph,
		shapes:    shapes,
		fixAngles: fixAngles,
		rng:       rngFromSeed(cfg.Seed),
	}, nil
}

// Depth returns the number of rotations each Generate call emits.
func (g *Generator) Depth() int { return g.depth }

// Qubits returns the qubit labels of the generated circuits.
func (g *Generator) Qubits() []int {
	qs := make([]int, len(g.qubits))
	copy(qs, g.qubits)

	return qs
}

// Generate emits a fresh circuit of exactly Depth rotations. Each
// rotation draws a shape uniformly from the configured set, places it
// on uniformly chosen qubits (two-qubit shapes pair a qubit with a
// uniformly chosen connectivity partner; self-pairs never occur), and
// carries either the shape's fixed angle or a uniform sample from
// [0, 2π).
//
// Fails with ErrNoConnectedPair — atomically, returning no partial
// circuit — when every qubit has been tried and none has a legal
// partner for a two-qubit shape.
// Complexity: O(depth · n) worst case.
func (g *Generator) Generate() (pauli.Circuit, error) {
	out := make(pauli.Circuit, 0, g.depth)
	for len(out) < g.depth {
		shape := g.shapes[g.rng.Intn(len(g.shapes))]
		axes := shapeAxes(shape)

		var terms []pauli.Term
		switch len(axes) {
		case 1:
			q := g.qubits[g.rng.Intn(len(g.qubits))]
			terms = []pauli.Term{{Qubit: q, Axis: axes[0]}}
		default:
			q1, q2, err := g.pickPair(shape)
			if err != nil {
				return nil, err
			}
			terms = []pauli.Term{{Qubit: q1, Axis: axes[0]}, {Qubit: q2, Axis: axes[1]}}
		}
		word, err := pauli.NewWord(terms...)
		if err != nil {
			return nil, fmt.Errorf("circuitgen: %w", err)
		}

		angle, ok := g.fixAngles[shape]
		if !ok {
			angle = g.rng.Float64() * 2 * math.Pi
		}
		out = append(out, pauli.Rotation{Word: word, Angle: pauli.Literal(angle)})
	}

	return out, nil
}

// pickPair draws a uniformly random qubit and a uniformly random legal
// partner for it. Qubits without a legal partner are skipped and
// another is tried; the retry budget is one pass over a random
// permutation of all qubits, so exhaustion means the topology cannot
// host the shape at all.
func (g *Generator) pickPair(shape string) (int, int, error) {
	for _, idx := range g.rng.Perm(len(g.qubits)) {
		q1 := g.qubits[idx]
		partners := g.legalPartners(q1)
		if len(partners) == 0 {
			continue
		}

		return q1, partners[g.rng.Intn(len(partners))], nil
	}

	return 0, 0, fmt.Errorf("%w: shape %q", ErrNoConnectedPair, shape)
}

// legalPartners filters q's stored partner list down to usable entries:
// qubits of the graph other than q itself. Redundant entries survive
// and weight the draw accordingly (permissive maps are taken as
// written).
func (g *Generator) legalPartners(q int) []int {
	stored := g.graph.Partners(q)
	out := make([]int, 0, len(stored))
	for _, p := range stored {
		if p != q && g.inGraph[p] {
			out = append(out, p)
		}
	}

	return out
}

// containsShape reports whether shapes holds shape.
func containsShape(shapes []string, shape string) bool {
	for _, s := range shapes {
		if s == shape {
			return true
		}
	}

	return false
}
