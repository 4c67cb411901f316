// Package circuitgen defines the generation Config and sentinel errors.
// Construction and sampling live in generator.go, the YAML form in
// config.go.
package circuitgen

import "errors"

// Sentinel errors for generator configuration and sampling.
var (
	// ErrBadConfig indicates an unreadable YAML configuration document.
	ErrBadConfig = errors.New("circuitgen: invalid config document")

	// ErrBadDepth indicates a non-positive circuit depth.
	ErrBadDepth = errors.New("circuitgen: depth must be positive")

	// ErrBadQubits indicates a qubit count the configuration cannot work
	// with (non-positive, or an empty connectivity map).
	ErrBadQubits = errors.New("circuitgen: need at least one qubit")

	// ErrBadShape indicates a generator shape outside the X/Y/Z one- or
	// two-axis alphabet.
	ErrBadShape = errors.New("circuitgen: invalid generator shape")

	// ErrUnknownFixAngle indicates a fix_angles key naming no configured
	// generator shape.
	ErrUnknownFixAngle = errors.New("circuitgen: fix_angles key names no configured shape")

	// ErrNoConnectedPair indicates that no qubit has a legal partner for
	// a requested two-qubit shape.
	ErrNoConnectedPair = errors.New("circuitgen: connectivity cannot host a two-qubit generator")
)

// Config declares the parameters of a Generator. The zero value is not
// usable on its own: Depth or NQubits (or a Connectivity map) must be
// set; everything else has deterministic defaults applied by New.
type Config struct {
	// Depth is the number of primitive rotations per generated circuit
	// (not gate layers). Zero defaults to NQubits.
	Depth int `yaml:"depth"`

	// NQubits is the qubit count used when the connectivity is built
	// from a topology keyword. Ignored when Connectivity is set.
	NQubits int `yaml:"n_qubits"`

	// Topology is a connectivity keyword ("all_to_all", "local_line",
	// "local_ring"). Empty defaults to "all_to_all". Ignored when
	// Connectivity is set.
	Topology string `yaml:"topology,omitempty"`

	// Connectivity is a literal partner map; when set it wins over
	// Topology and is passed through unnormalized.
	Connectivity map[int][]int `yaml:"connectivity,omitempty"`

	// Generators lists the allowed shapes, e.g. "Y" or "XY". Nil
	// defaults to the nine one- and two-axis shapes. Labels are
	// normalized (axes upper-cased and sorted).
	Generators []string `yaml:"generators,omitempty"`

	// FixAngles overrides random sampling with a fixed literal angle for
	// the named shapes. Keys are normalized like Generators entries.
	FixAngles map[string]float64 `yaml:"fix_angles,omitempty"`

	// Seed seeds the generator's RNG stream; 0 selects a fixed default
	// seed for reproducible output.
	Seed int64 `yaml:"seed,omitempty"`
}

// DefaultGenerators returns the default shape set: every single axis
// and every unordered two-axis combination.
func DefaultGenerators() []string {
	return []string{"X", "Y", "Z", "XX", "YY", "ZZ", "XY", "XZ", "YZ"}
}
