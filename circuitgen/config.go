// Package circuitgen — YAML form of Config and shape normalization.
package circuitgen

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kottmanj/genencoder/pauli"
)

// ParseConfig unmarshals the YAML form of a Config, e.g.:
//
//	depth: 10
//	n_qubits: 4
//	topology: local_line
//	generators: [Y, XY]
//	fix_angles:
//	  XY: 1.5708
//	seed: 7
//
// Defaults and validation are applied later by New, so a parsed Config
// can still be adjusted in code first.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return cfg, nil
}

// normalizeShape upper-cases a shape label and sorts its axes, so "yx"
// and "XY" name the same shape. Returns ErrBadShape unless the label is
// one or two Pauli-axis letters.
func normalizeShape(label string) (string, error) {
	s := strings.ToUpper(label)
	if len(s) < 1 || len(s) > 2 {
		return "", fmt.Errorf("%w: %q", ErrBadShape, label)
	}
	axes := []byte(s)
	for _, c := range axes {
		if _, ok := pauli.AxisOf(c); !ok {
			return "", fmt.Errorf("%w: %q", ErrBadShape, label)
		}
	}
	sort.Slice(axes, func(i, j int) bool { return axes[i] < axes[j] })

	return string(axes), nil
}

// shapeAxes maps a normalized shape label to its Pauli axes in label
// order.
func shapeAxes(shape string) []pauli.Axis {
	axes := make([]pauli.Axis, len(shape))
	for i := 0; i < len(shape); i++ {
		a, _ := pauli.AxisOf(shape[i])
		axes[i] = a
	}

	return axes
}
