// Package encoder defines the Encoder options and sentinel errors.
// Serialization lives in encoder.go, parsing in parse.go.
package encoder

import "errors"

// Sentinel errors for encoding and decoding.
var (
	// ErrBadSeparator indicates a separator that is empty, collides with
	// the token alphabet, or overlaps the other separator.
	ErrBadSeparator = errors.New("encoder: invalid separator")

	// ErrBadSymbolName indicates a symbolic angle whose name the token
	// grammar cannot represent.
	ErrBadSymbolName = errors.New("encoder: invalid symbol name")

	// ErrNonCanonicalWord indicates a serialize input whose word is not
	// in canonical ascending-qubit order.
	ErrNonCanonicalWord = errors.New("encoder: word not in canonical order")

	// ErrNoAngleSeparator indicates a token without an angle separator.
	ErrNoAngleSeparator = errors.New("encoder: token has no angle separator")

	// ErrBadAngle indicates an unparsable numeric angle field.
	ErrBadAngle = errors.New("encoder: malformed numeric angle")

	// ErrMalformedWord indicates an unparsable or invalid pauli word.
	ErrMalformedWord = errors.New("encoder: malformed pauli word")
)

// Default separators of the wire format.
const (
	// DefaultAngleSeparator splits a token's symbol prefix from its
	// numeric angle.
	DefaultAngleSeparator = "@"

	// DefaultGateSeparator terminates each rotation token.
	DefaultGateSeparator = "|"
)

// Options configures an Encoder.
//
// Both separators must be agreed between encoder and decoder out of
// band; the format carries no separator metadata. Any token not drawn
// from the token alphabet (letters, digits, '_', '.', parentheses) is
// acceptable, e.g. "#" or "::".
type Options struct {
	// AngleSeparator splits symbol prefix from numeric angle. Default "@".
	AngleSeparator string
	// GateSeparator terminates each token. Default "|".
	GateSeparator string
}

// DefaultOptions returns the reference separators: "@" and "|".
func DefaultOptions() Options {
	return Options{
		AngleSeparator: DefaultAngleSeparator,
		GateSeparator:  DefaultGateSeparator,
	}
}
