package sphere

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBody indicates a body name outside the fixed enumeration.
var ErrUnknownBody = errors.New("sphere: unknown celestial body")

// Body enumerates the celestial bodies spherenav can route on: the eight
// solar-system planets. Each maps to a fixed mean radius in kilometers via
// RadiusKm.
type Body int

const (
	Mercury Body = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune

	numBodies // sentinel; keep last
)

// bodyNames is indexed by Body. Kept in declaration order.
var bodyNames = [numBodies]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

// bodyRadiiKm maps each Body to its mean radius in kilometers.
var bodyRadiiKm = [numBodies]float64{
	Mercury: 2439.7,
	Venus:   6051.8,
	Earth:   6371,
	Mars:    3389.5,
	Jupiter: 69911,
	Saturn:  58232,
	Uranus:  25362,
	Neptune: 24622,
}

// RadiusKm returns the mean radius of the body in kilometers.
// It is total over the enumeration; out-of-range values yield the Earth radius.
func (b Body) RadiusKm() float64 {
	if b < 0 || b >= numBodies {
		return bodyRadiiKm[Earth]
	}

	return bodyRadiiKm[b]
}

// String returns the canonical body name, e.g. "Earth".
func (b Body) String() string {
	if b < 0 || b >= numBodies {
		return fmt.Sprintf("Body(%d)", int(b))
	}

	return bodyNames[b]
}

// Bodies returns all enumerated bodies in declaration order.
func Bodies() []Body {
	out := make([]Body, numBodies)
	for i := range out {
		out[i] = Body(i)
	}

	return out
}

// ParseBody resolves a case-insensitive body name to its Body value.
// Unknown names return ErrUnknownBody wrapped with the offending name.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(name, n) {
			return Body(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}
