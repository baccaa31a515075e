// Package motion eases scalar values toward targets over time.
//
// Two curve kinds are supported: a damped spring, integrated with harmonica,
// and a fixed-duration quadratic ease-in-out driven by a gween tween.
// Retargeting a value always replaces the animation in flight.
package motion

import (
	"fmt"
	"math"
	"time"
)

type CurveKind int

const (
	KindTiming CurveKind = iota
	KindSpring
)

func (k CurveKind) String() string {
	switch k {
	case KindTiming:
		return "timing"
	case KindSpring:
		return "spring"
	default:
		return fmt.Sprintf("CurveKind(%d)", int(k))
	}
}

// Spring defaults, matching the usual mobile animation runtimes.
const (
	DefaultStiffness = 100.0
	DefaultMass      = 1.0
)

// Curve describes how a value travels to its target.
type Curve struct {
	Kind CurveKind

	// Timing
	Duration time.Duration

	// Spring
	Damping   float64
	Stiffness float64
	Mass      float64
}

// Timing returns a fixed-duration ease-in-out curve.
func Timing(d time.Duration) Curve {
	return Curve{Kind: KindTiming, Duration: d}
}

// Spring returns a damped spring with the default stiffness and mass.
func Spring(damping float64) Curve {
	return Curve{Kind: KindSpring, Damping: damping, Stiffness: DefaultStiffness, Mass: DefaultMass}
}

// AngularFrequency is sqrt(k/m).
func (c Curve) AngularFrequency() float64 {
	k, m := c.stiffness(), c.mass()
	return math.Sqrt(k / m)
}

// DampingRatio is c / (2*sqrt(k*m)). Below 1 the spring overshoots.
func (c Curve) DampingRatio() float64 {
	k, m := c.stiffness(), c.mass()
	return c.Damping / (2 * math.Sqrt(k*m))
}

func (c Curve) stiffness() float64 {
	if c.Stiffness <= 0 {
		return DefaultStiffness
	}
	return c.Stiffness
}

func (c Curve) mass() float64 {
	if c.Mass <= 0 {
		return DefaultMass
	}
	return c.Mass
}

func (c Curve) String() string {
	if c.Kind == KindSpring {
		return fmt.Sprintf("spring(damping=%g)", c.Damping)
	}
	return fmt.Sprintf("timing(%s)", c.Duration)
}
