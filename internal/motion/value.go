package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	restDistance = 0.01
	restSpeed    = 0.01
)

// Value is a scalar that eases toward a target when stepped.
// It is not safe for concurrent use; hosts step it from their UI loop.
type Value struct {
	current  float64
	target   float64
	velocity float64

	curve   Curve
	from    float64
	elapsed time.Duration
	running bool

	spring   harmonica.Spring
	springDT time.Duration

	// progress eases 0..1 for timing curves.
	progress *gween.Tween
}

// NewValue returns a settled value at v.
func NewValue(v float64) *Value {
	return &Value{current: v, target: v}
}

// Get returns the current eased value.
func (v *Value) Get() float64 { return v.current }

// Target returns the value being approached.
func (v *Value) Target() float64 { return v.target }

// Curve returns the curve of the latest animation request.
func (v *Value) Curve() Curve { return v.curve }

// Velocity returns the spring velocity in units per second. Timing curves report 0.
func (v *Value) Velocity() float64 { return v.velocity }

// Settled reports whether the value has reached its target.
func (v *Value) Settled() bool { return !v.running }

// Set jumps to x and stops any animation.
func (v *Value) Set(x float64) {
	v.current = x
	v.target = x
	v.velocity = 0
	v.running = false
}

// AnimateTo starts easing toward target, replacing any animation in flight.
// A spring keeps its current velocity so a retarget mid-bounce stays continuous.
func (v *Value) AnimateTo(target float64, c Curve) {
	v.target = target
	v.curve = c
	v.from = v.current
	v.elapsed = 0
	v.springDT = 0

	if c.Kind == KindTiming {
		v.velocity = 0
		if c.Duration <= 0 {
			v.current = target
			v.running = false
			return
		}
		v.progress = gween.New(0, 1, float32(c.Duration.Seconds()), ease.InOutQuad)
	}
	v.running = v.current != target || v.velocity != 0
}

// Step advances the animation by dt and reports whether the value moved.
func (v *Value) Step(dt time.Duration) bool {
	if !v.running || dt <= 0 {
		return false
	}
	before := v.current

	switch v.curve.Kind {
	case KindSpring:
		v.stepSpring(dt)
	default:
		v.stepTiming(dt)
	}
	return v.current != before
}

func (v *Value) stepTiming(dt time.Duration) {
	v.elapsed += dt
	if v.elapsed >= v.curve.Duration || v.progress == nil {
		v.current = v.target
		v.running = false
		return
	}
	// Elapsed time stays a Duration; float32 only carries the eased fraction.
	p, _ := v.progress.Set(float32(v.elapsed.Seconds()))
	v.current = v.from + (v.target-v.from)*float64(p)
}

func (v *Value) stepSpring(dt time.Duration) {
	if v.springDT != dt {
		v.spring = harmonica.NewSpring(dt.Seconds(), v.curve.AngularFrequency(), v.curve.DampingRatio())
	}
	v.springDT = dt
	v.current, v.velocity = v.spring.Update(v.current, v.velocity, v.target)

	if math.Abs(v.current-v.target) < restDistance && math.Abs(v.velocity) < restSpeed {
		v.current = v.target
		v.velocity = 0
		v.running = false
	}
}
