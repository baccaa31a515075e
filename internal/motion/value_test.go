package motion

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

func run(v *Value, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		if v.Settled() {
			return i
		}
		v.Step(frame)
	}
	return maxFrames
}

func TestNewValueIsSettled(t *testing.T) {
	v := NewValue(42)
	assert.True(t, v.Settled())
	assert.Equal(t, 42.0, v.Get())
	assert.Equal(t, 42.0, v.Target())
	assert.False(t, v.Step(frame), "settled value must not move")
}

func TestTimingReachesTargetAfterDuration(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(100, Timing(160*time.Millisecond))
	require.False(t, v.Settled())

	for i := 0; i < 9; i++ {
		v.Step(frame)
		assert.Greater(t, v.Get(), 0.0)
		assert.Less(t, v.Get(), 100.0)
	}
	v.Step(frame)
	assert.True(t, v.Settled())
	assert.Equal(t, 100.0, v.Get())
}

func TestTimingIsMonotonic(t *testing.T) {
	v := NewValue(200)
	v.AnimateTo(0, Timing(400*time.Millisecond))

	prev := v.Get()
	for !v.Settled() {
		v.Step(frame)
		assert.LessOrEqual(t, v.Get(), prev)
		prev = v.Get()
	}
	assert.Equal(t, 0.0, v.Get())
}

func TestTimingZeroDurationJumps(t *testing.T) {
	v := NewValue(5)
	v.AnimateTo(9, Timing(0))
	assert.True(t, v.Settled())
	assert.Equal(t, 9.0, v.Get())
}

func TestSpringSettlesOnTarget(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(200, Spring(12))

	frames := run(v, 600)
	require.Less(t, frames, 600, "spring never settled")
	assert.Equal(t, 200.0, v.Get())
	assert.Equal(t, 0.0, v.Velocity())
}

func TestUnderdampedSpringOvershoots(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(100, Spring(12))

	peak := 0.0
	for i := 0; i < 120; i++ {
		v.Step(frame)
		peak = math.Max(peak, v.Get())
	}
	assert.Greater(t, peak, 100.0, "damping 12 should bounce past the target")
}

func TestRetargetIsLastWriteWins(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(100, Timing(200*time.Millisecond))
	v.Step(frame)
	v.Step(frame)
	mid := v.Get()

	v.AnimateTo(-50, Timing(100*time.Millisecond))
	assert.Equal(t, -50.0, v.Target())
	assert.Equal(t, mid, v.Get(), "retarget must start from the current value")

	run(v, 100)
	assert.Equal(t, -50.0, v.Get())
}

func TestRetargetSameValueStaysSettled(t *testing.T) {
	v := NewValue(10)
	v.AnimateTo(10, Spring(12))
	assert.True(t, v.Settled())
}

func TestSetStopsAnimation(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(100, Spring(12))
	v.Step(frame)
	v.Set(3)
	assert.True(t, v.Settled())
	assert.Equal(t, 3.0, v.Get())
	assert.Equal(t, 3.0, v.Target())
}

func TestCurveParameters(t *testing.T) {
	c := Spring(12)
	assert.InDelta(t, 10.0, c.AngularFrequency(), 1e-9)
	assert.InDelta(t, 0.6, c.DampingRatio(), 1e-9)
	assert.Equal(t, "spring(damping=12)", c.String())
	assert.Equal(t, "timing(400ms)", Timing(400*time.Millisecond).String())

	zero := Curve{Kind: KindSpring, Damping: 20}
	assert.InDelta(t, 1.0, zero.DampingRatio(), 1e-9, "zero stiffness/mass fall back to defaults")
}

func TestTimingFollowsInOutQuad(t *testing.T) {
	v := NewValue(0)
	v.AnimateTo(100, Timing(400*time.Millisecond))

	v.Step(100 * time.Millisecond)
	assert.InDelta(t, 12.5, v.Get(), 1e-3, "quarter time is an eighth of the way")

	v.Step(100 * time.Millisecond)
	assert.InDelta(t, 50.0, v.Get(), 1e-3, "half time is half way")

	v.Step(100 * time.Millisecond)
	assert.InDelta(t, 87.5, v.Get(), 1e-3)
	require.False(t, v.Settled())

	v.Step(100 * time.Millisecond)
	assert.Equal(t, 100.0, v.Get())
	assert.True(t, v.Settled())
}

func TestTimingLandsExactlyOnFractionalTarget(t *testing.T) {
	v := NewValue(390)
	v.AnimateTo(202.8, Timing(200*time.Millisecond))
	for i := 0; i < 20 && !v.Settled(); i++ {
		v.Step(frame)
	}
	assert.True(t, v.Settled())
	assert.Equal(t, 202.8, v.Get())
}
