// Package mapper turns animated scalars into per-frame style values.
// Every function here is pure so hosts can call it on every frame.
package mapper

// ClampedLerp maps x from the domain [d0, d1] onto the range [r0, r1].
// Inputs outside the domain clamp to the nearest range endpoint, so spring
// overshoot never produces values outside the range.
func ClampedLerp(x, d0, d1, r0, r1 float64) float64 {
	if d0 == d1 {
		if x <= d0 {
			return r0
		}
		return r1
	}
	t := (x - d0) / (d1 - d0)
	switch {
	case t <= 0:
		return r0
	case t >= 1:
		return r1
	}
	return r0 + (r1-r0)*t
}
