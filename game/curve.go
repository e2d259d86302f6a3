package game

import "sort"

// CurveKey is a single keyframe of a Curve.
type CurveKey struct {
	Time  float32 `toml:"time"`
	Value float32 `toml:"value"`
}

// Curve is a piecewise-linear function defined by keyframes. Times outside the keyed
// range clamp to the first or last value.
type Curve []CurveKey

// ConstantCurve returns a curve that evaluates to v everywhere.
func ConstantCurve(v float32) Curve {
	return Curve{{Time: 0, Value: v}}
}

// LinearCurve returns a curve going from a at t=0 to b at t=1.
func LinearCurve(a, b float32) Curve {
	return Curve{{Time: 0, Value: a}, {Time: 1, Value: b}}
}

// Evaluate returns the value of the curve at t.
func (c Curve) Evaluate(t float32) float32 {
	switch len(c) {
	case 0:
		return 1
	case 1:
		return c[0].Value
	}
	if t <= c[0].Time {
		return c[0].Value
	}
	last := c[len(c)-1]
	if t >= last.Time {
		return last.Value
	}
	i := sort.Search(len(c), func(i int) bool { return c[i].Time >= t })
	a, b := c[i-1], c[i]
	if b.Time == a.Time {
		return b.Value
	}
	f := (t - a.Time) / (b.Time - a.Time)
	return a.Value + (b.Value-a.Value)*f
}

// Sorted returns a copy of the curve with keys ordered by time.
func (c Curve) Sorted() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}
