package easing

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Func remaps a normalized parameter t in [0,1] onto [0,1].
// Every Func maps 0 to 0 and 1 to 1.
type Func func(t float64) float64

// Smootherstep is the quintic t³(t(6t-15)+10). First and second derivatives
// vanish at both ends, so chained segments meet without a velocity jump.
func Smootherstep(t float64) float64 {
	t = clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

// Smoothstep is the cubic 3t²-2t³.
func Smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// Linear returns t clamped to [0,1].
func Linear(t float64) float64 {
	return clamp01(t)
}

// fromTween adapts a gween easing equation to a normalized Func.
func fromTween(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		t = clamp01(t)
		// float32 round trip would leave the endpoints a hair off
		if t == 0 || t == 1 {
			return t
		}
		return clamp01(float64(fn(float32(t), 0, 1, 1)))
	}
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
