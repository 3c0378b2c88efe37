// Package tween provides pure easing functions for time-based animations.
//
// Every function maps normalized time t in [0,1] to normalized progress,
// with f(0) == 0 and f(1) == 1. Back and Elastic variants overshoot the
// [0,1] range at intermediate points, which is their intended shape.
package tween

import "math"

// Easing maps normalized time to normalized progress.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// Quadratic

func QuadIn(t float64) float64  { return t * t }
func QuadOut(t float64) float64 { return t * (2 - t) }
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// Cubic

func CubicIn(t float64) float64 { return t * t * t }
func CubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// Quartic

func QuartIn(t float64) float64 { return t * t * t * t }
func QuartOut(t float64) float64 {
	u := t - 1
	return 1 - u*u*u*u
}
func QuartInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := t - 1
	return 1 - 8*u*u*u*u
}

// Quintic

func QuintIn(t float64) float64 { return t * t * t * t * t }
func QuintOut(t float64) float64 {
	u := t - 1
	return u*u*u*u*u + 1
}
func QuintInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u*u*u + 1
}

// Sine

func SineIn(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func SineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Exponential. The analytic forms 2^(10(t-1)) and 1-2^(-10t) do not hit
// the endpoints exactly, so 0 and 1 are special-cased.

func ExpoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}
func ExpoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}
func ExpoInOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	if t < 0.5 {
		return 0.5 * math.Pow(2, 20*t-10)
	}
	return 1 - 0.5*math.Pow(2, -20*t+10)
}

// Circular

func CircIn(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func CircOut(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }
func CircInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	u := 2*t - 2
	return (math.Sqrt(1-u*u) + 1) / 2
}

// Elastic

const elasticPeriod = 0.3

func ElasticIn(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math.Pow(2, 10*(t-1)) * math.Sin((t-1-elasticPeriod/4)*(2*math.Pi)/elasticPeriod)
}
func ElasticOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t-elasticPeriod/4)*(2*math.Pi)/elasticPeriod) + 1
}
func ElasticInOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	p := elasticPeriod * 1.5
	s := p / 4
	u := 2*t - 1
	if u < 0 {
		return -0.5 * math.Pow(2, 10*u) * math.Sin((u-s)*(2*math.Pi)/p)
	}
	return math.Pow(2, -10*u)*math.Sin((u-s)*(2*math.Pi)/p)*0.5 + 1
}

// Back

const backOvershoot = 1.70158

func BackIn(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}
func BackOut(t float64) float64 {
	u := t - 1
	return u*u*((backOvershoot+1)*u+backOvershoot) + 1
}
func BackInOut(t float64) float64 {
	s := backOvershoot * 1.525
	u := 2 * t
	if u < 1 {
		return 0.5 * u * u * ((s+1)*u - s)
	}
	u -= 2
	return 0.5 * (u*u*((s+1)*u+s) + 2)
}

// Bounce

func BounceOut(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		u := t - 1.5/2.75
		return 7.5625*u*u + 0.75
	case t < 2.5/2.75:
		u := t - 2.25/2.75
		return 7.5625*u*u + 0.9375
	default:
		u := t - 2.625/2.75
		return 7.5625*u*u + 0.984375
	}
}
func BounceIn(t float64) float64 { return 1 - BounceOut(1-t) }
func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return BounceIn(2*t) / 2
	}
	return BounceOut(2*t-1)/2 + 0.5
}
