// Package anim provides a deterministic, time-based animated scalar.
package anim

import (
	"fmt"
	"time"
)

// Easing maps linear progress in [0,1] to eased progress in [0,1].
type Easing func(float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 {
	return t
}

// EaseInOut is a symmetric cubic ease, slow at both ends.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// ParseEasing resolves an easing curve by name. An empty name selects EaseInOut.
func ParseEasing(name string) (Easing, error) {
	switch name {
	case "", "ease", "ease-in-out":
		return EaseInOut, nil
	case "linear":
		return Linear, nil
	default:
		return nil, fmt.Errorf("unknown easing %q", name)
	}
}

// Timing is a scalar that interpolates between two values over a fixed
// duration. It holds no timers of its own: callers sample it with the
// current time.
type Timing struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	easing   Easing
}

// NewTiming returns a settled value at v.
func NewTiming(v float64, easing Easing) Timing {
	if easing == nil {
		easing = EaseInOut
	}
	return Timing{from: v, to: v, easing: easing}
}

// Retarget starts a new transition toward to, beginning at whatever value
// the current transition has reached at now.
func (t *Timing) Retarget(to float64, now time.Time, d time.Duration) {
	t.from = t.Value(now)
	t.to = to
	t.start = now
	t.duration = d
}

// SetEasing replaces the curve used by subsequent samples.
func (t *Timing) SetEasing(easing Easing) {
	if easing != nil {
		t.easing = easing
	}
}

// Progress returns linear progress of the current transition in [0,1].
func (t Timing) Progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Value samples the animated value at now. A finished transition returns
// the target exactly.
func (t Timing) Value(now time.Time) float64 {
	p := t.Progress(now)
	if p >= 1 {
		return t.to
	}
	easing := t.easing
	if easing == nil {
		easing = EaseInOut
	}
	return t.from + (t.to-t.from)*easing(p)
}

// Done reports whether the current transition has reached its target.
func (t Timing) Done(now time.Time) bool {
	return t.Progress(now) >= 1
}

// Target returns the value the current transition is heading to.
func (t Timing) Target() float64 {
	return t.to
}
