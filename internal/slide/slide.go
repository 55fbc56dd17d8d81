// Package slide implements the acid303 portamento frequency glide.
package slide

import "math"

// Threshold is how close current must get to target before it snaps exactly
// onto it, avoiding an asymptote that never quite arrives.
const Threshold = 0.01

// Controller tracks an exponentially-approached target frequency.
type Controller struct {
	Current float64
	Target  float64
}

// Reset snaps both current and target to freq, used on a non-sliding
// retrigger.
func (c *Controller) Reset(freq float64) {
	c.Current = freq
	c.Target = freq
}

// SetTarget begins gliding toward freq without resetting the current value,
// used on a sliding note-on.
func (c *Controller) SetTarget(freq float64) {
	c.Target = freq
}

// Advance steps the glide by one sample over slideTimeMs and returns the new
// current frequency.
func (c *Controller) Advance(slideTimeMs, sampleRate float64) float64 {
	if c.Current == c.Target {
		return c.Current
	}
	samples := slideTimeMs * sampleRate / 1000
	if samples < 1 {
		samples = 1
	}
	k := 1 - math.Exp(-1/samples)
	c.Current += (c.Target - c.Current) * k
	if math.Abs(c.Target-c.Current) < Threshold {
		c.Current = c.Target
	}
	return c.Current
}
