// Package envelope implements the acid303 decay-only one-shot envelope.
package envelope

import "math"

// Floor is the level below which the envelope is considered fully decayed
// and clamps to exact silence rather than asymptoting forever.
const Floor = 1e-5

// Envelope is a one-shot exponential decay with retrigger, as driven by
// Trigger/Advance once per sample.
type Envelope struct {
	value     float64
	decayCoef float64
}

// New returns an Envelope at rest (value 0).
func New() *Envelope {
	return &Envelope{}
}

// Value returns the current envelope level without advancing it.
func (e *Envelope) Value() float64 {
	return e.value
}

// Trigger restarts the envelope at 1.0 with a decay time constant of decayMs:
// after decayMs the level is 1/e. Any accent scaling is applied by the caller
// before passing decayMs in.
func (e *Envelope) Trigger(decayMs, sampleRate float64) {
	decaySamples := decayMs * sampleRate / 1000
	if decaySamples < 1 {
		decaySamples = 1
	}
	e.value = 1
	e.decayCoef = math.Exp(-1 / decaySamples)
}

// Advance steps the envelope by one sample and returns the new value.
func (e *Envelope) Advance() float64 {
	e.value *= e.decayCoef
	if e.value < Floor {
		e.value = 0
	}
	return e.value
}
