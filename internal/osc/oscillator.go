// Package osc generates band-limited saw and square waveforms for the
// acid303 voice chain.
package osc

import "math"

// Waveform selects the oscillator's waveshape.
type Waveform int

const (
	WaveformSaw Waveform = iota
	WaveformSquare
)

// Oscillator accumulates phase for a single band-limited voice. Frequency is
// supplied per call rather than stored, since the slide controller recomputes
// it every sample.
type Oscillator struct {
	sampleRate float64
	phase      float64
}

// New returns an Oscillator running at sampleRate Hz, phase reset to zero.
func New(sampleRate float64) *Oscillator {
	return &Oscillator{sampleRate: sampleRate}
}

// Reset zeroes the phase accumulator. Note retriggers do not call it, so the
// phase runs on across notes.
func (o *Oscillator) Reset() {
	o.phase = 0
}

// Next advances the phase by freq/sampleRate and returns one band-limited
// sample in [-1, 1].
func (o *Oscillator) Next(freq float64, wave Waveform) float64 {
	dt := freq / o.sampleRate
	if dt < 0 {
		dt = 0
	}
	o.phase += dt
	if o.phase >= 1 {
		o.phase -= 1
	}
	var v float64
	switch wave {
	case WaveformSquare:
		v = -1
		if o.phase < 0.5 {
			v = 1
		}
		v += polyBLEP(o.phase, dt)
		v -= polyBLEP(math.Mod(o.phase+0.5, 1), dt)
	default:
		v = 2*o.phase - 1
		v -= polyBLEP(o.phase, dt)
	}
	return v
}

// polyBLEP reduces aliasing at waveform discontinuities.
func polyBLEP(t, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	if t < dt {
		t /= dt
		return t + t - t*t - 1
	}
	if t > 1-dt {
		t = (t - 1) / dt
		return t*t + t + t + 1
	}
	return 0
}
