// Package voice implements the acid303 synth voice: oscillator, filter,
// envelope, slide, and distortion composed into a single monophonic voice.
package voice

import (
	"math"

	"github.com/acidline/acid303/internal/distortion"
	"github.com/acidline/acid303/internal/envelope"
	"github.com/acidline/acid303/internal/filter"
	"github.com/acidline/acid303/internal/osc"
	"github.com/acidline/acid303/internal/slide"
)

// AccentDecayScale shortens an accented note's decay time to this fraction of
// its configured decay, for the classic short, punchy accent.
const AccentDecayScale = 0.5

// slideThreshold mirrors slide.Threshold; named locally since NoteOn's
// "slide" parameter shadows the slide package within its own body.
const slideThreshold = slide.Threshold

// AccentLoudness scales the VCA boost an accented note gets on top of its
// base envelope level; see SPEC_FULL.md for why this is pinned at 1 rather
// than left open.
const AccentLoudness = 1

// Config holds the voice's clamped, host-settable parameters.
type Config struct {
	Waveform     osc.Waveform
	CutoffHz     float64
	Resonance    float64
	EnvMod       float64
	DecayMs      float64
	AccentAmount float64
	SlideTimeMs  float64
	Distortion   float64
}

// DefaultConfig returns a Config in the middle of each parameter's useful
// range, a reasonable starting point before a preset is loaded.
func DefaultConfig() Config {
	return Config{
		Waveform:     osc.WaveformSaw,
		CutoffHz:     800,
		Resonance:    0.5,
		EnvMod:       0.5,
		DecayMs:      150,
		AccentAmount: 0.8,
		SlideTimeMs:  60,
		Distortion:   0.2,
	}
}

// Voice is a single monophonic acid303 synth voice.
type Voice struct {
	sampleRate float64
	cfg        Config

	osc   *osc.Oscillator
	filt  *filter.Lowpass
	env   *envelope.Envelope
	glide slide.Controller

	gate        bool
	accentLevel float64
}

// New returns a Voice running at sampleRate Hz with cfg as its initial
// parameters.
func New(sampleRate float64, cfg Config) *Voice {
	return &Voice{
		sampleRate: sampleRate,
		cfg:        clampConfig(cfg),
		osc:        osc.New(sampleRate),
		filt:       filter.New(sampleRate),
		env:        envelope.New(),
	}
}

// SetConfig replaces the voice's parameters wholesale, clamped to range.
func (v *Voice) SetConfig(cfg Config) {
	v.cfg = clampConfig(cfg)
}

// Config returns the voice's current parameters.
func (v *Voice) Config() Config {
	return v.cfg
}

// Per-field setters, each clamping just like SetConfig, for hosts that adjust
// one knob at a time rather than replacing the whole Config.
func (v *Voice) SetWaveform(w osc.Waveform) { v.cfg.Waveform = w }
func (v *Voice) SetCutoff(hz float64)       { v.cfg.CutoffHz = clamp(hz, 20, 20000) }
func (v *Voice) SetResonance(r float64)     { v.cfg.Resonance = clamp(r, 0, 1) }
func (v *Voice) SetEnvMod(m float64)        { v.cfg.EnvMod = clamp(m, 0, 1) }
func (v *Voice) SetDecay(ms float64)        { v.cfg.DecayMs = clamp(ms, 10, 2000) }
func (v *Voice) SetAccentAmount(a float64)  { v.cfg.AccentAmount = clamp(a, 0, 1) }
func (v *Voice) SetSlideTime(ms float64)    { v.cfg.SlideTimeMs = clamp(ms, 10, 200) }
func (v *Voice) SetDistortion(d float64)    { v.cfg.Distortion = clamp(d, 0, 1) }

// NoteOn starts or slides into midiNote. When slide is true, the gate is
// still held, and the envelope is above slideThreshold, the oscillator glides
// to the new pitch without retriggering the envelope; otherwise it's a normal
// retrigger.
func (v *Voice) NoteOn(midiNote int, accent, slide bool) {
	freq := midiToHz(midiNote)
	if slide && v.Gate() && v.env.Value() > slideThreshold {
		v.glide.SetTarget(freq)
	} else {
		v.glide.Reset(freq)
		decayMs := v.cfg.DecayMs
		if accent {
			decayMs *= AccentDecayScale
		}
		v.env.Trigger(decayMs, v.sampleRate)
	}
	v.accentLevel = 0
	if accent {
		v.accentLevel = v.cfg.AccentAmount
	}
	v.gate = true
}

// NoteOff releases the gate. The envelope continues to decay naturally; this
// does not silence the voice immediately.
func (v *Voice) NoteOff() {
	v.gate = false
}

// Gate reports whether a note is currently held.
func (v *Voice) Gate() bool {
	return v.gate
}

// RenderSample renders and returns one mono sample from the full chain:
// slide -> oscillator -> envelope -> filter -> VCA -> distortion.
func (v *Voice) RenderSample() float32 {
	freq := v.glide.Advance(v.cfg.SlideTimeMs, v.sampleRate)
	o := v.osc.Next(freq, v.cfg.Waveform)
	e := v.env.Advance()
	f := v.filt.Process(o, v.cfg.CutoffHz, v.cfg.Resonance, v.cfg.EnvMod, e)
	y := f * e * (1 + v.accentLevel*AccentLoudness)
	return float32(distortion.SoftClip(y, v.cfg.Distortion))
}

func clampConfig(c Config) Config {
	c.CutoffHz = clamp(c.CutoffHz, 20, 20000)
	c.Resonance = clamp(c.Resonance, 0, 1)
	c.EnvMod = clamp(c.EnvMod, 0, 1)
	c.DecayMs = clamp(c.DecayMs, 10, 2000)
	c.AccentAmount = clamp(c.AccentAmount, 0, 1)
	c.SlideTimeMs = clamp(c.SlideTimeMs, 10, 200)
	c.Distortion = clamp(c.Distortion, 0, 1)
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func midiToHz(note int) float64 {
	return 440 * math.Pow(2, (float64(note)-69)/12)
}
