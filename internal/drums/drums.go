// Package drums synthesizes the acid303 kick, snare, and hi-hat one-shot
// voices. None of these are sample-based; each is a small oscillator/noise
// source shaped by a decay envelope, grounded in the same primitives as
// internal/voice.
package drums

import (
	"math"

	"github.com/acidline/acid303/internal/envelope"
)

// lfsr is a Galois linear-feedback-shift-register noise source shared by the
// snare and hi-hat.
type lfsr struct {
	state uint16
}

func newLFSR() lfsr {
	return lfsr{state: 0xACE1}
}

func (n *lfsr) next() float64 {
	bit := (n.state ^ (n.state >> 1)) & 1
	n.state = (n.state >> 1) | (bit << 15)
	if n.state&1 == 1 {
		return 1
	}
	return -1
}

// onePole is a one-pole filter usable as either a lowpass or, by subtracting
// its output from the input, a highpass.
type onePole struct {
	alpha float64
	y     float64
}

func newOnePole(cutoffHz, sampleRate float64) onePole {
	return onePole{alpha: 1 - math.Exp(-2*math.Pi*cutoffHz/sampleRate)}
}

func (p *onePole) lowpass(x float64) float64 {
	p.y += p.alpha * (x - p.y)
	return p.y
}

func (p *onePole) highpass(x float64) float64 {
	return x - p.lowpass(x)
}

// Kick is a sine-carrier bass drum with a fast pitch sweep and a decaying
// amplitude envelope.
type Kick struct {
	sampleRate  float64
	phase       float64
	freq        float64
	sweepTarget float64
	sweepAlpha  float64
	env         *envelope.Envelope
}

// NewKick returns a Kick running at sampleRate Hz, silent until Trigger.
func NewKick(sampleRate float64) *Kick {
	return &Kick{
		sampleRate:  sampleRate,
		sweepTarget: 60,
		sweepAlpha:  1 - math.Exp(-1/(0.05*sampleRate)),
		env:         envelope.New(),
	}
}

// Trigger restarts the kick: pitch resets to 120Hz and sweeps down to 60Hz
// over ~50ms, amplitude decays over ~200ms.
func (k *Kick) Trigger() {
	k.phase = 0
	k.freq = 120
	k.env.Trigger(200, k.sampleRate)
}

// RenderSample renders one sample of the kick's sine+sweep+decay.
func (k *Kick) RenderSample() float32 {
	e := k.env.Advance()
	if e == 0 {
		return 0
	}
	k.freq += (k.sweepTarget - k.freq) * k.sweepAlpha
	k.phase += k.freq / k.sampleRate
	if k.phase >= 1 {
		k.phase -= 1
	}
	return float32(math.Sin(2*math.Pi*k.phase) * e)
}

// Snare mixes a triangle body with bandpassed noise, each with its own
// decay.
type Snare struct {
	sampleRate float64
	phase      float64
	bodyEnv    *envelope.Envelope
	noiseEnv   *envelope.Envelope
	noise      lfsr
	bpLow      onePole
	bpHigh     onePole
}

// NewSnare returns a Snare running at sampleRate Hz, silent until Trigger.
func NewSnare(sampleRate float64) *Snare {
	return &Snare{
		sampleRate: sampleRate,
		bodyEnv:    envelope.New(),
		noiseEnv:   envelope.New(),
		noise:      newLFSR(),
		bpLow:      newOnePole(1800, sampleRate),
		bpHigh:     newOnePole(600, sampleRate),
	}
}

// Trigger restarts the snare's body and noise layers.
func (s *Snare) Trigger() {
	s.phase = 0
	s.bodyEnv.Trigger(120, s.sampleRate)
	s.noiseEnv.Trigger(120, s.sampleRate)
}

// RenderSample renders one sample of the snare's triangle+noise mix.
func (s *Snare) RenderSample() float32 {
	be := s.bodyEnv.Advance()
	ne := s.noiseEnv.Advance()
	if be == 0 && ne == 0 {
		return 0
	}
	s.phase += 200 / s.sampleRate
	if s.phase >= 1 {
		s.phase -= 1
	}
	body := (2*math.Abs(2*s.phase-1) - 1) * be

	n := s.noise.next()
	band := s.bpLow.lowpass(n)
	band = band - s.bpHigh.lowpass(band)
	noise := band * ne

	return float32(0.5*body + 0.7*noise)
}

// HiHat is LFSR noise through a highpass, with independent closed and open
// decays; a closed hit chokes a currently-ringing open hat.
type HiHat struct {
	sampleRate float64
	noise      lfsr
	hp         onePole
	env        *envelope.Envelope
}

// NewHiHat returns a HiHat running at sampleRate Hz, silent until triggered.
func NewHiHat(sampleRate float64) *HiHat {
	return &HiHat{
		sampleRate: sampleRate,
		noise:      newLFSR(),
		hp:         newOnePole(6000, sampleRate),
		env:        envelope.New(),
	}
}

// TriggerClosed plays a short, closed hat and chokes any ringing open hat.
func (h *HiHat) TriggerClosed() {
	h.env.Trigger(30, h.sampleRate)
}

// TriggerOpen plays a longer, open hat.
func (h *HiHat) TriggerOpen() {
	h.env.Trigger(200, h.sampleRate)
}

// RenderSample renders one sample of the hi-hat's highpassed noise.
func (h *HiHat) RenderSample() float32 {
	e := h.env.Advance()
	if e == 0 {
		return 0
	}
	n := h.noise.next()
	return float32(h.hp.highpass(n) * e)
}
