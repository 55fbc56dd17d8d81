// Package acid303 is a monophonic, single-threaded, real-time TB-303-style
// acid-bass synth, drum machine, and 16-step sequencer engine.
//
// Studio is the sole entry point a host needs: construct one with New,
// program its pattern and voice with the setters, then call Process once
// per audio callback. Nothing in this package allocates, locks, or touches
// the filesystem or network from Process.
package acid303

import (
	"fmt"

	"github.com/acidline/acid303/internal/drums"
	"github.com/acidline/acid303/internal/osc"
	"github.com/acidline/acid303/internal/sequencer"
	"github.com/acidline/acid303/internal/voice"
)

// Waveform re-exports the oscillator's waveform selector.
type Waveform = osc.Waveform

const (
	WaveformSaw    = osc.WaveformSaw
	WaveformSquare = osc.WaveformSquare
)

// SynthStep and DrumStep re-export the sequencer's step types so callers
// never need to import internal/sequencer directly.
type (
	SynthStep = sequencer.SynthStep
	DrumStep  = sequencer.DrumStep
)

// VoiceConfig re-exports the synth voice's parameter struct.
type VoiceConfig = voice.Config

// DefaultVoiceConfig returns a reasonable starting voice configuration.
func DefaultVoiceConfig() VoiceConfig {
	return voice.DefaultConfig()
}

// Studio composites one synth voice and three drum voices behind a single
// shared 16-step sequencer, mixing them down to mono.
type Studio struct {
	sampleRate float64
	seq        *sequencer.Sequencer
	synth      *voice.Voice
	kick       *drums.Kick
	snare      *drums.Snare
	hihat      *drums.HiHat

	synthGain float64
	drumGain  float64
	kickGain  float64
	snareGain float64
	hihatGain float64

	synthStepFlag bool
	drumStepFlag  bool
}

// New returns a Studio rendering at sampleRate Hz (e.g. 44100 or 48000).
// sampleRate must be positive; this is the only call in the package that
// can fail.
func New(sampleRate int) (*Studio, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("acid303: sample rate must be positive, got %d", sampleRate)
	}
	sr := float64(sampleRate)
	return &Studio{
		sampleRate: sr,
		seq:        sequencer.New(sr),
		synth:      voice.New(sr, voice.DefaultConfig()),
		kick:       drums.NewKick(sr),
		snare:      drums.NewSnare(sr),
		hihat:      drums.NewHiHat(sr),
		synthGain:  0.8,
		drumGain:   0.8,
		kickGain:   1,
		snareGain:  1,
		hihatGain:  1,
	}, nil
}

// Start begins sequencer playback from step 0.
func (s *Studio) Start() {
	s.seq.Start()
}

// Stop halts the sequencer. Voices already sounding continue to decay
// naturally; Stop does not cut them off.
func (s *Studio) Stop() {
	s.seq.Stop()
	s.synth.NoteOff()
}

// Running reports whether the sequencer is currently playing.
func (s *Studio) Running() bool {
	return s.seq.Running()
}

// CurrentStep returns the step index currently playing, or -1 if stopped.
func (s *Studio) CurrentStep() int {
	return s.seq.CurrentStep()
}

// SetTempo clamps bpm to the sequencer's supported range. While playing it
// takes effect at the next step boundary; while stopped, immediately.
func (s *Studio) SetTempo(bpm float64) {
	s.seq.SetTempo(bpm)
}

// TempoBPM returns the currently effective tempo.
func (s *Studio) TempoBPM() float64 {
	return s.seq.TempoBPM()
}

// SetSynthStep writes the whole synth step at index i (0..15).
func (s *Studio) SetSynthStep(i int, step SynthStep) {
	s.seq.SetSynthStep(i, step)
}

// SetDrumStep writes the whole drum step at index i (0..15).
func (s *Studio) SetDrumStep(i int, step DrumStep) {
	s.seq.SetDrumStep(i, step)
}

// SynthNoteOn/SynthNoteOff drive the synth voice directly, independent of
// the sequencer — for a host that wants to play live notes alongside or
// instead of the pattern.
func (s *Studio) SynthNoteOn(midi int, accent, slide bool) { s.synth.NoteOn(midi, accent, slide) }
func (s *Studio) SynthNoteOff()                            { s.synth.NoteOff() }

// SynthStepChanged and DrumStepChanged report whether a step boundary has
// occurred since the last call, each clearing its own edge independently.
// Both tracks share one sample clock, so a boundary always sets both edges
// at once; they're tracked separately so one observer reading its edge
// doesn't consume the other's.
func (s *Studio) SynthStepChanged() bool {
	v := s.synthStepFlag
	s.synthStepFlag = false
	return v
}

func (s *Studio) DrumStepChanged() bool {
	v := s.drumStepFlag
	s.drumStepFlag = false
	return v
}

// GetSynthStep and GetDrumStep return the step index currently playing, or
// -1 when stopped. Both tracks share one clock, so these always agree.
func (s *Studio) GetSynthStep() int { return s.seq.CurrentStep() }
func (s *Studio) GetDrumStep() int  { return s.seq.CurrentStep() }

// SetVoiceConfig replaces the synth voice's parameters wholesale, clamped
// to range.
func (s *Studio) SetVoiceConfig(cfg VoiceConfig) {
	s.synth.SetConfig(cfg)
}

// VoiceConfig returns the synth voice's current parameters.
func (s *Studio) VoiceConfig() VoiceConfig {
	return s.synth.Config()
}

// Per-parameter synth setters, each clamped to its §3 range, for a host
// that adjusts one knob at a time.
func (s *Studio) SetSynthWaveform(w Waveform)    { s.synth.SetWaveform(w) }
func (s *Studio) SetSynthCutoff(hz float64)      { s.synth.SetCutoff(hz) }
func (s *Studio) SetSynthResonance(r float64)    { s.synth.SetResonance(r) }
func (s *Studio) SetSynthEnvMod(m float64)       { s.synth.SetEnvMod(m) }
func (s *Studio) SetSynthDecay(ms float64)       { s.synth.SetDecay(ms) }
func (s *Studio) SetSynthAccentAmount(a float64) { s.synth.SetAccentAmount(a) }
func (s *Studio) SetSynthSlideTime(ms float64)   { s.synth.SetSlideTime(ms) }
func (s *Studio) SetSynthDistortion(d float64)   { s.synth.SetDistortion(d) }

// SetSynthVolume, SetDrumVolume, and the individual per-drum volumes control
// each section's contribution to the final mono mix; all clamped to [0, 1].
func (s *Studio) SetSynthVolume(v float64) { s.synthGain = clamp01(v) }
func (s *Studio) SetDrumVolume(v float64)  { s.drumGain = clamp01(v) }
func (s *Studio) SetKickVolume(v float64)  { s.kickGain = clamp01(v) }
func (s *Studio) SetSnareVolume(v float64) { s.snareGain = clamp01(v) }
func (s *Studio) SetHihatVolume(v float64) { s.hihatGain = clamp01(v) }

// LoadSynthPreset loads the compiled-in preset at index i, if any (see
// PresetAt). An out-of-range index is a no-op.
func (s *Studio) LoadSynthPreset(i int) {
	if i < 0 || i >= PresetCount() {
		return
	}
	s.LoadPreset(PresetAt(i))
}

// LoadPreset applies a preset's tempo, voice configuration, and 16-step
// synth pattern. The drum pattern, if any, is left untouched so a preset
// swap mid-performance doesn't interrupt a running drum pattern.
func (s *Studio) LoadPreset(p Preset) {
	s.SetTempo(p.TempoBPM)
	s.SetVoiceConfig(p.Voice)
	for i, step := range p.Steps {
		s.SetSynthStep(i, step)
	}
}

// Process renders len(dst) mono samples into dst, the single entry point a
// host calls once per audio callback. It never allocates, locks, or
// performs I/O.
func (s *Studio) Process(dst []float32) {
	for i := range dst {
		dst[i] = s.renderSample()
	}
}

func (s *Studio) renderSample() float32 {
	if began, idx := s.seq.Tick(); began {
		s.synthStepFlag = true
		s.drumStepFlag = true
		s.dispatchStep(idx)
	}

	synthOut := s.synth.RenderSample() * float32(s.synthGain)
	kickOut := s.kick.RenderSample() * float32(s.kickGain)
	snareOut := s.snare.RenderSample() * float32(s.snareGain)
	hihatOut := s.hihat.RenderSample() * float32(s.hihatGain)
	drumOut := (kickOut + snareOut + hihatOut) * float32(s.drumGain)

	out := synthOut + drumOut
	return clampSample(out)
}

func (s *Studio) dispatchStep(idx int) {
	synthStep := s.seq.SynthStepAt(idx)
	if synthStep.Active {
		s.synth.NoteOn(synthStep.Note, synthStep.Accent, synthStep.Slide)
	} else {
		s.synth.NoteOff()
	}

	drumStep := s.seq.DrumStepAt(idx)
	if drumStep.Kick {
		s.kick.Trigger()
	}
	if drumStep.Snare {
		s.snare.Trigger()
	}
	if drumStep.ClosedHat {
		s.hihat.TriggerClosed()
	} else if drumStep.OpenHat {
		s.hihat.TriggerOpen()
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampSample(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
