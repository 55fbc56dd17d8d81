// Package sequencer drives a fixed 16-step pattern from a sample-accurate
// clock, shared by the synth and drum tracks so they stay phase-locked at
// any tempo.
package sequencer

const (
	// Steps is the fixed pattern length.
	Steps = 16

	// MinTempoBPM and MaxTempoBPM bound SetTempo's clamp range.
	MinTempoBPM = 60
	MaxTempoBPM = 200
)

// SynthStep is one step of the synth pattern.
type SynthStep struct {
	Note   int
	Active bool
	Accent bool
	Slide  bool
}

// DrumStep is one step of the drum pattern; any subset of hits may fire on
// the same step.
type DrumStep struct {
	Kick      bool
	Snare     bool
	ClosedHat bool
	OpenHat   bool
}

// Sequencer advances a sample-accurate clock and dispatches edge-triggered
// step events from its 16-step synth and drum pattern tables.
type Sequencer struct {
	sampleRate float64

	tempoBPM        float64
	pendingTempo    float64
	samplesPerStep  float64
	samplesIntoStep float64

	running     bool
	currentStep int
	stepChanged bool

	synthPattern [Steps]SynthStep
	drumPattern  [Steps]DrumStep
}

// New returns a stopped Sequencer running at sampleRate Hz with a default
// tempo of 120 BPM and an empty pattern.
func New(sampleRate float64) *Sequencer {
	s := &Sequencer{
		sampleRate:  sampleRate,
		tempoBPM:    120,
		currentStep: -1,
	}
	s.pendingTempo = s.tempoBPM
	s.samplesPerStep = samplesPerStep(s.tempoBPM, sampleRate)
	return s
}

// SetTempo clamps bpm to [MinTempoBPM, MaxTempoBPM]. While running, the new
// tempo takes effect at the next step boundary, so a change mid-step never
// shortens or lengthens the step currently playing; while stopped, it takes
// effect immediately.
func (s *Sequencer) SetTempo(bpm float64) {
	if bpm < MinTempoBPM {
		bpm = MinTempoBPM
	}
	if bpm > MaxTempoBPM {
		bpm = MaxTempoBPM
	}
	s.pendingTempo = bpm
	if !s.running {
		s.tempoBPM = bpm
		s.samplesPerStep = samplesPerStep(bpm, s.sampleRate)
	}
}

// TempoBPM returns the currently effective tempo.
func (s *Sequencer) TempoBPM() float64 {
	return s.tempoBPM
}

// SetSynthStep writes the whole step at index i (0..15), so a reader never
// observes a torn mix of old and new fields.
func (s *Sequencer) SetSynthStep(i int, step SynthStep) {
	if i < 0 || i >= Steps {
		return
	}
	s.synthPattern[i] = step
}

// SetDrumStep writes the whole step at index i (0..15).
func (s *Sequencer) SetDrumStep(i int, step DrumStep) {
	if i < 0 || i >= Steps {
		return
	}
	s.drumPattern[i] = step
}

// SynthStepAt returns a copy of the synth step at index i.
func (s *Sequencer) SynthStepAt(i int) SynthStep {
	if i < 0 || i >= Steps {
		return SynthStep{}
	}
	return s.synthPattern[i]
}

// DrumStepAt returns a copy of the drum step at index i.
func (s *Sequencer) DrumStepAt(i int) DrumStep {
	if i < 0 || i >= Steps {
		return DrumStep{}
	}
	return s.drumPattern[i]
}

// Start begins playback from step 0 at the next Tick call.
func (s *Sequencer) Start() {
	s.tempoBPM = s.pendingTempo
	s.samplesPerStep = samplesPerStep(s.tempoBPM, s.sampleRate)
	s.samplesIntoStep = s.samplesPerStep
	s.currentStep = -1
	s.running = true
	s.stepChanged = false
}

// Stop halts playback; Tick becomes a no-op until Start is called again.
func (s *Sequencer) Stop() {
	s.running = false
	s.currentStep = -1
}

// Running reports whether the sequencer is currently playing.
func (s *Sequencer) Running() bool {
	return s.running
}

// CurrentStep returns the index of the step currently playing, or -1 if
// stopped.
func (s *Sequencer) CurrentStep() int {
	return s.currentStep
}

// Tick advances the sample clock by one sample and reports whether a new
// step began, and if so its index.
func (s *Sequencer) Tick() (stepBegan bool, index int) {
	if !s.running {
		return false, -1
	}
	s.samplesIntoStep++
	if s.samplesIntoStep < s.samplesPerStep {
		return false, -1
	}
	s.samplesIntoStep = 0
	s.currentStep = (s.currentStep + 1) % Steps
	s.stepChanged = true
	if s.pendingTempo != s.tempoBPM {
		s.tempoBPM = s.pendingTempo
		s.samplesPerStep = samplesPerStep(s.tempoBPM, s.sampleRate)
	}
	return true, s.currentStep
}

// StepChanged reports whether a step boundary has occurred since the last
// call, clearing the edge on read.
func (s *Sequencer) StepChanged() bool {
	v := s.stepChanged
	s.stepChanged = false
	return v
}

func samplesPerStep(bpm, sampleRate float64) float64 {
	// Each step is a 16th note: 4 steps per quarter note.
	return sampleRate * 60 / (bpm * 4)
}
