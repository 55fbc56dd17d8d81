package sequencer

import "testing"

func TestSequencerStoppedTickIsNoop(t *testing.T) {
	s := New(48000)
	began, idx := s.Tick()
	if began || idx != -1 {
		t.Fatalf("expected no-op tick before start, got began=%v idx=%d", began, idx)
	}
}

func TestSequencerStartEmitsStepZeroImmediately(t *testing.T) {
	s := New(48000)
	s.Start()
	began, idx := s.Tick()
	if !began || idx != 0 {
		t.Fatalf("expected step 0 on first tick after start, got began=%v idx=%d", began, idx)
	}
}

func TestSequencerAdvancesThroughAllSteps(t *testing.T) {
	s := New(48000)
	s.Start()
	seen := map[int]bool{}
	samplesPerStep := samplesPerStep(120, 48000)
	total := int(samplesPerStep*float64(Steps)) + Steps
	for i := 0; i < total; i++ {
		began, idx := s.Tick()
		if began {
			seen[idx] = true
		}
	}
	if len(seen) != Steps {
		t.Fatalf("expected all %d steps visited, saw %d", Steps, len(seen))
	}
}

func TestSequencerStopResetsCurrentStep(t *testing.T) {
	s := New(48000)
	s.Start()
	s.Tick()
	s.Stop()
	if s.CurrentStep() != -1 {
		t.Fatalf("expected current step -1 after stop, got %d", s.CurrentStep())
	}
	began, _ := s.Tick()
	if began {
		t.Fatalf("expected no step events after stop")
	}
}

func TestSequencerTempoChangeAppliesAtNextBoundary(t *testing.T) {
	s := New(48000)
	s.Start()
	s.Tick() // step 0 begins
	initialSamplesPerStep := s.samplesPerStep
	s.SetTempo(200)
	// still mid-step: samplesPerStep must not change until the boundary.
	if s.samplesPerStep != initialSamplesPerStep {
		t.Fatalf("tempo change leaked into current step")
	}
	for s.samplesIntoStep < s.samplesPerStep-1 {
		s.Tick()
	}
	began, _ := s.Tick()
	if !began {
		t.Fatalf("expected step boundary")
	}
	if s.TempoBPM() != 200 {
		t.Fatalf("expected tempo applied at boundary, got %v", s.TempoBPM())
	}
}

func TestSequencerTempoClamped(t *testing.T) {
	s := New(48000)
	s.SetTempo(1)
	s.Start()
	if s.TempoBPM() != MinTempoBPM {
		t.Fatalf("expected tempo clamped to min, got %v", s.TempoBPM())
	}
	s.SetTempo(9999)
	s.Stop()
	s.Start()
	if s.TempoBPM() != MaxTempoBPM {
		t.Fatalf("expected tempo clamped to max, got %v", s.TempoBPM())
	}
}

func TestSequencerStepWriteIsWholeValue(t *testing.T) {
	s := New(48000)
	s.SetSynthStep(3, SynthStep{Note: 60, Active: true, Accent: true})
	got := s.SynthStepAt(3)
	if got.Note != 60 || !got.Active || !got.Accent || got.Slide {
		t.Fatalf("unexpected step contents: %+v", got)
	}
	s.SetDrumStep(5, DrumStep{Kick: true, OpenHat: true})
	d := s.DrumStepAt(5)
	if !d.Kick || d.Snare || !d.OpenHat {
		t.Fatalf("unexpected drum step contents: %+v", d)
	}
}

func TestSequencerStepChangedEdgeClearsOnRead(t *testing.T) {
	s := New(48000)
	s.Start()
	s.Tick()
	if !s.StepChanged() {
		t.Fatalf("expected step-changed edge after first tick")
	}
	if s.StepChanged() {
		t.Fatalf("expected edge to clear after read")
	}
}
