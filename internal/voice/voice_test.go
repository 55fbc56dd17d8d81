package voice

import "testing"

func TestVoiceSilentBeforeNoteOn(t *testing.T) {
	v := New(48000, DefaultConfig())
	for i := 0; i < 100; i++ {
		if got := v.RenderSample(); got != 0 {
			t.Fatalf("sample %d not silent before note-on: %v", i, got)
		}
	}
}

func TestVoiceBoundedAfterAccentedNoteOn(t *testing.T) {
	v := New(48000, DefaultConfig())
	v.NoteOn(57, true, false)
	for i := 0; i < 48000; i++ {
		out := v.RenderSample()
		if out < -1.5 || out > 1.5 {
			t.Fatalf("sample %d out of range: %v", i, out)
		}
	}
}

func TestVoiceSlideDoesNotRetriggerEnvelope(t *testing.T) {
	v := New(48000, DefaultConfig())
	v.NoteOn(57, false, false)
	for i := 0; i < 1000; i++ {
		v.RenderSample()
	}
	before := v.env.Value()
	v.NoteOn(60, false, true)
	after := v.env.Value()
	if after != before {
		t.Fatalf("slide note-on should not reset envelope: before=%v after=%v", before, after)
	}
	if v.glide.Target == v.glide.Current {
		t.Fatalf("expected slide to target a new frequency")
	}
}

func TestVoiceSlideRetriggersAfterNoteOff(t *testing.T) {
	v := New(48000, DefaultConfig())
	v.NoteOn(57, false, false)
	for i := 0; i < 1000; i++ {
		v.RenderSample()
	}
	v.NoteOff()
	v.NoteOn(60, false, true)
	if v.env.Value() != 1 {
		t.Fatalf("expected released gate to force a retrigger despite slide=true, got env=%v", v.env.Value())
	}
}

func TestVoiceSlideRetriggersBelowThreshold(t *testing.T) {
	v := New(48000, DefaultConfig())
	v.NoteOn(57, false, false)
	for i := 0; i < 48000; i++ {
		v.RenderSample()
	}
	if v.env.Value() <= 0 || v.env.Value() > slideThreshold {
		t.Skipf("envelope at %v, not in the below-threshold window this test targets", v.env.Value())
	}
	v.NoteOn(60, false, true)
	if v.env.Value() != 1 {
		t.Fatalf("expected envelope below slide threshold to force a retrigger, got %v", v.env.Value())
	}
}

func TestVoiceNonSlideRetriggersEnvelope(t *testing.T) {
	v := New(48000, DefaultConfig())
	v.NoteOn(57, false, false)
	for i := 0; i < 20000; i++ {
		v.RenderSample()
	}
	v.NoteOn(60, false, false)
	if v.env.Value() != 1 {
		t.Fatalf("expected retrigger to reset envelope to 1, got %v", v.env.Value())
	}
}

func TestVoiceConfigClamped(t *testing.T) {
	v := New(48000, DefaultConfig())
	v.SetConfig(Config{CutoffHz: -5, Resonance: 5, EnvMod: -1, DecayMs: 0, AccentAmount: 9, SlideTimeMs: 0, Distortion: 9})
	cfg := v.Config()
	if cfg.CutoffHz != 20 || cfg.Resonance != 1 || cfg.EnvMod != 0 || cfg.Distortion != 1 || cfg.AccentAmount != 1 {
		t.Fatalf("expected clamped config, got %+v", cfg)
	}
}

func TestVoicePerFieldSettersClamp(t *testing.T) {
	v := New(48000, DefaultConfig())
	v.SetCutoff(-5)
	v.SetResonance(2)
	v.SetAccentAmount(-1)
	cfg := v.Config()
	if cfg.CutoffHz != 20 || cfg.Resonance != 1 || cfg.AccentAmount != 0 {
		t.Fatalf("expected clamped config, got %+v", cfg)
	}
}

func TestAccentAmountControlsAccentLevel(t *testing.T) {
	v := New(48000, DefaultConfig())
	v.SetAccentAmount(0.5)
	v.NoteOn(57, true, false)
	if v.accentLevel != 0.5 {
		t.Fatalf("expected accentLevel to follow configured AccentAmount, got %v", v.accentLevel)
	}
}
