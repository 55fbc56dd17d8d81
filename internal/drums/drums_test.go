package drums

import "testing"

func TestKickDecaysToSilence(t *testing.T) {
	k := NewKick(48000)
	k.Trigger()
	var last float32 = 1
	// 3 s is 15 time constants of the 200 ms amplitude decay.
	for i := 0; i < 3*48000; i++ {
		last = k.RenderSample()
		if last < -1.5 || last > 1.5 {
			t.Fatalf("sample %d out of range: %v", i, last)
		}
	}
	if last != 0 {
		t.Fatalf("expected kick to fully decay, got %v", last)
	}
}

func TestKickSilentBeforeTrigger(t *testing.T) {
	k := NewKick(48000)
	if got := k.RenderSample(); got != 0 {
		t.Fatalf("expected silence before trigger, got %v", got)
	}
}

func TestSnareBoundedAndDecays(t *testing.T) {
	s := NewSnare(48000)
	s.Trigger()
	var last float32
	// 2 s is over 16 time constants of the 120 ms decay.
	for i := 0; i < 2*48000; i++ {
		last = s.RenderSample()
		if last < -1.5 || last > 1.5 {
			t.Fatalf("sample %d out of range: %v", i, last)
		}
	}
	if last != 0 {
		t.Fatalf("expected snare to fully decay, got %v", last)
	}
}

func TestHiHatClosedChokesOpen(t *testing.T) {
	h := NewHiHat(48000)
	h.TriggerOpen()
	for i := 0; i < 1000; i++ {
		h.RenderSample()
	}
	openLevel := h.env.Value()
	h.TriggerClosed()
	closedLevel := h.env.Value()
	if closedLevel < openLevel {
		t.Fatalf("expected choke to restart envelope at full level, got %v (was %v)", closedLevel, openLevel)
	}
	// closed decay is much shorter than open, so after a further stretch the
	// choked hat should be silent while an unchoked open hat would not be
	// (20000 samples is ~14 closed time constants but only ~2 open ones).
	for i := 0; i < 20000; i++ {
		h.RenderSample()
	}
	if h.env.Value() != 0 {
		t.Fatalf("expected closed hat to have decayed to silence, got %v", h.env.Value())
	}
}

func TestHiHatBounded(t *testing.T) {
	h := NewHiHat(48000)
	h.TriggerOpen()
	for i := 0; i < 48000; i++ {
		out := h.RenderSample()
		if out < -1.5 || out > 1.5 {
			t.Fatalf("sample %d out of range: %v", i, out)
		}
	}
}
