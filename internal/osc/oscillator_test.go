package osc

import "testing"

func TestOscillatorBounded(t *testing.T) {
	o := New(48000)
	for _, w := range []Waveform{WaveformSaw, WaveformSquare} {
		o.Reset()
		for i := 0; i < 48000; i++ {
			v := o.Next(440, w)
			if v < -1.5 || v > 1.5 {
				t.Fatalf("wave %d: sample %d out of range: %v", w, i, v)
			}
		}
	}
}

func TestOscillatorPhaseWraps(t *testing.T) {
	o := New(48000)
	for i := 0; i < 1000; i++ {
		o.Next(2000, WaveformSaw)
	}
	if o.phase < 0 || o.phase >= 1 {
		t.Fatalf("phase escaped [0,1): %v", o.phase)
	}
}

func TestOscillatorZeroFrequencyIsSilentRamp(t *testing.T) {
	o := New(48000)
	v := o.Next(0, WaveformSaw)
	if v < -1 || v > 1 {
		t.Fatalf("zero freq sample out of range: %v", v)
	}
}
