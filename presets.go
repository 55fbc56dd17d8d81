package acid303

import "github.com/acidline/acid303/internal/osc"

// Preset bundles a named, ready-to-load voice configuration, tempo, and
// 16-step synth pattern.
type Preset struct {
	Name     string
	TempoBPM float64
	Voice    VoiceConfig
	Steps    [16]SynthStep
}

// presets is the compiled-in, read-only preset bank.
var presets = []Preset{
	{
		Name:     "Classic Acid",
		TempoBPM: 130,
		Voice: VoiceConfig{
			Waveform:     osc.WaveformSaw,
			CutoffHz:     700,
			Resonance:    0.75,
			EnvMod:       0.6,
			DecayMs:      250,
			AccentAmount: 0.7,
			SlideTimeMs:  60,
			Distortion:   0.15,
		},
		Steps: [16]SynthStep{
			{Note: 45, Active: true},
			{Note: 45, Active: true, Accent: true},
			{Active: false},
			{Note: 48, Active: true, Slide: true},
			{Note: 45, Active: true},
			{Active: false},
			{Note: 52, Active: true, Accent: true},
			{Note: 45, Active: true, Slide: true},
			{Note: 45, Active: true},
			{Active: false},
			{Note: 50, Active: true},
			{Active: false},
			{Note: 45, Active: true, Accent: true},
			{Note: 48, Active: true, Slide: true},
			{Active: false},
			{Note: 45, Active: true},
		},
	},
	{
		Name:     "Deep Sub",
		TempoBPM: 120,
		Voice: VoiceConfig{
			Waveform:     osc.WaveformSquare,
			CutoffHz:     400,
			Resonance:    0.3,
			EnvMod:       0.2,
			DecayMs:      500,
			AccentAmount: 0.5,
			SlideTimeMs:  120,
			Distortion:   0.05,
		},
		Steps: [16]SynthStep{
			{Note: 33, Active: true},
			{Active: false}, {Active: false}, {Active: false},
			{Note: 33, Active: true, Slide: true},
			{Active: false}, {Active: false}, {Active: false},
			{Note: 36, Active: true},
			{Active: false}, {Active: false}, {Active: false},
			{Note: 33, Active: true, Accent: true},
			{Active: false}, {Active: false}, {Active: false},
		},
	},
	{
		Name:     "Screamer",
		TempoBPM: 150,
		Voice: VoiceConfig{
			Waveform:     osc.WaveformSaw,
			CutoffHz:     900,
			Resonance:    0.9,
			EnvMod:       0.85,
			DecayMs:      150,
			AccentAmount: 0.85,
			SlideTimeMs:  30,
			Distortion:   0.6,
		},
		Steps: [16]SynthStep{
			{Note: 57, Active: true, Accent: true},
			{Note: 60, Active: true, Slide: true},
			{Note: 57, Active: true},
			{Note: 55, Active: true, Slide: true},
			{Note: 57, Active: true, Accent: true},
			{Note: 60, Active: true, Slide: true},
			{Note: 63, Active: true, Accent: true},
			{Note: 60, Active: true, Slide: true},
			{Note: 57, Active: true, Accent: true},
			{Note: 60, Active: true, Slide: true},
			{Note: 57, Active: true},
			{Note: 55, Active: true, Slide: true},
			{Note: 57, Active: true, Accent: true},
			{Note: 52, Active: true, Slide: true},
			{Note: 57, Active: true, Accent: true},
			{Note: 60, Active: true, Slide: true},
		},
	},
}

// PresetCount returns the number of compiled-in presets.
func PresetCount() int {
	return len(presets)
}

// PresetName returns the name of the preset at index i, or "" if i is out
// of range.
func PresetName(i int) string {
	if i < 0 || i >= len(presets) {
		return ""
	}
	return presets[i].Name
}

// PresetAt returns a copy of the preset at index i. Callers may freely
// mutate the returned value; the compiled-in bank itself is never modified.
func PresetAt(i int) Preset {
	if i < 0 || i >= len(presets) {
		return Preset{}
	}
	return presets[i]
}
