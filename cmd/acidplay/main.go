package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/acidline/acid303"
	"github.com/acidline/acid303/internal/audioout"
)

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		preset     = flag.Int("preset", 0, "compiled-in preset index to load")
		tempo      = flag.Float64("tempo", 0, "override tempo in BPM (0 = use preset tempo)")
		seconds    = flag.Float64("seconds", 8, "seconds to play before stopping")
		wavPath    = flag.String("wav", "", "render headlessly to this WAV file instead of playing live")
	)
	flag.Parse()

	if *preset < 0 || *preset >= acid303.PresetCount() {
		log.Fatalf("invalid -preset %d (have %d presets)", *preset, acid303.PresetCount())
	}

	studio, err := acid303.New(*sampleRate)
	if err != nil {
		log.Fatal(err)
	}
	studio.LoadPreset(acid303.PresetAt(*preset))
	if *tempo > 0 {
		studio.SetTempo(*tempo)
	}
	studio.Start()

	if *wavPath != "" {
		samples := acid303.RenderSamples(studio, *sampleRate, *seconds)
		wav := acid303.EncodeWAVFloat32LE(samples, *sampleRate)
		if err := os.WriteFile(*wavPath, wav, 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %d samples to %s\n", len(samples), *wavPath)
		return
	}

	player, err := audioout.NewPlayer(*sampleRate, studio)
	if err != nil {
		log.Fatal(err)
	}
	player.Play()
	fmt.Printf("playing preset %q at %.0f BPM\n", acid303.PresetName(*preset), studio.TempoBPM())
	time.Sleep(time.Duration(*seconds * float64(time.Second)))
	studio.Stop()
	if err := player.Stop(); err != nil {
		log.Fatal(err)
	}
}
