// Package audioout adapts the mono acid303 Studio output to ebiten's stereo
// audio playback context, for use by cmd/acidplay only; the core engine
// never imports this package.
package audioout

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// MonoSource is anything that can render a mono buffer of samples, such as
// acid303.Studio.
type MonoSource interface {
	Process(dst []float32)
}

// StreamReader wraps a MonoSource into an io.Reader of interleaved stereo
// float32 samples, duplicating each mono frame to both channels.
type StreamReader struct {
	mu      sync.Mutex
	source  MonoSource
	monoBuf []float32
}

// NewStreamReader returns a StreamReader over source.
func NewStreamReader(source MonoSource) *StreamReader {
	return &StreamReader{source: source}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8 // 2 channels * 4 bytes per float32
	if frames == 0 {
		return 0, nil
	}
	if cap(r.monoBuf) < frames {
		r.monoBuf = make([]float32, frames)
	}
	r.monoBuf = r.monoBuf[:frames]
	r.source.Process(r.monoBuf)

	for i := 0; i < frames; i++ {
		u := math.Float32bits(r.monoBuf[i])
		binary.LittleEndian.PutUint32(p[i*8:], u)
		binary.LittleEndian.PutUint32(p[i*8+4:], u)
	}
	return frames * 8, nil
}

func (r *StreamReader) Close() error { return nil }

// Player wraps an ebiten audio player driven by a StreamReader.
type Player struct {
	player *ebitaudio.Player
	reader io.ReadCloser
}

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioContextErr  error
	audioSampleRate  int
)

func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioContextErr != nil {
		return nil, audioContextErr
	}
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// NewPlayer returns a Player that pulls mono samples from source and plays
// them through ebiten's shared audio context at sampleRate.
func NewPlayer(sampleRate int, source MonoSource) (*Player, error) {
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return nil, err
	}
	reader := NewStreamReader(source)
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, err
	}
	return &Player{player: pl, reader: reader}, nil
}

func (p *Player) Play()  { p.player.Play() }
func (p *Player) Pause() { p.player.Pause() }
func (p *Player) IsPlaying() bool {
	return p.player.IsPlaying()
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	return p.player.Position()
}

func (p *Player) Stop() error {
	p.player.Pause()
	p.player.Close()
	return p.reader.Close()
}
