package acid303

import (
	"encoding/binary"
	"math"
)

// RenderSamples runs studio's sequencer for the given duration and returns
// the rendered mono samples. It is a convenience for tests and for
// cmd/acidplay's headless -wav rendering mode; it does not touch the
// filesystem itself.
func RenderSamples(studio *Studio, sampleRate int, seconds float64) []float32 {
	frames := int(float64(sampleRate) * seconds)
	out := make([]float32, frames)
	studio.Process(out)
	return out
}

// EncodeWAVFloat32LE encodes mono float32 samples as a 32-bit IEEE-float
// WAV file.
func EncodeWAVFloat32LE(samples []float32, sampleRate int) []byte {
	const channels = 1
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}
