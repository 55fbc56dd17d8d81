// Package distortion implements the acid303 symmetric tanh soft-clip,
// mixed into the dry signal by an amount control.
package distortion

import "math"

// SoftClip drives x through a tanh waveshaper scaled by amount (0..1) and
// crossfades it against the dry signal so amount=0 is transparent and
// amount=1 is fully driven.
func SoftClip(x, amount float64) float64 {
	if amount <= 0 {
		return x
	}
	drive := 1 + amount*9
	wet := math.Tanh(drive*x) / math.Tanh(drive)
	return x*(1-amount) + wet*amount
}
