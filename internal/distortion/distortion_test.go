package distortion

import "testing"

func TestSoftClipIdentityAtZero(t *testing.T) {
	for _, x := range []float64{-1, -0.3, 0, 0.3, 1} {
		if got := SoftClip(x, 0); got != x {
			t.Fatalf("SoftClip(%v, 0) = %v, want %v", x, got, x)
		}
	}
}

func TestSoftClipBounded(t *testing.T) {
	for _, amount := range []float64{0, 0.25, 0.5, 1} {
		for x := -2.0; x <= 2.0; x += 0.1 {
			got := SoftClip(x, amount)
			if got < -2.01 || got > 2.01 {
				t.Fatalf("SoftClip(%v, %v) = %v out of bounds", x, amount, got)
			}
		}
	}
}

func TestSoftClipFullDriveReachesUnity(t *testing.T) {
	got := SoftClip(1, 1)
	if got < 0.95 || got > 1.05 {
		t.Fatalf("SoftClip(1, 1) = %v, want close to 1", got)
	}
}
