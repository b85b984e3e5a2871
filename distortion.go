// distortion.go - Symmetric power-law waveshaper

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

import "math"

// Distortion is the engine's single post-effect: a symmetric power-law
// waveshaper. Crunch approaching 1 gives a very small exponent and an
// aggressive hard clip; crunch approaching 0 leaves the exponent near 1 and
// the signal almost untouched. Drive is a linear pre-gain with no clamp, so
// values above 1 push samples outside [-1,1] before shaping.
//
// Algorithm from: https://github.com/amsynth/amsynth
type Distortion struct {
	exponent float32
	drive    float32
}

// NewDistortion clamps crunch into [0.01, 0.99] and stores the resulting
// exponent. The upper clamp keeps the exponent positive: pow(0, 0) is 1, so
// an exponent of exactly zero would turn silence into DC.
func NewDistortion(crunch, drive float32) *Distortion {
	return &Distortion{
		exponent: 1 - min(max(crunch, 0.01), 0.99),
		drive:    drive,
	}
}

// Apply shapes buf in place: y = sign(x*drive) * |x*drive|^exponent. The
// effect is stateless per call.
func (d *Distortion) Apply(buf []float32) {
	exp := float64(d.exponent)
	for i, x := range buf {
		x *= d.drive
		if x < 0 {
			buf[i] = -float32(math.Pow(float64(-x), exp))
		} else {
			buf[i] = float32(math.Pow(float64(x), exp))
		}
	}
}
