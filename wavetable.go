// wavetable.go - Lookup table construction for all waveform types

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

import "math"

// Noise generator constants. The 23-bit LFSR with taps 23,18 produces a
// maximal-length sequence (period 2^23-1).
const (
	NOISE_LFSR_SEED = 0x7FFFFF // Fallback seed when the frequency maps to 0
	NOISE_LFSR_MASK = 0x7FFFFF // 23-bit mask
	NOISE_LFSR_BITS = 23       // Steps per output sample
)

// tableKey identifies one cached wavetable. Duty cycle is always part of the
// key for square waves; two squares at the same frequency but different duty
// cycles must never share a table.
type tableKey struct {
	waveType  WaveType
	frequency int
	dutyCycle DutyCycle
}

// newTableKey normalizes the duty cycle to DUTY_HALF for waveforms that do
// not use it, so a saw at 440 Hz resolves to one table no matter what duty
// cycle the caller left in the Sample.
func newTableKey(s Sample) tableKey {
	duty := DUTY_HALF
	if s.WaveType == WAVE_SQUARE {
		duty = s.DutyCycle
	}
	return tableKey{waveType: s.WaveType, frequency: s.Frequency, dutyCycle: duty}
}

// BuildWaveTable precomputes two full periods' worth of samples for the given
// waveform: 2*sampleRate entries, so any window of sampleRate consecutive
// samples starting anywhere in [0, sampleRate) is a valid read and the
// oscillator never needs a modulo per sample. All values lie in [-1, 1].
// The table is immutable after construction and shared by reference among
// every voice with the same key.
func BuildWaveTable(waveType WaveType, frequency int, dutyCycle DutyCycle, sampleRate int) []float32 {
	table := make([]float32, 2*sampleRate)

	switch waveType {
	case WAVE_SINE:
		// Hoist the per-index multiplier out of the loop
		mult := float64(frequency) * 2 * math.Pi / float64(sampleRate)
		for i := range table {
			table[i] = float32(math.Sin(float64(i) * mult))
		}

	case WAVE_SAW:
		step := float64(frequency) / float64(sampleRate)
		for i := range table {
			_, frac := math.Modf(float64(i) * step)
			table[i] = float32(1 - frac*2)
		}

	case WAVE_TRIANGLE:
		step := float64(frequency) / float64(sampleRate)
		for i := range table {
			_, frac := math.Modf(float64(i) * step)
			if slope := frac * 2; slope < 1 {
				table[i] = float32(-1 + slope*2)
			} else {
				table[i] = float32(3 - slope*2)
			}
		}

	case WAVE_SQUARE:
		step := float64(frequency) / float64(sampleRate)
		threshold := float64(dutyCycle.Frac())
		for i := range table {
			_, frac := math.Modf(float64(i) * step)
			if frac < threshold {
				table[i] = 1
			} else {
				table[i] = -1
			}
		}

	case WAVE_NOISE:
		// The frequency is the seed, not a pitch: the same seed always
		// yields the same table, which keeps noise cacheable and
		// reproducible across runs.
		sr := uint32(frequency) & NOISE_LFSR_MASK
		if sr == 0 {
			sr = NOISE_LFSR_SEED
		}
		for i := range table {
			// Advance a full register width per sample to decorrelate
			// successive states, then map the whole register to [-1, 1].
			for step := 0; step < NOISE_LFSR_BITS; step++ {
				bit := ((sr >> 22) ^ (sr >> 17)) & 1
				sr = ((sr << 1) | bit) & NOISE_LFSR_MASK
			}
			table[i] = float32(sr)/float32(NOISE_LFSR_MASK)*2 - 1
		}
	}

	return table
}
