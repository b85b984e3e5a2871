// oscillator_test.go - Wavetable reader tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Rendering N samples then M more from the saved offset must equal one
// N+M render: the offset is the only state between calls.
func TestOscillator_SplitRenderMatchesSingleRender(t *testing.T) {
	table := BuildWaveTable(WAVE_SINE, 441, DUTY_HALF, SAMPLE_RATE)
	whole := make([]float32, 128)
	NewOscillator(table, SAMPLE_RATE).Render(whole, 0)

	split := make([]float32, 128)
	osc := NewOscillator(table, SAMPLE_RATE)
	osc.Render(split[:48], 0)
	osc.Render(split[48:], 48)

	require.Equal(t, whole, split)
}

func TestOscillator_RenderAccumulates(t *testing.T) {
	table := BuildWaveTable(WAVE_SAW, 441, DUTY_HALF, SAMPLE_RATE)
	osc := NewOscillator(table, SAMPLE_RATE)

	out := []float32{10, 10, 10, 10}
	osc.Render(out, 0)
	for i := range out {
		assert.Equal(t, 10+table[i], out[i], "index %d", i)
	}
}

func TestOscillator_OffsetWraps(t *testing.T) {
	table := BuildWaveTable(WAVE_TRIANGLE, 441, DUTY_HALF, SAMPLE_RATE)
	osc := NewOscillator(table, SAMPLE_RATE)

	a := make([]float32, 64)
	b := make([]float32, 64)
	osc.Render(a, 100)
	osc.Render(b, 100+SAMPLE_RATE)
	require.Equal(t, a, b, "offsets one wrap length apart read the same window")
}

// Output buffers longer than the wrap length are filled in wrap-sized
// chunks; the result is the table cycling with period SAMPLE_RATE.
func TestOscillator_BufferLongerThanWrap(t *testing.T) {
	table := BuildWaveTable(WAVE_SINE, 441, DUTY_HALF, SAMPLE_RATE)
	osc := NewOscillator(table, SAMPLE_RATE)

	out := make([]float32, SAMPLE_RATE+1000)
	osc.Render(out, 0)

	for _, i := range []int{0, 1, SAMPLE_RATE - 1, SAMPLE_RATE, SAMPLE_RATE + 999} {
		require.Equal(t, table[i%SAMPLE_RATE], out[i], "index %d", i)
	}
}
