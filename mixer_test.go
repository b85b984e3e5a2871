// mixer_test.go - Voice pool, cache and mix-down tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixer_SilenceWithoutVoices(t *testing.T) {
	mixer := NewMixer(SAMPLE_RATE)

	out := []float32{3, 3, 3, 3}
	mixer.Generate(out)
	for i, v := range out {
		require.Equal(t, float32(0), v, "sample %d", i)
	}
}

func TestMixer_DefaultsSampleRate(t *testing.T) {
	assert.Equal(t, SAMPLE_RATE, NewMixer(0).SampleRate())
	assert.Equal(t, 22050, NewMixer(22050).SampleRate())
}

func TestMixer_PlayRejectsInvalidSamples(t *testing.T) {
	mixer := NewMixer(SAMPLE_RATE)

	s := NewSample()
	s.Frequency = -5
	_, err := mixer.Play(s)
	require.Error(t, err)
	assert.Equal(t, 0, mixer.Voices())
}

func TestMixer_HandlesIncrement(t *testing.T) {
	mixer := NewMixer(SAMPLE_RATE)

	for want := VoiceHandle(1); want <= 3; want++ {
		handle, err := mixer.Play(pinned(WAVE_SINE, 441))
		require.NoError(t, err)
		assert.Equal(t, want, handle)
	}
}

// One pinned 440 Hz sine voice at full volume reproduces the table formula
// exactly: no envelope shading, no scaling for a single voice.
func TestMixer_SingleVoiceMatchesFormula(t *testing.T) {
	mixer := NewMixer(SAMPLE_RATE)
	_, err := mixer.Play(pinned(WAVE_SINE, 440))
	require.NoError(t, err)

	out := make([]float32, 64)
	mixer.Generate(out)

	mult := float64(440) * 2 * math.Pi / float64(SAMPLE_RATE)
	for i, v := range out {
		require.Equal(t, float32(math.Sin(float64(i)*mult)), v, "sample %d", i)
	}

	// The next buffer continues where the first ended.
	mixer.Generate(out)
	for i, v := range out {
		require.Equal(t, float32(math.Sin(float64(64+i)*mult)), v, "sample %d", i)
	}
}

// Two identical voices average back to the single-voice signal: (x+x)/2 is
// exact in floating point.
func TestMixer_IdenticalVoicesAverageOut(t *testing.T) {
	solo := NewMixer(SAMPLE_RATE)
	_, err := solo.Play(pinned(WAVE_TRIANGLE, 441))
	require.NoError(t, err)
	want := make([]float32, 128)
	solo.Generate(want)

	duo := NewMixer(SAMPLE_RATE)
	_, err = duo.Play(pinned(WAVE_TRIANGLE, 441))
	require.NoError(t, err)
	_, err = duo.Play(pinned(WAVE_TRIANGLE, 441))
	require.NoError(t, err)
	got := make([]float32, 128)
	duo.Generate(got)

	require.Equal(t, want, got)
}

func TestMixer_TableCacheSharing(t *testing.T) {
	mixer := NewMixer(SAMPLE_RATE)

	_, err := mixer.Play(pinned(WAVE_SINE, 440))
	require.NoError(t, err)
	_, err = mixer.Play(pinned(WAVE_SINE, 440))
	require.NoError(t, err)
	assert.Len(t, mixer.tables, 1, "identical parameters must share one table")

	_, err = mixer.Play(pinned(WAVE_SAW, 440))
	require.NoError(t, err)
	assert.Len(t, mixer.tables, 2, "another waveform needs its own table")

	// Same saw, different duty cycle: the duty is normalized out of the key.
	saw := pinned(WAVE_SAW, 440)
	saw.DutyCycle = DUTY_EIGHT
	_, err = mixer.Play(saw)
	require.NoError(t, err)
	assert.Len(t, mixer.tables, 2)

	// For squares the duty cycle is part of the key.
	square := pinned(WAVE_SQUARE, 440)
	_, err = mixer.Play(square)
	require.NoError(t, err)
	square.DutyCycle = DUTY_QUARTER
	_, err = mixer.Play(square)
	require.NoError(t, err)
	assert.Len(t, mixer.tables, 4, "each square duty cycle needs its own table")
}

// Finished voices leave the pool on the Generate call where they complete.
func TestMixer_DropsFinishedVoices(t *testing.T) {
	mixer := NewMixer(SAMPLE_RATE)

	s := NewSample()
	s.Attack = 0.001
	s.Decay = 0.001
	s.Release = 0.001
	_, err := mixer.Play(s)
	require.NoError(t, err)
	require.Equal(t, 1, mixer.Voices())

	out := make([]float32, 256)
	mixer.Generate(out)
	assert.Equal(t, 0, mixer.Voices())
}

// The mix is scaled by the voice count at the start of the call, even when a
// voice finishes inside it: a pinned sine plus an instantly-finished voice
// halves the first buffer, and only the next buffer returns to full scale.
func TestMixer_ScalesByPreRemovalCount(t *testing.T) {
	mixer := NewMixer(SAMPLE_RATE)
	_, err := mixer.Play(pinned(WAVE_SINE, 441))
	require.NoError(t, err)

	silent := NewSample()
	silent.Attack = 0
	silent.Decay = 0
	silent.Sustain = 0
	silent.Release = 0
	_, err = mixer.Play(silent)
	require.NoError(t, err)

	table := BuildWaveTable(WAVE_SINE, 441, DUTY_HALF, SAMPLE_RATE)
	out := make([]float32, 64)

	mixer.Generate(out)
	require.Equal(t, 1, mixer.Voices(), "the silent voice finished immediately")
	for i, v := range out {
		require.Equal(t, table[i]*0.5, v, "sample %d must be halved", i)
	}

	mixer.Generate(out)
	for i, v := range out {
		require.Equal(t, table[64+i], v, "sample %d back at full scale", i)
	}
}

// After the scratch buffer warms up, the fill path allocates nothing.
func TestMixer_GenerateDoesNotAllocate(t *testing.T) {
	mixer := NewMixer(SAMPLE_RATE)
	for i := 0; i < 4; i++ {
		_, err := mixer.Play(pinned(WAVE_SAW, 100+i*50))
		require.NoError(t, err)
	}

	out := make([]float32, 512)
	mixer.Generate(out)

	allocs := testing.AllocsPerRun(50, func() {
		mixer.Generate(out)
	})
	assert.Zero(t, allocs)
}
