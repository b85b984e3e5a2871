// mixer.go - Voice pool, wavetable cache and the buffer-fill entry point

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

// SAMPLE_RATE is the default sample rate in Hz.
const SAMPLE_RATE = 44100

// VoiceHandle identifies an enqueued voice. Voices are removed only by
// natural envelope completion, so the handle exists for host bookkeeping
// rather than control.
type VoiceHandle uint64

// Mixer owns the pool of active generators and the cache of wavetables keyed
// by (waveform, frequency, duty cycle). The cache only grows for the mixer's
// lifetime: keys are bounded by the discrete parameter combinations a process
// actually requests, and a hit means unrelated voices never duplicate
// trigonometric work.
//
// The mixer is not internally reentrant-safe: Generate calls must be strictly
// sequential, and a host that enqueues from a control thread while an audio
// callback fills buffers must guard Play and Generate with one shared lock
// (the bundled backends do exactly that).
type Mixer struct {
	sampleRate int
	voices     []*Generator
	tables     map[tableKey][]float32
	scratch    []float32
	lastHandle VoiceHandle
}

// NewMixer creates a mixer for the given sample rate; zero or negative falls
// back to SAMPLE_RATE.
func NewMixer(sampleRate int) *Mixer {
	if sampleRate <= 0 {
		sampleRate = SAMPLE_RATE
	}
	return &Mixer{
		sampleRate: sampleRate,
		tables:     make(map[tableKey][]float32),
	}
}

// SampleRate returns the rate the mixer renders at.
func (m *Mixer) SampleRate() int {
	return m.sampleRate
}

// Voices returns the number of voices still playing.
func (m *Mixer) Voices() int {
	return len(m.voices)
}

// Play validates the sample, resolves its wavetable from the cache (building
// and inserting on miss) and appends a fresh voice to the pool. It never
// blocks; the new voice is heard on the next Generate call.
func (m *Mixer) Play(s Sample) (VoiceHandle, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	key := newTableKey(s)
	table, ok := m.tables[key]
	if !ok {
		table = BuildWaveTable(key.waveType, key.frequency, key.dutyCycle, m.sampleRate)
		m.tables[key] = table
	}

	m.voices = append(m.voices, NewGenerator(s, table, m.sampleRate))
	m.lastHandle++
	return m.lastHandle, nil
}

// Generate fills out with the mix of every active voice and drops the voices
// whose envelopes finished during this call. Each voice renders into one
// reusable private scratch buffer before being summed, so no voice ever
// shapes samples another voice already contributed. The sum is scaled by the
// reciprocal of the voice count at the start of the call - the pre-removal
// count, so the average cannot jump mid-buffer just because a voice finished
// inside this call. Loudness therefore varies with polyphony; that is the
// documented trade-off for bounding the output amplitude.
func (m *Mixer) Generate(out []float32) {
	clear(out)

	n := len(m.voices)
	if n == 0 {
		return
	}

	if cap(m.scratch) < len(out) {
		m.scratch = make([]float32, len(out))
	}
	scratch := m.scratch[:len(out)]

	kept := m.voices[:0]
	for _, voice := range m.voices {
		clear(scratch)
		voice.Produce(scratch)
		for i, v := range scratch {
			out[i] += v
		}
		if !voice.Done() {
			kept = append(kept, voice)
		}
	}
	for i := len(kept); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = kept

	if n > 1 {
		inv := 1 / float32(n)
		for i := range out {
			out[i] *= inv
		}
	}
}
