// envelope.go - Four-phase ADSR gain state machine

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

// Envelope phases. A voice only ever advances ENV_ATTACK -> ENV_DECAY ->
// ENV_RELEASE -> ENV_DONE; it never regresses.
type EnvelopePhase int

const (
	ENV_ATTACK EnvelopePhase = iota
	ENV_DECAY
	ENV_RELEASE
	ENV_DONE
)

func (p EnvelopePhase) String() string {
	switch p {
	case ENV_ATTACK:
		return "attack"
	case ENV_DECAY:
		return "decay"
	case ENV_RELEASE:
		return "release"
	}
	return "done"
}

// Envelope shapes a voice's loudness over time. The four per-sample slopes
// are derived once at construction; Apply then multiplies whole buffers in
// place, advancing the phase exactly at the sample where each stage
// completes rather than at buffer boundaries.
//
// A stage duration of zero makes its slope infinite, so the stage completes
// on the very first sample it evaluates; the comparisons below are written so
// that the resulting non-finite gains select the transition branch and no
// NaN is ever written into a buffer.
type Envelope struct {
	attackSlope  float32
	decaySlope   float32
	releaseSlope float32
	sustain      float32

	phase      EnvelopePhase
	phaseStart int // Absolute sample index where the current phase began
}

// NewEnvelope derives the slopes from the stage timings in seconds and the
// sustain plateau height in [0,1].
func NewEnvelope(attack, decay, sustain, release float32, sampleRate int) *Envelope {
	rate := float32(sampleRate)
	return &Envelope{
		attackSlope:  1 / (attack * rate),
		decaySlope:   1 / (decay * sustain * rate),
		releaseSlope: 1 / (release * sustain * rate),
		sustain:      sustain,
		phase:        ENV_ATTACK,
	}
}

// Phase returns the current phase tag.
func (e *Envelope) Phase() EnvelopePhase {
	return e.phase
}

// gain evaluates the envelope at absolute sample index i, advancing through
// as many phase transitions as complete at that exact sample.
func (e *Envelope) gain(i int) float32 {
	for {
		switch e.phase {
		case ENV_ATTACK:
			if g := float32(i) * e.attackSlope; g < 1 {
				return g
			}
			if e.sustain <= 0 {
				// Nothing to sustain: skip from the attack's peak
				// straight to done.
				e.phase = ENV_DONE
				continue
			}
			e.phase = ENV_DECAY
			e.phaseStart = i

		case ENV_DECAY:
			if g := 1 - float32(i-e.phaseStart)*e.decaySlope; g > e.sustain {
				return g
			}
			if e.sustain >= 1 {
				// A full-height plateau has nothing to decay toward;
				// the envelope pins at the peak and never releases.
				return 1
			}
			e.phase = ENV_RELEASE
			e.phaseStart = i

		case ENV_RELEASE:
			if g := e.sustain - float32(i-e.phaseStart)*e.releaseSlope; g > 0 {
				return g
			}
			e.phase = ENV_DONE

		default:
			return 0
		}
	}
}

// Apply multiplies buf in place by the gain curve starting at the absolute
// sample offset and returns the phase reached after the last sample, so the
// caller can detect completion at the exact sample where ENV_DONE is first
// hit.
func (e *Envelope) Apply(buf []float32, offset int) EnvelopePhase {
	for k := range buf {
		buf[k] *= e.gain(offset + k)
	}
	return e.phase
}
