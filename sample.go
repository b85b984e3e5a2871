// sample.go - Voice parameters and their validation boundary

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

// Package synth is a procedural audio-sample synthesis engine. A Mixer owns a
// pool of playing voices and a shared wavetable cache; each voice runs the
// fixed chain oscillator -> envelope -> distortion -> volume, and Generate
// mixes every active voice into one output buffer. The hot path is
// allocation-free and is meant to run inside a real-time audio callback.
package synth

import "fmt"

// WaveType selects the waveform a voice's oscillator reads from its table.
type WaveType int

const (
	WAVE_SINE     WaveType = iota // Continuous pure tone
	WAVE_SAW                      // Strong, clear, buzzing sound
	WAVE_TRIANGLE                 // Smooth sound, between sine and square
	WAVE_SQUARE                   // Rich sound, uses the sample's duty cycle
	WAVE_NOISE                    // White noise; Frequency seeds the generator
)

func (w WaveType) String() string {
	switch w {
	case WAVE_SINE:
		return "sine"
	case WAVE_SAW:
		return "saw"
	case WAVE_TRIANGLE:
		return "triangle"
	case WAVE_SQUARE:
		return "square"
	case WAVE_NOISE:
		return "noise"
	}
	return fmt.Sprintf("WaveType(%d)", int(w))
}

// DutyCycle is the fraction of each square-wave period spent at the high
// level. The zero value is a 50% duty cycle.
type DutyCycle int

const (
	DUTY_HALF    DutyCycle = iota // 50%
	DUTY_THIRD                    // 33%
	DUTY_QUARTER                  // 25%
	DUTY_EIGHT                    // 12.5%
)

// Frac converts the duty cycle to the threshold compared against the
// normalized phase.
func (d DutyCycle) Frac() float32 {
	switch d {
	case DUTY_THIRD:
		return 0.33
	case DUTY_QUARTER:
		return 0.25
	case DUTY_EIGHT:
		return 0.125
	}
	return 0.5
}

func (d DutyCycle) String() string {
	switch d {
	case DUTY_HALF:
		return "1/2"
	case DUTY_THIRD:
		return "1/3"
	case DUTY_QUARTER:
		return "1/4"
	case DUTY_EIGHT:
		return "1/8"
	}
	return fmt.Sprintf("DutyCycle(%d)", int(d))
}

// Sample describes one sound to be played. It is a plain value object: build
// it once, hand it to Mixer.Play, reuse or serialize it freely. All fields
// are flat so hosts can round-trip presets through any encoder; the engine
// defines no storage format of its own.
type Sample struct {
	// WaveType selects the oscillator waveform.
	WaveType WaveType
	// Frequency is the tone frequency in integer Hz. For WAVE_NOISE it is
	// reused as the generator seed instead of a pitch.
	Frequency int
	// DutyCycle applies to WAVE_SQUARE only.
	DutyCycle DutyCycle
	// Attack is the time in seconds until the envelope reaches full height.
	Attack float32
	// Decay is the time in seconds from full height down to the sustain
	// plateau.
	Decay float32
	// Sustain is the height of the plateau (0..1), not a duration.
	Sustain float32
	// Release is the time in seconds from the plateau down to silence.
	Release float32
	// Volume is a linear gain multiplier applied after all effects.
	Volume float32
	// Crunch adds hard clipping (0..1). Zero leaves the signal untouched.
	Crunch float32
	// Drive is the distortion pre-gain. Values above 1 push samples outside
	// [-1,1] before shaping.
	Drive float32
}

// NewSample returns a Sample with the engine defaults: a 441 Hz sine with a
// moderate envelope, full volume and no distortion.
func NewSample() Sample {
	return Sample{
		WaveType:  WAVE_SINE,
		Frequency: 441,
		DutyCycle: DUTY_HALF,
		Attack:    0.1,
		Decay:     0.1,
		Sustain:   0.5,
		Release:   0.5,
		Volume:    1.0,
		Crunch:    0.0,
		Drive:     1.0,
	}
}

// Validate is the fail-fast boundary for construction-contract violations.
// Malformed parameters are caller-side configuration mistakes; they are
// rejected here so the per-sample hot path never has to check them.
func (s Sample) Validate() error {
	switch {
	case s.WaveType < WAVE_SINE || s.WaveType > WAVE_NOISE:
		return fmt.Errorf("synth: unknown wave type %d", int(s.WaveType))
	case s.Frequency <= 0:
		return fmt.Errorf("synth: frequency must be positive, got %d", s.Frequency)
	case s.DutyCycle < DUTY_HALF || s.DutyCycle > DUTY_EIGHT:
		return fmt.Errorf("synth: unknown duty cycle %d", int(s.DutyCycle))
	case s.Attack < 0 || s.Decay < 0 || s.Release < 0:
		return fmt.Errorf("synth: envelope timings must not be negative (attack=%g decay=%g release=%g)",
			s.Attack, s.Decay, s.Release)
	case s.Sustain < 0 || s.Sustain > 1:
		return fmt.Errorf("synth: sustain height must be within [0,1], got %g", s.Sustain)
	case s.Crunch < 0 || s.Crunch > 1:
		return fmt.Errorf("synth: crunch must be within [0,1], got %g", s.Crunch)
	case s.Drive < 0:
		return fmt.Errorf("synth: drive must not be negative, got %g", s.Drive)
	case s.Volume < 0:
		return fmt.Errorf("synth: volume must not be negative, got %g", s.Volume)
	}
	return nil
}

// distorts reports whether the sample carries a distortion stage. Crunch at
// zero with unity drive is a no-op shaper, so no stage is attached at all.
func (s Sample) distorts() bool {
	return s.Crunch != 0 || s.Drive != 1
}
