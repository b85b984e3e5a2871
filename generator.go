// generator.go - One playing voice: oscillator, envelope, effects, offset

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

// Generator is one independently-timed playing voice. It owns its oscillator,
// envelope, optional distortion, volume and running sample offset; the
// wavetable behind the oscillator is shared with every other voice using the
// same parameters.
type Generator struct {
	osc    *Oscillator
	env    *Envelope
	dist   *Distortion // nil when the sample carries no distortion stage
	volume float32

	offset   int
	finished bool
}

// NewGenerator assembles a voice from validated sample parameters and the
// shared wavetable resolved by the mixer.
func NewGenerator(s Sample, table []float32, sampleRate int) *Generator {
	g := &Generator{
		osc:    NewOscillator(table, sampleRate),
		env:    NewEnvelope(s.Attack, s.Decay, s.Sustain, s.Release, sampleRate),
		volume: s.Volume,
	}
	if s.distorts() {
		g.dist = NewDistortion(s.Crunch, s.Drive)
	}
	return g
}

// Produce renders the next len(buf) samples of this voice into buf, which
// must be a private scratch buffer zeroed by the caller - never the shared
// mix buffer, or this voice's envelope and distortion would be applied to
// samples other voices already contributed.
func (g *Generator) Produce(buf []float32) {
	g.osc.Render(buf, g.offset)
	phase := g.env.Apply(buf, g.offset)
	if g.dist != nil {
		g.dist.Apply(buf)
	}
	if g.volume != 1 {
		for i := range buf {
			buf[i] *= g.volume
		}
	}
	if phase == ENV_DONE {
		// Freeze the offset; the voice is about to be discarded.
		g.finished = true
		return
	}
	g.offset += len(buf)
}

// Done reports whether the envelope has finished; the mixer drops the voice
// on the fill call after it last contributed samples.
func (g *Generator) Done() bool {
	return g.finished
}
