// oscillator.go - Wavetable reader with a rotating offset

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

// Oscillator loops through an already populated wavetable. The table is owned
// by the Mixer's cache and shared read-only among every voice with the same
// parameters; the oscillator itself holds nothing but the reference and the
// wrap length.
type Oscillator struct {
	table []float32
	wrap  int // Sample rate; the table is twice this length
}

// NewOscillator wraps a table built by BuildWaveTable for the same sample
// rate.
func NewOscillator(table []float32, sampleRate int) *Oscillator {
	return &Oscillator{table: table, wrap: sampleRate}
}

// Render accumulates the next len(out) samples starting at the absolute
// offset into out. Reads start at offset mod wrap; the double-length table
// guarantees a full wrap-length window fits without a per-sample modulo.
// Output buffers longer than the wrap length are processed in wrap-sized
// chunks.
func (o *Oscillator) Render(out []float32, offset int) {
	for len(out) > 0 {
		n := min(len(out), o.wrap)
		window := o.table[offset%o.wrap:]
		for i, v := range window[:n] {
			out[i] += v
		}
		out = out[n:]
		offset += n
	}
}
