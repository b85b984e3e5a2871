// main.go - synthtoy plays or renders procedural samples

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	synth "github.com/intuitionamiga/IntuitionSynth"
)

// Beats per minute of the demo tune, four steps per beat.
const tuneBPM = 132.0

func main() {
	wave := flag.String("wave", "sine", "Waveform: sine, saw, triangle, square, noise")
	freq := flag.Int("freq", 441, "Frequency in Hz (noise: generator seed)")
	duty := flag.String("duty", "1/2", "Square duty cycle: 1/2, 1/3, 1/4 or 1/8")
	attack := flag.Float64("attack", 0.1, "Envelope attack in seconds")
	decay := flag.Float64("decay", 0.1, "Envelope decay in seconds")
	sustain := flag.Float64("sustain", 0.5, "Envelope sustain height (0-1)")
	release := flag.Float64("release", 0.5, "Envelope release in seconds")
	volume := flag.Float64("volume", 1.0, "Volume multiplier")
	crunch := flag.Float64("crunch", 0.0, "Distortion crunch (0-1)")
	drive := flag.Float64("drive", 1.0, "Distortion drive pre-gain")
	rate := flag.Int("rate", synth.SAMPLE_RATE, "Sample rate in Hz")
	dur := flag.Float64("dur", 2.0, "Duration in seconds")
	out := flag.String("o", "", "Render to a WAV file instead of the speakers")
	tune := flag.Bool("tune", false, "Play a procedural kick/hat/lead pattern")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: synthtoy [options]\n\nPlays a procedurally synthesized sample, or renders it to a WAV file.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  synthtoy -wave square -freq 262 -duty 1/8 -crunch 0.3\n")
		fmt.Fprintf(os.Stderr, "  synthtoy -wave noise -attack 0.02 -decay 0.02 -release 0 -o hat.wav\n")
		fmt.Fprintf(os.Stderr, "  synthtoy -tune -dur 10\n")
	}
	flag.Parse()

	sample := synth.NewSample()
	sample.Frequency = *freq
	sample.Attack = float32(*attack)
	sample.Decay = float32(*decay)
	sample.Sustain = float32(*sustain)
	sample.Release = float32(*release)
	sample.Volume = float32(*volume)
	sample.Crunch = float32(*crunch)
	sample.Drive = float32(*drive)

	var err error
	if sample.WaveType, err = parseWave(*wave); err == nil {
		sample.DutyCycle, err = parseDuty(*duty)
	}
	if err == nil {
		err = sample.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	steps := int(*dur * tuneBPM / 60.0 * 4.0)
	stepSeconds := 60.0 / tuneBPM / 4.0

	if *out != "" {
		var rendered []float32
		if *tune {
			rendered = renderTune(*rate, steps, stepSeconds)
		} else {
			rendered = renderSample(sample, *rate, *dur)
		}
		if err := synth.WriteWAVFile(*out, rendered, *rate); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d samples at %d Hz)\n", *out, len(rendered), *rate)
		return
	}

	player, err := synth.NewOtoPlayer(*rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot open audio device: %v\n", err)
		os.Exit(1)
	}
	defer player.Close()
	player.SetupPlayer(synth.NewMixer(*rate))
	player.Start()

	if *tune {
		playTune(player, steps, stepSeconds)
	} else {
		if _, err := player.PlaySample(sample); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		time.Sleep(time.Duration(*dur * float64(time.Second)))
	}
}

func parseWave(name string) (synth.WaveType, error) {
	switch strings.ToLower(name) {
	case "sine":
		return synth.WAVE_SINE, nil
	case "saw":
		return synth.WAVE_SAW, nil
	case "triangle":
		return synth.WAVE_TRIANGLE, nil
	case "square":
		return synth.WAVE_SQUARE, nil
	case "noise":
		return synth.WAVE_NOISE, nil
	}
	return 0, fmt.Errorf("unknown waveform %q", name)
}

func parseDuty(name string) (synth.DutyCycle, error) {
	switch name {
	case "1/2":
		return synth.DUTY_HALF, nil
	case "1/3":
		return synth.DUTY_THIRD, nil
	case "1/4":
		return synth.DUTY_QUARTER, nil
	case "1/8":
		return synth.DUTY_EIGHT, nil
	}
	return 0, fmt.Errorf("unknown duty cycle %q", name)
}

// renderSample renders one voice offline. Rendering stops early if the
// envelope finishes before the requested duration.
func renderSample(s synth.Sample, rate int, dur float64) []float32 {
	mixer := synth.NewMixer(rate)
	if _, err := mixer.Play(s); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	total := int(dur * float64(rate))
	rendered := make([]float32, 0, total)
	buf := make([]float32, 1024)
	for len(rendered) < total && mixer.Voices() > 0 {
		n := min(total-len(rendered), len(buf))
		mixer.Generate(buf[:n])
		rendered = append(rendered, buf[:n]...)
	}
	return rendered
}

// kick combines a short punch with the triangle's low body.
func kick(rng *rand.Rand) synth.Sample {
	s := synth.NewSample()
	s.WaveType = synth.WAVE_TRIANGLE
	s.Frequency = 150
	s.Volume = 0.5
	s.Attack = 0.07
	s.Decay = 0.05
	s.Sustain = 0.9
	s.Release = 0.1 + rng.Float32()*0.1
	return s
}

// hat is an annoying high chirpy sound.
func hat() synth.Sample {
	s := synth.NewSample()
	s.WaveType = synth.WAVE_NOISE
	s.Volume = 0.2
	s.Attack = 0.02
	s.Decay = 0.02
	s.Sustain = 0.7
	s.Release = 0.0
	return s
}

// lead is a crunchy narrow square following a generated note sequence.
func lead(frequencies []int, index *int) synth.Sample {
	*index = (*index + 1) % len(frequencies)

	s := synth.NewSample()
	s.WaveType = synth.WAVE_SQUARE
	s.DutyCycle = synth.DUTY_EIGHT
	s.Frequency = frequencies[*index]
	s.Volume = 0.5
	s.Attack = 0.02
	s.Decay = 0.3
	s.Sustain = 0.4
	s.Release = 0.5
	s.Crunch = 0.3
	s.Drive = 0.2
	return s
}

// leadFrequencies picks eight random notes from an octave of pitches.
func leadFrequencies(rng *rand.Rand) []int {
	pitches := []int{262, 277, 294, 311, 330, 349, 370, 392, 415, 440, 466, 494}
	notes := make([]int, 8)
	for i := range notes {
		notes[i] = pitches[rng.Intn(len(pitches))]
	}
	return notes
}

// tuneStep enqueues the voices for one sixteenth-note step of the pattern.
func tuneStep(play func(synth.Sample), step int, rng *rand.Rand, frequencies []int, leadIndex *int) {
	switch step % 4 {
	case 0:
		play(kick(rng))
	case 2:
		play(lead(frequencies, leadIndex))
	}
	play(hat())
}

func playTune(player *synth.OtoPlayer, steps int, stepSeconds float64) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	frequencies := leadFrequencies(rng)
	leadIndex := 0

	play := func(s synth.Sample) {
		if _, err := player.PlaySample(s); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	for step := 0; step < steps; step++ {
		tuneStep(play, step, rng, frequencies, &leadIndex)
		time.Sleep(time.Duration(stepSeconds * float64(time.Second)))
	}
}

// renderTune renders the same pattern offline, advancing the mixer by one
// step's worth of samples between enqueues instead of sleeping.
func renderTune(rate, steps int, stepSeconds float64) []float32 {
	mixer := synth.NewMixer(rate)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	frequencies := leadFrequencies(rng)
	leadIndex := 0

	play := func(s synth.Sample) {
		if _, err := mixer.Play(s); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	stepSamples := int(stepSeconds * float64(rate))
	rendered := make([]float32, 0, steps*stepSamples)
	buf := make([]float32, 1024)
	for step := 0; step < steps; step++ {
		tuneStep(play, step, rng, frequencies, &leadIndex)
		for done := 0; done < stepSamples; {
			n := min(stepSamples-done, len(buf))
			mixer.Generate(buf[:n])
			rendered = append(rendered, buf[:n]...)
			done += n
		}
	}
	return rendered
}
