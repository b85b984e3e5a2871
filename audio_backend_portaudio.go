//go:build portaudio && !headless

// audio_backend_portaudio.go - Alternative audio output via PortAudio

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

import (
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudioPlayer is an opt-in alternative to OtoPlayer for hosts that
// already ship PortAudio. It follows the same contract: PlaySample and the
// stream callback share one lock around the mixer.
type PortAudioPlayer struct {
	stream     *portaudio.Stream
	sampleRate int
	mixer      *Mixer
	mixerMu    sync.Mutex // Guards every Play/Generate on the mixer
	started    bool
	mutex      sync.Mutex // Only for setup/control operations
}

func NewPortAudioPlayer(sampleRate int) (*PortAudioPlayer, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	return &PortAudioPlayer{sampleRate: sampleRate}, nil
}

func (pp *PortAudioPlayer) SetupPlayer(mixer *Mixer) error {
	pp.mutex.Lock()
	defer pp.mutex.Unlock()

	pp.mixer = mixer
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(pp.sampleRate), 1024, pp.callback)
	if err != nil {
		return err
	}
	pp.stream = stream
	return nil
}

// PlaySample enqueues a voice on the mixer behind the shared lock.
func (pp *PortAudioPlayer) PlaySample(s Sample) (VoiceHandle, error) {
	pp.mixerMu.Lock()
	defer pp.mixerMu.Unlock()
	return pp.mixer.Play(s)
}

func (pp *PortAudioPlayer) callback(out []float32) {
	pp.mixerMu.Lock()
	defer pp.mixerMu.Unlock()

	if pp.mixer == nil {
		clear(out)
		return
	}
	pp.mixer.Generate(out)
}

func (pp *PortAudioPlayer) Start() {
	pp.mutex.Lock()
	defer pp.mutex.Unlock()

	if !pp.started && pp.stream != nil {
		if err := pp.stream.Start(); err == nil {
			pp.started = true
		}
	}
}

func (pp *PortAudioPlayer) Stop() {
	pp.mutex.Lock()
	defer pp.mutex.Unlock()

	if pp.started && pp.stream != nil {
		pp.stream.Stop()
		pp.started = false
	}
}

func (pp *PortAudioPlayer) Close() {
	pp.Stop()
	pp.mutex.Lock()
	defer pp.mutex.Unlock()

	if pp.stream != nil {
		pp.stream.Close()
		pp.stream = nil
	}
	portaudio.Terminate()
}

func (pp *PortAudioPlayer) IsStarted() bool {
	pp.mutex.Lock()
	defer pp.mutex.Unlock()
	return pp.started
}
