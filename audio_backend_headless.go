//go:build headless

// audio_backend_headless.go - No-op audio output for CI and tests

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

import "sync"

type OtoPlayer struct {
	mixer   *Mixer
	mixerMu sync.Mutex
	started bool
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(mixer *Mixer) {
	op.mixer = mixer
}

func (op *OtoPlayer) PlaySample(s Sample) (VoiceHandle, error) {
	op.mixerMu.Lock()
	defer op.mixerMu.Unlock()
	return op.mixer.Play(s)
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.started = true
}

func (op *OtoPlayer) Stop() {
	op.started = false
}

func (op *OtoPlayer) Close() {
	op.started = false
}

func (op *OtoPlayer) IsStarted() bool {
	return op.started
}
