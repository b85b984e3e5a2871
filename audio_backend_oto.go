//go:build !headless

// audio_backend_oto.go - Default audio output via oto

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer drives a Mixer through an oto playback context. It owns the
// single mutual-exclusion boundary the engine requires: PlaySample and the
// Read callback both take mixerMu, so a control thread can enqueue voices
// while the audio thread fills buffers.
type OtoPlayer struct {
	ctx       *oto.Context
	player    *oto.Player
	mixer     *Mixer
	mixerMu   sync.Mutex // Guards every Play/Generate on the mixer
	sampleBuf []float32  // Pre-allocated sample buffer
	started   bool
	mutex     sync.Mutex // Only for setup/control operations
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{
		ctx:     ctx,
		started: false,
	}, nil
}

func (op *OtoPlayer) SetupPlayer(mixer *Mixer) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.mixer = mixer
	op.player = op.ctx.NewPlayer(op)
	// Pre-allocate for typical oto buffer sizes (4096 bytes = 1024 float32 samples)
	op.sampleBuf = make([]float32, 4096)
}

// PlaySample enqueues a voice on the mixer behind the shared lock.
func (op *OtoPlayer) PlaySample(s Sample) (VoiceHandle, error) {
	op.mixerMu.Lock()
	defer op.mixerMu.Unlock()
	return op.mixer.Play(s)
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	numSamples := len(p) / 4

	// Ensure our pre-allocated buffer is large enough
	// This should rarely happen after initial SetupPlayer
	if len(op.sampleBuf) < numSamples {
		op.sampleBuf = make([]float32, numSamples)
	}
	samples := op.sampleBuf[:numSamples]

	op.mixerMu.Lock()
	if op.mixer == nil {
		clear(samples)
	} else {
		op.mixer.Generate(samples)
	}
	op.mixerMu.Unlock()

	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&samples[0]))[:len(p)])
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Close()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
