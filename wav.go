// wav.go - 16-bit PCM mono WAV export of rendered buffers

/*
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionSynth
License: GPLv3 or later
*/

package synth

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/vazrupe/endibuf"
)

// WriteWAVFile writes rendered samples to path as a 16-bit PCM mono WAV
// file. Samples are clamped to [-1,1] before quantization, since drive above
// unity can legitimately push the mix outside that range.
func WriteWAVFile(path string, samples []float32, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("synth: create %s: %w", path, err)
	}
	w := endibuf.NewWriter(f)
	writeWAV(w, samples, sampleRate)
	if err := f.Close(); err != nil {
		return fmt.Errorf("synth: close %s: %w", path, err)
	}
	return nil
}

// writeWAV emits the RIFF/fmt/data chunks. Chunk tags are big-endian byte
// strings, every size and field is little-endian.
func writeWAV(w *endibuf.Writer, samples []float32, sampleRate int) {
	dataSize := uint32(len(samples) * 2)

	w.Endian = binary.BigEndian
	w.WriteBytes([]byte{'R', 'I', 'F', 'F'})
	w.Endian = binary.LittleEndian
	w.WriteUint32(36 + dataSize)
	w.Endian = binary.BigEndian
	w.WriteBytes([]byte{'W', 'A', 'V', 'E'})
	w.WriteBytes([]byte{'f', 'm', 't', ' '})

	w.Endian = binary.LittleEndian
	w.WriteUint32(16)                     // fmt chunk size
	w.WriteUint16(1)                      // PCM
	w.WriteUint16(1)                      // mono
	w.WriteUint32(uint32(sampleRate))     // sample rate
	w.WriteUint32(uint32(sampleRate * 2)) // byte rate
	w.WriteUint16(2)                      // block align
	w.WriteUint16(16)                     // bits per sample

	w.Endian = binary.BigEndian
	w.WriteBytes([]byte{'d', 'a', 't', 'a'})
	w.Endian = binary.LittleEndian
	w.WriteUint32(dataSize)
	w.WriteData(pcm16Convert(samples))
}

// pcm16Convert quantizes float32 samples to 16-bit PCM.
func pcm16Convert(samples []float32) []int16 {
	res := make([]int16, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		res[i] = int16(s * 0x7FFF)
	}
	return res
}
