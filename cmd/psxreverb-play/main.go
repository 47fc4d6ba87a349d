// License: GPLv3 or later

// psxreverb-play is a minimal demo host: it generates a short test tone,
// runs it through the reverb core, and streams the result to the speaker
// via oto. Decoding real audio files is out of scope (spec §1); this proves
// the filter contract (§6.1) end to end, not a playback engine.
package main

import (
	"io"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"
	"github.com/spf13/pflag"

	"github.com/nullwave/psxreverb"
	"github.com/nullwave/psxreverb/internal/presets"
)

const sampleRate = 44100

func main() {
	preset := pflag.StringP("preset", "p", presets.Hall, "reverb preset name")
	wet := pflag.Float64P("wet", "w", 0.5, "wet mix, 0..1")
	seconds := pflag.IntP("seconds", "s", 4, "seconds of test tone to play")
	pflag.Usage = func() {
		os.Stderr.WriteString("psxreverb-play: play a test tone through the PSX SPU reverb core\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "psxreverb-play"})

	inst, err := psxreverb.NewInstance(*preset)
	if err != nil {
		logger.Fatal("failed to construct reverb instance", "preset", *preset, "err", err)
	}
	inst.SetWet(*wet)

	buf := generateTestTone(*seconds, sampleRate)
	if err := inst.Process(buf, len(buf)/2, 2, sampleRate); err != nil {
		logger.Fatal("process failed", "err", err)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4096,
	})
	if err != nil {
		logger.Fatal("failed to open audio context", "err", err)
	}
	<-ready

	player := ctx.NewPlayer(newBufferReader(buf))
	player.Play()
	logger.Info("playing", "preset", *preset, "wet", *wet, "seconds", *seconds)

	for player.IsPlaying() {
		time.Sleep(20 * time.Millisecond)
	}
	player.Close()
}

func generateTestTone(seconds, rate int) []float32 {
	frames := seconds * rate
	buf := make([]float32, frames*2)
	const freq = 440.0
	for i := 0; i < frames; i++ {
		phase := 2 * math.Pi * freq * float64(i) / float64(rate)
		s := float32(0.3 * math.Sin(phase))
		buf[i*2] = s
		buf[i*2+1] = s
	}
	return buf
}

// bufferReader streams a pre-rendered float32 sample buffer to oto as raw
// little-endian bytes, one Read call at a time.
type bufferReader struct {
	samples []float32
	pos     int
}

func newBufferReader(samples []float32) *bufferReader {
	return &bufferReader{samples: samples}
}

func (b *bufferReader) Read(p []byte) (int, error) {
	if b.pos >= len(b.samples) {
		return 0, io.EOF
	}
	n := 0
	for n+4 <= len(p) && b.pos < len(b.samples) {
		bits := math.Float32bits(b.samples[b.pos])
		p[n] = byte(bits)
		p[n+1] = byte(bits >> 8)
		p[n+2] = byte(bits >> 16)
		p[n+3] = byte(bits >> 24)
		n += 4
		b.pos++
	}
	return n, nil
}
