// License: GPLv3 or later

/*
Package psxreverb implements the PlayStation SPU reverb algorithm as a
streaming stereo audio effect: the 22.05kHz fixed-point reverb tick (input
coupling, same-side/different-side IIR reflection, four-tap comb early
echo, two cascaded all-pass filters, output coupling), its 512 KiB circular
work area in emulated SPU RAM, and the bidirectional rate converter that
lets a host feed samples at an arbitrary rate.

Signal flow (per host block, see internal/resample):

	host samples -> downsample (FIR + decimate) -> reverb tick (22.05kHz)
	             -> upsample (FIR + interpolate) -> mixed into host buffer

Thread safety: Process is not safe for concurrent calls on the same
Instance; the host must serialize access per instance, the same way a
synthesis voice serializes calls into its own state. SetWet may be called
from another goroutine at any time; Process reads it once per call.
*/
package psxreverb

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/nullwave/psxreverb/internal/presets"
	"github.com/nullwave/psxreverb/internal/q15"
	"github.com/nullwave/psxreverb/internal/resample"
	"github.com/nullwave/psxreverb/internal/reverb"
	"github.com/nullwave/psxreverb/internal/sporam"
)

// Instance is a stateful per-stream reverb filter: one bound preset, one
// SPU RAM work area, and one rate converter. Callers should keep one
// Instance per voice or bus that needs independent reverb; there is no
// aliasing of SPU RAM across instances.
type Instance struct {
	preset presets.Preset
	ram    *sporam.RAM
	conv   *resample.Converter

	wetBits atomic.Uint64 // math.Float64bits(wet), published via SetWet
}

// NewInstance looks up name in the canonical preset table and returns a
// ready-to-use Instance bound to it, with wet defaulting to 1.0 (full
// reverb contribution). An unrecognized name fails construction rather than
// falling back to a default preset.
func NewInstance(name string) (*Instance, error) {
	p, ok := presets.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	inst := &Instance{
		preset: p,
		ram:    sporam.New(p.MBase),
		conv:   resample.New(),
	}
	inst.SetWet(1.0)
	return inst, nil
}

// Reset zeroes the SPU RAM, the rate converter's FIR histories and phase,
// and the interpolation history, as if the instance had just been
// constructed. The bound preset and wet scalar are unaffected.
func (inst *Instance) Reset() {
	inst.ram.Reset(inst.preset.MBase)
	inst.conv.Reset()
}

// SetWet atomically updates the wet scalar, clamped to [0, 1]. Safe to call
// from any goroutine; a concurrent Process call observes either the old or
// the new value, read once at the top of the call.
func (inst *Instance) SetWet(w float64) {
	if w < 0 {
		w = 0
	} else if w > 1 {
		w = 1
	}
	inst.wetBits.Store(math.Float64bits(w))
}

func (inst *Instance) wet() float64 {
	return math.Float64frombits(inst.wetBits.Load())
}

// Process runs the reverb over buffer in place: interleaved stereo
// (channels == 2) or mono (channels == 1, the single channel both feeds and
// receives the reverb). frameCount frames of channels samples each are
// processed starting at buffer[0]. On return, buffer holds dry + wet *
// reverb. Process does not allocate or block; all state it touches was
// allocated at construction or by Reset.
func (inst *Instance) Process(buffer []float32, frameCount, channels int, hostSampleRate float64) error {
	if buffer == nil || channels <= 0 || channels > 2 {
		return fmt.Errorf("%w: channels=%d", ErrInvalidBuffer, channels)
	}
	if frameCount <= 0 || len(buffer) < frameCount*channels {
		return fmt.Errorf("%w: buffer holds %d samples, need %d", ErrInvalidBuffer, len(buffer), frameCount*channels)
	}
	if hostSampleRate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, hostSampleRate)
	}

	wet := inst.wet()

	for f := 0; f < frameCount; f++ {
		idx := f * channels

		hostL := float64(buffer[idx])
		hostR := hostL
		if channels == 2 {
			hostR = float64(buffer[idx+1])
		}

		revL, revR := inst.conv.Process(hostL, hostR, hostSampleRate, inst.tick)

		buffer[idx] = float32(hostL + wet*revL)
		if channels == 2 {
			buffer[idx+1] = float32(hostR + wet*revR)
		}
	}
	return nil
}

// tick runs one reverb step: Q15-quantize the rate converter's filtered
// input, run the reverb tick engine against the SPU RAM, advance the
// cursor, and hand back the result as float64. This is the resample.TickFunc
// the Converter calls each time its phase accumulator crosses 1.
func (inst *Instance) tick(l, r float64) (float64, float64) {
	linQ := q15.FromFloat(l)
	rinQ := q15.FromFloat(r)

	loutQ, routQ := reverb.Tick(inst.ram, &inst.preset, linQ, rinQ)
	inst.ram.Advance()

	return q15.ToFloat(loutQ), q15.ToFloat(routQ)
}
