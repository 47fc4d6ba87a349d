// License: GPLv3 or later

// Package resample bridges the host's arbitrary sample rate and the SPU
// reverb engine's fixed 22.05kHz tick rate: a phase accumulator decides when
// a tick is due, the 39-tap symmetric FIR anti-aliases host audio on the way
// down and reconstructs the tick stream on the way back up, and the two most
// recent tick outputs are linearly interpolated to fill in the host frames
// between ticks.
package resample

import (
	"github.com/nullwave/psxreverb/internal/presets"
	"github.com/nullwave/psxreverb/internal/q15"
)

// SPURate is the fixed reverb tick rate in Hz.
const SPURate = 22050.0

const firTaps = 39

var firTapsF [firTaps]float64

func init() {
	for i, v := range presets.FIRCoeffs {
		firTapsF[i] = q15.ToFloat(v)
	}
}

// TickFunc runs one reverb tick on a filtered, rate-crossed stereo sample
// and returns the tick's stereo output. The caller (Instance) owns the SPU
// RAM and preset the tick reads and writes; Converter only decides when a
// tick is due and what goes in and out of it.
type TickFunc func(l, r float64) (float64, float64)

// Converter holds all rate-conversion state for one stream: the downsample
// FIR history, the phase accumulator, the last two tick outputs, and the
// upsample FIR history used to smooth the interpolated reverb signal.
type Converter struct {
	downHistL, downHistR [firTaps]float64
	downPos              int

	upHistL, upHistR [firTaps]float64
	upPos            int

	phase float64

	tickL, tickR  [2]float64
	ticksProduced uint64
}

// New returns a Converter with zeroed state.
func New() *Converter {
	return &Converter{}
}

// Reset zeroes all FIR history, the phase accumulator, and the interpolation
// history, as if the Converter were freshly constructed.
func (c *Converter) Reset() {
	*c = Converter{}
}

// Process advances the converter by one host frame, pushing (hostL, hostR)
// through the downsample FIR, running zero or more reverb ticks via tick as
// the phase accumulator crosses 1, and returning the upsampled, FIR-smoothed
// reverb contribution for this host frame.
func (c *Converter) Process(hostL, hostR, hostRate float64, tick TickFunc) (outL, outR float64) {
	c.downHistL[c.downPos] = hostL
	c.downHistR[c.downPos] = hostR
	c.downPos = (c.downPos + 1) % firTaps

	c.phase += SPURate / hostRate
	for c.phase >= 1.0 {
		c.phase -= 1.0
		fl := firConvolve(&c.downHistL, c.downPos)
		fr := firConvolve(&c.downHistR, c.downPos)
		tl, tr := tick(fl, fr)
		c.tickL[0], c.tickL[1] = c.tickL[1], tl
		c.tickR[0], c.tickR[1] = c.tickR[1], tr
		c.ticksProduced++
	}

	var interpL, interpR float64
	switch {
	case c.ticksProduced >= 2:
		interpL = c.tickL[0] + (c.tickL[1]-c.tickL[0])*c.phase
		interpR = c.tickR[0] + (c.tickR[1]-c.tickR[0])*c.phase
	case c.ticksProduced == 1:
		interpL = c.tickL[1]
		interpR = c.tickR[1]
	}

	c.upHistL[c.upPos] = interpL
	c.upHistR[c.upPos] = interpR
	c.upPos = (c.upPos + 1) % firTaps

	outL = firConvolve(&c.upHistL, c.upPos)
	outR = firConvolve(&c.upHistR, c.upPos)
	return outL, outR
}

// firConvolve applies the 39-tap symmetric FIR to a circular history buffer,
// with pos pointing at the oldest sample (the slot the next write will
// overwrite). The filter is symmetric, so tap direction does not affect the
// result.
func firConvolve(hist *[firTaps]float64, pos int) float64 {
	var sum float64
	for k := 0; k < firTaps; k++ {
		sum += firTapsF[k] * hist[(pos+k)%firTaps]
	}
	return sum
}
