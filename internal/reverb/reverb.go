// License: GPLv3 or later

// Package reverb implements the per-tick PSX SPU reverb engine: same-side
// and different-side one-pole IIR reflection, four-tap comb early echo, two
// cascaded all-pass filters, and the input/output Q15 scaling that bracket
// them. This is the hot inner loop; it performs no allocation and touches
// only the RAM and preset it is given.
package reverb

import (
	"github.com/nullwave/psxreverb/internal/presets"
	"github.com/nullwave/psxreverb/internal/q15"
	"github.com/nullwave/psxreverb/internal/sporam"
)

// Tick runs one 22.05kHz reverb step on a Q15 stereo input sample, reading
// and writing ram through the preset's offsets, and returns the Q15 stereo
// output. The caller advances ram's cursor separately (sporam.RAM.Advance),
// since the cursor advance and the tick body are independent per spec.
func Tick(ram *sporam.RAM, p *presets.Preset, linRaw, rinRaw int16) (lout, rout int16) {
	lin := q15.Mul(linRaw, p.VLIN)
	rin := q15.Mul(rinRaw, p.VRIN)

	// Same-side reflection. The pre-write sum (Lin + dSAME*vWALL - prev)
	// and its product with vIIR carry full int32 precision; only the final
	// store saturates to int16 (spec §4.4 tie-break).
	prevL := ram.Read(int32(p.MLSame) - 1)
	dsL := ram.Read(p.DLSame)
	sumL := int32(lin) + int32(q15.Mul(dsL, p.VWall)) - int32(prevL)
	newL := q15.Sat16(q15.MulWide(sumL, p.VIIR) + int32(prevL))
	ram.Write(int32(p.MLSame), newL)

	prevR := ram.Read(int32(p.MRSame) - 1)
	dsR := ram.Read(p.DRSame)
	sumR := int32(rin) + int32(q15.Mul(dsR, p.VWall)) - int32(prevR)
	newR := q15.Sat16(q15.MulWide(sumR, p.VIIR) + int32(prevR))
	ram.Write(int32(p.MRSame), newR)

	// Different-side reflection: mLDIFF reads dRDIFF, mRDIFF reads dLDIFF.
	prevDL := ram.Read(int32(p.MLDiff) - 1)
	drR := ram.Read(p.DRDiff)
	sumDL := int32(lin) + int32(q15.Mul(drR, p.VWall)) - int32(prevDL)
	newDL := q15.Sat16(q15.MulWide(sumDL, p.VIIR) + int32(prevDL))
	ram.Write(int32(p.MLDiff), newDL)

	prevDR := ram.Read(int32(p.MRDiff) - 1)
	dlL := ram.Read(p.DLDiff)
	sumDR := int32(rin) + int32(q15.Mul(dlL, p.VWall)) - int32(prevDR)
	newDR := q15.Sat16(q15.MulWide(sumDR, p.VIIR) + int32(prevDR))
	ram.Write(int32(p.MRDiff), newDR)

	// Comb early echo: read-only sum of four taps per channel.
	lout = q15.Add(
		q15.Add(q15.Mul(ram.Read(int32(p.MLComb1)), p.VCOMB1), q15.Mul(ram.Read(int32(p.MLComb2)), p.VCOMB2)),
		q15.Add(q15.Mul(ram.Read(int32(p.MLComb3)), p.VCOMB3), q15.Mul(ram.Read(int32(p.MLComb4)), p.VCOMB4)),
	)
	rout = q15.Add(
		q15.Add(q15.Mul(ram.Read(int32(p.MRComb1)), p.VCOMB1), q15.Mul(ram.Read(int32(p.MRComb2)), p.VCOMB2)),
		q15.Add(q15.Mul(ram.Read(int32(p.MRComb3)), p.VCOMB3), q15.Mul(ram.Read(int32(p.MRComb4)), p.VCOMB4)),
	)

	// All-pass 1.
	delayL1 := ram.Read(int32(p.MLAPF1) - p.DAPF1)
	xL1 := q15.Sub(lout, q15.Mul(delayL1, p.VAPF1))
	ram.Write(int32(p.MLAPF1), xL1)
	lout = q15.Add(q15.Mul(xL1, p.VAPF1), delayL1)

	delayR1 := ram.Read(int32(p.MRAPF1) - p.DAPF1)
	xR1 := q15.Sub(rout, q15.Mul(delayR1, p.VAPF1))
	ram.Write(int32(p.MRAPF1), xR1)
	rout = q15.Add(q15.Mul(xR1, p.VAPF1), delayR1)

	// All-pass 2.
	delayL2 := ram.Read(int32(p.MLAPF2) - p.DAPF2)
	xL2 := q15.Sub(lout, q15.Mul(delayL2, p.VAPF2))
	ram.Write(int32(p.MLAPF2), xL2)
	lout = q15.Add(q15.Mul(xL2, p.VAPF2), delayL2)

	delayR2 := ram.Read(int32(p.MRAPF2) - p.DAPF2)
	xR2 := q15.Sub(rout, q15.Mul(delayR2, p.VAPF2))
	ram.Write(int32(p.MRAPF2), xR2)
	rout = q15.Add(q15.Mul(xR2, p.VAPF2), delayR2)

	// Output coupling.
	lout = q15.Mul(lout, p.VLOUT)
	rout = q15.Mul(rout, p.VROUT)

	return lout, rout
}
