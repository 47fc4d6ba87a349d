// License: GPLv3 or later

// Package presets holds the canonical PSX SPU reverb register table (the
// ten named presets from spec §6.2) and the 39-tap FIR coefficients from
// spec §6.3, in the teacher's style of keeping hardware register layouts as
// compile-time constant tables (ahx_constants.go, sid_constants.go,
// ted_constants.go all follow the same shape: named fields, hex literals,
// a lookup by string or index).
package presets

// Preset is one SPU reverb register block: the full set of Q15 volumes and
// word-indexed offsets spec §3 defines for a single reverb configuration.
type Preset struct {
	Name string

	// Q15 volumes.
	VIIR, VWall    int16
	VAPF1, VAPF2   int16
	VCOMB1, VCOMB2 int16
	VCOMB3, VCOMB4 int16
	VLOUT, VROUT   int16
	VLIN, VRIN     int16

	// Word-indexed offsets, all relative to the moving base/cursor.
	MBase          uint32
	DAPF1, DAPF2   int32
	DLSame, DRSame int32
	DLDiff, DRDiff int32

	MLSame, MRSame   uint32
	MLDiff, MRDiff   uint32
	MLComb1, MRComb1 uint32
	MLComb2, MRComb2 uint32
	MLComb3, MRComb3 uint32
	MLComb4, MRComb4 uint32
	MLAPF1, MRAPF1   uint32
	MLAPF2, MRAPF2   uint32
}

// fromWords builds a Preset from the 35-word canonical sequence:
//
//	vIIR, vWALL, mBASE, dAPF1, dAPF2, vAPF1, vAPF2,
//	vCOMB1, vCOMB2, vCOMB3, vCOMB4,
//	dLSAME, dRSAME, dLDIFF, dRDIFF,
//	mLSAME, mRSAME, mLDIFF, mRDIFF,
//	mLCOMB1, mRCOMB1, mLCOMB2, mRCOMB2, mLCOMB3, mRCOMB3, mLCOMB4, mRCOMB4,
//	mLAPF1, mRAPF1, mLAPF2, mRAPF2,
//	vLOUT, vROUT, vLIN, vRIN
//
// matching spec §6.2's ordering with vLIN/vRIN appended, as carried in the
// canonical register dumps this table is transcribed from.
func fromWords(name string, w [35]uint16) Preset {
	return Preset{
		Name: name,

		VIIR: int16(w[0]), VWall: int16(w[1]),
		MBase:         uint32(w[2]),
		DAPF1:         int32(int16(w[3])),
		DAPF2:         int32(int16(w[4])),
		VAPF1:         int16(w[5]),
		VAPF2:         int16(w[6]),
		VCOMB1:        int16(w[7]),
		VCOMB2:        int16(w[8]),
		VCOMB3:        int16(w[9]),
		VCOMB4:        int16(w[10]),

		DLSame: int32(int16(w[11])), DRSame: int32(int16(w[12])),
		DLDiff: int32(int16(w[13])), DRDiff: int32(int16(w[14])),

		MLSame: uint32(w[15]), MRSame: uint32(w[16]),
		MLDiff: uint32(w[17]), MRDiff: uint32(w[18]),

		MLComb1: uint32(w[19]), MRComb1: uint32(w[20]),
		MLComb2: uint32(w[21]), MRComb2: uint32(w[22]),
		MLComb3: uint32(w[23]), MRComb3: uint32(w[24]),
		MLComb4: uint32(w[25]), MRComb4: uint32(w[26]),

		MLAPF1: uint32(w[27]), MRAPF1: uint32(w[28]),
		MLAPF2: uint32(w[29]), MRAPF2: uint32(w[30]),

		VLOUT: int16(w[31]), VROUT: int16(w[32]),
		VLIN: int16(w[33]), VRIN: int16(w[34]),
	}
}

// Canonical preset names, in the order spec §1 lists them.
const (
	Room         = "Room"
	StudioSmall  = "Studio Small"
	StudioMedium = "Studio Medium"
	StudioLarge  = "Studio Large"
	Hall         = "Hall"
	HalfEcho     = "Half Echo"
	SpaceEcho    = "Space Echo"
	ChaosEcho    = "Chaos Echo"
	Delay        = "Delay"
	ReverbOff    = "Reverb Off"
)

// Names lists all canonical preset names in declaration order.
var Names = []string{
	Room, StudioSmall, StudioMedium, StudioLarge, Hall,
	HalfEcho, SpaceEcho, ChaosEcho, Delay, ReverbOff,
}

// table is the canonical registry, built once at init time.
var table map[string]Preset

func init() {
	table = make(map[string]Preset, len(Names))
	for _, p := range []Preset{
		room(), studioSmall(), studioMedium(), studioLarge(), hall(),
		halfEcho(), spaceEcho(), chaosEcho(), delay(), reverbOff(),
	} {
		table[p.Name] = p
	}
}

// Lookup returns the canonical preset registered under name, and whether it
// was found. There is no fallback: an unknown name is the caller's problem
// (spec §4.2, §7 ErrUnknownPreset).
func Lookup(name string) (Preset, bool) {
	p, ok := table[name]
	return p, ok
}

func room() Preset {
	return fromWords(Room, [35]uint16{
		0x007D, 0x005B, 0x6D80, 0x54B8, 0xBED0, 0x0000, 0x0000, 0xBA80,
		0x5800, 0x5300, 0x04D6, 0x0333, 0x03F0, 0x0227, 0x0374, 0x01EF,
		0x0334, 0x01B5, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
		0x0000, 0x0000, 0x01B4, 0x0136, 0x00B8, 0x005C, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func studioSmall() Preset {
	return fromWords(StudioSmall, [35]uint16{
		0x0033, 0x0025, 0x70F0, 0x4FA8, 0xBCE0, 0x4410, 0xC0F0, 0x9C00,
		0x5280, 0x4EC0, 0x03E4, 0x031B, 0x03A4, 0x02AF, 0x0372, 0x0266,
		0x031C, 0x025D, 0x025C, 0x018E, 0x022F, 0x0135, 0x01D2, 0x00B7,
		0x018F, 0x00B5, 0x00B4, 0x0080, 0x004C, 0x0026, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func studioMedium() Preset {
	return fromWords(StudioMedium, [35]uint16{
		0x00B1, 0x007F, 0x70F0, 0x4FA8, 0xBCE0, 0x4510, 0xBEF0, 0xB4C0,
		0x5280, 0x4EC0, 0x0904, 0x076B, 0x0824, 0x065F, 0x07A2, 0x0616,
		0x076C, 0x05ED, 0x05EC, 0x042E, 0x050F, 0x0305, 0x0462, 0x02B7,
		0x042F, 0x0265, 0x0264, 0x01B2, 0x0100, 0x0080, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func studioLarge() Preset {
	return fromWords(StudioLarge, [35]uint16{
		0x00E3, 0x00A9, 0x6F60, 0x4FA8, 0xBCE0, 0x4510, 0xBEF0, 0xA680,
		0x5680, 0x52C0, 0x0DFB, 0x0B58, 0x0D09, 0x0A3C, 0x0BD9, 0x0973,
		0x0B59, 0x08DA, 0x08D9, 0x05E9, 0x07EC, 0x04B0, 0x06EF, 0x03D2,
		0x05EA, 0x031D, 0x031C, 0x0238, 0x0154, 0x00AA, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func hall() Preset {
	return fromWords(Hall, [35]uint16{
		0x01A5, 0x0139, 0x6000, 0x5000, 0x4C00, 0xB800, 0xBC00, 0xC000,
		0x6000, 0x5C00, 0x15BA, 0x11BB, 0x14C2, 0x10BD, 0x11BC, 0x0DC1,
		0x11C0, 0x0DC3, 0x0DC0, 0x09C1, 0x0BC4, 0x07C1, 0x0A00, 0x06CD,
		0x09C2, 0x05C1, 0x05C0, 0x041A, 0x0274, 0x013A, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func halfEcho() Preset {
	return fromWords(HalfEcho, [35]uint16{
		0x0017, 0x0013, 0x70F0, 0x4FA8, 0xBCE0, 0x4510, 0xBEF0, 0x8500,
		0x5F80, 0x54C0, 0x0371, 0x02AF, 0x02E5, 0x01DF, 0x02B0, 0x01D7,
		0x0358, 0x026A, 0x01D6, 0x011E, 0x012D, 0x00B1, 0x011F, 0x0059,
		0x01A0, 0x00E3, 0x0058, 0x0040, 0x0028, 0x0014, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func spaceEcho() Preset {
	return fromWords(SpaceEcho, [35]uint16{
		0x033D, 0x0231, 0x7E00, 0x5000, 0xB400, 0xB000, 0x4C00, 0xB000,
		0x6000, 0x5400, 0x1ED6, 0x1A31, 0x1D14, 0x183B, 0x1BC2, 0x16B2,
		0x1A32, 0x15EF, 0x15EE, 0x1055, 0x1334, 0x0F2D, 0x11F6, 0x0C5D,
		0x1056, 0x0AE1, 0x0AE0, 0x07A2, 0x0464, 0x0232, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func chaosEcho() Preset {
	return fromWords(ChaosEcho, [35]uint16{
		0x0001, 0x0001, 0x7FFF, 0x7FFF, 0x0000, 0x0000, 0x0000, 0x8100,
		0x0000, 0x0000, 0x1FFF, 0x0FFF, 0x1005, 0x0005, 0x0000, 0x0000,
		0x1005, 0x0005, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
		0x0000, 0x0000, 0x1004, 0x1002, 0x0004, 0x0002, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func delay() Preset {
	return fromWords(Delay, [35]uint16{
		0x0001, 0x0001, 0x7FFF, 0x7FFF, 0x0000, 0x0000, 0x0000, 0x0000,
		0x0000, 0x0000, 0x1FFF, 0x0FFF, 0x1005, 0x0005, 0x0000, 0x0000,
		0x1005, 0x0005, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
		0x0000, 0x0000, 0x1004, 0x1002, 0x0004, 0x0002, 0x8000, 0x8000,
		0x8000, 0x8000, 0x8000,
	})
}

func reverbOff() Preset {
	return fromWords(ReverbOff, [35]uint16{
		0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,
		0x0000, 0x0000, 0x0001, 0x0001, 0x0001, 0x0001, 0x0001, 0x0001,
		0x0000, 0x0000, 0x0001, 0x0001, 0x0001, 0x0001, 0x0001, 0x0001,
		0x0000, 0x0000, 0x0001, 0x0001, 0x0001, 0x0001, 0x0000, 0x0000,
		0x8000, 0x8000, 0x8000,
	})
}

// FIRCoeffs is the 39-tap symmetric anti-alias/reconstruction filter (spec
// §6.3), Q15 coefficients interpreted as signed 16-bit.
var FIRCoeffs = [39]int16{
	-0x0001, 0x0000, 0x0002, 0x0000, -0x000A, 0x0000, 0x0023, 0x0000,
	-0x0067, 0x0000, 0x010A, 0x0000, -0x0C68, 0x0000, 0x0534, 0x0000,
	-0x4B90, 0x0000, 0x2806, 0x4000, 0x2806, 0x0000, -0x4B90, 0x0000,
	0x0534, 0x0000, -0x0C68, 0x0000, 0x010A, 0x0000, -0x0067, 0x0000,
	0x0023, 0x0000, -0x000A, 0x0000, 0x0002, 0x0000, -0x0001,
}
