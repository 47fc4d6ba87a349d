// License: GPLv3 or later

// Package q15 implements the saturating signed Q15 fixed-point arithmetic
// used throughout the SPU reverb tick: a 16-bit value v represents v/32768,
// with 0x8000 standing in for exactly -1.0 rather than the asymmetric
// -1.000030517578125 that a plain two's-complement reading would give.
package q15

// ToFloat converts a signed Q15 word to a float64 in [-1.0, 1.0).
// 0x8000 (int16(-32768)) is defined as exactly -1.0.
func ToFloat(v int16) float64 {
	if v == -32768 {
		return -1.0
	}
	return float64(v) / 32768.0
}

// FromFloat saturates f into [-32768, 32767] and rounds half-away-from-zero.
// Values at or below -1.0 map to 0x8000 (the canonical Q15 representation
// of -1.0); values at or above (32767.0/32768.0) saturate to 0x7FFF.
func FromFloat(f float64) int16 {
	if f <= -1.0 {
		return -32768
	}
	if f >= 32767.0/32768.0 {
		return 32767
	}
	scaled := f * 32768.0
	if scaled >= 0 {
		return int16(scaled + 0.5)
	}
	return int16(scaled - 0.5)
}

// Sat16 clamps a wider intermediate to the int16 range.
func Sat16(x int32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}
	return int16(x)
}

// Mul multiplies two Q15 values, shifting the 32-bit product right by 15
// (arithmetic shift) and saturating the result to int16.
func Mul(a, b int16) int16 {
	product := int32(a) * int32(b)
	return Sat16(int32(product >> 15))
}

// Add adds two Q15 values with int16 saturation on the sum.
func Add(a, b int16) int16 {
	return Sat16(int32(a) + int32(b))
}

// Sub subtracts b from a with int16 saturation on the result.
func Sub(a, b int16) int16 {
	return Sat16(int32(a) - int32(b))
}

// MulWide multiplies a wide (≥32-bit) intermediate by a Q15 coefficient,
// shifting the 64-bit product right by 15 (arithmetic shift), and returns
// the result unsaturated. It is used where spec requires an intermediate
// sum to carry full precision until the final store, rather than being
// clamped to int16 before the multiply (e.g. the IIR reflection's
// (Lin + dSAME*vWALL - prev) * vIIR term): the caller applies Sat16 once,
// on the final write.
func MulWide(wide int32, coef int16) int32 {
	return int32((int64(wide) * int64(coef)) >> 15)
}
