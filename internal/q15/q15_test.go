package q15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestToFloatExactMinusOne(t *testing.T) {
	assert.Equal(t, -1.0, ToFloat(-32768))
}

func TestRoundTripKnownValues(t *testing.T) {
	for _, v := range []int16{32767, -32767, 0, 1, -1, 16384, 32766, -32768} {
		assert.Equalf(t, v, FromFloat(ToFloat(v)), "round trip broke for %d", v)
	}
}

func TestRoundTripAllValues(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := int16(rapid.IntRange(-32768, 32767).Draw(t, "v"))
		assert.Equal(t, v, FromFloat(ToFloat(v)))
	})
}

func TestMulSaturates(t *testing.T) {
	assert.Equal(t, int16(32767), Mul(-32768, -32768))
}

func TestAddSubSaturate(t *testing.T) {
	assert.Equal(t, int16(32767), Add(32000, 1000))
	assert.Equal(t, int16(-32768), Sub(-32000, 1000))
}

func TestMulByExactMinusOneNegates(t *testing.T) {
	// -32768 is exactly -1.0 in Q15, so multiplying by it should negate
	// (saturating at the one value, -32768, that has no positive mirror).
	rapid.Check(t, func(t *rapid.T) {
		a := int16(rapid.IntRange(-32767, 32767).Draw(t, "a"))
		assert.Equal(t, -a, Mul(a, -32768))
	})
}

func TestMulByZeroIsZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := int16(rapid.IntRange(-32768, 32767).Draw(t, "a"))
		assert.Equal(t, int16(0), Mul(a, 0))
	})
}
