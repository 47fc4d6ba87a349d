package psxreverb

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullwave/psxreverb/internal/presets"
)

func TestNewInstanceUnknownPresetFails(t *testing.T) {
	// Scenario E: unknown name construction fails.
	_, err := NewInstance("Xyz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestNewInstanceAllCanonicalPresetsSucceed(t *testing.T) {
	for _, name := range presets.Names {
		inst, err := NewInstance(name)
		require.NoErrorf(t, err, "preset %q should construct", name)
		require.NotNil(t, inst)
	}
}

func TestProcessRejectsInvalidBuffer(t *testing.T) {
	inst, err := NewInstance(presets.Hall)
	require.NoError(t, err)

	err = inst.Process(nil, 10, 2, 44100)
	assert.True(t, errors.Is(err, ErrInvalidBuffer))

	buf := make([]float32, 4)
	err = inst.Process(buf, 10, 2, 44100)
	assert.True(t, errors.Is(err, ErrInvalidBuffer))

	err = inst.Process(buf, 1, 3, 44100)
	assert.True(t, errors.Is(err, ErrInvalidBuffer))

	err = inst.Process(buf, 1, 0, 44100)
	assert.True(t, errors.Is(err, ErrInvalidBuffer))
}

func TestProcessRejectsInvalidSampleRate(t *testing.T) {
	inst, err := NewInstance(presets.Hall)
	require.NoError(t, err)

	buf := make([]float32, 4)
	err = inst.Process(buf, 2, 2, 0)
	assert.True(t, errors.Is(err, ErrInvalidSampleRate))

	err = inst.Process(buf, 2, 2, -44100)
	assert.True(t, errors.Is(err, ErrInvalidSampleRate))
}

// Scenario A: Reverb Off, silent input, must stay silent.
func TestScenarioA_ReverbOffSilenceStaysZero(t *testing.T) {
	inst, err := NewInstance(presets.ReverbOff)
	require.NoError(t, err)

	buf := make([]float32, 1024*2)
	err = inst.Process(buf, 1024, 2, 44100)
	require.NoError(t, err)

	for i, s := range buf {
		assert.InDeltaf(t, 0, s, 1e-6, "sample %d not silent", i)
	}
}

// Property 1: silence in -> eventual silence out, for any preset.
func TestProperty1_SilenceEventuallySilent(t *testing.T) {
	for _, name := range presets.Names {
		inst, err := NewInstance(name)
		require.NoError(t, err)

		frames := 8192
		buf := make([]float32, frames*2)
		require.NoError(t, inst.Process(buf, frames, 2, 44100))

		tail := buf[len(buf)-200:]
		for _, s := range tail {
			assert.InDeltaf(t, 0, s, 1e-5, "preset %q did not settle to silence", name)
		}
	}
}

// Property 2 / Scenario: Reverb Off with wet=1 still yields near-silent
// reverb contribution, and with wet=0 preserves input bit-for-bit.
func TestProperty2_ReverbOffIdentity(t *testing.T) {
	inst, err := NewInstance(presets.ReverbOff)
	require.NoError(t, err)
	inst.SetWet(0)

	in := make([]float32, 512*2)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.01))
	}
	buf := append([]float32(nil), in...)
	require.NoError(t, inst.Process(buf, 512, 2, 44100))
	assert.Equal(t, in, buf, "wet=0 must preserve input bit-for-bit")

	inst2, err := NewInstance(presets.ReverbOff)
	require.NoError(t, err)
	inst2.SetWet(1)
	buf2 := append([]float32(nil), in...)
	require.NoError(t, inst2.Process(buf2, 512, 2, 44100))
	for i := range buf2 {
		assert.InDeltaf(t, float64(in[i]), float64(buf2[i]), 1e-3, "sample %d", i)
	}
}

// Property 4 / Scenario E: preset lookup.
func TestProperty4_PresetLookup(t *testing.T) {
	for _, name := range presets.Names {
		_, err := NewInstance(name)
		assert.NoError(t, err)
	}
	_, err := NewInstance("not a preset")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

// Property 7: determinism across two identically-reset instances.
func TestProperty7_Determinism(t *testing.T) {
	inst1, err := NewInstance(presets.Room)
	require.NoError(t, err)
	inst2, err := NewInstance(presets.Room)
	require.NoError(t, err)

	frames := 2000
	in := make([]float32, frames*2)
	for i := range in {
		in[i] = float32(math.Sin(float64(i)*0.03)) * 0.2
	}

	buf1 := append([]float32(nil), in...)
	buf2 := append([]float32(nil), in...)
	require.NoError(t, inst1.Process(buf1, frames, 2, 44100))
	require.NoError(t, inst2.Process(buf2, frames, 2, 44100))

	for i := range buf1 {
		assert.Equal(t, buf1[i], buf2[i])
	}
}

// Scenario B: Hall with a unit impulse produces a decaying, non-trivial
// tail with an early peak.
func TestScenarioB_HallImpulseTail(t *testing.T) {
	inst, err := NewInstance(presets.Hall)
	require.NoError(t, err)

	frames := 8192
	buf := make([]float32, frames*2)
	buf[0] = 1.0

	require.NoError(t, inst.Process(buf, frames, 2, 44100))

	var peak float32
	for f := 0; f < 200; f++ {
		if v := abs32(buf[f*2]); v > peak {
			peak = v
		}
	}
	assert.Greaterf(t, peak, float32(0.01), "expected an early reverb peak above 0.01, got %v", peak)

	var tailNonZero bool
	for f := 4000; f < frames; f++ {
		if buf[f*2] != 0 || buf[f*2+1] != 0 {
			tailNonZero = true
			break
		}
	}
	assert.True(t, tailNonZero, "expected a non-zero tail past 4000 frames")
}

// Scenario C: Delay preset produces discrete, decaying echoes.
func TestScenarioC_DelayDiscreteEchoes(t *testing.T) {
	inst, err := NewInstance(presets.Delay)
	require.NoError(t, err)

	frames := 16384
	buf := make([]float32, frames*2)
	buf[0] = 1.0

	require.NoError(t, inst.Process(buf, frames, 2, 44100))

	var peaks []int
	const threshold = 0.005
	inPeak := false
	for f := 0; f < frames; f++ {
		v := abs32(buf[f*2])
		if v > threshold && !inPeak {
			peaks = append(peaks, f)
			inPeak = true
		} else if v <= threshold {
			inPeak = false
		}
	}
	assert.GreaterOrEqualf(t, len(peaks), 3, "expected at least 3 separated echo peaks, found %d", len(peaks))
}

// Scenario F: extended white-noise run must never produce NaN/Inf.
func TestScenarioF_NoNaNOrInfOnNoise(t *testing.T) {
	inst, err := NewInstance(presets.Room)
	require.NoError(t, err)

	frames := 44100 * 2
	buf := make([]float32, frames*2)
	seed := uint32(12345)
	for i := range buf {
		seed = seed*1664525 + 1013904223
		n := (float32(seed>>8) / float32(1<<24)) - 0.5
		buf[i] = n * 0.2
	}

	require.NoError(t, inst.Process(buf, frames, 2, 44100))

	for i, s := range buf {
		assert.Falsef(t, math.IsNaN(float64(s)), "NaN at sample %d", i)
		assert.Falsef(t, math.IsInf(float64(s), 0), "Inf at sample %d", i)
	}
}

func TestResetClearsCarriedState(t *testing.T) {
	inst, err := NewInstance(presets.Hall)
	require.NoError(t, err)

	buf := make([]float32, 4096*2)
	buf[0] = 1.0
	require.NoError(t, inst.Process(buf, 4096, 2, 44100))

	inst.Reset()

	buf2 := make([]float32, 4096*2)
	require.NoError(t, inst.Process(buf2, 4096, 2, 44100))
	for i, s := range buf2 {
		assert.InDeltaf(t, 0, s, 1e-6, "sample %d not silent after reset", i)
	}
}

func TestMonoProcessesSingleChannel(t *testing.T) {
	inst, err := NewInstance(presets.ReverbOff)
	require.NoError(t, err)
	inst.SetWet(0)

	buf := []float32{0.5, -0.25, 0.1, 0}
	in := append([]float32(nil), buf...)
	require.NoError(t, inst.Process(buf, len(buf), 1, 44100))
	assert.Equal(t, in, buf)
}

// Scenario D: a sine run through Studio Medium should raise RMS above the
// dry input's RMS (the wet reverb adds energy without canceling the dry
// signal, since mixing is additive).
func TestScenarioD_StudioMediumRaisesRMS(t *testing.T) {
	inst, err := NewInstance(presets.StudioMedium)
	require.NoError(t, err)

	frames := 48000
	buf := make([]float32, frames*2)
	for f := 0; f < frames; f++ {
		s := float32(math.Sin(2*math.Pi*1000*float64(f)/48000)) * 0.3
		buf[f*2] = s
		buf[f*2+1] = s
	}
	dryRMS := rms(buf)

	require.NoError(t, inst.Process(buf, frames, 2, 48000))
	wetRMS := rms(buf)

	assert.Greater(t, wetRMS, dryRMS)
}

func rms(buf []float32) float64 {
	var sum float64
	for _, s := range buf {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(buf)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
