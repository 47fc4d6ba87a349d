// License: GPLv3 or later

package psxreverb

import "errors"

// Sentinel errors returned by NewInstance and Process. Wrap with
// fmt.Errorf("%w: ...") for caller-specific context; callers should compare
// against these with errors.Is.
var (
	// ErrUnknownPreset is returned by NewInstance when the requested preset
	// name is not in the canonical table. The instance is not created.
	ErrUnknownPreset = errors.New("psxreverb: unknown preset")

	// ErrInvalidBuffer is returned by Process for a nil buffer, a buffer too
	// short for frameCount*channels, zero channels, or more than two
	// channels. The buffer is left untouched.
	ErrInvalidBuffer = errors.New("psxreverb: invalid buffer")

	// ErrInvalidSampleRate is returned by Process when hostSampleRate <= 0.
	// The buffer is left untouched.
	ErrInvalidSampleRate = errors.New("psxreverb: invalid sample rate")
)
