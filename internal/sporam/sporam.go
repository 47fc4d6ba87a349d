// License: GPLv3 or later

// Package sporam models the 512 KiB reverb work area inside emulated SPU
// RAM: a 262,144-word circular buffer addressed relative to a moving write
// cursor, the way the teacher's CombFilter and allpass ring buffers are
// addressed relative to their own pos fields, generalized to a single
// shared buffer so every reverb tap can read and write through it.
package sporam

// Size is the number of 16-bit words in the reverb work area (0x40000).
const Size = 0x40000

// mask turns the mod-Size addressing into a single AND, since Size is a
// power of two.
const mask = Size - 1

// RAM is the SPU reverb work area: a fixed 262,144-word circular buffer
// with a moving base and write cursor.
type RAM struct {
	words [Size]int16
	base  uint32 // mBASE for the bound preset; wrap target for Cur
	Cur   uint32 // bufCur: current write cursor, word-indexed
}

// New returns a freshly zeroed RAM with its cursor parked at base.
func New(base uint32) *RAM {
	r := &RAM{}
	r.Reset(base)
	return r
}

// Reset zeroes the work area and resets the cursor to base.
func (r *RAM) Reset(base uint32) {
	for i := range r.words {
		r.words[i] = 0
	}
	r.base = base & mask
	r.Cur = r.base
}

// addr resolves a relative word offset (which may be negative, as in the
// "one word earlier" IIR references) to an absolute index in words.
func (r *RAM) addr(offset int32) uint32 {
	return uint32(int64(r.Cur)+int64(offset)) & mask
}

// Read returns the signed word at the given offset relative to Cur.
func (r *RAM) Read(offset int32) int16 {
	return r.words[r.addr(offset)]
}

// Write stores v at the given offset relative to Cur. Values are already
// expected to be saturated by the caller (q15.Sat16); Write itself performs
// no additional clamping, matching a hardware word store.
func (r *RAM) Write(offset int32, v int16) {
	r.words[r.addr(offset)] = v
}

// Advance moves the cursor forward by one word, wrapping to base once it
// reaches the top of the address space (spec.md §4.3: "bufCur = (bufCur+1)
// mod 0x40000; if bufCur == 0 then bufCur = mBASE").
func (r *RAM) Advance() {
	r.Cur = (r.Cur + 1) & mask
	if r.Cur == 0 {
		r.Cur = r.base
	}
}

// Base returns the work area's configured base offset.
func (r *RAM) Base() uint32 {
	return r.base
}
