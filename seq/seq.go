// Package seq implements an immutable view over a non-contiguous sequence of
// byte segments, as handed out by a buffered read pipeline. A Buffer never
// owns or mutates the memory it refers to; positions inside it are expressed
// as cheap Cursor values.
package seq

import "github.com/indigo-web/headline/internal/bytescan"

// Cursor is an opaque position within a Buffer. Cursors are cheap to copy,
// comparable with ==, and totally ordered within the buffer they were
// produced by. The zero Cursor is the start of any buffer.
type Cursor struct {
	seg, off int
}

// Before reports whether c points strictly earlier in the buffer than other.
func (c Cursor) Before(other Cursor) bool {
	return c.seg < other.seg || (c.seg == other.seg && c.off < other.off)
}

// Buffer is an ordered sequence of contiguous byte segments. Empty segments
// are dropped at construction, so every cursor except End() points at an
// existing byte.
type Buffer struct {
	segs [][]byte
}

// Of assembles a Buffer from the given segments. Empty segments are skipped.
func Of(segs ...[]byte) Buffer {
	filtered := make([][]byte, 0, len(segs))

	for _, seg := range segs {
		if len(seg) > 0 {
			filtered = append(filtered, seg)
		}
	}

	return Buffer{segs: filtered}
}

// Start returns the cursor at the first byte of the buffer.
func (b Buffer) Start() Cursor {
	return Cursor{}
}

// End returns the cursor one past the last byte of the buffer.
func (b Buffer) End() Cursor {
	if len(b.segs) == 0 {
		return Cursor{}
	}

	last := len(b.segs) - 1

	return Cursor{seg: last, off: len(b.segs[last])}
}

// Len returns the total number of bytes across all segments.
func (b Buffer) Len() (n int) {
	for _, seg := range b.segs {
		n += len(seg)
	}

	return n
}

// IsSingleSegment reports whether all bytes live in one contiguous segment.
func (b Buffer) IsSingleSegment() bool {
	return len(b.segs) <= 1
}

// First returns the first segment, or nil for an empty buffer.
func (b Buffer) First() []byte {
	if len(b.segs) == 0 {
		return nil
	}

	return b.segs[0]
}

// Suffix returns the remaining bytes of the segment the cursor points into.
// Returns an empty slice at End().
func (b Buffer) Suffix(c Cursor) []byte {
	if c.seg >= len(b.segs) {
		return nil
	}

	return b.segs[c.seg][c.off:]
}

// Move advances the cursor by n bytes, crossing segment boundaries as needed
// and clamping at End(). The returned cursor never rests at the end of a
// non-final segment.
func (b Buffer) Move(c Cursor, n int) Cursor {
	for n > 0 && c.seg < len(b.segs) {
		room := len(b.segs[c.seg]) - c.off
		if n < room {
			c.off += n
			return c
		}

		n -= room
		c.off += room
		if c.seg == len(b.segs)-1 {
			return c
		}

		c.seg++
		c.off = 0
	}

	return c
}

// Distance returns the number of bytes between from and to. The from cursor
// must not be past to.
func (b Buffer) Distance(from, to Cursor) (n int) {
	for from.seg < to.seg {
		n += len(b.segs[from.seg]) - from.off
		from.seg++
		from.off = 0
	}

	return n + to.off - from.off
}

// Seek scans forward from the cursor for the first occurrence of ch,
// returning its position and the byte distance from the cursor. Returns
// (Cursor{}, -1) when ch does not occur before End().
func (b Buffer) Seek(from Cursor, ch byte) (Cursor, int) {
	dist := 0

	for from.seg < len(b.segs) {
		if i := bytescan.IndexByte(b.segs[from.seg][from.off:], ch); i != -1 {
			return Cursor{seg: from.seg, off: from.off + i}, dist + i
		}

		dist += len(b.segs[from.seg]) - from.off
		from.seg++
		from.off = 0
	}

	return Cursor{}, -1
}

// Pair reads up to two bytes at the cursor, crossing a segment boundary if
// necessary. n reports how many of b0, b1 are valid.
func (b Buffer) Pair(c Cursor) (b0, b1 byte, n int) {
	rest := b.Suffix(c)
	if len(rest) == 0 {
		return 0, 0, 0
	}

	b0 = rest[0]
	if len(rest) > 1 {
		return b0, rest[1], 2
	}

	if c.seg+1 < len(b.segs) {
		return b0, b.segs[c.seg+1][0], 2
	}

	return b0, 0, 1
}

// Slice returns the sub-view of the buffer between two cursors. The
// segments themselves are shared, not copied; from must not be past to.
func (b Buffer) Slice(from, to Cursor) Buffer {
	if from.seg >= len(b.segs) || from == to {
		return Buffer{}
	}

	segs := make([][]byte, 0, to.seg-from.seg+1)

	for seg := from.seg; seg <= to.seg && seg < len(b.segs); seg++ {
		chunk := b.segs[seg]
		if seg == to.seg {
			chunk = chunk[:to.off]
		}
		if seg == from.seg {
			chunk = chunk[from.off:]
		}

		if len(chunk) > 0 {
			segs = append(segs, chunk)
		}
	}

	return Buffer{segs: segs}
}

// Contiguous returns the n bytes following the cursor as a borrow of their
// segment, when the whole range happens to lie within one. Returns
// (nil, false) for ranges crossing a segment boundary.
func (b Buffer) Contiguous(from Cursor, n int) ([]byte, bool) {
	rest := b.Suffix(from)
	if len(rest) < n {
		return nil, false
	}

	return rest[:n], true
}

// Range invokes fn with each contiguous chunk of the n bytes following the
// cursor, in order. Used to materialise a straddling range into scratch
// storage without exposing segment internals.
func (b Buffer) Range(from Cursor, n int, fn func(chunk []byte)) {
	for n > 0 && from.seg < len(b.segs) {
		chunk := b.segs[from.seg][from.off:]
		if len(chunk) > n {
			chunk = chunk[:n]
		}

		fn(chunk)
		n -= len(chunk)
		from.seg++
		from.off = 0
	}
}
