package seq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	t.Run("empty segments are dropped", func(t *testing.T) {
		buf := Of(nil, []byte("ab"), []byte{}, []byte("cd"))
		require.False(t, buf.IsSingleSegment())
		require.Equal(t, 4, buf.Len())
		require.Equal(t, "ab", string(buf.First()))
	})

	t.Run("empty buffer", func(t *testing.T) {
		buf := Of()
		require.True(t, buf.IsSingleSegment())
		require.Equal(t, buf.Start(), buf.End())
		require.Zero(t, buf.Len())
		require.Nil(t, buf.First())
	})
}

func TestMove(t *testing.T) {
	buf := Of([]byte("abc"), []byte("de"), []byte("f"))

	t.Run("within a segment", func(t *testing.T) {
		c := buf.Move(buf.Start(), 2)
		require.Equal(t, "c", string(buf.Suffix(c)[:1]))
	})

	t.Run("across segments", func(t *testing.T) {
		c := buf.Move(buf.Start(), 4)
		require.Equal(t, "e", string(buf.Suffix(c)[:1]))
	})

	t.Run("exactly to a boundary lands on the next segment", func(t *testing.T) {
		c := buf.Move(buf.Start(), 3)
		require.Equal(t, "de", string(buf.Suffix(c)))
	})

	t.Run("to the end", func(t *testing.T) {
		require.Equal(t, buf.End(), buf.Move(buf.Start(), 6))
	})

	t.Run("clamped past the end", func(t *testing.T) {
		require.Equal(t, buf.End(), buf.Move(buf.Start(), 100))
	})
}

func TestDistance(t *testing.T) {
	buf := Of([]byte("abc"), []byte("de"), []byte("f"))

	require.Equal(t, 6, buf.Distance(buf.Start(), buf.End()))
	require.Zero(t, buf.Distance(buf.Start(), buf.Start()))

	mid := buf.Move(buf.Start(), 4)
	require.Equal(t, 4, buf.Distance(buf.Start(), mid))
	require.Equal(t, 2, buf.Distance(mid, buf.End()))
}

func TestSeek(t *testing.T) {
	buf := Of([]byte("abc"), []byte("de"), []byte("f"))

	t.Run("in the first segment", func(t *testing.T) {
		c, dist := buf.Seek(buf.Start(), 'b')
		require.Equal(t, 1, dist)
		require.Equal(t, buf.Move(buf.Start(), 1), c)
	})

	t.Run("in a later segment", func(t *testing.T) {
		c, dist := buf.Seek(buf.Start(), 'f')
		require.Equal(t, 5, dist)
		require.Equal(t, "f", string(buf.Suffix(c)))
	})

	t.Run("from an offset", func(t *testing.T) {
		from := buf.Move(buf.Start(), 3)
		_, dist := buf.Seek(from, 'e')
		require.Equal(t, 1, dist)
	})

	t.Run("absent", func(t *testing.T) {
		_, dist := buf.Seek(buf.Start(), 'z')
		require.Equal(t, -1, dist)
	})
}

func TestPair(t *testing.T) {
	buf := Of([]byte("ab"), []byte("c"))

	b0, b1, n := buf.Pair(buf.Start())
	require.Equal(t, 2, n)
	require.Equal(t, byte('a'), b0)
	require.Equal(t, byte('b'), b1)

	b0, b1, n = buf.Pair(buf.Move(buf.Start(), 1))
	require.Equal(t, 2, n)
	require.Equal(t, byte('b'), b0)
	require.Equal(t, byte('c'), b1, "look-ahead must cross the segment join")

	b0, _, n = buf.Pair(buf.Move(buf.Start(), 2))
	require.Equal(t, 1, n)
	require.Equal(t, byte('c'), b0)

	_, _, n = buf.Pair(buf.End())
	require.Zero(t, n)
}

func TestContiguous(t *testing.T) {
	seg := []byte("abc")
	buf := Of(seg, []byte("de"))

	span, ok := buf.Contiguous(buf.Start(), 3)
	require.True(t, ok)
	require.Equal(t, "abc", string(span))
	require.Same(t, &seg[0], &span[0], "contiguous ranges must be borrowed, not copied")

	_, ok = buf.Contiguous(buf.Start(), 4)
	require.False(t, ok)
}

func TestRange(t *testing.T) {
	buf := Of([]byte("abc"), []byte("de"), []byte("f"))

	var got []byte
	buf.Range(buf.Move(buf.Start(), 1), 4, func(chunk []byte) {
		got = append(got, chunk...)
	})

	require.Equal(t, "bcde", string(got))
}

func TestSlice(t *testing.T) {
	buf := Of([]byte("abc"), []byte("de"), []byte("f"))

	t.Run("middle", func(t *testing.T) {
		sub := buf.Slice(buf.Move(buf.Start(), 1), buf.Move(buf.Start(), 5))
		require.Equal(t, 4, sub.Len())

		var got []byte
		sub.Range(sub.Start(), sub.Len(), func(chunk []byte) { got = append(got, chunk...) })
		require.Equal(t, "bcde", string(got))
	})

	t.Run("empty", func(t *testing.T) {
		mid := buf.Move(buf.Start(), 2)
		require.Zero(t, buf.Slice(mid, mid).Len())
	})

	t.Run("whole", func(t *testing.T) {
		require.Equal(t, buf.Len(), buf.Slice(buf.Start(), buf.End()).Len())
	})
}

func TestCursorOrdering(t *testing.T) {
	buf := Of([]byte("ab"), []byte("cd"))

	prev := buf.Start()
	for i := 1; i <= buf.Len(); i++ {
		next := buf.Move(buf.Start(), i)
		require.True(t, prev.Before(next), i)
		require.False(t, next.Before(prev), i)
		prev = next
	}
}
