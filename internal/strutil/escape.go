package strutil

import "github.com/indigo-web/utils/uf"

const hexdigits = "0123456789abcdef"

// EscapeASCII renders at most limit bytes of b as printable ASCII, replacing
// everything outside of [0x20, 0x7e] with its \xNN form. Used for diagnostic
// excerpts of malformed input, where raw bytes must never reach a log line.
func EscapeASCII(b []byte, limit int) string {
	if len(b) > limit {
		b = b[:limit]
	}

	escaped := make([]byte, 0, len(b))

	for _, c := range b {
		if c >= 0x20 && c <= 0x7e {
			escaped = append(escaped, c)
			continue
		}

		escaped = append(escaped, '\\', 'x', hexdigits[c>>4], hexdigits[c&0xf])
	}

	return uf.B2S(escaped)
}
