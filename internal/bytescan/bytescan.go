package bytescan

import "bytes"

// IndexByte returns the offset of the first occurrence of c in region, or -1.
//
// The call boils down to the runtime's vectorised IndexByte, which compares
// full hardware vector lanes against a broadcast of c and finishes the tail
// with a scalar loop. Finding LF and CR dominates the cost of head parsing,
// so every line discovery in this module goes through here.
func IndexByte(region []byte, c byte) int {
	return bytes.IndexByte(region, c)
}

// Contains reports whether c occurs anywhere in region. Same scan as
// IndexByte, specialised to a boolean.
func Contains(region []byte, c byte) bool {
	return bytes.IndexByte(region, c) != -1
}
