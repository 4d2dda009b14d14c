package token

// table marks the bytes allowed in an RFC 7230 tchar:
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	        "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
var table = [256]bool{}

func init() {
	for c := '0'; c <= '9'; c++ {
		table[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		table[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		table[c] = true
	}
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		table[c] = true
	}
}

// Is reports whether c is a valid HTTP token character.
func Is(c byte) bool {
	return table[c]
}
