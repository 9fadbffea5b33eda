package rust

// DecodeInPlace rewrites a symbol for which LooksMangled holds into its
// natural form and returns the decoded prefix of buf. The hash suffix is
// dropped.
//
// Every rule consumes at least as many bytes as it writes, so the result
// always fits in buf. An unexpected byte or $-sequence ends decoding with a
// single '?'.
func DecodeInPlace(buf []byte) []byte {
	if len(buf) <= HashSuffixLen {
		return buf[:0]
	}
	end := len(buf) - HashSuffixLen

	r, w := 0, 0
	for r < end {
		c := buf[r]
		switch {
		case c == '$':
			tok, ok := matchToken(buf, r)
			if !ok {
				return fail(buf, r, w)
			}
			buf[w] = tok.value
			w++
			r += len(tok.seq)
		case c == '_':
			// The mangler prefixes '_' to path components that would
			// otherwise start with an escape.
			if (r == 0 || buf[r-1] == ':') && r+1 < len(buf) && buf[r+1] == '$' {
				r++
			} else {
				buf[w] = c
				w++
				r++
			}
		case c == '.':
			if r+1 < len(buf) && buf[r+1] == '.' {
				buf[w] = ':'
				buf[w+1] = ':'
				w += 2
				r += 2
			} else {
				buf[w] = '-'
				w++
				r++
			}
		case isAlnum(c), c == ':':
			buf[w] = c
			w++
			r++
		default:
			return fail(buf, r, w)
		}
		checkCursor(r, w)
	}
	return buf[:w]
}

func fail(buf []byte, r, w int) []byte {
	buf[w] = '?'
	w++
	checkCursor(r+1, w)
	return buf[:w]
}

func checkCursor(r, w int) {
	if w > r {
		panic("rust: write cursor passed read cursor")
	}
}

// Decode returns the natural form of s if it looks like a Rust symbol, and
// s unchanged otherwise.
func Decode(s string) string {
	if !LooksMangled(s) {
		return s
	}
	return string(DecodeInPlace([]byte(s)))
}
