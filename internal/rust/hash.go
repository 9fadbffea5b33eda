package rust

// LooksMangled reports whether s, already run through the C++ demangler,
// looks like a legacy Rust symbol:
//
//   - it ends in "::h" followed by 16 lowercase hex digits, with at least one
//     byte before that;
//   - the hash uses between 5 and 15 distinct digits;
//   - everything before the hash is [a-zA-Z0-9_:.] or a known $-escape, with
//     no run of three or more dots.
//
// The distinct-digit bound rejects path components like "haaaaaaaaaaaaaaaa".
// Dropping a real component from a non-Rust name is worse than leaving the
// rare Rust name undecoded.
func LooksMangled(s string) bool {
	if len(s) <= HashSuffixLen {
		return false
	}
	n := len(s) - HashSuffixLen
	if !IsPrefixedHash(s[n:]) {
		return false
	}
	return validPath(s[:n])
}

// IsPrefixedHash reports whether s is exactly "::h" followed by 16 lowercase
// hex digits using between 5 and 15 distinct values.
func IsPrefixedHash(s string) bool {
	if len(s) != HashSuffixLen || s[:len(hashPrefix)] != hashPrefix {
		return false
	}

	var seen [16]bool
	for i := len(hashPrefix); i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seen[c-'0'] = true
		case c >= 'a' && c <= 'f':
			seen[c-'a'+10] = true
		default:
			return false
		}
	}

	count := 0
	for _, ok := range seen {
		if ok {
			count++
		}
	}
	return count >= minDistinctDigits && count <= maxDistinctDigits
}

func validPath(s string) bool {
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '$':
			tok, ok := matchToken(s, i)
			if !ok {
				return false
			}
			i += len(tok.seq)
		case c == '.':
			if hasPrefixAt(s, i, "...") {
				return false
			}
			i++
		case isAlnum(c), c == '_', c == ':':
			i++
		default:
			return false
		}
	}
	return true
}
