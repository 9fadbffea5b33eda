// Package rust undoes the light escaping the legacy Rust mangler applies to
// path components before they go through C++ mangling.
//
// A C++-demangled Rust symbol looks like
//
//	_$LT$std..sys..fd..FileDesc$u20$as$u20$core..ops..Drop$GT$::drop::hc68340e1baa4987a
//
// and decodes to
//
//	<std::sys::fd::FileDesc as core::ops::Drop>::drop
//
// The trailing "::h" plus 16 hex digits is a per-crate hash. Path components
// that do not start with an XID_Start character get a leading '_'. A ".."
// stands for "::" and a single "." for "-".
package rust

const (
	hashPrefix = "::h"
	hashDigits = 16

	// HashSuffixLen is the length of the "::h<16 hex digits>" suffix.
	HashSuffixLen = len(hashPrefix) + hashDigits

	minDistinctDigits = 5
	maxDistinctDigits = 15
)

type token struct {
	seq   string
	value byte
}

// tokens lists every recognised $-escape. No two share a prefix, so the
// first match is the only match.
var tokens = []token{
	{"$C$", ','},
	{"$SP$", '@'},
	{"$BP$", '*'},
	{"$RF$", '&'},
	{"$LT$", '<'},
	{"$GT$", '>'},
	{"$LP$", '('},
	{"$RP$", ')'},
	{"$u20$", ' '},
	{"$u22$", '"'},
	{"$u27$", '\''},
	{"$u2b$", '+'},
	{"$u3b$", ';'},
	{"$u5b$", '['},
	{"$u5d$", ']'},
	{"$u7b$", '{'},
	{"$u7d$", '}'},
	{"$u7e$", '~'},
}

// matchToken returns the token starting at s[i], if any.
func matchToken[S ~string | ~[]byte](s S, i int) (token, bool) {
	for _, tok := range tokens {
		if hasPrefixAt(s, i, tok.seq) {
			return tok, true
		}
	}
	return token{}, false
}

func hasPrefixAt[S ~string | ~[]byte](s S, i int, prefix string) bool {
	if len(s)-i < len(prefix) {
		return false
	}
	for j := 0; j < len(prefix); j++ {
		if s[i+j] != prefix[j] {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
