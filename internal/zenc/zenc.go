// Package zenc decodes and encodes Z-encoded redirect specifiers.
//
// A redirect specifier packs a shared-object name, a function name and a
// small amount of metadata into one legal identifier:
//
//	"_vg" ('r'|'w') DDDDD 'Z' ('Z'|'U') '_' soname '_' fnname
//
// The first four digits are the equivalence class tag and the fifth is its
// priority. Inside encoded fields, 'Z' introduces a two-byte escape.
package zenc

import (
	"bytes"
	"strings"
)

const (
	headerLen = 12
	escapeLen = 2

	// MaxEclassTag is the largest representable equivalence class tag.
	MaxEclassTag = 9999
	// MaxEclassPrio is the largest representable equivalence class priority.
	MaxEclassPrio = 9

	forbiddenSoPrefix = "VG_Z_"
)

// RedirectSpec is a decoded redirect specifier.
type RedirectSpec struct {
	Soname     string // Empty when the caller did not ask for it
	FnName     string
	IsWrap     bool
	EclassTag  int
	EclassPrio int
}

// decodeTable maps an escape selector to the byte it stands for.
// A zero entry marks an invalid selector.
var decodeTable = [256]byte{
	'a': '*',
	'c': ':',
	'd': '.',
	'h': '-',
	'p': '+',
	's': ' ',
	'u': '_',
	'A': '@',
	'D': '$',
	'L': '(',
	'P': '%',
	'R': ')',
	'S': '/',
	'Z': 'Z',
}

// encodeTable is the inverse of decodeTable.
var encodeTable = func() [256]byte {
	var t [256]byte
	for sel, ch := range decodeTable {
		if ch != 0 {
			t[ch] = byte(sel)
		}
	}
	return t
}()

// Unescape returns the byte a selector stands for.
func Unescape(selector byte) (byte, bool) {
	ch := decodeTable[selector]
	return ch, ch != 0
}

// IsEncoded reports whether sym carries a well-formed redirect header.
// It does not look past the header.
func IsEncoded(sym string) bool {
	_, err := parseHeader(cstring(sym))
	return err == nil
}

// Decode splits a Z-encoded redirect specifier into its parts.
//
// The soname is decoded into the result only when wantSoname is set, but its
// escapes are validated either way. A soname starting with "VG_Z_", either
// as raw bytes or once decoded, yields a *ForbiddenPrefixError.
func Decode(sym string, wantSoname bool) (RedirectSpec, error) {
	sym = cstring(sym)

	h, err := parseHeader(sym)
	if err != nil {
		return RedirectSpec{}, err
	}

	if strings.HasPrefix(sym[headerLen:], forbiddenSoPrefix) {
		return RedirectSpec{}, &ForbiddenPrefixError{Symbol: sym}
	}

	// Decoded fields are never longer than the encoded symbol: every
	// escape consumes two bytes and emits one, literals are copied 1:1.
	// The soname is always decoded so its prefix can be checked.
	so := make([]byte, 0, len(sym)-headerLen)

	i := headerLen
	for {
		if i >= len(sym) {
			return RedirectSpec{}, ErrUnterminatedSoname
		}
		c := sym[i]
		if c == '_' {
			break
		}
		if c != 'Z' {
			so = append(so, c)
			i++
			continue
		}
		ch, err := unescapeAt(sym, i, "soname")
		if err != nil {
			return RedirectSpec{}, err
		}
		so = append(so, ch)
		i += escapeLen
	}
	i++ // delimiter

	if bytes.HasPrefix(so, []byte(forbiddenSoPrefix)) {
		return RedirectSpec{}, &ForbiddenPrefixError{Symbol: sym}
	}
	if !wantSoname {
		so = nil
	}

	var fn string
	if h.fnEncoded {
		fn, err = decodeField(sym, i, "fnname")
		if err != nil {
			return RedirectSpec{}, err
		}
	} else {
		fn = sym[i:]
	}

	return RedirectSpec{
		Soname:     string(so),
		FnName:     fn,
		IsWrap:     h.isWrap,
		EclassTag:  h.tag,
		EclassPrio: h.prio,
	}, nil
}

type header struct {
	isWrap    bool
	fnEncoded bool
	tag       int
	prio      int
}

func parseHeader(sym string) (header, error) {
	if len(sym) < headerLen {
		return header{}, ErrMalformedHeader
	}
	if sym[0] != '_' || sym[1] != 'v' || sym[2] != 'g' {
		return header{}, ErrMalformedHeader
	}
	if sym[3] != 'r' && sym[3] != 'w' {
		return header{}, ErrMalformedHeader
	}
	for _, c := range []byte(sym[4:9]) {
		if c < '0' || c > '9' {
			return header{}, ErrMalformedHeader
		}
	}
	if sym[9] != 'Z' || (sym[10] != 'Z' && sym[10] != 'U') || sym[11] != '_' {
		return header{}, ErrMalformedHeader
	}

	h := header{
		isWrap:    sym[3] == 'w',
		fnEncoded: sym[10] == 'Z',
		tag: 1000*int(sym[4]-'0') +
			100*int(sym[5]-'0') +
			10*int(sym[6]-'0') +
			int(sym[7]-'0'),
		prio: int(sym[8] - '0'),
	}

	// Tag 0000 means "no equivalence class", so the priority must be 0 too.
	if h.tag == 0 && h.prio != 0 {
		return header{}, ErrMalformedHeader
	}
	return h, nil
}

func decodeField(sym string, start int, field string) (string, error) {
	out := make([]byte, 0, len(sym)-start)
	for i := start; i < len(sym); {
		c := sym[i]
		if c != 'Z' {
			out = append(out, c)
			i++
			continue
		}
		ch, err := unescapeAt(sym, i, field)
		if err != nil {
			return "", err
		}
		out = append(out, ch)
		i += escapeLen
	}
	return string(out), nil
}

// unescapeAt decodes the escape whose 'Z' sits at sym[i].
func unescapeAt(sym string, i int, field string) (byte, error) {
	if i+1 >= len(sym) {
		return 0, &EscapeError{Field: field, Offset: i + 1}
	}
	ch, ok := Unescape(sym[i+1])
	if !ok {
		return 0, &EscapeError{Field: field, Offset: i + 1, Selector: sym[i+1]}
	}
	return ch, nil
}

// cstring truncates s at the first NUL byte.
func cstring(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
