package rust

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const hash = "::hc68340e1baa4987a"

func TestIsPrefixedHash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"typical", "::hc68340e1baa4987a", true},
		{"five distinct", "::h0123401234012340", true},
		{"fifteen distinct", "::h0123456789abcdee", true},
		{"four distinct", "::h0123012301230123", false},
		{"sixteen distinct", "::h0123456789abcdef", false},
		{"all same digit", "::haaaaaaaaaaaaaaaa", false},
		{"uppercase hex", "::hC68340E1BAA4987A", false},
		{"non hex", "::hc68340e1baa4987g", false},
		{"wrong marker", "::gc68340e1baa4987a", false},
		{"too short", "::hc68340e1baa4987", false},
		{"too long", "::hc68340e1baa4987a0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPrefixedHash(tt.in))
		})
	}
}

func TestLooksMangled(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"file desc drop", "_$LT$std..sys..fd..FileDesc$u20$as$u20$core..ops..Drop$GT$::drop" + hash, true},
		{"plain path", "core::ptr::drop_in_place" + hash, true},
		{"all tokens", "$C$$SP$$BP$$RF$$LT$$GT$$LP$$RP$$u20$$u22$$u27$$u2b$$u3b$$u5b$$u5d$$u7b$$u7d$$u7e$" + hash, true},
		{"single char before hash", "a" + hash, true},
		{"hash only", hash, false},
		{"no hash", "std::sys::fd::FileDesc::drop", false},
		{"degenerate hash", "core::ptr::drop_in_place::haaaaaaaaaaaaaaaa", false},
		{"too many distinct digits", "core::ptr::drop_in_place::h0123456789abcdef", false},
		{"C++ with params", "foo(int)" + hash, false},
		{"space", "foo bar" + hash, false},
		{"unknown token", "foo$XX$bar" + hash, false},
		{"unterminated token", "foo$LT" + hash, false},
		{"three dots", "foo...bar" + hash, false},
		{"two dots", "foo..bar" + hash, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksMangled(tt.in))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "file desc drop",
			in:   "_$LT$std..sys..fd..FileDesc$u20$as$u20$core..ops..Drop$GT$::drop" + hash,
			want: "<std::sys::fd::FileDesc as core::ops::Drop>::drop",
		},
		{
			name: "plain path drops hash",
			in:   "core::ptr::drop_in_place" + hash,
			want: "core::ptr::drop_in_place",
		},
		{
			name: "underscore after colon before escape",
			in:   "alloc::vec::_$LT$impl$GT$::push" + hash,
			want: "alloc::vec::<impl>::push",
		},
		{
			name: "underscore not before escape is kept",
			in:   "_foo::_bar" + hash,
			want: "_foo::_bar",
		},
		{
			name: "underscore mid component before escape is kept",
			in:   "a_$LT$b" + hash,
			want: "a_<b",
		},
		{
			name: "single dot becomes dash",
			in:   "foo.bar" + hash,
			want: "foo-bar",
		},
		{
			name: "all tokens",
			in:   "$C$$SP$$BP$$RF$$LT$$GT$$LP$$RP$$u20$$u22$$u27$$u2b$$u3b$$u5b$$u5d$$u7b$$u7d$$u7e$" + hash,
			want: `,@*&<>() "'+;[]{}~`,
		},
		{
			name: "closure",
			in:   "std::rt::lang_start::_$u7b$$u7b$closure$u7d$$u7d$" + hash,
			want: "std::rt::lang_start::{{closure}}",
		},
		{
			name: "heuristic miss is identity",
			in:   "foo(int)" + hash,
			want: "foo(int)" + hash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), len(tt.in))
		})
	}
}

func TestDecodeInPlaceFailure(t *testing.T) {
	// Ungated input: an unknown byte stops decoding with a placeholder.
	buf := []byte("foo::b@r::baz" + hash)
	assert.Equal(t, "foo::b?", string(DecodeInPlace(buf)))

	buf = []byte("foo$XX$bar" + hash)
	assert.Equal(t, "foo?", string(DecodeInPlace(buf)))

	buf = []byte("$" + hash)
	assert.Equal(t, "?", string(DecodeInPlace(buf)))
}

func TestDecodeInPlaceAliasesInput(t *testing.T) {
	buf := []byte("core..ptr..drop" + hash)
	out := DecodeInPlace(buf)

	assert.Equal(t, "core::ptr::drop", string(out))
	assert.Same(t, &buf[0], &out[0])
	assert.Equal(t, "core::ptr::drop", string(buf[:len(out)]))
}

func TestDecodeInPlaceShortInput(t *testing.T) {
	assert.Empty(t, DecodeInPlace([]byte(hash)))
	assert.Empty(t, DecodeInPlace(nil))
}

func TestDecodeWithoutSpecialsIsPrefix(t *testing.T) {
	// With no '$' or '.', decoding only drops the hash.
	for _, path := range []string{"a", "core::fmt::write", "Z9_x::y_z"} {
		in := path + hash
		assert.Equal(t, path, Decode(in))
	}
}

func TestDecodeIsGatedByHeuristic(t *testing.T) {
	in := "_$LT$std..sys..fd..FileDesc$u20$as$u20$core..ops..Drop$GT$::drop" + hash
	once := Decode(in)
	assert.False(t, LooksMangled(once))
	assert.Equal(t, once, Decode(once))
}

func TestDecodeLongInput(t *testing.T) {
	in := strings.Repeat("a..b.", 1000) + "x" + hash
	got := Decode(in)
	assert.Equal(t, strings.Repeat("a::b-", 1000)+"x", got)
}
