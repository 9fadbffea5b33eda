package demangle

import (
	"github.com/skdltmxn/vgdemangle/internal/zenc"
)

// Errors returned by ZDemangle. Use errors.Is to test for them.
var (
	// ErrMalformedHeader indicates the symbol is not a redirect specifier.
	ErrMalformedHeader = zenc.ErrMalformedHeader

	// ErrUnknownEscape indicates a Z escape used an unknown selector.
	ErrUnknownEscape = zenc.ErrUnknownEscape

	// ErrUnterminatedSoname indicates the soname field never ended.
	ErrUnterminatedSoname = zenc.ErrUnterminatedSoname

	// ErrForbiddenPrefix indicates the soname uses the reserved "VG_Z_"
	// prefix, which points to a bug in the tool that emitted the symbol.
	ErrForbiddenPrefix = zenc.ErrForbiddenPrefix
)

// EscapeError describes an invalid escape inside an encoded field.
type EscapeError = zenc.EscapeError

// ForbiddenPrefixError reports a symbol whose soname uses the reserved
// "VG_Z_" prefix.
type ForbiddenPrefixError = zenc.ForbiddenPrefixError
