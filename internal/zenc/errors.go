package zenc

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Decode and Encode.
var (
	// ErrMalformedHeader indicates the fixed "_vg" header did not match.
	ErrMalformedHeader = errors.New("zenc: malformed header")

	// ErrUnknownEscape indicates a Z escape used an unknown selector.
	ErrUnknownEscape = errors.New("zenc: unknown escape")

	// ErrUnterminatedSoname indicates the soname field had no '_' delimiter.
	ErrUnterminatedSoname = errors.New("zenc: unterminated soname")

	// ErrForbiddenPrefix indicates the soname starts with the reserved "VG_Z_" prefix.
	ErrForbiddenPrefix = errors.New("zenc: soname has reserved VG_Z_ prefix")

	// ErrUnencodable indicates a character has no Z-encoding.
	ErrUnencodable = errors.New("zenc: character cannot be encoded")

	// ErrEclassRange indicates an equivalence class tag or priority is out of range.
	ErrEclassRange = errors.New("zenc: equivalence class out of range")
)

// EscapeError describes an invalid escape inside an encoded field.
type EscapeError struct {
	Field    string // "soname" or "fnname"
	Offset   int    // Byte offset of the selector within the symbol
	Selector byte   // Offending selector, 0 if the symbol ended after 'Z'
}

func (e *EscapeError) Error() string {
	if e.Selector == 0 {
		return fmt.Sprintf("zenc: dangling escape in %s at offset %d", e.Field, e.Offset)
	}
	return fmt.Sprintf("zenc: unknown escape 'Z%c' in %s at offset %d", e.Selector, e.Field, e.Offset)
}

func (e *EscapeError) Unwrap() error { return ErrUnknownEscape }

// ForbiddenPrefixError reports a symbol whose soname uses the reserved
// "VG_Z_" prefix. It signals a bug in whatever generated the symbol rather
// than malformed input, so callers usually treat it as fatal.
type ForbiddenPrefixError struct {
	Symbol string
}

func (e *ForbiddenPrefixError) Error() string {
	return fmt.Sprintf("zenc: symbol with a 'VG_Z_' prefix: %s", e.Symbol)
}

func (e *ForbiddenPrefixError) Unwrap() error { return ErrForbiddenPrefix }
