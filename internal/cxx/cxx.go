// Package cxx adapts an Itanium C++ demangler to the pipeline's stage-1
// interface.
package cxx

import (
	"github.com/ianlancetaylor/demangle"
)

// Flags control how much of a demangled name is printed.
type Flags struct {
	ANSI   bool // Print cv-qualifiers; always on in this backend
	Params bool // Print function parameter lists
}

// DefaultFlags matches the flags the pipeline passes by default.
var DefaultFlags = Flags{ANSI: true, Params: true}

// Demangle returns the demangled form of an Itanium-mangled name. It reports
// false when raw cannot be demangled.
//
// Rust legacy names are left as plain C++ paths; decoding their $-escapes is
// a separate stage.
func Demangle(raw string, flags Flags) (string, bool) {
	opts := []demangle.Option{demangle.NoRust}
	if !flags.Params {
		opts = append(opts, demangle.NoParams)
	}

	out, err := demangle.ToString(raw, opts...)
	if err != nil || out == "" {
		return "", false
	}
	return out, true
}

// IsMangled reports whether name carries the Itanium "_Z" marker.
func IsMangled(name string) bool {
	return len(name) >= 2 && name[0] == '_' && name[1] == 'Z'
}
