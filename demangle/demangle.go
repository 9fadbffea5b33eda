// Package demangle turns raw symbol names into human-readable ones.
//
// A name goes through up to three decoding stages, in this order:
//
//  1. Z-decoding of redirect specifiers ("_vgr00000ZZ_libcZdsoZa_malloc"),
//     keeping only the function name.
//  2. Itanium C++ demangling of names starting with "_Z".
//  3. Rust legacy decoding ("$LT$", "..", "::h<hash>") of the C++ result,
//     only when stage 2 succeeded and the result looks like a Rust path.
//
// A Demangler owns one output buffer that is reused across calls.
// DemangleBytes hands out a view of that buffer which the next call
// overwrites; Demangle returns a copy.
package demangle

import (
	"errors"
	"sync"

	"github.com/skdltmxn/vgdemangle/internal/cxx"
	"github.com/skdltmxn/vgdemangle/internal/rust"
	"github.com/skdltmxn/vgdemangle/internal/zenc"
	"go.uber.org/zap"
)

// RedirectSpec is a decoded redirect specifier.
type RedirectSpec = zenc.RedirectSpec

// CXXFlags control the output of the C++ stage.
type CXXFlags = cxx.Flags

// Demangler runs the decoding pipeline. It is not safe for concurrent use;
// the package-level functions share a mutex-guarded default instance.
type Demangler struct {
	logger   *zap.Logger
	policy   Policy
	flags    CXXFlags
	disabled bool

	stage1 func(string, CXXFlags) (string, bool)

	// buf holds the most recent C++ stage result. It is truncated at the
	// start of every C++ stage call and never freed otherwise.
	buf []byte
}

// Option configures a Demangler.
type Option func(*Demangler)

// WithLogger sets the logger. Without it the package logger is used.
func WithLogger(l *zap.Logger) Option {
	return func(d *Demangler) {
		d.logger = l
	}
}

// WithForbiddenPrefixPolicy sets how "VG_Z_" prefixed sonames are handled.
func WithForbiddenPrefixPolicy(p Policy) Option {
	return func(d *Demangler) {
		d.policy = p
	}
}

// WithCXXFlags sets the flags passed to the C++ stage.
func WithCXXFlags(f CXXFlags) Option {
	return func(d *Demangler) {
		d.flags = f
	}
}

// WithDemangling turns the C++ and Rust stages on or off regardless of the
// per-call doCXX argument. Z-decoding is unaffected.
func WithDemangling(enabled bool) Option {
	return func(d *Demangler) {
		d.disabled = !enabled
	}
}

// New returns a Demangler with the given options applied.
func New(opts ...Option) *Demangler {
	d := &Demangler{
		policy: PolicyFatal,
		flags:  cxx.DefaultFlags,
		stage1: cxx.Demangle,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DemangleBytes runs the pipeline on raw.
//
// When the C++ stage succeeds the result aliases the Demangler's buffer and
// stays valid only until the next call on d. Callers that keep the name
// must copy it.
func (d *Demangler) DemangleBytes(doCXX, doZ bool, raw string) []byte {
	name := raw
	if doZ {
		name = d.zDemangle(name)
	}

	if !doCXX || d.disabled || !cxx.IsMangled(name) {
		return []byte(name)
	}

	// Drop the previous result before producing a new one.
	d.buf = d.buf[:0]

	out, ok := d.stage1(name, d.flags)
	if !ok {
		return []byte(name)
	}

	d.buf = append(d.buf, out...)
	// Only the buffer we own is rewritten in place.
	if rust.LooksMangled(out) {
		d.buf = rust.DecodeInPlace(d.buf)
	}
	return d.buf
}

// Demangle runs the pipeline on raw and returns an independent copy of the
// result.
func (d *Demangler) Demangle(doCXX, doZ bool, raw string) string {
	return string(d.DemangleBytes(doCXX, doZ, raw))
}

// zDemangle returns the function name of a redirect specifier, or sym
// itself when it is not one.
func (d *Demangler) zDemangle(sym string) string {
	spec, err := zenc.Decode(sym, false)
	if err == nil {
		return spec.FnName
	}

	var fpErr *zenc.ForbiddenPrefixError
	if errors.As(err, &fpErr) {
		d.log().Error("symbol with a 'VG_Z_' prefix",
			zap.String("symbol", sym),
			zap.Stringer("policy", d.policy))
		if d.policy == PolicyFatal {
			panic(fpErr)
		}
		return sym
	}

	// A header mismatch just means sym is an ordinary name.
	if !errors.Is(err, zenc.ErrMalformedHeader) {
		d.log().Warn("error Z-demangling",
			zap.String("symbol", sym),
			zap.Error(err))
	}
	return sym
}

func (d *Demangler) log() *zap.Logger {
	if d.logger != nil {
		return d.logger
	}
	return Logger()
}

var (
	defaultMu        sync.Mutex
	defaultDemangler *Demangler
)

// defaultLocked returns the process-wide Demangler. defaultMu must be held;
// the instance is never handed out, so its buffer is only seen under the lock.
func defaultLocked() *Demangler {
	if defaultDemangler == nil {
		defaultDemangler = New()
	}
	return defaultDemangler
}

// Demangle runs the pipeline on raw using the default Demangler. It is safe
// for concurrent use.
func Demangle(doCXX, doZ bool, raw string) string {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultLocked().Demangle(doCXX, doZ, raw)
}

// ZDemangle decodes a redirect specifier. The soname is filled in only when
// wantSoname is set.
func ZDemangle(sym string, wantSoname bool) (RedirectSpec, error) {
	return zenc.Decode(sym, wantSoname)
}

// MaybeZDemangle decodes a redirect specifier, reporting false when sym is
// not a valid one. A "VG_Z_" prefixed soname panics with a
// *ForbiddenPrefixError, as it can only come from a broken tool.
func MaybeZDemangle(sym string, wantSoname bool) (*RedirectSpec, bool) {
	spec, err := zenc.Decode(sym, wantSoname)
	if err != nil {
		var fpErr *zenc.ForbiddenPrefixError
		if errors.As(err, &fpErr) {
			Logger().Error("symbol with a 'VG_Z_' prefix", zap.String("symbol", sym))
			panic(fpErr)
		}
		if !errors.Is(err, zenc.ErrMalformedHeader) {
			Logger().Warn("error Z-demangling", zap.String("symbol", sym), zap.Error(err))
		}
		return nil, false
	}
	return &spec, true
}
