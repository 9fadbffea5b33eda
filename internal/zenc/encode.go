package zenc

import (
	"strings"
)

// Encode builds a redirect specifier with a Z-encoded function name.
func Encode(spec RedirectSpec) (string, error) {
	return encode(spec, true)
}

// EncodeLiteral builds a redirect specifier whose function name is copied
// verbatim ('U' form). The function name must not contain NUL.
func EncodeLiteral(spec RedirectSpec) (string, error) {
	return encode(spec, false)
}

func encode(spec RedirectSpec, fnEncoded bool) (string, error) {
	if spec.EclassTag < 0 || spec.EclassTag > MaxEclassTag ||
		spec.EclassPrio < 0 || spec.EclassPrio > MaxEclassPrio {
		return "", ErrEclassRange
	}
	if spec.EclassTag == 0 && spec.EclassPrio != 0 {
		return "", ErrEclassRange
	}

	var b strings.Builder
	b.Grow(headerLen + 2*len(spec.Soname) + 2*len(spec.FnName) + 1)

	b.WriteString("_vg")
	if spec.IsWrap {
		b.WriteByte('w')
	} else {
		b.WriteByte('r')
	}
	b.WriteByte(byte('0' + spec.EclassTag/1000))
	b.WriteByte(byte('0' + spec.EclassTag/100%10))
	b.WriteByte(byte('0' + spec.EclassTag/10%10))
	b.WriteByte(byte('0' + spec.EclassTag%10))
	b.WriteByte(byte('0' + spec.EclassPrio))
	b.WriteByte('Z')
	if fnEncoded {
		b.WriteByte('Z')
	} else {
		b.WriteByte('U')
	}
	b.WriteByte('_')

	if err := encodeField(&b, spec.Soname); err != nil {
		return "", err
	}
	b.WriteByte('_')

	if fnEncoded {
		if err := encodeField(&b, spec.FnName); err != nil {
			return "", err
		}
	} else {
		if strings.IndexByte(spec.FnName, 0) >= 0 {
			return "", ErrUnencodable
		}
		b.WriteString(spec.FnName)
	}

	sym := b.String()
	if strings.HasPrefix(sym[headerLen:], forbiddenSoPrefix) ||
		strings.HasPrefix(spec.Soname, forbiddenSoPrefix) {
		return "", &ForbiddenPrefixError{Symbol: sym}
	}
	return sym, nil
}

// encodeField escapes every byte that is not an ASCII letter or digit.
func encodeField(b *strings.Builder, s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 'Z':
			b.WriteString("ZZ")
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case encodeTable[c] != 0:
			b.WriteByte('Z')
			b.WriteByte(encodeTable[c])
		default:
			return ErrUnencodable
		}
	}
	return nil
}
