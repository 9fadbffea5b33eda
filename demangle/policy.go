package demangle

import (
	"fmt"
	"strings"
)

// Policy decides what happens when a redirect specifier's soname uses the
// reserved "VG_Z_" prefix.
type Policy int

const (
	// PolicyFatal panics with a *ForbiddenPrefixError.
	PolicyFatal Policy = iota
	// PolicyDegrade logs the symbol and leaves it undecoded.
	PolicyDegrade
)

func (p Policy) String() string {
	switch p {
	case PolicyFatal:
		return "fatal"
	case PolicyDegrade:
		return "degrade"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "fatal" or "degrade".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fatal", "":
		return PolicyFatal, nil
	case "degrade":
		return PolicyDegrade, nil
	default:
		return 0, fmt.Errorf("demangle: unknown forbidden-prefix policy %q", s)
	}
}
