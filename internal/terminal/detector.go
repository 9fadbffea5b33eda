// Package terminal decides whether the CLI reads symbols interactively or
// as a batch filter.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"BUILDKITE",
	"JENKINS_URL",
	"TF_BUILD",
}

// Detector reports whether input comes from a person at a terminal.
type Detector struct {
	fd     int
	getenv func(string) string
	isTerm func(int) bool
}

// NewDetector returns a Detector for the given input file.
func NewDetector(in *os.File) *Detector {
	return &Detector{
		fd:     int(in.Fd()),
		getenv: os.Getenv,
		isTerm: term.IsTerminal,
	}
}

// IsInteractive is true when input is a terminal outside CI.
func (d *Detector) IsInteractive() bool {
	if d.IsCIEnvironment() {
		return false
	}
	return d.isTerm(d.fd)
}

// IsCIEnvironment checks if the current environment is a CI/CD system
func (d *Detector) IsCIEnvironment() bool {
	for _, name := range ciEnvVars {
		value := d.getenv(name)
		if value == "" {
			continue
		}
		if name == "CI" {
			return isTruthy(value)
		}
		return true
	}
	return false
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
