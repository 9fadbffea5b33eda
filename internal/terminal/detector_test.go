package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDetector(env map[string]string, tty bool) *Detector {
	return &Detector{
		getenv: func(k string) string { return env[k] },
		isTerm: func(int) bool { return tty },
	}
}

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		tty  bool
		want bool
	}{
		{"terminal", nil, true, true},
		{"pipe", nil, false, false},
		{"terminal in CI", map[string]string{"CI": "true"}, true, false},
		{"CI disabled", map[string]string{"CI": "false"}, true, true},
		{"github actions", map[string]string{"GITHUB_ACTIONS": "1"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDetector(tt.env, tt.tty)
			assert.Equal(t, tt.want, d.IsInteractive())
		})
	}
}

func TestNewDetectorOnFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// A regular file is never a terminal.
	assert.False(t, NewDetector(f).IsInteractive())
}
