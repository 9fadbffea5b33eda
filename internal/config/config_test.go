package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skdltmxn/vgdemangle/demangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *Config
	}{
		{
			name:    "empty uses defaults",
			content: "",
			want:    Default(),
		},
		{
			name: "full file",
			content: `
[demangle]
enabled = false
cxx = false
z = true
params = false
forbidden_prefix = "degrade"

[log]
level = "debug"
development = true
`,
			want: &Config{
				Demangle: DemangleConfig{Enabled: false, CXX: false, Z: true, Params: false, ForbiddenPrefix: "degrade"},
				Log:      LogConfig{Level: "debug", Development: true},
			},
		},
		{
			name: "partial file keeps other defaults",
			content: `
[demangle]
params = false
`,
			want: &Config{
				Demangle: DemangleConfig{Enabled: true, CXX: true, Z: true, Params: false, ForbiddenPrefix: "fatal"},
				Log:      LogConfig{Level: "warn"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"syntax error", "[demangle\n", false},
		{"unknown key", "[demangle]\nrust = true\n", false},
		{"wrong type", "[demangle]\ncxx = \"yes\"\n", false},
		{"bad policy", "[demangle]\nforbidden_prefix = \"ignore\"\n", true},
		{"bad level", "[log]\nlevel = \"loud\"\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vgdemangle.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, level)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Demangle.Params = false
	cfg.Demangle.ForbiddenPrefix = "degrade"

	opts, err := cfg.Options()
	require.NoError(t, err)

	d := demangle.New(opts...)
	assert.Equal(t, "foo", d.Demangle(true, false, "_Z3fooi"))
	assert.Equal(t, "_vgr00000ZU_VG_Z_x", d.Demangle(true, true, "_vgr00000ZU_VG_Z_x"))

	cfg.Demangle.Enabled = false
	opts, err = cfg.Options()
	require.NoError(t, err)

	d = demangle.New(opts...)
	assert.Equal(t, "_Z3fooi", d.Demangle(true, false, "_Z3fooi"))
	assert.Equal(t, "malloc", d.Demangle(true, true, "_vgr00000ZZ_libcZdsoZa_malloc"))
}
