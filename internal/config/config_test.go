package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/graphexport/pkg/errors"
)

// isolate keeps the user's real config and environment out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"FORMATS", "MAX_DEPTH", "DETAILED", "VERBOSE", "CACHE_ENABLED", "CACHE_TTL"} {
		t.Setenv("GRAPHEXPORT_"+key, "")
		os.Unsetenv("GRAPHEXPORT_" + key)
	}
	return dir
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaults(t *testing.T) {
	isolate(t)

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, []string{"xml"}, cfg.Formats)
	assert.True(t, cfg.Cache.Enabled)
}

func TestConfigFileYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	write(t, path, "formats: [json, dot]\nmax_depth: 12\ndetailed: true\ncache:\n  ttl: 5m\n")

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"json", "dot"}, cfg.Formats)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.True(t, cfg.Detailed)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.Cache.Enabled, "unset keys keep their defaults")
}

func TestConfigFileTOMLInXDGDir(t *testing.T) {
	dir := isolate(t)
	write(t, filepath.Join(dir, "graphexport", "graphexport.toml"), "formats = [\"yaml\"]\nverbose = true\n\n[cache]\nenabled = false\n")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"yaml"}, cfg.Formats)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Cache.Enabled)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.yaml")
	write(t, path, "max_depth: 3\nformats: [xml]\n")
	t.Setenv("GRAPHEXPORT_MAX_DEPTH", "9")
	t.Setenv("GRAPHEXPORT_FORMATS", "json,yaml")
	t.Setenv("GRAPHEXPORT_CACHE_TTL", "90s")

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.MaxDepth)
	assert.Equal(t, []string{"json", "yaml"}, cfg.Formats)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("GRAPHEXPORT_MAX_DEPTH", "9")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-depth", 0, "")
	flags.StringSliceP("formats", "f", nil, "")
	flags.Bool("unrelated", false, "")
	require.NoError(t, flags.Parse([]string{"--max-depth", "2", "-f", "dot,svg"}))

	v, err := New("")
	require.NoError(t, err)
	require.NoError(t, Bind(v, flags, "max_depth", "formats", "detailed"))
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxDepth)
	assert.Equal(t, []string{"dot", "svg"}, cfg.Formats)
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	isolate(t)
	t.Setenv("GRAPHEXPORT_MAX_DEPTH", "9")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-depth", 0, "")
	require.NoError(t, flags.Parse(nil))

	v, err := New("")
	require.NoError(t, err)
	require.NoError(t, Bind(v, flags, "max_depth"))
	cfg, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.MaxDepth)
}

func TestInvalidConfig(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"unknown format", "formats: [pdf]\n", errors.ErrCodeInvalidFormat},
		{"negative depth", "max_depth: -1\n", errors.ErrCodeInvalidInput},
		{"negative ttl", "cache:\n  ttl: -1s\n", errors.ErrCodeInvalidInput},
		{"malformed", "formats: [xml\n", errors.ErrCodeInvalidInput},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad", string(rune('a'+i))+".yaml")
			write(t, path, tt.content)

			v, err := New(path)
			if err == nil {
				_, err = Decode(v)
			}
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := New(filepath.Join(dir, "nope.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
}

func TestPipelineOptions(t *testing.T) {
	cfg := Config{Formats: []string{"xml", "svg"}, MaxDepth: 4, Detailed: true}
	opts := cfg.PipelineOptions()

	assert.Equal(t, cfg.Formats, opts.Formats)
	assert.Equal(t, 4, opts.MaxDepth)
	assert.True(t, opts.Detailed)

	opts.Formats[0] = "json"
	assert.Equal(t, "xml", cfg.Formats[0], "options must not alias the config")
}
