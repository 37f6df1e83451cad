package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(dedent.Dedent(content)), 0o644))
	return path
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
		fail_on_error: true
	`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.True(t, config.FailOnError)
	assert.Equal(t, Default().Roots, config.Roots)
	assert.Equal(t, "node_modules", config.PackageDir)
	assert.Equal(t, []string{"selfdestruct"}, config.Forbidden)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
		roots:
		  - contracts/arbitrum/connectors
		package_dir: vendor
		forbidden: [selfdestruct, delegatecall]
	`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"contracts/arbitrum/connectors"}, config.Roots)
	assert.Equal(t, "vendor", config.PackageDir)
	assert.Equal(t, []string{"selfdestruct", "delegatecall"}, config.Forbidden)
}

func TestLoadTemplates(t *testing.T) {
	t.Setenv("CONNLINT_PACKAGES", "lib")
	path := writeConfig(t, `
		package_dir: {{ env.CONNLINT_PACKAGES || node_modules }}
		roots: {{ env.CONNLINT_UNSET_ROOTS || ["contracts/a", "contracts/b"] }}
	`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "lib", config.PackageDir)
	assert.Equal(t, []string{"contracts/a", "contracts/b"}, config.Roots)
}

func TestLoadValidation(t *testing.T) {
	path := writeConfig(t, `
		roots: []
		package_dir: ""
	`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Roots (min)")
	assert.Contains(t, err.Error(), "Config.PackageDir (required)")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "roots: [unterminated\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "unable to parse configuration file")
}

func TestLoadOptional(t *testing.T) {
	config, err := LoadOptional(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	_, err = Load(filepath.Join(t.TempDir(), FileName))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTemplate(t *testing.T) {
	t.Setenv("CONNLINT_SET", "value")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"env", "key: {{ env.CONNLINT_SET }}", "key: value"},
		{"fallback", "key: {{ env.CONNLINT_UNSET || other }}", "key: other"},
		{"empty", "key: {{ env.CONNLINT_UNSET }}", "key: "},
		{"json", `key: {{ env.CONNLINT_UNSET || ["a", "b"] }}`, "key: [a, b]"},
		{"untouched", "key: plain", "key: plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Template([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}
