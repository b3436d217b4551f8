package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	Reset()

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultMaxLength, cfg.MaxLength)
	assert.Equal(t, DefaultJobs, cfg.Jobs)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.SchemaFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "sqlrefs.yaml")
	doc := `output: json
max_length: 4096
schema_file: schema.yaml
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 4096, cfg.MaxLength)
	assert.Equal(t, "schema.yaml", cfg.SchemaFile)
	assert.Equal(t, path, ConfigFileUsed())
	// Unset keys keep their defaults
	assert.Equal(t, DefaultJobs, cfg.Jobs)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	Reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "sqlrefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o644))

	t.Setenv("SQLREFS_OUTPUT", "csv")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Output)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	Reset()

	t.Setenv("SQLREFS_OUTPUT", "csv")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.Int("max-length", 0, "")
	require.NoError(t, flags.Parse([]string{"--output=plain", "--max-length=128"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Output)
	assert.Equal(t, 128, cfg.MaxLength)
}

func TestLoad_UnchangedFlagsIgnored(t *testing.T) {
	Reset()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "table", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	// Flag default does not override the config default since the flag
	// was never set.
	assert.Equal(t, DefaultOutput, cfg.Output)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "bad output", doc: "output: xml\n"},
		{name: "negative max length", doc: "max_length: -1\n"},
		{name: "zero jobs", doc: "jobs: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()

			path := filepath.Join(t.TempDir(), "sqlrefs.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o644))

			_, err := Load(path, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	Reset()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultMaxLength, cfg.MaxLength)
	assert.Equal(t, DefaultJobs, cfg.Jobs)
}
