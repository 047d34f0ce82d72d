package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_File(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("output: JSON\nmin-overlap: 3\nsort: true\n"), 0o644))

	s, err := Load(NewViper(), fn)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, s.Output)
	assert.Equal(t, 3, s.MinOverlap)
	assert.True(t, s.Sort)
	assert.Equal(t, 60, s.LineWidth)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("min-overlap: 3\n"), 0o644))
	t.Setenv("GREEDYASM_MIN_OVERLAP", "5")
	t.Setenv("GREEDYASM_LINE_WIDTH", "0")

	s, err := Load(NewViper(), fn)
	require.NoError(t, err)
	assert.Equal(t, 5, s.MinOverlap)
	assert.Equal(t, 0, s.LineWidth)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read settings")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Settings){
		"min-overlap": func(s *Settings) { s.MinOverlap = 0 },
		"line-width":  func(s *Settings) { s.LineWidth = -1 },
		"output":      func(s *Settings) { s.Output = "bam" },
		"input":       func(s *Settings) { s.InputFormat = "fastq" },
		"verbosity":   func(s *Settings) { s.Verbose, s.Quiet = true, true },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := Defaults()
			mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
	assert.NoError(t, Defaults().Validate())
}
