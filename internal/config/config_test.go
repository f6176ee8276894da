package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, "./XML", cfg.InputDir)
	assert.Equal(t, "./PDF", cfg.OutputDir)
	assert.Equal(t, KindDANFE, cfg.Kind)
	assert.Equal(t, "ICMS_IPI", cfg.Layout)
	assert.Equal(t, "top", cfg.ReceiptPosition)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, "DANFE", cfg.Title)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "danfe.yaml")
	content := `
input_dir: in
output_dir: out
kind: cce
layout: ICMS_ST
receipt_position: bottom
max_concurrency: 8
emitter:
  name: Comércio de Peças Ltda
  city: São Paulo
  state: SP
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "in", cfg.InputDir)
	assert.Equal(t, KindCCe, cfg.Kind)
	assert.Equal(t, "ICMS_ST", cfg.Layout)
	assert.Equal(t, "bottom", cfg.ReceiptPosition)
	assert.Equal(t, 8, cfg.MaxConcurrency)
	assert.Equal(t, "DACCe", cfg.Title)
	assert.Equal(t, "SP", cfg.Emitter.State)
	assert.Equal(t, "São Paulo", cfg.Emitter.City)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown layout", "layout: ISS\n"},
		{"unknown receipt position", "receipt_position: left\n"},
		{"too much concurrency", "max_concurrency: 64\n"},
		{"negative concurrency", "max_concurrency: -1\n"},
		{"unknown kind", "kind: cte\n"},
		{"bad state", "emitter:\n  state: SAO\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("input_dir: [unclosed"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
