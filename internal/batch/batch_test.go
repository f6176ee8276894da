package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/danfe/internal/config"
	"github.com/gompdf/danfe/internal/parser/nfe"
	"github.com/gompdf/danfe/internal/parser/nfe/nfetest"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.InputDir = t.TempDir()
	cfg.OutputDir = filepath.Join(t.TempDir(), "pdf")
	cfg.MaxConcurrency = 2
	return cfg
}

func TestRunDANFE(t *testing.T) {
	cfg := newConfig(t)
	writeFile(t, cfg.InputDir, "b.xml", nfetest.Invoice{Items: nfetest.Items(30)}.XML())
	writeFile(t, cfg.InputDir, "a.XML", nfetest.Invoice{PrintType: "2", Items: nfetest.Items(2)}.XML())
	writeFile(t, cfg.InputDir, "broken.xml", "<nfeProc><NFe>")
	writeFile(t, cfg.InputDir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(cfg.InputDir, "sub.xml"), 0o755))

	runner, err := NewRunner(context.Background(), cfg)
	require.NoError(t, err)

	results, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, filepath.Join(cfg.InputDir, "a.XML"), results[0].Path)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "a.pdf"), results[0].Output)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, results[0].Pages)

	assert.Equal(t, filepath.Join(cfg.InputDir, "b.xml"), results[1].Path)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, 2, results[1].Pages)

	assert.Equal(t, filepath.Join(cfg.InputDir, "broken.xml"), results[2].Path)
	assert.ErrorIs(t, results[2].Err, nfe.ErrMalformedDocument)
	assert.NoFileExists(t, results[2].Output)

	for _, r := range results[:2] {
		data, err := os.ReadFile(r.Output)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(data[:4]))
	}

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not be left behind")

	assert.Len(t, Failed(results), 1)
	assert.ErrorIs(t, Err(results), nfe.ErrMalformedDocument)
}

func TestRunCCe(t *testing.T) {
	cfg := newConfig(t)
	cfg.Kind = config.KindCCe
	cfg.Emitter = config.Emitter{Name: "Comércio de Peças Ltda", City: "São Paulo", State: "SP"}
	writeFile(t, cfg.InputDir, "cce.xml", nfetest.Event("Corrige o CFOP."))
	writeFile(t, cfg.InputDir, "invoice.xml", nfetest.Invoice{Items: nfetest.Items(1)}.XML())

	runner, err := NewRunner(context.Background(), cfg)
	require.NoError(t, err)

	results, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, 1, results[0].Pages)
	assert.ErrorIs(t, results[1].Err, nfe.ErrMalformedDocument)
}

func TestRunEmptyDirectory(t *testing.T) {
	runner, err := NewRunner(context.Background(), newConfig(t))
	require.NoError(t, err)

	results, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NoError(t, Err(results))
}

func TestRunMissingInput(t *testing.T) {
	cfg := newConfig(t)
	cfg.InputDir = filepath.Join(cfg.InputDir, "missing")

	runner, err := NewRunner(context.Background(), cfg)
	require.NoError(t, err)

	_, err = runner.Run(context.Background())
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	cfg := newConfig(t)
	writeFile(t, cfg.InputDir, "a.xml", nfetest.Invoice{Items: nfetest.Items(1)}.XML())

	runner, err := NewRunner(context.Background(), cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestNewRunnerErrors(t *testing.T) {
	cfg := newConfig(t)
	cfg.Layout = "ISS"
	_, err := NewRunner(context.Background(), cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	cfg = newConfig(t)
	cfg.Logo = filepath.Join(t.TempDir(), "missing.png")
	_, err = NewRunner(context.Background(), cfg)
	assert.Error(t, err)
}
