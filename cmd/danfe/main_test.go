package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/danfe/internal/parser/nfe/nfetest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func write(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "danfe dev")
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	in := write(t, filepath.Join(dir, "nota.xml"), nfetest.Invoice{Items: nfetest.Items(3)}.XML())

	_, err := run(t, "render", in, "--layout", "ICMS", "--receipt", "bottom")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "nota.pdf"))

	other := write(t, filepath.Join(dir, "outra.xml"), nfetest.Invoice{PrintType: "2"}.XML())
	_, err = run(t, "render", in, other)
	assert.Error(t, err, "several inputs need --output")

	merged := filepath.Join(dir, "todas.pdf")
	_, err = run(t, "render", in, other, "-o", merged)
	require.NoError(t, err)
	assert.FileExists(t, merged)

	_, err = run(t, "render", in, "--layout", "ISS")
	assert.Error(t, err)
}

func TestCCeCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := write(t, filepath.Join(dir, "danfe.yaml"), "emitter:\n  name: ACME Ltda\n  state: SP\n")
	in := write(t, filepath.Join(dir, "cce.xml"), nfetest.Event("Corrige o CFOP."))
	out := filepath.Join(dir, "carta.pdf")

	_, err := run(t, "--config", cfg, "cce", in, "-o", out)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestBatchCommand(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	write(t, filepath.Join(in, "a.xml"), nfetest.Invoice{Items: nfetest.Items(2)}.XML())

	stdout, err := run(t, "batch", "-i", in, "-o", out, "-j", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "a.pdf (1 pages)")
	assert.FileExists(t, filepath.Join(out, "a.pdf"))

	write(t, filepath.Join(in, "b.xml"), "<broken")
	stdout, err = run(t, "batch", "-i", in, "-o", out)
	assert.Error(t, err)
	assert.Contains(t, stdout, "FAIL")

	_, err = run(t, "batch", "-i", in, "-o", out, "--kind", "nfce")
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	cfg := write(t, filepath.Join(t.TempDir(), "danfe.yaml"), "max_concurrency: 99\n")
	_, err := run(t, "--config", cfg, "version")
	assert.Error(t, err)
}
