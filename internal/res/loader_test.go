package res

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?><nfeProc/>`

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nota.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleXML), 0o644))

	l := NewLoader("")
	res, err := l.LoadXML(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, ResourceTypeXML, res.Type)
	assert.Equal(t, "application/xml", res.MimeType)
	assert.Equal(t, sampleXML, string(res.Data))

	// cached copy survives the file
	require.NoError(t, os.Remove(path))
	again, err := l.LoadXML(context.Background(), path)
	require.NoError(t, err)
	assert.Same(t, res, again)

	l.Forget(path)
	_, err = l.LoadXML(context.Background(), path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRelativeAndSearchPaths(t *testing.T) {
	dir := t.TempDir()
	logos := filepath.Join(dir, "logos")
	require.NoError(t, os.Mkdir(logos, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(logos, "logo.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644))

	l := NewLoader(filepath.Join(dir, "config.yaml"))
	l.Cache = false
	_, err := l.LoadImage(context.Background(), "logo.png")
	assert.ErrorIs(t, err, ErrNotFound)

	l.AddSearchPath(logos)
	res, err := l.LoadImage(context.Background(), "logo.png")
	require.NoError(t, err)
	assert.Equal(t, ResourceTypeImage, res.Type)
	assert.Equal(t, filepath.Join(logos, "logo.png"), res.URL)
}

func TestLoadXMLByContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nota.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xef\xbb\xbf\n  "+sampleXML), 0o644))

	_, err := NewLoader("").LoadXML(context.Background(), path)
	require.NoError(t, err)

	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("plain text"), 0o644))
	_, err = NewLoader("").LoadXML(context.Background(), other)
	assert.Error(t, err)
}

func TestDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake-png"))
	res, err := NewLoader("").LoadImage(context.Background(), "data:image/png;base64,"+payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.MimeType)
	assert.Equal(t, []byte("fake-png"), res.Data)

	res, err = NewLoader("").Load(context.Background(), "data:text/plain,Ol%C3%A1")
	require.NoError(t, err)
	assert.Equal(t, "Olá", string(res.Data))
	assert.Equal(t, ResourceTypeOther, res.Type)

	_, err = NewLoader("").Load(context.Background(), "data:image/png;base64")
	assert.Error(t, err)
	_, err = NewLoader("").Load(context.Background(), "data:image/png;base64,@@@")
	assert.Error(t, err)
}

func TestBareBase64Image(t *testing.T) {
	raw := []byte(strings.Repeat("logo", 30))
	res, err := NewLoader("").LoadImage(context.Background(), base64.StdEncoding.EncodeToString(raw))
	require.NoError(t, err)
	assert.Equal(t, ResourceTypeImage, res.Type)
	assert.Equal(t, raw, res.Data)
}

func TestLoadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/nfe/nota.xml":
			w.Header().Set("Content-Type", "text/xml; charset=utf-8")
			_, _ = w.Write([]byte(sampleXML))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := NewLoader(srv.URL + "/nfe/")
	res, err := l.LoadXML(context.Background(), "nota.xml")
	require.NoError(t, err)
	assert.Equal(t, ResourceTypeXML, res.Type)
	assert.Equal(t, srv.URL+"/nfe/nota.xml", res.URL)

	_, err = l.Load(context.Background(), "missing.xml")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewLoader("").Load(ctx, srv.URL+"/nfe/nota.xml")
	assert.Error(t, err)
}
