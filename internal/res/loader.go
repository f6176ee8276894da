// Package res loads the inputs of a conversion: NF-e and CC-e documents and
// the emitter logo. Sources can be local paths, http(s) URLs or RFC 2397
// data URLs.
package res

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ResourceType represents the type of resource
type ResourceType int

const (
	// ResourceTypeUnknown is an unknown resource type
	ResourceTypeUnknown ResourceType = iota
	// ResourceTypeImage is a logo or other raster image
	ResourceTypeImage
	// ResourceTypeXML is a fiscal document or event
	ResourceTypeXML
	// ResourceTypeOther is any other resource
	ResourceTypeOther
)

// DefaultTimeout bounds remote fetches
const DefaultTimeout = 30 * time.Second

// ErrNotFound is returned when a local resource exists neither at its path
// nor in any search path.
var ErrNotFound = errors.New("resource not found")

// Resource is a loaded input
type Resource struct {
	URL      string
	Type     ResourceType
	Data     []byte
	MimeType string
}

// Reader returns a reader over the resource data
func (r *Resource) Reader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}

// Loader resolves and reads resources
type Loader struct {
	// BaseURL is the file path or URL relative references resolve against
	BaseURL string

	// Cache keeps loaded resources by reference. Documents are read once
	// in batch runs, so callers converting many files leave it off.
	Cache bool

	cache     map[string]*Resource
	cacheLock sync.RWMutex

	searchPaths []string
	client      *http.Client
}

// NewLoader creates a loader with caching enabled
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL: baseURL,
		Cache:   true,
		cache:   make(map[string]*Resource),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// AddSearchPath adds a directory to look into when a local file is missing
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load reads a resource from a path, URL or data URL
func (l *Loader) Load(ctx context.Context, ref string) (*Resource, error) {
	if l.Cache {
		l.cacheLock.RLock()
		res, ok := l.cache[ref]
		l.cacheLock.RUnlock()
		if ok {
			return res, nil
		}
	}

	res, err := l.fetch(ctx, ref)
	if err != nil {
		return nil, err
	}

	if l.Cache {
		l.cacheLock.Lock()
		l.cache[ref] = res
		l.cacheLock.Unlock()
	}
	return res, nil
}

func (l *Loader) fetch(ctx context.Context, ref string) (*Resource, error) {
	if strings.HasPrefix(ref, "data:") {
		return parseDataURL(ref)
	}

	resolved, err := l.resolve(ref)
	if err != nil {
		return nil, err
	}
	if isRemote(resolved) {
		return l.loadRemote(ctx, resolved)
	}
	return l.loadLocal(resolved)
}

// LoadImage loads a logo. Besides paths and URLs it accepts the bare base64
// payload of an image.
func (l *Loader) LoadImage(ctx context.Context, ref string) (*Resource, error) {
	if !strings.HasPrefix(ref, "data:") && looksLikeBase64(ref) {
		data, err := base64.StdEncoding.DecodeString(ref)
		if err == nil {
			return &Resource{URL: "inline", Type: ResourceTypeImage, Data: data, MimeType: "application/octet-stream"}, nil
		}
	}

	res, err := l.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeImage {
		return nil, fmt.Errorf("resource is not an image: %s", ref)
	}
	return res, nil
}

// LoadXML loads a fiscal document. Resources of unknown type are accepted
// as long as their content starts like XML.
func (l *Loader) LoadXML(ctx context.Context, ref string) (*Resource, error) {
	res, err := l.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeXML && !looksLikeXML(res.Data) {
		return nil, fmt.Errorf("resource is not XML: %s", ref)
	}
	return res, nil
}

// Forget drops a resource from the cache
func (l *Loader) Forget(ref string) {
	l.cacheLock.Lock()
	delete(l.cache, ref)
	l.cacheLock.Unlock()
}

// parseDataURL decodes data:[<mime>][;base64],<payload>
func parseDataURL(u string) (*Resource, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(u, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URL")
	}

	mime, encoded := "application/octet-stream", false
	for i, c := range strings.Split(meta, ";") {
		c = strings.TrimSpace(c)
		switch {
		case i == 0 && c != "":
			mime = c
		case strings.EqualFold(c, "base64"):
			encoded = true
		}
	}

	var data []byte
	if encoded {
		d, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
		data = d
	} else if d, err := url.QueryUnescape(payload); err == nil {
		data = []byte(d)
	} else {
		data = []byte(payload)
	}

	return &Resource{URL: u, Type: determineResourceType(mime, ""), Data: data, MimeType: mime}, nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// resolve makes a relative reference absolute against BaseURL
func (l *Loader) resolve(ref string) (string, error) {
	if isRemote(ref) || filepath.IsAbs(ref) {
		return ref, nil
	}
	if !isRemote(l.BaseURL) {
		if l.BaseURL == "" {
			return ref, nil
		}
		return filepath.Join(filepath.Dir(l.BaseURL), ref), nil
	}

	base, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(rel).String(), nil
}

func (l *Loader) loadRemote(ctx context.Context, u string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	mime := resp.Header.Get("Content-Type")
	return &Resource{URL: u, Type: determineResourceType(mime, u), Data: data, MimeType: mime}, nil
}

func (l *Loader) loadLocal(path string) (*Resource, error) {
	res, err := readFile(path)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	name := filepath.Base(path)
	for _, dir := range l.searchPaths {
		if res, err := readFile(filepath.Join(dir, name)); err == nil {
			return res, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
}

func readFile(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mime := determineMimeType(path)
	return &Resource{URL: path, Type: determineResourceType(mime, path), Data: data, MimeType: mime}, nil
}

func determineMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".xml":
		return "application/xml"
	default:
		return "application/octet-stream"
	}
}

func determineResourceType(mime, path string) ResourceType {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	switch {
	case strings.HasPrefix(mime, "image/"):
		return ResourceTypeImage
	case mime == "application/xml" || mime == "text/xml":
		return ResourceTypeXML
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".tiff", ".tif", ".bmp":
		return ResourceTypeImage
	case ".xml":
		return ResourceTypeXML
	}
	return ResourceTypeOther
}

func looksLikeXML(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '<'
}

// looksLikeBase64 reports whether s could be a raw base64 image payload
// rather than a path
func looksLikeBase64(s string) bool {
	if len(s) < 64 || len(s)%4 != 0 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '+' || r == '/' || r == '=':
		default:
			return false
		}
	}
	return true
}
