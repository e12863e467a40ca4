package spacedeck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrAssetTooLarge = errors.New("asset too large")
)

// MaxFetchSize bounds the content a Fetcher reads for a single asset.
var MaxFetchSize int64 = 1 << 20

func readLimited(r io.Reader, assetPath string) (string, error) {
	buf, err := ioutil.ReadAll(io.LimitReader(r, MaxFetchSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(buf)) > MaxFetchSize {
		return "", fmt.Errorf("%s: %w", assetPath, ErrAssetTooLarge)
	}
	return string(buf), nil
}

// Prober checks whether a public asset path (e.g. /prints/github.png) exists.
type Prober interface {
	Exists(ctx context.Context, assetPath string) bool
}

// Fetcher retrieves the content of a public asset path.
type Fetcher interface {
	Fetch(ctx context.Context, assetPath string) (string, error)
}

// Source is both, the usual shape of an asset backend.
type Source interface {
	Prober
	Fetcher
}

// DirSource serves public asset paths from a directory on disk.
type DirSource struct {
	Root string
}

func NewDirSource(root string) *DirSource {
	return &DirSource{Root: root}
}

func (d *DirSource) file(assetPath string) string {
	clean := path.Clean("/" + assetPath)
	return filepath.Join(d.Root, filepath.FromSlash(clean))
}

func (d *DirSource) Exists(ctx context.Context, assetPath string) bool {
	info, err := os.Stat(d.file(assetPath))
	return err == nil && info.Mode().IsRegular()
}

func (d *DirSource) Fetch(ctx context.Context, assetPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, err := os.Open(d.file(assetPath))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%s: %w", assetPath, ErrAssetNotFound)
	}
	if err != nil {
		return "", err
	}
	defer f.Close()
	return readLimited(f, assetPath)
}

// HTTPSource probes and fetches assets from a running web server, for example
// a frontend dev server that owns the public directory.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *HTTPSource) url(assetPath string) string {
	return h.BaseURL + path.Clean("/"+assetPath)
}

// Exists issues a HEAD request. Redirects count as missing.
func (h *HTTPSource) Exists(ctx context.Context, assetPath string) bool {
	req, err := http.NewRequest(http.MethodHead, h.url(assetPath), nil)
	if err != nil {
		return false
	}
	client := *h.Client
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (h *HTTPSource) Fetch(ctx context.Context, assetPath string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, h.url(assetPath), nil)
	if err != nil {
		return "", err
	}
	resp, err := h.Client.Do(req.WithContext(ctx))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%s: %w", assetPath, ErrAssetNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%s: unexpected status %s", assetPath, resp.Status)
	}
	return readLimited(resp.Body, assetPath)
}
