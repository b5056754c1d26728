// Package fetch retrieves configuration profiles from a profile server or
// the local disk.
package fetch

import (
	"context"
	"strings"
	"time"

	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/logging"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
)

// ProfileContentType is the media type Apple devices expect for
// configuration profiles
const ProfileContentType = "application/x-apple-aspen-config"

// Options configures a Client
type Options struct {
	URL       string
	Timeout   time.Duration
	UserAgent string
	// FS serves local paths; nil uses the OS filesystem
	FS afero.Fs
}

// Client downloads profiles over HTTP
type Client struct {
	url  string
	http *resty.Client
	fs   afero.Fs
}

// NewClient creates a Client
func NewClient(opts Options) *Client {
	c := resty.New().
		SetHeader("Accept", ProfileContentType+", application/octet-stream;q=0.5, */*;q=0.1")
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Client{url: opts.URL, http: c, fs: fs}
}

// Fetch downloads the profile at the configured URL
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	return c.FetchURL(ctx, c.url)
}

// FetchURL downloads the profile at url. Any non-2xx status is an error.
func (c *Client) FetchURL(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no profile URL configured")
	}

	logger := logging.GetLogger("fetch")
	start := time.Now()

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetch, "failed to fetch %s", url).WithDetail("url", url)
	}

	logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode()).
		Int("bytes", len(resp.Body())).
		Str("content_type", resp.Header().Get("Content-Type")).
		Dur("duration", time.Since(start)).
		Msg("Fetched profile")

	if !resp.IsSuccess() {
		return nil, errors.Newf(errors.ErrFetch, "%s returned %s", url, resp.Status()).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode())
	}
	return resp.Body(), nil
}

// IsURL reports whether source names an http(s) resource
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Load reads a profile from source: http(s) URLs go through c, anything
// else is a local path. An empty source uses the client's URL.
func (c *Client) Load(ctx context.Context, source string) ([]byte, error) {
	switch {
	case source == "":
		return c.Fetch(ctx)
	case IsURL(source):
		return c.FetchURL(ctx, source)
	}

	data, err := afero.ReadFile(c.fs, source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProfileUnreadable, "failed to read %s", source).
			WithDetail("path", source)
	}
	return data, nil
}
