// Package render is the client for the external HTML-to-image service. It
// turns an HTML fragment into a hosted image and downloads the result to a
// local file.
package render

//go:generate mockgen -destination=mock/mock_client.go -package=rendermock github.com/spellscribe/spells-api/internal/clients/render Client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spellscribe/spells-api/internal/errors"
)

// Client defines the interface for the image rendering service.
type Client interface {
	// CreateImage submits an HTML fragment for rendering and returns the URL
	// of the hosted image. Returns errors.RenderFailed when the service
	// rejects the fragment.
	CreateImage(ctx context.Context, html string) (string, error)

	// DownloadImage fetches a rendered image and writes it to path. A failed
	// download leaves no partial file behind.
	DownloadImage(ctx context.Context, imageURL, path string) error
}

// Config contains configuration options for the render client.
type Config struct {
	// URL is the service's image creation endpoint.
	URL string
	// UserID and APIKey authenticate requests via basic auth.
	UserID string
	APIKey string
	// CSS is applied to every submitted fragment (optional).
	CSS string
	// HTTPTimeout for render and download requests (optional, defaults to 30 seconds).
	HTTPTimeout time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("URL", cfg.URL, vb)
	errors.ValidateRequired("UserID", cfg.UserID, vb)
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return nil
}

type client struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a render client for the configured service.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{
		cfg:        *cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}, nil
}

type createImageResponse struct {
	URL string `json:"url"`
}

func (c *client) CreateImage(ctx context.Context, html string) (string, error) {
	if html == "" {
		return "", errors.InvalidArgument("html cannot be empty")
	}

	form := url.Values{}
	form.Set("html", html)
	form.Set("css", c.cfg.CSS)
	form.Set("device_scale", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.UserID, c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeRenderFailed, "render request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.RenderFailedf("render service returned status %d", resp.StatusCode)
	}

	var out createImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeRenderFailed, "failed to decode render response")
	}
	if out.URL == "" {
		return "", errors.RenderFailed("render response has no image url")
	}

	return out.URL, nil
}

func (c *client) DownloadImage(ctx context.Context, imageURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeRenderFailed, "failed to download %s", imageURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.RenderFailedf("image download returned status %d for %s", resp.StatusCode, imageURL)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return errors.WrapWithCodef(err, errors.CodeRenderFailed, "failed to write %s", path)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return errors.Wrapf(err, "failed to close %s", path)
	}

	return nil
}
