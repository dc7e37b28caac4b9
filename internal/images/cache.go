// Package images caches rendered table images on disk. Images are keyed by
// spell alias and table position, so a fragment is rendered at most once and
// later lookups are plain file reads.
package images

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spellscribe/spells-api/internal/clients/render"
	"github.com/spellscribe/spells-api/internal/entities"
	"github.com/spellscribe/spells-api/internal/errors"
)

// Config contains configuration options for the image cache.
type Config struct {
	Renderer render.Client
	Logger   *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.Renderer == nil {
		return errors.InvalidArgument("renderer is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return nil
}

// Cache renders HTML table fragments to image files with find-or-create
// semantics.
type Cache struct {
	renderer render.Client
	log      *slog.Logger
}

// New creates an image cache backed by the given renderer.
func New(cfg *Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Cache{renderer: cfg.Renderer, log: cfg.Logger}, nil
}

// TablePath is the canonical image location for a spell's table at the given
// position.
func TablePath(dir, alias string, position int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.png", alias, position))
}

// FindOrRender returns the image file for the fragment, rendering and
// downloading it only when the file does not exist yet. The returned URL is
// the hosted image location of a fresh render; it is empty on a cache hit.
func (c *Cache) FindOrRender(ctx context.Context, html, path string) (string, string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, "", nil
	} else if !os.IsNotExist(err) {
		return "", "", errors.Wrapf(err, "failed to stat %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", "", errors.Wrapf(err, "failed to create %s", filepath.Dir(path))
	}

	url, err := c.renderer.CreateImage(ctx, html)
	if err != nil {
		return "", "", err
	}

	if err := c.renderer.DownloadImage(ctx, url, path); err != nil {
		return "", "", err
	}

	return path, url, nil
}

// ResolveAll resolves every table fragment of a spell to an image file,
// returning the tables that have one. Render failures are logged and the
// affected table is dropped from the result, so one broken fragment does not
// hide the rest of the spell.
func (c *Cache) ResolveAll(ctx context.Context, dir, alias string, tables []entities.SpellTable) []entities.SpellTable {
	resolved := make([]entities.SpellTable, 0, len(tables))
	for i, table := range tables {
		path, url, err := c.FindOrRender(ctx, table.HTML, TablePath(dir, alias, i))
		if err != nil {
			c.log.WarnContext(ctx, "failed to resolve table image",
				"alias", alias,
				"position", i,
				"error", err,
			)
			continue
		}

		table.Path = path
		table.URL = url
		resolved = append(resolved, table)
	}

	return resolved
}

// ListImages returns the cached image files under dir in lexical order.
func (c *Cache) ListImages(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list images under %s", dir)
	}

	sort.Strings(paths)
	return paths, nil
}
