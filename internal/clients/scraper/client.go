// Package scraper is the client for the upstream spell reference site. The
// registry (spells, classes, schools) lives as js variables embedded in the
// spell list page; per-spell detail is scraped from individual detail pages.
package scraper

//go:generate mockgen -destination=mock/mock_client.go -package=scrapermock github.com/spellscribe/spells-api/internal/clients/scraper Client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/spellscribe/spells-api/internal/entities"
	"github.com/spellscribe/spells-api/internal/errors"
)

// Client defines the interface for the external data source.
type Client interface {
	// FetchRegistry retrieves and extracts the full registry: spells,
	// classes, and schools, cross-referenced by id at extraction time.
	// Returns errors.Unavailable for network or shape failures,
	// errors.FailedPrecondition when a spell references an id absent from
	// the same payload. No retries; that is the caller's concern.
	FetchRegistry(ctx context.Context) (*RegistryData, error)

	// FetchSpellDetail scrapes one spell's detail page: canonical name,
	// school line, ordered variables, narrative text, and table fragments.
	FetchSpellDetail(ctx context.Context, alias string) (*entities.ExtendedSpellInfo, error)
}

// RegistryData is one coherent registry payload. Every class and school id
// referenced by a spell resolves within the same payload.
type RegistryData struct {
	Spells  []entities.ShortSpellInfo
	Classes []entities.ClassInfo
	Schools []entities.SchoolInfo
}

// Config contains configuration options for the scraper client.
type Config struct {
	// SpellListURL is the page carrying the embedded registry data.
	SpellListURL string
	// ClassListURL and PrestigeClassListURL supply per-class alias, book,
	// and description fields missing from the embedded data.
	ClassListURL         string
	PrestigeClassListURL string
	// SpellInfoURLPrefix prefixes a spell alias to form its detail page URL.
	SpellInfoURLPrefix string
	// HTTPTimeout for page fetches (optional, defaults to 30 seconds).
	HTTPTimeout time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("SpellListURL", cfg.SpellListURL, vb)
	errors.ValidateRequired("ClassListURL", cfg.ClassListURL, vb)
	errors.ValidateRequired("PrestigeClassListURL", cfg.PrestigeClassListURL, vb)
	errors.ValidateRequired("SpellInfoURLPrefix", cfg.SpellInfoURLPrefix, vb)
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

// New creates a scraper client for the configured source site.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{
		cfg: Config{
			SpellListURL:         strings.TrimRight(cfg.SpellListURL, "/"),
			ClassListURL:         strings.TrimRight(cfg.ClassListURL, "/"),
			PrestigeClassListURL: strings.TrimRight(cfg.PrestigeClassListURL, "/"),
			SpellInfoURLPrefix:   strings.TrimRight(cfg.SpellInfoURLPrefix, "/"),
			HTTPTimeout:          cfg.HTTPTimeout,
		},
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
	}, nil
}

func (c *client) FetchRegistry(ctx context.Context) (*RegistryData, error) {
	listDoc, err := c.getDocument(ctx, c.cfg.SpellListURL)
	if err != nil {
		return nil, err
	}

	script, err := findRegistryScript(listDoc)
	if err != nil {
		return nil, err
	}

	basicDoc, err := c.getDocument(ctx, c.cfg.ClassListURL)
	if err != nil {
		return nil, err
	}
	prestigeDoc, err := c.getDocument(ctx, c.cfg.PrestigeClassListURL)
	if err != nil {
		return nil, err
	}

	schools, err := extractSchools(script)
	if err != nil {
		return nil, err
	}

	extras := extractClassExtras(basicDoc)
	for name, extra := range extractClassExtras(prestigeDoc) {
		extras[name] = extra
	}
	classes, err := extractClasses(script, extras)
	if err != nil {
		return nil, err
	}

	spells, err := extractSpells(script, classes, schools)
	if err != nil {
		return nil, err
	}

	return &RegistryData{Spells: spells, Classes: classes, Schools: schools}, nil
}

func (c *client) FetchSpellDetail(ctx context.Context, alias string) (*entities.ExtendedSpellInfo, error) {
	if alias == "" {
		return nil, errors.InvalidArgument("alias cannot be empty")
	}

	doc, err := c.getDocument(ctx, c.cfg.SpellInfoURLPrefix+"/"+alias)
	if err != nil {
		return nil, err
	}

	return extractSpellDetail(doc, alias)
}

func (c *client) getDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("source returned status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to parse %s", url)
	}

	return doc, nil
}
