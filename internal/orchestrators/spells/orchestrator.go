// Package spells implements the spell reference orchestrator: the single
// entry point the chat transport talks to. It glues the registry store, the
// chat preference store, the scraper, and the table image cache together.
package spells

//go:generate mockgen -destination=mock/mock_service.go -package=spellsmock github.com/spellscribe/spells-api/internal/orchestrators/spells Service

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spellscribe/spells-api/internal/clients/scraper"
	"github.com/spellscribe/spells-api/internal/entities"
	"github.com/spellscribe/spells-api/internal/errors"
	"github.com/spellscribe/spells-api/internal/images"
	"github.com/spellscribe/spells-api/internal/repositories/chatsettings"
	"github.com/spellscribe/spells-api/internal/repositories/registry"
	"github.com/spellscribe/spells-api/internal/repositories/spellbook"
)

const (
	// DefaultMinSpellCount is the registry size below which the bootstrap
	// refresh runs.
	DefaultMinSpellCount = 1000

	// DefaultSearchLimit caps name search results when the caller does not.
	DefaultSearchLimit = 10

	spellTablesDir = "tables"
	classTablesDir = "classinfo"
)

// defaultEnabledBooks are switched on in a chat's initial filter; every other
// known rulebook starts disabled.
var defaultEnabledBooks = []string{"coreRulebook", "advancedPlayerGuide"}

// Config holds the dependencies for the spells orchestrator
type Config struct {
	Registry     registry.Repository
	ChatSettings chatsettings.Repository
	Spellbook    spellbook.Repository
	Scraper      scraper.Client
	Tables       *images.Cache

	// DataRootDir is the root of the image cache on disk.
	DataRootDir string
	// MinSpellCount overrides the readiness threshold (optional).
	MinSpellCount int
	Logger        *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.ChatSettings == nil {
		vb.RequiredField("ChatSettings")
	}
	if c.Spellbook == nil {
		vb.RequiredField("Spellbook")
	}
	if c.Scraper == nil {
		vb.RequiredField("Scraper")
	}
	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	errors.ValidateRequired("DataRootDir", c.DataRootDir, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if c.MinSpellCount == 0 {
		c.MinSpellCount = DefaultMinSpellCount
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}

	return nil
}

type orchestrator struct {
	registry     registry.Repository
	chatSettings chatsettings.Repository
	spellbook    spellbook.Repository
	scraper      scraper.Client
	tables       *images.Cache

	dataRootDir   string
	minSpellCount int
	log           *slog.Logger

	// mu serializes the bootstrap refresh; ready short-circuits every call
	// after the first successful probe.
	mu    sync.Mutex
	ready bool
}

// NewOrchestrator creates a new spells orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		registry:      cfg.Registry,
		chatSettings:  cfg.ChatSettings,
		spellbook:     cfg.Spellbook,
		scraper:       cfg.Scraper,
		tables:        cfg.Tables,
		dataRootDir:   cfg.DataRootDir,
		minSpellCount: cfg.MinSpellCount,
		log:           cfg.Logger,
	}, nil
}

func (o *orchestrator) EnsureReady(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ready {
		return nil
	}

	probe, err := o.registry.HasSufficientData(ctx, registry.HasSufficientDataInput{
		MinSpellCount: o.minSpellCount,
	})
	if err != nil {
		return errors.Wrap(err, "readiness probe failed")
	}

	if !probe.Sufficient {
		o.log.InfoContext(ctx, "registry below readiness threshold, refreshing",
			"min_spell_count", o.minSpellCount)
		if _, err := o.refresh(ctx); err != nil {
			return err
		}
	}

	o.ready = true
	return nil
}

func (o *orchestrator) RefreshRegistry(ctx context.Context, _ *RefreshRegistryInput) (*RefreshRegistryOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.refresh(ctx)
	if err != nil {
		return nil, err
	}

	o.ready = true
	return out, nil
}

// refresh runs one scrape→upsert cycle. Callers hold o.mu.
func (o *orchestrator) refresh(ctx context.Context) (*RefreshRegistryOutput, error) {
	data, err := o.scraper.FetchRegistry(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "registry refresh failed")
	}

	_, err = o.registry.UpsertRegistry(ctx, registry.UpsertRegistryInput{
		Spells:  data.Spells,
		Classes: data.Classes,
		Schools: data.Schools,
	})
	if err != nil {
		return nil, errors.Wrap(err, "registry upsert failed")
	}

	o.log.InfoContext(ctx, "registry refreshed",
		"spells", len(data.Spells),
		"classes", len(data.Classes),
		"schools", len(data.Schools),
	)

	return &RefreshRegistryOutput{
		SpellCount:  len(data.Spells),
		ClassCount:  len(data.Classes),
		SchoolCount: len(data.Schools),
	}, nil
}

func (o *orchestrator) SearchByName(ctx context.Context, input *SearchByNameInput) (*SearchByNameOutput, error) {
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	books, err := o.includedBooks(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	found, err := o.registry.FindSpellsByName(ctx, registry.FindSpellsByNameInput{
		Query:         strings.ToLower(strings.TrimSpace(input.Query)),
		IncludedBooks: books,
	})
	if err != nil {
		return nil, err
	}

	spells := found.Spells
	if len(spells) > limit {
		spells = spells[:limit]
	}

	return &SearchByNameOutput{Spells: spells}, nil
}

func (o *orchestrator) GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error) {
	if input.Alias == "" {
		return nil, errors.InvalidArgument("alias cannot be empty")
	}
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	full, err := o.registry.GetFullSpellInfo(ctx, registry.GetFullSpellInfoInput{Alias: input.Alias})
	if err != nil {
		return nil, err
	}
	if full.Extended != nil {
		return &GetSpellOutput{Spell: full.Spell, Extended: full.Extended}, nil
	}

	extended, err := o.fillExtendedInfo(ctx, input.Alias)
	if err != nil {
		return nil, err
	}

	return &GetSpellOutput{Spell: full.Spell, Extended: extended}, nil
}

// fillExtendedInfo runs the lazy-fill sequence: scrape the detail page,
// resolve table images, persist. Two concurrent first requests may both
// scrape; the loser of the create re-reads the winner's record.
func (o *orchestrator) fillExtendedInfo(ctx context.Context, alias string) (*entities.ExtendedSpellInfo, error) {
	detail, err := o.scraper.FetchSpellDetail(ctx, alias)
	if err != nil {
		return nil, err
	}

	resolved := o.tables.ResolveAll(ctx, filepath.Join(o.dataRootDir, spellTablesDir), alias, detail.Tables)

	created, err := o.registry.CreateExtendedSpellInfo(ctx, registry.CreateExtendedSpellInfoInput{
		Alias:    alias,
		Extended: *detail,
		Tables:   resolved,
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			full, readErr := o.registry.GetFullSpellInfo(ctx, registry.GetFullSpellInfoInput{Alias: alias})
			if readErr != nil {
				return nil, readErr
			}
			return full.Extended, nil
		}
		return nil, err
	}

	return created.Extended, nil
}

func (o *orchestrator) ListSpellsByClassLevel(ctx context.Context, input *ListSpellsByClassLevelInput) (*ListSpellsByClassLevelOutput, error) {
	if input.PageSize <= 0 {
		return nil, errors.InvalidArgument("page size must be positive")
	}
	if input.Page < 0 {
		return nil, errors.InvalidArgument("page cannot be negative")
	}
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	books, err := o.includedBooks(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	found, err := o.registry.FindSpellsByClassLevel(ctx, registry.FindSpellsByClassLevelInput{
		ClassID:       input.ClassID,
		Level:         input.Level,
		IncludedBooks: books,
	})
	if err != nil {
		return nil, err
	}

	total := len(found.Spells)
	totalPages := (total + input.PageSize - 1) / input.PageSize

	start := input.Page * input.PageSize
	if start >= total {
		return &ListSpellsByClassLevelOutput{Spells: []entities.ShortSpellInfo{}, TotalPages: totalPages}, nil
	}
	end := start + input.PageSize
	if end > total {
		end = total
	}

	return &ListSpellsByClassLevelOutput{
		Spells:     found.Spells[start:end],
		TotalPages: totalPages,
	}, nil
}

func (o *orchestrator) GetClass(ctx context.Context, input *GetClassInput) (*GetClassOutput, error) {
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	out, err := o.registry.GetClass(ctx, registry.GetClassInput{ClassID: input.ClassID})
	if err != nil {
		return nil, err
	}

	return &GetClassOutput{Class: out.Class}, nil
}

func (o *orchestrator) ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error) {
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	books, err := o.includedBooks(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	out, err := o.registry.ListClasses(ctx, registry.ListClassesInput{IncludedBooks: books})
	if err != nil {
		return nil, err
	}

	return &ListClassesOutput{Classes: out.Classes}, nil
}

func (o *orchestrator) ListLevels(ctx context.Context, input *ListLevelsInput) (*ListLevelsOutput, error) {
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	out, err := o.registry.ListLevels(ctx, registry.ListLevelsInput{ClassID: input.ClassID})
	if err != nil {
		return nil, err
	}

	return &ListLevelsOutput{Levels: out.Levels}, nil
}

func (o *orchestrator) ListRulebooks(ctx context.Context, _ *ListRulebooksInput) (*ListRulebooksOutput, error) {
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	out, err := o.registry.ListRulebooks(ctx, registry.ListRulebooksInput{})
	if err != nil {
		return nil, err
	}

	return &ListRulebooksOutput{Books: out.Books}, nil
}

// ListClassTables lists a class's cached table images straight off the
// filesystem. The registry has no record of these files.
func (o *orchestrator) ListClassTables(ctx context.Context, input *ListClassTablesInput) (*ListClassTablesOutput, error) {
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	class, err := o.registry.GetClass(ctx, registry.GetClassInput{ClassID: input.ClassID})
	if err != nil {
		return nil, err
	}

	paths, err := o.tables.ListImages(filepath.Join(o.dataRootDir, classTablesDir, class.Class.Alias))
	if err != nil {
		return nil, err
	}

	return &ListClassTablesOutput{Paths: paths}, nil
}

func (o *orchestrator) GetChatSettings(ctx context.Context, input *GetChatSettingsInput) (*GetChatSettingsOutput, error) {
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	defaultFilter, err := o.defaultBookFilter(ctx)
	if err != nil {
		return nil, err
	}

	out, err := o.chatSettings.GetOrCreate(ctx, chatsettings.GetOrCreateInput{
		ChatID:        input.ChatID,
		DefaultFilter: defaultFilter,
	})
	if err != nil {
		return nil, err
	}

	return &GetChatSettingsOutput{Settings: out.Settings}, nil
}

func (o *orchestrator) ToggleBook(ctx context.Context, input *ToggleBookInput) (*ToggleBookOutput, error) {
	if input.Book == "" {
		return nil, errors.InvalidArgument("book cannot be empty")
	}
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	defaultFilter, err := o.defaultBookFilter(ctx)
	if err != nil {
		return nil, err
	}

	out, err := o.chatSettings.ToggleBook(ctx, chatsettings.ToggleBookInput{
		ChatID:        input.ChatID,
		Book:          input.Book,
		DefaultFilter: defaultFilter,
	})
	if err != nil {
		return nil, err
	}

	return &ToggleBookOutput{Settings: out.Settings}, nil
}

func (o *orchestrator) SaveSpell(ctx context.Context, input *SaveSpellInput) (*SaveSpellOutput, error) {
	if err := o.EnsureReady(ctx); err != nil {
		return nil, err
	}

	// The alias must exist in the registry before it can be bookmarked.
	if _, err := o.registry.GetFullSpellInfo(ctx, registry.GetFullSpellInfoInput{Alias: input.Alias}); err != nil {
		return nil, err
	}

	out, err := o.spellbook.Save(ctx, spellbook.SaveInput{ChatID: input.ChatID, SpellAlias: input.Alias})
	if err != nil {
		return nil, err
	}

	return &SaveSpellOutput{Saved: out.Saved}, nil
}

func (o *orchestrator) RemoveSavedSpell(ctx context.Context, input *RemoveSavedSpellInput) (*RemoveSavedSpellOutput, error) {
	if _, err := o.spellbook.Delete(ctx, spellbook.DeleteInput{ChatID: input.ChatID, SpellAlias: input.Alias}); err != nil {
		return nil, err
	}

	return &RemoveSavedSpellOutput{}, nil
}

func (o *orchestrator) ListSavedSpells(ctx context.Context, input *ListSavedSpellsInput) (*ListSavedSpellsOutput, error) {
	out, err := o.spellbook.List(ctx, spellbook.ListInput{ChatID: input.ChatID})
	if err != nil {
		return nil, err
	}

	return &ListSavedSpellsOutput{Saved: out.Saved}, nil
}

func (o *orchestrator) GetSavedSpellByIndex(ctx context.Context, input *GetSavedSpellByIndexInput) (*GetSavedSpellByIndexOutput, error) {
	out, err := o.spellbook.GetByIndex(ctx, spellbook.GetByIndexInput{ChatID: input.ChatID, Index: input.Index})
	if err != nil {
		return nil, err
	}

	return &GetSavedSpellByIndexOutput{Saved: out.Saved, Total: out.Total}, nil
}

// includedBooks resolves a chat's filter to the enabled book aliases,
// creating the settings with the default filter on first access. A nil
// chat id means no filter: every known book is included.
func (o *orchestrator) includedBooks(ctx context.Context, chatID *int64) ([]string, error) {
	if chatID == nil {
		return nil, nil
	}

	defaultFilter, err := o.defaultBookFilter(ctx)
	if err != nil {
		return nil, err
	}

	out, err := o.chatSettings.GetOrCreate(ctx, chatsettings.GetOrCreateInput{
		ChatID:        *chatID,
		DefaultFilter: defaultFilter,
	})
	if err != nil {
		return nil, err
	}

	return out.Settings.IncludedBooks(), nil
}

// defaultBookFilter covers every known rulebook, all disabled except the
// hardcoded starter books. The starter books are enabled whether or not the
// registry currently knows them, so a new chat always has something visible.
func (o *orchestrator) defaultBookFilter(ctx context.Context) (map[string]bool, error) {
	books, err := o.registry.ListRulebooks(ctx, registry.ListRulebooksInput{})
	if err != nil {
		return nil, err
	}

	filter := make(map[string]bool, len(books.Books))
	for _, book := range books.Books {
		filter[book] = false
	}
	for _, book := range defaultEnabledBooks {
		filter[book] = true
	}

	return filter, nil
}
