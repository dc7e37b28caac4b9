package spells

import (
	"context"

	"github.com/spellscribe/spells-api/internal/entities"
)

// Service defines the interface for spell reference operations
type Service interface {
	// EnsureReady probes the registry and, when it holds too little data,
	// performs the blocking bootstrap refresh. Serialized process-wide;
	// callers after the first return immediately.
	EnsureReady(ctx context.Context) error

	// RefreshRegistry re-scrapes the source and upserts the full registry
	// regardless of current state.
	RefreshRegistry(ctx context.Context, input *RefreshRegistryInput) (*RefreshRegistryOutput, error)

	// Search and lookup
	SearchByName(ctx context.Context, input *SearchByNameInput) (*SearchByNameOutput, error)
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
	ListSpellsByClassLevel(ctx context.Context, input *ListSpellsByClassLevelInput) (*ListSpellsByClassLevelOutput, error)

	// Class and registry metadata
	GetClass(ctx context.Context, input *GetClassInput) (*GetClassOutput, error)
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
	ListLevels(ctx context.Context, input *ListLevelsInput) (*ListLevelsOutput, error)
	ListRulebooks(ctx context.Context, input *ListRulebooksInput) (*ListRulebooksOutput, error)
	ListClassTables(ctx context.Context, input *ListClassTablesInput) (*ListClassTablesOutput, error)

	// Chat preferences
	GetChatSettings(ctx context.Context, input *GetChatSettingsInput) (*GetChatSettingsOutput, error)
	ToggleBook(ctx context.Context, input *ToggleBookInput) (*ToggleBookOutput, error)

	// Personal spellbook
	SaveSpell(ctx context.Context, input *SaveSpellInput) (*SaveSpellOutput, error)
	RemoveSavedSpell(ctx context.Context, input *RemoveSavedSpellInput) (*RemoveSavedSpellOutput, error)
	ListSavedSpells(ctx context.Context, input *ListSavedSpellsInput) (*ListSavedSpellsOutput, error)
	GetSavedSpellByIndex(ctx context.Context, input *GetSavedSpellByIndexInput) (*GetSavedSpellByIndexOutput, error)
}

// RefreshRegistryInput defines the input for a forced registry refresh
type RefreshRegistryInput struct{}

// RefreshRegistryOutput defines the output for a forced registry refresh
type RefreshRegistryOutput struct {
	SpellCount  int
	ClassCount  int
	SchoolCount int
}

// SearchByNameInput defines the input for a name search.
// Query is matched as a case-insensitive substring of the spell name.
// A nil ChatID skips the book filter and searches every known book.
type SearchByNameInput struct {
	Query  string
	ChatID *int64
	// Limit caps the result size (optional, defaults to 10).
	Limit int
}

// SearchByNameOutput defines the output for a name search
type SearchByNameOutput struct {
	Spells []entities.ShortSpellInfo
}

// GetSpellInput defines the input for a full spell lookup
type GetSpellInput struct {
	Alias string
}

// GetSpellOutput defines the output for a full spell lookup.
// Extended is always populated: a cache miss triggers the lazy fill.
type GetSpellOutput struct {
	Spell    *entities.ShortSpellInfo
	Extended *entities.ExtendedSpellInfo
}

// ListSpellsByClassLevelInput defines the input for a paginated class/level
// query. Page is zero-based. A nil ChatID skips the book filter.
type ListSpellsByClassLevelInput struct {
	ClassID  int
	Level    int
	ChatID   *int64
	Page     int
	PageSize int
}

// ListSpellsByClassLevelOutput defines the output for a paginated class/level
// query. An out-of-range page yields an empty Spells slice, not an error.
type ListSpellsByClassLevelOutput struct {
	Spells     []entities.ShortSpellInfo
	TotalPages int
}

// GetClassInput defines the input for a class lookup
type GetClassInput struct {
	ClassID int
}

// GetClassOutput defines the output for a class lookup
type GetClassOutput struct {
	Class *entities.ClassInfo
}

// ListClassesInput defines the input for listing classes.
// When ChatID is set the list is restricted to the chat's included books.
type ListClassesInput struct {
	ChatID *int64
}

// ListClassesOutput defines the output for listing classes
type ListClassesOutput struct {
	Classes []entities.ClassInfo
}

// ListLevelsInput defines the input for listing a class's spell levels
type ListLevelsInput struct {
	ClassID int
}

// ListLevelsOutput defines the output for listing a class's spell levels
type ListLevelsOutput struct {
	Levels []int
}

// ListRulebooksInput defines the input for listing known rulebooks
type ListRulebooksInput struct{}

// ListRulebooksOutput defines the output for listing known rulebooks
type ListRulebooksOutput struct {
	Books []string
}

// ListClassTablesInput defines the input for listing a class's table images
type ListClassTablesInput struct {
	ClassID int
}

// ListClassTablesOutput defines the output for listing a class's table images
type ListClassTablesOutput struct {
	Paths []string
}

// GetChatSettingsInput defines the input for fetching chat settings
type GetChatSettingsInput struct {
	ChatID int64
}

// GetChatSettingsOutput defines the output for fetching chat settings
type GetChatSettingsOutput struct {
	Settings *entities.ChatSettings
}

// ToggleBookInput defines the input for toggling one book in a chat's filter
type ToggleBookInput struct {
	ChatID int64
	Book   string
}

// ToggleBookOutput defines the output for toggling one book
type ToggleBookOutput struct {
	Settings *entities.ChatSettings
}

// SaveSpellInput defines the input for saving a spell to a chat's spellbook
type SaveSpellInput struct {
	ChatID int64
	Alias  string
}

// SaveSpellOutput defines the output for saving a spell
type SaveSpellOutput struct {
	Saved *entities.SavedSpell
}

// RemoveSavedSpellInput defines the input for removing a saved spell
type RemoveSavedSpellInput struct {
	ChatID int64
	Alias  string
}

// RemoveSavedSpellOutput defines the output for removing a saved spell
type RemoveSavedSpellOutput struct{}

// ListSavedSpellsInput defines the input for listing a chat's saved spells
type ListSavedSpellsInput struct {
	ChatID int64
}

// ListSavedSpellsOutput defines the output for listing a chat's saved spells
type ListSavedSpellsOutput struct {
	Saved []entities.SavedSpell
}

// GetSavedSpellByIndexInput defines the input for the saved-spell pager
type GetSavedSpellByIndexInput struct {
	ChatID int64
	Index  int
}

// GetSavedSpellByIndexOutput defines the output for the saved-spell pager
type GetSavedSpellByIndexOutput struct {
	Saved *entities.SavedSpell
	Total int
}
