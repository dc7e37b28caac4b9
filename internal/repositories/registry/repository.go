// Package registry defines the interface for the spell/class/school registry
// store, the local cache of everything scraped from the reference site.
package registry

import (
	"context"

	"github.com/spellscribe/spells-api/internal/entities"
)

// Repository defines the interface for the entity registry store.
//
// Classes and schools are keyed by their source-assigned integer ids, spells
// by their URL-safe alias. Short spell info is bulk-upserted during a registry
// refresh; extended info is created lazily, once per spell, and never
// refreshed.
type Repository interface {
	// UpsertRegistry bulk-writes classes, schools, and spells in one
	// transaction, classes and schools first so spell references resolve.
	// Returns errors.FailedPrecondition if a spell references a class or
	// school id absent from the same payload; nothing is committed then.
	UpsertRegistry(ctx context.Context, input UpsertRegistryInput) (*UpsertRegistryOutput, error)

	// HasSufficientData reports whether the store holds more than
	// MinSpellCount spells. Used as the readiness probe before serving.
	HasSufficientData(ctx context.Context, input HasSufficientDataInput) (*HasSufficientDataOutput, error)

	// FindSpellsByName returns spells whose name contains Query
	// (case-insensitive), restricted to IncludedBooks, ordered by name.
	FindSpellsByName(ctx context.Context, input FindSpellsByNameInput) (*FindSpellsByNameOutput, error)

	// FindSpellsByClassLevel returns spells castable by ClassID at exactly
	// Level, restricted to IncludedBooks, ordered by name.
	FindSpellsByClassLevel(ctx context.Context, input FindSpellsByClassLevelInput) (*FindSpellsByClassLevelOutput, error)

	// GetClass returns a class by id.
	// Returns errors.NotFound if absent.
	GetClass(ctx context.Context, input GetClassInput) (*GetClassOutput, error)

	// ListClasses returns classes, restricted to IncludedBooks when non-empty.
	ListClasses(ctx context.Context, input ListClassesInput) (*ListClassesOutput, error)

	// ListLevels returns the distinct spell levels available to a class,
	// derived by scanning spell class associations.
	ListLevels(ctx context.Context, input ListLevelsInput) (*ListLevelsOutput, error)

	// ListRulebooks returns the distinct book aliases over all stored spells.
	ListRulebooks(ctx context.Context, input ListRulebooksInput) (*ListRulebooksOutput, error)

	// GetFullSpellInfo returns a spell's short info plus its extended info
	// when it has been populated. Extended is nil on a cache miss.
	// Returns errors.NotFound if the alias is unknown.
	GetFullSpellInfo(ctx context.Context, input GetFullSpellInfoInput) (*GetFullSpellInfoOutput, error)

	// CreateExtendedSpellInfo persists a spell's extended info and its
	// ordered tables. Returns errors.AlreadyExists if extended info was
	// already created for the alias, errors.NotFound if the alias is unknown.
	CreateExtendedSpellInfo(ctx context.Context, input CreateExtendedSpellInfoInput) (*CreateExtendedSpellInfoOutput, error)
}

// UpsertRegistryInput defines the input for a registry refresh write
type UpsertRegistryInput struct {
	Spells  []entities.ShortSpellInfo
	Classes []entities.ClassInfo
	Schools []entities.SchoolInfo
}

// UpsertRegistryOutput defines the output for a registry refresh write
type UpsertRegistryOutput struct{}

// HasSufficientDataInput defines the input for the readiness probe
type HasSufficientDataInput struct {
	MinSpellCount int
}

// HasSufficientDataOutput defines the output for the readiness probe
type HasSufficientDataOutput struct {
	Sufficient bool
}

// FindSpellsByNameInput defines the input for a name search.
// Query is expected to be lowercased and trimmed by the caller.
type FindSpellsByNameInput struct {
	Query         string
	IncludedBooks []string
}

// FindSpellsByNameOutput defines the output for a name search
type FindSpellsByNameOutput struct {
	Spells []entities.ShortSpellInfo
}

// FindSpellsByClassLevelInput defines the input for a class/level search
type FindSpellsByClassLevelInput struct {
	ClassID       int
	Level         int
	IncludedBooks []string
}

// FindSpellsByClassLevelOutput defines the output for a class/level search
type FindSpellsByClassLevelOutput struct {
	Spells []entities.ShortSpellInfo
}

// GetClassInput defines the input for a class lookup
type GetClassInput struct {
	ClassID int
}

// GetClassOutput defines the output for a class lookup
type GetClassOutput struct {
	Class *entities.ClassInfo
}

// ListClassesInput defines the input for listing classes
type ListClassesInput struct {
	IncludedBooks []string
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

// ListRulebooksInput defines the input for listing rulebook aliases
type ListRulebooksInput struct{}

// ListRulebooksOutput defines the output for listing rulebook aliases
type ListRulebooksOutput struct {
	Books []string
}

// GetFullSpellInfoInput defines the input for a full spell lookup
type GetFullSpellInfoInput struct {
	Alias string
}

// GetFullSpellInfoOutput defines the output for a full spell lookup
type GetFullSpellInfoOutput struct {
	Spell    *entities.ShortSpellInfo
	Extended *entities.ExtendedSpellInfo
}

// CreateExtendedSpellInfoInput defines the input for persisting extended info.
// Tables carries the render-resolved fragments; their slice order is the
// extraction order and is preserved.
type CreateExtendedSpellInfoInput struct {
	Alias    string
	Extended entities.ExtendedSpellInfo
	Tables   []entities.SpellTable
}

// CreateExtendedSpellInfoOutput defines the output for persisting extended info
type CreateExtendedSpellInfoOutput struct {
	Extended *entities.ExtendedSpellInfo
}
