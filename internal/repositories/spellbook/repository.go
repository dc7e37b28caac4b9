// Package spellbook defines the interface for per-chat saved spell lists.
package spellbook

import (
	"context"

	"github.com/spellscribe/spells-api/internal/entities"
)

// Repository defines the interface for saved spell persistence. A chat can
// save each spell once; the list keeps insertion order, and entries are
// addressed by their position when paging through a spellbook.
type Repository interface {
	// Save adds a spell to a chat's spellbook.
	// Returns errors.AlreadyExists if the spell is already saved.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a spell from a chat's spellbook.
	// Returns errors.NotFound if the spell is not saved.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns a chat's saved spells in insertion order.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// GetByIndex returns the saved spell at a position in the chat's list,
	// plus the list size. Returns errors.NotFound for an out-of-range index.
	GetByIndex(ctx context.Context, input GetByIndexInput) (*GetByIndexOutput, error)
}

// SaveInput defines the input for saving a spell
type SaveInput struct {
	ChatID     int64
	SpellAlias string
}

// SaveOutput defines the output for saving a spell
type SaveOutput struct {
	Saved *entities.SavedSpell
}

// DeleteInput defines the input for removing a saved spell
type DeleteInput struct {
	ChatID     int64
	SpellAlias string
}

// DeleteOutput defines the output for removing a saved spell
type DeleteOutput struct{}

// ListInput defines the input for listing saved spells
type ListInput struct {
	ChatID int64
}

// ListOutput defines the output for listing saved spells
type ListOutput struct {
	Saved []entities.SavedSpell
}

// GetByIndexInput defines the input for a positional lookup
type GetByIndexInput struct {
	ChatID int64
	Index  int
}

// GetByIndexOutput defines the output for a positional lookup
type GetByIndexOutput struct {
	Saved *entities.SavedSpell
	Total int
}
