// Package chatsettings defines the interface for per-chat preference
// persistence: the rulebook filter applied to every filtered query.
package chatsettings

import (
	"context"

	"github.com/spellscribe/spells-api/internal/entities"
)

// Repository defines the interface for chat settings persistence.
//
// Settings are created lazily: the first access for a chat persists the
// caller-supplied default filter. Toggles are read-modify-write with
// last-write-wins, which is acceptable for a boolean filter.
type Repository interface {
	// GetOrCreate returns a chat's settings, persisting DefaultFilter on
	// first access for the chat.
	GetOrCreate(ctx context.Context, input GetOrCreateInput) (*GetOrCreateOutput, error)

	// ToggleBook flips one book's inclusion in the chat's filter and
	// persists the full mapping back.
	// Returns errors.InvalidArgument if the book is not in the filter.
	ToggleBook(ctx context.Context, input ToggleBookInput) (*ToggleBookOutput, error)
}

// GetOrCreateInput defines the input for fetching chat settings
type GetOrCreateInput struct {
	ChatID        int64
	DefaultFilter map[string]bool
}

// GetOrCreateOutput defines the output for fetching chat settings
type GetOrCreateOutput struct {
	Settings *entities.ChatSettings
}

// ToggleBookInput defines the input for toggling one book
type ToggleBookInput struct {
	ChatID        int64
	Book          string
	DefaultFilter map[string]bool
}

// ToggleBookOutput defines the output for toggling one book
type ToggleBookOutput struct {
	Settings *entities.ChatSettings
}
