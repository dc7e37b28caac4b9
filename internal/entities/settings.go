package entities

// ChatSettings holds a chat's rulebook filter: book alias -> included.
// Created lazily with a default filter on first access, never deleted.
type ChatSettings struct {
	ChatID     int64
	BookFilter map[string]bool
}

// IncludedBooks returns the aliases of the enabled rulebooks.
func (s *ChatSettings) IncludedBooks() []string {
	books := make([]string, 0, len(s.BookFilter))
	for book, included := range s.BookFilter {
		if included {
			books = append(books, book)
		}
	}
	return books
}

// SavedSpell is one entry in a chat's personal spellbook.
type SavedSpell struct {
	ChatID     int64
	SpellAlias string
}
