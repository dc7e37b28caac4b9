package entities

// ClassInfo represents a character class or prestige class.
// IDs are assigned by the upstream source and stable across refreshes.
type ClassInfo struct {
	ID               int
	Alias            string
	Name             string
	BookAbbreviation string
	BookAlias        string
	ShortDescription string
	IsOwnSpellList   *bool
	MaxSpellLevel    *int
	ParentClassIDs   []int
}

// ClassLevel is a class association on a spell: the class plus the minimum
// level at which that class can cast the spell.
type ClassLevel struct {
	ClassInfo
	Level int
}

// SchoolInfo represents a school of magic. Schools group into types
// (e.g. elemental schools) identified by TypeID/TypeName.
type SchoolInfo struct {
	ID       int
	Name     string
	TypeID   int
	TypeName string
}
