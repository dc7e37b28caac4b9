package entities

// ShortSpellInfo is the registry-level view of a spell: always present after a
// registry refresh, keyed by the source's URL-safe alias.
type ShortSpellInfo struct {
	Alias                      string
	Name                       string
	ShortDescription           string
	ShortDescriptionComponents string
	BookAbbreviation           string
	BookAlias                  string
	IsRaceSpell                bool
	Schools                    []SchoolInfo
	Classes                    []ClassLevel
}

// SpellVariable is one label/value line from a spell's detail page
// (casting time, components, range, ...). The label set is not fixed and
// document order is meaningful, so variables are kept as an ordered slice.
type SpellVariable struct {
	Label string
	Value string
}

// ExtendedSpellInfo is the lazily populated long-form detail of a spell.
// It is created once, on first request, and never refreshed.
type ExtendedSpellInfo struct {
	FullName  string
	School    string
	Variables []SpellVariable
	Text      string
	Tables    []SpellTable
}

// SpellTable is one HTML table fragment extracted from a detail page.
// Path, when set, points at the rendered image and is authoritative:
// a fragment with an existing file is never re-rendered.
type SpellTable struct {
	HTML string
	URL  string
	Path string
}
