package scraper

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/spellscribe/spells-api/internal/entities"
	"github.com/spellscribe/spells-api/internal/errors"
)

// schoolLinePrefix marks the school line on a detail page ("Школа" is the
// source site's label for a spell's school of magic).
const schoolLinePrefix = "Школа"

var (
	// anchorPattern strips link markup the source embeds in short descriptions.
	anchorPattern = regexp.MustCompile(`<a href[^>]*>|</a>`)
	// tableWrapperPattern strips the layout paragraphs the source mangles
	// into table markup.
	tableWrapperPattern = regexp.MustCompile(`<p class="indent">|</p>`)
)

// Source payload shapes, named as the site names them.

type sourceClass struct {
	ID             int    `json:"Id"`
	Name           string `json:"Name"`
	IsOwnSpellList *bool  `json:"IsOwnSpellList"`
	MaxSpellLvl    *int   `json:"MaxSpellLvl"`
	ParentClassIDs []int  `json:"ParentClassIds"`
}

type sourceSchool struct {
	ID       int    `json:"Id"`
	Name     string `json:"Name"`
	TypeID   int    `json:"TypeId"`
	TypeName string `json:"TypeName"`
}

type sourceClassSpell struct {
	ClassID int `json:"ClassId"`
	Level   int `json:"Level"`
}

type sourceSpell struct {
	Alias                      string             `json:"Alias"`
	Name                       string             `json:"Name"`
	ShortDescription           string             `json:"ShortDescription"`
	ShortDescriptionComponents string             `json:"ShortDescriptionComponents"`
	BookAbbreviation           string             `json:"BookAbbreviation"`
	BookAlias                  string             `json:"BookAlias"`
	SchoolIDs                  []int              `json:"SchoolIds"`
	ClassSpell                 []sourceClassSpell `json:"ClassSpell"`
	IsRaceSpell                bool               `json:"IsRaceSpell"`
}

// classExtra carries the per-class fields scraped from the class list pages,
// matched to the embedded data by class display name.
type classExtra struct {
	alias            string
	bookAlias        string
	bookAbbreviation string
	shortDescription string
}

// findRegistryScript locates the inline script whose js variables carry the
// registry data blocks.
func findRegistryScript(doc *goquery.Document) (string, error) {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), "var spells") {
			script = s.Text()
			return false
		}
		return true
	})
	if script == "" {
		return "", errors.Unavailable("spell list page has no embedded registry data")
	}

	return script, nil
}

// extractJSBlock pulls one data block out of the registry script. Each block
// is the value of a js string variable: var <name> = \'<json>\';
func extractJSBlock(script, name string) (string, error) {
	prefix := `var ` + name + ` = \'`
	start := strings.Index(script, prefix)
	if start < 0 {
		return "", errors.Unavailablef("registry script is missing the %q block", name)
	}

	rest := script[start+len(prefix):]
	end := strings.Index(rest, `\';`)
	if end < 0 {
		return "", errors.Unavailablef("registry script has an unterminated %q block", name)
	}

	return rest[:end], nil
}

func extractSchools(script string) ([]entities.SchoolInfo, error) {
	block, err := extractJSBlock(script, "schools")
	if err != nil {
		return nil, err
	}

	var raw []sourceSchool
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to decode schools block")
	}

	schools := make([]entities.SchoolInfo, 0, len(raw))
	for _, s := range raw {
		schools = append(schools, entities.SchoolInfo{
			ID:       s.ID,
			Name:     s.Name,
			TypeID:   s.TypeID,
			TypeName: s.TypeName,
		})
	}

	return schools, nil
}

func extractClasses(script string, extras map[string]classExtra) ([]entities.ClassInfo, error) {
	block, err := extractJSBlock(script, "classes")
	if err != nil {
		return nil, err
	}

	var raw []sourceClass
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to decode classes block")
	}

	classes := make([]entities.ClassInfo, 0, len(raw))
	for _, c := range raw {
		class := entities.ClassInfo{
			ID:             c.ID,
			Name:           c.Name,
			IsOwnSpellList: c.IsOwnSpellList,
			MaxSpellLevel:  c.MaxSpellLvl,
			ParentClassIDs: c.ParentClassIDs,
		}
		if extra, ok := extras[c.Name]; ok {
			class.Alias = extra.alias
			class.BookAlias = extra.bookAlias
			class.BookAbbreviation = extra.bookAbbreviation
			class.ShortDescription = extra.shortDescription
		}
		classes = append(classes, class)
	}

	return classes, nil
}

func extractSpells(script string, classes []entities.ClassInfo, schools []entities.SchoolInfo) ([]entities.ShortSpellInfo, error) {
	block, err := extractJSBlock(script, "spells")
	if err != nil {
		return nil, err
	}

	var raw []sourceSpell
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to decode spells block")
	}

	id2class := make(map[int]entities.ClassInfo, len(classes))
	for _, c := range classes {
		id2class[c.ID] = c
	}
	id2school := make(map[int]entities.SchoolInfo, len(schools))
	for _, s := range schools {
		id2school[s.ID] = s
	}

	spells := make([]entities.ShortSpellInfo, 0, len(raw))
	for _, sp := range raw {
		spell := entities.ShortSpellInfo{
			Alias:                      sp.Alias,
			Name:                       sp.Name,
			ShortDescription:           anchorPattern.ReplaceAllString(sp.ShortDescription, ""),
			ShortDescriptionComponents: sp.ShortDescriptionComponents,
			BookAbbreviation:           sp.BookAbbreviation,
			BookAlias:                  sp.BookAlias,
			IsRaceSpell:                sp.IsRaceSpell,
		}

		for _, cs := range sp.ClassSpell {
			class, ok := id2class[cs.ClassID]
			if !ok {
				return nil, errors.FailedPreconditionf(
					"spell %q references class id %d absent from payload", sp.Alias, cs.ClassID)
			}
			spell.Classes = append(spell.Classes, entities.ClassLevel{ClassInfo: class, Level: cs.Level})
		}

		for _, id := range sp.SchoolIDs {
			school, ok := id2school[id]
			if !ok {
				return nil, errors.FailedPreconditionf(
					"spell %q references school id %d absent from payload", sp.Alias, id)
			}
			spell.Schools = append(spell.Schools, school)
		}

		spells = append(spells, spell)
	}

	return spells, nil
}

// extractClassExtras scans a class list page for per-class alias, book, and
// description. Entries missing the expected markup are skipped, matching the
// best-effort nature of the enrichment.
func extractClassExtras(doc *goquery.Document) map[string]classExtra {
	extras := make(map[string]classExtra)

	doc.Find("p.indent").Each(func(_ int, p *goquery.Selection) {
		header := p.Find("span.textHeader").First()
		if header.Length() == 0 {
			return
		}

		nameLink := header.Find("a").First()
		sup := header.Find("sup").First()
		supLink := sup.Find("a").First()
		if nameLink.Length() == 0 || supLink.Length() == 0 {
			return
		}

		name := strings.TrimSpace(nameLink.Text())
		if name == "" {
			return
		}

		text := p.Text()
		description := text
		if idx := strings.LastIndex(text, ":"); idx >= 0 {
			description = text[idx+1:]
		}

		extras[name] = classExtra{
			alias:            lastPathSegment(nameLink.AttrOr("href", "")),
			bookAlias:        lastPathSegment(supLink.AttrOr("href", "")),
			bookAbbreviation: strings.TrimSpace(sup.Text()),
			shortDescription: strings.TrimSpace(description),
		}
	})

	return extras
}

func lastPathSegment(href string) string {
	href = strings.TrimRight(href, "/")
	if idx := strings.LastIndex(href, "/"); idx >= 0 {
		return href[idx+1:]
	}
	return href
}

// extractSpellDetail pulls the long-form content out of a spell detail page:
// the bolded title, the school line, ordered variable lines, the narrative
// paragraphs, and every table fragment. Table fragments and narrative text
// are mutually exclusive paragraph classes; layout paragraphs wrapping a
// table carry no text of their own and are skipped.
func extractSpellDetail(doc *goquery.Document, alias string) (*entities.ExtendedSpellInfo, error) {
	title := doc.Find("h1.detailPage").First()
	if title.Length() == 0 {
		return nil, errors.Unavailablef("detail page for %q has no title", alias)
	}
	fullName := strings.TrimSpace(title.Text())
	if idx := strings.Index(fullName, "\n"); idx >= 0 {
		fullName = strings.TrimSpace(fullName[:idx])
	}

	detail := &entities.ExtendedSpellInfo{FullName: fullName}

	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		html, err := goquery.OuterHtml(t)
		if err != nil {
			return
		}
		detail.Tables = append(detail.Tables, entities.SpellTable{
			HTML: tableWrapperPattern.ReplaceAllString(html, ""),
		})
	})

	var textLines []string
	doc.Find("p.indent").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())

		header := p.Find("span.textHeader").First()
		switch {
		case strings.HasPrefix(text, schoolLinePrefix):
			detail.School = text
		case header.Length() > 0:
			label := header.Text()
			value := strings.TrimSpace(strings.TrimPrefix(p.Text(), label))
			detail.Variables = append(detail.Variables, entities.SpellVariable{
				Label: strings.Trim(label, " :"),
				Value: value,
			})
		case p.Find("table, thead, tbody, tr, td").Length() > 0:
			// Layout container for a table; its content is already
			// captured as a table fragment.
		case text != "":
			textLines = append(textLines, text)
		}
	})
	detail.Text = strings.Join(textLines, "\n")

	return detail, nil
}
