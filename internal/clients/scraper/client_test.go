package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/spellscribe/spells-api/internal/clients/scraper"
	"github.com/spellscribe/spells-api/internal/errors"
)

const (
	spellsJSON = `[{"Alias":"fireball","Name":"Огненный шар","ShortDescription":"Взрыв пламени наносит <a href=\"/magic/fire\">урон огнём</a> всем в области.","ShortDescriptionComponents":"В, С, М","BookAbbreviation":"CRB","BookAlias":"coreRulebook","SchoolIds":[10],"ClassSpell":[{"ClassId":1,"Level":3},{"ClassId":2,"Level":4}],"IsRaceSpell":false}]`

	classesJSON = `[{"Id":1,"Name":"Волшебник","IsOwnSpellList":true,"MaxSpellLvl":9,"ParentClassIds":null},{"Id":2,"Name":"Мистический теург","IsOwnSpellList":false,"MaxSpellLvl":null,"ParentClassIds":[1]}]`

	schoolsJSON = `[{"Id":10,"Name":"воплощение","TypeId":1,"TypeName":"школа"}]`

	classListPage = `<html><body>
<p class="indent"><span class="textHeader"><a href="/classes/wizard/">Волшебник</a><sup><a href="/books/coreRulebook/">CRB</a></sup> :</span> Мастер тайной магии, черпающий силу из книги заклинаний.</p>
<p class="indent">Служебный абзац без заголовка.</p>
</body></html>`

	prestigeListPage = `<html><body>
<p class="indent"><span class="textHeader"><a href="/prestige-classes/mysticTheurge/">Мистический теург</a><sup><a href="/books/coreRulebook/">CRB</a></sup> :</span> Сочетает тайную и божественную магию.</p>
</body></html>`

	spellDetailPage = `<html><body>
<h1 class="detailPage">Огненный шар
<small>Fireball</small></h1>
<p class="indent">Школа воплощение [огонь]; Уровень волшебник 3</p>
<p class="indent"><span class="textHeader">Время сотворения :</span> 1 стандартное действие</p>
<p class="indent"><span class="textHeader">Дистанция :</span> длинная (120 м + 12 м/уровень)</p>
<p class="indent">Огненный шар — это яркая вспышка пламени, взрывающаяся с низким гулом.</p>
<p class="indent">Шар наносит 1к6 урона огнём за уровень заклинателя.</p>
<table><thead><tr><th>Уровень</th><th>Урон</th></tr></thead><tbody><tr><td>5</td><td>5к6</td></tr></tbody></table>
</body></html>`
)

func buildRegistryScript(spells, classes, schools string) string {
	return `var spells = \'` + spells + `\';&#13;` +
		`var classes = \'` + classes + `\';&#13;` +
		`var schools = \'` + schools + `\';`
}

type ScraperClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	client scraper.Client
	ctx    context.Context

	// registryScript is embedded into the spell list page at request time so
	// individual tests can serve malformed payloads.
	registryScript string
}

func (s *ScraperClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.registryScript = buildRegistryScript(spellsJSON, classesJSON, schoolsJSON)

	mux := http.NewServeMux()
	mux.HandleFunc("/spells/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/spells/fireball" {
			_, _ = w.Write([]byte(spellDetailPage))
			return
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("/spells", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>` + s.registryScript + `</script></body></html>`))
	})
	mux.HandleFunc("/classes", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(classListPage))
	})
	mux.HandleFunc("/prestige-classes", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(prestigeListPage))
	})
	s.server = httptest.NewServer(mux)

	client, err := scraper.New(&scraper.Config{
		SpellListURL:         s.server.URL + "/spells",
		ClassListURL:         s.server.URL + "/classes",
		PrestigeClassListURL: s.server.URL + "/prestige-classes",
		SpellInfoURLPrefix:   s.server.URL + "/spells",
		HTTPTimeout:          5 * time.Second,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ScraperClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ScraperClientTestSuite) TestFetchRegistry() {
	data, err := s.client.FetchRegistry(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(data.Schools, 1)
	s.Equal("воплощение", data.Schools[0].Name)

	s.Require().Len(data.Classes, 2)
	wizard := data.Classes[0]
	s.Equal(1, wizard.ID)
	s.Equal("Волшебник", wizard.Name)
	s.Equal("wizard", wizard.Alias)
	s.Equal("coreRulebook", wizard.BookAlias)
	s.Equal("CRB", wizard.BookAbbreviation)
	s.Contains(wizard.ShortDescription, "Мастер тайной магии")
	s.Require().NotNil(wizard.MaxSpellLevel)
	s.Equal(9, *wizard.MaxSpellLevel)

	// Prestige classes come from their own list page.
	theurge := data.Classes[1]
	s.Equal("mysticTheurge", theurge.Alias)
	s.Nil(theurge.MaxSpellLevel)
	s.Equal([]int{1}, theurge.ParentClassIDs)

	s.Require().Len(data.Spells, 1)
	spell := data.Spells[0]
	s.Equal("fireball", spell.Alias)
	s.Equal("Огненный шар", spell.Name)
	s.Equal("CRB", spell.BookAbbreviation)
	s.Equal("coreRulebook", spell.BookAlias)
	s.NotContains(spell.ShortDescription, "<a href")
	s.Contains(spell.ShortDescription, "урон огнём")

	s.Require().Len(spell.Classes, 2)
	s.Equal("Волшебник", spell.Classes[0].Name)
	s.Equal(3, spell.Classes[0].Level)
	s.Equal("Мистический теург", spell.Classes[1].Name)
	s.Equal(4, spell.Classes[1].Level)

	s.Require().Len(spell.Schools, 1)
	s.Equal("воплощение", spell.Schools[0].Name)
}

func (s *ScraperClientTestSuite) TestFetchRegistryDanglingClassID() {
	badSpells := `[{"Alias":"mystery","Name":"Тайна","SchoolIds":[10],"ClassSpell":[{"ClassId":99,"Level":1}]}]`
	s.registryScript = buildRegistryScript(badSpells, classesJSON, schoolsJSON)

	_, err := s.client.FetchRegistry(s.ctx)
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ScraperClientTestSuite) TestFetchRegistryDanglingSchoolID() {
	badSpells := `[{"Alias":"mystery","Name":"Тайна","SchoolIds":[99],"ClassSpell":[]}]`
	s.registryScript = buildRegistryScript(badSpells, classesJSON, schoolsJSON)

	_, err := s.client.FetchRegistry(s.ctx)
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ScraperClientTestSuite) TestFetchRegistryMissingScript() {
	s.registryScript = `var unrelated = 1;`

	_, err := s.client.FetchRegistry(s.ctx)
	s.Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ScraperClientTestSuite) TestFetchRegistrySourceDown() {
	s.server.Close()

	_, err := s.client.FetchRegistry(s.ctx)
	s.Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ScraperClientTestSuite) TestFetchSpellDetail() {
	detail, err := s.client.FetchSpellDetail(s.ctx, "fireball")
	s.Require().NoError(err)

	s.Equal("Огненный шар", detail.FullName)
	s.Equal("Школа воплощение [огонь]; Уровень волшебник 3", detail.School)

	s.Require().Len(detail.Variables, 2)
	s.Equal("Время сотворения", detail.Variables[0].Label)
	s.Equal("1 стандартное действие", detail.Variables[0].Value)
	s.Equal("Дистанция", detail.Variables[1].Label)
	s.Equal("длинная (120 м + 12 м/уровень)", detail.Variables[1].Value)

	s.Contains(detail.Text, "яркая вспышка пламени")
	s.Contains(detail.Text, "1к6 урона огнём")

	s.Require().Len(detail.Tables, 1)
	s.Contains(detail.Tables[0].HTML, "<table>")
	s.Contains(detail.Tables[0].HTML, "5к6")
}

func (s *ScraperClientTestSuite) TestFetchSpellDetailEmptyAlias() {
	_, err := s.client.FetchSpellDetail(s.ctx, "")
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ScraperClientTestSuite) TestFetchSpellDetailNotFound() {
	_, err := s.client.FetchSpellDetail(s.ctx, "no-such-spell")
	s.Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *ScraperClientTestSuite) TestNewMissingConfig() {
	_, err := scraper.New(&scraper.Config{SpellListURL: "http://example.com/spells"})
	s.Error(err)
}

func TestScraperClientTestSuite(t *testing.T) {
	suite.Run(t, new(ScraperClientTestSuite))
}
