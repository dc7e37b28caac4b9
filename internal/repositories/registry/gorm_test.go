package registry_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spellscribe/spells-api/internal/entities"
	"github.com/spellscribe/spells-api/internal/errors"
	"github.com/spellscribe/spells-api/internal/repositories/registry"
)

type GormRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo registry.Repository
	ctx  context.Context

	wizard    entities.ClassInfo
	priest    entities.ClassInfo
	evocation entities.SchoolInfo
	healing   entities.SchoolInfo
}

func (s *GormRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(registry.Migrate(db))

	s.db = db
	s.repo = registry.NewGormRepository(db)
	s.ctx = context.Background()

	s.wizard = entities.ClassInfo{ID: 1, Alias: "wizard", Name: "Wizard", BookAlias: "coreRulebook"}
	s.priest = entities.ClassInfo{ID: 2, Alias: "priest", Name: "Priest", BookAlias: "coreRulebook"}
	s.evocation = entities.SchoolInfo{ID: 10, Name: "Evocation", TypeID: 1, TypeName: "Arcane"}
	s.healing = entities.SchoolInfo{ID: 11, Name: "Healing", TypeID: 2, TypeName: "Divine"}
}

func (s *GormRepositoryTestSuite) seedInput() registry.UpsertRegistryInput {
	return registry.UpsertRegistryInput{
		Classes: []entities.ClassInfo{s.wizard, s.priest},
		Schools: []entities.SchoolInfo{s.evocation, s.healing},
		Spells: []entities.ShortSpellInfo{
			{
				Alias:            "fireball",
				Name:             "Fireball",
				ShortDescription: "A burst of flame",
				BookAlias:        "coreRulebook",
				Schools:          []entities.SchoolInfo{s.evocation},
				Classes:          []entities.ClassLevel{{ClassInfo: s.wizard, Level: 3}},
			},
			{
				Alias:            "cureLightWounds",
				Name:             "Cure Light Wounds",
				ShortDescription: "Heals minor damage",
				BookAlias:        "coreRulebook",
				Schools:          []entities.SchoolInfo{s.healing},
				Classes:          []entities.ClassLevel{{ClassInfo: s.priest, Level: 1}},
			},
			{
				Alias:            "arcaneMark",
				Name:             "Arcane Mark",
				ShortDescription: "Inscribes a personal rune",
				BookAlias:        "advancedPlayerGuide",
				Schools:          []entities.SchoolInfo{s.evocation},
				Classes: []entities.ClassLevel{
					{ClassInfo: s.wizard, Level: 0},
					{ClassInfo: s.priest, Level: 1},
				},
			},
		},
	}
}

func (s *GormRepositoryTestSuite) seed() {
	_, err := s.repo.UpsertRegistry(s.ctx, s.seedInput())
	s.Require().NoError(err)
}

func (s *GormRepositoryTestSuite) TestUpsertRegistryIsIdempotent() {
	s.seed()
	s.seed()

	out, err := s.repo.FindSpellsByName(s.ctx, registry.FindSpellsByNameInput{Query: ""})
	s.NoError(err)
	s.Len(out.Spells, 3)

	classes, err := s.repo.ListClasses(s.ctx, registry.ListClassesInput{})
	s.NoError(err)
	s.Len(classes.Classes, 2)
}

func (s *GormRepositoryTestSuite) TestUpsertRegistryOverwritesInPlace() {
	s.seed()

	input := s.seedInput()
	input.Spells[0].ShortDescription = "A louder burst of flame"
	_, err := s.repo.UpsertRegistry(s.ctx, input)
	s.Require().NoError(err)

	out, err := s.repo.FindSpellsByName(s.ctx, registry.FindSpellsByNameInput{Query: "fireball"})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 1)
	s.Equal("A louder burst of flame", out.Spells[0].ShortDescription)
}

func (s *GormRepositoryTestSuite) TestUpsertRegistryRejectsDanglingClass() {
	input := s.seedInput()
	input.Spells[0].Classes = append(input.Spells[0].Classes, entities.ClassLevel{
		ClassInfo: entities.ClassInfo{ID: 99, Name: "Ghost Class"},
		Level:     5,
	})

	_, err := s.repo.UpsertRegistry(s.ctx, input)
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))

	// Nothing from the failed payload may be committed.
	ready, err := s.repo.HasSufficientData(s.ctx, registry.HasSufficientDataInput{MinSpellCount: 0})
	s.NoError(err)
	s.False(ready.Sufficient)
}

func (s *GormRepositoryTestSuite) TestUpsertRegistryRejectsDanglingSchool() {
	input := s.seedInput()
	input.Spells[1].Schools = []entities.SchoolInfo{{ID: 404, Name: "Void"}}

	_, err := s.repo.UpsertRegistry(s.ctx, input)
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *GormRepositoryTestSuite) TestHasSufficientData() {
	ready, err := s.repo.HasSufficientData(s.ctx, registry.HasSufficientDataInput{MinSpellCount: 0})
	s.NoError(err)
	s.False(ready.Sufficient)

	s.seed()

	ready, err = s.repo.HasSufficientData(s.ctx, registry.HasSufficientDataInput{MinSpellCount: 2})
	s.NoError(err)
	s.True(ready.Sufficient)

	ready, err = s.repo.HasSufficientData(s.ctx, registry.HasSufficientDataInput{MinSpellCount: 3})
	s.NoError(err)
	s.False(ready.Sufficient)
}

func (s *GormRepositoryTestSuite) TestFindSpellsByName() {
	s.seed()

	s.Run("substring containment, ordered by name", func() {
		out, err := s.repo.FindSpellsByName(s.ctx, registry.FindSpellsByNameInput{Query: "ar"})
		s.Require().NoError(err)
		s.Require().Len(out.Spells, 1)
		s.Equal("Arcane Mark", out.Spells[0].Name)
	})

	s.Run("empty query returns all included-book spells in name order", func() {
		out, err := s.repo.FindSpellsByName(s.ctx, registry.FindSpellsByNameInput{
			Query:         "",
			IncludedBooks: []string{"coreRulebook"},
		})
		s.Require().NoError(err)
		s.Require().Len(out.Spells, 2)
		s.Equal("Cure Light Wounds", out.Spells[0].Name)
		s.Equal("Fireball", out.Spells[1].Name)
	})

	s.Run("book filter excludes other books", func() {
		out, err := s.repo.FindSpellsByName(s.ctx, registry.FindSpellsByNameInput{
			Query:         "arcane",
			IncludedBooks: []string{"coreRulebook"},
		})
		s.Require().NoError(err)
		s.Empty(out.Spells)
	})

	s.Run("resolves school and class associations", func() {
		out, err := s.repo.FindSpellsByName(s.ctx, registry.FindSpellsByNameInput{Query: "fireball"})
		s.Require().NoError(err)
		s.Require().Len(out.Spells, 1)
		s.Require().Len(out.Spells[0].Schools, 1)
		s.Equal("Evocation", out.Spells[0].Schools[0].Name)
		s.Require().Len(out.Spells[0].Classes, 1)
		s.Equal("Wizard", out.Spells[0].Classes[0].Name)
		s.Equal(3, out.Spells[0].Classes[0].Level)
	})
}

func (s *GormRepositoryTestSuite) TestFindSpellsByClassLevel() {
	s.seed()

	out, err := s.repo.FindSpellsByClassLevel(s.ctx, registry.FindSpellsByClassLevelInput{
		ClassID: s.wizard.ID,
		Level:   3,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 1)
	s.Equal("Fireball", out.Spells[0].Name)

	out, err = s.repo.FindSpellsByClassLevel(s.ctx, registry.FindSpellsByClassLevelInput{
		ClassID: s.wizard.ID,
		Level:   1,
	})
	s.Require().NoError(err)
	s.Empty(out.Spells)

	out, err = s.repo.FindSpellsByClassLevel(s.ctx, registry.FindSpellsByClassLevelInput{
		ClassID: s.priest.ID,
		Level:   1,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Spells, 2)
	s.Equal("Arcane Mark", out.Spells[0].Name)
	s.Equal("Cure Light Wounds", out.Spells[1].Name)
}

func (s *GormRepositoryTestSuite) TestGetClass() {
	s.seed()

	out, err := s.repo.GetClass(s.ctx, registry.GetClassInput{ClassID: s.wizard.ID})
	s.Require().NoError(err)
	s.Equal("Wizard", out.Class.Name)

	_, err = s.repo.GetClass(s.ctx, registry.GetClassInput{ClassID: 999})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *GormRepositoryTestSuite) TestListLevels() {
	s.seed()

	out, err := s.repo.ListLevels(s.ctx, registry.ListLevelsInput{ClassID: s.wizard.ID})
	s.Require().NoError(err)
	s.Equal([]int{0, 3}, out.Levels)

	out, err = s.repo.ListLevels(s.ctx, registry.ListLevelsInput{ClassID: 999})
	s.Require().NoError(err)
	s.Empty(out.Levels)
}

func (s *GormRepositoryTestSuite) TestListRulebooks() {
	s.seed()

	out, err := s.repo.ListRulebooks(s.ctx, registry.ListRulebooksInput{})
	s.Require().NoError(err)
	s.Equal([]string{"advancedPlayerGuide", "coreRulebook"}, out.Books)
}

func (s *GormRepositoryTestSuite) TestExtendedSpellInfoLifecycle() {
	s.seed()

	out, err := s.repo.GetFullSpellInfo(s.ctx, registry.GetFullSpellInfoInput{Alias: "fireball"})
	s.Require().NoError(err)
	s.Equal("Fireball", out.Spell.Name)
	s.Nil(out.Extended)

	extended := entities.ExtendedSpellInfo{
		FullName: "Fireball (Огненный шар)",
		School:   "Школа воплощение [огонь]",
		Variables: []entities.SpellVariable{
			{Label: "Время сотворения", Value: "1 стандартное действие"},
			{Label: "Дистанция", Value: "длинная"},
		},
		Text: "A fireball spell generates a searing explosion of flame.",
	}
	tables := []entities.SpellTable{
		{HTML: "<table><tr><td>a</td></tr></table>", URL: "https://img.example/0.png", Path: "data/tables/fireball/0.png"},
		{HTML: "<table><tr><td>b</td></tr></table>", Path: "data/tables/fireball/1.png"},
	}

	created, err := s.repo.CreateExtendedSpellInfo(s.ctx, registry.CreateExtendedSpellInfoInput{
		Alias:    "fireball",
		Extended: extended,
		Tables:   tables,
	})
	s.Require().NoError(err)
	s.Equal(extended.FullName, created.Extended.FullName)
	s.Require().Len(created.Extended.Tables, 2)

	out, err = s.repo.GetFullSpellInfo(s.ctx, registry.GetFullSpellInfoInput{Alias: "fireball"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Extended)
	s.Equal(extended.Variables, out.Extended.Variables)
	s.Require().Len(out.Extended.Tables, 2)
	s.Equal("data/tables/fireball/0.png", out.Extended.Tables[0].Path)
	s.Equal("data/tables/fireball/1.png", out.Extended.Tables[1].Path)
}

func (s *GormRepositoryTestSuite) TestCreateExtendedSpellInfoTwiceFails() {
	s.seed()

	input := registry.CreateExtendedSpellInfoInput{
		Alias:    "fireball",
		Extended: entities.ExtendedSpellInfo{FullName: "Fireball"},
	}

	_, err := s.repo.CreateExtendedSpellInfo(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.repo.CreateExtendedSpellInfo(s.ctx, input)
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *GormRepositoryTestSuite) TestCreateExtendedSpellInfoUnknownAlias() {
	s.seed()

	_, err := s.repo.CreateExtendedSpellInfo(s.ctx, registry.CreateExtendedSpellInfoInput{
		Alias:    "noSuchSpell",
		Extended: entities.ExtendedSpellInfo{FullName: "Nope"},
	})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}
