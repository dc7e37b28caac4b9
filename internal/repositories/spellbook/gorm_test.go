package spellbook_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spellscribe/spells-api/internal/errors"
	"github.com/spellscribe/spells-api/internal/repositories/spellbook"
)

type GormRepositoryTestSuite struct {
	suite.Suite
	repo spellbook.Repository
	ctx  context.Context
}

func (s *GormRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(spellbook.Migrate(db))

	s.repo = spellbook.NewGormRepository(db)
	s.ctx = context.Background()
}

func (s *GormRepositoryTestSuite) TestSaveAndList() {
	for _, alias := range []string{"fireball", "cureLightWounds", "mageArmor"} {
		_, err := s.repo.Save(s.ctx, spellbook.SaveInput{ChatID: 42, SpellAlias: alias})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, spellbook.ListInput{ChatID: 42})
	s.Require().NoError(err)
	s.Require().Len(out.Saved, 3)
	s.Equal("fireball", out.Saved[0].SpellAlias)
	s.Equal("mageArmor", out.Saved[2].SpellAlias)

	other, err := s.repo.List(s.ctx, spellbook.ListInput{ChatID: 7})
	s.Require().NoError(err)
	s.Empty(other.Saved)
}

func (s *GormRepositoryTestSuite) TestSaveDuplicate() {
	_, err := s.repo.Save(s.ctx, spellbook.SaveInput{ChatID: 42, SpellAlias: "fireball"})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, spellbook.SaveInput{ChatID: 42, SpellAlias: "fireball"})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))

	// Same spell for another chat is fine.
	_, err = s.repo.Save(s.ctx, spellbook.SaveInput{ChatID: 7, SpellAlias: "fireball"})
	s.NoError(err)
}

func (s *GormRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, spellbook.SaveInput{ChatID: 42, SpellAlias: "fireball"})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, spellbook.DeleteInput{ChatID: 42, SpellAlias: "fireball"})
	s.NoError(err)

	_, err = s.repo.Delete(s.ctx, spellbook.DeleteInput{ChatID: 42, SpellAlias: "fireball"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *GormRepositoryTestSuite) TestGetByIndex() {
	for _, alias := range []string{"fireball", "cureLightWounds"} {
		_, err := s.repo.Save(s.ctx, spellbook.SaveInput{ChatID: 42, SpellAlias: alias})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetByIndex(s.ctx, spellbook.GetByIndexInput{ChatID: 42, Index: 1})
	s.Require().NoError(err)
	s.Equal("cureLightWounds", out.Saved.SpellAlias)
	s.Equal(2, out.Total)

	_, err = s.repo.GetByIndex(s.ctx, spellbook.GetByIndexInput{ChatID: 42, Index: 2})
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}
