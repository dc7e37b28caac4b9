package chatsettings_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/spellscribe/spells-api/internal/errors"
	"github.com/spellscribe/spells-api/internal/repositories/chatsettings"
	"github.com/spellscribe/spells-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    chatsettings.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.repo = chatsettings.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func defaultFilter() map[string]bool {
	return map[string]bool{
		"coreRulebook":        true,
		"advancedPlayerGuide": true,
		"ultimateMagic":       false,
	}
}

func (s *RedisRepositoryTestSuite) TestGetOrCreatePersistsDefaultFilter() {
	out, err := s.repo.GetOrCreate(s.ctx, chatsettings.GetOrCreateInput{
		ChatID:        42,
		DefaultFilter: defaultFilter(),
	})
	s.Require().NoError(err)
	s.Equal(int64(42), out.Settings.ChatID)
	s.True(out.Settings.BookFilter["coreRulebook"])
	s.False(out.Settings.BookFilter["ultimateMagic"])

	// A later read with a different default must return the stored filter.
	out, err = s.repo.GetOrCreate(s.ctx, chatsettings.GetOrCreateInput{
		ChatID:        42,
		DefaultFilter: map[string]bool{"somethingElse": true},
	})
	s.Require().NoError(err)
	s.Equal(defaultFilter(), out.Settings.BookFilter)
}

func (s *RedisRepositoryTestSuite) TestToggleBook() {
	_, err := s.repo.GetOrCreate(s.ctx, chatsettings.GetOrCreateInput{
		ChatID:        42,
		DefaultFilter: defaultFilter(),
	})
	s.Require().NoError(err)

	out, err := s.repo.ToggleBook(s.ctx, chatsettings.ToggleBookInput{ChatID: 42, Book: "coreRulebook"})
	s.Require().NoError(err)
	s.False(out.Settings.BookFilter["coreRulebook"])

	// Toggling twice restores the original value.
	out, err = s.repo.ToggleBook(s.ctx, chatsettings.ToggleBookInput{ChatID: 42, Book: "coreRulebook"})
	s.Require().NoError(err)
	s.True(out.Settings.BookFilter["coreRulebook"])
}

func (s *RedisRepositoryTestSuite) TestToggleBookCreatesSettingsOnFirstAccess() {
	out, err := s.repo.ToggleBook(s.ctx, chatsettings.ToggleBookInput{
		ChatID:        7,
		Book:          "ultimateMagic",
		DefaultFilter: defaultFilter(),
	})
	s.Require().NoError(err)
	s.True(out.Settings.BookFilter["ultimateMagic"])
}

func (s *RedisRepositoryTestSuite) TestToggleBookIsolatedPerChat() {
	for _, chatID := range []int64{1, 2} {
		_, err := s.repo.GetOrCreate(s.ctx, chatsettings.GetOrCreateInput{
			ChatID:        chatID,
			DefaultFilter: defaultFilter(),
		})
		s.Require().NoError(err)
	}

	_, err := s.repo.ToggleBook(s.ctx, chatsettings.ToggleBookInput{ChatID: 1, Book: "coreRulebook"})
	s.Require().NoError(err)

	out, err := s.repo.GetOrCreate(s.ctx, chatsettings.GetOrCreateInput{ChatID: 2})
	s.Require().NoError(err)
	s.True(out.Settings.BookFilter["coreRulebook"], "chat 2 filter must be unaffected by chat 1 toggles")
}

func (s *RedisRepositoryTestSuite) TestToggleUnknownBook() {
	_, err := s.repo.ToggleBook(s.ctx, chatsettings.ToggleBookInput{
		ChatID:        42,
		Book:          "noSuchBook",
		DefaultFilter: defaultFilter(),
	})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
