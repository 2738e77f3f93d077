package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Arx-Game/arxii-sub002/internal/entities/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/errors"
	"github.com/Arx-Game/arxii-sub002/internal/repositories/application"
	"github.com/Arx-Game/arxii-sub002/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    application.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.repo = application.NewRedisRepository(client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testApplication(id, playerID string) *chargen.CharacterApplication {
	return &chargen.CharacterApplication{
		ID:          id,
		PlayerID:    playerID,
		Status:      chargen.ApplicationStatusPending,
		HomelandID:  "hl_arx",
		BeginningID: "beg_noble",
		Identity:    chargen.IdentityInfo{FirstName: "Aurelia", Surname: "Velenosa"},
		SubmittedAt: time.Now().Unix(),
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	app := s.testApplication("app_1", "player_1")

	created, err := s.repo.Create(s.ctx, application.CreateInput{Application: app})
	s.Require().NoError(err)
	s.Require().NotNil(created.Application)

	got, err := s.repo.Get(s.ctx, application.GetInput{ID: "app_1"})
	s.Require().NoError(err)
	s.Equal(chargen.ApplicationStatusPending, got.Application.Status)
	s.Equal("Aurelia", got.Application.Identity.FirstName)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, application.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, application.CreateInput{
		Application: &chargen.CharacterApplication{PlayerID: "player_1"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateIsImmutable() {
	app := s.testApplication("app_1", "player_1")
	_, err := s.repo.Create(s.ctx, application.CreateInput{Application: app})
	s.Require().NoError(err)

	dupe := s.testApplication("app_1", "player_1")
	dupe.Identity.FirstName = "Imposter"

	_, err = s.repo.Create(s.ctx, application.CreateInput{Application: dupe})
	s.True(errors.IsAlreadyExists(err))

	got, err := s.repo.Get(s.ctx, application.GetInput{ID: "app_1"})
	s.Require().NoError(err)
	s.Equal("Aurelia", got.Application.Identity.FirstName)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, application.GetInput{ID: "app_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerID() {
	for _, id := range []string{"app_1", "app_2"} {
		_, err := s.repo.Create(s.ctx, application.CreateInput{
			Application: s.testApplication(id, "player_1"),
		})
		s.Require().NoError(err)
	}
	_, err := s.repo.Create(s.ctx, application.CreateInput{
		Application: s.testApplication("app_3", "player_2"),
	})
	s.Require().NoError(err)

	out, err := s.repo.ListByPlayerID(s.ctx, application.ListByPlayerIDInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Len(out.Applications, 2)

	out, err = s.repo.ListByPlayerID(s.ctx, application.ListByPlayerIDInput{PlayerID: "player_none"})
	s.Require().NoError(err)
	s.Empty(out.Applications)
}
