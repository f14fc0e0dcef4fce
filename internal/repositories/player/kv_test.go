package player

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/teams/internal/common/apperr"
	"github.com/KirkDiggler/teams/internal/models"
	"github.com/KirkDiggler/teams/internal/repositories/kv"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type KVRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *KVRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	store, err := kv.NewRedis(&kv.RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	// Create the repository
	repo, err := NewKV(&Config{
		Store: store,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *KVRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestKVRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KVRepositoryTestSuite))
}

func (s *KVRepositoryTestSuite) add(groupName, name string, team models.Team) {
	err := s.repo.AddToGroup(s.ctx, &AddToGroupInput{
		GroupName: groupName,
		Player:    &models.Player{Name: name, Team: team},
	})
	s.Require().NoError(err)
}

func (s *KVRepositoryTestSuite) names(players []*models.Player) []string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	return names
}

func (s *KVRepositoryTestSuite) listByGroup(groupName string) []*models.Player {
	output, err := s.repo.ListByGroup(s.ctx, &ListByGroupInput{GroupName: groupName})
	s.Require().NoError(err)
	return output.Players
}

func (s *KVRepositoryTestSuite) TestListByGroupWithNoKey() {
	players := s.listByGroup("Friday")
	s.NotNil(players)
	s.Empty(players)
}

func (s *KVRepositoryTestSuite) TestAddToGroup() {
	s.add("Friday", "Ana", models.TeamA)
	s.add("Friday", "Bea", models.TeamB)

	players := s.listByGroup("Friday")
	s.Require().Len(players, 2)
	s.Equal(&models.Player{Name: "Ana", Team: models.TeamA}, players[0])
	s.Equal(&models.Player{Name: "Bea", Team: models.TeamB}, players[1])

	// Stored as a JSON array of {name, team} under the group's key
	raw, err := s.mr.Get("@teams:players-Friday")
	s.Require().NoError(err)
	s.JSONEq(`[{"name":"Ana","team":"Team A"},{"name":"Bea","team":"Team B"}]`, raw)
}

func (s *KVRepositoryTestSuite) TestPlayersAreScopedToGroup() {
	s.add("Friday", "Ana", models.TeamA)
	s.add("Saturday", "Bea", models.TeamA)

	s.Equal([]string{"Ana"}, s.names(s.listByGroup("Friday")))
	s.Equal([]string{"Bea"}, s.names(s.listByGroup("Saturday")))
}

func (s *KVRepositoryTestSuite) TestListByGroupAndTeamKeepsInsertionOrder() {
	s.add("Friday", "A", models.TeamA)
	s.add("Friday", "B", models.TeamB)
	s.add("Friday", "C", models.TeamA)

	output, err := s.repo.ListByGroupAndTeam(s.ctx, &ListByGroupAndTeamInput{
		GroupName: "Friday",
		Team:      models.TeamA,
	})
	s.Require().NoError(err)
	s.Equal([]string{"A", "C"}, s.names(output.Players))

	output, err = s.repo.ListByGroupAndTeam(s.ctx, &ListByGroupAndTeamInput{
		GroupName: "Friday",
		Team:      models.TeamB,
	})
	s.Require().NoError(err)
	s.Equal([]string{"B"}, s.names(output.Players))
}

func (s *KVRepositoryTestSuite) TestListByGroupAndTeamWithNoMatches() {
	s.add("Friday", "Ana", models.TeamA)

	output, err := s.repo.ListByGroupAndTeam(s.ctx, &ListByGroupAndTeamInput{
		GroupName: "Friday",
		Team:      models.TeamB,
	})
	s.Require().NoError(err)
	s.NotNil(output.Players)
	s.Empty(output.Players)
}

func (s *KVRepositoryTestSuite) TestAddDuplicateNameInGroup() {
	s.add("Friday", "Ana", models.TeamA)
	before, err := s.mr.Get("@teams:players-Friday")
	s.Require().NoError(err)

	err = s.repo.AddToGroup(s.ctx, &AddToGroupInput{
		GroupName: "Friday",
		Player:    &models.Player{Name: "Ana", Team: models.TeamB},
	})
	s.Require().Error(err)
	s.True(apperr.IsKind(err, apperr.KindDuplicate))

	after, err := s.mr.Get("@teams:players-Friday")
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *KVRepositoryTestSuite) TestNamesAreTrimmed() {
	s.add(" Friday ", " Ana ", models.TeamA)

	s.Equal([]*models.Player{{Name: "Ana", Team: models.TeamA}}, s.listByGroup("Friday"))
	s.True(s.mr.Exists("@teams:players-Friday"))

	err := s.repo.AddToGroup(s.ctx, &AddToGroupInput{
		GroupName: "Friday",
		Player:    &models.Player{Name: "Ana ", Team: models.TeamB},
	})
	s.Require().Error(err)
	s.True(apperr.IsKind(err, apperr.KindDuplicate))

	s.Require().NoError(s.repo.RemoveFromGroup(s.ctx, &RemoveFromGroupInput{
		GroupName:  "Friday ",
		PlayerName: " Ana",
	}))
	s.Empty(s.listByGroup("Friday"))
}

func (s *KVRepositoryTestSuite) TestSameNameInDifferentGroups() {
	s.add("Friday", "Ana", models.TeamA)
	s.add("Saturday", "Ana", models.TeamB)

	s.Len(s.listByGroup("Friday"), 1)
	s.Len(s.listByGroup("Saturday"), 1)
}

func (s *KVRepositoryTestSuite) TestAddToGroupValidation() {
	tests := []struct {
		name  string
		input *AddToGroupInput
	}{
		{name: "nil input", input: nil},
		{name: "empty group", input: &AddToGroupInput{GroupName: " ", Player: &models.Player{Name: "Ana", Team: models.TeamA}}},
		{name: "nil player", input: &AddToGroupInput{GroupName: "Friday"}},
		{name: "empty name", input: &AddToGroupInput{GroupName: "Friday", Player: &models.Player{Name: "  ", Team: models.TeamA}}},
		{name: "unknown team", input: &AddToGroupInput{GroupName: "Friday", Player: &models.Player{Name: "Ana", Team: "Team C"}}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			err := s.repo.AddToGroup(s.ctx, tt.input)
			s.Require().Error(err)
			s.True(apperr.IsKind(err, apperr.KindValidation))
		})
	}

	s.False(s.mr.Exists("@teams:players-Friday"))
}

func (s *KVRepositoryTestSuite) TestRemoveFromGroup() {
	s.add("Friday", "Ana", models.TeamA)
	s.add("Friday", "Bea", models.TeamB)

	err := s.repo.RemoveFromGroup(s.ctx, &RemoveFromGroupInput{
		GroupName:  "Friday",
		PlayerName: "Ana",
	})
	s.Require().NoError(err)

	s.Equal([]string{"Bea"}, s.names(s.listByGroup("Friday")))
}

func (s *KVRepositoryTestSuite) TestRemoveFromGroupRemovesEveryMatch() {
	// Lists written before names were unique can hold the same name twice
	s.Require().NoError(s.mr.Set("@teams:players-Friday",
		`[{"name":"Ana","team":"Team A"},{"name":"Bea","team":"Team B"},{"name":"Ana","team":"Team B"}]`))

	err := s.repo.RemoveFromGroup(s.ctx, &RemoveFromGroupInput{
		GroupName:  "Friday",
		PlayerName: "Ana",
	})
	s.Require().NoError(err)

	s.Equal([]string{"Bea"}, s.names(s.listByGroup("Friday")))
}

func (s *KVRepositoryTestSuite) TestRemoveMissingPlayerIsNoOp() {
	s.add("Friday", "Bea", models.TeamB)
	before, err := s.mr.Get("@teams:players-Friday")
	s.Require().NoError(err)

	err = s.repo.RemoveFromGroup(s.ctx, &RemoveFromGroupInput{
		GroupName:  "Friday",
		PlayerName: "Ana",
	})
	s.Require().NoError(err)

	after, err := s.mr.Get("@teams:players-Friday")
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *KVRepositoryTestSuite) TestRemoveAllForGroup() {
	s.add("Friday", "Ana", models.TeamA)
	s.add("Friday", "Bea", models.TeamB)
	s.add("Saturday", "Cid", models.TeamA)

	err := s.repo.RemoveAllForGroup(s.ctx, &RemoveAllForGroupInput{GroupName: "Friday"})
	s.Require().NoError(err)

	s.False(s.mr.Exists("@teams:players-Friday"))
	s.Empty(s.listByGroup("Friday"))
	s.Len(s.listByGroup("Saturday"), 1)

	// Deleting an absent key succeeds
	err = s.repo.RemoveAllForGroup(s.ctx, &RemoveAllForGroupInput{GroupName: "Friday"})
	s.Require().NoError(err)
}

func (s *KVRepositoryTestSuite) TestGroupNamesWithSeparatorsDoNotCollide() {
	s.add("a-b", "Ana", models.TeamA)
	s.add("a", "Bea", models.TeamA)
	s.add("a%2Db", "Cid", models.TeamB)
	s.add("x:y *", "Dan", models.TeamB)

	s.Equal([]string{"Ana"}, s.names(s.listByGroup("a-b")))
	s.Equal([]string{"Bea"}, s.names(s.listByGroup("a")))
	s.Equal([]string{"Cid"}, s.names(s.listByGroup("a%2Db")))
	s.Equal([]string{"Dan"}, s.names(s.listByGroup("x:y *")))
}

func (s *KVRepositoryTestSuite) TestCorruptValueIsStorageError() {
	s.Require().NoError(s.mr.Set("@teams:players-Friday", "[{"))

	_, err := s.repo.ListByGroup(s.ctx, &ListByGroupInput{GroupName: "Friday"})
	s.True(apperr.IsKind(err, apperr.KindStorage))

	_, err = s.repo.ListByGroupAndTeam(s.ctx, &ListByGroupAndTeamInput{GroupName: "Friday", Team: models.TeamA})
	s.True(apperr.IsKind(err, apperr.KindStorage))

	err = s.repo.AddToGroup(s.ctx, &AddToGroupInput{
		GroupName: "Friday",
		Player:    &models.Player{Name: "Ana", Team: models.TeamA},
	})
	s.True(apperr.IsKind(err, apperr.KindStorage))
}

func (s *KVRepositoryTestSuite) TestStoreFailureIsStorageError() {
	s.mr.SetError("ERR simulated failure")

	_, err := s.repo.ListByGroup(s.ctx, &ListByGroupInput{GroupName: "Friday"})
	s.True(apperr.IsKind(err, apperr.KindStorage))

	err = s.repo.RemoveFromGroup(s.ctx, &RemoveFromGroupInput{GroupName: "Friday", PlayerName: "Ana"})
	s.True(apperr.IsKind(err, apperr.KindStorage))

	err = s.repo.RemoveAllForGroup(s.ctx, &RemoveAllForGroupInput{GroupName: "Friday"})
	s.True(apperr.IsKind(err, apperr.KindStorage))
}

func (s *KVRepositoryTestSuite) TestConcurrentAddsKeepEveryPlayer() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			team := models.TeamA
			if i%2 == 1 {
				team = models.TeamB
			}
			s.NoError(s.repo.AddToGroup(s.ctx, &AddToGroupInput{
				GroupName: "Friday",
				Player:    &models.Player{Name: fmt.Sprintf("player-%02d", i), Team: team},
			}))
		}(i)
	}
	wg.Wait()

	s.Len(s.listByGroup("Friday"), 20)
}

func TestPlayersKey(t *testing.T) {
	assert.Equal(t, "@teams:players-Friday", playersKey("Friday"))
	assert.Equal(t, "@teams:players-Friday+Night", playersKey("Friday Night"))
	assert.Equal(t, "@teams:players-a%3Ab", playersKey("a:b"))
	assert.NotEqual(t, playersKey("a-b"), playersKey("a%2Db"))
}

func TestNewKVRequiresStore(t *testing.T) {
	if _, err := NewKV(nil); err == nil {
		t.Fatal("expected nil config error")
	}
	if _, err := NewKV(&Config{}); err == nil {
		t.Fatal("expected nil store error")
	}
}
