package follow

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"socialboot/internal/kv"
	"socialboot/internal/kv/memory"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

type FollowSuite struct {
	suite.Suite
	kv    *memory.Store
	store *Store
	ctx   context.Context
}

func TestFollowSuite(t *testing.T) {
	suite.Run(t, new(FollowSuite))
}

func (s *FollowSuite) SetupTest() {
	s.kv = memory.New()
	s.ctx = context.Background()
	s.store = s.newStore()
	s.Require().NoError(s.store.Load(s.ctx))
}

func (s *FollowSuite) newStore() *Store {
	return New(s.kv, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func ids(users []User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func (s *FollowSuite) TestFollowOnlyCountsTransitions() {
	u, changed, err := s.store.Follow(s.ctx, "1")
	s.Require().NoError(err)
	s.True(changed)
	s.True(u.IsFollowing)
	s.Equal("Emma Watson", u.Name)

	for range 9 {
		_, changed, err = s.store.Follow(s.ctx, "1")
		s.Require().NoError(err)
		s.False(changed)
	}
	s.Equal(1, s.store.Count())

	var persisted []string
	found, err := kv.LoadJSON(s.ctx, s.kv, kv.KeyFollowing, &persisted)
	s.Require().NoError(err)
	s.True(found)
	s.Equal([]string{"1"}, persisted)
}

func (s *FollowSuite) TestUnfollowRequiresAFollow() {
	_, changed, err := s.store.Unfollow(s.ctx, "2")
	s.Require().NoError(err)
	s.False(changed)

	_, _, err = s.store.Follow(s.ctx, "2")
	s.Require().NoError(err)
	u, changed, err := s.store.Unfollow(s.ctx, "2")
	s.Require().NoError(err)
	s.True(changed)
	s.False(u.IsFollowing)
	s.Zero(s.store.Count())
}

func (s *FollowSuite) TestUnknownUser() {
	_, _, err := s.store.Follow(s.ctx, "alice")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	_, _, err = s.store.Unfollow(s.ctx, "alice")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Zero(s.store.Count())
}

func (s *FollowSuite) TestListFilters() {
	s.Len(s.store.List(Filter{}), 6)
	s.Equal([]string{"1", "3", "5"}, ids(s.store.List(Filter{FollowsYou: true})))
	s.Equal([]string{"3"}, ids(s.store.List(Filter{Query: "CHEN"})))
	s.Equal([]string{"6"}, ids(s.store.List(Filter{Query: "@danielk"})))
	s.Empty(s.store.List(Filter{Query: "james", FollowsYou: true}), "james does not follow back")
	s.Empty(s.store.List(Filter{Query: "nobody"}))

	_, _, err := s.store.Follow(s.ctx, "3")
	s.Require().NoError(err)
	listed := s.store.List(Filter{Query: "sophia"})
	s.Require().Len(listed, 1)
	s.True(listed[0].IsFollowing)
}

func (s *FollowSuite) TestLoadRoundTrip() {
	_, _, err := s.store.Follow(s.ctx, "4")
	s.Require().NoError(err)
	_, _, err = s.store.Follow(s.ctx, "1")
	s.Require().NoError(err)

	reloaded := s.newStore()
	s.Require().NoError(reloaded.Load(s.ctx))
	s.Equal(2, reloaded.Count())
	s.Equal(s.store.List(Filter{}), reloaded.List(Filter{}))
}

func (s *FollowSuite) TestLoadEdgeCases() {
	s.Run("unknown ids are dropped", func() {
		s.Require().NoError(s.kv.Set(s.ctx, kv.KeyFollowing, `["2","ghost"]`))
		s.Require().NoError(s.store.Load(s.ctx))
		s.Equal(1, s.store.Count())
	})

	s.Run("corrupt entry is discarded", func() {
		s.Require().NoError(s.kv.Set(s.ctx, kv.KeyFollowing, "{nope"))
		s.Require().NoError(s.store.Load(s.ctx))
		s.Zero(s.store.Count())
		_, err := s.kv.Get(s.ctx, kv.KeyFollowing)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}
