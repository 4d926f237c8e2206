package social

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"socialboot/internal/kv"
	"socialboot/internal/kv/memory"
	dErrors "socialboot/pkg/domain-errors"
)

type SocialSuite struct {
	suite.Suite
	kv    *memory.Store
	store *Store
	ctx   context.Context
	seq   int
}

func TestSocialSuite(t *testing.T) {
	suite.Run(t, new(SocialSuite))
}

func (s *SocialSuite) SetupTest() {
	s.kv = memory.New()
	s.ctx = context.Background()
	s.seq = 0
	s.store = New(s.kv,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithIDGenerator(func() string {
			s.seq++
			return fmt.Sprintf("p%d", s.seq)
		}),
	)
}

func validInput() Input {
	return Input{Platform: PlatformInstagram, Username: "ana", URL: "https://instagram.com/ana", Followers: 1200}
}

func (s *SocialSuite) TestRequiresSession() {
	_, err := s.store.Add(s.ctx, validInput())
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.Empty(s.store.List())
}

func (s *SocialSuite) TestValidation() {
	s.Require().NoError(s.store.OnSessionChanged(s.ctx, "s1"))
	cases := map[string]func(*Input){
		"missing platform": func(in *Input) { in.Platform = "" },
		"unknown platform": func(in *Input) { in.Platform = "myspace" },
		"missing username": func(in *Input) { in.Username = "" },
		"missing url":      func(in *Input) { in.URL = "" },
		"bad url":          func(in *Input) { in.URL = "instagram.com/ana" },
		"negative count":   func(in *Input) { in.Followers = -1 },
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			in := validInput()
			mutate(&in)
			_, err := s.store.Add(s.ctx, in)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func (s *SocialSuite) TestCRUDScopedBySession() {
	s.Require().NoError(s.store.OnSessionChanged(s.ctx, "s1"))

	p, err := s.store.Add(s.ctx, validInput())
	s.Require().NoError(err)
	s.Equal("p1", p.ID)
	s.Equal("s1", p.UserID)

	in := validInput()
	in.Platform = PlatformYouTube
	in.URL = "https://youtube.com/@ana"
	_, err = s.store.Add(s.ctx, in)
	s.Require().NoError(err)
	s.Equal(2400, s.store.TotalFollowers())

	in.Followers = 5000
	updated, err := s.store.Update(s.ctx, "p2", in)
	s.Require().NoError(err)
	s.Equal(5000, updated.Followers)

	_, err = s.store.Update(s.ctx, "missing", in)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	s.Require().NoError(s.store.Delete(s.ctx, "p1"))
	s.Require().NoError(s.store.Delete(s.ctx, "p1"))
	s.Len(s.store.List(), 1)

	s.Require().NoError(s.store.OnSessionChanged(s.ctx, "s2"))
	s.Empty(s.store.List(), "another session sees its own profiles")

	s.Require().NoError(s.store.OnSessionChanged(s.ctx, "s1"))
	s.Require().Len(s.store.List(), 1)
	s.Equal("p2", s.store.List()[0].ID)

	s.Require().NoError(s.store.OnSessionChanged(s.ctx, ""))
	s.Empty(s.store.List())
}

func (s *SocialSuite) TestCorruptEntryIsDiscarded() {
	s.Require().NoError(s.kv.Set(s.ctx, kv.SocialProfilesKey("s1"), "nope"))
	s.Require().NoError(s.store.OnSessionChanged(s.ctx, "s1"))
	s.Empty(s.store.List())
	s.NotContains(s.kv.Keys(), kv.SocialProfilesKey("s1"))
}
