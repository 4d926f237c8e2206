package session_test

//go:generate mockgen -source=authenticator.go -destination=mocks/mocks.go -package=mocks Authenticator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"socialboot/internal/audit"
	"socialboot/internal/kv"
	"socialboot/internal/kv/memory"
	"socialboot/internal/platform/metrics"
	"socialboot/internal/session"
	"socialboot/internal/session/mocks"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

type StoreSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	auth     *mocks.MockAuthenticator
	kv       *memory.Store
	recorder *audit.Recorder
	store    *session.Store
	ctx      context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auth = mocks.NewMockAuthenticator(s.ctrl)
	s.kv = memory.New()
	s.recorder = audit.NewRecorder()
	s.ctx = context.Background()
	s.store = s.newStore(s.auth)
}

func (s *StoreSuite) newStore(auth session.Authenticator) *session.Store {
	return session.New(s.kv, auth,
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		session.WithMetrics(metrics.New(prometheus.NewRegistry())),
		session.WithAuditPublisher(audit.NewPublisher(s.recorder)),
	)
}

func identityFor(email string) *session.Identity {
	return &session.Identity{
		Record: session.Record{ID: session.SessionID(email), Name: "Ana Lima", Email: email, Username: "ana"},
		Token:  "token-" + email,
	}
}

func (s *StoreSuite) TestLogin() {
	s.Run("empty email or password is rejected before authenticating", func() {
		_, err := s.store.Login(s.ctx, "", "pw")
		s.Require().True(dErrors.HasCode(err, dErrors.CodeInvalidCredentials))

		_, err = s.store.Login(s.ctx, "ana@example.com", "")
		s.Require().True(dErrors.HasCode(err, dErrors.CodeInvalidCredentials))
		s.Nil(s.store.Current())
	})

	s.Run("success persists record and token", func() {
		s.auth.EXPECT().Login(gomock.Any(), "ana@example.com", "pw").Return(identityFor("ana@example.com"), nil)

		rec, err := s.store.Login(s.ctx, "ana@example.com", "pw")
		s.Require().NoError(err)
		s.Equal("ana@example.com", rec.Email)
		s.Equal(rec, s.store.Current())
		s.Equal("token-ana@example.com", s.store.Token())

		var persisted session.Record
		found, err := kv.LoadJSON(s.ctx, s.kv, kv.KeyUser, &persisted)
		s.Require().NoError(err)
		s.True(found)
		s.Equal(*rec, persisted)

		token, err := s.kv.Get(s.ctx, kv.KeyToken)
		s.Require().NoError(err)
		s.Equal("token-ana@example.com", token)
	})

	s.Run("authenticator failure leaves the prior session in place", func() {
		s.auth.EXPECT().Login(gomock.Any(), "bob@example.com", "pw").
			Return(nil, dErrors.New(dErrors.CodeRemoteAuthFailure, "User not found"))

		_, err := s.store.Login(s.ctx, "bob@example.com", "pw")
		s.Require().True(dErrors.HasCode(err, dErrors.CodeRemoteAuthFailure))
		s.Equal("User not found", dErrors.MessageOf(err))
		s.Equal("ana@example.com", s.store.Current().Email)
	})

	s.Equal(audit.OutcomeFailure, s.recorder.Events()[len(s.recorder.Events())-1].Outcome)
}

func (s *StoreSuite) TestSignup() {
	s.Run("any empty field is missing", func() {
		for _, args := range [][3]string{{"", "a@b.com", "pw"}, {"Ana", "", "pw"}, {"Ana", "a@b.com", ""}} {
			_, err := s.store.Signup(s.ctx, args[0], args[1], args[2])
			s.Require().True(dErrors.HasCode(err, dErrors.CodeMissingFields), "args %v", args)
		}
	})

	s.Run("success installs the new session", func() {
		s.auth.EXPECT().Signup(gomock.Any(), "Ana", "ana@example.com", "pw").Return(identityFor("ana@example.com"), nil)

		rec, err := s.store.Signup(s.ctx, "Ana", "ana@example.com", "pw")
		s.Require().NoError(err)
		s.Equal(session.SessionID("ana@example.com"), rec.ID)
		s.Equal([]audit.Action{audit.ActionSignup}, s.recorder.Actions())
	})
}

func (s *StoreSuite) TestLogout() {
	s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(identityFor("ana@example.com"), nil)
	_, err := s.store.Login(s.ctx, "ana@example.com", "pw")
	s.Require().NoError(err)

	s.Require().NoError(s.store.Logout(s.ctx))
	s.Nil(s.store.Current())
	s.Empty(s.store.Token())

	_, err = s.kv.Get(s.ctx, kv.KeyUser)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.kv.Get(s.ctx, kv.KeyToken)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.Logout(s.ctx), "logout is idempotent")
	s.Equal([]audit.Action{audit.ActionLogin, audit.ActionLogout}, s.recorder.Actions())
}

func (s *StoreSuite) TestUpdateProfile() {
	bio := "new bio"

	s.Run("no session is a no-op", func() {
		rec, err := s.store.UpdateProfile(s.ctx, session.ProfileUpdate{Bio: &bio})
		s.Require().NoError(err)
		s.Nil(rec)
		_, err = s.kv.Get(s.ctx, kv.KeyUser)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("merges supplied fields only", func() {
		s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(identityFor("ana@example.com"), nil)
		_, err := s.store.Login(s.ctx, "ana@example.com", "pw")
		s.Require().NoError(err)

		avatar := "data:image/png;base64,AAAA"
		rec, err := s.store.UpdateProfile(s.ctx, session.ProfileUpdate{Bio: &bio, Avatar: &avatar})
		s.Require().NoError(err)
		s.Equal("new bio", rec.Bio)
		s.Equal("Ana Lima", rec.Name)
		s.Require().NotNil(rec.Avatar)
		s.Equal(avatar, *rec.Avatar)

		rec, err = s.store.UpdateProfile(s.ctx, session.ProfileUpdate{ClearAvatar: true})
		s.Require().NoError(err)
		s.Nil(rec.Avatar)
		s.Equal("new bio", rec.Bio)
	})
}

func (s *StoreSuite) TestLoadRoundTrip() {
	s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(identityFor("ana@example.com"), nil)
	rec, err := s.store.Login(s.ctx, "ana@example.com", "pw")
	s.Require().NoError(err)
	website := "https://ana.dev"
	rec, err = s.store.UpdateProfile(s.ctx, session.ProfileUpdate{Website: &website})
	s.Require().NoError(err)

	reloaded := s.newStore(s.auth)
	s.Require().NoError(reloaded.Load(s.ctx))
	s.Equal(rec, reloaded.Current())
	s.Equal("token-ana@example.com", reloaded.Token())
}

func (s *StoreSuite) TestLoadEdgeCases() {
	s.Run("absent entry means no session", func() {
		s.Require().NoError(s.store.Load(s.ctx))
		s.Nil(s.store.Current())
	})

	s.Run("literal undefined means no session", func() {
		s.Require().NoError(s.kv.Set(s.ctx, kv.KeyUser, "undefined"))
		s.Require().NoError(s.store.Load(s.ctx))
		s.Nil(s.store.Current())
	})

	s.Run("corrupt entry is discarded", func() {
		s.Require().NoError(s.kv.Set(s.ctx, kv.KeyUser, "{broken"))
		s.Require().NoError(s.store.Load(s.ctx))
		s.Nil(s.store.Current())
		_, err := s.kv.Get(s.ctx, kv.KeyUser)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *StoreSuite) TestObserversSeeEveryChange() {
	var seen []string
	s.store.OnChange(func(_ context.Context, rec *session.Record) {
		if rec == nil {
			seen = append(seen, "")
			return
		}
		seen = append(seen, rec.ID)
	})

	s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(identityFor("ana@example.com"), nil)
	_, err := s.store.Login(s.ctx, "ana@example.com", "pw")
	s.Require().NoError(err)
	s.Require().NoError(s.store.Logout(s.ctx))
	s.Require().NoError(s.store.Load(s.ctx))

	s.Equal([]string{session.SessionID("ana@example.com"), "", ""}, seen)
}

// gatedAuthenticator blocks every call until release is closed.
type gatedAuthenticator struct {
	entered chan string
	release chan struct{}
}

func newGatedAuthenticator() *gatedAuthenticator {
	return &gatedAuthenticator{entered: make(chan string, 4), release: make(chan struct{})}
}

func (g *gatedAuthenticator) Login(ctx context.Context, email, _ string) (*session.Identity, error) {
	g.entered <- email
	select {
	case <-g.release:
		return identityFor(email), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedAuthenticator) Signup(ctx context.Context, _, email, password string) (*session.Identity, error) {
	return g.Login(ctx, email, password)
}

type loginResult struct {
	rec *session.Record
	err error
}

func (s *StoreSuite) loginAsync(store *session.Store, email string) <-chan loginResult {
	out := make(chan loginResult, 1)
	go func() {
		rec, err := store.Login(s.ctx, email, "pw")
		out <- loginResult{rec: rec, err: err}
	}()
	return out
}

func (s *StoreSuite) TestLogoutDuringPendingLoginNeverResurrects() {
	gate := newGatedAuthenticator()
	store := s.newStore(gate)

	pending := s.loginAsync(store, "ana@example.com")
	<-gate.entered

	s.Require().NoError(store.Logout(s.ctx))
	close(gate.release)

	res := <-pending
	s.Require().True(dErrors.HasCode(res.err, dErrors.CodeConflict))
	s.Nil(res.rec)
	s.Nil(store.Current())
	_, err := s.kv.Get(s.ctx, kv.KeyUser)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestNewerLoginSupersedesPendingOne() {
	gate := newGatedAuthenticator()
	store := s.newStore(gate)

	first := s.loginAsync(store, "ana@example.com")
	<-gate.entered
	second := s.loginAsync(store, "bob@example.com")
	<-gate.entered
	close(gate.release)

	r1, r2 := <-first, <-second
	s.True(dErrors.HasCode(r1.err, dErrors.CodeConflict))
	s.Require().NoError(r2.err)
	s.Equal("bob@example.com", store.Current().Email)
}

func (s *StoreSuite) TestCancelledLoginReturnsContextError() {
	gate := newGatedAuthenticator()
	store := s.newStore(gate)

	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan error, 1)
	go func() {
		_, err := store.Login(ctx, "ana@example.com", "pw")
		done <- err
	}()
	<-gate.entered
	cancel()

	s.True(errors.Is(<-done, context.Canceled))
	s.Nil(store.Current())
}

func (s *StoreSuite) TestSlowObserverEndsOnLatestState() {
	gate := newGatedAuthenticator()
	close(gate.release)
	store := s.newStore(gate)

	var (
		mu       sync.Mutex
		lastSeen *session.Record
		seen     []string
	)
	observing := make(chan struct{}, 1)
	resume := make(chan struct{})
	store.OnChange(func(_ context.Context, rec *session.Record) {
		if rec != nil {
			observing <- struct{}{}
			<-resume
		}
		mu.Lock()
		defer mu.Unlock()
		lastSeen = rec
		if rec == nil {
			seen = append(seen, "")
		} else {
			seen = append(seen, rec.ID)
		}
	})

	pending := s.loginAsync(store, "ana@example.com")
	<-observing

	loggedOut := make(chan error, 1)
	go func() { loggedOut <- store.Logout(s.ctx) }()
	s.Require().Eventually(func() bool { return store.Current() == nil }, time.Second, time.Millisecond)
	close(resume)

	s.Require().NoError((<-pending).err)
	s.Require().NoError(<-loggedOut)

	mu.Lock()
	defer mu.Unlock()
	s.Nil(store.Current())
	s.Nil(lastSeen, "observers must not keep a session the store no longer has")
	s.Equal([]string{session.SessionID("ana@example.com"), ""}, seen)
}

func (s *StoreSuite) TestSupersededChangeIsNotDelivered() {
	gate := newGatedAuthenticator()
	close(gate.release)
	store := s.newStore(gate)

	var (
		mu   sync.Mutex
		seen []string
		hold sync.Once
	)
	observing := make(chan struct{}, 1)
	resume := make(chan struct{})
	store.OnChange(func(_ context.Context, rec *session.Record) {
		if rec != nil {
			hold.Do(func() {
				observing <- struct{}{}
				<-resume
			})
		}
		mu.Lock()
		defer mu.Unlock()
		if rec == nil {
			seen = append(seen, "")
		} else {
			seen = append(seen, rec.Email)
		}
	})

	first := s.loginAsync(store, "ana@example.com")
	<-observing

	second := s.loginAsync(store, "bob@example.com")
	s.Require().Eventually(func() bool {
		rec := store.Current()
		return rec != nil && rec.Email == "bob@example.com"
	}, time.Second, time.Millisecond)

	loggedOut := make(chan error, 1)
	go func() { loggedOut <- store.Logout(s.ctx) }()
	s.Require().Eventually(func() bool { return store.Current() == nil }, time.Second, time.Millisecond)
	close(resume)

	s.Require().NoError((<-first).err)
	s.Require().NoError((<-second).err)
	s.Require().NoError(<-loggedOut)

	mu.Lock()
	defer mu.Unlock()
	s.Equal([]string{"ana@example.com", ""}, seen, "bob's session ended before it could be delivered")
}

type deleteFailingKV struct {
	*memory.Store
	failKey string
}

func (k deleteFailingKV) Delete(ctx context.Context, key string) error {
	if key == k.failKey {
		return errors.New("backend unavailable")
	}
	return k.Store.Delete(ctx, key)
}

func (s *StoreSuite) TestLogoutEndsSessionWhenStorageDeleteFails() {
	backend := deleteFailingKV{Store: s.kv, failKey: kv.KeyUser}
	store := session.New(backend, s.auth, session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	s.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(identityFor("ana@example.com"), nil)
	_, err := store.Login(s.ctx, "ana@example.com", "pw")
	s.Require().NoError(err)

	err = store.Logout(s.ctx)
	s.Require().True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Nil(store.Current())
	s.Empty(store.Token())

	_, err = s.kv.Get(s.ctx, kv.KeyToken)
	s.ErrorIs(err, sentinel.ErrNotFound, "keys that could be deleted are gone")
	_, err = s.kv.Get(s.ctx, kv.KeyUser)
	s.NoError(err, "the record that failed to delete is left for the next Load")
}
