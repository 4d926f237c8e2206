package httptransport

import (
	"context"

	"socialboot/internal/follow"
	"socialboot/internal/notification"
	"socialboot/internal/reward"
	"socialboot/internal/session"
	"socialboot/internal/social"
	"socialboot/internal/task"
)

//go:generate mockgen -source=services.go -destination=mocks/mocks.go -package=mocks

// SessionService is the session store surface used by the session handler.
type SessionService interface {
	Current() *session.Record
	Token() string
	Login(ctx context.Context, email, password string) (*session.Record, error)
	Signup(ctx context.Context, name, email, password string) (*session.Record, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, upd session.ProfileUpdate) (*session.Record, error)
}

// SettingsService applies settings-page changes.
type SettingsService interface {
	ChangePassword(ctx context.Context, next, confirm string) error
}

type WalletService interface {
	Balance() int
	Credit(ctx context.Context, amount int) (int, error)
	Debit(ctx context.Context, amount int) (int, error)
}

type TaskService interface {
	List() []task.Task
	Acknowledge(ctx context.Context, id string) error
	UpdateProgress(ctx context.Context, category task.Category, delta int) error
}

// TaskFlows are the task operations that also credit coins or raise alerts.
type TaskFlows interface {
	CompleteTask(ctx context.Context, id string) (task.Task, error)
	Follow(ctx context.Context, userID string) error
	Unfollow(ctx context.Context, userID string) error
	UploadReels(ctx context.Context, count int) error
}

// FollowDirectory lists suggested users with their follow state.
type FollowDirectory interface {
	List(f follow.Filter) []follow.User
	Count() int
}

type NotificationService interface {
	List() []notification.Notification
	Add(ctx context.Context, n notification.Notification) error
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type RewardCatalog interface {
	List() []reward.Reward
}

type RewardClaimer interface {
	ClaimReward(ctx context.Context, id string) (reward.Reward, int, error)
}

type SocialService interface {
	List() []social.Profile
	Add(ctx context.Context, in social.Input) (social.Profile, error)
	Update(ctx context.Context, id string, in social.Input) (social.Profile, error)
	Delete(ctx context.Context, id string) error
	TotalFollowers() int
}
