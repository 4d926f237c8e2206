package httptransport

import (
	"socialboot/internal/follow"
	"socialboot/internal/reward"
	"socialboot/internal/session"
	"socialboot/internal/social"
	"socialboot/internal/task"
	"socialboot/pkg/format"
)

// SessionResponse describes the active session. Token is only set on login
// and signup responses.
type SessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	User          *session.Record `json:"user,omitempty"`
	Token         string          `json:"token,omitempty"`
}

type WalletResponse struct {
	Balance   int    `json:"balance"`
	Formatted string `json:"formatted"`
}

func toWalletResponse(balance int) WalletResponse {
	return WalletResponse{Balance: balance, Formatted: format.Number(balance)}
}

// TaskResponse is a task plus its completion percentage.
type TaskResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	Reward       int    `json:"reward"`
	Progress     int    `json:"progress"`
	Goal         int    `json:"goal"`
	Completed    bool   `json:"completed"`
	Acknowledged bool   `json:"acknowledged"`
	Percent      int    `json:"percent"`
}

func toTaskResponse(t task.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Type:         string(t.Category),
		Reward:       t.Reward,
		Progress:     t.Progress,
		Goal:         t.Goal,
		Completed:    t.Completed,
		Acknowledged: t.Acknowledged,
		Percent:      t.Percent(),
	}
}

func toTaskResponses(tasks []task.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

type ClaimResponse struct {
	Reward  reward.Reward `json:"reward"`
	Balance int           `json:"balance"`
}

type SocialProfilesResponse struct {
	Profiles       []social.Profile `json:"profiles"`
	TotalFollowers int              `json:"total_followers"`
}

// FollowersResponse is the suggested-users directory and how many are followed.
type FollowersResponse struct {
	Users     []follow.User `json:"users"`
	Following int           `json:"following"`
}
