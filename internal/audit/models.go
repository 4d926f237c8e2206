package audit

import "time"

// Action names an audited state change.
type Action string

const (
	ActionLogin          Action = "session_login"
	ActionSignup         Action = "session_signup"
	ActionLogout         Action = "session_logout"
	ActionProfileUpdated Action = "profile_updated"
	ActionTaskCompleted  Action = "task_completed"
	ActionRewardClaimed  Action = "reward_claimed"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Outcome   string    `json:"outcome,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	// Subject is the task or reward the action applied to.
	Subject   string `json:"subject,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Device    string `json:"device,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
