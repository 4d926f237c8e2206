package httptransport

import (
	"strings"

	"socialboot/internal/notification"
	"socialboot/internal/session"
	"socialboot/internal/social"
	"socialboot/internal/task"
	dErrors "socialboot/pkg/domain-errors"
)

// LoginRequest is the body of POST /api/session/login. Emptiness is checked
// by the session store so the error code matches every other caller.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return nil
}

// SignupRequest is the body of POST /api/session/signup.
type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *SignupRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.Password != r.ConfirmPassword {
		return dErrors.New(dErrors.CodePasswordMismatch, "Passwords do not match")
	}
	return nil
}

// ProfileRequest is the body of PATCH /api/session/profile. Absent fields are
// left untouched.
type ProfileRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Username    *string `json:"username"`
	Bio         *string `json:"bio"`
	Website     *string `json:"website"`
	Avatar      *string `json:"avatar"`
	ClearAvatar bool    `json:"clear_avatar"`
}

func (r *ProfileRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "name must not be empty")
	}
	if r.Email != nil && !strings.Contains(*r.Email, "@") {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	if r.Avatar != nil && r.ClearAvatar {
		return dErrors.New(dErrors.CodeValidation, "avatar and clear_avatar are mutually exclusive")
	}
	return nil
}

func (r *ProfileRequest) toUpdate() session.ProfileUpdate {
	return session.ProfileUpdate{
		Name:        r.Name,
		Email:       r.Email,
		Username:    r.Username,
		Bio:         r.Bio,
		Website:     r.Website,
		Avatar:      r.Avatar,
		ClearAvatar: r.ClearAvatar,
	}
}

// PasswordRequest is the body of POST /api/session/password. The current
// password is accepted but not checked; credentials live with the authenticator.
type PasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AmountRequest is the body of the wallet credit and debit endpoints.
type AmountRequest struct {
	Amount int `json:"amount"`
}

func (r *AmountRequest) Validate() error {
	if r.Amount < 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must not be negative")
	}
	return nil
}

// ProgressRequest is the body of POST /api/tasks/progress.
type ProgressRequest struct {
	Category string `json:"category"`
	Delta    int    `json:"delta"`

	category task.Category
}

func (r *ProgressRequest) Validate() error {
	r.category = task.Category(strings.TrimSpace(r.Category))
	if !r.category.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "category must be upload-reels or get-followers")
	}
	return nil
}

// FollowRequest is the body of the follow and unfollow endpoints. UserID is
// a directory user id as listed by GET /api/followers.
type FollowRequest struct {
	UserID string `json:"user_id"`
}

func (r *FollowRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	if r.UserID == "" {
		return dErrors.New(dErrors.CodeValidation, "user_id is required")
	}
	return nil
}

// UploadRequest is the body of POST /api/uploads. Count zero is passed through
// so the upload flow can raise its "No Files Selected" alert.
type UploadRequest struct {
	Count int `json:"count"`
}

func (r *UploadRequest) Validate() error {
	if r.Count < 0 {
		return dErrors.New(dErrors.CodeValidation, "count must not be negative")
	}
	return nil
}

// NotificationRequest is the body of POST /api/notifications.
type NotificationRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
}

func (r *NotificationRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if !notification.Severity(r.Type).IsValid() {
		return dErrors.New(dErrors.CodeValidation, "type must be one of success, error, info, warning")
	}
	return nil
}

func (r *NotificationRequest) toNotification() notification.Notification {
	return notification.Notification{
		ID:        r.ID,
		Title:     r.Title,
		Message:   r.Message,
		Severity:  notification.Severity(r.Type),
		Timestamp: r.Timestamp,
	}
}

// SocialProfileRequest is the body of the social profile create and update
// endpoints. Form rules are applied by social.Input.Validate in the store.
type SocialProfileRequest struct {
	Platform  string `json:"platform"`
	Username  string `json:"username"`
	URL       string `json:"url"`
	Followers int    `json:"followers"`
}

func (r *SocialProfileRequest) toInput() social.Input {
	return social.Input{
		Platform:  social.Platform(strings.ToLower(strings.TrimSpace(r.Platform))),
		Username:  strings.TrimSpace(r.Username),
		URL:       strings.TrimSpace(r.URL),
		Followers: r.Followers,
	}
}
