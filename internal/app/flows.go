package app

import (
	"context"
	"fmt"

	"socialboot/internal/audit"
	"socialboot/internal/notification"
	"socialboot/internal/reward"
	"socialboot/internal/session"
	"socialboot/internal/task"
	dErrors "socialboot/pkg/domain-errors"
)

// CompleteTask completes task id, credits its reward the first time and
// announces it.
func (a *App) CompleteTask(ctx context.Context, id string) (task.Task, error) {
	changed, err := a.Tasks.Complete(ctx, id)
	if err != nil {
		return task.Task{}, err
	}
	t, err := a.Tasks.Get(id)
	if err != nil {
		return task.Task{}, err
	}
	if !changed {
		return t, nil
	}

	if _, err := a.Wallet.Credit(ctx, t.Reward); err != nil {
		return t, err
	}
	a.notify(ctx, notification.SeveritySuccess, "Task Completed!",
		fmt.Sprintf("You earned %d coins for completing your task!", t.Reward))
	a.emit(ctx, audit.Event{Action: audit.ActionTaskCompleted, Outcome: audit.OutcomeSuccess, Subject: t.ID})
	return t, nil
}

// Follow follows directory user userID. Only a real transition moves the
// follower task; following someone already followed changes nothing.
func (a *App) Follow(ctx context.Context, userID string) error {
	u, changed, err := a.Following.Follow(ctx, userID)
	if err != nil || !changed {
		return err
	}
	if err := a.Tasks.UpdateProgress(ctx, task.CategoryGetFollowers, 1); err != nil {
		a.revertFollow(ctx, userID, false)
		return err
	}
	a.notify(ctx, notification.SeveritySuccess, "New Follow",
		fmt.Sprintf("You're now following %s", u.Name))
	return nil
}

// Unfollow reverts a follow of userID. Unfollowing someone not followed
// changes nothing.
func (a *App) Unfollow(ctx context.Context, userID string) error {
	u, changed, err := a.Following.Unfollow(ctx, userID)
	if err != nil || !changed {
		return err
	}
	if err := a.Tasks.UpdateProgress(ctx, task.CategoryGetFollowers, -1); err != nil {
		a.revertFollow(ctx, userID, true)
		return err
	}
	a.notify(ctx, notification.SeverityInfo, "Unfollowed",
		fmt.Sprintf("You've unfollowed %s", u.Name))
	return nil
}

// revertFollow restores the followed flag after the task update failed.
func (a *App) revertFollow(ctx context.Context, userID string, following bool) {
	var err error
	if following {
		_, _, err = a.Following.Follow(ctx, userID)
	} else {
		_, _, err = a.Following.Unfollow(ctx, userID)
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to revert follow state",
			"user_id", userID,
			"error", err,
		)
	}
}

// UploadReels advances the upload task by count.
func (a *App) UploadReels(ctx context.Context, count int) error {
	if count < 0 {
		return dErrors.New(dErrors.CodeValidation, "count must not be negative")
	}
	if count == 0 {
		a.notify(ctx, notification.SeverityError, "No Files Selected",
			"Please select at least one video to upload.")
		return dErrors.New(dErrors.CodeValidation, "Please select at least one video to upload.")
	}
	if err := a.Tasks.UpdateProgress(ctx, task.CategoryUploadReels, count); err != nil {
		return err
	}
	noun := "reels"
	if count == 1 {
		noun = "reel"
	}
	a.notify(ctx, notification.SeveritySuccess, "Upload Complete",
		fmt.Sprintf("Successfully uploaded %d %s.", count, noun))
	return nil
}

// ClaimReward spends coins on reward id and returns the remaining balance.
func (a *App) ClaimReward(ctx context.Context, id string) (reward.Reward, int, error) {
	r, err := a.Rewards.Get(id)
	if err != nil {
		return reward.Reward{}, 0, err
	}
	rec := a.Session.Current()
	if rec == nil {
		return r, 0, dErrors.New(dErrors.CodeUnauthorized, "no active session")
	}

	balance := a.Wallet.Balance()
	if balance < r.Cost {
		msg := fmt.Sprintf("You need %d more coins to claim this reward.", r.Cost-balance)
		a.notify(ctx, notification.SeverityError, "Insufficient Coins", msg)
		a.emit(ctx, audit.Event{Action: audit.ActionRewardClaimed, Outcome: audit.OutcomeFailure,
			SessionID: rec.ID, Subject: r.ID, Reason: "insufficient coins"})
		return r, balance, dErrors.New(dErrors.CodeInsufficientFunds, msg)
	}

	balance, err = a.Wallet.Debit(ctx, r.Cost)
	if err != nil {
		return r, 0, err
	}
	a.notify(ctx, notification.SeveritySuccess, "Reward Claimed!",
		fmt.Sprintf("You've successfully claimed %s", r.Title))
	a.emit(ctx, audit.Event{Action: audit.ActionRewardClaimed, Outcome: audit.OutcomeSuccess,
		SessionID: rec.ID, Subject: r.ID})
	return r, balance, nil
}

// ChangePassword validates a settings-page password change and, when the
// authenticator keeps local credentials, stores the new password. The outcome
// is announced either way.
func (a *App) ChangePassword(ctx context.Context, next, confirm string) error {
	rec := a.Session.Current()
	if rec == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "no active session")
	}
	if err := session.ValidatePasswordChange(next, confirm); err != nil {
		a.notify(ctx, notification.SeverityError, "Error", dErrors.MessageOf(err))
		return err
	}
	if a.passwords != nil {
		if err := a.passwords.SetPassword(ctx, rec.Email, next); err != nil {
			a.notify(ctx, notification.SeverityError, "Error", "Your password could not be updated")
			return err
		}
	}
	a.notify(ctx, notification.SeveritySuccess, "Settings Updated",
		"Your settings have been successfully updated")
	return nil
}

// notify adds an alert; failures are logged since the primary change already happened.
func (a *App) notify(ctx context.Context, severity notification.Severity, title, message string) {
	err := a.Notifications.Add(ctx, notification.Notification{
		ID:       a.newID(),
		Title:    title,
		Message:  message,
		Severity: severity,
	})
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to add notification",
			"title", title,
			"error", err,
		)
	}
}

func (a *App) emit(ctx context.Context, event audit.Event) {
	if a.audit == nil {
		return
	}
	if event.SessionID == "" {
		if rec := a.Session.Current(); rec != nil {
			event.SessionID = rec.ID
		}
	}
	if err := a.audit.Emit(ctx, event); err != nil {
		a.logger.ErrorContext(ctx, "failed to emit audit event",
			"action", event.Action,
			"error", err,
		)
	}
}
