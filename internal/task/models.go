package task

import (
	"fmt"

	"socialboot/pkg/format"
)

// Category groups tasks that advance together.
type Category string

const (
	CategoryUploadReels  Category = "upload-reels"
	CategoryGetFollowers Category = "get-followers"
)

func (c Category) IsValid() bool {
	return c == CategoryUploadReels || c == CategoryGetFollowers
}

// Task is a gamified goal. Progress stays within [0, Goal]; Completed and
// Acknowledged only ever go from false to true.
type Task struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     Category `json:"type"`
	Reward       int      `json:"reward"`
	Progress     int      `json:"progress"`
	Goal         int      `json:"goal"`
	Completed    bool     `json:"completed"`
	Acknowledged bool     `json:"acknowledged"`
}

// Percent is progress as a whole percentage of the goal, capped at 100.
func (t Task) Percent() int {
	return format.Percent(t.Progress, t.Goal)
}

// GoalReached reports whether the task may be completed.
func (t Task) GoalReached() bool {
	return t.Progress >= t.Goal
}

func (t Task) validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("task id is empty")
	case !t.Category.IsValid():
		return fmt.Errorf("task %s: unknown category %q", t.ID, t.Category)
	case t.Goal <= 0:
		return fmt.Errorf("task %s: goal must be positive", t.ID)
	case t.Reward < 0:
		return fmt.Errorf("task %s: reward must not be negative", t.ID)
	case t.Progress < 0 || t.Progress > t.Goal:
		return fmt.Errorf("task %s: progress %d outside [0, %d]", t.ID, t.Progress, t.Goal)
	}
	return nil
}

// Defaults is the task list a fresh install starts with.
func Defaults() []Task {
	return []Task{
		{
			ID:          "1",
			Title:       "Upload 10 Reels",
			Description: "Create and upload 10 engaging short videos",
			Category:    CategoryUploadReels,
			Reward:      200,
			Goal:        10,
		},
		{
			ID:           "2",
			Title:        "Get 10 Followers",
			Description:  "Follow other users who will follow you back",
			Category:     CategoryGetFollowers,
			Reward:       150,
			Goal:         10,
			Acknowledged: true,
		},
	}
}
