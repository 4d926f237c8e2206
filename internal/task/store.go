// Package task keeps the global task list and its progress.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"socialboot/internal/kv"
	"socialboot/internal/platform/metrics"
	dErrors "socialboot/pkg/domain-errors"
	"socialboot/pkg/platform/sentinel"
)

// Store owns the task list. Every mutation persists the whole list before
// it is applied in memory.
type Store struct {
	kv      kv.Store
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu    sync.RWMutex
	tasks []Task
}

type Option func(s *Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New constructs a Store seeded with Defaults. Call Load to rehydrate.
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{kv: store, logger: slog.Default(), tasks: Defaults()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted list. Absent or unreadable lists are replaced by
// Defaults, which are persisted.
func (s *Store) Load(ctx context.Context) error {
	var tasks []Task
	found, err := kv.LoadJSON(ctx, s.kv, kv.KeyTasks, &tasks)
	if err != nil && !errors.Is(err, sentinel.ErrCorrupt) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load tasks")
	}
	if err == nil && found {
		err = validateAll(tasks)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "discarding corrupt task list",
			"key", kv.KeyTasks,
			"error", err,
		)
		s.metrics.IncCorruption("task")
		found = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if found {
		s.tasks = tasks
		return nil
	}
	return s.commit(ctx, Defaults())
}

func validateAll(tasks []Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if err := t.validate(); err != nil {
			return fmt.Errorf("%w: %v", sentinel.ErrCorrupt, err)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate task id %s", sentinel.ErrCorrupt, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// List returns a copy of all tasks in stored order.
func (s *Store) List() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Task{}, s.tasks...)
}

// Get returns the task with id.
func (s *Store) Get(id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, dErrors.New(dErrors.CodeNotFound, "task not found")
	}
	return s.tasks[i], nil
}

// Complete latches the completed flag. It fails with CodeGoalNotMet while
// progress is below the goal and reports whether the latch flipped.
func (s *Store) Complete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false, dErrors.New(dErrors.CodeNotFound, "task not found")
	}
	current := s.tasks[i]
	if current.Completed {
		return false, nil
	}
	if !current.GoalReached() {
		return false, dErrors.New(dErrors.CodeGoalNotMet,
			fmt.Sprintf("task progress %d has not reached goal %d", current.Progress, current.Goal))
	}
	next := s.snapshot()
	next[i].Completed = true
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	s.metrics.IncTaskCompleted()
	return true, nil
}

// Acknowledge latches the acknowledged flag.
func (s *Store) Acknowledge(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return dErrors.New(dErrors.CodeNotFound, "task not found")
	}
	if s.tasks[i].Acknowledged {
		return nil
	}
	next := s.snapshot()
	next[i].Acknowledged = true
	return s.commit(ctx, next)
}

// UpdateProgress adds delta to every task in category, clamped to [0, goal].
// The step itself is clamped so extreme deltas saturate instead of overflowing.
func (s *Store) UpdateProgress(ctx context.Context, category Category, delta int) error {
	if !category.IsValid() {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("unknown task category %q", category))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.snapshot()
	for i := range next {
		if next[i].Category == category {
			p := next[i].Progress
			next[i].Progress = p + clamp(delta, -p, next[i].Goal-p)
		}
	}
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.metrics.IncTaskProgress(string(category))
	return nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []Task {
	return append([]Task{}, s.tasks...)
}

// commit persists next then applies it. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next []Task) error {
	if err := kv.SaveJSON(ctx, s.kv, kv.KeyTasks, next); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist tasks")
	}
	s.tasks = next
	return nil
}
