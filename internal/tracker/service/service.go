package service

import (
	"context"
	"strings"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker/repository"
)

// ErrNotFound mirrors the repository sentinel for handler convenience.
var ErrNotFound = repository.ErrNotFound

// TaskService implements the owner-scoped task operations. Ownership is
// stamped from the authenticated user; field validation stays with the
// caller.
type TaskService struct {
	repo repository.Repo[*tracker.Task]
}

func NewTaskService(r repository.Repo[*tracker.Task]) *TaskService {
	return &TaskService{repo: r}
}

func (s *TaskService) Create(ctx context.Context, owner string, t *tracker.Task) (*tracker.Task, error) {
	t.ID = ""
	t.Owner = owner
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) ListOwned(ctx context.Context, owner string) ([]*tracker.Task, error) {
	return s.repo.ListOwned(ctx, owner)
}

func (s *TaskService) GetOwned(ctx context.Context, owner, id string) (*tracker.Task, error) {
	return s.repo.GetOwned(ctx, owner, id)
}

func (s *TaskService) UpdateOwned(ctx context.Context, owner, id string, t *tracker.Task) (*tracker.Task, error) {
	t.Owner = owner
	if err := s.repo.UpdateOwned(ctx, owner, id, t); err != nil {
		return nil, err
	}
	return t, nil
}

// QTaskInput carries the quick-task fields as submitted; the two task
// lists are flattened at create time.
type QTaskInput struct {
	Date          string
	WorkTasks     []string
	PersonalTasks []string
	AssignedBy    string
	Notes         string
	TimeSpent     string
}

// QTaskService implements quick-task creation and listing. QTasks have no
// update or delete operations.
type QTaskService struct {
	repo repository.Repo[*tracker.QTask]
}

func NewQTaskService(r repository.Repo[*tracker.QTask]) *QTaskService {
	return &QTaskService{repo: r}
}

func (s *QTaskService) Create(ctx context.Context, owner string, in QTaskInput) (*tracker.QTask, error) {
	q := &tracker.QTask{
		Date:          in.Date,
		WorkTasks:     strings.Join(in.WorkTasks, ", "),
		PersonalTasks: strings.Join(in.PersonalTasks, ", "),
		AssignedBy:    in.AssignedBy,
		Notes:         in.Notes,
		TimeSpent:     in.TimeSpent,
		Owner:         owner,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QTaskService) ListOwned(ctx context.Context, owner string) ([]*tracker.QTask, error) {
	return s.repo.ListOwned(ctx, owner)
}
