package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker/repository"
)

func TestTaskService_CreateStampsOwner(t *testing.T) {
	svc := NewTaskService(repository.NewMemoryRepo[*tracker.Task]())
	// a client-supplied owner or id must not survive
	in := &tracker.Task{ID: "spoofed", Title: "T", Status: "open", Owner: "attacker"}
	created, err := svc.Create(context.Background(), "user-a", in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Owner != "user-a" {
		t.Fatalf("owner not stamped from requester: %q", created.Owner)
	}
	if created.ID == "" || created.ID == "spoofed" {
		t.Fatalf("expected a fresh id, got %q", created.ID)
	}
}

func TestTaskService_UpdateOwnedScoped(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(repository.NewMemoryRepo[*tracker.Task]())
	created, err := svc.Create(ctx, "user-a", &tracker.Task{Title: "T", Status: "open"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.UpdateOwned(ctx, "user-b", created.ID, &tracker.Task{Title: "T", Status: "done"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}

	updated, err := svc.UpdateOwned(ctx, "user-a", created.ID, &tracker.Task{Title: "T", Status: "done"})
	if err != nil {
		t.Fatalf("UpdateOwned error: %v", err)
	}
	if updated.Status != "done" || updated.Owner != "user-a" || updated.ID != created.ID {
		t.Fatalf("unexpected updated task: %+v", updated)
	}
}

func TestQTaskService_CreateFlattensLists(t *testing.T) {
	svc := NewQTaskService(repository.NewMemoryRepo[*tracker.QTask]())
	q, err := svc.Create(context.Background(), "user-a", QTaskInput{
		Date:          "2024-03-01",
		WorkTasks:     []string{"standup", "review"},
		PersonalTasks: []string{"gym"},
		AssignedBy:    "manager",
		Notes:         "n",
		TimeSpent:     "6h",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if q.WorkTasks != "standup, review" {
		t.Fatalf("work tasks not flattened: %q", q.WorkTasks)
	}
	if q.PersonalTasks != "gym" {
		t.Fatalf("personal tasks not flattened: %q", q.PersonalTasks)
	}
	if q.Owner != "user-a" {
		t.Fatalf("owner not stamped: %q", q.Owner)
	}

	list, err := svc.ListOwned(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("ListOwned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one qtask, got %d", len(list))
	}
}
