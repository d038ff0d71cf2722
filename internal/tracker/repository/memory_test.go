package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tracker"
)

func TestMemoryRepo_CreateAssignsID(t *testing.T) {
	repo := NewMemoryRepo[*tracker.Task]()
	task := &tracker.Task{Title: "T", Owner: "A"}
	if err := repo.Create(context.Background(), task); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.ID == "" {
		t.Fatal("expected an assigned ID")
	}
}

func TestMemoryRepo_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo[*tracker.Task]()

	a := &tracker.Task{Title: "a-task", Owner: "A"}
	b := &tracker.Task{Title: "b-task", Owner: "B"}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	listA, err := repo.ListOwned(ctx, "A")
	if err != nil {
		t.Fatalf("ListOwned error: %v", err)
	}
	if len(listA) != 1 || listA[0].Title != "a-task" {
		t.Fatalf("expected only A's task, got %+v", listA)
	}

	// owner sees own record
	got, err := repo.GetOwned(ctx, "A", a.ID)
	if err != nil {
		t.Fatalf("GetOwned error: %v", err)
	}
	if got.Title != "a-task" {
		t.Fatalf("unexpected task: %+v", got)
	}

	// another owner gets the same error as for a missing record
	_, errForeign := repo.GetOwned(ctx, "B", a.ID)
	_, errMissing := repo.GetOwned(ctx, "A", "no-such-id")
	if !errors.Is(errForeign, ErrNotFound) || !errors.Is(errMissing, ErrNotFound) {
		t.Fatalf("foreign=%v missing=%v, both must be ErrNotFound", errForeign, errMissing)
	}
}

func TestMemoryRepo_UpdateOwned(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo[*tracker.Task]()
	task := &tracker.Task{Title: "T", Status: "open", Owner: "A"}
	if err := repo.Create(ctx, task); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// foreign owner cannot update
	update := &tracker.Task{Title: "T", Status: "done", Owner: "B"}
	if err := repo.UpdateOwned(ctx, "B", task.ID, update); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign update, got %v", err)
	}

	update = &tracker.Task{Title: "T", Status: "done", Owner: "A"}
	if err := repo.UpdateOwned(ctx, "A", task.ID, update); err != nil {
		t.Fatalf("UpdateOwned error: %v", err)
	}
	got, err := repo.GetOwned(ctx, "A", task.ID)
	if err != nil {
		t.Fatalf("GetOwned error: %v", err)
	}
	if got.Status != "done" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.ID != task.ID {
		t.Fatalf("update must keep the record id, got %q", got.ID)
	}
}

func TestMemoryRepo_QTaskKind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo[*tracker.QTask]()
	q := &tracker.QTask{Date: "2024-03-01", WorkTasks: "a, b", Owner: "A"}
	if err := repo.Create(ctx, q); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	list, err := repo.ListOwned(ctx, "A")
	if err != nil {
		t.Fatalf("ListOwned error: %v", err)
	}
	if len(list) != 1 || list[0].WorkTasks != "a, b" {
		t.Fatalf("unexpected qtasks: %+v", list)
	}
}
