package memory

import (
	"context"
	"errors"
	"sync"
	"task-manager-api/internal/domain"
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestTaskStore_CreateAndGet(t *testing.T) {
	ts := New()
	ctx := context.Background()

	in := domain.TaskCreate{
		Title:       "t1",
		Description: strPtr("d1"),
	}

	created, err := ts.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create() err = %v, want nil", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Create() returned nil id")
	}
	if created.ID.Version() != 4 {
		t.Fatalf("Create() id version = %d, want 4", created.ID.Version())
	}
	if created.Status != domain.StatusCreated {
		t.Fatalf("Create() status = %s, want %s", created.Status, domain.StatusCreated)
	}

	got, ok := ts.Get(ctx, created.ID)
	if !ok {
		t.Fatal("Get() ok = false, want ok = true")
	}
	if got.ID != created.ID || got.Title != in.Title || got.Description == nil || *got.Description != "d1" {
		t.Fatalf("Get() returned unexpected task: %+v", got)
	}
}

func TestTaskStore_Create_IDFailure(t *testing.T) {
	ts := New()
	ts.newID = func() (uuid.UUID, error) { return uuid.Nil, errors.New("entropy exhausted") }

	if _, err := ts.Create(context.Background(), domain.TaskCreate{Title: "t"}); err == nil {
		t.Fatal("Create() err = nil, want non-nil")
	}
	if ts.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", ts.Len())
	}
}

func TestTaskStore_Get_NotFound(t *testing.T) {
	ts := New()

	_, ok := ts.Get(context.Background(), uuid.New())
	if ok {
		t.Fatal("Get() ok = true, want ok = false")
	}
}

func TestTaskStore_List_InsertionOrder(t *testing.T) {
	ts := New()
	ctx := context.Background()

	if list := ts.List(ctx); list == nil || len(list) != 0 {
		t.Fatalf("List() on empty store = %#v, want empty non-nil slice", list)
	}

	t1, _ := ts.Create(ctx, domain.TaskCreate{Title: "t1"})
	t2, _ := ts.Create(ctx, domain.TaskCreate{Title: "t2"})
	t3, _ := ts.Create(ctx, domain.TaskCreate{Title: "t3"})

	list := ts.List(ctx)
	if len(list) != 3 {
		t.Fatalf("List() len = %d, want 3", len(list))
	}
	for i, want := range []uuid.UUID{t1.ID, t2.ID, t3.ID} {
		if list[i].ID != want {
			t.Fatalf("List()[%d].ID = %s, want %s", i, list[i].ID, want)
		}
	}

	ts.Delete(ctx, t2.ID)
	list = ts.List(ctx)
	if len(list) != 2 || list[0].ID != t1.ID || list[1].ID != t3.ID {
		t.Fatalf("List() after delete = %+v", list)
	}
}

func TestTaskStore_Update_Partial(t *testing.T) {
	ts := New()
	ctx := context.Background()

	created, _ := ts.Create(ctx, domain.TaskCreate{Title: "t", Description: strPtr("d")})

	updated, ok := ts.Update(ctx, created.ID, domain.TaskUpdate{Status: domain.Some(domain.StatusInProgress)})
	if !ok {
		t.Fatal("Update() ok = false, want true")
	}
	if updated.Status != domain.StatusInProgress {
		t.Fatalf("Update() status = %s, want %s", updated.Status, domain.StatusInProgress)
	}
	if updated.Title != "t" || updated.Description == nil || *updated.Description != "d" {
		t.Fatalf("Update() touched other fields: %+v", updated)
	}

	got, _ := ts.Get(ctx, created.ID)
	if got.Status != domain.StatusInProgress {
		t.Fatalf("Get() status = %s, want %s", got.Status, domain.StatusInProgress)
	}

	updated, _ = ts.Update(ctx, created.ID, domain.TaskUpdate{Description: domain.Null[string]()})
	if updated.Description != nil {
		t.Fatalf("Update() description = %q, want nil", *updated.Description)
	}
	if updated.Status != domain.StatusInProgress {
		t.Fatalf("Update() status = %s, want %s", updated.Status, domain.StatusInProgress)
	}
}

func TestTaskStore_Update_NotFound(t *testing.T) {
	ts := New()

	_, ok := ts.Update(context.Background(), uuid.New(), domain.TaskUpdate{Title: domain.Some("x")})
	if ok {
		t.Fatal("Update() ok = true, want false")
	}
}

func TestTaskStore_Delete(t *testing.T) {
	ts := New()
	ctx := context.Background()

	created, _ := ts.Create(ctx, domain.TaskCreate{Title: "t"})

	if !ts.Delete(ctx, created.ID) {
		t.Fatal("Delete() = false, want true")
	}
	if _, ok := ts.Get(ctx, created.ID); ok {
		t.Fatal("Get() after Delete ok = true, want false")
	}
	if ts.Delete(ctx, created.ID) {
		t.Fatal("second Delete() = true, want false")
	}
}

func TestTaskStore_ReturnsCopies(t *testing.T) {
	ts := New()
	ctx := context.Background()

	created, _ := ts.Create(ctx, domain.TaskCreate{Title: "t", Description: strPtr("d")})
	*created.Description = "mutated"

	got, _ := ts.Get(ctx, created.ID)
	if *got.Description != "d" {
		t.Fatalf("stored description = %q, want %q", *got.Description, "d")
	}
}

func TestTaskStore_ConcurrentCreate(t *testing.T) {
	ts := New()
	ctx := context.Background()

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, _ = ts.Create(ctx, domain.TaskCreate{Title: "x"})
		}()
	}

	wg.Wait()

	list := ts.List(ctx)
	if len(list) != n {
		t.Fatalf("List() len = %d, want %d", len(list), n)
	}

	seen := make(map[uuid.UUID]struct{}, n)
	for _, task := range list {
		if _, dup := seen[task.ID]; dup {
			t.Fatalf("duplicate id %s", task.ID)
		}
		seen[task.ID] = struct{}{}
	}
}

func TestTaskStore_ConcurrentUpdateAndDelete(t *testing.T) {
	ts := New()
	ctx := context.Background()

	created, _ := ts.Create(ctx, domain.TaskCreate{Title: "x"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ts.Update(ctx, created.ID, domain.TaskUpdate{Status: domain.Some(domain.StatusCompleted)})
		}()
		go func() {
			defer wg.Done()
			ts.List(ctx)
		}()
	}
	wg.Wait()

	if !ts.Delete(ctx, created.ID) {
		t.Fatal("Delete() = false, want true")
	}
	if ts.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", ts.Len())
	}
}
