package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"task-manager-api/internal/domain"
	"task-manager-api/internal/logger"
	"task-manager-api/internal/store"

	"github.com/google/uuid"
)

var _ store.TaskStore = (*TaskStore)(nil)

// TaskStore guards the map itself; concurrent updates of one task are last
// write wins.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]domain.Task
	order []uuid.UUID
	newID func() (uuid.UUID, error)
}

func New() *TaskStore {
	return &TaskStore{
		tasks: make(map[uuid.UUID]domain.Task),
		order: make([]uuid.UUID, 0),
		newID: uuid.NewRandom,
	}
}

func (ts *TaskStore) Create(ctx context.Context, in domain.TaskCreate) (domain.Task, error) {
	log := logger.FromContext(ctx).With("where", "store")

	id, err := ts.newID()
	if err != nil {
		return domain.Task{}, fmt.Errorf("generate task id: %w", err)
	}

	task := domain.Task{
		ID:          id,
		Title:       in.Title,
		Description: cloneString(in.Description),
		// status is not definable by user, so here we set its init value
		Status: domain.StatusCreated,
	}

	ts.mu.Lock()
	ts.tasks[id] = task
	ts.order = append(ts.order, id)
	ts.mu.Unlock()

	log.Debug("store: task created", "id", id)
	return cloneTask(task), nil
}

func (ts *TaskStore) Get(ctx context.Context, id uuid.UUID) (domain.Task, bool) {
	ts.mu.RLock()
	task, ok := ts.tasks[id]
	ts.mu.RUnlock()

	if !ok {
		logger.FromContext(ctx).With("where", "store").Debug("store: task not found", "id", id)
		return domain.Task{}, false
	}
	return cloneTask(task), true
}

func (ts *TaskStore) List(ctx context.Context) []domain.Task {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(ts.order))
	for _, id := range ts.order {
		tasks = append(tasks, cloneTask(ts.tasks[id]))
	}

	logger.FromContext(ctx).With("where", "store").Debug("store: tasks listed", "count", len(tasks))
	return tasks
}

func (ts *TaskStore) Update(ctx context.Context, id uuid.UUID, upd domain.TaskUpdate) (domain.Task, bool) {
	log := logger.FromContext(ctx).With("where", "store")

	ts.mu.Lock()
	defer ts.mu.Unlock()

	current, ok := ts.tasks[id]
	if !ok {
		log.Debug("store: task not found", "id", id)
		return domain.Task{}, false
	}

	updated := upd.Apply(cloneTask(current))
	ts.tasks[id] = updated

	log.Debug("store: task updated", "id", id, "status", updated.Status)
	return cloneTask(updated), true
}

func (ts *TaskStore) Delete(ctx context.Context, id uuid.UUID) bool {
	log := logger.FromContext(ctx).With("where", "store")

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.tasks[id]; !ok {
		log.Debug("store: task not found", "id", id)
		return false
	}

	delete(ts.tasks, id)
	if i := slices.Index(ts.order, id); i >= 0 {
		ts.order = slices.Delete(ts.order, i, i+1)
	}

	log.Debug("store: task deleted", "id", id)
	return true
}

func (ts *TaskStore) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.tasks)
}

// description is the only field behind a pointer
func cloneTask(t domain.Task) domain.Task {
	t.Description = cloneString(t.Description)
	return t
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
