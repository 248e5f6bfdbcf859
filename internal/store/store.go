package store

import (
	"context"
	"task-manager-api/internal/domain"

	"github.com/google/uuid"
)

// TaskStore keeps tasks for the lifetime of the process. Absence is reported
// through the bool results, never as an error.
type TaskStore interface {
	Create(ctx context.Context, in domain.TaskCreate) (domain.Task, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Task, bool)
	List(ctx context.Context) []domain.Task
	Update(ctx context.Context, id uuid.UUID, upd domain.TaskUpdate) (domain.Task, bool)
	Delete(ctx context.Context, id uuid.UUID) bool
	Len() int
}
