package service

import (
	"context"
	"fmt"
	"task-manager-api/internal/domain"
	"task-manager-api/internal/logger"
	"task-manager-api/internal/store"

	"github.com/google/uuid"
)

type TaskService struct {
	store store.TaskStore
}

func New(store store.TaskStore) (*TaskService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}

	return &TaskService{store: store}, nil
}

func (s *TaskService) CreateTask(ctx context.Context, in domain.TaskCreate) (domain.Task, error) {
	log := logger.FromContext(ctx).With("where", "service")
	log.Debug("service: creating task", "title", in.Title)

	if err := in.Validate(); err != nil {
		return domain.Task{}, err
	}

	created, err := s.store.Create(ctx, in)
	if err != nil {
		return domain.Task{}, fmt.Errorf("service: error creating task: %w", err)
	}

	log.Debug("service: task created successfully", "id", created.ID)
	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error) {
	log := logger.FromContext(ctx).With("where", "service")
	log.Debug("service: getting task by id", "id", id)

	task, ok := s.store.Get(ctx, id)
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks := s.store.List(ctx)
	logger.FromContext(ctx).With("where", "service").Debug("service: tasks retrieved", "count", len(tasks))
	return tasks, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, upd domain.TaskUpdate) (domain.Task, error) {
	log := logger.FromContext(ctx).With("where", "service")
	log.Debug("service: updating task", "id", id)

	if err := upd.Validate(); err != nil {
		return domain.Task{}, err
	}

	updated, ok := s.store.Update(ctx, id, upd)
	if !ok {
		return domain.Task{}, ErrNotFound
	}

	log.Debug("service: task updated successfully", "id", id)
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx).With("where", "service")
	log.Debug("service: deleting task", "id", id)

	if !s.store.Delete(ctx, id) {
		return ErrNotFound
	}
	return nil
}
