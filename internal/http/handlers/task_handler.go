package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"task-manager-api/internal/domain"
	"task-manager-api/internal/http/dto"
	"task-manager-api/internal/logger"
	"task-manager-api/internal/service"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

// NotFoundDetail is the detail returned for any unknown task id.
const NotFoundDetail = "Задача не найдена"

type TaskService interface {
	CreateTask(ctx context.Context, in domain.TaskCreate) (domain.Task, error)
	GetTask(ctx context.Context, id uuid.UUID) (domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, upd domain.TaskUpdate) (domain.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type TaskHandler struct {
	taskService TaskService
}

func New(taskService TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// POST /tasks/
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	in, err := dto.DecodeCreateTask(body)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).With("where", "handler").Info("handler: task created successfully", "id", task.ID)
	writeJSON(w, http.StatusCreated, dto.NewTaskResponse(task))
}

// GET /tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskResponse(task))
}

// GET /tasks/
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskListResponse(tasks))
}

// PATCH /tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	body, ok := readBody(w, r)
	if !ok {
		return
	}

	upd, err := dto.DecodeUpdateTask(body)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, upd)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).With("where", "handler").Info("handler: task updated successfully", "id", task.ID)
	writeJSON(w, http.StatusOK, dto.NewTaskResponse(task))
}

// DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).With("where", "handler").Info("handler: task deleted successfully", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context()).With("where", "handler")

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Debug("handler: validation failed", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, dto.NewValidationErrorResponse("body", verr))
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, NotFoundDetail)
	default:
		log.Error("handler: unexpected error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func taskID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, dto.NewValidationErrorResponse("path", &domain.ValidationError{
			Fields: []domain.FieldError{{
				Location: []string{"task_id"},
				Message:  fmt.Sprintf("Input should be a valid UUID, %v", err),
				Type:     domain.ErrTypeUUIDParsing,
			}},
		}))
		return uuid.Nil, false
	}
	return id, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return nil, false
		}
		logger.FromContext(r.Context()).With("where", "handler").Debug("handler: error reading request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return body, true
}
