package dto

import (
	"task-manager-api/internal/domain"

	"github.com/google/uuid"
)

type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
}

func NewTaskResponse(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
	}
}

func NewTaskListResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type ValidationDetail struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
}

type ValidationErrorResponse struct {
	Detail []ValidationDetail `json:"detail"`
}

// NewValidationErrorResponse prefixes every location with where the input came
// from ("body", "path").
func NewValidationErrorResponse(source string, verr *domain.ValidationError) ValidationErrorResponse {
	out := ValidationErrorResponse{Detail: make([]ValidationDetail, 0, len(verr.Fields))}
	for _, f := range verr.Fields {
		loc := make([]string, 0, len(f.Location)+1)
		loc = append(loc, source)
		loc = append(loc, f.Location...)
		out.Detail = append(out.Detail, ValidationDetail{Type: f.Type, Loc: loc, Msg: f.Message})
	}
	return out
}

type RootResponse struct {
	Message  string `json:"message"`
	DocsURL  string `json:"docs_url"`
	RedocURL string `json:"redoc_url"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
