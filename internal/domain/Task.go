package domain

import "github.com/google/uuid"

type TaskStatus string

const (
	StatusCreated    TaskStatus = "created"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

var taskStatuses = []TaskStatus{StatusCreated, StatusInProgress, StatusCompleted}

func ParseTaskStatus(s string) (TaskStatus, bool) {
	for _, st := range taskStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s TaskStatus) Valid() bool {
	_, ok := ParseTaskStatus(string(s))
	return ok
}

// Task is the stored shape of a task. A nil Description means the task has none.
type Task struct {
	ID          uuid.UUID
	Title       string
	Description *string

	Status TaskStatus
}
