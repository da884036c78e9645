package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"example.com/warmup/internal/curriculum"
	"example.com/warmup/internal/domain"
)

// CreateTaskRequest is the payload for adding an ad hoc task.
type CreateTaskRequest struct {
	DeviceID        string         `json:"device_id"`
	DayNumber       int            `json:"day_number"`
	TaskType        string         `json:"task_type"`
	TaskDescription string         `json:"task_description"`
	Metadata        map[string]any `json:"metadata"`
}

// Validate checks required fields. Day range is enforced by the service.
func (r CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.DeviceID) == "" {
		return errors.New("device_id is required")
	}
	if r.DayNumber == 0 {
		return errors.New("day_number is required")
	}
	if strings.TrimSpace(r.TaskType) == "" {
		return errors.New("task_type is required")
	}
	if strings.TrimSpace(r.TaskDescription) == "" {
		return errors.New("task_description is required")
	}
	return nil
}

// UpdateTaskRequest is the partial-update payload. Absent fields are left
// untouched.
type UpdateTaskRequest struct {
	Status   *string        `json:"status"`
	Notes    *string        `json:"notes"`
	Metadata map[string]any `json:"metadata"`
}

// CompleteTaskRequest optionally attaches notes when completing a task.
type CompleteTaskRequest struct {
	Notes *string `json:"notes"`
}

// TaskView is the JSON projection of a daily task.
type TaskView struct {
	TaskID          string         `json:"task_id"`
	DeviceID        string         `json:"device_id"`
	DayNumber       int            `json:"day_number"`
	TaskType        string         `json:"task_type"`
	TaskDescription string         `json:"task_description"`
	Status          string         `json:"status"`
	CompletedAt     *time.Time     `json:"completed_at"`
	Notes           *string        `json:"notes"`
	Metadata        map[string]any `json:"metadata"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func toTaskView(task domain.DailyTask) TaskView {
	return TaskView{
		TaskID:          task.ID,
		DeviceID:        task.DeviceID,
		DayNumber:       task.DayNumber,
		TaskType:        task.TaskType,
		TaskDescription: task.Description,
		Status:          string(task.Status),
		CompletedAt:     task.CompletedAt,
		Notes:           task.Notes,
		Metadata:        task.Metadata,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

func toTaskViews(tasks []domain.DailyTask) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, toTaskView(task))
	}
	return views
}

// ListTasksResponse wraps a filtered task collection.
type ListTasksResponse struct {
	Items []TaskView `json:"items"`
	Count int        `json:"count"`
}

// DayTasksResponse wraps a single day's tasks.
type DayTasksResponse struct {
	Items []TaskView `json:"items"`
	Day   int        `json:"day"`
	Count int        `json:"count"`
}

// InitializeResponse acknowledges curriculum expansion for a device.
type InitializeResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TemplateCount int    `json:"template_count"`
}

// DeletedTaskResponse echoes the identity of a removed task.
type DeletedTaskResponse struct {
	TaskID   string `json:"task_id"`
	TaskType string `json:"task_type"`
	Status   string `json:"status"`
}

// ClearTasksResponse reports how many rows a device clear removed.
type ClearTasksResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

// DayProgressView is the per-day slice of the progress report.
type DayProgressView struct {
	DayNumber            int     `json:"day_number"`
	TotalTasks           int     `json:"total_tasks"`
	CompletedTasks       int     `json:"completed_tasks"`
	PendingTasks         int     `json:"pending_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// OverallStatsView sums completion counts across the program.
type OverallStatsView struct {
	TotalTasks        int `json:"total_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
	PendingTasks      int `json:"pending_tasks"`
	OverallPercentage int `json:"overall_percentage"`
}

// ProgressResponse is the full progress report for a device.
type ProgressResponse struct {
	DailyProgress []DayProgressView `json:"daily_progress"`
	OverallStats  OverallStatsView  `json:"overall_stats"`
}

// TemplatesResponse exposes the curriculum definition itself.
type TemplatesResponse struct {
	Templates map[int][]curriculum.TaskTemplate `json:"templates"`
	TotalDays int                               `json:"total_days"`
}

type errorBody struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, errType, detail string) {
	writeJSON(w, status, errorBody{Type: errType, Detail: detail})
}
