package domain

import (
	"context"
	"time"
)

// TaskStatus is the lifecycle state of a daily task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Valid reports whether the status is a known lifecycle state.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// DailyTask is a per-device, per-day task instance materialized from the
// curriculum (or created ad hoc). The natural key is
// (device_id, day_number, task_type).
type DailyTask struct {
	ID          string
	DeviceID    string
	DayNumber   int
	TaskType    string
	Description string
	Status      TaskStatus
	CompletedAt *time.Time
	Notes       *string
	Metadata    map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeletedTask is the identity returned by a hard delete.
type DeletedTask struct {
	ID       string
	TaskType string
	Status   TaskStatus
}

// TaskFilter narrows ListByDevice results. Nil fields match everything.
type TaskFilter struct {
	DayNumber *int
	Status    *TaskStatus
	TaskType  *string
}

// TaskUpdate is a partial update applied to a task row. The service layer
// decides CompletedAt handling from the status transition; ClearCompletedAt
// nulls the stamp when a task reverts to pending.
type TaskUpdate struct {
	Status           *TaskStatus
	CompletedAt      *time.Time
	ClearCompletedAt bool
	Notes            *string
	Metadata         map[string]any
}

// Empty reports whether the update carries no fields.
func (u TaskUpdate) Empty() bool {
	return u.Status == nil && u.CompletedAt == nil && !u.ClearCompletedAt && u.Notes == nil && u.Metadata == nil
}

// DayProgress aggregates completion counts for a single curriculum day.
type DayProgress struct {
	DayNumber            int
	TotalTasks           int
	CompletedTasks       int
	PendingTasks         int
	CompletionPercentage float64
}

// TaskRepository captures persistence operations for daily tasks.
type TaskRepository interface {
	Create(ctx context.Context, task DailyTask) (*DailyTask, error)
	// Seed inserts the given rows in one transaction, silently skipping rows
	// whose natural key already exists.
	Seed(ctx context.Context, deviceID string, tasks []DailyTask) error
	Get(ctx context.Context, taskID string) (*DailyTask, error)
	ListByDeviceAndDay(ctx context.Context, deviceID string, dayNumber int) ([]DailyTask, error)
	ListByDevice(ctx context.Context, deviceID string, filter TaskFilter) ([]DailyTask, error)
	Update(ctx context.Context, taskID string, update TaskUpdate) (*DailyTask, error)
	Complete(ctx context.Context, taskID string, notes *string) (*DailyTask, error)
	Delete(ctx context.Context, taskID string) (*DeletedTask, error)
	ClearDevice(ctx context.Context, deviceID string) (int64, error)
	ProgressStats(ctx context.Context, deviceID string) ([]DayProgress, error)
}

// DeviceDirectory is the device collaborator consumed by the HTTP layer to
// verify a device exists before seeding or creating tasks for it.
type DeviceDirectory interface {
	DeviceExists(ctx context.Context, deviceID string) (bool, error)
}
