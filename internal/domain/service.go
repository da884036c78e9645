// Package domain defines the business logic for the warmup curriculum service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"example.com/warmup/internal/curriculum"
)

var (
	// ErrTaskNotFound is returned when a task cannot be located.
	ErrTaskNotFound = errors.New("daily task not found")
	// ErrDuplicateTask indicates a plain create collided with the
	// (device, day, type) natural key.
	ErrDuplicateTask = errors.New("task already exists for device, day and type")
	// ErrDayOutOfRange indicates a day number outside the 21-day program.
	ErrDayOutOfRange = fmt.Errorf("day number must be between 1 and %d", curriculum.TotalDays)
	// ErrNoFieldsToUpdate indicates an empty update payload.
	ErrNoFieldsToUpdate = errors.New("no valid fields to update")
	// ErrInvalidStatus indicates a status outside the pending/completed lifecycle.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrDeviceNotFound indicates the referenced device does not exist.
	ErrDeviceNotFound = errors.New("device not found")
)

// Service orchestrates curriculum expansion and task lifecycle workflows.
type Service struct {
	repo TaskRepository
}

// NewService constructs a Service.
func NewService(repo TaskRepository) *Service {
	return &Service{repo: repo}
}

// InitializeCurriculum expands the default templates into task rows for the
// device. Rows whose natural key already exists are left untouched, so the
// call is idempotent and safe to retry. Returns the number of template rows
// submitted.
func (s *Service) InitializeCurriculum(ctx context.Context, deviceID string) (int, error) {
	templates := curriculum.DefaultTasks()
	now := time.Now().UTC()

	tasks := make([]DailyTask, 0, 128)
	for day := 1; day <= curriculum.TotalDays; day++ {
		for _, tpl := range templates[day] {
			tasks = append(tasks, DailyTask{
				ID:          uuid.NewString(),
				DeviceID:    deviceID,
				DayNumber:   day,
				TaskType:    tpl.Type,
				Description: tpl.Description,
				Status:      TaskStatusPending,
				Metadata:    tpl.Metadata,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
	}

	if err := s.repo.Seed(ctx, deviceID, tasks); err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// CreateTaskInput captures the payload for an ad hoc task.
type CreateTaskInput struct {
	DeviceID    string
	DayNumber   int
	TaskType    string
	Description string
	Metadata    map[string]any
}

// CreateTask persists a single custom task for a device.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*DailyTask, error) {
	if input.DayNumber < 1 || input.DayNumber > curriculum.TotalDays {
		return nil, ErrDayOutOfRange
	}

	now := time.Now().UTC()
	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return s.repo.Create(ctx, DailyTask{
		ID:          uuid.NewString(),
		DeviceID:    input.DeviceID,
		DayNumber:   input.DayNumber,
		TaskType:    input.TaskType,
		Description: input.Description,
		Status:      TaskStatusPending,
		Metadata:    metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// GetTask fetches a task by ID.
func (s *Service) GetTask(ctx context.Context, taskID string) (*DailyTask, error) {
	task, err := s.repo.Get(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// ListTasks returns all tasks for a device, optionally filtered, ordered by
// day then task type.
func (s *Service) ListTasks(ctx context.Context, deviceID string, filter TaskFilter) ([]DailyTask, error) {
	if filter.DayNumber != nil && (*filter.DayNumber < 1 || *filter.DayNumber > curriculum.TotalDays) {
		return nil, ErrDayOutOfRange
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByDevice(ctx, deviceID, filter)
}

// ListTasksForDay returns one day's tasks for a device. The day is validated
// before any storage access.
func (s *Service) ListTasksForDay(ctx context.Context, deviceID string, dayNumber int) ([]DailyTask, error) {
	if dayNumber < 1 || dayNumber > curriculum.TotalDays {
		return nil, ErrDayOutOfRange
	}
	return s.repo.ListByDeviceAndDay(ctx, deviceID, dayNumber)
}

// CompleteTask marks a task completed, stamping completion time and replacing
// notes. Re-completing an already completed task just re-stamps it.
func (s *Service) CompleteTask(ctx context.Context, taskID string, notes *string) (*DailyTask, error) {
	task, err := s.repo.Complete(ctx, taskID, notes)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// UpdateTaskInput is the administrative partial-update payload. Status is
// restricted to the pending/completed lifecycle; moving back to pending
// clears the completion stamp.
type UpdateTaskInput struct {
	Status   *TaskStatus
	Notes    *string
	Metadata map[string]any
}

// UpdateTask applies a partial update to a task.
func (s *Service) UpdateTask(ctx context.Context, taskID string, input UpdateTaskInput) (*DailyTask, error) {
	update := TaskUpdate{Notes: input.Notes, Metadata: input.Metadata}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		update.Status = input.Status
		switch *input.Status {
		case TaskStatusCompleted:
			now := time.Now().UTC()
			update.CompletedAt = &now
		case TaskStatusPending:
			update.ClearCompletedAt = true
		}
	}
	if update.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	task, err := s.repo.Update(ctx, taskID, update)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// DeleteTask removes a task and returns its identity.
func (s *Service) DeleteTask(ctx context.Context, taskID string) (*DeletedTask, error) {
	deleted, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, ErrTaskNotFound
	}
	return deleted, nil
}

// ClearDeviceTasks removes every task belonging to the device and returns the
// number of rows deleted.
func (s *Service) ClearDeviceTasks(ctx context.Context, deviceID string) (int64, error) {
	return s.repo.ClearDevice(ctx, deviceID)
}

// OverallStats sums completion counts across all days of a device's program.
type OverallStats struct {
	TotalTasks        int
	CompletedTasks    int
	PendingTasks      int
	OverallPercentage int
}

// Progress is the derived completion snapshot for a device.
type Progress struct {
	DailyProgress []DayProgress
	OverallStats  OverallStats
}

// GetProgress recomputes per-day and overall completion statistics from
// current storage state. Days without any rows do not appear.
func (s *Service) GetProgress(ctx context.Context, deviceID string) (*Progress, error) {
	daily, err := s.repo.ProgressStats(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	var total, completed int
	for _, day := range daily {
		total += day.TotalTasks
		completed += day.CompletedTasks
	}

	overall := OverallStats{
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
	}
	if total > 0 {
		overall.OverallPercentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return &Progress{DailyProgress: daily, OverallStats: overall}, nil
}
