// Package events defines the event payloads published by the warmup service.
package events

import "time"

// CurriculumInitialized is emitted after curriculum templates are seeded for
// a device.
type CurriculumInitialized struct {
	DeviceID      string    `json:"device_id"`
	TemplateCount int       `json:"template_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// TaskReopened is emitted when a completed task is reverted to pending.
type TaskReopened struct {
	TaskID     string    `json:"task_id"`
	DeviceID   string    `json:"device_id"`
	DayNumber  int       `json:"day_number"`
	TaskType   string    `json:"task_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// TaskCompleted is emitted when a daily task transitions to completed.
type TaskCompleted struct {
	TaskID      string    `json:"task_id"`
	DeviceID    string    `json:"device_id"`
	DayNumber   int       `json:"day_number"`
	TaskType    string    `json:"task_type"`
	CompletedAt time.Time `json:"completed_at"`
}
