// Package postgres provides pgx-backed persistence for daily tasks and the
// outbox rows published alongside them.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/warmup/internal/domain"
	"example.com/warmup/internal/events"
	"example.com/warmup/internal/observability"
)

// Repository implements domain.TaskRepository and domain.DeviceDirectory on
// top of a pgx connection pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const taskColumns = `task_id, device_id, day_number, task_type, task_description, status, completed_at, notes, metadata, created_at, updated_at`

// Create inserts a single task row, failing on natural-key collisions.
func (r *Repository) Create(ctx context.Context, task domain.DailyTask) (*domain.DailyTask, error) {
	metadata, err := json.Marshal(task.Metadata)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO daily_tasks (task_id, device_id, day_number, task_type, task_description, status, metadata, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING ` + taskColumns

	row := r.pool.QueryRow(ctx, query,
		task.ID,
		task.DeviceID,
		task.DayNumber,
		task.TaskType,
		task.Description,
		task.Status,
		metadata,
		task.CreatedAt,
		task.UpdatedAt,
	)

	created, err := scanTask(row)
	if err != nil {
		return nil, translateError(err)
	}
	return created, nil
}

// Seed inserts the template rows inside one transaction, skipping rows whose
// (device_id, day_number, task_type) key already exists. Either every new row
// becomes visible or none does. A curriculum.initialized outbox event is
// recorded in the same transaction.
func (r *Repository) Seed(ctx context.Context, deviceID string, tasks []domain.DailyTask) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	const insertTask = `INSERT INTO daily_tasks (task_id, device_id, day_number, task_type, task_description, status, metadata, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (device_id, day_number, task_type) DO NOTHING`

	var inserted int64
	for _, task := range tasks {
		var metadata []byte
		metadata, err = json.Marshal(task.Metadata)
		if err != nil {
			return err
		}
		var tag pgconn.CommandTag
		if tag, err = tx.Exec(ctx, insertTask,
			task.ID,
			task.DeviceID,
			task.DayNumber,
			task.TaskType,
			task.Description,
			task.Status,
			metadata,
			task.CreatedAt,
			task.UpdatedAt,
		); err != nil {
			err = translateError(err)
			return err
		}
		inserted += tag.RowsAffected()
	}

	if inserted > 0 {
		first := tasks[0]
		if err = r.insertOutbox(ctx, tx, "curriculum.initialized", deviceID, events.CurriculumInitialized{
			DeviceID:      deviceID,
			TemplateCount: len(tasks),
			OccurredAt:    first.CreatedAt,
		}); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	if inserted > 0 {
		observability.RecordCurriculumSeeded()
	}
	return nil
}

// Get retrieves a task by ID, returning nil when no row matches.
func (r *Repository) Get(ctx context.Context, taskID string) (*domain.DailyTask, error) {
	query := `SELECT ` + taskColumns + ` FROM daily_tasks WHERE task_id = $1`

	task, err := scanTask(r.pool.QueryRow(ctx, query, taskID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

// ListByDeviceAndDay returns one day's tasks ordered by task type then
// creation order.
func (r *Repository) ListByDeviceAndDay(ctx context.Context, deviceID string, dayNumber int) ([]domain.DailyTask, error) {
	query := `SELECT ` + taskColumns + `
        FROM daily_tasks
        WHERE device_id = $1 AND day_number = $2
        ORDER BY task_type, created_at`

	rows, err := r.pool.Query(ctx, query, deviceID, dayNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

// ListByDevice returns all tasks for a device, optionally filtered, ordered
// by day ascending then task type ascending.
func (r *Repository) ListByDevice(ctx context.Context, deviceID string, filter domain.TaskFilter) ([]domain.DailyTask, error) {
	where := []string{"device_id = $1"}
	args := []interface{}{deviceID}

	if filter.DayNumber != nil {
		args = append(args, *filter.DayNumber)
		where = append(where, fmt.Sprintf("day_number = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.TaskType != nil {
		args = append(args, *filter.TaskType)
		where = append(where, fmt.Sprintf("task_type = $%d", len(args)))
	}

	query := `SELECT ` + taskColumns + `
        FROM daily_tasks
        WHERE ` + strings.Join(where, " AND ") + `
        ORDER BY day_number ASC, task_type ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTasks(rows)
}

// Update applies a partial update and returns the updated row, or nil when no
// row matches. Reverting a task to pending records a task.reopened outbox
// event in the same transaction.
func (r *Repository) Update(ctx context.Context, taskID string, update domain.TaskUpdate) (*domain.DailyTask, error) {
	if update.Empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)

	if update.Status != nil {
		args = append(args, *update.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if update.CompletedAt != nil {
		args = append(args, *update.CompletedAt)
		sets = append(sets, fmt.Sprintf("completed_at = $%d", len(args)))
	} else if update.ClearCompletedAt {
		sets = append(sets, "completed_at = NULL")
	}
	if update.Notes != nil {
		args = append(args, *update.Notes)
		sets = append(sets, fmt.Sprintf("notes = $%d", len(args)))
	}
	if update.Metadata != nil {
		metadata, err := json.Marshal(update.Metadata)
		if err != nil {
			return nil, err
		}
		args = append(args, metadata)
		sets = append(sets, fmt.Sprintf("metadata = $%d", len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, taskID)
	query := fmt.Sprintf(`UPDATE daily_tasks SET %s WHERE task_id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), taskColumns)

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	task, scanErr := scanTask(tx.QueryRow(ctx, query, args...))
	if errors.Is(scanErr, pgx.ErrNoRows) {
		tx.Rollback(ctx)
		return nil, nil
	}
	if scanErr != nil {
		err = translateError(scanErr)
		return nil, err
	}

	// A revert to pending is a lifecycle transition collaborators care about.
	if update.ClearCompletedAt {
		if err = r.insertOutbox(ctx, tx, "task.reopened", task.DeviceID, events.TaskReopened{
			TaskID:     task.ID,
			DeviceID:   task.DeviceID,
			DayNumber:  task.DayNumber,
			TaskType:   task.TaskType,
			OccurredAt: task.UpdatedAt,
		}); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return task, nil
}

// Complete stamps the task completed and records a task.completed outbox
// event in the same transaction. Returns nil when no row matches.
func (r *Repository) Complete(ctx context.Context, taskID string, notes *string) (*domain.DailyTask, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	query := `UPDATE daily_tasks
        SET status = 'completed', completed_at = NOW(), notes = $1, updated_at = NOW()
        WHERE task_id = $2
        RETURNING ` + taskColumns

	task, scanErr := scanTask(tx.QueryRow(ctx, query, notes, taskID))
	if errors.Is(scanErr, pgx.ErrNoRows) {
		if err = tx.Commit(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if scanErr != nil {
		err = scanErr
		return nil, err
	}

	if err = r.insertOutbox(ctx, tx, "task.completed", task.DeviceID, events.TaskCompleted{
		TaskID:      task.ID,
		DeviceID:    task.DeviceID,
		DayNumber:   task.DayNumber,
		TaskType:    task.TaskType,
		CompletedAt: *task.CompletedAt,
	}); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	observability.RecordTaskCompleted(*task.CompletedAt)
	return task, nil
}

// Delete hard-deletes a task and returns its identity, or nil when no row
// matches.
func (r *Repository) Delete(ctx context.Context, taskID string) (*domain.DeletedTask, error) {
	const query = `DELETE FROM daily_tasks WHERE task_id = $1 RETURNING task_id, task_type, status`

	var deleted domain.DeletedTask
	err := r.pool.QueryRow(ctx, query, taskID).Scan(&deleted.ID, &deleted.TaskType, &deleted.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// ClearDevice deletes every task owned by the device.
func (r *Repository) ClearDevice(ctx context.Context, deviceID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM daily_tasks WHERE device_id = $1`, deviceID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ProgressStats aggregates completion counts per day at the storage layer.
// Only days with at least one row appear, so the percentage division is never
// by zero.
func (r *Repository) ProgressStats(ctx context.Context, deviceID string) ([]domain.DayProgress, error) {
	const query = `SELECT
            day_number,
            COUNT(*) AS total_tasks,
            COUNT(*) FILTER (WHERE status = 'completed') AS completed_tasks,
            COUNT(*) FILTER (WHERE status = 'pending') AS pending_tasks,
            ROUND(COUNT(*) FILTER (WHERE status = 'completed')::decimal / COUNT(*)::decimal * 100, 2) AS completion_percentage
        FROM daily_tasks
        WHERE device_id = $1
        GROUP BY day_number
        ORDER BY day_number`

	rows, err := r.pool.Query(ctx, query, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]domain.DayProgress, 0, 21)
	for rows.Next() {
		var day domain.DayProgress
		if err := rows.Scan(&day.DayNumber, &day.TotalTasks, &day.CompletedTasks, &day.PendingTasks, &day.CompletionPercentage); err != nil {
			return nil, err
		}
		stats = append(stats, day)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *Repository) insertOutbox(ctx context.Context, tx pgx.Tx, eventType, partitionKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	meta, ok := eventCatalog[eventType]
	if !ok {
		return fmt.Errorf("unknown event type: %s", eventType)
	}

	const stmt = `INSERT INTO outbox (aggregate_type, event_type, topic, partition_key, payload)
        VALUES ($1,$2,$3,$4,$5)`

	_, err = tx.Exec(ctx, stmt, "daily_task", eventType, meta.Topic, partitionKey, body)
	return err
}

func scanTask(row pgx.Row) (*domain.DailyTask, error) {
	var task domain.DailyTask
	var metadata []byte
	if err := row.Scan(
		&task.ID,
		&task.DeviceID,
		&task.DayNumber,
		&task.TaskType,
		&task.Description,
		&task.Status,
		&task.CompletedAt,
		&task.Notes,
		&metadata,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &task.Metadata); err != nil {
			return nil, err
		}
	}
	return &task, nil
}

func collectTasks(rows pgx.Rows) ([]domain.DailyTask, error) {
	tasks := make([]domain.DailyTask, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// translateError maps Postgres constraint violations onto domain errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domain.ErrDuplicateTask
		case "23503":
			return domain.ErrDeviceNotFound
		case "23514":
			return domain.ErrDayOutOfRange
		}
	}
	return err
}

// EventMetadata describes how to route an outbox event.
type EventMetadata struct {
	Topic string
}

var eventCatalog = map[string]EventMetadata{
	"curriculum.initialized": {Topic: "warmup_curriculum_events"},
	"task.completed":         {Topic: "warmup_task_events"},
	"task.reopened":          {Topic: "warmup_task_events"},
}
