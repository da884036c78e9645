package postgres

import (
	"context"
	"time"
)

// DeviceExists reports whether a device is enrolled. Used by the HTTP layer
// before seeding or creating tasks.
func (r *Repository) DeviceExists(ctx context.Context, deviceID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM devices WHERE device_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, deviceID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// RegisterDevice enrolls a device. Full device management lives in the fleet
// service; this is the minimal write needed to satisfy the task foreign key.
func (r *Repository) RegisterDevice(ctx context.Context, deviceID, name string) error {
	const stmt = `INSERT INTO devices (device_id, device_name, created_at, updated_at)
        VALUES ($1, $2, $3, $3)
        ON CONFLICT (device_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, stmt, deviceID, name, time.Now().UTC())
	return err
}
