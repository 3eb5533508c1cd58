package postgres

import (
	"context"
	"time"

	"bptrack/internal/domain"
)

var _ domain.ReadingRepository = (*DB)(nil)

// AddReading inserts a new reading.
func (d *DB) AddReading(ctx context.Context, systolic, diastolic int, takenAt string, createdAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO readings(systolic, diastolic, taken_at, created_at) VALUES($1, $2, $3, $4) RETURNING id;",
		systolic, diastolic, takenAt, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteReading removes a reading by id and reports whether a row was deleted.
func (d *DB) DeleteReading(ctx context.Context, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM readings WHERE id=$1;", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListRecentReadings returns the most recently entered readings up to limit.
func (d *DB) ListRecentReadings(ctx context.Context, limit int) ([]domain.Reading, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, systolic, diastolic, taken_at, created_at FROM readings ORDER BY created_at DESC, id DESC LIMIT $1;", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	out := make([]domain.Reading, 0, limit)
	for rows.Next() {
		var r domain.Reading
		if err := rows.Scan(&r.ID, &r.Systolic, &r.Diastolic, &r.TakenAt, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
