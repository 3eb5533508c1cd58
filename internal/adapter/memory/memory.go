// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bptrack/internal/domain"
)

// DB implements an in-memory reading store.
type DB struct {
	mu        sync.Mutex
	readings  []domain.Reading
	idCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

var _ domain.ReadingRepository = (*DB)(nil)

// AddReading stores a reading and returns its id.
func (db *DB) AddReading(ctx context.Context, systolic, diastolic int, takenAt string, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.idCounter++
	id := db.idCounter

	db.readings = append(db.readings, domain.Reading{
		ID:        id,
		Systolic:  systolic,
		Diastolic: diastolic,
		TakenAt:   takenAt,
		CreatedAt: createdAt.UTC(),
	})
	return id, nil
}

// DeleteReading deletes a reading by id and reports whether it existed.
func (db *DB) DeleteReading(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, r := range db.readings {
		if r.ID == id {
			db.readings = append(db.readings[:i], db.readings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListRecentReadings lists readings by entry time, newest first.
func (db *DB) ListRecentReadings(ctx context.Context, limit int) ([]domain.Reading, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Reading, len(db.readings))
	copy(result, db.readings)

	// Same ordering as the postgres adapter: created_at DESC, id DESC.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
