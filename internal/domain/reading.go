// Package domain contains the core business entities, repository ports and
// the blood-pressure risk engine.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidReading indicates a non-positive systolic or diastolic value.
	ErrInvalidReading = errors.New("invalid reading")
	// ErrUnparsableDate indicates a TakenAt value that matches no known layout.
	ErrUnparsableDate = errors.New("unparsable reading date")
)

// Accepted entry ranges for new readings, in mmHg. The engine itself accepts
// any positive value.
const (
	MinSystolic  = 50
	MaxSystolic  = 250
	MinDiastolic = 30
	MaxDiastolic = 150
)

// Reading is a single blood-pressure measurement.
type Reading struct {
	ID        int64     `json:"id" yaml:"id"`
	Systolic  int       `json:"systolic" yaml:"systolic"`
	Diastolic int       `json:"diastolic" yaml:"diastolic"`
	TakenAt   string    `json:"takenAt" yaml:"takenAt"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt,omitempty"`
}

// ReadingRepository is the port for reading persistence.
type ReadingRepository interface {
	AddReading(ctx context.Context, systolic, diastolic int, takenAt string, createdAt time.Time) (int64, error)
	DeleteReading(ctx context.Context, id int64) (bool, error)
	ListRecentReadings(ctx context.Context, limit int) ([]Reading, error)
}

var takenAtLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseTakenAt parses a calendar date or timestamp. Dates without a zone are
// read as UTC so that ordering does not depend on the host's location.
func ParseTakenAt(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrUnparsableDate)
	}
	for _, layout := range takenAtLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, s)
}

func validPressures(systolic, diastolic int) error {
	if systolic <= 0 || diastolic <= 0 {
		return fmt.Errorf("%w: systolic=%d diastolic=%d", ErrInvalidReading, systolic, diastolic)
	}
	return nil
}

// Validate reports whether r can take part in trend analysis.
func (r Reading) Validate() error {
	_, err := r.validTakenAt()
	return err
}

// validTakenAt checks r and returns its parsed TakenAt.
func (r Reading) validTakenAt() (time.Time, error) {
	if err := validPressures(r.Systolic, r.Diastolic); err != nil {
		return time.Time{}, err
	}
	return ParseTakenAt(r.TakenAt)
}
