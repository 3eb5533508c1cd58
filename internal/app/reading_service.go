// Package app holds the application services that feed stored readings
// through the risk engine.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"bptrack/internal/domain"
)

var (
	// ErrReadingNotFound indicates that the requested reading does not exist.
	ErrReadingNotFound = errors.New("reading not found")
	// ErrOutOfRange indicates a pressure outside the accepted entry range.
	ErrOutOfRange = errors.New("reading out of range")
)

// ReadingView is a stored or ad hoc reading together with its engine output.
type ReadingView struct {
	Reading   domain.Reading `json:"reading"`
	Zone      domain.Zone    `json:"zone"`
	Emergency bool           `json:"emergency"`
	Point     domain.Point   `json:"point"`
}

// Evaluate runs a single reading through the classifier, emergency detector
// and coordinate mapper.
func Evaluate(r domain.Reading) (ReadingView, error) {
	zone, err := domain.Classify(r.Systolic, r.Diastolic)
	if err != nil {
		return ReadingView{}, err
	}
	emergency, err := domain.IsEmergency(r.Systolic, r.Diastolic)
	if err != nil {
		return ReadingView{}, err
	}
	point, err := domain.MapCoordinate(r.Systolic, r.Diastolic)
	if err != nil {
		return ReadingView{}, err
	}
	return ReadingView{Reading: r, Zone: zone, Emergency: emergency, Point: point}, nil
}

// ReadingService encapsulates reading-tracking use cases.
type ReadingService struct {
	repo domain.ReadingRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewReadingService creates a ReadingService backed by the given repository.
func NewReadingService(repo domain.ReadingRepository, log zerolog.Logger) *ReadingService {
	return &ReadingService{
		repo: repo,
		log:  log.With().Str("component", "readings").Logger(),
		now:  time.Now,
	}
}

// ValidateEntry checks a new reading against the accepted entry ranges.
func ValidateEntry(systolic, diastolic int, takenAt string) error {
	if systolic < domain.MinSystolic || systolic > domain.MaxSystolic {
		return fmt.Errorf("%w: systolic must be within [%d, %d]", ErrOutOfRange, domain.MinSystolic, domain.MaxSystolic)
	}
	if diastolic < domain.MinDiastolic || diastolic > domain.MaxDiastolic {
		return fmt.Errorf("%w: diastolic must be within [%d, %d]", ErrOutOfRange, domain.MinDiastolic, domain.MaxDiastolic)
	}
	return domain.Reading{Systolic: systolic, Diastolic: diastolic, TakenAt: takenAt}.Validate()
}

// RecordReading validates and stores a reading. An empty takenAt means
// today. The stored reading is returned already evaluated.
func (s *ReadingService) RecordReading(ctx context.Context, systolic, diastolic int, takenAt string) (*ReadingView, error) {
	now := s.now()
	if takenAt == "" {
		takenAt = now.In(time.Local).Format("2006-01-02")
	}
	if err := ValidateEntry(systolic, diastolic, takenAt); err != nil {
		return nil, err
	}

	id, err := s.repo.AddReading(ctx, systolic, diastolic, takenAt, now)
	if err != nil {
		return nil, err
	}

	view, err := Evaluate(domain.Reading{
		ID:        id,
		Systolic:  systolic,
		Diastolic: diastolic,
		TakenAt:   takenAt,
		CreatedAt: now.UTC(),
	})
	if err != nil {
		return nil, err
	}
	if view.Emergency {
		s.log.Warn().Int64("reading_id", id).Int("systolic", systolic).Int("diastolic", diastolic).Msg("crisis reading recorded")
	}
	return &view, nil
}

// ListRecent returns the most recently entered readings up to limit, each
// evaluated. Readings the engine rejects are skipped and logged.
func (s *ReadingService) ListRecent(ctx context.Context, limit int) ([]ReadingView, error) {
	items, err := s.repo.ListRecentReadings(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]ReadingView, 0, len(items))
	for _, r := range items {
		view, err := Evaluate(r)
		if err != nil {
			s.log.Warn().Err(err).Int64("reading_id", r.ID).Msg("skipping reading")
			continue
		}
		out = append(out, view)
	}
	return out, nil
}

// Delete removes a reading by id.
func (s *ReadingService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteReading(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReadingNotFound
	}
	return nil
}

// UndoLast deletes the most recently entered reading.
func (s *ReadingService) UndoLast(ctx context.Context) (bool, int64, error) {
	items, err := s.repo.ListRecentReadings(ctx, 1)
	if err != nil {
		return false, 0, err
	}
	if len(items) == 0 {
		return false, 0, nil
	}
	deleted, err := s.repo.DeleteReading(ctx, items[0].ID)
	if err != nil {
		return false, 0, err
	}
	return deleted, items[0].ID, nil
}
