package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"bptrack/internal/domain"
)

// AssessmentService builds the history view: the combined assessment, a
// statistical summary and the evaluated readings.
type AssessmentService struct {
	repo      domain.ReadingRepository
	log       zerolog.Logger
	minPoints int
}

// NewAssessmentService creates an AssessmentService. minPoints below 1
// selects domain.DefaultMinTrendPoints.
func NewAssessmentService(repo domain.ReadingRepository, log zerolog.Logger, minPoints int) *AssessmentService {
	if minPoints < 1 {
		minPoints = domain.DefaultMinTrendPoints
	}
	return &AssessmentService{
		repo:      repo,
		log:       log.With().Str("component", "assessment").Logger(),
		minPoints: minPoints,
	}
}

// Summary describes the valid readings of a history.
type Summary struct {
	Count           int         `json:"count" yaml:"count"`
	MeanSystolic    float64     `json:"meanSystolic" yaml:"meanSystolic"`
	MeanDiastolic   float64     `json:"meanDiastolic" yaml:"meanDiastolic"`
	StdDevSystolic  float64     `json:"stdDevSystolic" yaml:"stdDevSystolic"`
	StdDevDiastolic float64     `json:"stdDevDiastolic" yaml:"stdDevDiastolic"`
	MaxZone         domain.Zone `json:"maxZone" yaml:"maxZone"`
}

// HistoryView is the result of Assess.
type HistoryView struct {
	Assessment domain.Assessment `json:"assessment"`
	Summary    Summary           `json:"summary"`
	Items      []ReadingView     `json:"items"`
}

// Assess loads up to limit recent readings and assesses them. minPoints
// below 1 uses the service default.
func (s *AssessmentService) Assess(ctx context.Context, limit, minPoints int) (*HistoryView, error) {
	if limit < 1 {
		return nil, errors.New("limit must be > 0")
	}
	if minPoints < 1 {
		minPoints = s.minPoints
	}
	readings, err := s.repo.ListRecentReadings(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.AssessReadings(readings, minPoints), nil
}

// AssessReadings assesses an already loaded history.
func (s *AssessmentService) AssessReadings(readings []domain.Reading, minPoints int) *HistoryView {
	if minPoints < 1 {
		minPoints = s.minPoints
	}
	assessment := domain.ComposeWithMinPoints(readings, minPoints)
	for _, o := range assessment.Omitted {
		s.log.Warn().Err(o.Err).Int64("reading_id", o.ReadingID).Int("index", o.Index).Msg("reading omitted from trend")
	}

	history := domain.PrepareHistory(readings)
	items := make([]ReadingView, 0, len(history.Readings))
	for _, r := range history.Readings {
		view, err := Evaluate(r)
		if err != nil {
			continue
		}
		items = append(items, view)
	}

	return &HistoryView{
		Assessment: assessment,
		Summary:    Summarize(items),
		Items:      items,
	}
}

// Summarize computes means and standard deviations over evaluated readings.
// Standard deviations are zero for fewer than two readings.
func Summarize(items []ReadingView) Summary {
	sum := Summary{Count: len(items)}
	if len(items) == 0 {
		return sum
	}

	sys := make([]float64, len(items))
	dia := make([]float64, len(items))
	for i, v := range items {
		sys[i] = float64(v.Reading.Systolic)
		dia[i] = float64(v.Reading.Diastolic)
		if v.Zone.Severity() > sum.MaxZone.Severity() {
			sum.MaxZone = v.Zone
		}
	}

	sum.MeanSystolic = stat.Mean(sys, nil)
	sum.MeanDiastolic = stat.Mean(dia, nil)
	if len(items) > 1 {
		sum.StdDevSystolic = stat.StdDev(sys, nil)
		sum.StdDevDiastolic = stat.StdDev(dia, nil)
	}
	return sum
}
