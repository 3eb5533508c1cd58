package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DefaultMinTrendPoints is the number of valid readings needed before a
// trend is reported.
const DefaultMinTrendPoints = 3

// Endpoint deltas, in mmHg, that count as a change in direction.
const (
	systolicTrendDelta  = 10
	diastolicTrendDelta = 5
)

// TrendDirection describes how blood pressure moved across a history.
type TrendDirection string

// Trend directions.
const (
	TrendImproving        TrendDirection = "improving"
	TrendWorsening        TrendDirection = "worsening"
	TrendStable           TrendDirection = "stable"
	TrendInsufficientData TrendDirection = "insufficient_data"
)

// MessageKey returns the localization key for d, e.g. "trend.improving".
func (d TrendDirection) MessageKey() string {
	return "trend." + string(d)
}

// Omission records a reading that was left out of the analysis.
type Omission struct {
	Index     int
	ReadingID int64
	Err       error
}

// Reason is the error text, exposed for JSON consumers.
func (o Omission) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

func (o Omission) String() string {
	return fmt.Sprintf("reading %d (index %d): %s", o.ReadingID, o.Index, o.Reason())
}

// MarshalJSON includes the reason text.
func (o Omission) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index     int    `json:"index"`
		ReadingID int64  `json:"readingId"`
		Reason    string `json:"reason"`
	}{o.Index, o.ReadingID, o.Reason()})
}

// History is a chronologically ordered set of valid readings.
type History struct {
	Readings []Reading
	Omitted  []Omission
}

// Earliest returns the first reading, or false when the history is empty.
func (h History) Earliest() (Reading, bool) {
	if len(h.Readings) == 0 {
		return Reading{}, false
	}
	return h.Readings[0], true
}

// Latest returns the last reading, or false when the history is empty.
func (h History) Latest() (Reading, bool) {
	if len(h.Readings) == 0 {
		return Reading{}, false
	}
	return h.Readings[len(h.Readings)-1], true
}

// PrepareHistory validates readings and orders the valid ones by TakenAt,
// oldest first. Readings with equal dates keep their input order. The input
// slice is left untouched.
func PrepareHistory(readings []Reading) History {
	type dated struct {
		reading Reading
		at      time.Time
	}

	valid := make([]dated, 0, len(readings))
	var omitted []Omission
	for i, r := range readings {
		at, err := r.validTakenAt()
		if err != nil {
			omitted = append(omitted, Omission{Index: i, ReadingID: r.ID, Err: err})
			continue
		}
		valid = append(valid, dated{reading: r, at: at})
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].at.Before(valid[j].at)
	})

	h := History{Readings: make([]Reading, len(valid)), Omitted: omitted}
	for i, d := range valid {
		h.Readings[i] = d.reading
	}
	return h
}

// TrendReport is the outcome of AnalyzeTrend.
type TrendReport struct {
	Direction      TrendDirection `json:"direction"`
	DeltaSystolic  int            `json:"deltaSystolic"`
	DeltaDiastolic int            `json:"deltaDiastolic"`
	Points         int            `json:"points"`
	Earliest       *Reading       `json:"earliest,omitempty"`
	Latest         *Reading       `json:"latest,omitempty"`
	Omitted        []Omission     `json:"omitted,omitempty"`
}

// AnalyzeTrend compares the earliest and latest valid readings of history.
// Only the two endpoints are considered, so swings in between do not affect
// the result. minPoints below 1 selects DefaultMinTrendPoints.
func AnalyzeTrend(history []Reading, minPoints int) TrendReport {
	return analyzePrepared(PrepareHistory(history), minPoints)
}

func analyzePrepared(h History, minPoints int) TrendReport {
	if minPoints < 1 {
		minPoints = DefaultMinTrendPoints
	}

	report := TrendReport{
		Direction: TrendInsufficientData,
		Points:    len(h.Readings),
		Omitted:   h.Omitted,
	}
	if len(h.Readings) < minPoints {
		return report
	}

	earliest, _ := h.Earliest()
	latest, _ := h.Latest()
	report.Earliest = &earliest
	report.Latest = &latest
	report.DeltaSystolic = latest.Systolic - earliest.Systolic
	report.DeltaDiastolic = latest.Diastolic - earliest.Diastolic
	report.Direction = trendDirection(report.DeltaSystolic, report.DeltaDiastolic)
	return report
}

func trendDirection(deltaSys, deltaDia int) TrendDirection {
	switch {
	case deltaSys <= -systolicTrendDelta || deltaDia <= -diastolicTrendDelta:
		return TrendImproving
	case deltaSys >= systolicTrendDelta || deltaDia >= diastolicTrendDelta:
		return TrendWorsening
	default:
		return TrendStable
	}
}
