package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidAxisRange indicates an axis whose maximum is not above its minimum.
var ErrInvalidAxisRange = errors.New("invalid axis range")

// Plot area bounds, in percent of the chart box.
const (
	plotMin  = 15.0
	plotMax  = 85.0
	plotSpan = plotMax - plotMin
)

// AxisRange is the mmHg span covered by one chart axis.
type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Default chart axes.
var (
	DefaultDiastolicRange = AxisRange{Min: 40, Max: 100}
	DefaultSystolicRange  = AxisRange{Min: 70, Max: 190}
)

// Point is a position on the chart in percent; X grows with diastolic and Y
// shrinks with systolic so higher pressure plots nearer the top.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CoordinateMapper projects readings onto the chart plot area.
type CoordinateMapper struct {
	diastolic AxisRange
	systolic  AxisRange
}

var defaultMapper = &CoordinateMapper{diastolic: DefaultDiastolicRange, systolic: DefaultSystolicRange}

func (a AxisRange) valid() bool {
	for _, v := range []float64{a.Min, a.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return a.Max > a.Min
}

// NewCoordinateMapper returns a mapper for the given axes. Both bounds must
// be finite with Max above Min.
func NewCoordinateMapper(diastolic, systolic AxisRange) (*CoordinateMapper, error) {
	if !diastolic.valid() {
		return nil, fmt.Errorf("%w: diastolic [%v, %v]", ErrInvalidAxisRange, diastolic.Min, diastolic.Max)
	}
	if !systolic.valid() {
		return nil, fmt.Errorf("%w: systolic [%v, %v]", ErrInvalidAxisRange, systolic.Min, systolic.Max)
	}
	return &CoordinateMapper{diastolic: diastolic, systolic: systolic}, nil
}

// Map interpolates the reading linearly across both axes. Results are
// clamped to the plot area so extreme readings stay inside the chart.
func (m *CoordinateMapper) Map(systolic, diastolic int) (Point, error) {
	if err := validPressures(systolic, diastolic); err != nil {
		return Point{}, err
	}
	x := plotMin + (float64(diastolic)-m.diastolic.Min)/(m.diastolic.Max-m.diastolic.Min)*plotSpan
	y := plotMax - (float64(systolic)-m.systolic.Min)/(m.systolic.Max-m.systolic.Min)*plotSpan
	return Point{X: clampPlot(x), Y: clampPlot(y)}, nil
}

// MapCoordinate maps a reading using the default chart axes.
func MapCoordinate(systolic, diastolic int) (Point, error) {
	return defaultMapper.Map(systolic, diastolic)
}

func clampPlot(v float64) float64 {
	return min(max(v, plotMin), plotMax)
}
