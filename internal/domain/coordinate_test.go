package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bptrack/internal/domain"
)

func TestMapCoordinate_Corners(t *testing.T) {
	p, err := domain.MapCoordinate(70, 40)
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 15, Y: 85}, p)

	p, err = domain.MapCoordinate(190, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 85, Y: 15}, p)
}

func TestMapCoordinate_Midpoint(t *testing.T) {
	p, err := domain.MapCoordinate(130, 70)
	require.NoError(t, err)
	assert.InDelta(t, 50, p.X, 1e-9)
	assert.InDelta(t, 50, p.Y, 1e-9)
}

func TestMapCoordinate_Clamped(t *testing.T) {
	for sys := 1; sys <= 400; sys += 7 {
		for dia := 1; dia <= 300; dia += 7 {
			p, err := domain.MapCoordinate(sys, dia)
			require.NoError(t, err)
			if p.X < 15 || p.X > 85 || p.Y < 15 || p.Y > 85 {
				t.Fatalf("MapCoordinate(%d, %d) = %+v; outside plot", sys, dia, p)
			}
		}
	}

	p, err := domain.MapCoordinate(250, 150)
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 85, Y: 15}, p)
}

func TestMapCoordinate_InvalidReading(t *testing.T) {
	_, err := domain.MapCoordinate(0, 70)
	assert.ErrorIs(t, err, domain.ErrInvalidReading)
}

func TestNewCoordinateMapper(t *testing.T) {
	_, err := domain.NewCoordinateMapper(domain.AxisRange{Min: 100, Max: 40}, domain.DefaultSystolicRange)
	assert.ErrorIs(t, err, domain.ErrInvalidAxisRange)

	_, err = domain.NewCoordinateMapper(domain.DefaultDiastolicRange, domain.AxisRange{Min: 70, Max: 70})
	assert.ErrorIs(t, err, domain.ErrInvalidAxisRange)

	for _, bad := range []domain.AxisRange{
		{Min: math.Inf(-1), Max: math.Inf(1)},
		{Min: 40, Max: math.Inf(1)},
		{Min: math.NaN(), Max: 100},
		{Min: 40, Max: math.NaN()},
	} {
		_, err = domain.NewCoordinateMapper(bad, domain.DefaultSystolicRange)
		assert.ErrorIs(t, err, domain.ErrInvalidAxisRange, "diastolic %+v", bad)
		_, err = domain.NewCoordinateMapper(domain.DefaultDiastolicRange, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidAxisRange, "systolic %+v", bad)
	}

	m, err := domain.NewCoordinateMapper(domain.AxisRange{Min: 50, Max: 110}, domain.AxisRange{Min: 80, Max: 200})
	require.NoError(t, err)
	p, err := m.Map(80, 50)
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 15, Y: 85}, p)
}
