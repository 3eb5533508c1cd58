package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bptrack/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		systolic  int
		diastolic int
		want      domain.Zone
	}{
		{"elevated example", 125, 75, domain.ZoneElevated},
		{"stage2 example", 140, 90, domain.ZoneStage2},
		{"stage1 example", 135, 85, domain.ZoneStage1},
		{"ideal example", 110, 70, domain.ZoneIdeal},
		{"crisis by systolic", 180, 70, domain.ZoneCrisis},
		{"crisis by diastolic", 110, 120, domain.ZoneCrisis},
		{"stage2 by diastolic only", 115, 90, domain.ZoneStage2},
		{"stage1 by diastolic only", 110, 81, domain.ZoneStage1},
		{"stage1 boundary systolic", 130, 70, domain.ZoneStage1},
		{"elevated boundary", 120, 80, domain.ZoneElevated},
		{"ideal lower corner", 90, 60, domain.ZoneIdeal},
		{"ideal upper corner", 119, 80, domain.ZoneIdeal},
		{"low systolic", 89, 70, domain.ZoneLow},
		{"low diastolic", 100, 59, domain.ZoneLow},
		{"elevated with low diastolic", 125, 50, domain.ZoneElevated},
		{"far out of range", 400, 300, domain.ZoneCrisis},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := domain.Classify(tc.systolic, tc.diastolic)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got, "Classify(%d, %d)", tc.systolic, tc.diastolic)
		})
	}
}

func TestClassify_InvalidReading(t *testing.T) {
	for _, tc := range [][2]int{{0, 80}, {120, 0}, {-5, 70}, {120, -1}} {
		zone, err := domain.Classify(tc[0], tc[1])
		assert.ErrorIs(t, err, domain.ErrInvalidReading)
		assert.Equal(t, 0, zone.Severity())

		emergency, err := domain.IsEmergency(tc[0], tc[1])
		assert.ErrorIs(t, err, domain.ErrInvalidReading)
		assert.False(t, emergency)
	}
}

func TestIsEmergency_MatchesCrisisBand(t *testing.T) {
	for sys := 40; sys <= 260; sys += 5 {
		for dia := 20; dia <= 160; dia += 5 {
			got, err := domain.IsEmergency(sys, dia)
			require.NoError(t, err)
			want := sys >= 180 || dia >= 120
			if got != want {
				t.Fatalf("IsEmergency(%d, %d) = %v; want %v", sys, dia, got, want)
			}
		}
	}
}

func TestClassify_Monotonic(t *testing.T) {
	for dia := 20; dia <= 160; dia++ {
		prev := 0
		for sys := 40; sys <= 260; sys++ {
			z, err := domain.Classify(sys, dia)
			require.NoError(t, err)
			if z.Severity() < prev {
				t.Fatalf("severity dropped at systolic=%d diastolic=%d", sys, dia)
			}
			prev = z.Severity()
		}
	}
	for sys := 40; sys <= 260; sys++ {
		prev := 0
		for dia := 20; dia <= 160; dia++ {
			z, err := domain.Classify(sys, dia)
			require.NoError(t, err)
			if z.Severity() < prev {
				t.Fatalf("severity dropped at diastolic=%d systolic=%d", dia, sys)
			}
			prev = z.Severity()
		}
	}
}

func TestZone_TextEncoding(t *testing.T) {
	b, err := json.Marshal(map[string]domain.Zone{"zone": domain.ZoneStage1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"zone":"stage1"}`, string(b))

	var z domain.Zone
	require.NoError(t, z.UnmarshalText([]byte("crisis")))
	assert.Equal(t, domain.ZoneCrisis, z)
	assert.Error(t, z.UnmarshalText([]byte("purple")))

	assert.Equal(t, "zone.stage2", domain.ZoneStage2.MessageKey())
	assert.Equal(t, "unknown", domain.Zone(0).String())
}

func TestZone_UnknownRoundTrip(t *testing.T) {
	b, err := json.Marshal(domain.Zone(0))
	require.NoError(t, err)
	assert.JSONEq(t, `"unknown"`, string(b))

	z := domain.ZoneCrisis
	require.NoError(t, json.Unmarshal(b, &z))
	assert.Equal(t, domain.Zone(0), z)

	a := domain.Compose(nil)
	b, err = json.Marshal(a)
	require.NoError(t, err)
	var back domain.Assessment
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, 0, back.Zone.Severity())
	assert.Equal(t, domain.TrendInsufficientData, back.Trend)
}
