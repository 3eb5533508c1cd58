package domain_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bptrack/internal/domain"
)

func TestCompose(t *testing.T) {
	history := []domain.Reading{
		reading(2, 150, 92, "2026-01-02"),
		reading(3, 145, 91, "2026-01-03"),
		reading(1, 160, 95, "2026-01-01"),
	}
	a := domain.Compose(history)

	assert.Equal(t, domain.ZoneStage2, a.Zone)
	assert.Equal(t, domain.TrendImproving, a.Trend)
	assert.Equal(t, "trend.improving", a.MessageKey)
	assert.Equal(t, "zone.stage2", a.Params["zone"])
	assert.Equal(t, "145", a.Params["systolic"])
	assert.Equal(t, "-15", a.Params["delta_systolic"])
	assert.Equal(t, "2026-01-03", a.Params["taken_at"])
	require.NotNil(t, a.Latest)
	assert.Equal(t, int64(3), a.Latest.ID)
}

func TestCompose_ShortHistoryStillHasZone(t *testing.T) {
	a := domain.Compose([]domain.Reading{reading(1, 185, 100, "2026-01-01")})
	assert.Equal(t, domain.ZoneCrisis, a.Zone)
	assert.Equal(t, domain.TrendInsufficientData, a.Trend)
	assert.Equal(t, "trend.insufficient_data", a.MessageKey)
	assert.Equal(t, "zone.crisis", a.Params["zone"])
	assert.NotContains(t, a.Params, "delta_systolic")
}

func TestCompose_NoValidReadings(t *testing.T) {
	a := domain.Compose([]domain.Reading{reading(1, -1, 80, "2026-01-01"), reading(2, 120, 80, "??")})
	assert.Equal(t, 0, a.Zone.Severity())
	assert.Equal(t, domain.TrendInsufficientData, a.Trend)
	assert.NotContains(t, a.Params, "zone")
	assert.Nil(t, a.Latest)
	assert.Len(t, a.Omitted, 2)
}

func TestCompose_ZoneMatchesClassifyOfLatest(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(8)
		history := make([]domain.Reading, n)
		latestIdx, latestDay := 0, -1
		for j := range history {
			day := rng.Intn(28) + 1
			history[j] = reading(int64(j+1), 50+rng.Intn(200), 30+rng.Intn(120), fmt.Sprintf("2026-02-%02d", day))
			// Later input wins ties, matching the stable sort.
			if day >= latestDay {
				latestIdx, latestDay = j, day
			}
		}

		a := domain.Compose(history)
		latest := history[latestIdx]
		want, err := domain.Classify(latest.Systolic, latest.Diastolic)
		require.NoError(t, err)
		assert.Equal(t, want, a.Zone, "history %v", history)
	}
}
