package domain

import "strconv"

// Assessment combines the zone of the latest reading with the trend of the
// whole history. It is advisory only and is recomputed on every call.
type Assessment struct {
	Zone       Zone              `json:"zone"`
	Trend      TrendDirection    `json:"trend"`
	MessageKey string            `json:"messageKey"`
	Params     map[string]string `json:"params"`
	Latest     *Reading          `json:"latest,omitempty"`
	Report     TrendReport       `json:"report"`
	Omitted    []Omission        `json:"omitted,omitempty"`
}

// Compose builds an assessment using DefaultMinTrendPoints.
func Compose(history []Reading) Assessment {
	return ComposeWithMinPoints(history, DefaultMinTrendPoints)
}

// ComposeWithMinPoints builds an assessment of history. The zone always
// comes from Classify on the chronologically latest valid reading.
func ComposeWithMinPoints(history []Reading, minPoints int) Assessment {
	h := PrepareHistory(history)
	report := analyzePrepared(h, minPoints)

	a := Assessment{
		Trend:      report.Direction,
		MessageKey: report.Direction.MessageKey(),
		Params:     map[string]string{},
		Report:     report,
		Omitted:    h.Omitted,
	}

	latest, ok := h.Latest()
	if !ok {
		return a
	}
	zone, err := Classify(latest.Systolic, latest.Diastolic)
	if err != nil {
		// PrepareHistory only keeps valid pressures.
		return a
	}

	a.Zone = zone
	a.Latest = &latest
	a.Params["zone"] = zone.MessageKey()
	a.Params["systolic"] = strconv.Itoa(latest.Systolic)
	a.Params["diastolic"] = strconv.Itoa(latest.Diastolic)
	a.Params["taken_at"] = latest.TakenAt
	if report.Direction != TrendInsufficientData {
		a.Params["delta_systolic"] = strconv.Itoa(report.DeltaSystolic)
		a.Params["delta_diastolic"] = strconv.Itoa(report.DeltaDiastolic)
	}
	return a
}
