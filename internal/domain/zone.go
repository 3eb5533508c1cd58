package domain

import "fmt"

// Zone is the risk category of a reading, ordered by increasing severity.
// The zero value is unknown and only accompanies an error.
type Zone int

// Zones in severity order.
const (
	ZoneLow Zone = iota + 1
	ZoneIdeal
	ZoneElevated
	ZoneStage1
	ZoneStage2
	ZoneCrisis
)

var zoneNames = map[Zone]string{
	ZoneLow:      "low",
	ZoneIdeal:    "ideal",
	ZoneElevated: "elevated",
	ZoneStage1:   "stage1",
	ZoneStage2:   "stage2",
	ZoneCrisis:   "crisis",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	return "unknown"
}

// Severity returns the rank of z; higher is more severe, 0 is unknown.
func (z Zone) Severity() int {
	if _, ok := zoneNames[z]; !ok {
		return 0
	}
	return int(z)
}

// MessageKey returns the localization key for z, e.g. "zone.stage2".
func (z Zone) MessageKey() string {
	return "zone." + z.String()
}

// MarshalText implements encoding.TextMarshaler.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "unknown" decodes to
// the zero value.
func (z *Zone) UnmarshalText(b []byte) error {
	if string(b) == "unknown" {
		*z = 0
		return nil
	}
	for zone, name := range zoneNames {
		if name == string(b) {
			*z = zone
			return nil
		}
	}
	return fmt.Errorf("unknown zone %q", string(b))
}

// Classify maps a reading onto its risk zone. Rules are evaluated from the
// most severe band down and the first match wins; either pressure alone can
// raise the category. Boundary values belong to the more severe band.
func Classify(systolic, diastolic int) (Zone, error) {
	if err := validPressures(systolic, diastolic); err != nil {
		return 0, err
	}
	switch {
	case systolic >= 180 || diastolic >= 120:
		return ZoneCrisis, nil
	case systolic >= 140 || diastolic >= 90:
		return ZoneStage2, nil
	case systolic >= 130 || diastolic > 80:
		return ZoneStage1, nil
	case systolic >= 120 && diastolic <= 80:
		return ZoneElevated, nil
	case systolic >= 90 && systolic < 120 && diastolic >= 60 && diastolic <= 80:
		return ZoneIdeal, nil
	default:
		return ZoneLow, nil
	}
}

// IsEmergency reports whether the reading falls in the crisis zone.
func IsEmergency(systolic, diastolic int) (bool, error) {
	zone, err := Classify(systolic, diastolic)
	if err != nil {
		return false, err
	}
	return zone == ZoneCrisis, nil
}
