package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const kPaToMMHg = 7.50061683

// Pressure units accepted by ConvertPressure.
const (
	UnitMMHg = "mmhg"
	UnitKPa  = "kpa"
)

// ErrUnknownUnit indicates a pressure unit other than mmhg or kpa.
var ErrUnknownUnit = errors.New("unknown pressure unit")

func knownUnit(u string) bool {
	return u == UnitMMHg || u == UnitKPa
}

// ConvertPressure converts a pressure value between "mmhg" and "kpa".
// Unit names are case-insensitive.
func ConvertPressure(v float64, from, to string) (float64, error) {
	from, to = strings.ToLower(from), strings.ToLower(to)
	if !knownUnit(from) || !knownUnit(to) {
		return 0, fmt.Errorf("%w: %q to %q", ErrUnknownUnit, from, to)
	}
	switch {
	case from == to:
		return v, nil
	case from == UnitKPa:
		return v * kPaToMMHg, nil
	default:
		return v / kPaToMMHg, nil
	}
}

// ToMMHg converts v in unit to whole mmHg, rounding half away from zero.
// Results that are not a positive pressure are ErrInvalidReading.
func ToMMHg(v float64, unit string) (int, error) {
	mm, err := ConvertPressure(v, unit, UnitMMHg)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(mm) || math.IsInf(mm, 0) || mm > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v %s", ErrInvalidReading, v, unit)
	}
	n := int(math.Round(mm))
	if n <= 0 {
		return 0, fmt.Errorf("%w: %v %s", ErrInvalidReading, v, unit)
	}
	return n, nil
}

// ParsePressure parses a pressure typed in unit and returns whole mmHg.
// mmHg input must be an integer; kPa input may be fractional.
func ParsePressure(s, unit string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(unit, UnitMMHg) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a whole mmHg value", ErrInvalidReading, s)
		}
		if n <= 0 {
			return 0, fmt.Errorf("%w: %d mmHg", ErrInvalidReading, n)
		}
		return n, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if !knownUnit(strings.ToLower(unit)) {
			return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidReading, s)
	}
	return ToMMHg(v, unit)
}
