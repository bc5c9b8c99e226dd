package epoch

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"rantoo/shared/timezone"
)

const (
	outputLayout = "Mon 2006-01-02 15:04:05"
	zoneLayout   = "MST"
	utcLabel     = "UTC"
	encodedSpace = "%20"

	// Bounds of the years 0001 through 9999.
	minEpoch int64 = -62135596800
	maxEpoch int64 = 253402300799

	// Wider than any zone offset, narrower than the gap between two transitions.
	transitionWindow int64 = 24 * 60 * 60
)

// HumanToEpoch parses value in one of the supported layouts and returns epoch
// seconds. The fields are read as wall-clock time in tz when tz resolves, and
// as UTC otherwise.
func HumanToEpoch(value, tz string) (int64, error) {
	input := strings.ReplaceAll(strings.TrimSpace(value), encodedSpace, " ")

	wall, ok := match(input)
	if !ok {
		return 0, datetimeError(value, "")
	}

	if detail := wall.check(); detail != "" {
		return 0, datetimeError(value, detail)
	}

	loc, ok := timezone.Resolve(tz)
	if !ok {
		loc = time.UTC
	}

	seconds := wall.unix(loc)
	if seconds < minEpoch || seconds > maxEpoch {
		return 0, datetimeError(value, "out of range in "+loc.String())
	}

	return seconds, nil
}

// ParseEpoch reads integer or decimal seconds. Fractions are floored.
func ParseEpoch(value string) (int64, error) {
	input := strings.TrimSpace(value)

	seconds, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		if !isDecimal(input) {
			return 0, epochError(value, "not a number")
		}

		f, ferr := strconv.ParseFloat(input, 64)
		if ferr != nil && !isRangeError(ferr) {
			return 0, epochError(value, "not a number")
		}

		f = math.Floor(f)
		if math.IsInf(f, 0) || f < float64(minEpoch) || f > float64(maxEpoch) {
			return 0, epochError(value, "out of range")
		}

		seconds = int64(f)
	}

	if seconds < minEpoch || seconds > maxEpoch {
		return 0, epochError(value, "out of range")
	}

	return seconds, nil
}

// EpochToHuman formats seconds as "Mon 2006-01-02 15:04:05 MST" in tz, or in
// UTC with a literal UTC label when tz does not resolve.
func EpochToHuman(seconds int64, tz string) string {
	instant := time.Unix(seconds, 0).UTC()

	if loc, ok := timezone.Resolve(tz); ok {
		local := instant.In(loc)

		return local.Format(outputLayout) + " " + local.Format(zoneLayout)
	}

	return instant.Format(outputLayout) + " " + utcLabel
}

// unix resolves the wall clock in loc.
func (w wallClock) unix(loc *time.Location) int64 {
	naive := time.Date(w.year, time.Month(w.month), w.day, w.hour, w.minute, w.second, 0, time.UTC).Unix()
	if loc == time.UTC {
		return naive
	}

	before := offsetAt(naive-transitionWindow, loc)
	offsets := []int64{before, offsetAt(naive, loc), offsetAt(naive+transitionWindow, loc)}

	var instants []int64

	for _, offset := range offsets {
		instant := naive - offset
		if offsetAt(instant, loc) == offset && !slices.Contains(instants, instant) {
			instants = append(instants, instant)
		}
	}

	if len(instants) > 0 {
		return slices.Min(instants)
	}

	// Nonexistent wall time: reading it with the old offset lands past the
	// transition, where the new offset is in effect.
	return naive - offsetAt(naive-before, loc)
}

func offsetAt(seconds int64, loc *time.Location) int64 {
	_, offset := time.Unix(seconds, 0).In(loc).Zone()

	return int64(offset)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}

	return !strings.ContainsFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && !strings.ContainsRune("+-.eE", r)
	})
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError) //nolint:errorlint
	return ok && numErr.Err == strconv.ErrRange
}
