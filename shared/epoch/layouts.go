package epoch

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

type wallClock struct {
	year, month, day     int
	hour, minute, second int
}

// layout pairs a structural matcher with the extraction of its fields.
// Adding an accepted input format is a new entry in layouts.
type layout struct {
	name    string
	pattern *regexp.Regexp
	fields  func(m []string) wallClock
}

var layouts = []layout{
	{
		name:    "YYYY-MM-DD-HHMMSS",
		pattern: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(\d{2})(\d{2})(\d{2})$`),
		fields:  yearFirst,
	},
	{
		name:    "YYYYMMDDHHMMSS",
		pattern: regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})$`),
		fields:  yearFirst,
	},
	{
		name:    "YYYYMMDDHHMM",
		pattern: regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})$`),
		fields:  yearFirst,
	},
	{
		name:    "MM/DD/YYYY HH:MM",
		pattern: regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4}) (\d{1,2}):(\d{2})$`),
		fields:  monthFirst,
	},
}

// SupportedFormats lists the accepted datetime layouts in matching order.
func SupportedFormats() []string {
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.name
	}

	return names
}

func match(input string) (wallClock, bool) {
	for _, l := range layouts {
		if m := l.pattern.FindStringSubmatch(input); m != nil {
			return l.fields(m), true
		}
	}

	return wallClock{}, false
}

// yearFirst reads year, month, day, hour, minute and an optional second.
func yearFirst(m []string) wallClock {
	w := wallClock{
		year:   digits(m[1]),
		month:  digits(m[2]),
		day:    digits(m[3]),
		hour:   digits(m[4]),
		minute: digits(m[5]),
	}

	if len(m) > 6 {
		w.second = digits(m[6])
	}

	return w
}

func monthFirst(m []string) wallClock {
	return wallClock{
		month:  digits(m[1]),
		day:    digits(m[2]),
		year:   digits(m[3]),
		hour:   digits(m[4]),
		minute: digits(m[5]),
	}
}

// digits converts a run the patterns already restricted to ASCII digits.
func digits(s string) int {
	n, _ := strconv.Atoi(s)

	return n
}

// check returns a description of the first out-of-range field, or "".
func (w wallClock) check() string {
	switch {
	case w.year < 1:
		return fmt.Sprintf("year %04d out of range", w.year)
	case w.month < 1 || w.month > 12:
		return fmt.Sprintf("month %d out of range", w.month)
	case w.day < 1 || w.day > daysIn(w.year, w.month):
		return fmt.Sprintf("day %d out of range for %04d-%02d", w.day, w.year, w.month)
	case w.hour > 23:
		return fmt.Sprintf("hour %d out of range", w.hour)
	case w.minute > 59:
		return fmt.Sprintf("minute %d out of range", w.minute)
	case w.second > 59:
		return fmt.Sprintf("second %d out of range", w.second)
	}

	return ""
}

func daysIn(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
