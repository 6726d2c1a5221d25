// Package timeval implements the absolute game-time value: a count of
// whole hours since the calendar epoch.
//
// The calendar convention is the proleptic Gregorian calendar with
// astronomical year numbering (year 0 exists, year -1 precedes it) and
// a 24-hour day. The epoch — total hours zero — is year 1, January 1,
// hour 0. Values before the epoch are negative hour counts.
//
// Civil-date conversion uses the standard days-from-civil algorithm
// over 400-year Gregorian cycles, so FromYMD and YMD are exact
// inverses for every representable date.
//
// TimeValue is a value type: every operation returns a fresh value and
// nothing is ever mutated in place.
package timeval

import (
	"encoding/json"
	"errors"
	"fmt"
)

// HoursPerDay is the length of a calendar day. The whole module assumes
// 24; it is named rather than inlined so the convention is visible at
// use sites.
const HoursPerDay = 24

// Years outside this window would overflow the hour count long before
// any game cares; FromYMD rejects them rather than wrapping.
const (
	minYear = -1_000_000_000
	maxYear = 1_000_000_000
)

var (
	// ErrInvalidDate reports a year/month/day/hour outside the valid
	// ranges of the calendar convention.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrOverflow reports arithmetic that would exceed the
	// representable range of a TimeValue.
	ErrOverflow = errors.New("time value out of range")
)

// TimeValue is an absolute point in game time, measured in whole hours
// since the epoch (year 1, January 1, hour 0). The zero value is the
// epoch itself.
type TimeValue struct {
	hours int64
}

// FromHours constructs a TimeValue from a raw hour count.
func FromHours(h int64) TimeValue { return TimeValue{hours: h} }

// Hours returns the raw hour count since the epoch.
func (t TimeValue) Hours() int64 { return t.hours }

// FromYMD constructs a TimeValue from a calendar date and hour of day.
// Month is 1..12, day is validated against the real month length
// (including leap Februaries), hour is 0..23. Years far outside any
// plausible game timeline return ErrOverflow.
func FromYMD(year, month, day, hour int) (TimeValue, error) {
	if year < minYear || year > maxYear {
		return TimeValue{}, fmt.Errorf("%w: year %d", ErrOverflow, year)
	}
	if month < 1 || month > 12 {
		return TimeValue{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return TimeValue{}, fmt.Errorf("%w: day %d of %d/%d", ErrInvalidDate, day, year, month)
	}
	if hour < 0 || hour >= HoursPerDay {
		return TimeValue{}, fmt.Errorf("%w: hour %d", ErrInvalidDate, hour)
	}
	days := daysFromCivil(int64(year), month, day) - epochDays
	return TimeValue{hours: days*HoursPerDay + int64(hour)}, nil
}

// YMD returns the calendar date and hour of day for t. It is the exact
// inverse of FromYMD for values FromYMD produces; for arbitrary hour
// counts it applies the same Gregorian conversion.
func (t TimeValue) YMD() (year, month, day, hour int) {
	d := floorDiv(t.hours, HoursPerDay)
	hour = int(t.hours - d*HoursPerDay)
	y, m, dd := civilFromDays(d + epochDays)
	return int(y), m, dd, hour
}

// Year returns the calendar year of t.
func (t TimeValue) Year() int { y, _, _, _ := t.YMD(); return y }

// Month returns the calendar month of t (1..12).
func (t TimeValue) Month() int { _, m, _, _ := t.YMD(); return m }

// Day returns the day of the month of t (1..31).
func (t TimeValue) Day() int { _, _, d, _ := t.YMD(); return d }

// Hour returns the hour of day of t (0..23).
func (t TimeValue) Hour() int { _, _, _, h := t.YMD(); return h }

// Add returns t moved by the given number of hours (negative moves
// backward). Returns ErrOverflow if the result would wrap.
func (t TimeValue) Add(hours int64) (TimeValue, error) {
	sum := t.hours + hours
	// Signed overflow: the sum flipped sign away from both operands.
	if (hours > 0 && sum < t.hours) || (hours < 0 && sum > t.hours) {
		return TimeValue{}, fmt.Errorf("%w: %d + %d hours", ErrOverflow, t.hours, hours)
	}
	return TimeValue{hours: sum}, nil
}

// Diff returns t - other in hours. Positive means t is later.
func (t TimeValue) Diff(other TimeValue) int64 { return t.hours - other.hours }

// Before reports whether t is strictly earlier than other.
func (t TimeValue) Before(other TimeValue) bool { return t.hours < other.hours }

// After reports whether t is strictly later than other.
func (t TimeValue) After(other TimeValue) bool { return t.hours > other.hours }

// Equal reports whether t and other are the same instant.
func (t TimeValue) Equal(other TimeValue) bool { return t.hours == other.hours }

// Compare returns -1, 0, or +1 ordering t against other.
func (t TimeValue) Compare(other TimeValue) int {
	switch {
	case t.hours < other.hours:
		return -1
	case t.hours > other.hours:
		return 1
	}
	return 0
}

// String renders a fixed debug form, e.g. "0001-01-02 06:00". This is
// not prose rendering; display formatting belongs to the host engine.
func (t TimeValue) String() string {
	y, m, d, h := t.YMD()
	return fmt.Sprintf("%04d-%02d-%02d %02d:00", y, m, d, h)
}

// MarshalJSON encodes the value as its raw hour count, the minimal
// serialization of a time point.
func (t TimeValue) MarshalJSON() ([]byte, error) { return json.Marshal(t.hours) }

// UnmarshalJSON decodes a raw hour count.
func (t *TimeValue) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &t.hours) }

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of the given month in the given year.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// epochDays is daysFromCivil(1, 1, 1): the civil day number of the
// calendar epoch.
var epochDays = daysFromCivil(1, 1, 1)

// daysFromCivil returns the number of days since civil 1970-03-01-based
// day zero for the given proleptic Gregorian date. Standard algorithm:
// shift the year to start in March so leap days land at the end, then
// count whole 400-year eras.
func daysFromCivil(y int64, m, d int) int64 {
	if m <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1      // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy  // [0, 146096]
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (y int64, m, d int) {
	z += 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097                                      // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365     // [0, 399]
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)                   // [0, 365]
	mp := (5*doy + 2) / 153                                    // [0, 11]
	d = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		m = int(mp) + 3
	} else {
		m = int(mp) - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

// floorDiv divides rounding toward negative infinity, so pre-epoch
// hour counts land on the correct day.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
