// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package civiltime provides immutable value types for working with the
// proleptic Gregorian calendar: day-precision dates, sub-day times of
// day, offset-naive and offset-aware datetimes and a signed nanosecond
// precision duration. All types are plain values; every operation
// returns a new value and values may be freely shared across
// goroutines.
package civiltime

import (
	"fmt"
)

// MinYear and MaxYear bound the years representable by a Date.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Julian day numbers of MinYear-01-01 and MaxYear-12-31.
const (
	minJulianDay = -1_930_999
	maxJulianDay = 5_373_484
)

// Date is a day in the proleptic Gregorian calendar, stored as a Julian
// day number: a continuous count of days with day zero falling on
// -4713-11-24. Years MinYear through MaxYear inclusive are
// representable. Calendar attributes such as the year, month and
// ordinal day are computed on demand from the stored day count. The
// zero value is the day with Julian day number zero.
type Date struct {
	julianDay int64
}

// MinDate and MaxDate are the earliest and latest representable Dates.
var (
	MinDate = Date{minJulianDay}
	MaxDate = Date{maxJulianDay}
)

// IsLeapYear reports whether the given year is a leap year in the
// proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

var daysInMonths = [2][12]int{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// Cumulative days through the end of the preceding month, common years
// first.
var cumulativeDays = [2][12]int{
	{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334},
	{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335},
}

func leapIndex(year int) int {
	if IsLeapYear(year) {
		return 1
	}
	return 0
}

// DaysInMonth returns the number of days in the given month of the
// given year.
func DaysInMonth(year int, month Month) int {
	return daysInMonths[leapIndex(year)][month-1]
}

// FromCalendarDate creates a Date from a year, month and day of month.
// The day is validated against the month and the year's leap status.
func FromCalendarDate(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeError("year", MinYear, MaxYear, int64(year))
	}
	if month < January || month > December {
		return Date{}, rangeError("month", 1, 12, int64(month))
	}
	if dim := DaysInMonth(year, month); day < 1 || day > dim {
		return Date{}, conditionalRangeError("day", 1, int64(dim), int64(day))
	}
	ordinal := cumulativeDays[leapIndex(year)][month-1] + day
	return Date{julianDayFor(year, ordinal)}, nil
}

// FromOrdinalDate creates a Date from a year and a 1-based ordinal day
// of that year.
func FromOrdinalDate(year, ordinal int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeError("year", MinYear, MaxYear, int64(year))
	}
	if ordinal < 1 || ordinal > DaysInYear(year) {
		return Date{}, conditionalRangeError("ordinal", 1, int64(DaysInYear(year)), int64(ordinal))
	}
	return Date{julianDayFor(year, ordinal)}, nil
}

// FromISOWeekDate creates a Date from an ISO 8601 year, week number and
// weekday. Note that the ISO year can differ from the calendar year of
// the resulting date at year boundaries.
func FromISOWeekDate(year, week int, weekday Weekday) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, rangeError("year", MinYear, MaxYear, int64(year))
	}
	if wiy := weeksInYear(year); week < 1 || week > wiy {
		return Date{}, conditionalRangeError("week", 1, int64(wiy), int64(week))
	}

	adj := int64(year - 1)
	raw := 365*adj + divFloor(adj, 4) - divFloor(adj, 100) + divFloor(adj, 400)
	var jan4 int
	switch raw % 7 {
	case -6, 1:
		jan4 = 8
	case -5, 2:
		jan4 = 9
	case -4, 3:
		jan4 = 10
	case -3, 4:
		jan4 = 4
	case -2, 5:
		jan4 = 5
	case -1, 6:
		jan4 = 6
	default:
		jan4 = 7
	}

	ordinal := week*7 + weekday.NumberFromMonday() - jan4
	switch {
	case ordinal <= 0:
		year--
		ordinal += DaysInYear(year)
	case ordinal > DaysInYear(year):
		ordinal -= DaysInYear(year)
		year++
	}
	jd := julianDayFor(year, ordinal)
	if jd < minJulianDay || jd > maxJulianDay {
		return Date{}, conditionalRangeError("week", 1, int64(weeksInYear(year)), int64(week))
	}
	return Date{jd}, nil
}

// FromJulianDay creates a Date from a Julian day number, validating
// that it lies within the representable range.
func FromJulianDay(julianDay int64) (Date, error) {
	if julianDay < minJulianDay || julianDay > maxJulianDay {
		return Date{}, rangeError("julian day", minJulianDay, maxJulianDay, julianDay)
	}
	return Date{julianDay}, nil
}

// julianDayFor returns the Julian day number for a year and ordinal day,
// which must be valid. The algorithm is derived from one provided by
// Peter Baum.
func julianDayFor(year, ordinal int) int64 {
	y := int64(year - 1)
	return int64(ordinal) + 365*y + divFloor(y, 4) - divFloor(y, 100) + divFloor(y, 400) + 1_721_425
}

// toOrdinalDate decomposes the stored Julian day number into a year and
// ordinal day, the inverse of julianDayFor.
func (d Date) toOrdinalDate() (year, ordinal int) {
	z := d.julianDay - 1_721_119
	g := 100*z - 25
	a := g / 3_652_425
	b := a - a/4
	y := divFloor(100*b+g, 36525)
	o := int(b + z - divFloor(36525*y, 100))

	year = int(y)
	if IsLeapYear(year) {
		o += 60
		if o > 366 {
			o -= 366
			year++
		}
	} else {
		o += 59
		if o > 365 {
			o -= 365
			year++
		}
	}
	return year, o
}

// Year returns the calendar year.
func (d Date) Year() int {
	year, _ := d.toOrdinalDate()
	return year
}

// Ordinal returns the 1-based day of the year, in the range 1-366.
func (d Date) Ordinal() int {
	_, ordinal := d.toOrdinalDate()
	return ordinal
}

func (d Date) monthDay() (Month, int) {
	year, ordinal := d.toOrdinalDate()
	days := cumulativeDays[leapIndex(year)]
	for m := December; m > January; m-- {
		if ordinal > days[m-1] {
			return m, ordinal - days[m-1]
		}
	}
	return January, ordinal
}

// Month returns the month of the year.
func (d Date) Month() Month {
	month, _ := d.monthDay()
	return month
}

// Day returns the day of the month, in the range 1-31.
func (d Date) Day() int {
	_, day := d.monthDay()
	return day
}

// ToCalendarDate returns the year, month and day of month.
func (d Date) ToCalendarDate() (int, Month, int) {
	year, _ := d.toOrdinalDate()
	month, day := d.monthDay()
	return year, month, day
}

// ToOrdinalDate returns the year and the 1-based ordinal day of the year.
func (d Date) ToOrdinalDate() (int, int) {
	return d.toOrdinalDate()
}

// ToJulianDay returns the Julian day number.
func (d Date) ToJulianDay() int64 {
	return d.julianDay
}

// Weekday returns the day of the week. The Julian day number modulo 7
// fixes the weekday since day zero was a Monday.
func (d Date) Weekday() Weekday {
	return Weekday((d.julianDay%7 + 7) % 7)
}

// weeksInYear returns the number of ISO 8601 weeks in a year: 53 when
// January 1st falls on a Thursday, or on a Wednesday of a leap year,
// and 52 otherwise.
func weeksInYear(year int) int {
	jan1 := Date{julianDayFor(year, 1)}.Weekday()
	if jan1 == Thursday || (IsLeapYear(year) && jan1 == Wednesday) {
		return 53
	}
	return 52
}

// ToISOWeekDate returns the ISO 8601 year, week number and weekday.
// Week 1 is the week containing the year's first Thursday, so the ISO
// year can differ from the calendar year for dates in the first and
// last calendar weeks.
func (d Date) ToISOWeekDate() (int, int, Weekday) {
	year, ordinal := d.toOrdinalDate()
	weekday := d.Weekday()
	week := (ordinal + 10 - weekday.NumberFromMonday()) / 7
	switch {
	case week == 0:
		return year - 1, weeksInYear(year - 1), weekday
	case week == 53 && weeksInYear(year) == 52:
		return year + 1, 1, weekday
	}
	return year, week, weekday
}

// ISOWeek returns the ISO 8601 week number, in the range 1-53.
func (d Date) ISOWeek() int {
	_, week, _ := d.ToISOWeekDate()
	return week
}

// SundayBasedWeek returns the week of the year where week 1 begins on
// the year's first Sunday, in the range 0-53.
func (d Date) SundayBasedWeek() int {
	return (d.Ordinal() - d.Weekday().NumberDaysFromSunday() + 6) / 7
}

// MondayBasedWeek returns the week of the year where week 1 begins on
// the year's first Monday, in the range 0-53.
func (d Date) MondayBasedWeek() int {
	return (d.Ordinal() - d.Weekday().NumberDaysFromMonday() + 6) / 7
}

// NextDay returns the following day, or false when d is MaxDate.
func (d Date) NextDay() (Date, bool) {
	if d.julianDay == maxJulianDay {
		return Date{}, false
	}
	return Date{d.julianDay + 1}, true
}

// PreviousDay returns the preceding day, or false when d is MinDate.
func (d Date) PreviousDay() (Date, bool) {
	if d.julianDay == minJulianDay {
		return Date{}, false
	}
	return Date{d.julianDay - 1}, true
}

func (d Date) addDays(days int64) (Date, bool) {
	jd := d.julianDay + days
	if jd < minJulianDay || jd > maxJulianDay {
		return Date{}, false
	}
	return Date{jd}, true
}

// CheckedAdd returns d advanced by the whole days of the duration, or
// false if the result falls outside of the representable range. The
// sub-day remainder of the duration is discarded.
func (d Date) CheckedAdd(dur Duration) (Date, bool) {
	return d.addDays(dur.WholeDays())
}

// CheckedSub returns d moved back by the whole days of the duration, or
// false if the result falls outside of the representable range. The
// sub-day remainder of the duration is discarded.
func (d Date) CheckedSub(dur Duration) (Date, bool) {
	return d.addDays(-dur.WholeDays())
}

// SaturatingAdd is CheckedAdd clamping to MinDate or MaxDate instead of
// failing.
func (d Date) SaturatingAdd(dur Duration) Date {
	if date, ok := d.CheckedAdd(dur); ok {
		return date
	}
	if dur.IsNegative() {
		return MinDate
	}
	return MaxDate
}

// SaturatingSub is CheckedSub clamping to MinDate or MaxDate instead of
// failing.
func (d Date) SaturatingSub(dur Duration) Date {
	if date, ok := d.CheckedSub(dur); ok {
		return date
	}
	if dur.IsNegative() {
		return MaxDate
	}
	return MinDate
}

// Sub returns the signed whole-day Duration from o to d, such that
// o plus the result equals d.
func (d Date) Sub(o Date) Duration {
	return Days(d.julianDay - o.julianDay)
}

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool {
	return d.julianDay < o.julianDay
}

// After reports whether d falls after o.
func (d Date) After(o Date) bool {
	return d.julianDay > o.julianDay
}

// Compare returns -1, 0 or 1 according to whether d is before, equal to
// or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.julianDay < o.julianDay:
		return -1
	case d.julianDay > o.julianDay:
		return 1
	}
	return 0
}

// Midnight returns a PrimitiveDateTime on d with an all-zero time
// component.
func (d Date) Midnight() PrimitiveDateTime {
	return PrimitiveDateTime{date: d}
}

// WithTime returns a PrimitiveDateTime pairing d with the given time.
func (d Date) WithTime(t Time) PrimitiveDateTime {
	return PrimitiveDateTime{date: d, time: t}
}

// WithHMS validates the given time components and pairs them with d.
func (d Date) WithHMS(hour, minute, second int) (PrimitiveDateTime, error) {
	t, err := FromHMS(hour, minute, second)
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return d.WithTime(t), nil
}

// WithHMSMilli validates the given time components and pairs them with d.
func (d Date) WithHMSMilli(hour, minute, second, millisecond int) (PrimitiveDateTime, error) {
	t, err := FromHMSMilli(hour, minute, second, millisecond)
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return d.WithTime(t), nil
}

// WithHMSMicro validates the given time components and pairs them with d.
func (d Date) WithHMSMicro(hour, minute, second, microsecond int) (PrimitiveDateTime, error) {
	t, err := FromHMSMicro(hour, minute, second, microsecond)
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return d.WithTime(t), nil
}

// WithHMSNano validates the given time components and pairs them with d.
func (d Date) WithHMSNano(hour, minute, second, nanosecond int) (PrimitiveDateTime, error) {
	t, err := FromHMSNano(hour, minute, second, nanosecond)
	if err != nil {
		return PrimitiveDateTime{}, err
	}
	return d.WithTime(t), nil
}

func (d Date) String() string {
	year, month, day := d.ToCalendarDate()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func divFloor(a, b int64) int64 {
	q, r := a/b, a%b
	if r != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
