// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime_test

import (
	"testing"

	"cloudeng.io/civiltime"
)

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
		{2019, false},
		{2020, true},
		{-4, true},
		{0, true},
		{1, false},
	} {
		if got, want := civiltime.IsLeapYear(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		days := 365
		if tc.leap {
			days = 366
		}
		if got, want := civiltime.DaysInYear(tc.year), days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := civiltime.DaysInMonth(2020, civiltime.February), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civiltime.DaysInMonth(2021, civiltime.February), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civiltime.DaysInMonth(2021, civiltime.December), 31; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJulianDayPivots(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month civiltime.Month
		day   int
		jd    int64
	}{
		{2000, civiltime.January, 1, 2_451_545},
		{2019, civiltime.January, 1, 2_458_485},
		{2019, civiltime.December, 31, 2_458_849},
		{1970, civiltime.January, 1, 2_440_588},
		{1600, civiltime.February, 29, 2_305_507},
		{2400, civiltime.February, 29, 2_597_701},
		{2100, civiltime.March, 1, 2_488_129},
		{-9999, civiltime.January, 1, -1_930_999},
		{9999, civiltime.December, 31, 5_373_484},
	} {
		d := newDate(t, tc.year, tc.month, tc.day)
		if got, want := d.ToJulianDay(), tc.jd; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		rt, err := civiltime.FromJulianDay(tc.jd)
		if err != nil {
			t.Fatalf("%v: %v", tc.jd, err)
		}
		year, month, day := rt.ToCalendarDate()
		if year != tc.year || month != tc.month || day != tc.day {
			t.Errorf("%v: got %v-%v-%v, want %v-%v-%v", tc.jd, year, month, day, tc.year, tc.month, tc.day)
		}
	}
	if got, want := civiltime.MinDate.ToJulianDay(), int64(-1_930_999); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civiltime.MaxDate.ToJulianDay(), int64(5_373_484); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	_, err := civiltime.FromJulianDay(5_373_485)
	rangeErr(t, err, "julian day", -1_930_999, 5_373_484, false)
}

func TestCalendarOrdinalRoundTrip(t *testing.T) {
	// Every day of a leap and a common year converts to an ordinal date
	// and back, and successive days have successive Julian day numbers.
	for _, year := range []int{2019, 2020, 1900, 2000, -1, 0} {
		prev := int64(0)
		ordinal := 0
		for month := civiltime.January; month <= civiltime.December; month++ {
			for day := 1; day <= civiltime.DaysInMonth(year, month); day++ {
				ordinal++
				d := newDate(t, year, month, day)
				oy, oo := d.ToOrdinalDate()
				if oy != year || oo != ordinal {
					t.Fatalf("%v: got %v/%v, want %v/%v", d, oy, oo, year, ordinal)
				}
				od, err := civiltime.FromOrdinalDate(year, ordinal)
				if err != nil || od != d {
					t.Fatalf("%v/%v: got %v, %v", year, ordinal, od, err)
				}
				cy, cm, cd := d.ToCalendarDate()
				if cy != year || cm != month || cd != day {
					t.Fatalf("%v: got %v-%v-%v", d, cy, cm, cd)
				}
				if prev != 0 && d.ToJulianDay() != prev+1 {
					t.Fatalf("%v: non consecutive julian day", d)
				}
				prev = d.ToJulianDay()
			}
		}
		if got, want := ordinal, civiltime.DaysInYear(year); got != want {
			t.Errorf("%v: got %v days, want %v", year, got, want)
		}
	}
}

func TestCalendarDateValidation(t *testing.T) {
	_, err := civiltime.FromCalendarDate(10_000, civiltime.January, 1)
	rangeErr(t, err, "year", -9999, 9999, false)
	_, err = civiltime.FromCalendarDate(2021, civiltime.Month(13), 1)
	rangeErr(t, err, "month", 1, 12, false)
	_, err = civiltime.FromCalendarDate(2021, civiltime.February, 30)
	rangeErr(t, err, "day", 1, 28, true)
	_, err = civiltime.FromCalendarDate(2020, civiltime.February, 30)
	rangeErr(t, err, "day", 1, 29, true)
	_, err = civiltime.FromCalendarDate(2021, civiltime.April, 31)
	rangeErr(t, err, "day", 1, 30, true)
	_, err = civiltime.FromOrdinalDate(2021, 366)
	rangeErr(t, err, "ordinal", 1, 365, true)
	_, err = civiltime.FromOrdinalDate(2020, 367)
	rangeErr(t, err, "ordinal", 1, 366, true)
	_, err = civiltime.FromOrdinalDate(2020, 0)
	rangeErr(t, err, "ordinal", 1, 366, true)
}

func TestWeekdays(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month civiltime.Month
		day   int
		wd    civiltime.Weekday
	}{
		{2019, civiltime.January, 1, civiltime.Tuesday},
		{1970, civiltime.January, 1, civiltime.Thursday},
		{2000, civiltime.January, 1, civiltime.Saturday},
		{2100, civiltime.March, 1, civiltime.Monday},
		{2023, civiltime.January, 1, civiltime.Sunday},
		{2020, civiltime.February, 29, civiltime.Saturday},
	} {
		d := newDate(t, tc.year, tc.month, tc.day)
		if got, want := d.Weekday(), tc.wd; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
	}
}

func TestISOWeekDates(t *testing.T) {
	for _, tc := range []struct {
		year    int
		month   civiltime.Month
		day     int
		isoYear int
		week    int
		wd      civiltime.Weekday
	}{
		{2019, civiltime.January, 1, 2019, 1, civiltime.Tuesday},
		{2019, civiltime.December, 30, 2020, 1, civiltime.Monday},
		{2019, civiltime.December, 31, 2020, 1, civiltime.Tuesday},
		{2020, civiltime.December, 31, 2020, 53, civiltime.Thursday},
		{2021, civiltime.January, 1, 2020, 53, civiltime.Friday},
		{2015, civiltime.December, 28, 2015, 53, civiltime.Monday},
		{2016, civiltime.January, 3, 2015, 53, civiltime.Sunday},
		{2017, civiltime.January, 1, 2016, 52, civiltime.Sunday},
		{1970, civiltime.January, 1, 1970, 1, civiltime.Thursday},
	} {
		d := newDate(t, tc.year, tc.month, tc.day)
		isoYear, week, wd := d.ToISOWeekDate()
		if isoYear != tc.isoYear || week != tc.week || wd != tc.wd {
			t.Errorf("%v: got %v-W%02d-%v, want %v-W%02d-%v",
				d, isoYear, week, wd, tc.isoYear, tc.week, tc.wd)
		}
		if got, want := d.ISOWeek(), tc.week; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		rt, err := civiltime.FromISOWeekDate(tc.isoYear, tc.week, tc.wd)
		if err != nil || rt != d {
			t.Errorf("%v-W%02d-%v: got %v, %v, want %v", tc.isoYear, tc.week, tc.wd, rt, err, d)
		}
	}
	// 2016 has 52 ISO weeks, 2015 and 2020 have 53.
	if _, err := civiltime.FromISOWeekDate(2016, 53, civiltime.Monday); err == nil {
		t.Errorf("expected an error")
	}
	_, err := civiltime.FromISOWeekDate(2015, 54, civiltime.Monday)
	rangeErr(t, err, "week", 1, 53, true)
}

func TestWeekNumbers(t *testing.T) {
	for _, tc := range []struct {
		year           int
		month          civiltime.Month
		day            int
		sunday, monday int
	}{
		{2023, civiltime.January, 1, 1, 0},
		{2023, civiltime.January, 2, 1, 1},
		{2023, civiltime.December, 31, 53, 52},
		{2020, civiltime.February, 29, 8, 8},
	} {
		d := newDate(t, tc.year, tc.month, tc.day)
		if got, want := d.SundayBasedWeek(), tc.sunday; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
		if got, want := d.MondayBasedWeek(), tc.monday; got != want {
			t.Errorf("%v: got %v, want %v", d, got, want)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := newDate(t, 2021, civiltime.February, 28)
	next, ok := d.NextDay()
	if !ok || next != newDate(t, 2021, civiltime.March, 1) {
		t.Errorf("got %v, %v", next, ok)
	}
	prev, ok := newDate(t, 2021, civiltime.January, 1).PreviousDay()
	if !ok || prev != newDate(t, 2020, civiltime.December, 31) {
		t.Errorf("got %v, %v", prev, ok)
	}
	if _, ok := civiltime.MaxDate.NextDay(); ok {
		t.Errorf("expected failure")
	}
	if _, ok := civiltime.MinDate.PreviousDay(); ok {
		t.Errorf("expected failure")
	}

	// Adding and subtracting the same number of days is the identity,
	// and sub-day components of the duration are ignored.
	sum, ok := d.CheckedAdd(civiltime.Days(365))
	if !ok || sum != newDate(t, 2022, civiltime.February, 28) {
		t.Errorf("got %v, %v", sum, ok)
	}
	back, ok := sum.CheckedSub(civiltime.Days(365))
	if !ok || back != d {
		t.Errorf("got %v, %v", back, ok)
	}
	same, ok := d.CheckedAdd(civiltime.Hours(23))
	if !ok || same != d {
		t.Errorf("got %v, %v", same, ok)
	}
	if _, ok := civiltime.MaxDate.CheckedAdd(civiltime.Days(1)); ok {
		t.Errorf("expected failure")
	}
	if got, want := civiltime.MaxDate.SaturatingAdd(civiltime.Days(2)), civiltime.MaxDate; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civiltime.MinDate.SaturatingSub(civiltime.Days(2)), civiltime.MinDate; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := civiltime.MinDate.SaturatingAdd(civiltime.Days(-2)), civiltime.MinDate; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	a, b := newDate(t, 2020, civiltime.January, 1), newDate(t, 2021, civiltime.January, 1)
	if got, want := b.Sub(a), civiltime.Days(366); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), civiltime.Days(-366); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Errorf("ordering predicates wrong for %v, %v", a, b)
	}
	if got, want := a.Compare(b), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b.Compare(a), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Compare(a), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDateString(t *testing.T) {
	if got, want := newDate(t, 2021, civiltime.March, 5).String(), "2021-03-05"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := newDate(t, 9999, civiltime.December, 31).String(), "9999-12-31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
