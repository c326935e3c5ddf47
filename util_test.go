// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime_test

import (
	"errors"
	"testing"

	"cloudeng.io/civiltime"
)

func newDate(t *testing.T, year int, month civiltime.Month, day int) civiltime.Date {
	t.Helper()
	d, err := civiltime.FromCalendarDate(year, month, day)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func newTime(t *testing.T, hour, minute, second, nanosecond int) civiltime.Time {
	t.Helper()
	tod, err := civiltime.FromHMSNano(hour, minute, second, nanosecond)
	if err != nil {
		t.Fatal(err)
	}
	return tod
}

func newDateTime(t *testing.T, year int, month civiltime.Month, day, hour, minute, second, nanosecond int) civiltime.PrimitiveDateTime {
	t.Helper()
	return civiltime.NewPrimitiveDateTime(
		newDate(t, year, month, day),
		newTime(t, hour, minute, second, nanosecond))
}

func newOffset(t *testing.T, hours, minutes, seconds int) civiltime.UtcOffset {
	t.Helper()
	o, err := civiltime.OffsetFromHMS(hours, minutes, seconds)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func rangeErr(t *testing.T, err error, name string, min, max int64, conditional bool) {
	t.Helper()
	var cre *civiltime.ComponentRangeError
	if !errors.As(err, &cre) {
		t.Errorf("got %T (%v), want *ComponentRangeError", err, err)
		return
	}
	if got, want := cre.Name, name; got != want {
		t.Errorf("got component %v, want %v", got, want)
	}
	if got, want := cre.Minimum, min; got != want {
		t.Errorf("%v: got minimum %v, want %v", name, got, want)
	}
	if got, want := cre.Maximum, max; got != want {
		t.Errorf("%v: got maximum %v, want %v", name, got, want)
	}
	if got, want := cre.Conditional, conditional; got != want {
		t.Errorf("%v: got conditional %v, want %v", name, got, want)
	}
}
