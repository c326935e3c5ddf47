// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime_test

import (
	"errors"
	"testing"

	"cloudeng.io/civiltime"
)

func TestParseRFC3339(t *testing.T) {
	for _, tc := range []struct {
		input  string
		utc    civiltime.PrimitiveDateTime
		offset civiltime.UtcOffset
	}{
		{"2018-02-13T23:08:32Z",
			newDateTime(t, 2018, civiltime.February, 13, 23, 8, 32, 0), civiltime.UTC},
		{"2018-02-13t23:08:32z",
			newDateTime(t, 2018, civiltime.February, 13, 23, 8, 32, 0), civiltime.UTC},
		{"2018-02-13 23:08:32Z",
			newDateTime(t, 2018, civiltime.February, 13, 23, 8, 32, 0), civiltime.UTC},
		{"2018-02-13T23:08:32.5Z",
			newDateTime(t, 2018, civiltime.February, 13, 23, 8, 32, 500_000_000), civiltime.UTC},
		{"2018-02-13T23:08:32.123456789Z",
			newDateTime(t, 2018, civiltime.February, 13, 23, 8, 32, 123_456_789), civiltime.UTC},
		// Fractions beyond nanosecond precision truncate.
		{"2018-02-13T23:08:32.1234567891Z",
			newDateTime(t, 2018, civiltime.February, 13, 23, 8, 32, 123_456_789), civiltime.UTC},
		// A leap second clamps to :59.
		{"2016-12-31T23:59:60Z",
			newDateTime(t, 2016, civiltime.December, 31, 23, 59, 59, 0), civiltime.UTC},
		{"2018-02-14T01:08:32+02:00",
			newDateTime(t, 2018, civiltime.February, 13, 23, 8, 32, 0),
			newOffset(t, 2, 0, 0)},
		{"2018-02-13T15:08:32-08:00",
			newDateTime(t, 2018, civiltime.February, 13, 23, 8, 32, 0),
			newOffset(t, -8, 0, 0)},
		{"-0044-03-15T12:00:00Z",
			newDateTime(t, -44, civiltime.March, 15, 12, 0, 0, 0), civiltime.UTC},
	} {
		odt, err := civiltime.ParseRFC3339(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := odt.UTCDateTime(), tc.utc; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if got, want := odt.Offset(), tc.offset; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestParseRFC3339Errors(t *testing.T) {
	for _, input := range []string{
		"",
		"2018-02-13",
		"2018/02/13T00:00:00Z",
		"2018-02-13T23:08:32",
		"2018-02-13T23:08Z",
		"2018-02-13X23:08:32Z",
		"2018-02-13T23:08:32.Z",
		"2018-02-13T23:08:32+0200",
		"2018-02-13T23:08:32Q",
	} {
		_, err := civiltime.ParseRFC3339(input)
		if err == nil {
			t.Errorf("%q: expected an error", input)
			continue
		}
		if !errors.Is(err, civiltime.ErrInvalidRFC3339) {
			t.Errorf("%q: got %v", input, err)
		}
	}
	// Out of range components report the component, not the syntax.
	_, err := civiltime.ParseRFC3339("2018-13-01T00:00:00Z")
	rangeErr(t, err, "month", 1, 12, false)
	_, err = civiltime.ParseRFC3339("2021-02-30T00:00:00Z")
	rangeErr(t, err, "day", 1, 28, true)
	_, err = civiltime.ParseRFC3339("2018-02-13T24:00:00Z")
	rangeErr(t, err, "hour", 0, 23, false)
}

func TestFormatRFC3339(t *testing.T) {
	for _, input := range []string{
		"2018-02-13T23:08:32Z",
		"2018-02-13T23:08:32.5Z",
		"2018-02-13T23:08:32.123456789Z",
		"2018-02-14T01:08:32+02:00",
		"2018-02-13T15:08:32-08:00",
		"-0044-03-15T12:00:00Z",
	} {
		odt, err := civiltime.ParseRFC3339(input)
		if err != nil {
			t.Fatalf("%v: %v", input, err)
		}
		if got, want := odt.FormatRFC3339(), input; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	// A UTC instant viewed in another offset formats its local fields.
	odt, err := civiltime.ParseRFC3339("2018-02-13T23:08:32Z")
	if err != nil {
		t.Fatal(err)
	}
	shifted := odt.ToOffset(newOffset(t, 2, 0, 0))
	if got, want := shifted.FormatRFC3339(), "2018-02-14T01:08:32+02:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	b := odt.AppendRFC3339([]byte("ts="))
	if got, want := string(b), "ts=2018-02-13T23:08:32Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
