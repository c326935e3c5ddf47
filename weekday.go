// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday represents a day of the week, Monday through Sunday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayFromMonday returns the Weekday for an ISO weekday number in the
// range 1 (Monday) to 7 (Sunday).
func WeekdayFromMonday(n int) (Weekday, error) {
	if n < 1 || n > 7 {
		return 0, rangeError("weekday", 1, 7, int64(n))
	}
	return Weekday(n - 1), nil
}

// WeekdayFromSunday returns the Weekday for a weekday number in the
// range 1 (Sunday) to 7 (Saturday).
func WeekdayFromSunday(n int) (Weekday, error) {
	if n < 1 || n > 7 {
		return 0, rangeError("weekday", 1, 7, int64(n))
	}
	return Weekday((n + 5) % 7), nil
}

// Next returns the weekday following w, with Sunday wrapping to Monday.
func (w Weekday) Next() Weekday {
	return (w + 1) % 7
}

// Previous returns the weekday preceding w, with Monday wrapping to Sunday.
func (w Weekday) Previous() Weekday {
	return (w + 6) % 7
}

// NumberFromMonday returns the ISO weekday number, Monday being 1 and
// Sunday 7.
func (w Weekday) NumberFromMonday() int {
	return int(w) + 1
}

// NumberFromSunday returns the weekday number with Sunday being 1 and
// Saturday 7.
func (w Weekday) NumberFromSunday() int {
	return w.NumberDaysFromSunday() + 1
}

// NumberDaysFromMonday returns the number of days since Monday, in the
// range 0-6.
func (w Weekday) NumberDaysFromMonday() int {
	return int(w)
}

// NumberDaysFromSunday returns the number of days since Sunday, in the
// range 0-6.
func (w Weekday) NumberDaysFromSunday() int {
	return (int(w) + 1) % 7
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdays[w]
}

// ParseWeekday parses a weekday name of the form "Mon" to "Sun" or any
// other longer prefixes of "Monday" to "Sunday" in either lower or upper
// case.
func ParseWeekday(val string) (Weekday, error) {
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("invalid weekday: %s", val)
	}
	for i := range weekdays {
		if strings.HasPrefix(strings.ToLower(weekdays[i]), lc) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %s", val)
}
