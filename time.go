// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "fmt"

const nanosPerDay = 86_400 * int64(nanosPerSecond)

// Time is a time of day with nanosecond precision. All components are
// always within range: hour 0-23, minute 0-59, second 0-59 and
// nanosecond 0-999_999_999. There is no representation of a leap
// second. The zero value is midnight.
type Time struct {
	hour       int8
	minute     int8
	second     int8
	nanosecond int32
}

// Midnight is the time 00:00:00.0.
var Midnight = Time{}

// MaxTime is the latest representable time of day, 23:59:59.999999999.
var MaxTime = Time{23, 59, 59, nanosPerSecond - 1}

// FromHMS creates a Time from an hour, minute and second. Components
// are checked in that order and the first out of range component is
// reported.
func FromHMS(hour, minute, second int) (Time, error) {
	return FromHMSNano(hour, minute, second, 0)
}

// FromHMSMilli creates a Time from an hour, minute, second and
// millisecond, checked in that order.
func FromHMSMilli(hour, minute, second, millisecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if millisecond < 0 || millisecond > 999 {
		return Time{}, rangeError("millisecond", 0, 999, int64(millisecond))
	}
	return Time{int8(hour), int8(minute), int8(second), int32(millisecond) * 1_000_000}, nil
}

// FromHMSMicro creates a Time from an hour, minute, second and
// microsecond, checked in that order.
func FromHMSMicro(hour, minute, second, microsecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if microsecond < 0 || microsecond > 999_999 {
		return Time{}, rangeError("microsecond", 0, 999_999, int64(microsecond))
	}
	return Time{int8(hour), int8(minute), int8(second), int32(microsecond) * 1_000}, nil
}

// FromHMSNano creates a Time from an hour, minute, second and
// nanosecond, checked in that order.
func FromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	if err := checkHMS(hour, minute, second); err != nil {
		return Time{}, err
	}
	if nanosecond < 0 || nanosecond > nanosPerSecond-1 {
		return Time{}, rangeError("nanosecond", 0, nanosPerSecond-1, int64(nanosecond))
	}
	return Time{int8(hour), int8(minute), int8(second), int32(nanosecond)}, nil
}

func checkHMS(hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return rangeError("hour", 0, 23, int64(hour))
	}
	if minute < 0 || minute > 59 {
		return rangeError("minute", 0, 59, int64(minute))
	}
	if second < 0 || second > 59 {
		return rangeError("second", 0, 59, int64(second))
	}
	return nil
}

// Hour returns the hour, in the range 0-23.
func (t Time) Hour() int {
	return int(t.hour)
}

// Minute returns the minute, in the range 0-59.
func (t Time) Minute() int {
	return int(t.minute)
}

// Second returns the second, in the range 0-59.
func (t Time) Second() int {
	return int(t.second)
}

// Millisecond returns the milliseconds within the second, in the range 0-999.
func (t Time) Millisecond() int {
	return int(t.nanosecond / 1_000_000)
}

// Microsecond returns the microseconds within the second, in the range
// 0-999_999.
func (t Time) Microsecond() int {
	return int(t.nanosecond / 1_000)
}

// Nanosecond returns the nanoseconds within the second, in the range
// 0-999_999_999.
func (t Time) Nanosecond() int {
	return int(t.nanosecond)
}

// AsHMS returns the hour, minute and second.
func (t Time) AsHMS() (int, int, int) {
	return int(t.hour), int(t.minute), int(t.second)
}

// AsHMSMilli returns the hour, minute, second and millisecond.
func (t Time) AsHMSMilli() (int, int, int, int) {
	return int(t.hour), int(t.minute), int(t.second), t.Millisecond()
}

// AsHMSMicro returns the hour, minute, second and microsecond.
func (t Time) AsHMSMicro() (int, int, int, int) {
	return int(t.hour), int(t.minute), int(t.second), t.Microsecond()
}

// AsHMSNano returns the hour, minute, second and nanosecond.
func (t Time) AsHMSNano() (int, int, int, int) {
	return int(t.hour), int(t.minute), int(t.second), int(t.nanosecond)
}

// nanosSinceMidnight returns the time as nanoseconds since midnight,
// in the range 0 to nanosPerDay-1.
func (t Time) nanosSinceMidnight() int64 {
	secs := int64(t.hour)*3_600 + int64(t.minute)*60 + int64(t.second)
	return secs*nanosPerSecond + int64(t.nanosecond)
}

func timeFromNanos(nanos int64) Time {
	secs := int32(nanos / nanosPerSecond)
	return Time{
		hour:       int8(secs / 3_600),
		minute:     int8(secs / 60 % 60),
		second:     int8(secs % 60),
		nanosecond: int32(nanos % nanosPerSecond),
	}
}

// AdjustingAdd returns t advanced by the duration, wrapped to a single
// day, together with the signed number of whole days the addition
// crossed a midnight boundary. The day carry is never discarded here;
// callers composing a Time with a Date apply it to the date component.
func (t Time) AdjustingAdd(dur Duration) (int64, Time) {
	// Split off the whole days first so that the remaining sub-day
	// arithmetic cannot overflow an int64 of nanoseconds.
	dayCarry := dur.seconds / 86_400
	rem := dur.seconds % 86_400
	nanos := t.nanosSinceMidnight() + rem*nanosPerSecond + int64(dur.nanoseconds)
	extra := divFloor(nanos, nanosPerDay)
	return dayCarry + extra, timeFromNanos(nanos - extra*nanosPerDay)
}

// AdjustingSub is AdjustingAdd for subtraction: it returns the wrapped
// time and the signed day carry of t minus the duration.
func (t Time) AdjustingSub(dur Duration) (int64, Time) {
	dayCarry := -(dur.seconds / 86_400)
	rem := dur.seconds % 86_400
	nanos := t.nanosSinceMidnight() - rem*nanosPerSecond - int64(dur.nanoseconds)
	extra := divFloor(nanos, nanosPerDay)
	return dayCarry + extra, timeFromNanos(nanos - extra*nanosPerDay)
}

// Sub returns the signed Duration from o to t, in the open interval of
// plus or minus one day.
func (t Time) Sub(o Time) Duration {
	return Nanoseconds(t.nanosSinceMidnight() - o.nanosSinceMidnight())
}

// Before reports whether t falls before o within a day.
func (t Time) Before(o Time) bool {
	return t.nanosSinceMidnight() < o.nanosSinceMidnight()
}

// After reports whether t falls after o within a day.
func (t Time) After(o Time) bool {
	return t.nanosSinceMidnight() > o.nanosSinceMidnight()
}

// Compare returns -1, 0 or 1 according to whether t is before, equal
// to or after o.
func (t Time) Compare(o Time) int {
	a, b := t.nanosSinceMidnight(), o.nanosSinceMidnight()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (t Time) String() string {
	if t.nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	}
	frac := fmt.Sprintf("%09d", t.nanosecond)
	for len(frac) > 1 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	return fmt.Sprintf("%02d:%02d:%02d.%s", t.hour, t.minute, t.second, frac)
}
