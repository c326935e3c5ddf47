// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "fmt"

// PrimitiveDateTime is an offset-naive pairing of a Date and a Time.
// Ordering is lexicographic: by date, then by time.
type PrimitiveDateTime struct {
	date Date
	time Time
}

// MinDateTime and MaxDateTime are the earliest and latest representable
// PrimitiveDateTimes.
var (
	MinDateTime = PrimitiveDateTime{date: MinDate}
	MaxDateTime = PrimitiveDateTime{date: MaxDate, time: MaxTime}
)

// NewPrimitiveDateTime pairs a Date with a Time.
func NewPrimitiveDateTime(date Date, time Time) PrimitiveDateTime {
	return PrimitiveDateTime{date: date, time: time}
}

// Date returns the date component.
func (p PrimitiveDateTime) Date() Date {
	return p.date
}

// Time returns the time component.
func (p PrimitiveDateTime) Time() Time {
	return p.time
}

// Year returns the calendar year of the date component.
func (p PrimitiveDateTime) Year() int { return p.date.Year() }

// Month returns the month of the date component.
func (p PrimitiveDateTime) Month() Month { return p.date.Month() }

// Day returns the day of the month of the date component.
func (p PrimitiveDateTime) Day() int { return p.date.Day() }

// Ordinal returns the ordinal day of the year of the date component.
func (p PrimitiveDateTime) Ordinal() int { return p.date.Ordinal() }

// Weekday returns the weekday of the date component.
func (p PrimitiveDateTime) Weekday() Weekday { return p.date.Weekday() }

// ISOWeek returns the ISO 8601 week number of the date component.
func (p PrimitiveDateTime) ISOWeek() int { return p.date.ISOWeek() }

// ToCalendarDate returns the year, month and day of the date component.
func (p PrimitiveDateTime) ToCalendarDate() (int, Month, int) {
	return p.date.ToCalendarDate()
}

// ToOrdinalDate returns the year and ordinal day of the date component.
func (p PrimitiveDateTime) ToOrdinalDate() (int, int) {
	return p.date.ToOrdinalDate()
}

// ToISOWeekDate returns the ISO week date of the date component.
func (p PrimitiveDateTime) ToISOWeekDate() (int, int, Weekday) {
	return p.date.ToISOWeekDate()
}

// ToJulianDay returns the Julian day number of the date component.
func (p PrimitiveDateTime) ToJulianDay() int64 {
	return p.date.ToJulianDay()
}

// Hour returns the hour of the time component.
func (p PrimitiveDateTime) Hour() int { return p.time.Hour() }

// Minute returns the minute of the time component.
func (p PrimitiveDateTime) Minute() int { return p.time.Minute() }

// Second returns the second of the time component.
func (p PrimitiveDateTime) Second() int { return p.time.Second() }

// Millisecond returns the millisecond of the time component.
func (p PrimitiveDateTime) Millisecond() int { return p.time.Millisecond() }

// Microsecond returns the microsecond of the time component.
func (p PrimitiveDateTime) Microsecond() int { return p.time.Microsecond() }

// Nanosecond returns the nanosecond of the time component.
func (p PrimitiveDateTime) Nanosecond() int { return p.time.Nanosecond() }

// AsHMS returns the hour, minute and second of the time component.
func (p PrimitiveDateTime) AsHMS() (int, int, int) { return p.time.AsHMS() }

// AsHMSNano returns the hour, minute, second and nanosecond of the time
// component.
func (p PrimitiveDateTime) AsHMSNano() (int, int, int, int) { return p.time.AsHMSNano() }

// ReplaceDate returns a copy of p with the date component substituted.
func (p PrimitiveDateTime) ReplaceDate(date Date) PrimitiveDateTime {
	return PrimitiveDateTime{date: date, time: p.time}
}

// ReplaceTime returns a copy of p with the time component substituted.
func (p PrimitiveDateTime) ReplaceTime(time Time) PrimitiveDateTime {
	return PrimitiveDateTime{date: p.date, time: time}
}

// CheckedAdd returns p advanced by the duration, or false if the result
// falls outside of the representable range. The day carry reported by
// the time component's arithmetic is applied to the date component.
func (p PrimitiveDateTime) CheckedAdd(dur Duration) (PrimitiveDateTime, bool) {
	carry, t := p.time.AdjustingAdd(dur)
	date, ok := p.date.addDays(carry)
	if !ok {
		return PrimitiveDateTime{}, false
	}
	return PrimitiveDateTime{date: date, time: t}, true
}

// CheckedSub returns p moved back by the duration, or false if the
// result falls outside of the representable range.
func (p PrimitiveDateTime) CheckedSub(dur Duration) (PrimitiveDateTime, bool) {
	carry, t := p.time.AdjustingSub(dur)
	date, ok := p.date.addDays(carry)
	if !ok {
		return PrimitiveDateTime{}, false
	}
	return PrimitiveDateTime{date: date, time: t}, true
}

// SaturatingAdd is CheckedAdd clamping to MinDateTime or MaxDateTime
// instead of failing.
func (p PrimitiveDateTime) SaturatingAdd(dur Duration) PrimitiveDateTime {
	if dt, ok := p.CheckedAdd(dur); ok {
		return dt
	}
	if dur.IsNegative() {
		return MinDateTime
	}
	return MaxDateTime
}

// SaturatingSub is CheckedSub clamping to MinDateTime or MaxDateTime
// instead of failing.
func (p PrimitiveDateTime) SaturatingSub(dur Duration) PrimitiveDateTime {
	if dt, ok := p.CheckedSub(dur); ok {
		return dt
	}
	if dur.IsNegative() {
		return MaxDateTime
	}
	return MinDateTime
}

// Sub returns the signed Duration from o to p.
func (p PrimitiveDateTime) Sub(o PrimitiveDateTime) Duration {
	days := p.date.ToJulianDay() - o.date.ToJulianDay()
	nanos := p.time.nanosSinceMidnight() - o.time.nanosSinceMidnight()
	return NewDuration(days*86_400+nanos/nanosPerSecond, nanos%nanosPerSecond)
}

// Before reports whether p falls before o.
func (p PrimitiveDateTime) Before(o PrimitiveDateTime) bool {
	return p.Compare(o) < 0
}

// After reports whether p falls after o.
func (p PrimitiveDateTime) After(o PrimitiveDateTime) bool {
	return p.Compare(o) > 0
}

// Compare returns -1, 0 or 1 according to whether p is before, equal to
// or after o, comparing the date components first.
func (p PrimitiveDateTime) Compare(o PrimitiveDateTime) int {
	if c := p.date.Compare(o.date); c != 0 {
		return c
	}
	return p.time.Compare(o.time)
}

// AssumeUTC promotes p to an OffsetDateTime, taking its wall-clock
// fields to be in UTC.
func (p PrimitiveDateTime) AssumeUTC() OffsetDateTime {
	return OffsetDateTime{utc: p}
}

// AssumeOffset promotes p to an OffsetDateTime, taking its wall-clock
// fields to be local to the given offset.
func (p PrimitiveDateTime) AssumeOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{utc: p.offsetToUTC(offset), offset: offset}
}

// offsetToUTC reinterprets p as a wall-clock reading in the given
// offset and converts it to UTC, propagating any day carry into the
// date component. Results beyond the representable date range saturate.
func (p PrimitiveDateTime) offsetToUTC(offset UtcOffset) PrimitiveDateTime {
	return p.applySeconds(-offset.WholeSeconds())
}

// utcToOffset reinterprets p as a UTC reading and converts it to the
// local wall-clock in the given offset.
func (p PrimitiveDateTime) utcToOffset(offset UtcOffset) PrimitiveDateTime {
	return p.applySeconds(offset.WholeSeconds())
}

func (p PrimitiveDateTime) applySeconds(secs int) PrimitiveDateTime {
	carry, t := p.time.AdjustingAdd(Seconds(int64(secs)))
	date, ok := p.date.addDays(carry)
	if !ok {
		if carry < 0 {
			return MinDateTime
		}
		return MaxDateTime
	}
	return PrimitiveDateTime{date: date, time: t}
}

func (p PrimitiveDateTime) String() string {
	return fmt.Sprintf("%v %v", p.date, p.time)
}
