// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"math"
	"time"
)

// Julian day number of the Unix epoch, 1970-01-01.
const unixEpochJulianDay = 2_440_588

const (
	minUnixTimestamp = (minJulianDay - unixEpochJulianDay) * 86_400
	maxUnixTimestamp = (maxJulianDay-unixEpochJulianDay)*86_400 + 86_399
)

// OffsetDateTime is an instant in time: a datetime stored in UTC
// together with the UTC offset in which it is to be read. The offset is
// metadata only; wall-clock accessors compute the local representation
// by applying the offset to the stored UTC value at read time.
type OffsetDateTime struct {
	utc    PrimitiveDateTime
	offset UtcOffset
}

// Clock is a capability returning the current instant. A Clock is
// passed explicitly wherever the current time is needed so that tests
// can substitute a fixed value; there is no hidden process-wide clock.
type Clock func() time.Time

// SystemClock reads the host's wall clock.
var SystemClock Clock = time.Now

// NowUTC returns the current instant in UTC, reading the clock exactly
// once. Instants outside of the representable range saturate to
// MinDateTime or MaxDateTime.
func NowUTC(clock Clock) OffsetDateTime {
	now := clock()
	odt, err := FromUnixTimestamp(now.Unix())
	if err != nil {
		if now.Unix() < 0 {
			return MinDateTime.AssumeUTC()
		}
		return MaxDateTime.AssumeUTC()
	}
	odt.utc.time.nanosecond = int32(now.Nanosecond())
	return odt
}

// FromStdTime converts a time.Time to an OffsetDateTime carrying the
// same instant and the time's fixed zone offset.
func FromStdTime(t time.Time) (OffsetDateTime, error) {
	odt, err := FromUnixTimestamp(t.Unix())
	if err != nil {
		return OffsetDateTime{}, err
	}
	odt.utc.time.nanosecond = int32(t.Nanosecond())
	_, zoneSecs := t.Zone()
	offset, err := OffsetFromSeconds(zoneSecs)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return odt.ToOffset(offset), nil
}

// FromUnixTimestamp creates an OffsetDateTime in UTC from a Unix
// timestamp in seconds.
func FromUnixTimestamp(secs int64) (OffsetDateTime, error) {
	if secs < minUnixTimestamp || secs > maxUnixTimestamp {
		return OffsetDateTime{}, rangeError("timestamp", minUnixTimestamp, maxUnixTimestamp, secs)
	}
	days := divFloor(secs, 86_400)
	rem := secs - days*86_400
	date := Date{unixEpochJulianDay + days}
	return PrimitiveDateTime{date: date, time: timeFromNanos(rem * nanosPerSecond)}.AssumeUTC(), nil
}

// FromUnixTimestampNanos creates an OffsetDateTime in UTC from a Unix
// timestamp in nanoseconds.
func FromUnixTimestampNanos(nanos int64) (OffsetDateTime, error) {
	secs := divFloor(nanos, nanosPerSecond)
	odt, err := FromUnixTimestamp(secs)
	if err != nil {
		return OffsetDateTime{}, err
	}
	subsec := nanos - secs*nanosPerSecond
	odt.utc.time.nanosecond = int32(subsec)
	return odt, nil
}

// UnixTimestamp returns the instant as a Unix timestamp in whole
// seconds.
func (o OffsetDateTime) UnixTimestamp() int64 {
	days := o.utc.date.ToJulianDay() - unixEpochJulianDay
	return days*86_400 + o.utc.time.nanosSinceMidnight()/nanosPerSecond
}

// UnixTimestampNanos returns the instant as a Unix timestamp in
// nanoseconds. The full representable date range exceeds the range of
// an int64 of nanoseconds; out of range instants saturate.
func (o OffsetDateTime) UnixTimestampNanos() int64 {
	ts := o.UnixTimestamp()
	secs, ok := mul64(ts, nanosPerSecond)
	if !ok {
		if ts < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	ns, ok := add64(secs, int64(o.utc.time.nanosecond))
	if !ok {
		return math.MaxInt64
	}
	return ns
}

// Offset returns the offset metadata.
func (o OffsetDateTime) Offset() UtcOffset {
	return o.offset
}

// UTCDateTime returns the stored UTC datetime.
func (o OffsetDateTime) UTCDateTime() PrimitiveDateTime {
	return o.utc
}

// ToOffset returns the same instant expressed in a different offset.
// The stored UTC value is unchanged; only the offset metadata and the
// derived local fields differ.
func (o OffsetDateTime) ToOffset(offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{utc: o.utc, offset: offset}
}

// localDateTime returns the wall-clock representation of the instant in
// its offset.
func (o OffsetDateTime) localDateTime() PrimitiveDateTime {
	return o.utc.utcToOffset(o.offset)
}

// Date returns the local calendar date.
func (o OffsetDateTime) Date() Date { return o.localDateTime().Date() }

// Time returns the local time of day.
func (o OffsetDateTime) Time() Time { return o.localDateTime().Time() }

// Year returns the local calendar year.
func (o OffsetDateTime) Year() int { return o.localDateTime().Year() }

// Month returns the local month.
func (o OffsetDateTime) Month() Month { return o.localDateTime().Month() }

// Day returns the local day of the month.
func (o OffsetDateTime) Day() int { return o.localDateTime().Day() }

// Ordinal returns the local ordinal day of the year.
func (o OffsetDateTime) Ordinal() int { return o.localDateTime().Ordinal() }

// Weekday returns the local weekday.
func (o OffsetDateTime) Weekday() Weekday { return o.localDateTime().Weekday() }

// Hour returns the local hour.
func (o OffsetDateTime) Hour() int { return o.localDateTime().Hour() }

// Minute returns the local minute.
func (o OffsetDateTime) Minute() int { return o.localDateTime().Minute() }

// Second returns the local second.
func (o OffsetDateTime) Second() int { return o.localDateTime().Second() }

// Nanosecond returns the local nanosecond.
func (o OffsetDateTime) Nanosecond() int { return o.localDateTime().Nanosecond() }

// ToCalendarDate returns the local year, month and day.
func (o OffsetDateTime) ToCalendarDate() (int, Month, int) {
	return o.localDateTime().ToCalendarDate()
}

// ToOrdinalDate returns the local year and ordinal day.
func (o OffsetDateTime) ToOrdinalDate() (int, int) {
	return o.localDateTime().ToOrdinalDate()
}

// ToISOWeekDate returns the local ISO week date.
func (o OffsetDateTime) ToISOWeekDate() (int, int, Weekday) {
	return o.localDateTime().ToISOWeekDate()
}

// ToHMSNano returns the local hour, minute, second and nanosecond.
func (o OffsetDateTime) ToHMSNano() (int, int, int, int) {
	return o.localDateTime().AsHMSNano()
}

// ReplaceOffset substitutes the offset metadata, changing the instant
// so that the local wall-clock fields are preserved under the stored
// UTC invariant. To change only the presentation offset use ToOffset.
func (o OffsetDateTime) ReplaceOffset(offset UtcOffset) OffsetDateTime {
	return o.localDateTime().AssumeOffset(offset)
}

// ReplaceDate substitutes the local calendar date, preserving the local
// time of day and the offset. The substitution happens in the local
// representation and is then converted back to UTC.
func (o OffsetDateTime) ReplaceDate(date Date) OffsetDateTime {
	return o.localDateTime().ReplaceDate(date).AssumeOffset(o.offset)
}

// ReplaceTime substitutes the local time of day, preserving the local
// date and the offset.
func (o OffsetDateTime) ReplaceTime(time Time) OffsetDateTime {
	return o.localDateTime().ReplaceTime(time).AssumeOffset(o.offset)
}

// ReplaceDateTime substitutes the local datetime, preserving the offset.
func (o OffsetDateTime) ReplaceDateTime(dt PrimitiveDateTime) OffsetDateTime {
	return dt.AssumeOffset(o.offset)
}

// SaturatingAdd advances the UTC instant by the duration, clamping to
// the representable range. The offset is preserved unchanged.
func (o OffsetDateTime) SaturatingAdd(dur Duration) OffsetDateTime {
	return OffsetDateTime{utc: o.utc.SaturatingAdd(dur), offset: o.offset}
}

// SaturatingSub moves the UTC instant back by the duration, clamping to
// the representable range. The offset is preserved unchanged.
func (o OffsetDateTime) SaturatingSub(dur Duration) OffsetDateTime {
	return OffsetDateTime{utc: o.utc.SaturatingSub(dur), offset: o.offset}
}

// CheckedAdd returns the instant advanced by the duration, or false if
// the result is not representable.
func (o OffsetDateTime) CheckedAdd(dur Duration) (OffsetDateTime, bool) {
	utc, ok := o.utc.CheckedAdd(dur)
	if !ok {
		return OffsetDateTime{}, false
	}
	return OffsetDateTime{utc: utc, offset: o.offset}, true
}

// CheckedSub returns the instant moved back by the duration, or false
// if the result is not representable.
func (o OffsetDateTime) CheckedSub(dur Duration) (OffsetDateTime, bool) {
	utc, ok := o.utc.CheckedSub(dur)
	if !ok {
		return OffsetDateTime{}, false
	}
	return OffsetDateTime{utc: utc, offset: o.offset}, true
}

// Sub returns the signed Duration from the instant of other to the
// instant of o.
func (o OffsetDateTime) Sub(other OffsetDateTime) Duration {
	return o.utc.Sub(other.utc)
}

// Equal reports whether two values denote the same instant, regardless
// of their offsets.
func (o OffsetDateTime) Equal(other OffsetDateTime) bool {
	return o.utc == other.utc
}

// Before reports whether the instant of o precedes that of other.
func (o OffsetDateTime) Before(other OffsetDateTime) bool {
	return o.utc.Before(other.utc)
}

// After reports whether the instant of o follows that of other.
func (o OffsetDateTime) After(other OffsetDateTime) bool {
	return o.utc.After(other.utc)
}

// Compare orders two values by instant.
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	return o.utc.Compare(other.utc)
}

func (o OffsetDateTime) String() string {
	return fmt.Sprintf("%v %v", o.localDateTime(), o.offset)
}
