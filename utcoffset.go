// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "fmt"

// UtcOffset is a fixed offset from UTC as signed hours, minutes and
// seconds. All three components share a sign (or are zero) and the
// magnitude of the offset is less than 24 hours. The zero value is UTC.
// Named zones and daylight saving rules are out of scope; an offset is
// purely a displacement.
type UtcOffset struct {
	hours   int8
	minutes int8
	seconds int8
}

// UTC is the zero offset.
var UTC = UtcOffset{}

// OffsetFromHMS creates a UtcOffset from hours, minutes and seconds.
// Each component may range from -23/-59/-59 to 23/59/59; when the signs
// of nonzero components disagree, the minutes and seconds are coerced
// to the sign established by the most significant nonzero component.
func OffsetFromHMS(hours, minutes, seconds int) (UtcOffset, error) {
	if hours < -23 || hours > 23 {
		return UtcOffset{}, rangeError("hours", -23, 23, int64(hours))
	}
	if minutes < -59 || minutes > 59 {
		return UtcOffset{}, rangeError("minutes", -59, 59, int64(minutes))
	}
	if seconds < -59 || seconds > 59 {
		return UtcOffset{}, rangeError("seconds", -59, 59, int64(seconds))
	}
	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		minutes = -minutes
	}
	if (hours > 0 && seconds < 0) || (hours < 0 && seconds > 0) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		seconds = -seconds
	}
	return UtcOffset{int8(hours), int8(minutes), int8(seconds)}, nil
}

// OffsetFromSeconds creates a UtcOffset from a total number of seconds
// east of UTC, which must be less than 24 hours in magnitude.
func OffsetFromSeconds(seconds int) (UtcOffset, error) {
	if seconds < -86_399 || seconds > 86_399 {
		return UtcOffset{}, rangeError("seconds", -86_399, 86_399, int64(seconds))
	}
	return UtcOffset{int8(seconds / 3_600), int8(seconds / 60 % 60), int8(seconds % 60)}, nil
}

// AsHMS returns the hour, minute and second components of the offset.
func (o UtcOffset) AsHMS() (int, int, int) {
	return int(o.hours), int(o.minutes), int(o.seconds)
}

// WholeHours returns the whole hours in the offset.
func (o UtcOffset) WholeHours() int {
	return int(o.hours)
}

// WholeMinutes returns the offset as a total number of minutes.
func (o UtcOffset) WholeMinutes() int {
	return int(o.hours)*60 + int(o.minutes)
}

// WholeSeconds returns the offset as a total number of seconds.
func (o UtcOffset) WholeSeconds() int {
	return int(o.hours)*3_600 + int(o.minutes)*60 + int(o.seconds)
}

// MinutesPastHour returns the minute component, in the range -59 to 59.
func (o UtcOffset) MinutesPastHour() int {
	return int(o.minutes)
}

// SecondsPastMinute returns the second component, in the range -59 to 59.
func (o UtcOffset) SecondsPastMinute() int {
	return int(o.seconds)
}

// IsUTC reports whether the offset is zero.
func (o UtcOffset) IsUTC() bool {
	return o == UtcOffset{}
}

// IsPositive reports whether the offset is east of UTC.
func (o UtcOffset) IsPositive() bool {
	return o.hours > 0 || o.minutes > 0 || o.seconds > 0
}

// IsNegative reports whether the offset is west of UTC.
func (o UtcOffset) IsNegative() bool {
	return o.hours < 0 || o.minutes < 0 || o.seconds < 0
}

// Neg returns the offset with all components negated.
func (o UtcOffset) Neg() UtcOffset {
	return UtcOffset{-o.hours, -o.minutes, -o.seconds}
}

func (o UtcOffset) String() string {
	sign := "+"
	if o.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, abs8(o.hours), abs8(o.minutes), abs8(o.seconds))
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
