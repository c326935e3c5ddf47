// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"math"
	"time"
)

const nanosPerSecond = 1_000_000_000

// Duration represents a signed span of time as whole seconds and a
// subsecond nanosecond component. The two fields always agree in sign:
// for a nonzero duration either both are non-negative or both are
// non-positive, and the nanosecond component is always less than one
// second in magnitude. The zero value is the zero duration.
//
// All unit constructors saturate to MinDuration or MaxDuration rather
// than wrapping when the requested span is not representable; the
// Checked variants of the arithmetic methods report overflow instead.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

// MinDuration and MaxDuration bound the representable range of Duration.
var (
	MinDuration = Duration{math.MinInt64, -(nanosPerSecond - 1)}
	MaxDuration = Duration{math.MaxInt64, nanosPerSecond - 1}
)

// NewDuration creates a Duration from seconds and nanoseconds,
// normalizing the result. Nanoseconds in excess of one second are
// carried into the seconds component and when the two inputs disagree
// in sign one second is borrowed so that both fields share a sign,
// e.g. (1, -500_000_000) normalizes to (0, 500_000_000). Values outside
// the representable range saturate.
func NewDuration(seconds, nanoseconds int64) Duration {
	carry := nanoseconds / nanosPerSecond
	nanos := nanoseconds % nanosPerSecond
	secs, ok := add64(seconds, carry)
	if !ok {
		if carry > 0 {
			return MaxDuration
		}
		return MinDuration
	}
	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	return Duration{secs, int32(nanos)}
}

// Weeks returns a Duration of the given number of weeks.
func Weeks(weeks int64) Duration {
	return scaledSeconds(weeks, 604_800)
}

// Days returns a Duration of the given number of days.
func Days(days int64) Duration {
	return scaledSeconds(days, 86_400)
}

// Hours returns a Duration of the given number of hours.
func Hours(hours int64) Duration {
	return scaledSeconds(hours, 3_600)
}

// Minutes returns a Duration of the given number of minutes.
func Minutes(minutes int64) Duration {
	return scaledSeconds(minutes, 60)
}

// Seconds returns a Duration of the given number of seconds.
func Seconds(seconds int64) Duration {
	return Duration{seconds, 0}
}

// Milliseconds returns a Duration of the given number of milliseconds.
func Milliseconds(ms int64) Duration {
	return Duration{ms / 1_000, int32((ms % 1_000) * 1_000_000)}
}

// Microseconds returns a Duration of the given number of microseconds.
func Microseconds(us int64) Duration {
	return Duration{us / 1_000_000, int32((us % 1_000_000) * 1_000)}
}

// Nanoseconds returns a Duration of the given number of nanoseconds.
func Nanoseconds(ns int64) Duration {
	return Duration{ns / nanosPerSecond, int32(ns % nanosPerSecond)}
}

// SecondsFloat64 returns a Duration of the given number of seconds,
// truncating the fractional remainder beyond nanosecond precision
// toward zero. NaN maps to the zero duration and positive and negative
// infinity to MaxDuration and MinDuration respectively; finite values
// outside the representable range saturate.
func SecondsFloat64(seconds float64) Duration {
	switch {
	case math.IsNaN(seconds):
		return Duration{}
	case math.IsInf(seconds, 1):
		return MaxDuration
	case math.IsInf(seconds, -1):
		return MinDuration
	case seconds >= math.MaxInt64:
		return MaxDuration
	case seconds <= math.MinInt64:
		return MinDuration
	}
	whole, frac := math.Modf(seconds)
	return Duration{int64(whole), int32(frac * nanosPerSecond)}
}

// SecondsFloat32 is SecondsFloat64 for a float32 second count.
func SecondsFloat32(seconds float32) Duration {
	return SecondsFloat64(float64(seconds))
}

func scaledSeconds(n, unit int64) Duration {
	secs, ok := mul64(n, unit)
	if !ok {
		if n > 0 {
			return MaxDuration
		}
		return MinDuration
	}
	return Duration{secs, 0}
}

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanoseconds == 0
}

// IsNegative reports whether d is strictly negative.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || d.nanoseconds < 0
}

// IsPositive reports whether d is strictly positive.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || d.nanoseconds > 0
}

// WholeWeeks returns the number of whole weeks in d, truncated toward zero.
func (d Duration) WholeWeeks() int64 {
	return d.seconds / 604_800
}

// WholeDays returns the number of whole days in d, truncated toward zero.
func (d Duration) WholeDays() int64 {
	return d.seconds / 86_400
}

// WholeHours returns the number of whole hours in d, truncated toward zero.
func (d Duration) WholeHours() int64 {
	return d.seconds / 3_600
}

// WholeMinutes returns the number of whole minutes in d, truncated toward zero.
func (d Duration) WholeMinutes() int64 {
	return d.seconds / 60
}

// WholeSeconds returns the number of whole seconds in d.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// WholeMilliseconds returns the number of whole milliseconds in d,
// saturating for durations whose millisecond count exceeds the int64
// range.
func (d Duration) WholeMilliseconds() int64 {
	ms, ok := mul64(d.seconds, 1_000)
	if !ok {
		if d.seconds > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return ms + int64(d.nanoseconds)/1_000_000
}

// WholeMicroseconds returns the number of whole microseconds in d,
// saturating as for WholeMilliseconds.
func (d Duration) WholeMicroseconds() int64 {
	us, ok := mul64(d.seconds, 1_000_000)
	if !ok {
		if d.seconds > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return us + int64(d.nanoseconds)/1_000
}

// WholeNanoseconds returns the number of whole nanoseconds in d,
// saturating as for WholeMilliseconds.
func (d Duration) WholeNanoseconds() int64 {
	ns, ok := mul64(d.seconds, nanosPerSecond)
	if !ok {
		if d.seconds > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	ns, ok = add64(ns, int64(d.nanoseconds))
	if !ok {
		if d.seconds > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return ns
}

// SubsecMilliseconds returns the subsecond component of d in
// milliseconds, in the range -999 to 999.
func (d Duration) SubsecMilliseconds() int32 {
	return d.nanoseconds / 1_000_000
}

// SubsecMicroseconds returns the subsecond component of d in
// microseconds, in the range -999_999 to 999_999.
func (d Duration) SubsecMicroseconds() int32 {
	return d.nanoseconds / 1_000
}

// SubsecNanoseconds returns the subsecond component of d in nanoseconds,
// in the range -999_999_999 to 999_999_999.
func (d Duration) SubsecNanoseconds() int32 {
	return d.nanoseconds
}

// AsSecondsF64 returns d as a floating point number of seconds.
func (d Duration) AsSecondsF64() float64 {
	return float64(d.seconds) + float64(d.nanoseconds)/nanosPerSecond
}

// Neg returns -d, saturating to MaxDuration when d is MinDuration.
func (d Duration) Neg() Duration {
	if d.seconds == math.MinInt64 {
		return MaxDuration
	}
	return Duration{-d.seconds, -d.nanoseconds}
}

// Abs returns the absolute value of d, saturating to MaxDuration when d
// is MinDuration.
func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Neg()
	}
	return d
}

// AbsStd returns the absolute value of d as a time.Duration, saturating
// to the maximum time.Duration when the magnitude of d exceeds its range.
func (d Duration) AbsStd() time.Duration {
	a := d.Abs()
	ns := a.WholeNanoseconds()
	return time.Duration(ns)
}

// CheckedAdd returns d + rhs and true, or the zero duration and false if
// the result is not representable.
func (d Duration) CheckedAdd(rhs Duration) (Duration, bool) {
	seconds, ok := add64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	nanoseconds := d.nanoseconds + rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || (seconds < 0 && nanoseconds > 0) {
		nanoseconds -= nanosPerSecond
		if seconds, ok = add64(seconds, 1); !ok {
			return Duration{}, false
		}
	} else if nanoseconds <= -nanosPerSecond || (seconds > 0 && nanoseconds < 0) {
		nanoseconds += nanosPerSecond
		if seconds, ok = add64(seconds, -1); !ok {
			return Duration{}, false
		}
	}
	return Duration{seconds, nanoseconds}, true
}

// CheckedSub returns d - rhs and true, or the zero duration and false if
// the result is not representable.
func (d Duration) CheckedSub(rhs Duration) (Duration, bool) {
	seconds, ok := sub64(d.seconds, rhs.seconds)
	if !ok {
		return Duration{}, false
	}
	nanoseconds := d.nanoseconds - rhs.nanoseconds
	if nanoseconds >= nanosPerSecond || (seconds < 0 && nanoseconds > 0) {
		nanoseconds -= nanosPerSecond
		if seconds, ok = add64(seconds, 1); !ok {
			return Duration{}, false
		}
	} else if nanoseconds <= -nanosPerSecond || (seconds > 0 && nanoseconds < 0) {
		nanoseconds += nanosPerSecond
		if seconds, ok = add64(seconds, -1); !ok {
			return Duration{}, false
		}
	}
	return Duration{seconds, nanoseconds}, true
}

// CheckedMul returns d * rhs and true, or the zero duration and false if
// the result is not representable.
func (d Duration) CheckedMul(rhs int32) (Duration, bool) {
	// The subsecond product cannot overflow an int64.
	totalNanos := int64(d.nanoseconds) * int64(rhs)
	extraSecs := totalNanos / nanosPerSecond
	nanoseconds := int32(totalNanos % nanosPerSecond)
	seconds, ok := mul64(d.seconds, int64(rhs))
	if !ok {
		return Duration{}, false
	}
	seconds, ok = add64(seconds, extraSecs)
	if !ok {
		return Duration{}, false
	}
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= nanosPerSecond
	}
	return Duration{seconds, nanoseconds}, true
}

// CheckedDiv returns d / rhs and true, or the zero duration and false
// when rhs is zero.
func (d Duration) CheckedDiv(rhs int32) (Duration, bool) {
	if rhs == 0 {
		return Duration{}, false
	}
	seconds := d.seconds / int64(rhs)
	carry := d.seconds - seconds*int64(rhs)
	extraNanos := carry * nanosPerSecond / int64(rhs)
	nanoseconds := d.nanoseconds/rhs + int32(extraNanos)
	return Duration{seconds, nanoseconds}, true
}

// SaturatingAdd returns d + rhs, clamping to MinDuration or MaxDuration
// on overflow.
func (d Duration) SaturatingAdd(rhs Duration) Duration {
	if sum, ok := d.CheckedAdd(rhs); ok {
		return sum
	}
	if d.IsNegative() {
		return MinDuration
	}
	return MaxDuration
}

// SaturatingSub returns d - rhs, clamping to MinDuration or MaxDuration
// on overflow.
func (d Duration) SaturatingSub(rhs Duration) Duration {
	if diff, ok := d.CheckedSub(rhs); ok {
		return diff
	}
	if d.IsNegative() {
		return MinDuration
	}
	return MaxDuration
}

// SaturatingMul returns d * rhs, clamping to MinDuration or MaxDuration
// on overflow.
func (d Duration) SaturatingMul(rhs int32) Duration {
	if prod, ok := d.CheckedMul(rhs); ok {
		return prod
	}
	if d.IsNegative() == (rhs < 0) {
		return MaxDuration
	}
	return MinDuration
}

func (d Duration) String() string {
	if d.nanoseconds == 0 {
		return fmt.Sprintf("%ds", d.seconds)
	}
	sign := ""
	secs, nanos := d.seconds, d.nanoseconds
	if d.IsNegative() {
		sign = "-"
		if secs == math.MinInt64 {
			return fmt.Sprintf("-%d.%09ds", uint64(math.MaxInt64)+1, -int64(nanos))
		}
		secs, nanos = -secs, -nanos
	}
	return fmt.Sprintf("%s%d.%09ds", sign, secs, nanos)
}

func add64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func sub64(a, b int64) (int64, bool) {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
		return 0, false
	}
	return diff, true
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/b != a || (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	return prod, true
}
