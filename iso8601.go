// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidISO8601Duration is wrapped by all errors returned by
// ParseISO8601Duration.
var ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")

func consumeN(dur string) (float64, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || c == '.' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.ParseFloat(dur[:i], 64)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// Seconds per ISO8601 designator in the date portion of a duration; a
// year is treated as 365 days and a month as a twelfth of a year.
const (
	iso8601Year  = 365 * 86_400
	iso8601Month = iso8601Year / 12
	iso8601Week  = 7 * 86_400
	iso8601Day   = 86_400
)

// ParseISO8601Duration parses a duration string in the ISO8601 format
// [-]PnYnMnWnDTnHnMnS. Fractional component values are permitted and
// are truncated to nanosecond precision; results outside of the
// representable Duration range saturate.
func ParseISO8601Duration(dur string) (Duration, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return Duration{}, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidISO8601Duration)
	}
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}

	var result Duration
	state := 0 // 0 = P, 1 = T
	for len(dur) > 0 {
		if dur[0] == 'T' {
			if state == 1 {
				return Duration{}, fmt.Errorf("repeated T designator: %s: %w", dur, ErrInvalidISO8601Duration)
			}
			state = 1
			dur = dur[1:]
			continue
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return Duration{}, err
		}
		dur = dur[idx:]
		var secs float64
		switch state {
		case 0:
			switch designator {
			case 'Y':
				secs = iso8601Year * n
			case 'M':
				secs = iso8601Month * n
			case 'W':
				secs = iso8601Week * n
			case 'D':
				secs = iso8601Day * n
			default:
				return Duration{}, fmt.Errorf("invalid duration designator: %c: %w", designator, ErrInvalidISO8601Duration)
			}
		case 1:
			switch designator {
			case 'H':
				secs = 3_600 * n
			case 'M':
				secs = 60 * n
			case 'S':
				secs = n
			default:
				return Duration{}, fmt.Errorf("invalid time designator: %c: %w", designator, ErrInvalidISO8601Duration)
			}
		}
		result = result.SaturatingAdd(SecondsFloat64(secs))
	}
	if hasNP {
		result = result.Neg()
	}
	return result, nil
}
