// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRFC3339 is wrapped by all structural errors returned by
// ParseRFC3339; component range failures are reported as
// ComponentRangeError values.
var ErrInvalidRFC3339 = errors.New("invalid RFC3339 timestamp")

func digits(s string, n int) (int, bool) {
	if len(s) < n {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

// ParseRFC3339 parses an RFC3339 timestamp such as
// 2018-02-13T23:08:32Z or 2018-02-13T23:08:32.1-08:00. A lower case
// date/time separator or zone designator and a space separator are
// accepted. A second value of 60 is tolerated as a leap second
// concession and clamps to 59; a 60th second is never stored.
func ParseRFC3339(val string) (OffsetDateTime, error) {
	s := val
	negYear := false
	if len(s) > 0 && s[0] == '-' {
		negYear = true
		s = s[1:]
	}
	year, ok := digits(s, 4)
	if !ok || len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return OffsetDateTime{}, fmt.Errorf("malformed date in %q: %w", val, ErrInvalidRFC3339)
	}
	if negYear {
		year = -year
	}
	month, ok1 := digits(s[5:], 2)
	day, ok2 := digits(s[8:], 2)
	if !ok1 || !ok2 {
		return OffsetDateTime{}, fmt.Errorf("malformed date in %q: %w", val, ErrInvalidRFC3339)
	}
	s = s[10:]

	if len(s) == 0 || (s[0] != 'T' && s[0] != 't' && s[0] != ' ') {
		return OffsetDateTime{}, fmt.Errorf("missing date/time separator in %q: %w", val, ErrInvalidRFC3339)
	}
	s = s[1:]

	hour, ok := digits(s, 2)
	if !ok || len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return OffsetDateTime{}, fmt.Errorf("malformed time in %q: %w", val, ErrInvalidRFC3339)
	}
	minute, ok1 := digits(s[3:], 2)
	second, ok2 := digits(s[6:], 2)
	if !ok1 || !ok2 {
		return OffsetDateTime{}, fmt.Errorf("malformed time in %q: %w", val, ErrInvalidRFC3339)
	}
	s = s[8:]
	if second == 60 {
		second = 59
	}

	nanosecond := 0
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		n := 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		if n == 0 {
			return OffsetDateTime{}, fmt.Errorf("malformed fraction in %q: %w", val, ErrInvalidRFC3339)
		}
		frac := s[:n]
		if len(frac) > 9 {
			frac = frac[:9]
		}
		v, _ := strconv.Atoi(frac)
		for i := len(frac); i < 9; i++ {
			v *= 10
		}
		nanosecond = v
		s = s[n:]
	}

	offset := UTC
	switch {
	case s == "Z" || s == "z":
	case len(s) == 6 && (s[0] == '+' || s[0] == '-') && s[3] == ':':
		oh, ok1 := digits(s[1:], 2)
		om, ok2 := digits(s[4:], 2)
		if !ok1 || !ok2 {
			return OffsetDateTime{}, fmt.Errorf("malformed offset in %q: %w", val, ErrInvalidRFC3339)
		}
		if s[0] == '-' {
			oh, om = -oh, -om
		}
		var err error
		if offset, err = OffsetFromHMS(oh, om, 0); err != nil {
			return OffsetDateTime{}, err
		}
	default:
		return OffsetDateTime{}, fmt.Errorf("malformed offset in %q: %w", val, ErrInvalidRFC3339)
	}

	m, err := MonthFromNumber(month)
	if err != nil {
		return OffsetDateTime{}, err
	}
	date, err := FromCalendarDate(year, m, day)
	if err != nil {
		return OffsetDateTime{}, err
	}
	t, err := FromHMSNano(hour, minute, second, nanosecond)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return date.WithTime(t).AssumeOffset(offset), nil
}

// AppendRFC3339 appends the RFC3339 representation of the instant in
// its offset to b. Offsets are formatted to whole-minute precision; a
// zero offset is written as Z.
func (o OffsetDateTime) AppendRFC3339(b []byte) []byte {
	local := o.localDateTime()
	year, month, day := local.ToCalendarDate()
	hour, minute, second, nanosecond := local.AsHMSNano()
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	b = fmt.Appendf(b, "%04d-%02d-%02dT%02d:%02d:%02d", year, month, day, hour, minute, second)
	if nanosecond != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", nanosecond), "0")
		b = append(b, '.')
		b = append(b, frac...)
	}
	if o.offset.IsUTC() {
		return append(b, 'Z')
	}
	sign := byte('+')
	oh, om, _ := o.offset.AsHMS()
	if o.offset.IsNegative() {
		sign = '-'
		oh, om = -oh, -om
	}
	return fmt.Appendf(b, "%c%02d:%02d", sign, oh, om)
}

// FormatRFC3339 returns the RFC3339 representation of the instant in
// its offset.
func (o OffsetDateTime) FormatRFC3339() string {
	return string(o.AppendRFC3339(nil))
}
