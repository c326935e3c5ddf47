// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"strconv"
	"strings"
)

// Month represents a month of the year in the range January (1) to
// December (12).
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthFromNumber returns the Month for a numeric value in the range 1-12.
func MonthFromNumber(n int) (Month, error) {
	if n < 1 || n > 12 {
		return 0, rangeError("month", 1, 12, int64(n))
	}
	return Month(n), nil
}

// Number returns the month as an int in the range 1-12.
func (m Month) Number() int {
	return int(m)
}

// Next returns the month following m, with December wrapping to January.
func (m Month) Next() Month {
	return Month(int(m)%12 + 1)
}

// Previous returns the month preceding m, with January wrapping to December.
func (m Month) Previous() Month {
	return Month((int(m)+10)%12 + 1)
}

func (m Month) String() string {
	if m < January || m > December {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return months[m-1]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the
// range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return MonthFromNumber(n)
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other
// longer prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	for i := range months {
		if strings.HasPrefix(strings.ToLower(months[i]), lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}
