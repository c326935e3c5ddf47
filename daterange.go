// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import (
	"fmt"
	"iter"
)

// DateRange represents a range of dates, inclusive of the start and end
// dates.
type DateRange struct {
	from, to Date
}

// NewDateRange returns a DateRange for the from/to dates. If the from
// date is later than the to date then they are swapped.
func NewDateRange(from, to Date) DateRange {
	if from.After(to) {
		from, to = to, from
	}
	return DateRange{from: from, to: to}
}

// From returns the start date of the range.
func (dr DateRange) From() Date {
	return dr.from
}

// To returns the end date of the range.
func (dr DateRange) To() Date {
	return dr.to
}

// NumDays returns the number of days in the range, inclusive of the
// start and end dates.
func (dr DateRange) NumDays() int64 {
	return dr.to.ToJulianDay() - dr.from.ToJulianDay() + 1
}

// Include returns true if the specified date is within the range.
func (dr DateRange) Include(d Date) bool {
	return !d.Before(dr.from) && !d.After(dr.to)
}

// Bound returns a new DateRange that is bounded by the specified
// DateRange, namely the from date is the later of the two from dates
// and the to date is the earlier of the two to dates. If the resulting
// range is empty then false is returned.
func (dr DateRange) Bound(bound DateRange) (DateRange, bool) {
	from, to := dr.from, dr.to
	if bound.from.After(from) {
		from = bound.from
	}
	if bound.to.Before(to) {
		to = bound.to
	}
	if from.After(to) {
		return DateRange{}, false
	}
	return DateRange{from: from, to: to}, true
}

// Dates returns an iterator over all of the dates in the range.
func (dr DateRange) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for jd := dr.from.ToJulianDay(); jd <= dr.to.ToJulianDay(); jd++ {
			if !yield(Date{jd}) {
				return
			}
		}
	}
}

func (dr DateRange) String() string {
	return fmt.Sprintf("%s - %s", dr.from, dr.to)
}
