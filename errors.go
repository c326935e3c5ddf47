// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package civiltime

import "fmt"

// ComponentRangeError is returned by all validating constructors when a
// component falls outside of its permitted range. Name identifies the
// offending component, Minimum and Maximum its permitted range and Value
// the value actually supplied. Conditional is true when the range itself
// depends on the values of other components, as is the case for the day
// of a month or the ordinal day of a year.
type ComponentRangeError struct {
	Name        string
	Minimum     int64
	Maximum     int64
	Value       int64
	Conditional bool
}

func (e *ComponentRangeError) Error() string {
	if e.Conditional {
		return fmt.Sprintf("%v must be in the range %v..%v, given values of other parameters: %v", e.Name, e.Minimum, e.Maximum, e.Value)
	}
	return fmt.Sprintf("%v must be in the range %v..%v: %v", e.Name, e.Minimum, e.Maximum, e.Value)
}

func rangeError(name string, min, max, value int64) error {
	return &ComponentRangeError{Name: name, Minimum: min, Maximum: max, Value: value}
}

func conditionalRangeError(name string, min, max, value int64) error {
	return &ComponentRangeError{Name: name, Minimum: min, Maximum: max, Value: value, Conditional: true}
}
