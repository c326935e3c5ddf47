// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides support for ordering actions that are due
// at civiltime instants, including bounded repetition of an action at
// a fixed interval.
package schedule

import (
	"fmt"
	"iter"
	"math"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/civiltime"
	"cloudeng.io/errors"
)

// Bounds on due instants so that every queued occurrence has an exact
// nanosecond timestamp for its heap key.
const (
	minDueSeconds = math.MinInt64 / 1_000_000_000
	maxDueSeconds = math.MaxInt64/1_000_000_000 - 1
)

// Repeat specifies how an action recurs after its initial due time.
// A zero Interval means the action runs exactly once. Repeats bounds
// the number of additional occurrences; zero with a nonzero Interval
// means unbounded.
type Repeat struct {
	Interval civiltime.Duration
	Repeats  int
}

// Action is a named item due at a specific instant.
type Action[T any] struct {
	Name   string
	Due    civiltime.OffsetDateTime
	Repeat Repeat
	T      T
}

// Actions is a set of actions to be scheduled together.
type Actions[T any] []Action[T]

type entry[T any] struct {
	name      string
	interval  civiltime.Duration
	bounded   bool
	remaining int
	t         T
}

// Scheduler orders the occurrences of a set of actions by their due
// instants.
type Scheduler[T any] struct {
	h *heap.T[int64, entry[T]]
}

// New creates a Scheduler for the supplied actions. All validation
// failures are reported, not just the first encountered.
func New[T any](actions Actions[T]) (*Scheduler[T], error) {
	errs := errors.M{}
	for _, a := range actions {
		if len(a.Name) == 0 {
			errs.Append(fmt.Errorf("action with no name due at %v", a.Due))
		}
		if a.Repeat.Interval.IsNegative() {
			errs.Append(fmt.Errorf("%v: negative repeat interval %v", a.Name, a.Repeat.Interval))
		}
		if a.Repeat.Repeats < 0 {
			errs.Append(fmt.Errorf("%v: negative repeat count %v", a.Name, a.Repeat.Repeats))
		}
		if a.Repeat.Repeats > 0 && a.Repeat.Interval.IsZero() {
			errs.Append(fmt.Errorf("%v: repeat count without an interval", a.Name))
		}
		if ts := a.Due.UnixTimestamp(); ts < minDueSeconds || ts > maxDueSeconds {
			errs.Append(fmt.Errorf("%v: due instant %v outside of the schedulable range", a.Name, a.Due))
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	h := heap.NewMin(heap.WithSliceCap[int64, entry[T]](len(actions)))
	s := &Scheduler[T]{h: h}
	for _, a := range actions {
		e := entry[T]{
			name:      a.Name,
			interval:  a.Repeat.Interval,
			remaining: a.Repeat.Repeats,
			t:         a.T,
		}
		if !a.Repeat.Interval.IsZero() && a.Repeat.Repeats != 0 {
			e.bounded = true
		}
		s.h.Push(a.Due.UnixTimestampNanos(), e)
	}
	return s, nil
}

// Pending returns the number of actions with occurrences still queued.
func (s *Scheduler[T]) Pending() int {
	return s.h.Len()
}

// Occurrences returns an iterator yielding every occurrence due before
// the until instant in due order. Repeating actions are requeued at
// their interval until their repeat count is exhausted or their next
// occurrence falls at or beyond until. Actions queued at or beyond
// until remain pending.
func (s *Scheduler[T]) Occurrences(until civiltime.OffsetDateTime) iter.Seq2[civiltime.OffsetDateTime, T] {
	limit := until.UnixTimestampNanos()
	return func(yield func(civiltime.OffsetDateTime, T) bool) {
		for s.h.Len() > 0 {
			nanos, e := s.h.Pop()
			if nanos >= limit {
				s.h.Push(nanos, e)
				return
			}
			when, err := civiltime.FromUnixTimestampNanos(nanos)
			if err != nil {
				// Keys originate from validated due instants and are
				// always in range.
				panic(err)
			}
			if !yield(when, e.t) {
				s.h.Push(nanos, e)
				return
			}
			if e.interval.IsZero() || (e.bounded && e.remaining == 0) {
				continue
			}
			if e.bounded {
				e.remaining--
			}
			next := when.SaturatingAdd(e.interval)
			s.h.Push(next.UnixTimestampNanos(), e)
		}
	}
}
