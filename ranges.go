// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"iter"
)

// Range represents a range of days, inclusive of the From and To days.
// Since it is expressed in RDNs, a Range is independent of any calendar.
type Range struct {
	From, To RDN
}

// NewRange returns a Range for the from/to days. If from is later than
// to then they are swapped.
func NewRange(from, to RDN) Range {
	if from > to {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

func (r Range) String() string {
	return fmt.Sprintf("%d - %d", r.From, r.To)
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	return int(r.To-r.From) + 1
}

// Contains returns true if day lies within the range.
func (r Range) Contains(day RDN) bool {
	return day >= r.From && day <= r.To
}

// Bound returns a new Range that is bounded by the specified Range,
// namely the from day is the later of the two from days and the to day
// is the earlier of the two to days. The second return value is false
// if the ranges do not overlap.
func (r Range) Bound(bound Range) (Range, bool) {
	from, to := max(r.From, bound.From), min(r.To, bound.To)
	if from > to {
		return Range{}, false
	}
	return Range{From: from, To: to}, true
}

// Days returns an iterator that yields each day in the range.
func (r Range) Days() iter.Seq[RDN] {
	return func(yield func(RDN) bool) {
		for d := r.From; d <= r.To; d++ {
			if !yield(d) {
				return
			}
		}
	}
}

// Filter returns an iterator that yields each day in the range that
// satisfies the supplied constraints.
func (r Range) Filter(dc Constraints) iter.Seq[RDN] {
	return func(yield func(RDN) bool) {
		for d := range r.Days() {
			if !dc.Include(d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}
