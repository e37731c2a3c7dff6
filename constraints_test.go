// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"testing"

	"cloudeng.io/calendars"
)

func TestConstraints(t *testing.T) {
	ct := func(weekday, weekend bool, exclude ...calendars.RDN) calendars.Constraints {
		return calendars.Constraints{
			Weekdays: weekday,
			Weekends: weekend,
			Exclude:  exclude,
		}
	}
	// 2024-01-01 is a Monday.
	jan := func(d int) calendars.RDN {
		return calendars.RDN(2460311 + d - 1)
	}

	for i, tc := range []struct {
		day        calendars.RDN
		constraint calendars.Constraints
		result     bool
	}{
		{jan(2), ct(false, false), true},

		{jan(2), ct(true, false), true},
		{jan(3), ct(true, false), true},
		{jan(4), ct(true, false), true},
		{jan(5), ct(true, false), true},
		{jan(6), ct(true, false), false},
		{jan(7), ct(true, false), false},

		{jan(3), ct(false, true), false},
		{jan(4), ct(false, true), false},
		{jan(5), ct(false, true), false},
		{jan(6), ct(false, true), true},
		{jan(7), ct(false, true), true},

		{jan(6), ct(true, true), true},
		{jan(8), ct(true, true), true},

		{jan(2), ct(false, false, jan(2)), false},
		{jan(3), ct(false, false, jan(2)), true},
		{jan(4), ct(false, false, jan(2), jan(4)), false},
		{jan(6), ct(false, true, jan(6)), false},
		{jan(8), ct(true, false, jan(6)), true},
	} {
		if got, want := tc.constraint.Include(tc.day), tc.result; got != want {
			t.Errorf("%v: %v: %v: got %v, want %v", i, tc.day, tc.constraint, got, want)
		}
	}

	if !ct(false, false).Empty() || ct(true, false).Empty() || ct(false, false, jan(1)).Empty() {
		t.Errorf("Empty is incorrect")
	}

	for i, tc := range []struct {
		constraint calendars.Constraints
		str        string
	}{
		{ct(false, false), ""},
		{ct(true, false), "weekdays only"},
		{ct(false, true), "weekends only"},
		{ct(true, true), "everyday"},
		{ct(true, false, 10, 11), "excluding: 10, 11: weekdays only"},
	} {
		if got, want := tc.constraint.String(), tc.str; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
	}
}
