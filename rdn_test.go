// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars_test

import (
	"testing"
	"time"

	"cloudeng.io/calendars"
)

func TestFloorDivMod(t *testing.T) {
	for i, tc := range []struct {
		a, b     int64
		div, mod int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
		{0, 7, 0, 0},
		{-1, 7, -1, 6},
		{-1461, 1461, -1, 0},
		{-1462, 1461, -2, 1460},
	} {
		if got, want := calendars.FloorDiv(tc.a, tc.b), tc.div; got != want {
			t.Errorf("%v: FloorDiv(%v, %v): got %v, want %v", i, tc.a, tc.b, got, want)
		}
		if got, want := calendars.Mod(tc.a, tc.b), tc.mod; got != want {
			t.Errorf("%v: Mod(%v, %v): got %v, want %v", i, tc.a, tc.b, got, want)
		}
		if got, want := calendars.FloorDiv(tc.a, tc.b)*tc.b+calendars.Mod(tc.a, tc.b), tc.a; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestWeekday(t *testing.T) {
	for i, tc := range []struct {
		rdn     calendars.RDN
		weekday time.Weekday
	}{
		{2451545, time.Saturday}, // 2000-01-01
		{2451546, time.Sunday},
		{2451551, time.Friday},
		{2458738, time.Wednesday}, // 2019-09-11
		{1721426, time.Monday},    // 0001-01-01
		{0, time.Monday},
		{-1, time.Sunday},
		{-8, time.Sunday},
	} {
		if got, want := tc.rdn.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.rdn, got, want)
		}
	}
	for r := calendars.RDN(-100); r < 100; r++ {
		if got, want := r.AddDays(7).Weekday(), r.Weekday(); got != want {
			t.Errorf("%v: got %v, want %v", r, got, want)
		}
	}
}

func TestRDNArithmetic(t *testing.T) {
	r := calendars.RDN(2451545)
	if got, want := r.AddDays(-31), calendars.RDN(2451514); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.AddDays(366).Sub(r), 366; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := r.Sub(r.AddDays(10)), -10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
