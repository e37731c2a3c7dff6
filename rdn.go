// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendars provides the shared representation used to convert
// dates between the Gregorian, Ethiopian and Nepali (Bikram Sambat)
// calendars. Every calendar maps its (year, month, day) triples to and
// from an RDN, a linear count of days, and conversions between calendars
// always pass through that count.
//
// The calendar specific conversions live in the gregorian, ethiopian and
// nepali sub-packages, the convert package provides calendar independent
// access to all three.
package calendars

import "time"

// RDN is a day number: a signed count of days from a fixed epoch. The
// Julian Day Number convention is used, that is, the proleptic Gregorian
// date 0001-01-01 is RDN 1721426 and 2000-01-01 is RDN 2451545.
type RDN int64

// FloorDiv returns ⌊a/b⌋, rounding towards negative infinity rather than
// towards zero as Go's / operator does.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod returns the floored modulus of a and b, the result has the
// same sign as b. It is consistent with FloorDiv in that
// a == FloorDiv(a, b)*b + Mod(a, b).
func Mod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// Weekday returns the day of the week for the RDN.
func (r RDN) Weekday() time.Weekday {
	return time.Weekday(Mod(int64(r)+1, 7))
}

// AddDays returns the RDN n days after r, n may be negative.
func (r RDN) AddDays(n int) RDN {
	return r + RDN(n)
}

// Sub returns the signed number of days from o to r.
func (r RDN) Sub(o RDN) int {
	return int(r - o)
}
