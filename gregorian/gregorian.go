// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gregorian implements the proleptic Gregorian calendar. It is
// the hub through which all other calendars are converted and it provides
// the day, month and year arithmetic that the other calendars build on.
package gregorian

import (
	"fmt"

	"cloudeng.io/calendars"
)

// Epoch is the RDN of 0001-01-01.
const Epoch calendars.RDN = 1721426

// Validate returns an error if year, month and day do not form a valid
// date. Any year is valid for the proleptic calendar.
func Validate(year, month, day int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%d: %w", month, calendars.ErrInvalidMonth)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%d-%02d-%02d: %w", year, month, day, calendars.ErrInvalidDay)
	}
	return nil
}

// ToRDN returns the RDN for the specified date.
func ToRDN(year, month, day int) (calendars.RDN, error) {
	if err := Validate(year, month, day); err != nil {
		return 0, err
	}
	return fixed(year, month, day), nil
}

// fixed computes the RDN without validation, days beyond the end of the
// month simply run on into the following months.
func fixed(year, month, day int) calendars.RDN {
	y1 := int64(year - 1)
	n := int64(Epoch) - 1 +
		365*y1 +
		calendars.FloorDiv(y1, 4) -
		calendars.FloorDiv(y1, 100) +
		calendars.FloorDiv(y1, 400) +
		calendars.FloorDiv(367*int64(month)-362, 12) +
		int64(day)
	if month > 2 {
		if IsLeapYear(year) {
			n--
		} else {
			n -= 2
		}
	}
	return calendars.RDN(n)
}

func yearFromRDN(rdn calendars.RDN) int {
	d := int64(rdn - Epoch)
	quadricent := calendars.FloorDiv(d, 146097)
	dqc := calendars.Mod(d, 146097)
	cent := calendars.FloorDiv(dqc, 36524)
	dcent := calendars.Mod(dqc, 36524)
	quad := calendars.FloorDiv(dcent, 1461)
	dquad := calendars.Mod(dcent, 1461)
	yindex := calendars.FloorDiv(dquad, 365)
	year := quadricent*400 + cent*100 + quad*4 + yindex
	// The last day of a 400 or 4 year cycle belongs to the cycle's
	// final year rather than starting a new one.
	if cent != 4 && yindex != 4 {
		year++
	}
	return int(year)
}

// FromRDN returns the year, month and day for the specified RDN.
func FromRDN(rdn calendars.RDN) (year, month, day int) {
	year = yearFromRDN(rdn)
	yearDay := int64(rdn - fixed(year, 1, 1))
	var leapAdj int64
	if rdn >= fixed(year, 3, 1) {
		leapAdj = 2
		if IsLeapYear(year) {
			leapAdj = 1
		}
	}
	month = int(calendars.FloorDiv((yearDay+leapAdj)*12+373, 367))
	day = int(rdn-fixed(year, month, 1)) + 1
	return
}

// DayOfYear returns the day of the year for the specified date as
// 1-365 for non-leap years and 1-366 for leap years.
func DayOfYear(year, month, day int) (int, error) {
	if err := Validate(year, month, day); err != nil {
		return 0, err
	}
	return daysBeforeMonth(year, month) + day, nil
}

// FromDayOfYear returns the RDN of the specified day of the year. Days
// outside of 1-365/366 are interpreted relative to January 1st of the
// year, so that 0 is December 31st of the preceding year.
func FromDayOfYear(year, day int) calendars.RDN {
	return fixed(year, 1, 1) + calendars.RDN(day-1)
}

// DateDifference returns the signed number of days from b to a.
func DateDifference(a, b Date) int {
	return a.RDN().Sub(b.RDN())
}

// ParseMonth parses a month as either a number in the range 1-12 or as
// a month name of the form "Jan" to "Dec" or any longer prefix of "January"
// to "December" in either lower or upper case.
func ParseMonth(val string) (int, error) {
	return calendars.ParseMonth(MonthNames, val)
}
