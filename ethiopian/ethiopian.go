// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ethiopian implements the Ethiopian calendar: twelve months of
// 30 days followed by Pagume, a thirteenth month of 5 days, or 6 days in
// a leap year. Leap years occur every fourth year without exception.
//
// Conversions to and from other calendars are made via the Gregorian
// calendar, and the Ethiopian and Gregorian calendars are aligned such that
// Meskerem 1, 2012 is September 11th 2019.
package ethiopian

import (
	"fmt"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
)

const (
	// Epoch is the RDN of Meskerem 1 of year 1.
	Epoch calendars.RDN = 1724221

	// MonthsInYear is the number of months, including Pagume.
	MonthsInYear = 13

	// Pagume is the intercalary thirteenth month.
	Pagume = 13

	daysInMonth  = 30
	daysIn4Years = 4*365 + 1
)

// IsLeapYear returns true if year is divisible by 4.
func IsLeapYear(year int) bool {
	return calendars.Mod(int64(year), 4) == 0
}

// DaysInMonth returns the number of days in the specified month, which
// must be in the range 1-13.
func DaysInMonth(year, month int) int {
	if month != Pagume {
		return daysInMonth
	}
	if IsLeapYear(year) {
		return 6
	}
	return 5
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// Validate returns an error if year, month and day do not form a valid
// date. Years start at 1.
func Validate(year, month, day int) error {
	if year < 1 {
		return fmt.Errorf("%d: %w", year, calendars.ErrInvalidYear)
	}
	if month < 1 || month > MonthsInYear {
		return fmt.Errorf("%d: %w", month, calendars.ErrInvalidMonth)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return fmt.Errorf("%d-%02d-%02d: %w", year, month, day, calendars.ErrInvalidDay)
	}
	return nil
}

// daysBeforeYear returns the number of days from the epoch to the
// start of year.
func daysBeforeYear(year int) int64 {
	y1 := int64(year - 1)
	return 365*y1 + calendars.FloorDiv(y1, 4)
}

// ToRDN returns the RDN for the specified date.
func ToRDN(year, month, day int) (calendars.RDN, error) {
	if err := Validate(year, month, day); err != nil {
		return 0, err
	}
	return fixed(year, month, day), nil
}

func fixed(year, month, day int) calendars.RDN {
	return Epoch + calendars.RDN(daysBeforeYear(year)+int64(month-1)*daysInMonth+int64(day-1))
}

// FromRDN returns the year, month and day for the specified RDN. An
// error is returned for days before the epoch.
func FromRDN(rdn calendars.RDN) (year, month, day int, err error) {
	if rdn < Epoch {
		return 0, 0, 0, fmt.Errorf("day %d precedes the epoch: %w", rdn, calendars.ErrInvalidYear)
	}
	n := int64(rdn - Epoch)
	year = int(calendars.FloorDiv(4*n+3, daysIn4Years)) + 1
	dayOfYear := n - daysBeforeYear(year)
	month = int(dayOfYear/daysInMonth) + 1
	day = int(dayOfYear%daysInMonth) + 1
	return
}

// ToGregorian returns the Gregorian date for the specified Ethiopian date.
func ToGregorian(year, month, day int) (gregorian.Date, error) {
	rdn, err := ToRDN(year, month, day)
	if err != nil {
		return gregorian.Date{}, err
	}
	return gregorian.DateFromRDN(rdn), nil
}

// FromGregorian returns the Ethiopian date for the specified Gregorian date.
func FromGregorian(gd gregorian.Date) (Date, error) {
	return DateFromRDN(gd.RDN())
}

// ParseMonth parses a month as either a number in the range 1-13 or
// a prefix of one of MonthNames.
func ParseMonth(val string) (int, error) {
	return calendars.ParseMonth(MonthNames, val)
}
