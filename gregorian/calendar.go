// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"time"

	"cloudeng.io/calendars"
)

// Calendar provides access to the package level functions via methods
// so that it may be used by the calendar independent convert package.
type Calendar struct{}

func (Calendar) System() calendars.System {
	return calendars.Gregorian
}

func (Calendar) Validate(year, month, day int) error {
	return Validate(year, month, day)
}

func (Calendar) ToRDN(year, month, day int) (calendars.RDN, error) {
	return ToRDN(year, month, day)
}

func (Calendar) FromRDN(rdn calendars.RDN) (calendars.Fields, error) {
	y, m, d := FromRDN(rdn)
	return calendars.Fields{Year: y, Month: m, Day: d}, nil
}

func (Calendar) IsLeapYear(year int) (bool, error) {
	return IsLeapYear(year), nil
}

func (Calendar) MonthsInYear() int {
	return 12
}

func (Calendar) DaysInMonth(year, month int) (int, error) {
	if err := Validate(year, month, 1); err != nil {
		return 0, err
	}
	return DaysInMonth(year, month), nil
}

func (Calendar) ParseMonth(val string) (int, error) {
	return ParseMonth(val)
}

func (Calendar) MonthName(month int) string {
	return calendars.Name(MonthNames, month)
}

func (Calendar) ShortMonthName(month int) string {
	return calendars.Name(ShortMonthNames, month)
}

func (Calendar) WeekdayName(wd time.Weekday) string {
	return DayNames[wd]
}

func (Calendar) ShortWeekdayName(wd time.Weekday) string {
	return ShortDayNames[wd]
}
