// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package convert

import (
	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
)

// Description contains all of the derived information for a date.
type Description struct {
	System         calendars.System `yaml:"system"`
	Date           calendars.Fields `yaml:"date"`
	MonthName      string           `yaml:"month_name"`
	ShortMonthName string           `yaml:"short_month_name"`
	Weekday        string           `yaml:"weekday"`
	ShortWeekday   string           `yaml:"short_weekday"`
	LeapYear       bool             `yaml:"leap_year"`
	DaysInMonth    int              `yaml:"days_in_month"`
	RDN            calendars.RDN    `yaml:"rdn"`
	Gregorian      calendars.Fields `yaml:"gregorian"`
}

// Describe returns the Description of the date f in the specified calendar.
func Describe(cal Calendar, f calendars.Fields) (Description, error) {
	rdn, err := cal.ToRDN(f.Year, f.Month, f.Day)
	if err != nil {
		return Description{}, err
	}
	leap, err := cal.IsLeapYear(f.Year)
	if err != nil {
		return Description{}, err
	}
	dim, err := cal.DaysInMonth(f.Year, f.Month)
	if err != nil {
		return Description{}, err
	}
	return Description{
		System:         cal.System(),
		Date:           f,
		MonthName:      cal.MonthName(f.Month),
		ShortMonthName: cal.ShortMonthName(f.Month),
		Weekday:        cal.WeekdayName(rdn.Weekday()),
		ShortWeekday:   cal.ShortWeekdayName(rdn.Weekday()),
		LeapYear:       leap,
		DaysInMonth:    dim,
		RDN:            rdn,
		Gregorian:      gregorian.DateFromRDN(rdn).Fields(),
	}, nil
}
