// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopian

import (
	"fmt"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
)

// Date represents a valid Ethiopian date. Dates are immutable.
// The zero value is not a valid date, it is returned alongside errors
// and may be detected using IsZero.
type Date struct {
	year, month, day int
}

// NewDate returns the Date for year, month and day, or an error if
// they do not form a valid date.
func NewDate(year, month, day int) (Date, error) {
	if err := Validate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNewDate is like NewDate but panics on error.
func MustNewDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses a date in the format 'yyyy-mm-dd', zero padding is optional.
func ParseDate(val string) (Date, error) {
	f, err := calendars.ParseFields(val)
	if err != nil {
		return Date{}, err
	}
	return NewDate(f.Year, f.Month, f.Day)
}

// DateFromRDN returns the Date for the specified RDN.
func DateFromRDN(rdn calendars.RDN) (Date, error) {
	y, m, d, err := FromRDN(rdn)
	if err != nil {
		return Date{}, err
	}
	return Date{year: y, month: m, day: d}, nil
}

// DateFromTime returns the Ethiopian date of t in t's location.
func DateFromTime(t time.Time) (Date, error) {
	return FromGregorian(gregorian.DateFromTime(t))
}

// Today returns the current Ethiopian date in the specified location.
func Today(loc *time.Location) (Date, error) {
	return FromGregorian(gregorian.Today(loc))
}

// IsZero returns true for the zero value of Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Year() int {
	return d.year
}

// Month returns the month, numbered from 1, Pagume is 13.
func (d Date) Month() int {
	return d.month
}

func (d Date) Day() int {
	return d.day
}

// Fields returns the year, month and day.
func (d Date) Fields() calendars.Fields {
	return calendars.Fields{Year: d.year, Month: d.month, Day: d.day}
}

// RDN returns the day number of the date.
func (d Date) RDN() calendars.RDN {
	return fixed(d.year, d.month, d.day)
}

// Gregorian returns the equivalent Gregorian date.
func (d Date) Gregorian() gregorian.Date {
	return gregorian.DateFromRDN(d.RDN())
}

// AddPeriod returns the date obtained by converting to the Gregorian
// calendar, adding the period there and converting back.
func (d Date) AddPeriod(p calendars.Period) (Date, error) {
	return FromGregorian(d.Gregorian().AddPeriod(p))
}

// AddDays returns the date n days later, n may be negative.
func (d Date) AddDays(n int) (Date, error) {
	return DateFromRDN(d.RDN().AddDays(n))
}

// AddMonths adds n Gregorian months, see AddPeriod.
func (d Date) AddMonths(n int) (Date, error) {
	return d.AddPeriod(calendars.Period{Months: n})
}

// AddYears adds n Gregorian years, see AddPeriod.
func (d Date) AddYears(n int) (Date, error) {
	return d.AddPeriod(calendars.Period{Years: n})
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.RDN().Weekday()
}

// WeekdayName returns the Ethiopian name of the day of the week.
func (d Date) WeekdayName() string {
	return DayNames[d.Weekday()]
}

func (d Date) MonthName() string {
	return calendars.Name(MonthNames, d.month)
}

func (d Date) ShortMonthName() string {
	return calendars.Name(ShortMonthNames, d.month)
}

// IsLeapYear returns true if the date falls in a leap year.
func (d Date) IsLeapYear() bool {
	return IsLeapYear(d.year)
}

// Compare returns -1, 0 or +1 depending on whether d is before, the
// same as, or after o.
func (d Date) Compare(o Date) int {
	switch a, b := d.RDN(), o.RDN(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sub returns the signed number of days from o to d.
func (d Date) Sub(o Date) int {
	return d.RDN().Sub(o.RDN())
}

func (d Date) String() string {
	return d.Fields().String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	n, err := ParseDate(string(text))
	if err != nil {
		return fmt.Errorf("ethiopian: %w", err)
	}
	*d = n
	return nil
}
