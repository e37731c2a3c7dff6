// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"cloudeng.io/calendars"
)

// Date represents a valid date in the proleptic Gregorian calendar. Dates
// are immutable, all operations on a Date return a new value. The zero
// value is not a valid date, use NewDate, ParseDate or one of the other
// constructors to create a Date.
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
func DateFromRDN(rdn calendars.RDN) Date {
	y, m, d := FromRDN(rdn)
	return Date{year: y, month: m, day: d}
}

// DateFromTime returns the Date of t in t's location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: int(m), day: d}
}

// DateFromCivil returns the Date for the supplied civil.Date.
func DateFromCivil(cd civil.Date) (Date, error) {
	return NewDate(cd.Year, int(cd.Month), cd.Day)
}

// Today returns the current date in the specified location.
func Today(loc *time.Location) Date {
	return DateFromTime(time.Now().In(loc))
}

// IsZero returns true for the zero value of Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Year() int {
	return d.year
}

// Month returns the month, numbered from 1.
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

// Civil returns the date as a civil.Date.
func (d Date) Civil() civil.Date {
	return civil.Date{Year: d.year, Month: time.Month(d.month), Day: d.day}
}

// Time returns midnight at the start of the date in the specified location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

// AddPeriod returns the date with the years and months of the period
// added, followed by its days. Overflowing days are normalized in the
// same manner as time.Time.AddDate, for example, adding one month to
// October 31st yields December 1st.
func (d Date) AddPeriod(p calendars.Period) Date {
	months := int64(d.year+p.Years)*12 + int64(d.month-1) + int64(p.Months)
	y := int(calendars.FloorDiv(months, 12))
	m := int(calendars.Mod(months, 12)) + 1
	return DateFromRDN(fixed(y, m, 1) + calendars.RDN(d.day-1+p.Days))
}

// AddDays returns the date n days later, n may be negative.
func (d Date) AddDays(n int) Date {
	return DateFromRDN(d.RDN().AddDays(n))
}

// AddMonths returns the date n months later, see AddPeriod.
func (d Date) AddMonths(n int) Date {
	return d.AddPeriod(calendars.Period{Months: n})
}

// AddYears returns the date n years later, see AddPeriod. February 29th
// of a leap year becomes March 1st in a non-leap year.
func (d Date) AddYears(n int) Date {
	return d.AddPeriod(calendars.Period{Years: n})
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.RDN().Weekday()
}

// WeekdayName returns the name of the day of the week.
func (d Date) WeekdayName() string {
	return DayNames[d.Weekday()]
}

func (d Date) MonthName() string {
	return calendars.Name(MonthNames, d.month)
}

func (d Date) ShortMonthName() string {
	return calendars.Name(ShortMonthNames, d.month)
}

// DayOfYear returns the day of the year, 1-365 or 1-366 for leap years.
func (d Date) DayOfYear() int {
	return daysBeforeMonth(d.year, d.month) + d.day
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

func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Sub returns the signed number of days from o to d.
func (d Date) Sub(o Date) int {
	return DateDifference(d, o)
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
		return fmt.Errorf("gregorian: %w", err)
	}
	*d = n
	return nil
}
