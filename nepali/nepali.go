// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package nepali implements the Bikram Sambat calendar used in Nepal.
// Month lengths vary from year to year and are not computed by a rule,
// instead they are looked up in a table that covers the years MinYear to
// MaxYear. All operations fail with calendars.ErrUnsupportedYear for dates
// outside of that range.
//
// Each year starts in mid April and its ninth month, Paush, spans the start
// of the Gregorian year. Conversions are anchored on Paush: January 1st of
// Gregorian year Y falls in Paush of Bikram Sambat year Y+56.
package nepali

import (
	"fmt"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
)

const (
	MinYear = 2000
	MaxYear = 2099

	MonthsInYear = 12

	// Paush is the month that contains January 1st.
	Paush = 9

	// gregorianOffset is the difference between the Bikram Sambat year and
	// the Gregorian year from January 1st until the end of Chaitra, the
	// difference is one greater for the remainder of the Gregorian year.
	gregorianOffset = 56

	nominalDaysInYear = 365
)

func yearRow(year int) (*[13]int, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("%d is outside of %d-%d: %w", year, MinYear, MaxYear, calendars.ErrUnsupportedYear)
	}
	return &monthTable[year-MinYear], nil
}

// YearRange returns the range of supported years, inclusive.
func YearRange() (from, to int) {
	return MinYear, MaxYear
}

// DaysInYear returns the number of days in year.
func DaysInYear(year int) (int, error) {
	row, err := yearRow(year)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range row[1:] {
		total += n
	}
	return total, nil
}

// IsLeapYear returns true if the year does not have 365 days. It is
// a property of the month length table rather than of a rule.
func IsLeapYear(year int) (bool, error) {
	n, err := DaysInYear(year)
	if err != nil {
		return false, err
	}
	return n != nominalDaysInYear, nil
}

// DaysInMonth returns the number of days in the specified month.
func DaysInMonth(year, month int) (int, error) {
	row, err := yearRow(year)
	if err != nil {
		return 0, err
	}
	if month < 1 || month > MonthsInYear {
		return 0, fmt.Errorf("%d: %w", month, calendars.ErrInvalidMonth)
	}
	return row[month], nil
}

// Validate returns an error if year, month and day do not form a valid
// date within the supported range of years.
func Validate(year, month, day int) error {
	n, err := DaysInMonth(year, month)
	if err != nil {
		return err
	}
	if day < 1 || day > n {
		return fmt.Errorf("%d-%02d-%02d: %w", year, month, day, calendars.ErrInvalidDay)
	}
	return nil
}

// ToRDN returns the RDN for the specified date.
func ToRDN(year, month, day int) (calendars.RDN, error) {
	if err := Validate(year, month, day); err != nil {
		return 0, err
	}
	row := &monthTable[year-MinYear]
	jan1 := row[0]

	// Dates from the day of Paush that is January 1st onwards lie in
	// Gregorian year (year - 56), earlier ones in the year before.
	gy := year - gregorianOffset - 1
	if month > Paush || (month == Paush && day >= jan1) {
		gy = year - gregorianOffset
	}

	// Offset in days from January 1st of (year - 56).
	var offset int
	switch {
	case month == Paush:
		offset = day - jan1
	case month > Paush:
		offset = row[Paush] - jan1 + 1
		for m := Paush + 1; m < month; m++ {
			offset += row[m]
		}
		offset += day - 1
	default:
		offset = day - jan1
		for m := month; m < Paush; m++ {
			offset -= row[m]
		}
	}

	dayOfYear := offset + 1
	if gy != year-gregorianOffset {
		dayOfYear += gregorian.DaysInYear(gy)
	}
	return gregorian.FromDayOfYear(gy, dayOfYear), nil
}

// FromRDN returns the year, month and day for the specified RDN.
func FromRDN(rdn calendars.RDN) (year, month, day int, err error) {
	gy, _, _ := gregorian.FromRDN(rdn)
	year = gy + gregorianOffset
	if year > MaxYear || year+1 < MinYear {
		return 0, 0, 0, fmt.Errorf("gregorian year %d: %d is outside of %d-%d: %w", gy, year, MinYear, MaxYear, calendars.ErrUnsupportedYear)
	}
	if year < MinYear {
		// The first months of MinYear precede its Paush and are reached by
		// walking backwards from it.
		year = MinYear
	}
	offset := int(rdn - gregorian.FromDayOfYear(year-gregorianOffset, 1))
	return walk(year, offset)
}

// walk locates the date that is offset days from January 1st of
// Gregorian year (year - 56) by walking month by month from the day of
// Paush that January 1st falls on.
func walk(year, offset int) (int, int, int, error) {
	row, err := yearRow(year)
	if err != nil {
		return 0, 0, 0, err
	}
	month, day := Paush, row[0]+offset
	for day > row[month] {
		day -= row[month]
		month++
		if month > MonthsInYear {
			month = 1
			year++
			if row, err = yearRow(year); err != nil {
				return 0, 0, 0, err
			}
		}
	}
	for day < 1 {
		month--
		if month < 1 {
			month = MonthsInYear
			year--
			if row, err = yearRow(year); err != nil {
				return 0, 0, 0, err
			}
		}
		day += row[month]
	}
	return year, month, day, nil
}

// ToGregorian returns the Gregorian date for the specified Nepali date.
func ToGregorian(year, month, day int) (gregorian.Date, error) {
	rdn, err := ToRDN(year, month, day)
	if err != nil {
		return gregorian.Date{}, err
	}
	return gregorian.DateFromRDN(rdn), nil
}

// FromGregorian returns the Nepali date for the specified Gregorian date.
func FromGregorian(gd gregorian.Date) (Date, error) {
	return DateFromRDN(gd.RDN())
}

// ParseMonth parses a month as either a number in the range 1-12 or
// a prefix of one of MonthNames.
func ParseMonth(val string) (int, error) {
	return calendars.ParseMonth(MonthNames, val)
}
