// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nepali_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/gregorian"
	"cloudeng.io/calendars/nepali"
)

func TestFixedPoints(t *testing.T) {
	for i, tc := range []struct {
		bs   calendars.Fields
		greg calendars.Fields
	}{
		{calendars.Fields{Year: 2000, Month: 1, Day: 1}, calendars.Fields{Year: 1943, Month: 4, Day: 14}},
		{calendars.Fields{Year: 2099, Month: 12, Day: 30}, calendars.Fields{Year: 2043, Month: 4, Day: 13}},
		{calendars.Fields{Year: 2056, Month: 9, Day: 17}, calendars.Fields{Year: 2000, Month: 1, Day: 1}},
		{calendars.Fields{Year: 2080, Month: 9, Day: 15}, calendars.Fields{Year: 2023, Month: 12, Day: 31}},
		{calendars.Fields{Year: 2080, Month: 9, Day: 16}, calendars.Fields{Year: 2024, Month: 1, Day: 1}},
		{calendars.Fields{Year: 2080, Month: 8, Day: 29}, calendars.Fields{Year: 2023, Month: 12, Day: 15}},
		{calendars.Fields{Year: 2080, Month: 12, Day: 30}, calendars.Fields{Year: 2024, Month: 4, Day: 12}},
		{calendars.Fields{Year: 2081, Month: 1, Day: 1}, calendars.Fields{Year: 2024, Month: 4, Day: 13}},
		{calendars.Fields{Year: 2081, Month: 9, Day: 1}, calendars.Fields{Year: 2024, Month: 12, Day: 16}},
		{calendars.Fields{Year: 2082, Month: 6, Day: 1}, calendars.Fields{Year: 2025, Month: 9, Day: 17}},
		{calendars.Fields{Year: 2082, Month: 7, Day: 2}, calendars.Fields{Year: 2025, Month: 10, Day: 18}},
		{calendars.Fields{Year: 2083, Month: 7, Day: 2}, calendars.Fields{Year: 2026, Month: 10, Day: 18}},
	} {
		gd, err := nepali.ToGregorian(tc.bs.Year, tc.bs.Month, tc.bs.Day)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := gd.Fields(), tc.greg; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.bs, got, want)
		}
		nd, err := nepali.FromGregorian(gregorian.MustNewDate(tc.greg.Year, tc.greg.Month, tc.greg.Day))
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := nd.Fields(), tc.bs; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.greg, got, want)
		}
	}
}

func TestUnsupported(t *testing.T) {
	for i, tc := range []struct {
		year, month, day int
	}{
		{1999, 1, 1},
		{1999, 12, 30},
		{2100, 1, 1},
		{0, 1, 1},
	} {
		if _, err := nepali.ToRDN(tc.year, tc.month, tc.day); !errors.Is(err, calendars.ErrUnsupportedYear) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
		if _, err := nepali.IsLeapYear(tc.year); !errors.Is(err, calendars.ErrUnsupportedYear) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
		if _, err := nepali.DaysInMonth(tc.year, tc.month); !errors.Is(err, calendars.ErrUnsupportedYear) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
	}
	first, _ := nepali.ToRDN(nepali.MinYear, 1, 1)
	last, _ := nepali.ToRDN(nepali.MaxYear, 12, 30)
	for _, rdn := range []calendars.RDN{first - 1, last + 1, 0, 2451545 + 100*366} {
		if _, _, _, err := nepali.FromRDN(rdn); !errors.Is(err, calendars.ErrUnsupportedYear) {
			t.Errorf("%v: unexpected or missing error: %v", rdn, err)
		}
	}
	if _, err := nepali.FromGregorian(gregorian.MustNewDate(1900, 1, 1)); !errors.Is(err, calendars.ErrUnsupportedYear) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if from, to := nepali.YearRange(); from != 2000 || to != 2099 {
		t.Errorf("got %v-%v", from, to)
	}
}

func TestValidate(t *testing.T) {
	for i, tc := range []struct {
		year, month, day int
		err              error
	}{
		{2081, 0, 1, calendars.ErrInvalidMonth},
		{2081, 13, 1, calendars.ErrInvalidMonth},
		{2081, 1, 32, calendars.ErrInvalidDay},
		{2081, 3, 33, calendars.ErrInvalidDay},
		{2081, 1, 0, calendars.ErrInvalidDay},
		{2082, 1, 31, calendars.ErrInvalidDay},
	} {
		if err := nepali.Validate(tc.year, tc.month, tc.day); !errors.Is(err, tc.err) {
			t.Errorf("%v: got %v, want %v", i, err, tc.err)
		}
	}
	if err := nepali.Validate(2081, 3, 32); err != nil {
		t.Error(err)
	}
}

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		days int
	}{
		{2000, 365},
		{2003, 366},
		{2080, 365},
		{2081, 366},
		{2082, 365},
		{2096, 364},
	} {
		days, err := nepali.DaysInYear(tc.year)
		if err != nil {
			t.Errorf("%v: %v", tc.year, err)
			continue
		}
		if got, want := days, tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		leap, err := nepali.IsLeapYear(tc.year)
		if err != nil {
			t.Errorf("%v: %v", tc.year, err)
			continue
		}
		if got, want := leap, tc.days != 365; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestTable(t *testing.T) {
	for year := nepali.MinYear; year <= nepali.MaxYear; year++ {
		total := 0
		for month := 1; month <= nepali.MonthsInYear; month++ {
			n, err := nepali.DaysInMonth(year, month)
			if err != nil {
				t.Fatalf("%v-%v: %v", year, month, err)
			}
			if n < 29 || n > 32 {
				t.Errorf("%v-%v: implausible month length: %v", year, month, n)
			}
			total += n
		}
		if total < 364 || total > 366 {
			t.Errorf("%v: implausible year length: %v", year, total)
		}
		// January 1st always falls in Paush.
		nd, err := nepali.FromGregorian(gregorian.MustNewDate(year-56, 1, 1))
		if err != nil {
			t.Fatalf("%v: %v", year, err)
		}
		if got, want := nd.Year(), year; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := nd.Month(), nepali.Paush; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	first, err := nepali.ToRDN(nepali.MinYear, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	last, err := nepali.ToRDN(nepali.MaxYear, 12, 30)
	if err != nil {
		t.Fatal(err)
	}
	prev := calendars.Fields{Year: nepali.MinYear, Month: 1, Day: 0}
	for rdn := first; rdn <= last; rdn++ {
		y, m, d, err := nepali.FromRDN(rdn)
		if err != nil {
			t.Fatalf("%v: %v", rdn, err)
		}
		r, err := nepali.ToRDN(y, m, d)
		if err != nil {
			t.Fatalf("%v: %v-%v-%v: %v", rdn, y, m, d, err)
		}
		if got, want := r, rdn; got != want {
			t.Fatalf("%v-%v-%v: got %v, want %v", y, m, d, got, want)
		}
		// Consecutive days must be consecutive dates.
		next := calendars.Fields{Year: prev.Year, Month: prev.Month, Day: prev.Day + 1}
		if n, _ := nepali.DaysInMonth(prev.Year, prev.Month); prev.Day == n {
			next = calendars.Fields{Year: prev.Year, Month: prev.Month + 1, Day: 1}
			if prev.Month == nepali.MonthsInYear {
				next = calendars.Fields{Year: prev.Year + 1, Month: 1, Day: 1}
			}
		}
		cur := calendars.Fields{Year: y, Month: m, Day: d}
		if got, want := cur, next; got != want {
			t.Fatalf("%v: got %v, want %v", rdn, got, want)
		}
		prev = cur
	}
}

func TestDate(t *testing.T) {
	d := nepali.MustNewDate(2081, 1, 1)
	if got, want := d.Gregorian(), gregorian.MustNewDate(2024, 4, 13); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Weekday(), time.Saturday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.WeekdayName(), "Shanibar"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.MonthName(), "Baisakh"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nepali.MustNewDate(2081, 9, 1).ShortMonthName(), "Pau"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !d.IsLeapYear() {
		t.Errorf("%v is in a leap year", d)
	}

	later, err := d.AddDays(31)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := later, nepali.MustNewDate(2081, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	earlier, err := d.AddDays(-1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := earlier, nepali.MustNewDate(2080, 12, 30); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := later.Sub(earlier), 32; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if earlier.Compare(later) != -1 || later.Compare(earlier) != 1 || d.Compare(d) != 0 {
		t.Errorf("incorrect comparison")
	}

	month, err := d.AddMonths(1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := month, nepali.MustNewDate(2081, 1, 31); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	year, err := nepali.MustNewDate(2080, 9, 16).AddYears(1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := year.Gregorian(), gregorian.MustNewDate(2025, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := nepali.MustNewDate(nepali.MaxYear, 12, 30).AddDays(1); !errors.Is(err, calendars.ErrUnsupportedYear) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := nepali.MustNewDate(nepali.MinYear, 1, 1).AddYears(-1); !errors.Is(err, calendars.ErrUnsupportedYear) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestAddDaysInverse(t *testing.T) {
	first := nepali.MustNewDate(nepali.MinYear, 1, 1).RDN()
	last := nepali.MustNewDate(nepali.MaxYear, 12, 30).RDN()
	for rdn := first; rdn <= last-5; rdn++ {
		d, err := nepali.DateFromRDN(rdn)
		if err != nil {
			t.Fatalf("%v: %v", rdn, err)
		}
		later, err := d.AddDays(5)
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		back, err := later.AddDays(-5)
		if err != nil {
			t.Fatalf("%v: %v", later, err)
		}
		if got, want := back, d; got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
		if got, want := later.Sub(d), 5; got != want {
			t.Fatalf("%v: got %v, want %v", d, got, want)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var zero nepali.Date
	if !zero.IsZero() || nepali.MustNewDate(2081, 1, 1).IsZero() {
		t.Errorf("IsZero is incorrect")
	}
	d, err := nepali.DateFromRDN(0)
	if !errors.Is(err, calendars.ErrUnsupportedYear) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("expected the zero value: %v", d)
	}
	if zero.IsLeapYear() {
		t.Errorf("the zero value is not in a leap year")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	_ = zero.RDN()
}

func TestParse(t *testing.T) {
	d, err := nepali.ParseDate("2081-3-32")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "2081-03-32"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var u nepali.Date
	if err := u.UnmarshalText([]byte("2082-07-02")); err != nil {
		t.Fatal(err)
	}
	buf, _ := u.MarshalText()
	if got, want := string(buf), "2082-07-02"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := u.UnmarshalText([]byte("2100-01-01")); !errors.Is(err, calendars.ErrUnsupportedYear) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	for i, tc := range []struct {
		input string
		month int
	}{
		{"baisakh", 1},
		{"Pau", 9},
		{"chaitra", 12},
		{"12", 12},
	} {
		m, err := nepali.ParseMonth(tc.input)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	if _, err := nepali.ParseMonth("13"); !errors.Is(err, calendars.ErrInvalidMonth) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestCalendar(t *testing.T) {
	var cal nepali.Calendar
	if got, want := cal.System(), calendars.Nepali; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.MonthsInYear(), 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	f, err := cal.FromRDN(2460311)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f, (calendars.Fields{Year: 2080, Month: 9, Day: 16}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.WeekdayName(time.Sunday), "Aaitabar"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.ShortWeekdayName(time.Saturday), "Sha"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for wd, name := range nepali.DayNames {
		if got, want := nepali.ShortDayNames[wd], name[:3]; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
