// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package convert provides calendar independent conversion and arithmetic
// for all of the supported calendars.
package convert

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/ethiopian"
	"cloudeng.io/calendars/gregorian"
	"cloudeng.io/calendars/nepali"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

// Calendar is implemented by each of the supported calendars. Months are
// numbered from 1 in all calendars.
type Calendar interface {
	System() calendars.System
	Validate(year, month, day int) error
	ToRDN(year, month, day int) (calendars.RDN, error)
	FromRDN(rdn calendars.RDN) (calendars.Fields, error)
	IsLeapYear(year int) (bool, error)
	MonthsInYear() int
	DaysInMonth(year, month int) (int, error)
	ParseMonth(val string) (int, error)
	MonthName(month int) string
	ShortMonthName(month int) string
	WeekdayName(wd time.Weekday) string
	ShortWeekdayName(wd time.Weekday) string
}

var registry = map[calendars.System]Calendar{
	calendars.Gregorian: gregorian.Calendar{},
	calendars.Ethiopian: ethiopian.Calendar{},
	calendars.Nepali:    nepali.Calendar{},
}

// For returns the Calendar for the specified system.
func For(system calendars.System) (Calendar, error) {
	if c, ok := registry[system]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%v: %w", system, calendars.ErrInvalidArgument)
}

// Convert converts the date f in the from calendar to the to calendar.
func Convert(from, to calendars.System, f calendars.Fields) (calendars.Fields, error) {
	fc, err := For(from)
	if err != nil {
		return calendars.Fields{}, err
	}
	tc, err := For(to)
	if err != nil {
		return calendars.Fields{}, err
	}
	rdn, err := fc.ToRDN(f.Year, f.Month, f.Day)
	if err != nil {
		return calendars.Fields{}, fmt.Errorf("%v date %v: %w", from, f, err)
	}
	r, err := tc.FromRDN(rdn)
	if err != nil {
		return calendars.Fields{}, fmt.Errorf("%v date %v has no %v equivalent: %w", from, f, to, err)
	}
	return r, nil
}

// ConvertString is like Convert but parses the date from a 'y-m-d' string.
func ConvertString(from, to calendars.System, val string) (calendars.Fields, error) {
	f, err := calendars.ParseFields(val)
	if err != nil {
		return calendars.Fields{}, err
	}
	return Convert(from, to, f)
}

// Result is the outcome of converting a single date as part of a batch.
// For failed conversions Output is the zero value and Error contains
// the text of Err.
type Result struct {
	Input  string           `yaml:"input"`
	From   calendars.System `yaml:"from"`
	To     calendars.System `yaml:"to"`
	Output calendars.Fields `yaml:"output,omitempty"`
	Error  string           `yaml:"error,omitempty"`
	Err    error            `yaml:"-"`
}

// ConvertAll converts each of the supplied 'y-m-d' strings. A Result is
// returned for every input, in order, and the returned error, if any,
// is an errors.M containing every failure. Failures are logged to the
// logger stored in ctx.
func ConvertAll(ctx context.Context, from, to calendars.System, vals []string) ([]Result, error) {
	logger := ctxlog.Logger(ctx)
	results := make([]Result, len(vals))
	var errs errors.M
	for i, val := range vals {
		results[i] = Result{Input: val, From: from, To: to}
		out, err := ConvertString(from, to, val)
		if err != nil {
			logger.Warn("conversion failed", "input", val, "from", from, "to", to, "error", err)
			results[i].Err = err
			results[i].Error = err.Error()
			errs.Append(fmt.Errorf("%q: %w", val, err))
			continue
		}
		logger.Debug("converted", "input", val, "from", from, "to", to, "output", out)
		results[i].Output = out
	}
	return results, errs.Err()
}

// Add adds the period to the date f in the specified calendar. The
// arithmetic is performed in the Gregorian calendar.
func Add(cal Calendar, f calendars.Fields, p calendars.Period) (calendars.Fields, error) {
	rdn, err := cal.ToRDN(f.Year, f.Month, f.Day)
	if err != nil {
		return calendars.Fields{}, err
	}
	return cal.FromRDN(gregorian.DateFromRDN(rdn).AddPeriod(p).RDN())
}

// MonthRange returns the range of days for the specified month.
func MonthRange(cal Calendar, year, month int) (calendars.Range, error) {
	n, err := cal.DaysInMonth(year, month)
	if err != nil {
		return calendars.Range{}, err
	}
	from, err := cal.ToRDN(year, month, 1)
	if err != nil {
		return calendars.Range{}, err
	}
	return calendars.NewRange(from, from.AddDays(n-1)), nil
}
