// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/calendars"
	"cloudeng.io/calendars/convert"
	"cloudeng.io/calendars/gregorian"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// Config represents the optional yaml configuration file. Format is
// the default output format, text or yaml, and Calendars lists the
// calendars displayed by the today command.
type Config struct {
	Format    string                `yaml:"format"`
	Calendars []calendars.System    `yaml:"calendars"`
	Logging   cmdutil.LoggingConfig `yaml:"logging"`
}

type command struct {
	out    io.Writer
	config Config
}

func (c *command) wrap(fn subcmd.Runner) subcmd.Runner {
	return func(ctx context.Context, values any, args []string) error {
		logging := globalFlags.LoggingConfig()
		if len(globalFlags.Config) > 0 {
			if err := cmdyaml.ParseConfigFile(ctx, globalFlags.Config, &c.config); err != nil {
				return err
			}
			if !globalFlags.IsLoggingSet() {
				logging = c.config.Logging
			}
		}
		if len(globalFlags.Output) > 0 {
			c.config.Format = globalFlags.Output
		}
		switch c.config.Format {
		case "":
			c.config.Format = "text"
		case "text", "yaml":
		default:
			return fmt.Errorf("unsupported output format %q: %w", c.config.Format, calendars.ErrInvalidArgument)
		}
		logger, err := logging.NewLogger()
		if err != nil {
			return err
		}
		defer logger.Close()
		ctx = ctxlog.WithLogger(ctx, logger.Logger)
		ctxlog.Logger(ctx).Debug("calconv", "args", args, "format", c.config.Format)
		return fn(ctx, values, args)
	}
}

// IsLoggingSet returns true if any of the logging flags differ from
// their defaults.
func (gf GlobalFlags) IsLoggingSet() bool {
	return gf.Level != 0 || len(gf.File) > 0 || gf.SourceCode || gf.Format != "json"
}

func (c *command) yaml() bool {
	return c.config.Format == "yaml"
}

func (c *command) writeYAML(v any) error {
	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func calendarArg(arg string) (convert.Calendar, error) {
	sys, err := calendars.ParseSystem(arg)
	if err != nil {
		return nil, err
	}
	return convert.For(sys)
}

func (c *command) convert(ctx context.Context, _ any, args []string) error {
	from, err := calendars.ParseSystem(args[0])
	if err != nil {
		return err
	}
	to, err := calendars.ParseSystem(args[1])
	if err != nil {
		return err
	}
	results, errs := convert.ConvertAll(ctx, from, to, args[2:])
	if c.yaml() {
		if err := c.writeYAML(results); err != nil {
			return err
		}
		return errs
	}
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		fmt.Fprintf(c.out, "%v %v => %v %v\n", r.Input, r.From, r.Output, r.To)
	}
	return errs
}

type todayEntry struct {
	System  calendars.System `yaml:"system"`
	Date    calendars.Fields `yaml:"date"`
	Month   string           `yaml:"month"`
	Weekday string           `yaml:"weekday"`
}

func (c *command) today(ctx context.Context, values any, _ []string) error {
	fv := values.(*TodayFlags)
	loc, err := time.LoadLocation(fv.Location)
	if err != nil {
		return err
	}
	return c.todayAt(ctx, gregorian.Today(loc))
}

func (c *command) todayAt(ctx context.Context, today gregorian.Date) error {
	systems := c.config.Calendars
	if len(systems) == 0 {
		systems = calendars.Systems
	}
	entries := make([]todayEntry, 0, len(systems))
	for _, sys := range systems {
		cal, err := convert.For(sys)
		if err != nil {
			return err
		}
		f, err := cal.FromRDN(today.RDN())
		if err != nil {
			ctxlog.Logger(ctx).Warn("today", "calendar", sys, "error", err)
			continue
		}
		entries = append(entries, todayEntry{
			System:  sys,
			Date:    f,
			Month:   cal.MonthName(f.Month),
			Weekday: cal.WeekdayName(today.Weekday()),
		})
	}
	if c.yaml() {
		return c.writeYAML(entries)
	}
	for _, e := range entries {
		fmt.Fprintf(c.out, "%-10v %v %v %v\n", e.System, e.Date, e.Weekday, e.Month)
	}
	return nil
}

func (c *command) add(_ context.Context, _ any, args []string) error {
	cal, err := calendarArg(args[0])
	if err != nil {
		return err
	}
	f, err := calendars.ParseFields(args[1])
	if err != nil {
		return err
	}
	p, err := calendars.ParsePeriod(args[2])
	if err != nil {
		return err
	}
	r, err := convert.Add(cal, f, p)
	if err != nil {
		return err
	}
	if c.yaml() {
		return c.writeYAML(map[string]any{
			"calendar": cal.System(),
			"date":     f,
			"period":   p.String(),
			"result":   r,
		})
	}
	fmt.Fprintf(c.out, "%v + %v = %v\n", f, p, r)
	return nil
}

type dayEntry struct {
	Date      calendars.Fields `yaml:"date"`
	Weekday   string           `yaml:"weekday"`
	Gregorian calendars.Fields `yaml:"gregorian"`
}

func (c *command) month(_ context.Context, values any, args []string) error {
	fv := values.(*MonthFlags)
	cal, err := calendarArg(args[0])
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[1], calendars.ErrParse)
	}
	month, err := cal.ParseMonth(args[2])
	if err != nil {
		return err
	}
	r, err := convert.MonthRange(cal, year, month)
	if err != nil {
		return err
	}
	cs := calendars.Constraints{Weekdays: fv.Weekdays, Weekends: fv.Weekends}
	if len(fv.Exclude) > 0 {
		for _, d := range strings.Split(fv.Exclude, ",") {
			f, err := calendars.ParseFields(d)
			if err != nil {
				return err
			}
			rdn, err := cal.ToRDN(f.Year, f.Month, f.Day)
			if err != nil {
				return err
			}
			cs.Exclude = append(cs.Exclude, rdn)
		}
	}
	var days []dayEntry
	for rdn := range r.Filter(cs) {
		f, err := cal.FromRDN(rdn)
		if err != nil {
			return err
		}
		days = append(days, dayEntry{
			Date:      f,
			Weekday:   cal.WeekdayName(rdn.Weekday()),
			Gregorian: gregorian.DateFromRDN(rdn).Fields(),
		})
	}
	if c.yaml() {
		return c.writeYAML(days)
	}
	fmt.Fprintf(c.out, "%v %v %v\n", cal.System(), cal.MonthName(month), year)
	for _, d := range days {
		fmt.Fprintf(c.out, "%v %-10v %v\n", d.Date, d.Weekday, d.Gregorian)
	}
	return nil
}

func (c *command) describe(_ context.Context, _ any, args []string) error {
	cal, err := calendarArg(args[0])
	if err != nil {
		return err
	}
	f, err := calendars.ParseFields(args[1])
	if err != nil {
		return err
	}
	d, err := convert.Describe(cal, f)
	if err != nil {
		return err
	}
	if c.yaml() {
		return c.writeYAML(d)
	}
	fmt.Fprintf(c.out, "calendar:    %v\n", d.System)
	fmt.Fprintf(c.out, "date:        %v\n", d.Date)
	fmt.Fprintf(c.out, "month:       %v (%v)\n", d.MonthName, d.ShortMonthName)
	fmt.Fprintf(c.out, "weekday:     %v (%v)\n", d.Weekday, d.ShortWeekday)
	fmt.Fprintf(c.out, "leap year:   %v\n", d.LeapYear)
	fmt.Fprintf(c.out, "month days:  %v\n", d.DaysInMonth)
	fmt.Fprintf(c.out, "rdn:         %v\n", d.RDN)
	fmt.Fprintf(c.out, "gregorian:   %v\n", d.Gregorian)
	return nil
}

type yearSummary struct {
	System   calendars.System `yaml:"system"`
	Year     int              `yaml:"year"`
	LeapYear bool             `yaml:"leap_year"`
	Days     int              `yaml:"days"`
	Months   []monthSummary   `yaml:"months"`
}

type monthSummary struct {
	Name  string           `yaml:"name"`
	Days  int              `yaml:"days"`
	First calendars.Fields `yaml:"first_gregorian"`
}

func (c *command) year(_ context.Context, _ any, args []string) error {
	cal, err := calendarArg(args[0])
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[1], calendars.ErrParse)
	}
	leap, err := cal.IsLeapYear(year)
	if err != nil {
		return err
	}
	ys := yearSummary{System: cal.System(), Year: year, LeapYear: leap}
	for m := 1; m <= cal.MonthsInYear(); m++ {
		r, err := convert.MonthRange(cal, year, m)
		if err != nil {
			return err
		}
		ys.Days += r.Len()
		ys.Months = append(ys.Months, monthSummary{
			Name:  cal.MonthName(m),
			Days:  r.Len(),
			First: gregorian.DateFromRDN(r.From).Fields(),
		})
	}
	if c.yaml() {
		return c.writeYAML(ys)
	}
	fmt.Fprintf(c.out, "%v %v: %v days, leap year: %v\n", ys.System, ys.Year, ys.Days, ys.LeapYear)
	for i, m := range ys.Months {
		fmt.Fprintf(c.out, "%2d %-10v %2d %v\n", i+1, m.Name, m.Days, m.First)
	}
	return nil
}
