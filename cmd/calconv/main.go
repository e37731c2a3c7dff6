// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calconv converts dates between the Gregorian, Ethiopian and
// Nepali calendars and performs calendar arithmetic.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const commands = `name: calconv
summary: convert dates between the gregorian, ethiopian and nepali calendars
commands:
  - name: convert
    summary: convert one or more dates from one calendar to another
    arguments:
      - <from>
      - <to>
      - <date>
      - ...
  - name: today
    summary: display today's date in every calendar
  - name: add
    summary: add an ISO8601 period, eg. P1Y2M3D, to a date
    arguments:
      - <calendar>
      - <date>
      - <period>
  - name: month
    summary: list the days of a month
    arguments:
      - <calendar>
      - <year>
      - <month>
  - name: describe
    summary: display all of the derived information for a date
    arguments:
      - <calendar>
      - <date>
  - name: year
    summary: display the month lengths and leap year status of a year
    arguments:
      - <calendar>
      - <year>
`

// GlobalFlags are common to all commands.
type GlobalFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'yaml configuration file'"`
	Output string `subcmd:"format,,'output format: text or yaml, overrides the configuration file'"`
}

type MonthFlags struct {
	Weekdays bool   `subcmd:"weekdays,false,'only list weekdays'"`
	Weekends bool   `subcmd:"weekends,false,'only list weekends'"`
	Exclude  string `subcmd:"exclude,,'comma separated list of dates to exclude'"`
}

type TodayFlags struct {
	Location string `subcmd:"location,Local,'time zone location, eg. Africa/Addis_Ababa'"`
}

var globalFlags GlobalFlags

func cli(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(commands)
	cmd := &command{out: out}
	cmdSet.Set("convert").MustRunnerAndFlags(
		cmd.wrap(cmd.convert), subcmd.MustRegisteredFlagSet(&struct{}{}))
	cmdSet.Set("today").MustRunnerAndFlags(
		cmd.wrap(cmd.today), subcmd.MustRegisteredFlagSet(&TodayFlags{}))
	cmdSet.Set("add").MustRunnerAndFlags(
		cmd.wrap(cmd.add), subcmd.MustRegisteredFlagSet(&struct{}{}))
	cmdSet.Set("month").MustRunnerAndFlags(
		cmd.wrap(cmd.month), subcmd.MustRegisteredFlagSet(&MonthFlags{}))
	cmdSet.Set("describe").MustRunnerAndFlags(
		cmd.wrap(cmd.describe), subcmd.MustRegisteredFlagSet(&struct{}{}))
	cmdSet.Set("year").MustRunnerAndFlags(
		cmd.wrap(cmd.year), subcmd.MustRegisteredFlagSet(&struct{}{}))
	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), cli(os.Stdout))
}
