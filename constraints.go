// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Constraints represents constraints on days such as weekends or
// specific days to exclude. Excluded days take precedence over weekdays
// and weekends.
type Constraints struct {
	Weekdays bool  // If true, include weekdays
	Weekends bool  // If true, include weekends
	Exclude  []RDN // If non-empty, exclude these days
}

func (dc Constraints) String() string {
	var out strings.Builder
	if len(dc.Exclude) > 0 {
		out.WriteString("excluding: ")
		for i, d := range dc.Exclude {
			if i > 0 {
				out.WriteString(", ")
			}
			fmt.Fprintf(&out, "%d", d)
		}
		out.WriteString(": ")
	}
	switch {
	case dc.Weekdays && dc.Weekends:
		out.WriteString("everyday")
	case !dc.Weekdays && !dc.Weekends:
		break
	case dc.Weekdays && !dc.Weekends:
		out.WriteString("weekdays only")
	case !dc.Weekdays && dc.Weekends:
		out.WriteString("weekends only")
	}
	return out.String()
}

// Include returns true if the given day satisfies the constraints.
// Excluded days are evaluated before weekdays and weekends.
// An empty set of Constraints will return true, ie. include all days.
func (dc Constraints) Include(day RDN) bool {
	if slices.Contains(dc.Exclude, day) {
		return false
	}
	wd := day.Weekday()
	switch {
	case dc.Weekdays && dc.Weekends:
		return true
	case dc.Weekdays:
		return wd >= time.Monday && wd <= time.Friday
	case dc.Weekends:
		return wd == time.Sunday || wd == time.Saturday
	}
	return true
}

// Empty returns true if no constraints are set.
func (dc Constraints) Empty() bool {
	return !dc.Weekdays && !dc.Weekends && len(dc.Exclude) == 0
}
