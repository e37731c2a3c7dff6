// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strconv"
	"strings"
)

// Fields represents the year, month and day of a date in some calendar.
// Months are numbered from 1. Fields carries no calendar and is not
// validated, see the calendar specific Date types for validated values.
type Fields struct {
	Year  int
	Month int
	Day   int
}

func (f Fields) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", f.Year, f.Month, f.Day)
}

// ParseFields parses a date in the format 'y-m-d'. Zero padding is
// optional, ie. 2019-9-1 and 2019-09-01 are equivalent. Exactly three
// hyphen separated integers are required.
func ParseFields(val string) (Fields, error) {
	parts := strings.Split(strings.TrimSpace(val), "-")
	if len(parts) != 3 {
		return Fields{}, fmt.Errorf("%q: expected format 'yyyy-mm-dd': %w", val, ErrParse)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Fields{}, fmt.Errorf("%q: invalid number %q: %w", val, p, ErrParse)
		}
		n[i] = v
	}
	return Fields{Year: n[0], Month: n[1], Day: n[2]}, nil
}

// FieldsList is a list of Fields.
type FieldsList []Fields

func (fl FieldsList) String() string {
	var out strings.Builder
	for i, f := range fl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(f.String())
	}
	return out.String()
}

// Contains returns true if f is in the list.
func (fl FieldsList) Contains(f Fields) bool {
	for _, ff := range fl {
		if ff == f {
			return true
		}
	}
	return false
}

// MarshalText implements encoding.TextMarshaler.
func (f Fields) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fields) UnmarshalText(text []byte) error {
	n, err := ParseFields(string(text))
	if err != nil {
		return err
	}
	*f = n
	return nil
}
