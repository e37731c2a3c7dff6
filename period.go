// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strconv"
	"strings"
)

// Period represents a calendar period of years, months and days. The
// components are applied in that order, see the AddPeriod methods of the
// calendar specific Date types.
type Period struct {
	Years  int
	Months int
	Days   int
}

// IsZero returns true if all components of the period are zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

// Negate returns the period with all components negated.
func (p Period) Negate() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

// String returns the period in ISO8601 format. Mixed sign periods
// are written with a sign per component.
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var out strings.Builder
	if p.Years <= 0 && p.Months <= 0 && p.Days <= 0 {
		out.WriteByte('-')
		p = p.Negate()
	}
	out.WriteByte('P')
	if p.Years != 0 {
		fmt.Fprintf(&out, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&out, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&out, "%dD", p.Days)
	}
	return out.String()
}

func consumeN(per string) (int, byte, int, error) {
	for i := range per {
		c := per[i]
		if (c >= '0' && c <= '9') || (i == 0 && c == '-') {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(per[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", per[:i], per, ErrParse)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or period designator: %q: %w", per, ErrParse)
}

// ParsePeriod parses a period in the ISO8601 date format [-]PnYnMnWnD.
// Weeks are converted to days. Time components (PTnHnMnS) are not
// supported since dates carry no time of day.
func ParsePeriod(per string) (Period, error) {
	nl := len(per)
	hasP, hasNP := (nl > 0 && per[0] == 'P'), (nl > 1 && per[0] == '-' && per[1] == 'P')
	if !hasP && !hasNP {
		return Period{}, fmt.Errorf("period must start with P or -P: %q: %w", per, ErrParse)
	}
	rest := per[1:]
	if hasNP {
		rest = rest[1:]
	}
	var result Period
	for len(rest) > 0 {
		if rest[0] == 'T' {
			return Period{}, fmt.Errorf("time components are not supported: %q: %w", per, ErrParse)
		}
		n, designator, idx, err := consumeN(rest)
		if err != nil {
			return Period{}, err
		}
		rest = rest[idx:]
		switch designator {
		case 'Y':
			result.Years += n
		case 'M':
			result.Months += n
		case 'W':
			result.Days += n * 7
		case 'D':
			result.Days += n
		}
	}
	if hasNP {
		result = result.Negate()
	}
	return result, nil
}
