// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMonth parses a month as either a number in the range 1 to
// len(names) or as a case insensitive prefix, of at least three letters,
// of one of the supplied month names. The returned month is numbered
// from 1.
func ParseMonth(names []string, val string) (int, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 || n > len(names) {
			return 0, fmt.Errorf("%d: %w", n, ErrInvalidMonth)
		}
		return n, nil
	}
	lc := strings.ToLower(strings.TrimSpace(val))
	if len(lc) >= 3 {
		for i := range names {
			if strings.HasPrefix(strings.ToLower(names[i]), lc) {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%q: %w", val, ErrInvalidMonth)
}

// Name returns names[index-1] or the empty string if index is out of range.
// It is used to look up month names, which are numbered from 1.
func Name(names []string, index int) string {
	if index < 1 || index > len(names) {
		return ""
	}
	return names[index-1]
}
