// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import (
	"fmt"
	"strings"
)

// System identifies a calendar system.
type System int

const (
	Gregorian System = iota + 1
	Ethiopian
	Nepali
)

// Systems lists all supported calendar systems.
var Systems = []System{Gregorian, Ethiopian, Nepali}

func (s System) String() string {
	switch s {
	case Gregorian:
		return "gregorian"
	case Ethiopian:
		return "ethiopian"
	case Nepali:
		return "nepali"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

var systemNames = map[string]System{
	"gregorian":     Gregorian,
	"greg":          Gregorian,
	"iso":           Gregorian,
	"ethiopian":     Ethiopian,
	"eth":           Ethiopian,
	"nepali":        Nepali,
	"bs":            Nepali,
	"bikram-sambat": Nepali,
}

// ParseSystem parses a calendar system name, in either lower or upper case.
func ParseSystem(val string) (System, error) {
	if s, ok := systemNames[strings.ToLower(strings.TrimSpace(val))]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown calendar system %q: %w", val, ErrInvalidArgument)
}

// Set implements flag.Value.
func (s *System) Set(val string) error {
	n, err := ParseSystem(val)
	if err != nil {
		return err
	}
	*s = n
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}
