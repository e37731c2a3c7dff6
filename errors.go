// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

import "errors"

// Errors returned by all of the calendars. Errors are always wrapped
// with the offending value and should be tested for using errors.Is.
var (
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidDay      = errors.New("invalid day")
	ErrInvalidYear     = errors.New("invalid year")
	ErrUnsupportedYear = errors.New("unsupported year")
	ErrParse           = errors.New("parse error")
	ErrInvalidArgument = errors.New("invalid argument")
)
