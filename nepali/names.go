// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nepali

var (
	// MonthNames are the names of the months, indexed from zero.
	MonthNames = []string{
		"Baisakh",
		"Jestha",
		"Ashadh",
		"Shrawan",
		"Bhadra",
		"Ashwin",
		"Kartik",
		"Mangsir",
		"Paush",
		"Magh",
		"Falgun",
		"Chaitra",
	}

	ShortMonthNames = []string{"Bai", "Jes", "Asa", "Shr", "Bha", "Asw", "Kar", "Man", "Pau", "Mag", "Fal", "Cha"}

	// DayNames are the names of the days of the week, indexed by time.Weekday.
	DayNames = []string{"Aaitabar", "Sombar", "Mangalbar", "Budhabar", "Bihibar", "Shukrabar", "Shanibar"}

	ShortDayNames = []string{"Aai", "Som", "Man", "Bud", "Bih", "Shu", "Sha"}
)
