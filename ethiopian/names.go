// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ethiopian

var (
	// MonthNames are the names of the months, indexed from zero.
	MonthNames = []string{
		"Meskerem",
		"Tikemet",
		"Hidar",
		"Tahesas",
		"Tir",
		"Yekatit",
		"Megabit",
		"Miazia",
		"Genbot",
		"Sene",
		"Hamle",
		"Nehase",
		"Pagume",
	}

	ShortMonthNames = []string{"Mes", "Tik", "Hid", "Tah", "Tir", "Yek", "Meg", "Mia", "Gen", "Sen", "Ham", "Neh", "Pag"}

	// DayNames are the names of the days of the week, indexed by time.Weekday.
	DayNames = []string{"Ehud", "Segno", "Maksegno", "Irob", "Hamus", "Arb", "Kidame"}

	ShortDayNames = []string{"Ehu", "Seg", "Mak", "Iro", "Ham", "Arb", "Kid"}

	MinDayNames = []string{"Eh", "Se", "Ma", "Ir", "Ha", "Ar", "Ki"}
)
