// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nepali

// monthTable holds one row per year from MinYear to MaxYear. Index 0 of
// each row is the day of Paush on which January 1st of the Gregorian year
// (year - 56) falls, indices 1-12 are the lengths of Baisakh to Chaitra.
// The month lengths are determined by observation rather than by a rule
// and must be treated as read-only.
var monthTable = [MaxYear - MinYear + 1][13]int{
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2000
	{18, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2001
	{18, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2002
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2003
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2004
	{18, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2005
	{18, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2006
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2007
	{17, 31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}, // 2008
	{18, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2009
	{18, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2010
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2011
	{17, 31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2012
	{18, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2013
	{18, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2014
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2015
	{17, 31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2016
	{18, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2017
	{18, 31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2018
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2019
	{17, 31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2020
	{18, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2021
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2022
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2023
	{17, 31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2024
	{18, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2025
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2026
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2027
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2028
	{18, 31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}, // 2029
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2030
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2031
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2032
	{18, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2033
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2034
	{17, 30, 32, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}, // 2035
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2036
	{18, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2037
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2038
	{17, 31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2039
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2040
	{18, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2041
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2042
	{17, 31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2043
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2044
	{18, 31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2045
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2046
	{17, 31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2047
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2048
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2049
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2050
	{17, 31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2051
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2052
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2053
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2054
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2055
	{17, 31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}, // 2056
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2057
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2058
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2059
	{17, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2060
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2061
	{17, 30, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31}, // 2062
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2063
	{17, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2064
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2065
	{17, 31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}, // 2066
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2067
	{17, 31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2068
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2069
	{17, 31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}, // 2070
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2071
	{17, 31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2072
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}, // 2073
	{17, 31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2074
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2075
	{16, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2076
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}, // 2077
	{17, 31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}, // 2078
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}, // 2079
	{16, 31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}, // 2080
	{17, 31, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2081
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2082
	{17, 31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2083
	{17, 31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2084
	{17, 31, 32, 31, 32, 30, 31, 30, 30, 29, 30, 30, 30}, // 2085
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2086
	{16, 31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}, // 2087
	{16, 30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30}, // 2088
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2089
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2090
	{16, 31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}, // 2091
	{16, 30, 31, 32, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2092
	{17, 30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2093
	{17, 31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}, // 2094
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 30, 30, 30, 30}, // 2095
	{17, 30, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}, // 2096
	{17, 31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}, // 2097
	{17, 31, 31, 32, 31, 31, 31, 29, 30, 29, 30, 29, 31}, // 2098
	{17, 31, 31, 32, 31, 31, 31, 30, 29, 29, 30, 30, 30}, // 2099
}
