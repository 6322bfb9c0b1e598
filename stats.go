/*
 * stats.go, part of stereodesc.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package desc

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stat holds simple statistics for one descriptor over a set of molecules.
type Stat struct {
	Mean   float64
	StdDev float64 //sample standard deviation, 0 for less than 2 values
	//NaN and infinite values are left out of all four.
	Min    float64
	Max    float64
}

// Summary describes a set of entries as a whole.
type Summary struct {
	N        int
	ByStereo map[Stereo]int
	AMW      Stat
	ClogP    Stat
}

// Summarize obtains the summary statistics for entries.
func Summarize(entries []*Entry) *Summary {
	S := &Summary{N: len(entries), ByStereo: make(map[Stereo]int, len(AllStereo))}
	for _, v := range AllStereo {
		S.ByStereo[v] = 0
	}
	amw := make([]float64, 0, len(entries))
	clogp := make([]float64, 0, len(entries))
	for _, e := range entries {
		S.ByStereo[e.Stereo]++
		amw = appendFinite(amw, e.AMW())
		clogp = appendFinite(clogp, e.ClogP())
	}
	S.AMW = newStat(amw)
	S.ClogP = newStat(clogp)
	return S
}

// non-finite values don't take part in the statistics.
func appendFinite(data []float64, v float64) []float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return data
	}
	return append(data, v)
}

func newStat(data []float64) Stat {
	var s Stat
	if len(data) == 0 {
		return s
	}
	s.Min = floats.Min(data)
	s.Max = floats.Max(data)
	if len(data) == 1 {
		s.Mean = data[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(data, nil)
	return s
}
