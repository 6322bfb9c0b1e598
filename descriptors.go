/*
 * descriptors.go, part of stereodesc.
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
	"fmt"
	"math"
	"sort"
)

// Names of the descriptors this package reads. The engine may compute many more.
const (
	NumAtomStereoCenters            = "NumAtomStereoCenters"
	NumUnspecifiedAtomStereoCenters = "NumUnspecifiedAtomStereoCenters"
	AMW                             = "amw" //average molecular weight
	CrippenClogP                    = "CrippenClogP"
)

// Descriptors maps descriptor names to their values for one molecule.
// It is not modified after the engine returns it.
type Descriptors map[string]float64

// Get returns the value for name, or 0 if the descriptor is absent.
func (d Descriptors) Get(name string) float64 {
	return d[name]
}

// Names returns the descriptor names, sorted.
func (d Descriptors) Names() []string {
	ret := make([]string, 0, len(d))
	for k := range d {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// StereoCounts returns the total and unspecified atom stereocenter counts,
// rounded to the nearest integer (halves away from zero). Absent descriptors count
// as zero. A NaN, infinite or negative value gives an error wrapping ErrBadCount.
func (d Descriptors) StereoCounts() (total, unspecified int, err error) {
	total, err = roundCount(NumAtomStereoCenters, d.Get(NumAtomStereoCenters))
	if err != nil {
		return 0, 0, ErrDecorate(err, "StereoCounts")
	}
	unspecified, err = roundCount(NumUnspecifiedAtomStereoCenters, d.Get(NumUnspecifiedAtomStereoCenters))
	if err != nil {
		return 0, 0, ErrDecorate(err, "StereoCounts")
	}
	return total, unspecified, nil
}

// Stereo classifies the stereochemistry of the molecule the descriptors belong to.
func (d Descriptors) Stereo() (Stereo, error) {
	t, u, err := d.StereoCounts()
	if err != nil {
		return Achiral, ErrDecorate(err, "Stereo")
	}
	return Classify(t, u), nil
}

func roundCount(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, NewError(fmt.Sprintf("%s is %v", name, v), "", "roundCount", false, ErrBadCount)
	}
	return int(math.Round(v)), nil
}
