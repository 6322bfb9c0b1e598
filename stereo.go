/*
 * stereo.go, part of stereodesc.
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

import "fmt"

// Stereo is the stereochemistry status of a molecule, as derived from
// its stereocenter counts.
type Stereo int

const (
	Achiral            Stereo = iota //no stereocenters present
	FullySpecified                   //every stereocenter has an assigned configuration
	Unspecified                      //no stereocenter has an assigned configuration
	PartiallySpecified               //some do, some don't
)

// AllStereo lists every Stereo value, in order.
var AllStereo = []Stereo{Achiral, FullySpecified, Unspecified, PartiallySpecified}

var stereoNames = [...]string{
	"achiral",
	"fully specified stereochemistry",
	"unspecified stereochemistry",
	"partially specified stereochemistry",
}

func (s Stereo) String() string {
	if s < 0 || int(s) >= len(stereoNames) {
		return fmt.Sprintf("Stereo(%d)", int(s))
	}
	return stereoNames[s]
}

// Classify returns the stereochemistry status for a molecule with total
// stereocenters, unspecified of which lack an assigned configuration.
// A zero total is always Achiral, whatever unspecified says. The counts
// are not checked.
func Classify(total, unspecified int) Stereo {
	switch {
	case total == 0:
		return Achiral
	case unspecified == 0:
		return FullySpecified
	case unspecified == total:
		return Unspecified
	}
	return PartiallySpecified
}
