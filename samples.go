/*
 * samples.go, part of stereodesc.
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

// Sample is a SMILES string to be described, with a human description.
type Sample struct {
	SMILES      string `yaml:"smiles" json:"smiles"`
	Description string `yaml:"description" json:"description"`
}

// DefaultSamples returns the samples reported when no input is given. They cover
// the four stereochemistry classes.
func DefaultSamples() []Sample {
	return []Sample{
		{"C[C@H](F)Cl", "fully specified single center"},
		{"CC(F)(Cl)Br", "no stereochemistry assigned"},
		{"C[C@H](F)C(Br)(Cl)I", "one specified center and one unspecified"},
		{"c1ccccc1", "achiral"},
	}
}
