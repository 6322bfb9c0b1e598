/*
 * interfaces.go, part of stereodesc.
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

//Errors

// CriticalError is the interface for errors that all packages in this module implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type. Critical errors are those after which nothing else should be attempted.
type CriticalError interface {
	Error() string
	Decorate(string) []string //Adds the name of a caller (optionally "FunctionName: Extra info") and returns the decoration slice. An empty string only returns the current slice.
	Critical() bool
}

// Molecule is a parsed chemical structure, as held by an Engine. It is opaque
// to this package, which only needs to know where it came from.
type Molecule interface {
	//SMILES returns the string the molecule was parsed from.
	SMILES() string

	//Close releases whatever the engine allocated for the molecule.
	//The molecule can not be used after this call.
	Close() error
}

// Engine is the boundary to the cheminformatics library that actually knows chemistry.
type Engine interface {
	//Name identifies the engine, and is used, for instance, as part of cache keys.
	Name() string

	//Parse builds a molecule from a SMILES string. Invalid SMILES give an error
	//for which errors.Is(err, ErrParse) is true.
	Parse(smiles string) (Molecule, error)

	//Descriptors computes the descriptor mapping for a molecule previously
	//returned by the same engine's Parse.
	Descriptors(mol Molecule) (Descriptors, error)
}
