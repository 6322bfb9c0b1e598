/*
 * doc.go, part of stereodesc.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package desc is the main package of stereodesc. It obtains molecular descriptors
(molecular weight, Crippen logP, stereocenter counts and so on) for molecules given
as SMILES strings, classifies their stereochemistry, and reports the results.

The chemistry itself (SMILES parsing, stereocenter perception, descriptor formulas)
is not done here, but by an Engine. The rdkit package provides engines based on the
RDKit library.


	**Capabilities**


    Classifies the stereochemistry of a molecule as achiral, fully specified,
	unspecified or partially specified from its total and unspecified atom
	stereocenter counts.

    Reads samples from SMILES and YAML files, plain or compressed with gzip
	or zstd.

    Describes a list of samples with any Engine, stopping at the first
	SMILES string that can't be parsed.

    Writes human-readable reports, optionally colored, and summary
	statistics (uses the Gonum library).

The descjson, descplot and desccache packages add JSON output, MW vs logP scatter plots
(gonum/plot) and an SQLite cache of descriptors, respectively.*/
package desc
